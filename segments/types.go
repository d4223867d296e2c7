package segments

// Points are plain values. Two points are only the same point when both
// coordinates are exactly equal; there is no tolerance anywhere in the
// equality checks, since removal and parallelism rely on exact matches.
type Point struct {
	X float64
	Y float64
}

// The zero value is the degenerate segment at the origin.
type LineSegment struct {
	P1 Point
	P2 Point
}

// A collection has a fixed capacity decided at construction. The backing
// slice never holds more than capacity segments, and its length is the
// logical count.
type SegmentCollection struct {
	segments []LineSegment
	capacity int
}

// How a pair of segments relate to each other in a report
type Relation int

const (
	Parallel Relation = iota
	NotIntersecting
	Intersecting
)

type PairReport struct {
	// Zero based indexes into the collection, with I < J
	I, J     int
	Relation Relation
	// Only meaningful when Relation is Intersecting
	Point Point
}

// Per segment statistics. Quantities that can be undefined carry their own
// error, so a vertical segment still reports its length and midpoint.
type SegmentStats struct {
	Segment       LineSegment
	Slope         float64
	SlopeErr      error
	Midpoint      Point
	XIntercept    Point
	XInterceptErr error
	YIntercept    Point
	YInterceptErr error
	Length        float64
	Equation      string
}

type Report struct {
	Segments []SegmentStats
	Pairs    []PairReport
}
