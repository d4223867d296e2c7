package segments

import (
	"fmt"
	"math"
)

func NewLineSegment(p1, p2 Point) LineSegment {
	return LineSegment{P1: p1, P2: p2}
}

func (s LineSegment) GetP1() Point {
	return s.P1
}

func (s LineSegment) GetP2() Point {
	return s.P2
}

// A degenerate segment (both endpoints equal) is also vertical
func (s LineSegment) IsVertical() bool {
	return s.P1.X == s.P2.X
}

func (s LineSegment) IsHorizontal() bool {
	return s.P1.Y == s.P2.Y
}

func (s LineSegment) Length() float64 {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y
	return SquareRoot(dx*dx + dy*dy)
}

// Midpoint with both coordinates rounded to two decimals
func (s LineSegment) Midpoint() Point {
	return Point{
		X: Round((s.P1.X + s.P2.X) / 2),
		Y: Round((s.P1.Y + s.P2.Y) / 2),
	}
}

func (s LineSegment) Slope() (m float64, err error) {
	defer catchThrown(&err)
	return s.slope(), nil
}

// The point where the segment's infinite line crosses the y axis
func (s LineSegment) YIntercept() (p Point, err error) {
	defer catchThrown(&err)
	return Point{0, s.yIntercept()}, nil
}

// The point where the segment's infinite line crosses the x axis. Horizontal
// lines have none.
func (s LineSegment) XIntercept() (p Point, err error) {
	defer catchThrown(&err)
	return Point{s.xIntercept(), 0}, nil
}

// Slopes are compared exactly, so two segments whose slopes differ in the last
// bit are not parallel. Two vertical segments are parallel to each other and to
// nothing else.
func (s LineSegment) IsParallel(other LineSegment) bool {
	if s.IsVertical() || other.IsVertical() {
		return s.IsVertical() && other.IsVertical()
	}
	return s.slope() == other.slope()
}

// Check whether the two segments cross. Parallel segments never intersect,
// even when they overlap. Otherwise the rounded crossing point of the infinite
// lines has to fall within both segments.
func (s LineSegment) Intersects(other LineSegment) bool {
	if s.IsParallel(other) {
		return false
	}
	candidate := s.intersectionPoint(other)
	return s.spans(candidate) && other.spans(candidate)
}

// Crossing point of the two infinite lines, rounded to two decimals. Parallel
// segments have no crossing point.
func (s LineSegment) IntersectionPoint(other LineSegment) (p Point, err error) {
	defer catchThrown(&err)
	return s.intersectionPoint(other), nil
}

// The line's equation in slope-intercept form, "y=m*x+c", with both numbers
// rounded. Vertical lines are written "x=a".
func (s LineSegment) Equation() string {
	if s.IsVertical() {
		return fmt.Sprintf("x=%s", FormatNumber(s.P1.X))
	}
	return fmt.Sprintf("y=%s*x+%s", FormatNumber(s.slope()), FormatNumber(s.yIntercept()))
}

// Perpendicular distance from p to the segment's infinite line. This ignores
// the endpoints entirely: a point far beyond the end of a short segment can
// still be at distance zero.
func (s LineSegment) DistanceTo(p Point) float64 {
	if s.IsVertical() {
		return math.Abs(p.X - s.P1.X)
	}
	m := s.slope()
	c := s.yIntercept()
	return math.Abs(m*p.X-p.Y+c) / SquareRoot(1+m*m)
}

func (s LineSegment) String() string {
	return fmt.Sprintf("%s,%s", s.P1, s.P2)
}

// Internals. These throw instead of returning errors.

func (s LineSegment) slope() float64 {
	if s.IsVertical() {
		throwf(ErrGeometryUndefined, "slope of vertical segment %s", s)
	}
	return (s.P2.Y - s.P1.Y) / (s.P2.X - s.P1.X)
}

func (s LineSegment) yIntercept() float64 {
	return s.P1.Y - s.slope()*s.P1.X
}

func (s LineSegment) xIntercept() float64 {
	m := s.slope()
	if m == 0 {
		throwf(ErrGeometryUndefined, "x intercept of horizontal segment %s", s)
	}
	return -s.yIntercept() / m
}

func (s LineSegment) intersectionPoint(other LineSegment) Point {
	if s.IsParallel(other) {
		throwf(ErrGeometryUndefined, "intersection of parallel segments %s and %s", s, other)
	}

	// At most one of the two is vertical here
	if s.IsVertical() {
		return other.roundedPointAt(s.P1.X)
	}
	if other.IsVertical() {
		return s.roundedPointAt(other.P1.X)
	}

	m1, c1 := s.slope(), s.yIntercept()
	m2, c2 := other.slope(), other.yIntercept()
	return Point{
		X: Round((c2 - c1) / (m1 - m2)),
		Y: Round((c1*m2 - c2*m1) / (m2 - m1)),
	}
}

// The point on the infinite line at x, rounded
func (s LineSegment) roundedPointAt(x float64) Point {
	return Point{Round(x), Round(s.slope()*x + s.yIntercept())}
}

// Does a point already known to be on the infinite line lie within the
// segment? For ordinary segments the x range decides. A vertical segment's x
// range is a single value, so its y range decides instead.
func (s LineSegment) spans(p Point) bool {
	if s.IsVertical() {
		lo, hi := ordered(s.P1.Y, s.P2.Y)
		return lo <= p.Y && p.Y <= hi
	}
	lo, hi := ordered(s.P1.X, s.P2.X)
	return lo <= p.X && p.X <= hi
}
