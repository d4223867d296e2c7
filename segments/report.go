package segments

// Classify every unordered pair (i < j), in index order. This is quadratic,
// which is fine for the handful of segments a session holds.
func (c *SegmentCollection) AllPairsReport() []PairReport {
	var pairs []PairReport
	for i := 0; i < len(c.segments); i++ {
		for j := i + 1; j < len(c.segments); j++ {
			pairs = append(pairs, comparePair(i, j, c.segments[i], c.segments[j]))
		}
	}
	return pairs
}

func comparePair(i, j int, a, b LineSegment) PairReport {
	pair := PairReport{I: i, J: j}
	switch {
	case a.IsParallel(b):
		pair.Relation = Parallel
	case !a.Intersects(b):
		pair.Relation = NotIntersecting
	default:
		// Not parallel, so this can't throw
		pair.Relation = Intersecting
		pair.Point = a.intersectionPoint(b)
	}
	return pair
}

func (c *SegmentCollection) Stats() []SegmentStats {
	stats := make([]SegmentStats, len(c.segments))
	for i, segment := range c.segments {
		stats[i] = segment.Stats()
	}
	return stats
}

func (s LineSegment) Stats() SegmentStats {
	stats := SegmentStats{
		Segment:  s,
		Midpoint: s.Midpoint(),
		Length:   s.Length(),
		Equation: s.Equation(),
	}
	stats.Slope, stats.SlopeErr = s.Slope()
	stats.XIntercept, stats.XInterceptErr = s.XIntercept()
	stats.YIntercept, stats.YInterceptErr = s.YIntercept()
	return stats
}

// Everything the display command shows: per segment statistics followed by
// the pairwise comparison.
func (c *SegmentCollection) Report() Report {
	return Report{
		Segments: c.Stats(),
		Pairs:    c.AllPairsReport(),
	}
}

func (r Relation) String() string {
	switch r {
	case Parallel:
		return "parallel"
	case NotIntersecting:
		return "not parallel, not intersecting"
	case Intersecting:
		return "intersecting"
	}
	return "unknown"
}
