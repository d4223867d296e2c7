package segments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSegmentCollection(t *testing.T) {
	c := NewSegmentCollection(3)
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 3, c.Capacity())
	assert.Empty(t, c.Segments())

	assert.Equal(t, 0, NewSegmentCollection(-2).Capacity())
}

func TestAdd(t *testing.T) {
	c := NewSegmentCollection(2)
	require.NoError(t, c.Add(seg(0, 0, 1, 1)))
	require.NoError(t, c.Add(seg(0, 1, 1, 0)))
	assert.Equal(t, 2, c.Size())

	t.Run("beyond capacity", func(t *testing.T) {
		err := c.Add(seg(5, 5, 6, 6))
		assert.Equal(t, CapacityExceeded, KindOf(err))
		assert.Equal(t, 2, c.Size())
		assert.Equal(t, []LineSegment{seg(0, 0, 1, 1), seg(0, 1, 1, 0)}, c.Segments())
	})

	t.Run("zero capacity", func(t *testing.T) {
		err := NewSegmentCollection(0).Add(LineSegment{})
		assert.Equal(t, CapacityExceeded, KindOf(err))
	})
}

func TestSegmentsIsACopy(t *testing.T) {
	c := NewSegmentCollection(1)
	require.NoError(t, c.Add(seg(0, 0, 1, 1)))
	copied := c.Segments()
	copied[0] = seg(9, 9, 9, 9)
	s, err := c.GetAt(0)
	require.NoError(t, err)
	assert.Equal(t, seg(0, 0, 1, 1), s)
}

func TestGetAt(t *testing.T) {
	c := NewSegmentCollection(2)
	require.NoError(t, c.Add(seg(0, 0, 1, 1)))

	s, err := c.GetAt(0)
	require.NoError(t, err)
	assert.Equal(t, seg(0, 0, 1, 1), s)

	_, err = c.GetAt(1)
	assert.Equal(t, SegmentNotFound, KindOf(err))
	_, err = c.GetAt(-1)
	assert.Equal(t, SegmentNotFound, KindOf(err))
}

func TestRemoveMatching(t *testing.T) {
	a := seg(0, 0, 1, 1)
	b := seg(2, 2, 3, 5)
	d := seg(-1, 0, 4, 4)

	build := func() *SegmentCollection {
		c := NewSegmentCollection(3)
		for _, s := range []LineSegment{a, b, d} {
			require.NoError(t, c.Add(s))
		}
		return c
	}

	t.Run("middle", func(t *testing.T) {
		c := build()
		require.NoError(t, c.RemoveMatching(Point{2, 2}, Point{3, 5}))
		assert.Equal(t, 2, c.Size())
		assert.Equal(t, 2, c.Capacity())
		assert.Equal(t, []LineSegment{a, d}, c.Segments())
	})

	t.Run("first and last", func(t *testing.T) {
		c := build()
		require.NoError(t, c.RemoveMatching(a.P1, a.P2))
		require.NoError(t, c.RemoveMatching(d.P1, d.P2))
		assert.Equal(t, []LineSegment{b}, c.Segments())
		assert.Equal(t, 1, c.Capacity())
	})

	t.Run("not found", func(t *testing.T) {
		c := build()
		err := c.RemoveMatching(Point{7, 7}, Point{8, 8})
		assert.Equal(t, SegmentNotFound, KindOf(err))
		assert.Equal(t, 3, c.Size())
		assert.Equal(t, 3, c.Capacity())
		assert.Equal(t, []LineSegment{a, b, d}, c.Segments())
	})

	t.Run("endpoints must match in order", func(t *testing.T) {
		c := build()
		err := c.RemoveMatching(a.P2, a.P1)
		assert.Equal(t, SegmentNotFound, KindOf(err))
		assert.Equal(t, 3, c.Size())
	})

	t.Run("only the first duplicate", func(t *testing.T) {
		c := NewSegmentCollection(3)
		require.NoError(t, c.Add(a))
		require.NoError(t, c.Add(b))
		require.NoError(t, c.Add(a))
		require.NoError(t, c.RemoveMatching(a.P1, a.P2))
		assert.Equal(t, []LineSegment{b, a}, c.Segments())
	})

	t.Run("room freed by a removal is not reusable", func(t *testing.T) {
		c := build()
		require.NoError(t, c.RemoveMatching(b.P1, b.P2))
		err := c.Add(b)
		assert.Equal(t, CapacityExceeded, KindOf(err))
	})
}

func TestNearestTo(t *testing.T) {
	c := NewSegmentCollection(2)
	require.NoError(t, c.Add(seg(1, 0, 1, 5)))
	require.NoError(t, c.Add(seg(5, 0, 5, 5)))

	index, err := c.NearestTo(Point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, index)

	index, err = c.NearestTo(Point{4, 100})
	require.NoError(t, err)
	assert.Equal(t, 1, index)

	nearest, err := c.Nearest(Point{4, 100})
	require.NoError(t, err)
	assert.Equal(t, seg(5, 0, 5, 5), nearest)

	t.Run("ties go to the earliest", func(t *testing.T) {
		index, err := c.NearestTo(Point{3, 0})
		require.NoError(t, err)
		assert.Equal(t, 0, index)
	})

	t.Run("distance is to the infinite line", func(t *testing.T) {
		c := NewSegmentCollection(2)
		// Short segment whose line runs right through the query point
		require.NoError(t, c.Add(seg(0, 0, 1, 1)))
		// Long segment that passes close by
		require.NoError(t, c.Add(seg(0, 11, 20, 11)))
		index, err := c.NearestTo(Point{10, 10})
		require.NoError(t, err)
		assert.Equal(t, 0, index)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewSegmentCollection(2).NearestTo(Point{})
		assert.Equal(t, SegmentNotFound, KindOf(err))
		_, err = NewSegmentCollection(2).Nearest(Point{})
		assert.Equal(t, SegmentNotFound, KindOf(err))
	})
}

func TestAllPairsReport(t *testing.T) {
	c := NewSegmentCollection(4)
	require.NoError(t, c.Add(seg(0, 0, 4, 4)))
	require.NoError(t, c.Add(seg(0, 4, 4, 0)))
	require.NoError(t, c.Add(seg(0, 1, 4, 5)))
	require.NoError(t, c.Add(seg(10, 0, 11, 2)))

	pairs := c.AllPairsReport()
	require.Len(t, pairs, 6)

	expected := []PairReport{
		{I: 0, J: 1, Relation: Intersecting, Point: Point{2, 2}},
		{I: 0, J: 2, Relation: Parallel},
		{I: 0, J: 3, Relation: NotIntersecting},
		{I: 1, J: 2, Relation: Intersecting, Point: Point{1.5, 2.5}},
		{I: 1, J: 3, Relation: NotIntersecting},
		{I: 2, J: 3, Relation: NotIntersecting},
	}
	assert.Equal(t, expected, pairs)

	assert.Empty(t, NewSegmentCollection(1).AllPairsReport())
}

func TestReport(t *testing.T) {
	c := NewSegmentCollection(2)
	require.NoError(t, c.Add(seg(0, 0, 3, 4)))
	require.NoError(t, c.Add(seg(1, 0, 1, 5)))

	report := c.Report()
	require.Len(t, report.Segments, 2)
	require.Len(t, report.Pairs, 1)

	first := report.Segments[0]
	assert.Equal(t, seg(0, 0, 3, 4), first.Segment)
	assert.NoError(t, first.SlopeErr)
	assert.InDelta(t, 4.0/3, first.Slope, 1e-12)
	assert.Equal(t, Point{1.5, 2}, first.Midpoint)
	assert.Equal(t, 5.0, Round(first.Length))
	assert.Equal(t, "y=1.33*x+0", first.Equation)

	vertical := report.Segments[1]
	assert.Equal(t, GeometryUndefined, KindOf(vertical.SlopeErr))
	assert.Equal(t, GeometryUndefined, KindOf(vertical.XInterceptErr))
	assert.Equal(t, GeometryUndefined, KindOf(vertical.YInterceptErr))
	assert.Equal(t, Point{1, 2.5}, vertical.Midpoint)
	assert.InDelta(t, 5, vertical.Length, 1e-6)
	assert.Equal(t, "x=1", vertical.Equation)

	// y=4/3x crosses x=1 at 1.33, inside the vertical's y range
	assert.Equal(t, PairReport{I: 0, J: 1, Relation: Intersecting, Point: Point{1, 1.33}}, report.Pairs[0])
}

func TestUnsupportedOperations(t *testing.T) {
	c := NewSegmentCollection(1)
	require.NoError(t, c.Add(seg(0, 0, 1, 1)))

	polygon, err := c.ClosedPolygon()
	assert.Nil(t, polygon)
	assert.Equal(t, UnsupportedOperation, KindOf(err))

	intersects, err := c.FindAllIntersects(seg(0, 1, 1, 0))
	assert.Nil(t, intersects)
	assert.Equal(t, UnsupportedOperation, KindOf(err))
}
