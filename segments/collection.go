package segments

import (
	"math"

	"github.com/pkg/errors"
)

// Create an empty collection that holds at most capacity segments. A negative
// capacity is treated as zero.
func NewSegmentCollection(capacity int) *SegmentCollection {
	if capacity < 0 {
		capacity = 0
	}
	return &SegmentCollection{
		segments: make([]LineSegment, 0, capacity),
		capacity: capacity,
	}
}

func (c *SegmentCollection) Size() int {
	return len(c.segments)
}

func (c *SegmentCollection) Capacity() int {
	return c.capacity
}

// A copy of the segments, in insertion order
func (c *SegmentCollection) Segments() []LineSegment {
	result := make([]LineSegment, len(c.segments))
	copy(result, c.segments)
	return result
}

func (c *SegmentCollection) GetAt(index int) (LineSegment, error) {
	if index < 0 || index >= len(c.segments) {
		return LineSegment{}, errors.Wrapf(ErrSegmentNotFound, "no segment at index %d of %d", index, len(c.segments))
	}
	return c.segments[index], nil
}

// Append a segment. A full collection is left untouched and the add fails
// with CapacityExceeded.
func (c *SegmentCollection) Add(segment LineSegment) error {
	if len(c.segments) >= c.capacity {
		return errors.Wrapf(ErrCapacityExceeded, "cannot add %s, collection holds at most %d segments", segment, c.capacity)
	}
	c.segments = append(c.segments, segment)
	return nil
}

// Remove the first segment whose endpoints are exactly p1 and p2, in that
// order. The collection is rebuilt with one less capacity and the remaining
// segments keep their relative order. On a miss nothing changes.
func (c *SegmentCollection) RemoveMatching(p1, p2 Point) error {
	index := c.indexOf(p1, p2)
	if index < 0 {
		return errors.Wrapf(ErrSegmentNotFound, "no segment %s", LineSegment{p1, p2})
	}

	rebuilt := NewSegmentCollection(c.capacity - 1)
	for i, segment := range c.segments {
		if i != index {
			rebuilt.segments = append(rebuilt.segments, segment)
		}
	}
	*c = *rebuilt
	return nil
}

func (c *SegmentCollection) indexOf(p1, p2 Point) int {
	for i, segment := range c.segments {
		if segment.P1.Equals(p1) && segment.P2.Equals(p2) {
			return i
		}
	}
	return -1
}

// Index of the segment whose infinite line passes closest to the point. Ties
// go to the earliest segment. This measures distance to the line, not to the
// segment, so it can pick a segment whose endpoints are far away.
func (c *SegmentCollection) NearestTo(point Point) (int, error) {
	if len(c.segments) == 0 {
		return 0, errors.Wrapf(ErrSegmentNotFound, "no segments to compare with %s", point)
	}
	shortest := math.MaxFloat64
	nearest := 0
	for i, segment := range c.segments {
		distance := segment.DistanceTo(point)
		if distance < shortest {
			shortest = distance
			nearest = i
		}
	}
	return nearest, nil
}

// Like NearestTo, but returns the segment itself
func (c *SegmentCollection) Nearest(point Point) (LineSegment, error) {
	index, err := c.NearestTo(point)
	if err != nil {
		return LineSegment{}, err
	}
	return c.segments[index], nil
}

// There is no closed polygon detection yet. Always fails
// with UnsupportedOperation.
func (c *SegmentCollection) ClosedPolygon() (*SegmentCollection, error) {
	return nil, errors.Wrap(ErrUnsupportedOperation, "closed polygon detection")
}

// Filtering the segments that intersect a given one is not supported either.
// Always fails with UnsupportedOperation.
func (c *SegmentCollection) FindAllIntersects(segment LineSegment) (*SegmentCollection, error) {
	return nil, errors.Wrapf(ErrUnsupportedOperation, "finding intersects of %s", segment)
}
