package segments

import "github.com/pkg/errors"

// The kinds of failure the geometry and collection operations report. Every
// error returned by this package wraps exactly one of the sentinels below, so
// callers can classify it with KindOf.
type ErrorKind int

const (
	UnknownKind ErrorKind = iota
	// Vertical slope, horizontal x intercept, parallel intersection
	GeometryUndefined
	// Add on a full collection
	CapacityExceeded
	// Remove or lookup miss, or a query on an empty collection
	SegmentNotFound
	// Closed polygon detection and the intersect filter
	UnsupportedOperation
)

var (
	ErrGeometryUndefined    = errors.New("geometry undefined")
	ErrCapacityExceeded     = errors.New("capacity exceeded")
	ErrSegmentNotFound      = errors.New("line segment not found")
	ErrUnsupportedOperation = errors.New("not implemented")
)

func KindOf(err error) ErrorKind {
	switch errors.Cause(err) {
	case ErrGeometryUndefined:
		return GeometryUndefined
	case ErrCapacityExceeded:
		return CapacityExceeded
	case ErrSegmentNotFound:
		return SegmentNotFound
	case ErrUnsupportedOperation:
		return UnsupportedOperation
	}
	return UnknownKind
}

func (k ErrorKind) String() string {
	switch k {
	case GeometryUndefined:
		return "GeometryUndefined"
	case CapacityExceeded:
		return "CapacityExceeded"
	case SegmentNotFound:
		return "SegmentNotFound"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	}
	return "Unknown"
}
