package geometry

import "fmt"

// ErrorKind classifies a degenerate geometric construction.
type ErrorKind int

const (
	KindVertical               ErrorKind = iota // Two points share an x coordinate
	KindHorizontalPerpendicular                  // Perpendicular of a horizontal line
	KindParallel                                 // Intersection of lines with equal slopes
	KindZeroLength                               // Direction vector of length zero
	KindNonFinite                                // Result is NaN or infinite
)

func (k ErrorKind) String() string {
	switch k {
	case KindVertical:
		return "vertical line"
	case KindHorizontalPerpendicular:
		return "perpendicular of horizontal line"
	case KindParallel:
		return "parallel lines"
	case KindZeroLength:
		return "zero-length vector"
	case KindNonFinite:
		return "non-finite result"
	default:
		return "unknown"
	}
}

// GeometryError reports a degenerate line construction or intersection.
type GeometryError struct {
	Op   string
	Kind ErrorKind
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Op, e.Kind)
}
