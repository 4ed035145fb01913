// Package recti provides geometric primitives for axis-aligned,
// Manhattan-style computation: intervals, points, vectors,
// rectangles, and orthogonal segments.
//
// It is patterned after image.Rectangle and image.Point, but all
// types are parameterized over their coordinate type and every
// operation returns a new value. The package is intended as a
// foundation for physical-design tooling where coordinates are
// integral and distances are L1.
package recti

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the coordinate types that recti types
// and functions can handle. Unsigned types are excluded because the
// algebra negates coordinates and takes signed differences.
type Scalar interface {
	Integer | constraints.Float
}

// Integer is a constraint for any signed integer type.
type Integer interface {
	constraints.Signed
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone   Edges = 0
	EdgeTop    Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
