package recti

import "fmt"

// HSegment is a horizontal segment: an x-interval at a fixed y
// coordinate. It is a rectangle collapsed along the y axis.
type HSegment[T Scalar] struct {
	X Interval[T]
	Y T
}

// HSeg is shorthand for HSegment[T]{x, y}.
func HSeg[T Scalar](x Interval[T], y T) HSegment[T] {
	return HSegment[T]{X: x, Y: y}
}

func (s HSegment[T]) String() string {
	return fmt.Sprintf("HSegment(x=%v, y=%v)", s.X, s.Y)
}

// Flip returns the segment reflected across the diagonal. Flipping
// twice returns the original segment.
func (s HSegment[T]) Flip() VSegment[T] {
	return VSeg(s.Y, s.X)
}

// Rect returns the degenerate rectangle occupied by the segment.
func (s HSegment[T]) Rect() Rect[T] {
	return Rt(s.X, Iv(s.Y, s.Y))
}

// ContainsPoint reports whether p lies on the segment: its y
// coordinate must match exactly and its x coordinate must fall within
// the segment's interval.
func (s HSegment[T]) ContainsPoint(p Point[T]) bool {
	return s.Y == p.Y && s.X.ContainsValue(p.X)
}

// Overlaps reports whether s and o share a point. Segments at
// different y coordinates never overlap, regardless of their x
// projections.
func (s HSegment[T]) Overlaps(o HSegment[T]) bool {
	return s.Y == o.Y && s.X.Overlaps(o.X)
}

// Contains reports whether o lies entirely on s.
func (s HSegment[T]) Contains(o HSegment[T]) bool {
	return s.Y == o.Y && s.X.Contains(o.X)
}

// MinDistWith returns the minimum Manhattan distance between two
// horizontal segments.
func (s HSegment[T]) MinDistWith(o HSegment[T]) T {
	return s.X.MinDistWith(o.X) + Iv(s.Y, s.Y).MinDistWithValue(o.Y)
}

// Measure returns the length of the segment.
func (s HSegment[T]) Measure() T { return s.X.Width() }

// Center returns the midpoint of the segment.
func (s HSegment[T]) Center() Point[T] {
	return Pt(s.X.Center(), s.Y)
}

// LowerCorner returns the left endpoint.
func (s HSegment[T]) LowerCorner() Point[T] {
	return Pt(s.X.Lb, s.Y)
}

// UpperCorner returns the right endpoint.
func (s HSegment[T]) UpperCorner() Point[T] {
	return Pt(s.X.Ub, s.Y)
}

// VSegment is a vertical segment: a y-interval at a fixed x
// coordinate. It is a rectangle collapsed along the x axis.
type VSegment[T Scalar] struct {
	X T
	Y Interval[T]
}

// VSeg is shorthand for VSegment[T]{x, y}.
func VSeg[T Scalar](x T, y Interval[T]) VSegment[T] {
	return VSegment[T]{X: x, Y: y}
}

func (s VSegment[T]) String() string {
	return fmt.Sprintf("VSegment(x=%v, y=%v)", s.X, s.Y)
}

// Flip returns the segment reflected across the diagonal. Flipping
// twice returns the original segment.
func (s VSegment[T]) Flip() HSegment[T] {
	return HSeg(s.Y, s.X)
}

// Rect returns the degenerate rectangle occupied by the segment.
func (s VSegment[T]) Rect() Rect[T] {
	return Rt(Iv(s.X, s.X), s.Y)
}

// ContainsPoint reports whether p lies on the segment.
func (s VSegment[T]) ContainsPoint(p Point[T]) bool {
	return s.X == p.X && s.Y.ContainsValue(p.Y)
}

// Overlaps reports whether s and o share a point. Segments at
// different x coordinates never overlap.
func (s VSegment[T]) Overlaps(o VSegment[T]) bool {
	return s.X == o.X && s.Y.Overlaps(o.Y)
}

// Contains reports whether o lies entirely on s.
func (s VSegment[T]) Contains(o VSegment[T]) bool {
	return s.X == o.X && s.Y.Contains(o.Y)
}

// MinDistWith returns the minimum Manhattan distance between two
// vertical segments.
func (s VSegment[T]) MinDistWith(o VSegment[T]) T {
	return Iv(s.X, s.X).MinDistWithValue(o.X) + s.Y.MinDistWith(o.Y)
}

// Measure returns the length of the segment.
func (s VSegment[T]) Measure() T { return s.Y.Width() }

// Center returns the midpoint of the segment.
func (s VSegment[T]) Center() Point[T] {
	return Pt(s.X, s.Y.Center())
}

// LowerCorner returns the bottom endpoint.
func (s VSegment[T]) LowerCorner() Point[T] {
	return Pt(s.X, s.Y.Lb)
}

// UpperCorner returns the top endpoint.
func (s VSegment[T]) UpperCorner() Point[T] {
	return Pt(s.X, s.Y.Ub)
}
