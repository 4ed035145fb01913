package recti

import "fmt"

// Rect is an axis-aligned rectangle composed of an x-interval and a
// y-interval. A rectangle is valid only when both component intervals
// are; operations on invalid rectangles return whatever the component
// arithmetic produces, uncorrected.
type Rect[T Scalar] struct {
	X, Y Interval[T]
}

// Rt is shorthand for Rect[T]{x, y}.
func Rt[T Scalar](x, y Interval[T]) Rect[T] {
	return Rect[T]{X: x, Y: y}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("(%v, %v)", r.X, r.Y)
}

// IsValid reports whether both component intervals are valid.
func (r Rect[T]) IsValid() bool {
	return r.X.IsValid() && r.Y.IsValid()
}

// Width returns the extent of the rectangle along the x axis.
func (r Rect[T]) Width() T { return r.X.Width() }

// Height returns the extent of the rectangle along the y axis.
func (r Rect[T]) Height() T { return r.Y.Width() }

// Area returns Width * Height. It may be negative if a component
// interval is invalid.
func (r Rect[T]) Area() T { return r.Width() * r.Height() }

// Measure returns the area of the rectangle.
func (r Rect[T]) Measure() T { return r.Area() }

// Flip returns the rectangle with its x and y intervals swapped.
func (r Rect[T]) Flip() Rect[T] {
	return Rt(r.Y, r.X)
}

// Overlaps reports whether r and o overlap on both axes.
func (r Rect[T]) Overlaps(o Rect[T]) bool {
	return r.X.Overlaps(o.X) && r.Y.Overlaps(o.Y)
}

// Contains reports whether o lies entirely within r.
func (r Rect[T]) Contains(o Rect[T]) bool {
	return r.X.Contains(o.X) && r.Y.Contains(o.Y)
}

// ContainsPoint reports whether p lies within r.
func (r Rect[T]) ContainsPoint(p Point[T]) bool {
	return r.X.ContainsValue(p.X) && r.Y.ContainsValue(p.Y)
}

// IntersectWith returns the largest rectangle contained by both r and
// o. If the rectangles do not overlap on some axis, that component of
// the result is the canonical invalid interval.
func (r Rect[T]) IntersectWith(o Rect[T]) Rect[T] {
	return Rt(r.X.IntersectWith(o.X), r.Y.IntersectWith(o.Y))
}

// HullWith returns the smallest rectangle containing both r and o.
func (r Rect[T]) HullWith(o Rect[T]) Rect[T] {
	return Rt(r.X.HullWith(o.X), r.Y.HullWith(o.Y))
}

// HullWithPoint returns the smallest rectangle containing both r and
// p.
func (r Rect[T]) HullWithPoint(p Point[T]) Rect[T] {
	return Rt(r.X.HullWithValue(p.X), r.Y.HullWithValue(p.Y))
}

// MinDistWith returns the minimum Manhattan distance between r and o:
// the sum of the per-axis interval distances, zero when the
// rectangles overlap.
func (r Rect[T]) MinDistWith(o Rect[T]) T {
	return r.X.MinDistWith(o.X) + r.Y.MinDistWith(o.Y)
}

// MinDistToPoint returns the minimum Manhattan distance from r to p.
func (r Rect[T]) MinDistToPoint(p Point[T]) T {
	return r.X.MinDistWithValue(p.X) + r.Y.MinDistWithValue(p.Y)
}

// Enlarge grows the rectangle by amount on all four sides. A negative
// amount shrinks it and may produce an invalid rectangle.
func (r Rect[T]) Enlarge(amount T) Rect[T] {
	return Rt(r.X.Enlarge(amount), r.Y.Enlarge(amount))
}

// Center returns the center of the rectangle, truncating on integral
// T.
func (r Rect[T]) Center() Point[T] {
	return Pt(r.X.Center(), r.Y.Center())
}

// LowerCorner returns the lower-left corner.
func (r Rect[T]) LowerCorner() Point[T] {
	return Pt(r.X.Lb, r.Y.Lb)
}

// UpperCorner returns the upper-right corner.
func (r Rect[T]) UpperCorner() Point[T] {
	return Pt(r.X.Ub, r.Y.Ub)
}

// NearestTo returns the point within r nearest to p, clamping each
// coordinate into the corresponding interval.
func (r Rect[T]) NearestTo(p Point[T]) Point[T] {
	return Pt(r.X.NearestTo(p.X), r.Y.NearestTo(p.Y))
}

// Add returns the rectangle translated by v.
func (r Rect[T]) Add(v Vector2[T]) Rect[T] {
	return Rt(r.X.Add(v.X), r.Y.Add(v.Y))
}

// Sub returns the rectangle translated by -v.
func (r Rect[T]) Sub(v Vector2[T]) Rect[T] {
	return Rt(r.X.Sub(v.X), r.Y.Sub(v.Y))
}
