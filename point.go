package recti

import (
	"cmp"
	"fmt"
	"iter"

	"deedles.dev/xiter"
)

// Point is a location in the plane. In the capability algebra a point
// behaves as the smallest measurable unit: its width, height, and
// area are all 1, which lets code written for rectangles accept
// points without special cases.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Add returns the point translated by v.
func (p Point[T]) Add(v Vector2[T]) Point[T] {
	return Pt(p.X+v.X, p.Y+v.Y)
}

// Sub returns the point translated by -v.
func (p Point[T]) Sub(v Vector2[T]) Point[T] {
	return Pt(p.X-v.X, p.Y-v.Y)
}

// Displace returns the displacement vector from q to p, so that
// q.Add(p.Displace(q)) == p.
func (p Point[T]) Displace(q Point[T]) Vector2[T] {
	return Vec(p.X-q.X, p.Y-q.Y)
}

// Flip returns the point with its coordinates swapped.
func (p Point[T]) Flip() Point[T] {
	return Pt(p.Y, p.X)
}

// Rotate maps the point into the 45-degree rotated coordinate system
// (x-y, x+y) used for Manhattan geometry.
func (p Point[T]) Rotate() Point[T] {
	return Pt(p.X-p.Y, p.X+p.Y)
}

// InvRotate is the inverse of [Point.Rotate] up to integer
// truncation: it maps (x, y) to ((x+y)/2, (y-x)/2).
func (p Point[T]) InvRotate() Point[T] {
	return Pt((p.X+p.Y)/2, (p.Y-p.X)/2)
}

// Overlaps reports whether p and q coincide. Two points overlap only
// when they are equal.
func (p Point[T]) Overlaps(q Point[T]) bool {
	return p == q
}

// Contains reports whether p contains q. A point contains only
// itself.
func (p Point[T]) Contains(q Point[T]) bool {
	return p == q
}

// MinDistWith returns the Manhattan distance between p and q.
func (p Point[T]) MinDistWith(q Point[T]) T {
	return p.Displace(q).ManhattanLen()
}

// HullWith returns the bounding box spanning both points.
func (p Point[T]) HullWith(q Point[T]) Rect[T] {
	return Rt(HullValues(p.X, q.X), HullValues(p.Y, q.Y))
}

// Enlarge returns the box centered on p with half-width amount on
// each axis.
func (p Point[T]) Enlarge(amount T) Rect[T] {
	return Rt(EnlargeValue(p.X, amount), EnlargeValue(p.Y, amount))
}

// Rect returns the zero-extent rectangle [x, x] x [y, y] occupying
// the point. Note that its interval widths are 0, unlike the point's
// own unit measure.
func (p Point[T]) Rect() Rect[T] {
	return Rt(Iv(p.X, p.X), Iv(p.Y, p.Y))
}

// Width returns the unit extent of a point.
func (p Point[T]) Width() T { return 1 }

// Height returns the unit extent of a point.
func (p Point[T]) Height() T { return 1 }

// Area returns the unit measure of a point.
func (p Point[T]) Area() T { return 1 }

// Measure returns the unit measure of a point.
func (p Point[T]) Measure() T { return 1 }

// Center returns the point itself.
func (p Point[T]) Center() Point[T] { return p }

// LowerCorner returns the point itself.
func (p Point[T]) LowerCorner() Point[T] { return p }

// UpperCorner returns the point itself.
func (p Point[T]) UpperCorner() Point[T] { return p }

// Compare orders points lexicographically by (X, Y).
func (p Point[T]) Compare(q Point[T]) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// Less reports whether p orders before q lexicographically.
func (p Point[T]) Less(q Point[T]) bool {
	return p.Compare(q) < 0
}

// NearestPointTo scans candidates for the point with the smallest
// Manhattan distance to p, returning it together with its position in
// the sequence. Ties resolve to the earliest candidate. The index is
// -1 if the sequence is empty.
func NearestPointTo[T Scalar](p Point[T], candidates iter.Seq[Point[T]]) (Point[T], int) {
	var best Point[T]
	var bestDist T
	bestIdx := -1
	for i, q := range xiter.Enumerate(candidates) {
		d := p.MinDistWith(q)
		if bestIdx < 0 || d < bestDist {
			best, bestDist, bestIdx = q, d, i
		}
	}
	return best, bestIdx
}
