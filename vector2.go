package recti

import (
	"fmt"
	"math"
)

// Vector2 is a free 2-D displacement. Unlike the other types in this
// package it has in-place arithmetic in addition to the value-returning
// operators; see the Assign methods.
type Vector2[T Scalar] struct {
	X, Y T
}

// Vec is shorthand for Vector2[T]{x, y}.
func Vec[T Scalar](x, y T) Vector2[T] {
	return Vector2[T]{X: x, Y: y}
}

func (v Vector2[T]) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}

// Add returns the vector sum v + w.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vec(v.X+w.X, v.Y+w.Y)
}

// Sub returns the vector difference v - w.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	return Vec(v.X-w.X, v.Y-w.Y)
}

// Neg returns the negation of v.
func (v Vector2[T]) Neg() Vector2[T] {
	return Vec(-v.X, -v.Y)
}

// Mul returns v scaled by k.
func (v Vector2[T]) Mul(k T) Vector2[T] {
	return Vec(v.X*k, v.Y*k)
}

// Div returns v scaled by 1/k. k must be nonzero; the division is not
// guarded.
func (v Vector2[T]) Div(k T) Vector2[T] {
	return Vec(v.X/k, v.Y/k)
}

// Scale returns k * v. It is the commutative counterpart of
// [Vector2.Mul].
func Scale[T Scalar](k T, v Vector2[T]) Vector2[T] {
	return v.Mul(k)
}

// Dot returns the dot product of v and w.
func (v Vector2[T]) Dot(w Vector2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2-D scalar cross product of v and w. It is
// positive when w is a counter-clockwise turn from v.
func (v Vector2[T]) Cross(w Vector2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// ManhattanLen returns the L1 norm |x| + |y|.
func (v Vector2[T]) ManhattanLen() T {
	x, y := v.X, v.Y
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return x + y
}

// LenSq returns the squared L2 norm. For integral T the result is
// exact.
func (v Vector2[T]) LenSq() T {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the L2 norm. It is always computed in floating point,
// even for integral T, to avoid truncation.
func (v Vector2[T]) Len() float64 {
	return math.Hypot(float64(v.X), float64(v.Y))
}

// AddAssign adds w to v in place. The Assign methods mutate their
// receiver and must not be used on vectors shared between goroutines
// without external synchronization.
func (v *Vector2[T]) AddAssign(w Vector2[T]) {
	v.X += w.X
	v.Y += w.Y
}

// SubAssign subtracts w from v in place.
func (v *Vector2[T]) SubAssign(w Vector2[T]) {
	v.X -= w.X
	v.Y -= w.Y
}

// MulAssign scales v by k in place.
func (v *Vector2[T]) MulAssign(k T) {
	v.X *= k
	v.Y *= k
}

// DivAssign scales v by 1/k in place. k must be nonzero.
func (v *Vector2[T]) DivAssign(k T) {
	v.X /= k
	v.Y /= k
}
