package recti

import (
	"cmp"
	"fmt"
)

// Interval is a closed range [Lb, Ub] over a scalar coordinate type.
// The zero value is the empty but valid interval [0, 0]. An interval
// with Lb > Ub is invalid; invalid intervals are ordinary values used
// to represent "no result", not errors.
type Interval[T Scalar] struct {
	Lb, Ub T
}

// Iv is shorthand for Interval[T]{lb, ub}.
func Iv[T Scalar](lb, ub T) Interval[T] {
	return Interval[T]{Lb: lb, Ub: ub}
}

// Invalid returns the canonical invalid interval [1, 0]. It is the
// result of intersecting disjoint intervals.
func Invalid[T Scalar]() Interval[T] {
	return Interval[T]{Lb: 1, Ub: 0}
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.Lb, i.Ub)
}

// IsValid reports whether Lb <= Ub.
func (i Interval[T]) IsValid() bool { return i.Lb <= i.Ub }

// IsInvalid reports whether Lb > Ub.
func (i Interval[T]) IsInvalid() bool { return i.Lb > i.Ub }

// IsEmpty reports whether the interval is a single point.
func (i Interval[T]) IsEmpty() bool { return i.Lb == i.Ub }

// Width returns Ub - Lb. It is negative for invalid intervals.
func (i Interval[T]) Width() T { return i.Ub - i.Lb }

// Measure returns the length of the interval.
func (i Interval[T]) Measure() T { return i.Width() }

// Center returns the midpoint of the interval. For integral T the
// division truncates, so the center of a valid interval never falls
// below Lb.
func (i Interval[T]) Center() T {
	return i.Lb + (i.Ub-i.Lb)/2
}

// LowerCorner returns the lower bound.
func (i Interval[T]) LowerCorner() T { return i.Lb }

// UpperCorner returns the upper bound.
func (i Interval[T]) UpperCorner() T { return i.Ub }

// Overlaps reports whether i and o share at least one value. Touching
// endpoints count as overlap.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	return i.Lb <= o.Ub && o.Lb <= i.Ub
}

// OverlapsValue reports whether v lies within the interval.
func (i Interval[T]) OverlapsValue(v T) bool {
	return i.Lb <= v && v <= i.Ub
}

// Contains reports whether o lies entirely within i.
func (i Interval[T]) Contains(o Interval[T]) bool {
	return i.Lb <= o.Lb && o.Ub <= i.Ub
}

// ContainsValue reports whether v lies within the interval.
func (i Interval[T]) ContainsValue(v T) bool {
	return i.Lb <= v && v <= i.Ub
}

// IntersectWith returns the largest interval contained by both i and
// o. If the two intervals do not overlap, the result is the canonical
// invalid interval.
func (i Interval[T]) IntersectWith(o Interval[T]) Interval[T] {
	if !i.Overlaps(o) {
		return Invalid[T]()
	}
	return Iv(max(i.Lb, o.Lb), min(i.Ub, o.Ub))
}

// HullWith returns the smallest interval containing both i and o.
func (i Interval[T]) HullWith(o Interval[T]) Interval[T] {
	return Iv(min(i.Lb, o.Lb), max(i.Ub, o.Ub))
}

// HullWithValue returns the smallest interval containing both i and v.
func (i Interval[T]) HullWithValue(v T) Interval[T] {
	return Iv(min(i.Lb, v), max(i.Ub, v))
}

// MinDistWith returns the minimum distance between i and o: zero when
// they overlap, otherwise the gap between the nearer endpoints.
func (i Interval[T]) MinDistWith(o Interval[T]) T {
	switch {
	case i.Ub < o.Lb:
		return o.Lb - i.Ub
	case o.Ub < i.Lb:
		return i.Lb - o.Ub
	}
	return 0
}

// MinDistWithValue returns the distance from v to the nearest value
// in the interval, zero if the interval contains v.
func (i Interval[T]) MinDistWithValue(v T) T {
	switch {
	case i.Ub < v:
		return v - i.Ub
	case v < i.Lb:
		return i.Lb - v
	}
	return 0
}

// Enlarge grows the interval by amount on both ends. A negative
// amount shrinks it and may produce an invalid interval; the result
// is returned as-is.
func (i Interval[T]) Enlarge(amount T) Interval[T] {
	return Iv(i.Lb-amount, i.Ub+amount)
}

// NearestTo returns the value in the interval nearest to v.
func (i Interval[T]) NearestTo(v T) T {
	switch {
	case i.Ub < v:
		return i.Ub
	case v < i.Lb:
		return i.Lb
	}
	return v
}

// Displace returns the per-bound displacement from o to i.
func (i Interval[T]) Displace(o Interval[T]) Interval[T] {
	return Iv(i.Lb-o.Lb, i.Ub-o.Ub)
}

// Add returns the interval translated up by v.
func (i Interval[T]) Add(v T) Interval[T] {
	return Iv(i.Lb+v, i.Ub+v)
}

// Sub returns the interval translated down by v.
func (i Interval[T]) Sub(v T) Interval[T] {
	return Iv(i.Lb-v, i.Ub-v)
}

// Mul returns the interval scaled by v. Scaling by a negative value
// produces an invalid interval; guarding against that is the caller's
// responsibility.
func (i Interval[T]) Mul(v T) Interval[T] {
	return Iv(i.Lb*v, i.Ub*v)
}

// Neg returns the interval reflected about zero.
func (i Interval[T]) Neg() Interval[T] {
	return Iv(-i.Ub, -i.Lb)
}

// Compare orders intervals lexicographically by (Lb, Ub).
func (i Interval[T]) Compare(o Interval[T]) int {
	if c := cmp.Compare(i.Lb, o.Lb); c != 0 {
		return c
	}
	return cmp.Compare(i.Ub, o.Ub)
}

// HullValues returns the smallest interval containing both scalars,
// in either argument order.
func HullValues[T Scalar](a, b T) Interval[T] {
	return Iv(min(a, b), max(a, b))
}

// EnlargeValue treats v as a zero-width interval and enlarges it by
// amount on both ends.
func EnlargeValue[T Scalar](v, amount T) Interval[T] {
	return Iv(v-amount, v+amount)
}
