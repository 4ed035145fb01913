package recti

// The capability interfaces below define the method set a shape type
// must expose to participate in the generic operations. There is no
// common base type: a shape opts in per operation by implementing the
// corresponding single-method interface, and any new shape that
// supplies the methods works with every function here unchanged.

// Overlapper is the capability of testing overlap against S.
type Overlapper[S any] interface {
	Overlaps(S) bool
}

// Container is the capability of testing containment of S.
type Container[S any] interface {
	Contains(S) bool
}

// MinDister is the capability of measuring the minimum distance to S.
type MinDister[S any, T Scalar] interface {
	MinDistWith(S) T
}

// Huller is the capability of computing a bounding hull with S.
type Huller[S, H any] interface {
	HullWith(S) H
}

// Enlarger is the capability of growing by a scalar amount.
type Enlarger[T Scalar, E any] interface {
	Enlarge(T) E
}

// Centerer is the capability of reporting a center.
type Centerer[C any] interface {
	Center() C
}

// Measurer is the capability of reporting a measure (length or area).
type Measurer[M any] interface {
	Measure() M
}

// LowerCornerer is the capability of reporting a lower corner.
type LowerCornerer[C any] interface {
	LowerCorner() C
}

// UpperCornerer is the capability of reporting an upper corner.
type UpperCornerer[C any] interface {
	UpperCorner() C
}

// Overlap reports whether a and b overlap.
func Overlap[S any](a Overlapper[S], b S) bool {
	return a.Overlaps(b)
}

// Contain reports whether a contains b.
func Contain[S any](a Container[S], b S) bool {
	return a.Contains(b)
}

// MinDist returns the minimum distance between a and b. It is zero
// exactly when the two overlap.
func MinDist[S any, T Scalar](a MinDister[S, T], b S) T {
	return a.MinDistWith(b)
}

// Hull returns the smallest shape containing both a and b.
func Hull[S, H any](a Huller[S, H], b S) H {
	return a.HullWith(b)
}

// EnlargedBy returns a grown by amount on every side.
func EnlargedBy[T Scalar, E any](a Enlarger[T, E], amount T) E {
	return a.Enlarge(amount)
}

// CenterOf returns the center of a.
func CenterOf[C any](a Centerer[C]) C {
	return a.Center()
}

// MeasureOf returns the measure of a: length for intervals and
// segments, area for rectangles, the unit 1 for points.
func MeasureOf[M any](a Measurer[M]) M {
	return a.Measure()
}

// LowerCornerOf returns the lower corner of a.
func LowerCornerOf[C any](a LowerCornerer[C]) C {
	return a.LowerCorner()
}

// UpperCornerOf returns the upper corner of a.
func UpperCornerOf[C any](a UpperCornerer[C]) C {
	return a.UpperCorner()
}
