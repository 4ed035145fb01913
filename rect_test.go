package recti_test

import (
	"testing"

	"deedles.dev/recti"
	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))
	o := recti.Rt(recti.Iv(3, 7), recti.Iv(4, 8))

	require.True(t, r.Overlaps(o))
	require.True(t, o.Overlaps(r))
	require.Equal(t, 4, r.Width())
	require.Equal(t, 4, r.Height())
	require.Equal(t, 16, r.Area())
	require.Equal(t, 16, r.Measure())
	require.Equal(t, recti.Pt(3, 4), r.Center())
}

func TestRectCorners(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))

	require.Equal(t, recti.Pt(1, 2), r.LowerCorner())
	require.Equal(t, recti.Pt(5, 6), r.UpperCorner())
	require.True(t, r.ContainsPoint(r.LowerCorner()))
	require.True(t, r.ContainsPoint(r.UpperCorner()))
}

func TestRectContains(t *testing.T) {
	r := recti.Rt(recti.Iv(2, 8), recti.Iv(1, 10))

	require.True(t, r.Contains(recti.Rt(recti.Iv(3, 7), recti.Iv(2, 9))))
	require.True(t, r.Contains(r))
	require.False(t, r.Contains(recti.Rt(recti.Iv(3, 9), recti.Iv(2, 9))))

	require.True(t, r.ContainsPoint(recti.Pt(3, 4)))
	require.False(t, r.ContainsPoint(recti.Pt(9, 4)))

	// Overlap on one axis only is not overlap.
	require.False(t, r.Overlaps(recti.Rt(recti.Iv(3, 7), recti.Iv(20, 30))))
}

func TestRectIntersect(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))
	o := recti.Rt(recti.Iv(3, 7), recti.Iv(4, 8))

	require.Equal(t, recti.Rt(recti.Iv(3, 5), recti.Iv(4, 6)), r.IntersectWith(o))

	// Disjoint on x: the x component comes back invalid, and the
	// area of the result goes negative rather than being corrected.
	d := r.IntersectWith(recti.Rt(recti.Iv(10, 15), recti.Iv(4, 8)))
	require.True(t, d.X.IsInvalid())
	require.False(t, d.IsValid())
	require.Equal(t, recti.Invalid[int](), d.X)
	require.Negative(t, d.Area())
}

func TestRectHull(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))
	o := recti.Rt(recti.Iv(10, 15), recti.Iv(-3, 0))

	h := r.HullWith(o)
	require.Equal(t, recti.Rt(recti.Iv(1, 15), recti.Iv(-3, 6)), h)
	require.True(t, h.Contains(r))
	require.True(t, h.Contains(o))
	require.Equal(t, h, o.HullWith(r))

	hp := r.HullWithPoint(recti.Pt(8, 0))
	require.True(t, hp.Contains(r))
	require.True(t, hp.ContainsPoint(recti.Pt(8, 0)))
}

func TestRectMinDist(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))

	require.Zero(t, r.MinDistWith(recti.Rt(recti.Iv(3, 7), recti.Iv(4, 8))))
	require.Equal(t, 5, r.MinDistWith(recti.Rt(recti.Iv(10, 15), recti.Iv(2, 6))))

	// Manhattan distance sums the per-axis gaps.
	require.Equal(t, 7, r.MinDistWith(recti.Rt(recti.Iv(10, 15), recti.Iv(8, 9))))

	require.Equal(t, 3, r.MinDistToPoint(recti.Pt(7, 7)))
	require.Zero(t, r.MinDistToPoint(recti.Pt(3, 4)))

	// Zero distance exactly when overlapping.
	for _, o := range []recti.Rect[int]{
		recti.Rt(recti.Iv(5, 9), recti.Iv(6, 9)),
		recti.Rt(recti.Iv(6, 9), recti.Iv(2, 6)),
		recti.Rt(recti.Iv(-4, 0), recti.Iv(-4, 1)),
	} {
		d := r.MinDistWith(o)
		require.GreaterOrEqual(t, d, 0)
		require.Equal(t, r.Overlaps(o), d == 0)
		require.Equal(t, d, o.MinDistWith(r))
	}
}

func TestRectFlip(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))

	require.Equal(t, recti.Rt(recti.Iv(2, 6), recti.Iv(1, 5)), r.Flip())
	require.Equal(t, r, r.Flip().Flip())
}

func TestRectEnlarge(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))

	require.Equal(t, recti.Rt(recti.Iv(0, 6), recti.Iv(1, 7)), r.Enlarge(1))
	require.False(t, r.Enlarge(-3).IsValid())
}

func TestRectTranslate(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))
	v := recti.Vec(10, -2)

	require.Equal(t, recti.Rt(recti.Iv(11, 15), recti.Iv(0, 4)), r.Add(v))
	require.Equal(t, r, r.Add(v).Sub(v))
}

func TestRectNearestTo(t *testing.T) {
	r := recti.Rt(recti.Iv(3, 4), recti.Iv(5, 6))

	require.Equal(t, recti.Pt(3, 5), r.NearestTo(recti.Pt(3, 4)))
	require.Equal(t, recti.Pt(4, 6), r.NearestTo(recti.Pt(5, 6)))
	require.Equal(t, recti.Pt(3, 5), r.NearestTo(recti.Pt(0, 0)))
}

func TestRectInvalid(t *testing.T) {
	var zero recti.Rect[int]
	require.True(t, zero.IsValid())

	bad := recti.Rt(recti.Invalid[int](), recti.Iv(0, 2))
	require.False(t, bad.IsValid())

	// Area of an invalid rectangle is not corrected.
	require.Equal(t, -2, bad.Area())
}

func TestRectString(t *testing.T) {
	r := recti.Rt(recti.Iv(1, 5), recti.Iv(2, 6))
	require.Equal(t, "([1, 5], [2, 6])", r.String())
}
