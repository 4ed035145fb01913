package recti

import (
	"iter"

	"deedles.dev/xiter"
)

// SplitX splits a rectangle into two rectangles arranged side by
// side, the left one w wide.
func SplitX[T Scalar](r Rect[T], w T) (left, right Rect[T]) {
	left = Rt(Iv(r.X.Lb, r.X.Lb+w), r.Y)
	right = Rt(Iv(r.X.Lb+w, r.X.Ub), r.Y)
	return left, right
}

// SplitY splits a rectangle into two rectangles stacked vertically,
// the bottom one h tall.
func SplitY[T Scalar](r Rect[T], h T) (bottom, top Rect[T]) {
	bottom = Rt(r.X, Iv(r.Y.Lb, r.Y.Lb+h))
	top = Rt(r.X, Iv(r.Y.Lb+h, r.Y.Ub))
	return bottom, top
}

// TileEvenX arranges and resizes the elements of tiles so that the
// result is an even, side-by-side splitting of r along the x axis.
func TileEvenX[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenX(len(tiles), r))
}

// TiledEvenX is the same as [TileEvenX] except that it yields the
// successive tiles from an iterator instead of inserting them into a
// slice.
func TiledEvenX[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		w := r.Width() / T(numtiles)
		c, _ := SplitX(r, w)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(Vec(w, 0))
		}
	}
}

// TileEvenY arranges and resizes the elements of tiles so that the
// result is an even, vertical splitting of r along the y axis.
func TileEvenY[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTilesFromSeq(tiles, TiledEvenY(len(tiles), r))
}

// TiledEvenY is the same as [TileEvenY] except that it yields the
// tiles from an iterator.
func TiledEvenY[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		h := r.Height() / T(numtiles)
		c, _ := SplitY(r, h)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Add(Vec(0, h))
		}
	}
}

// TileGrid arranges and resizes the elements of tiles to produce a
// row-major grid of rows and columns the union of which reproduces r.
// Each row is split evenly into at most cols columns; a final partial
// row holds whatever tiles remain.
func TileGrid[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTilesFromSeq(tiles, TiledGrid(len(tiles), r, cols))
}

// TiledGrid is the same as [TileGrid] except that it yields the tiles
// from an iterator.
func TiledGrid[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		for row := range TiledEvenY(numrows, r) {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenX(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as necessary
// if opposite edges are specified.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.Add(outer.Center().Displace(inner.Center()))
	switch {
	case edges&EdgeBottom != 0:
		inner.Y = Iv(outer.Y.Lb, outer.Y.Lb+inner.Height())
		if edges&EdgeTop != 0 {
			inner.Y.Ub = outer.Y.Ub
		}
	case edges&EdgeTop != 0:
		inner.Y = Iv(outer.Y.Ub-inner.Height(), outer.Y.Ub)
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.X = Iv(outer.X.Lb, outer.X.Lb+inner.Width())
		if edges&EdgeRight != 0 {
			inner.X.Ub = outer.X.Ub
		}
	case edges&EdgeRight != 0:
		inner.X = Iv(outer.X.Ub-inner.Width(), outer.X.Ub)
	}

	return inner
}

func insertTilesFromSeq[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
