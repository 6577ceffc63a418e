// Package grid partitions a square canvas into a checkerboard of cells and
// splits every cell into two triangles.
//
// The cell diagonal alternates with the parity of row+col, so neighbouring
// cells never share a diagonal direction. Triangles are emitted in row-major
// order with half A before half B inside a cell; piece identifiers depend on
// that order.
package grid

import (
	"github.com/matzehuels/triangulator/pkg/geom"
)

// MinCoverage is the default share of a triangle that must lie inside the
// mask for the triangle to be kept.
const MinCoverage = 0.8

// Half selects one of the two triangles of a cell.
type Half int

const (
	// HalfA is the first triangle of a cell.
	HalfA Half = iota
	// HalfB is the second triangle of a cell.
	HalfB
)

// String returns "A" or "B".
func (h Half) String() string {
	if h == HalfB {
		return "B"
	}
	return "A"
}

// ParseHalf converts "A" or "B" to a Half.
func ParseHalf(s string) (Half, bool) {
	switch s {
	case "A":
		return HalfA, true
	case "B":
		return HalfB, true
	}
	return HalfA, false
}

// Triangle is one half of a grid cell.
type Triangle struct {
	Row, Col int
	Half     Half
	Poly     geom.Polygon
}

// Dims returns the number of rows and columns of cells for a canvas side and
// cell side: ceil(side/cell) in both directions.
func Dims(side, cell int) int {
	if side <= 0 || cell <= 0 {
		return 0
	}
	return (side + cell - 1) / cell
}

// Decompose splits a side×side canvas into cells of the given size and
// returns two triangles per cell. The last row and column are truncated at
// the canvas edge. Vertex coordinates are pixel indices: the far corner of
// a cell is its last pixel, not the next cell's first.
func Decompose(side, cell int) []Triangle {
	n := Dims(side, cell)
	tris := make([]Triangle, 0, 2*n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			a, b := Split(r, c, side, cell)
			tris = append(tris,
				Triangle{Row: r, Col: c, Half: HalfA, Poly: a},
				Triangle{Row: r, Col: c, Half: HalfB, Poly: b},
			)
		}
	}
	return tris
}

// Split returns the two triangles of cell (r, c).
//
// On even parity the diagonal runs from the top-left to the bottom-right
// corner; A is the upper-right half and B the lower-left. On odd parity the
// diagonal runs from the top-right to the bottom-left; A is the upper-left
// half and B the lower-right.
func Split(r, c, side, cell int) (a, b geom.Polygon) {
	x0 := float64(c * cell)
	y0 := float64(r * cell)
	x1 := float64(min((c+1)*cell, side) - 1)
	y1 := float64(min((r+1)*cell, side) - 1)

	if (r+c)%2 == 0 {
		a = geom.Polygon{{x0, y0}, {x1, y0}, {x1, y1}}
		b = geom.Polygon{{x0, y0}, {x1, y1}, {x0, y1}}
		return a, b
	}
	a = geom.Polygon{{x0, y0}, {x1, y0}, {x0, y1}}
	b = geom.Polygon{{x1, y0}, {x1, y1}, {x0, y1}}
	return a, b
}

// Selection is a triangle that passed the coverage test, together with the
// part of it that lies inside the mask.
type Selection struct {
	Triangle
	Coverage float64
	Clipped  geom.Polygon
}

// Select keeps the triangles whose coverage against mask is at least
// threshold and whose clipped polygon still has three or more vertices.
// Order is preserved.
func Select(tris []Triangle, mask geom.Polygon, threshold float64) []Selection {
	var out []Selection
	for _, t := range tris {
		cov := geom.Coverage(t.Poly, mask)
		if cov < threshold {
			continue
		}
		clipped := geom.Clip(t.Poly, mask)
		if len(clipped) < 3 {
			continue
		}
		out = append(out, Selection{Triangle: t, Coverage: cov, Clipped: clipped})
	}
	return out
}
