// Package piece cuts the masked part of a positioned photo into triangular
// pieces and keeps the session-wide pool of pieces.
//
// A piece is produced from every grid triangle that passes the coverage test:
// the triangle's clipped polygon is cut out of the source raster, everything
// outside the polygon becomes transparent, the cut-out is stretched to the
// export size and finally turned by the counter-clockwise equivalent of
// [RotationCW]. Sheet assembly turns it back by the clockwise angle, so a
// piece placed at the cell it was cut from regains its original orientation.
//
// Identifiers are maskID*100 + n, with n counting retained triangles from 1
// in row-major, half-A-first order.
package piece

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	"github.com/matzehuels/triangulator/pkg/geom"
	"github.com/matzehuels/triangulator/pkg/grid"
)

// DefaultExportSize is the side of a finished piece in pixels.
const DefaultExportSize = 150

// IDBase is the multiplier applied to the mask id when numbering pieces.
const IDBase = 100

// ID returns the identifier of the n-th (1-based) piece cut under maskID.
func ID(maskID, n int) int {
	return maskID*IDBase + n
}

// Piece is a finished triangular fragment.
type Piece struct {
	ID       int
	Row, Col int
	Half     grid.Half
	Image    *image.NRGBA
}

// Extractor turns a positioned raster into pieces.
type Extractor struct {
	// Cell is the grid cell side in pixels.
	Cell int

	// ExportSize is the side every piece is resized to.
	ExportSize int

	// Threshold is the minimum mask coverage of a kept triangle.
	Threshold float64
}

// NewExtractor returns an extractor with the default export size and
// coverage threshold.
func NewExtractor(cell int) *Extractor {
	return &Extractor{
		Cell:       cell,
		ExportSize: DefaultExportSize,
		Threshold:  grid.MinCoverage,
	}
}

// Extract cuts src under mask and returns the pieces in identifier order.
// src must be square; its side defines the grid. A raster without any
// qualifying triangle yields an empty slice and no error.
func (e *Extractor) Extract(src image.Image, maskID int, mask geom.Polygon) ([]Piece, error) {
	if src == nil {
		return nil, fmt.Errorf("no source raster")
	}
	b := src.Bounds()
	if b.Dx() != b.Dy() {
		return nil, fmt.Errorf("source raster must be square, got %dx%d", b.Dx(), b.Dy())
	}
	if e.Cell <= 0 {
		return nil, fmt.Errorf("invalid grid cell %d", e.Cell)
	}

	sel := grid.Select(grid.Decompose(b.Dx(), e.Cell), mask, e.Threshold)
	pieces := make([]Piece, 0, len(sel))
	n := 1
	for _, s := range sel {
		img := e.Cut(src, s)
		if img == nil {
			continue
		}
		pieces = append(pieces, Piece{
			ID:    ID(maskID, n),
			Row:   s.Row,
			Col:   s.Col,
			Half:  s.Half,
			Image: img,
		})
		n++
	}
	return pieces, nil
}

// Cut produces the finished image for one selected triangle, or nil if its
// clipped polygon has an empty bounding box.
func (e *Extractor) Cut(src image.Image, s grid.Selection) *image.NRGBA {
	box := s.Clipped.Bounds()
	if box.Empty() {
		return nil
	}
	origin := src.Bounds().Min

	region := imaging.Crop(src, box.Add(origin))
	masked := applyPolygon(region, s.Clipped.Translate(-float64(box.Min.X), -float64(box.Min.Y)), box.Dx(), box.Dy())

	size := e.ExportSize
	if size <= 0 {
		size = DefaultExportSize
	}
	resized := imaging.Resize(masked, size, size, imaging.Linear)

	return RotateCW(resized, ToCCW(RotationCW(s.Row, s.Col, s.Half)))
}

// applyPolygon keeps the pixels of region that fall inside poly (nonzero
// rule) and clears the rest. poly is in region-local coordinates.
func applyPolygon(region image.Image, poly geom.Polygon, w, h int) *image.NRGBA {
	dc := gg.NewContext(w, h)
	dc.MoveTo(poly[0].X, poly[0].Y)
	for _, p := range poly[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()
	dc.SetFillRule(gg.FillRuleWinding)
	dc.SetRGBA(0, 0, 0, 1)
	dc.Fill()
	alpha := dc.AsMask()

	out := imaging.New(w, h, color.NRGBA{})
	draw.DrawMask(out, out.Bounds(), region, region.Bounds().Min, alpha, image.Point{}, draw.Over)
	return out
}
