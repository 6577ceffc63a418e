// Package canvas renders a photo onto the square working canvas the masks
// are defined on, and draws the alignment preview shown while positioning it.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/matzehuels/triangulator/pkg/geom"
)

// Zoom limits.
const (
	MinScale = 0.1
	MaxScale = 5.0
)

// GuideRadius is the radius of an alignment dot in pixels.
const GuideRadius = 12

// Placement positions a photo on the canvas. The photo is centred on the
// canvas, moved by the offset, turned counter-clockwise by Rotation degrees
// and scaled by Scale.
type Placement struct {
	OffsetX  float64 `toml:"offset_x"`
	OffsetY  float64 `toml:"offset_y"`
	Scale    float64 `toml:"scale"`
	Rotation float64 `toml:"rotation"`
}

// Normalized returns p with a zero scale replaced by 1 and the scale clamped
// to [MinScale, MaxScale].
func (p Placement) Normalized() Placement {
	if p.Scale == 0 {
		p.Scale = 1
	}
	p.Scale = math.Max(MinScale, math.Min(MaxScale, p.Scale))
	return p
}

// Compose draws img onto a transparent size×size canvas according to p.
func Compose(img image.Image, p Placement, size int) *image.NRGBA {
	dst := imaging.New(size, size, color.NRGBA{})
	if img == nil || size <= 0 {
		return dst
	}
	p = p.Normalized()
	src := imaging.Clone(img)
	w, h := float64(src.Bounds().Dx()), float64(src.Bounds().Dy())

	rad := -p.Rotation * math.Pi / 180
	sin, cos := math.Sincos(rad)
	s := p.Scale
	cx := float64(size)/2 + p.OffsetX
	cy := float64(size)/2 + p.OffsetY

	m := f64.Aff3{
		s * cos, -s * sin, cx + s*(-cos*w/2+sin*h/2),
		s * sin, s * cos, cy + s*(-sin*w/2-cos*h/2),
	}
	draw.BiLinear.Transform(dst, m, src, src.Bounds(), draw.Over, nil)
	return dst
}

// Preview draws the alignment view over raster: guide dots, a 45% dark
// veil outside mask and a white outline along it.
func Preview(raster image.Image, mask geom.Polygon, guides []geom.Point) *image.NRGBA {
	dc := gg.NewContextForImage(raster)
	b := raster.Bounds()

	dc.SetRGBA(1, 1, 1, 0.9)
	for _, g := range guides {
		dc.DrawCircle(g.X, g.Y, GuideRadius)
		dc.Fill()
	}

	if len(mask) >= 3 {
		dc.DrawRectangle(0, 0, float64(b.Dx()), float64(b.Dy()))
		tracePolygon(dc, mask)
		dc.SetFillRule(gg.FillRuleEvenOdd)
		dc.SetRGBA(0, 0, 0, 0.45)
		dc.Fill()

		tracePolygon(dc, mask)
		dc.SetLineWidth(2)
		dc.SetRGBA(1, 1, 1, 0.9)
		dc.Stroke()
	}
	return imaging.Clone(dc.Image())
}

func tracePolygon(dc *gg.Context, p geom.Polygon) {
	dc.MoveTo(p[0].X, p[0].Y)
	for _, v := range p[1:] {
		dc.LineTo(v.X, v.Y)
	}
	dc.ClosePath()
}
