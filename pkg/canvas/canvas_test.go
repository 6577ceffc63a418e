package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/triangulator/pkg/geom"
)

var red = color.NRGBA{R: 255, A: 255}

func TestNormalized(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 1},
		{1, 1},
		{0.01, MinScale},
		{10, MaxScale},
		{2.5, 2.5},
	}
	for _, tt := range tests {
		if got := (Placement{Scale: tt.in}).Normalized().Scale; got != tt.want {
			t.Errorf("Normalized(%v).Scale = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		img     image.Image
		p       Placement
		size    int
		opaque  []image.Point
		cleared []image.Point
	}{
		{
			name:   "identity",
			img:    imaging.New(100, 100, red),
			size:   100,
			opaque: []image.Point{{50, 50}, {5, 5}, {94, 94}},
		},
		{
			name:    "offset",
			img:     imaging.New(100, 100, red),
			p:       Placement{OffsetX: 50},
			size:    200,
			opaque:  []image.Point{{150, 100}, {190, 100}},
			cleared: []image.Point{{60, 100}, {100, 40}},
		},
		{
			name:    "scale",
			img:     imaging.New(200, 200, red),
			p:       Placement{Scale: 0.5},
			size:    200,
			opaque:  []image.Point{{100, 100}, {60, 60}},
			cleared: []image.Point{{25, 100}, {175, 100}},
		},
		{
			name:    "rotation",
			img:     imaging.New(100, 20, red),
			p:       Placement{Rotation: 90},
			size:    200,
			opaque:  []image.Point{{100, 60}, {100, 140}},
			cleared: []image.Point{{60, 100}, {140, 100}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Compose(tt.img, tt.p, tt.size)
			if b := out.Bounds(); b.Dx() != tt.size || b.Dy() != tt.size {
				t.Fatalf("canvas is %v", b)
			}
			for _, pt := range tt.opaque {
				if c := out.NRGBAAt(pt.X, pt.Y); c.A < 250 || c.R < 250 {
					t.Errorf("pixel %v = %v, want red", pt, c)
				}
			}
			for _, pt := range tt.cleared {
				if c := out.NRGBAAt(pt.X, pt.Y); c.A != 0 {
					t.Errorf("pixel %v = %v, want transparent", pt, c)
				}
			}
		})
	}
}

func TestComposeNil(t *testing.T) {
	out := Compose(nil, Placement{}, 10)
	if out.Bounds().Dx() != 10 || out.NRGBAAt(5, 5).A != 0 {
		t.Error("Compose(nil) should give an empty canvas")
	}
}

func TestPreview(t *testing.T) {
	square := geom.Polygon{{25, 25}, {75, 25}, {75, 75}, {25, 75}}

	out := Preview(imaging.New(100, 100, color.White), square, nil)
	if c := out.NRGBAAt(50, 50); c.R != 255 {
		t.Errorf("inside pixel = %v, want untouched white", c)
	}
	if c := out.NRGBAAt(5, 5); c.R < 130 || c.R > 150 {
		t.Errorf("outside pixel = %v, want darkened to about 140", c)
	}

	dots := Preview(imaging.New(100, 100, color.Black), square, []geom.Point{{50, 50}})
	if c := dots.NRGBAAt(50, 50); c.R < 200 {
		t.Errorf("guide dot pixel = %v, want bright", c)
	}
	if c := dots.NRGBAAt(50, 68); c.R != 0 {
		t.Errorf("pixel beyond guide radius = %v, want black", c)
	}
}
