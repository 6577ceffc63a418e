// Package sheet assembles the RED and GREEN sheets from a piece pool.
//
// A sheet is a square raster split into an 8×8 grid. Each cell holds two
// triangular pieces, one per half, placed according to a static mapping from
// (row, col, half) to piece identifier. Cells whose piece is not mapped or not
// in the pool are filled with a random piece from the pool; with an empty
// pool they stay white. Labelled overlay marks are composited last.
package sheet

import (
	"context"
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/triangulator/pkg/grid"
	"github.com/matzehuels/triangulator/pkg/piece"
)

const (
	// DefaultSize is the side of a finished sheet in pixels.
	DefaultSize = 1200

	// DefaultCells is the number of grid cells per side.
	DefaultCells = 8

	// overlayWorkers bounds concurrent overlay loads.
	overlayWorkers = 8
)

// Entry maps one triangle position to a piece identifier.
type Entry struct {
	Row, Col int
	Half     grid.Half
	ID       int
}

// Mark is an overlay image, named by Label, centred at X and Y percent of the
// sheet side.
type Mark struct {
	Label string
	X, Y  float64
}

// Sheet is a named layout.
type Sheet struct {
	Name        string
	Mapping     []Entry
	Overlays    []Mark
	CenterLabel string
}

// Red returns the RED layout.
func Red() Sheet {
	return Sheet{Name: "RED", Mapping: redMapping, Overlays: redOverlays, CenterLabel: "comR"}
}

// Green returns the GREEN layout.
func Green() Sheet {
	return Sheet{Name: "GREEN", Mapping: greenMapping, Overlays: greenOverlays, CenterLabel: "comG"}
}

// All returns every layout in output order.
func All() []Sheet {
	return []Sheet{Red(), Green()}
}

// Filename is the name the sheet is exported under.
func (s Sheet) Filename() string {
	return s.Name + ".png"
}

// Lookup returns the piece identifier mapped to (row, col, half).
func (s Sheet) Lookup(row, col int, half grid.Half) (int, bool) {
	for _, e := range s.Mapping {
		if e.Row == row && e.Col == col && e.Half == half {
			return e.ID, true
		}
	}
	return 0, false
}

// Marks returns the overlay marks followed by the centre mark.
func (s Sheet) Marks() []Mark {
	marks := make([]Mark, 0, len(s.Overlays)+1)
	marks = append(marks, s.Overlays...)
	if s.CenterLabel != "" {
		marks = append(marks, Mark{Label: s.CenterLabel, X: 50, Y: 50})
	}
	return marks
}

// Stats describes how a sheet was filled.
type Stats struct {
	Mapped   int // positions filled with their mapped piece
	Fallback int // positions filled with a random piece
	Skipped  int // positions left empty
	Overlays int // overlay marks drawn

	// Missing lists the overlay labels that could not be loaded.
	Missing []string
}

// Placed returns the number of positions that received a piece.
func (s Stats) Placed() int {
	return s.Mapped + s.Fallback
}

// Assembler builds sheets.
type Assembler struct {
	// Size is the sheet side in pixels.
	Size int

	// Cells is the number of grid cells per side.
	Cells int

	// Rand drives the fallback choice. Nil means a randomly seeded source.
	Rand *rand.Rand

	// Overlays supplies overlay images. Nil means no overlays are drawn.
	Overlays OverlaySource
}

// NewAssembler returns an assembler with the default geometry.
func NewAssembler(rng *rand.Rand, overlays OverlaySource) *Assembler {
	return &Assembler{
		Size:     DefaultSize,
		Cells:    DefaultCells,
		Rand:     rng,
		Overlays: overlays,
	}
}

// Assemble renders s from the pieces in pool. Missing pieces and overlays
// never fail the sheet; only a cancelled ctx does.
func (a *Assembler) Assemble(ctx context.Context, s Sheet, pool *piece.Pool) (*image.NRGBA, Stats, error) {
	size, cells := a.Size, a.Cells
	if size <= 0 {
		size = DefaultSize
	}
	if cells <= 0 {
		cells = DefaultCells
	}
	rng := a.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	cell := size / cells

	var stats Stats
	dst := imaging.New(size, size, color.White)

	for row := 0; row < cells; row++ {
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		for col := 0; col < cells; col++ {
			for _, half := range []grid.Half{grid.HalfA, grid.HalfB} {
				img, mapped := pick(s, pool, rng, row, col, half)
				if img == nil {
					stats.Skipped++
					continue
				}
				if mapped {
					stats.Mapped++
				} else {
					stats.Fallback++
				}
				place(dst, img, row, col, cell, piece.RotationCW(row, col, half))
			}
		}
	}

	if a.Overlays != nil {
		drawn, missing, err := a.composite(ctx, dst, s.Marks())
		if err != nil {
			return nil, stats, err
		}
		stats.Overlays, stats.Missing = drawn, missing
	}
	return dst, stats, nil
}

// pick chooses the piece for one position. The boolean reports whether the
// mapped piece was used.
func pick(s Sheet, pool *piece.Pool, rng *rand.Rand, row, col int, half grid.Half) (image.Image, bool) {
	if id, ok := s.Lookup(row, col, half); ok {
		if img, ok := pool.Get(id); ok {
			return img, true
		}
	}
	_, img, ok := pool.Random(rng)
	if !ok {
		return nil, false
	}
	return img, false
}

// place draws img centred in cell (row, col), turned clockwise by angle about
// its own centre.
func place(dst *image.NRGBA, img image.Image, row, col, cell, angle int) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	x := col*cell + floorDiv(cell-w, 2)
	y := row*cell + floorDiv(cell-h, 2)

	rotated := piece.RotateCW(img, angle)
	rw, rh := rotated.Bounds().Dx(), rotated.Bounds().Dy()
	at := image.Pt(x+floorDiv(w-rw, 2), y+floorDiv(h-rh, 2))

	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(image.Pt(rw, rh))}, rotated, image.Point{}, draw.Over)
}

// composite loads every mark concurrently, waits for all of them and then
// draws the ones that loaded, in list order. A mark that fails to load is
// reported as missing; cancellation stops the remaining loads and fails.
func (a *Assembler) composite(ctx context.Context, dst *image.NRGBA, marks []Mark) (int, []string, error) {
	images := make([]image.Image, len(marks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(overlayWorkers)
	for i, m := range marks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := a.Overlays.Overlay(gctx, m.Label)
			if err != nil {
				return gctx.Err()
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	size := dst.Bounds().Dx()
	var drawn int
	var missing []string
	for i, m := range marks {
		img := images[i]
		if img == nil {
			missing = append(missing, m.Label)
			continue
		}
		b := img.Bounds()
		at := markOrigin(size, m, b.Size())
		draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(b.Size())}, img, b.Min, draw.Over)
		drawn++
	}
	return drawn, missing, nil
}

// markOrigin returns the top-left pixel of an overlay of size sz centred on
// m. The centre is fractional; the origin is floored so odd-sized overlays
// land on the pixel containing the exact corner.
func markOrigin(sheetSize int, m Mark, sz image.Point) image.Point {
	cx := float64(sheetSize) * m.X / 100
	cy := float64(sheetSize) * m.Y / 100
	return image.Pt(
		int(math.Floor(cx-float64(sz.X)/2)),
		int(math.Floor(cy-float64(sz.Y)/2)),
	)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
