package sheet

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/triangulator/pkg/cache"
	errs "github.com/matzehuels/triangulator/pkg/errors"
	"github.com/matzehuels/triangulator/pkg/grid"
	"github.com/matzehuels/triangulator/pkg/piece"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestTables(t *testing.T) {
	tests := []struct {
		sheet    Sheet
		entries  int
		overlays int
	}{
		{Red(), 96, 22},
		{Green(), 77, 20},
	}

	for _, tt := range tests {
		t.Run(tt.sheet.Name, func(t *testing.T) {
			if len(tt.sheet.Mapping) != tt.entries {
				t.Errorf("mapping has %d entries, want %d", len(tt.sheet.Mapping), tt.entries)
			}
			if len(tt.sheet.Overlays) != tt.overlays {
				t.Errorf("overlay list has %d marks, want %d", len(tt.sheet.Overlays), tt.overlays)
			}

			type pos struct {
				row, col int
				half     grid.Half
			}
			seen := make(map[pos]bool)
			ids := make(map[int]bool)
			for _, e := range tt.sheet.Mapping {
				p := pos{e.Row, e.Col, e.Half}
				if seen[p] {
					t.Errorf("position %v mapped twice", p)
				}
				seen[p] = true
				if ids[e.ID] {
					t.Errorf("id %d mapped twice", e.ID)
				}
				ids[e.ID] = true

				if e.Row < 0 || e.Row >= DefaultCells || e.Col < 0 || e.Col >= DefaultCells {
					t.Errorf("entry %v outside the grid", e)
				}
				if m := e.ID / piece.IDBase; m < 1 || m > 8 || e.ID%piece.IDBase == 0 {
					t.Errorf("entry %v has invalid id", e)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	s := Red()
	if id, ok := s.Lookup(0, 0, grid.HalfB); !ok || id != 816 {
		t.Errorf("Lookup(0,0,B) = %d, %v, want 816", id, ok)
	}
	if id, ok := s.Lookup(0, 0, grid.HalfA); !ok || id != 815 {
		t.Errorf("Lookup(0,0,A) = %d, %v, want 815", id, ok)
	}
	if _, ok := s.Lookup(0, 3, grid.HalfB); ok {
		t.Error("Lookup(0,3,B) should be unmapped")
	}
}

func TestMarksAppendCentre(t *testing.T) {
	for _, s := range All() {
		marks := s.Marks()
		if len(marks) != len(s.Overlays)+1 {
			t.Fatalf("%s: %d marks", s.Name, len(marks))
		}
		last := marks[len(marks)-1]
		if last.Label != s.CenterLabel || last.X != 50 || last.Y != 50 {
			t.Errorf("%s: last mark = %+v", s.Name, last)
		}
	}
	if Red().CenterLabel != "comR" || Green().CenterLabel != "comG" {
		t.Error("unexpected centre labels")
	}
	if Red().Filename() != "RED.png" {
		t.Errorf("Filename() = %s", Red().Filename())
	}
}

func TestAssembleEmptyPool(t *testing.T) {
	a := NewAssembler(rand.New(rand.NewPCG(1, 1)), nil)
	img, stats, err := a.Assemble(context.Background(), Red(), piece.NewPool())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if img.Bounds().Dx() != DefaultSize || img.Bounds().Dy() != DefaultSize {
		t.Fatalf("sheet is %v", img.Bounds())
	}
	if stats.Skipped != 128 || stats.Placed() != 0 {
		t.Errorf("stats = %+v, want 128 skipped", stats)
	}
	for _, p := range []image.Point{{0, 0}, {600, 600}, {1199, 1199}} {
		if c := img.NRGBAAt(p.X, p.Y); c != white {
			t.Errorf("pixel %v = %v, want white", p, c)
		}
	}
}

func TestAssembleFallback(t *testing.T) {
	pool := piece.NewPool()
	pool.Add(999, imaging.New(piece.DefaultExportSize, piece.DefaultExportSize, red))

	a := NewAssembler(rand.New(rand.NewPCG(1, 1)), nil)
	img, stats, err := a.Assemble(context.Background(), Green(), pool)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if stats.Fallback != 128 || stats.Mapped != 0 || stats.Skipped != 0 {
		t.Errorf("stats = %+v, want 128 fallbacks", stats)
	}
	if c := img.NRGBAAt(75, 75); c != red {
		t.Errorf("cell (0,0) centre = %v, want red", c)
	}
}

func TestAssembleMapped(t *testing.T) {
	pool := piece.NewPool()
	pool.Add(815, imaging.New(150, 150, red))
	pool.Add(816, imaging.New(150, 150, black))

	a := NewAssembler(rand.New(rand.NewPCG(1, 1)), nil)
	_, stats, err := a.Assemble(context.Background(), Red(), pool)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if stats.Mapped != 2 || stats.Fallback != 126 {
		t.Errorf("stats = %+v, want 2 mapped and 126 fallbacks", stats)
	}
}

func TestAssembleRestoresCutOrientation(t *testing.T) {
	// A piece cut from an even-parity cell and placed back at an
	// even-parity position regains its original orientation: extraction
	// turns it by ToCCW(90), placement by the raw 90.
	src := imaging.New(400, 400, red)
	a, _ := grid.Split(2, 2, 400, 50)
	cut := piece.NewExtractor(50).Cut(src, grid.Selection{
		Triangle: grid.Triangle{Row: 2, Col: 2, Half: grid.HalfA, Poly: a},
		Coverage: 1,
		Clipped:  a,
	})

	pool := piece.NewPool()
	pool.Add(101, cut)
	pool.Add(102, imaging.New(150, 150, color.NRGBA{}))

	s := Sheet{Name: "T", Mapping: []Entry{
		{0, 0, grid.HalfA, 101},
		{0, 0, grid.HalfB, 102},
	}}
	asm := &Assembler{Size: 150, Cells: 1}
	img, _, err := asm.Assemble(context.Background(), s, pool)
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}

	// Half A of an even cell is the upper-right triangle.
	if c := img.NRGBAAt(140, 10); c != red {
		t.Errorf("upper-right pixel = %v, want red", c)
	}
	if c := img.NRGBAAt(10, 140); c != white {
		t.Errorf("lower-left pixel = %v, want white", c)
	}
}

func TestAssembleDeterministic(t *testing.T) {
	pool := piece.NewPool()
	for i, c := range []color.NRGBA{red, black, {B: 255, A: 255}, {G: 255, A: 255}} {
		pool.Add(900+i, imaging.New(150, 150, c))
	}

	render := func() *image.NRGBA {
		a := NewAssembler(rand.New(rand.NewPCG(7, 7)), nil)
		img, _, err := a.Assemble(context.Background(), Red(), pool)
		if err != nil {
			t.Fatalf("Assemble() error: %v", err)
		}
		return img
	}

	first, second := render(), render()
	for i := range first.Pix {
		if first.Pix[i] != second.Pix[i] {
			t.Fatal("same seed produced different sheets")
		}
	}
}

func TestAssembleOverlays(t *testing.T) {
	src := MapSource{"comR": imaging.New(10, 10, black)}
	a := NewAssembler(rand.New(rand.NewPCG(1, 1)), src)

	img, stats, err := a.Assemble(context.Background(), Red(), piece.NewPool())
	if err != nil {
		t.Fatalf("Assemble() error: %v", err)
	}
	if stats.Overlays != 1 {
		t.Errorf("Overlays = %d, want 1", stats.Overlays)
	}
	if len(stats.Missing) != len(Red().Overlays) {
		t.Errorf("Missing = %d labels, want %d", len(stats.Missing), len(Red().Overlays))
	}

	tests := []struct {
		p    image.Point
		want color.NRGBA
	}{
		{image.Pt(595, 595), black},
		{image.Pt(604, 604), black},
		{image.Pt(594, 594), white},
		{image.Pt(605, 605), white},
	}
	for _, tt := range tests {
		if c := img.NRGBAAt(tt.p.X, tt.p.Y); c != tt.want {
			t.Errorf("pixel %v = %v, want %v", tt.p, c, tt.want)
		}
	}
}

// cancellingSource cancels the assembly from inside the first overlay load.
type cancellingSource struct {
	cancel context.CancelFunc
}

func (s cancellingSource) Overlay(ctx context.Context, label string) (image.Image, error) {
	s.cancel()
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestAssembleCancelledDuringOverlays(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a := NewAssembler(rand.New(rand.NewPCG(1, 1)), cancellingSource{cancel: cancel})

	_, _, err := a.Assemble(ctx, Green(), piece.NewPool())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Assemble() error = %v, want context.Canceled", err)
	}
}

func TestMarkOrigin(t *testing.T) {
	tests := []struct {
		name string
		mark Mark
		sz   image.Point
		want image.Point
	}{
		{"even size at centre", Mark{X: 50, Y: 50}, image.Pt(10, 10), image.Pt(595, 595)},
		{"odd size at centre", Mark{X: 50, Y: 50}, image.Pt(11, 7), image.Pt(594, 596)},
		{"fractional centre", Mark{X: 33.33, Y: 10}, image.Pt(10, 10), image.Pt(394, 115)},
		{"near the edge", Mark{X: 0, Y: 0}, image.Pt(5, 5), image.Pt(-3, -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := markOrigin(DefaultSize, tt.mark, tt.sz); got != tt.want {
				t.Errorf("markOrigin() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAssembleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewAssembler(nil, nil).Assemble(ctx, Red(), piece.NewPool()); err == nil {
		t.Error("Assemble() with cancelled context should fail")
	}
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "K.png")
	if err := imaging.Save(imaging.New(4, 6, black), path); err != nil {
		t.Fatal(err)
	}

	src := NewDirSource(dir, cache.NewMemoryCache())
	ctx := context.Background()

	img, err := src.Overlay(ctx, "K")
	if err != nil {
		t.Fatalf("Overlay(K) error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 6 {
		t.Errorf("Overlay(K) is %v", b)
	}

	// The bytes are cached, so a removed file still loads.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if _, err := src.Overlay(ctx, "K"); err != nil {
		t.Errorf("cached Overlay(K) error: %v", err)
	}

	if _, err := src.Overlay(ctx, "missing"); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("Overlay(missing) error = %v, want FILE_NOT_FOUND", err)
	}
	if _, err := src.Overlay(ctx, "../K"); !errs.Is(err, errs.ErrCodeInvalidLabel) {
		t.Errorf("Overlay(../K) error = %v, want INVALID_LABEL", err)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{0, 2, 0},
		{5, 2, 2},
		{-1, 2, -1},
		{-4, 2, -2},
		{-5, 2, -3},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
