// Package pipeline provides the cut → assemble pipeline of the triangulator.
//
// The CLI drives a session through this package so that cutting, caching,
// logging and sheet assembly behave the same for a single `cut` invocation
// and for a full `run` from a manifest.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Cut: render each photo onto the working canvas at its placement and
//     extract the triangles covered by the current mask
//  2. Assemble: lay the accumulated pieces out on the RED and GREEN sheets
//
// # Usage
//
// Run a whole session from a manifest:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	m, err := pipeline.LoadManifest("session.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := runner.Execute(ctx, m)
//
// Run individual stages:
//
//	pieces, hit, err := runner.Cut(ctx, input, opts)
//	sheets, err := runner.Sheets(ctx, pool, opts)
package pipeline

import (
	"fmt"
	"image"
	"time"

	"github.com/matzehuels/triangulator/pkg/cache"
	"github.com/matzehuels/triangulator/pkg/canvas"
	"github.com/matzehuels/triangulator/pkg/grid"
	"github.com/matzehuels/triangulator/pkg/mask"
	"github.com/matzehuels/triangulator/pkg/piece"
	"github.com/matzehuels/triangulator/pkg/session"
	"github.com/matzehuels/triangulator/pkg/sheet"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultCanvasSize is the working canvas side when no window is given.
	// It matches the space the masks are authored in, so masks are unscaled.
	DefaultCanvasSize = mask.ReferenceSize

	// DefaultExportSize is the side of every piece.
	DefaultExportSize = piece.DefaultExportSize

	// DefaultCoverage is the minimum share of a triangle inside the mask.
	DefaultCoverage = grid.MinCoverage

	// AnyCoverage set as Options.Coverage keeps every triangle that touches
	// the mask. A zero Coverage means DefaultCoverage.
	AnyCoverage = -1.0

	// DefaultSheetSize is the side of a finished sheet.
	DefaultSheetSize = sheet.DefaultSize

	// DefaultCells is the number of sheet cells per side.
	DefaultCells = sheet.DefaultCells
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
type Options struct {
	// Cut options
	Canvas     int     `json:"canvas,omitempty"`
	ExportSize int     `json:"export_size,omitempty"`
	Coverage   float64 `json:"coverage,omitempty"`

	// Sheet options
	SheetSize  int    `json:"sheet_size,omitempty"`
	Cells      int    `json:"cells,omitempty"`
	OverlayDir string `json:"overlay_dir,omitempty"`
	Seed       uint64 `json:"seed,omitempty"` // zero picks a random seed

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks the options and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCut(); err != nil {
		return err
	}
	if err := o.ValidateForSheets(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetCutDefaults sets default values for cutting.
func (o *Options) SetCutDefaults() {
	if o.Canvas == 0 {
		o.Canvas = DefaultCanvasSize
	}
	if o.ExportSize == 0 {
		o.ExportSize = DefaultExportSize
	}
	if o.Coverage == 0 {
		o.Coverage = DefaultCoverage
	}
}

// ValidateForCut sets defaults and validates the cut options.
func (o *Options) ValidateForCut() error {
	o.SetCutDefaults()
	if o.Canvas < mask.MinCanvasSize {
		return fmt.Errorf("canvas must be at least %d pixels, got %d", mask.MinCanvasSize, o.Canvas)
	}
	if o.ExportSize < 0 {
		return fmt.Errorf("export size cannot be negative")
	}
	if o.Coverage != AnyCoverage && (o.Coverage < 0 || o.Coverage > 1) {
		return fmt.Errorf("coverage must be within [0, 1] or AnyCoverage, got %v", o.Coverage)
	}
	return nil
}

// SetSheetDefaults sets default values for sheet assembly.
func (o *Options) SetSheetDefaults() {
	if o.SheetSize == 0 {
		o.SheetSize = DefaultSheetSize
	}
	if o.Cells == 0 {
		o.Cells = DefaultCells
	}
}

// ValidateForSheets sets defaults and validates the sheet options.
func (o *Options) ValidateForSheets() error {
	o.SetSheetDefaults()
	if o.Cells < 0 || o.SheetSize < 0 {
		return fmt.Errorf("sheet size and cells cannot be negative")
	}
	if o.SheetSize < o.Cells {
		return fmt.Errorf("sheet of %d pixels cannot hold %d cells", o.SheetSize, o.Cells)
	}
	return nil
}

// Threshold returns the coverage threshold a cut applies: Coverage, or zero
// for AnyCoverage.
func (o *Options) Threshold() float64 {
	if o.Coverage == AnyCoverage {
		return 0
	}
	return o.Coverage
}

// CutKeyOpts returns cache key options for one cut.
func (o *Options) CutKeyOpts(maskID int, p canvas.Placement) cache.CutKeyOpts {
	p = p.Normalized()
	return cache.CutKeyOpts{
		MaskID:     maskID,
		Canvas:     o.Canvas,
		ExportSize: o.ExportSize,
		Coverage:   o.Threshold(),
		OffsetX:    p.OffsetX,
		OffsetY:    p.OffsetY,
		Scale:      p.Scale,
		Rotation:   p.Rotation,
	}
}

// =============================================================================
// Results
// =============================================================================

// CutInput is one photo positioned for one mask.
type CutInput struct {
	Photo     image.Image
	PhotoHash string // content hash of the photo file; empty disables caching
	MaskID    int
	Placement canvas.Placement
}

// CutResult describes one cut recorded into a session.
type CutResult struct {
	session.Result
	Pieces   []piece.Piece
	CacheHit bool
	Duration time.Duration
}

// SheetResult is one assembled sheet.
type SheetResult struct {
	Sheet    sheet.Sheet
	Image    *image.NRGBA
	Stats    sheet.Stats
	Duration time.Duration
}

// Result contains the outputs of a full run.
type Result struct {
	// SessionID identifies the session the run used.
	SessionID string

	// Cuts lists the cuts in sequence order.
	Cuts []CutResult

	// Sheets lists the assembled sheets, RED first.
	Sheets []SheetResult

	// Seed is the seed the fallback choices were drawn with.
	Seed uint64
}
