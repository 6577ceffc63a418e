package pipeline

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/triangulator/pkg/cache"
	"github.com/matzehuels/triangulator/pkg/canvas"
	errs "github.com/matzehuels/triangulator/pkg/errors"
	tio "github.com/matzehuels/triangulator/pkg/io"
	"github.com/matzehuels/triangulator/pkg/mask"
	"github.com/matzehuels/triangulator/pkg/observability"
	"github.com/matzehuels/triangulator/pkg/piece"
	"github.com/matzehuels/triangulator/pkg/session"
	"github.com/matzehuels/triangulator/pkg/sheet"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - session state
// lives in [session.Session]. Multiple goroutines can safely use the same
// Runner with different sessions.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs a whole session described by m: every photo is cut under its
// mask in sequence order, then both sheets are assembled.
func (r *Runner) Execute(ctx context.Context, m *Manifest) (*Result, error) {
	opts := m.Options()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "invalid options")
	}

	if m.RequestedCount != 0 {
		r.Logger.Warn("unsupported photo count, using 1", "requested", m.RequestedCount)
	}
	sess := session.New(m.Count)
	result := &Result{SessionID: sess.ID}
	r.Logger.Info("started session", "id", sess.ID, "masks", sess.Sequence())

	for i, ph := range m.Photos {
		maskID, ok := sess.Current()
		if !ok {
			break
		}
		photo, err := tio.ImportPhoto(ph.Path)
		if err != nil {
			return nil, err
		}
		if err := sess.SetPhoto(photo.Image); err != nil {
			return nil, err
		}
		cut, err := r.CutSession(ctx, sess, photo.Hash, ph.Placement(), opts)
		if err != nil {
			return nil, fmt.Errorf("photo %d (mask %d): %w", i+1, maskID, err)
		}
		result.Cuts = append(result.Cuts, *cut)
	}

	if err := sess.CheckReady(); err != nil {
		return nil, err
	}

	sheets, seed, err := r.Sheets(ctx, sess.Pool(), opts)
	if err != nil {
		return nil, err
	}
	result.Sheets = sheets
	result.Seed = seed
	return result, nil
}

// CutSession cuts the session's current photo under its current mask and
// records the pieces. A cut that yields no pieces is returned as an error
// and leaves the session unchanged.
func (r *Runner) CutSession(ctx context.Context, sess *session.Session, photoHash string, p canvas.Placement, opts Options) (*CutResult, error) {
	maskID, ok := sess.Current()
	if !ok {
		return nil, errs.New(errs.ErrCodeSequenceComplete, "all masks processed")
	}
	photo, err := sess.Photo()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pieces, hit, err := r.Cut(ctx, CutInput{
		Photo:     photo,
		PhotoHash: photoHash,
		MaskID:    maskID,
		Placement: p,
	}, opts)
	if err != nil {
		return nil, err
	}

	res, err := sess.Record(pieces)
	if err != nil {
		return nil, err
	}
	if len(res.Skipped) > 0 {
		r.Logger.Warn("pieces already in pool", "mask", maskID, "ids", res.Skipped)
	}

	out := &CutResult{
		Result:   res,
		Pieces:   pieces,
		CacheHit: hit,
		Duration: time.Since(start),
	}
	r.Logger.Info("cut mask",
		"mask", maskID,
		"pieces", res.Added,
		"next", res.Next,
		"cached", hit,
		"duration", out.Duration)
	return out, nil
}

// Cut renders in.Photo onto the canvas and extracts the pieces under
// in.MaskID. Results are cached by photo hash and cut options when a hash is
// given. The boolean reports a cache hit.
func (r *Runner) Cut(ctx context.Context, in CutInput, opts Options) ([]piece.Piece, bool, error) {
	if err := opts.ValidateForCut(); err != nil {
		return nil, false, err
	}
	if in.Photo == nil {
		return nil, false, errs.New(errs.ErrCodeCanvasNotReady, "original image not ready")
	}
	p := in.Placement
	if err := errs.ValidatePlacement(p.OffsetX, p.OffsetY, p.Scale, p.Rotation); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnCutStart(ctx, in.MaskID)
	start := time.Now()

	extract := func() ([]piece.Piece, error) {
		reg := mask.NewRegistry(opts.Canvas)
		poly, err := reg.Mask(in.MaskID)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidMask, err, "mask %d", in.MaskID)
		}
		raster := canvas.Compose(in.Photo, p, opts.Canvas)

		ex := piece.NewExtractor(mask.GridCell(opts.Canvas))
		ex.ExportSize = opts.ExportSize
		ex.Threshold = opts.Threshold()
		return ex.Extract(raster, in.MaskID, poly)
	}

	if in.PhotoHash == "" {
		pieces, err := extract()
		hooks.OnCutComplete(ctx, in.MaskID, len(pieces), time.Since(start), err)
		return pieces, false, err
	}

	key := r.Keyer.CutKey(in.PhotoHash, opts.CutKeyOpts(in.MaskID, p))
	data, hit, err := cache.GetOrLoad(ctx, r.Cache, "cut", key, func() ([]byte, error) {
		pieces, err := extract()
		if err != nil {
			return nil, err
		}
		return tio.MarshalPieces(pieces)
	})
	if err != nil {
		hooks.OnCutComplete(ctx, in.MaskID, 0, time.Since(start), err)
		return nil, false, err
	}
	pieces, err := tio.UnmarshalPieces(data)
	if err != nil {
		// A corrupt entry is dropped and the cut redone.
		_ = r.Cache.Delete(ctx, key)
		r.Logger.Debug("discarded cached cut", "mask", in.MaskID, "error", err)
		pieces, err = extract()
		hit = false
	}
	hooks.OnCutComplete(ctx, in.MaskID, len(pieces), time.Since(start), err)
	return pieces, hit, err
}

// Sheets assembles every sheet from pool. A zero opts.Seed draws a random
// seed; the seed used is returned so a run can be repeated.
func (r *Runner) Sheets(ctx context.Context, pool *piece.Pool, opts Options) ([]SheetResult, uint64, error) {
	if err := opts.ValidateForSheets(); err != nil {
		return nil, 0, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	var overlays sheet.OverlaySource
	if opts.OverlayDir != "" {
		overlays = sheet.NewDirSource(opts.OverlayDir, r.Cache)
	}
	asm := &sheet.Assembler{
		Size:     opts.SheetSize,
		Cells:    opts.Cells,
		Rand:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Overlays: overlays,
	}

	hooks := observability.Pipeline()
	var results []SheetResult
	for _, s := range sheet.All() {
		hooks.OnSheetStart(ctx, s.Name, pool.Len())
		start := time.Now()

		img, stats, err := asm.Assemble(ctx, s, pool)
		hooks.OnSheetComplete(ctx, s.Name, stats.Placed(), time.Since(start), err)
		if err != nil {
			return nil, seed, fmt.Errorf("sheet %s: %w", s.Name, err)
		}

		res := SheetResult{Sheet: s, Image: img, Stats: stats, Duration: time.Since(start)}
		results = append(results, res)

		r.Logger.Info("assembled sheet",
			"sheet", s.Name,
			"mapped", stats.Mapped,
			"fallback", stats.Fallback,
			"skipped", stats.Skipped,
			"overlays", stats.Overlays,
			"duration", res.Duration)
		if len(stats.Missing) > 0 {
			r.Logger.Debug("missing overlays", "sheet", s.Name, "labels", stats.Missing)
		}
	}
	return results, seed, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
