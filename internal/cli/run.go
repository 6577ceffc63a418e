package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/triangulator/pkg/errors"
	tio "github.com/matzehuels/triangulator/pkg/io"
	"github.com/matzehuels/triangulator/pkg/mask"
	"github.com/matzehuels/triangulator/pkg/pipeline"
)

// runOpts holds the flags of the run command.
type runOpts struct {
	output      string
	count       int
	seed        uint64
	pieces      bool
	noCache     bool
	interactive bool
}

// runCommand executes a whole session from a manifest.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [manifest.toml]",
		Short: "Run a whole session from a manifest",
		Long: `Run a whole session described by a TOML manifest.

Every photo in the manifest is placed on the canvas and cut under the next
mask of the sequence for the photo count. Once all masks are cut, the RED
and GREEN sheets are assembled from the pieces and written to the output
directory.

With --interactive the photo count is chosen from a list; the first photos
of the manifest are used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRun(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: manifest output or ./out)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "photo count override (1-8, others fall back to 1)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for random fallback pieces (0 picks one)")
	cmd.Flags().BoolVar(&opts.pieces, "pieces", false, "also write the individual pieces")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "choose the photo count interactively")

	return cmd
}

// runRun loads the manifest, runs the session and writes the outputs.
func (c *CLI) runRun(ctx context.Context, path string, opts runOpts) error {
	ctx = withLogger(ctx, c.Logger)

	m, err := pipeline.LoadManifest(path)
	if err != nil {
		return c.userError(err)
	}

	count := opts.count
	if opts.interactive {
		picked, err := pickCount(m.Count)
		if err != nil {
			return err
		}
		if picked == 0 {
			printInfo("Cancelled")
			return nil
		}
		count = picked
	}
	if err := applyCount(m, count); err != nil {
		return c.userError(err)
	}
	if opts.seed != 0 {
		m.Seed = opts.seed
	}
	if opts.pieces {
		m.Pieces = true
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	printInfo("Cutting %d photos under masks %s", len(m.Photos), StyleHighlight.Render(formatIDs(mask.Sequence(m.Count))))

	finished := timed(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Running session...")
	spinner.Start()
	unfollow := spinner.follow()

	result, err := runner.Execute(ctx, m)
	unfollow()
	if err != nil {
		stopWithFailure(spinner, err, "Session failed")
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return c.userError(err)
	}
	spinner.Stop()
	finished("session " + result.SessionID + " finished")

	for _, cut := range result.Cuts {
		printCutStats(cut.MaskID, cut.Added, cut.CacheHit)
		if len(cut.Skipped) > 0 {
			printWarning("mask %d: %d pieces already cut, kept the earlier ones", cut.MaskID, len(cut.Skipped))
		}
	}

	dir := opts.output
	if dir == "" {
		dir = m.Output
	}
	if dir == "" {
		dir = defaultOutputDir
	}

	written, err := writeSheets(ctx, result.Sheets, dir)
	if err != nil {
		return err
	}
	if m.Pieces {
		piecesDir := filepath.Join(dir, "pieces")
		for _, cut := range result.Cuts {
			if _, err := tio.ExportPieces(ctx, cut.Pieces, piecesDir); err != nil {
				return fmt.Errorf("write pieces: %w", err)
			}
		}
		written = append(written, piecesDir)
	}

	printSuccess("Sheets complete")
	for _, sr := range result.Sheets {
		fmt.Println(sheetStats(sr.Sheet.Name, sr.Stats.Mapped, sr.Stats.Fallback, sr.Stats.Skipped, sr.Stats.Overlays))
	}
	for _, p := range written {
		printFile(p)
	}
	printKeyValue("seed", strconv.FormatUint(result.Seed, 10))
	return nil
}

// applyCount narrows m to count photos. Zero keeps the manifest's count;
// an unsupported count falls back to 1 like a manifest count does.
func applyCount(m *pipeline.Manifest, count int) error {
	if count == 0 || count == m.Count {
		return nil
	}
	requested := count
	count, ok := mask.NormalizeCount(count)
	need := len(mask.Sequence(count))
	if need > len(m.Photos) {
		return errs.New(errs.ErrCodeInvalidManifest, "count %d needs %d photos, manifest has %d", count, need, len(m.Photos))
	}
	m.Count = count
	m.Photos = m.Photos[:need]
	m.RequestedCount = 0
	if !ok {
		m.RequestedCount = requested
	}
	return m.Validate()
}

// writeSheets exports every sheet into dir and returns the paths written.
func writeSheets(ctx context.Context, sheets []pipeline.SheetResult, dir string) ([]string, error) {
	logger := loggerFromContext(ctx)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(sheets))
	for _, sr := range sheets {
		path := filepath.Join(dir, sr.Sheet.Filename())
		if err := tio.ExportPNG(ctx, "sheet", sr.Image, path); err != nil {
			return paths, fmt.Errorf("write sheet %s: %w", sr.Sheet.Name, err)
		}
		logger.Debug("wrote sheet", "sheet", sr.Sheet.Name, "path", path, "missing", sr.Stats.Missing)
		paths = append(paths, path)
	}
	return paths, nil
}
