package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/triangulator/pkg/errors"
	tio "github.com/matzehuels/triangulator/pkg/io"
	"github.com/matzehuels/triangulator/pkg/piece"
	"github.com/matzehuels/triangulator/pkg/pipeline"
)

// sheetsOpts holds the flags of the sheets command.
type sheetsOpts struct {
	output   string
	overlays string
	seed     uint64
	noCache  bool
}

// sheetsCommand assembles sheets from piece directories written by cut.
func (c *CLI) sheetsCommand() *cobra.Command {
	var opts sheetsOpts

	cmd := &cobra.Command{
		Use:   "sheets [pieces-dir...]",
		Short: "Assemble the RED and GREEN sheets from pieces",
		Long: `Assemble the RED and GREEN sheets from one or more piece directories.

Pieces are merged in argument order; a piece id that is already present
keeps its first image. Positions whose mapped piece is missing are filled
with a random piece. Overlay images ("<label>.png") are drawn from the
--overlays directory when given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSheets(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", defaultOutputDir, "output directory")
	cmd.Flags().StringVar(&opts.overlays, "overlays", "", "directory of overlay images")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for random fallback pieces (0 picks one)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// runSheets merges the piece directories into a pool and writes the sheets.
func (c *CLI) runSheets(ctx context.Context, dirs []string, opts sheetsOpts) error {
	ctx = withLogger(ctx, c.Logger)

	pool := piece.NewPool()
	for _, dir := range dirs {
		pieces, err := tio.ImportPieces(dir)
		if err != nil {
			return c.userError(err)
		}
		if skipped := pool.Merge(pieces); len(skipped) > 0 {
			printWarning("%s: %d pieces already loaded, kept the earlier ones", dir, len(skipped))
		}
		printInfo("Loaded %d pieces from %s", len(pieces), dir)
	}
	if pool.Len() == 0 {
		return c.userError(errs.New(errs.ErrCodeNoPieces, "no pieces found"))
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Assembling sheets...")
	spinner.Start()
	unfollow := spinner.follow()

	sheets, seed, err := runner.Sheets(ctx, pool, pipeline.Options{
		OverlayDir: opts.overlays,
		Seed:       opts.seed,
	})
	unfollow()
	if err != nil {
		stopWithFailure(spinner, err, "Assembly failed")
		return c.userError(err)
	}
	spinner.Stop()

	paths, err := writeSheets(ctx, sheets, opts.output)
	if err != nil {
		return err
	}

	printSuccess("Sheets complete")
	for _, sr := range sheets {
		fmt.Println(sheetStats(sr.Sheet.Name, sr.Stats.Mapped, sr.Stats.Fallback, sr.Stats.Skipped, sr.Stats.Overlays))
		if len(sr.Stats.Missing) > 0 {
			printDetail("missing overlays: %v", sr.Stats.Missing)
		}
	}
	for _, p := range paths {
		printFile(p)
	}
	printKeyValue("seed", strconv.FormatUint(seed, 10))
	return nil
}
