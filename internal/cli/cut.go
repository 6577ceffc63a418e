package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/triangulator/pkg/canvas"
	errs "github.com/matzehuels/triangulator/pkg/errors"
	tio "github.com/matzehuels/triangulator/pkg/io"
	"github.com/matzehuels/triangulator/pkg/pipeline"
)

// cutOpts holds the flags of the cut command.
type cutOpts struct {
	output    string
	maskID    int
	canvas    int
	placement canvas.Placement
	noCache   bool
}

// cutCommand cuts a single photo under a single mask.
func (c *CLI) cutCommand() *cobra.Command {
	opts := cutOpts{maskID: 1}

	cmd := &cobra.Command{
		Use:   "cut [photo]",
		Short: "Cut one photo under one mask into pieces",
		Long: `Cut one photo under one mask into triangular pieces.

The photo is centred on the working canvas, moved, rotated and scaled by the
placement flags, and every grid triangle at least 80% inside the mask is
written as "<id>.png". Piece directories from several cuts can be combined
with 'sheets'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCut(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: <photo>.pieces)")
	cmd.Flags().IntVarP(&opts.maskID, "mask", "m", opts.maskID, "mask id (1-8)")
	cmd.Flags().IntVar(&opts.canvas, "canvas", pipeline.DefaultCanvasSize, "working canvas side in pixels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	addPlacementFlags(cmd, &opts.placement)

	return cmd
}

// runCut loads the photo, cuts it and writes the pieces.
func (c *CLI) runCut(ctx context.Context, input string, opts cutOpts) error {
	photo, err := tio.ImportPhoto(input)
	if err != nil {
		return c.userError(err)
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Cutting under mask %d...", opts.maskID))
	spinner.Start()

	pieces, hit, err := runner.Cut(ctx, pipeline.CutInput{
		Photo:     photo.Image,
		PhotoHash: photo.Hash,
		MaskID:    opts.maskID,
		Placement: opts.placement,
	}, pipeline.Options{Canvas: opts.canvas})
	if err != nil {
		stopWithFailure(spinner, err, "Cut failed")
		return c.userError(err)
	}
	spinner.Stop()

	if len(pieces) == 0 {
		return c.userError(errs.New(errs.ErrCodeNoPieces, "no triangles produced (maybe mask coverage too small)"))
	}

	dir := outputPath(opts.output, input, ".pieces")
	paths, err := tio.ExportPieces(ctx, pieces, dir)
	if err != nil {
		return fmt.Errorf("write pieces: %w", err)
	}

	printSuccess("Cut complete")
	printCutStats(opts.maskID, len(paths), hit)
	printFile(dir)
	printNewline()
	printNextStep("Assemble", "triangulator sheets "+dir)
	return nil
}
