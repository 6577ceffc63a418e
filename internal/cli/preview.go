package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/triangulator/pkg/canvas"
	errs "github.com/matzehuels/triangulator/pkg/errors"
	tio "github.com/matzehuels/triangulator/pkg/io"
	"github.com/matzehuels/triangulator/pkg/mask"
	"github.com/matzehuels/triangulator/pkg/pipeline"
)

// previewCommand renders the alignment view for one photo and mask.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		output    string
		maskID    = 1
		size      int
		placement canvas.Placement
	)

	cmd := &cobra.Command{
		Use:   "preview [photo]",
		Short: "Render the positioned photo with its mask outline and guides",
		Long: `Render the positioned photo on the working canvas with the area outside the
mask darkened, the mask outline drawn and the alignment dots for the mask.

Use it to find placement flags before running 'cut' with the same flags.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd.Context(), args[0], maskID, size, placement, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <photo>.preview.png)")
	cmd.Flags().IntVarP(&maskID, "mask", "m", maskID, "mask id (1-8)")
	cmd.Flags().IntVar(&size, "canvas", pipeline.DefaultCanvasSize, "working canvas side in pixels")
	addPlacementFlags(cmd, &placement)

	return cmd
}

func (c *CLI) runPreview(ctx context.Context, input string, maskID, size int, p canvas.Placement, output string) error {
	if size < mask.MinCanvasSize {
		return c.userError(errs.New(errs.ErrCodeInvalidInput, "canvas must be at least %d pixels", mask.MinCanvasSize))
	}
	if err := errs.ValidatePlacement(p.OffsetX, p.OffsetY, p.Scale, p.Rotation); err != nil {
		return c.userError(err)
	}
	reg := mask.NewRegistry(size)
	poly, err := reg.Mask(maskID)
	if err != nil {
		return c.userError(errs.Wrap(errs.ErrCodeInvalidMask, err, "unknown mask %d", maskID))
	}

	img, err := tio.ImportImage(input)
	if err != nil {
		return c.userError(err)
	}

	raster := canvas.Compose(img, p, size)
	view := canvas.Preview(raster, poly, reg.Guides(maskID))

	path := outputPath(output, input, ".preview.png")
	if err := tio.ExportPNG(ctx, "preview", view, path); err != nil {
		return err
	}
	c.Logger.Debug("rendered preview", "mask", maskID, "canvas", size, "scale", p.Normalized().Scale)

	printSuccess("Preview for mask %d", maskID)
	printFile(path)
	return nil
}
