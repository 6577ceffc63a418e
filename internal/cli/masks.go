package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/triangulator/pkg/errors"
	"github.com/matzehuels/triangulator/pkg/geom"
	"github.com/matzehuels/triangulator/pkg/grid"
	"github.com/matzehuels/triangulator/pkg/mask"
	"github.com/matzehuels/triangulator/pkg/piece"
	"github.com/matzehuels/triangulator/pkg/pipeline"
)

// masksCommand lists the masks and the sequence for a photo count.
func (c *CLI) masksCommand() *cobra.Command {
	var (
		count int
		size  int
	)

	cmd := &cobra.Command{
		Use:   "masks",
		Short: "List the masks and the order they are cut in",
		Long: `List every mask with its vertex count, area and the number of grid
triangles it yields on the given canvas. With --count only the masks of that
photo count are listed, in cutting order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count != 0 {
				n, ok := mask.NormalizeCount(count)
				if !ok {
					c.Logger.Warn("unsupported photo count, using 1", "requested", count)
				}
				count = n
			}
			if size < mask.MinCanvasSize {
				return c.userError(errs.New(errs.ErrCodeInvalidInput, "canvas must be at least %d pixels", mask.MinCanvasSize))
			}
			return writeMaskTable(cmd.OutOrStdout(), count, size)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "photo count (1-8, others fall back to 1); 0 lists all masks")
	cmd.Flags().IntVar(&size, "canvas", pipeline.DefaultCanvasSize, "working canvas side in pixels")

	return cmd
}

// maskRow describes one mask on a canvas.
type maskRow struct {
	ID       int
	Vertices int
	Area     float64
	Pieces   int
}

// describeMasks returns rows for ids on a canvas of the given side.
func describeMasks(ids []int, size int) []maskRow {
	reg := mask.NewRegistry(size)
	tris := grid.Decompose(size, mask.GridCell(size))
	rows := make([]maskRow, 0, len(ids))
	for _, id := range ids {
		poly, err := reg.Mask(id)
		if err != nil {
			continue
		}
		rows = append(rows, maskRow{
			ID:       id,
			Vertices: len(poly),
			Area:     geom.Area(poly),
			Pieces:   len(grid.Select(tris, poly, grid.MinCoverage)),
		})
	}
	return rows
}

// idRange formats the identifiers of n pieces cut under maskID.
func idRange(maskID, n int) string {
	switch n {
	case 0:
		return "-"
	case 1:
		return fmt.Sprint(piece.ID(maskID, 1))
	}
	return fmt.Sprintf("%d-%d", piece.ID(maskID, 1), piece.ID(maskID, n))
}

func writeMaskTable(w io.Writer, count, size int) error {
	ids := mask.NewRegistry(size).IDs()
	title := fmt.Sprintf("Masks on a %d px canvas", size)
	if count != 0 {
		ids = mask.Sequence(count)
		title = fmt.Sprintf("Sequence for %d photos", count)
	}

	var rows [][]string
	total := 0
	for i, r := range describeMasks(ids, size) {
		rows = append(rows, []string{
			fmt.Sprint(i + 1),
			fmt.Sprint(r.ID),
			fmt.Sprint(r.Vertices),
			fmt.Sprintf("%.0f", r.Area),
			fmt.Sprint(r.Pieces),
			idRange(r.ID, r.Pieces),
		})
		total += r.Pieces
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Mask", "Vertices", "Area", "Pieces", "IDs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return StyleHighlight
			}
			return lipgloss.NewStyle().Foreground(colorBright)
		})

	var b strings.Builder
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d pieces in total", total)))
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
