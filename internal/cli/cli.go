package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/triangulator/pkg/buildinfo"
	"github.com/matzehuels/triangulator/pkg/cache"
	"github.com/matzehuels/triangulator/pkg/canvas"
	errs "github.com/matzehuels/triangulator/pkg/errors"
	"github.com/matzehuels/triangulator/pkg/pipeline"
)

const (
	appName          = "triangulator"
	defaultOutputDir = "out"
)

// Log levels accepted by New and SetLogLevel.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI is the state shared by every command.
type CLI struct {
	Logger *log.Logger
}

// New returns a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand returns the triangulator command with every subcommand and the
// persistent --verbose flag.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   appName,
		Short: "Triangulator cuts photos into triangles and reassembles them into sheets",
		Long: `Triangulator positions up to eight photos under a sequence of polygon masks,
cuts the masked area of each into a grid of triangles, and assembles the
triangles into two 1200x1200 sheets (RED and GREEN) following fixed
placement tables.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}
	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug detail to stderr")

	root.AddCommand(
		c.runCommand(),
		c.cutCommand(),
		c.sheetsCommand(),
		c.previewCommand(),
		c.masksCommand(),
		c.completionCommand(),
	)
	return root
}

// newRunner returns a pipeline runner whose cache lives as long as the
// command.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), nil, c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	return cache.NewMemoryCache()
}

// addPlacementFlags registers the photo placement flags on cmd.
func addPlacementFlags(cmd *cobra.Command, p *canvas.Placement) {
	cmd.Flags().Float64Var(&p.OffsetX, "offset-x", 0, "horizontal offset of the photo centre in pixels")
	cmd.Flags().Float64Var(&p.OffsetY, "offset-y", 0, "vertical offset of the photo centre in pixels")
	cmd.Flags().Float64Var(&p.Scale, "scale", 1, "photo scale (0.1-5)")
	cmd.Flags().Float64Var(&p.Rotation, "rotate", 0, "photo rotation in degrees, counter-clockwise")
}

// outputPath returns output if set, otherwise a path next to input with the
// given suffix replacing its extension.
func outputPath(output, input, suffix string) string {
	if output != "" {
		return output
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + suffix
}

// formatIDs renders piece or mask identifiers compactly.
func formatIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	return strings.Join(parts, ", ")
}

// userError turns a pipeline error into the message shown to the user. The
// full chain is logged at debug level. Cancellation passes through so main
// can exit with the interrupt status.
func (c *CLI) userError(err error) error {
	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}
	c.Logger.Debug("command failed", "code", errs.GetCode(err), "error", err)
	return errors.New(errs.UserMessage(err))
}

// stopWithFailure stops s after err. Session notices, such as a cut without
// pieces, are shown as warnings rather than failures.
func stopWithFailure(s *Spinner, err error, label string) {
	if errs.GetCode(err).Notice() {
		s.Stop()
		printWarning("%s", label)
		return
	}
	s.StopWithError(label)
}
