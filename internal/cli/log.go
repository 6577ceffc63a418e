// Package cli implements the triangulator command line.
//
// Each command is a thin layer over the pipeline package:
//
//	run      whole session from a TOML manifest
//	cut      one photo under one mask, pieces to a directory
//	sheets   RED and GREEN sheets from piece directories
//	preview  the positioned photo with its mask outline and guides
//	masks    the mask sequence for each photo count
//
// Human-facing output goes to stdout through lipgloss styles; diagnostics go
// to a charmbracelet/log logger on stderr, raised to debug by --verbose.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}

// timed starts a clock and returns a function that logs msg at info level
// with the time elapsed since.
func timed(l *log.Logger) func(msg string) {
	start := time.Now()
	return func(msg string) {
		l.Info(msg, "elapsed", time.Since(start).Round(time.Millisecond))
	}
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, falling back
// to the package default.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
