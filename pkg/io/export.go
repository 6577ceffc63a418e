package io

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/triangulator/pkg/observability"
	"github.com/matzehuels/triangulator/pkg/piece"
)

// WritePNG encodes img as PNG to w.
func WritePNG(img image.Image, w io.Writer) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportPNG writes img to a PNG file at path.
func ExportPNG(ctx context.Context, kind string, img image.Image, path string) error {
	hooks := observability.Export()
	f, err := os.Create(path)
	if err != nil {
		hooks.OnExportError(ctx, kind, path, err)
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := &countingWriter{w: f}
	if err := WritePNG(img, cw); err != nil {
		hooks.OnExportError(ctx, kind, path, err)
		return fmt.Errorf("%s: %w", path, err)
	}
	hooks.OnExport(ctx, kind, path, cw.n)
	return nil
}

// ExportPieces writes each piece to dir as "<id>.png", creating dir if
// needed. It returns the paths written.
func ExportPieces(ctx context.Context, pieces []piece.Piece, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	paths := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if err := ctx.Err(); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, strconv.Itoa(p.ID)+".png")
		if err := ExportPNG(ctx, "piece", p.Image, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}
