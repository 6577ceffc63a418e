package io

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/triangulator/pkg/cache"
	errs "github.com/matzehuels/triangulator/pkg/errors"
	"github.com/matzehuels/triangulator/pkg/piece"
)

// ReadImage decodes a photo from r, applying its EXIF orientation.
// ReadImage does not close r.
func ReadImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeNoImage, err, "could not load image")
	}
	return img, nil
}

// Photo is a decoded photo and the hash of its file contents.
type Photo struct {
	Path  string
	Image image.Image
	Hash  string
}

// ImportPhoto reads and decodes the photo at path.
func ImportPhoto(path string) (*Photo, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "photo %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := ReadImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind %s: %w", path, err)
	}
	hash, err := cache.HashReader(f)
	if err != nil {
		return nil, fmt.Errorf("hash %s: %w", path, err)
	}
	return &Photo{Path: path, Image: img, Hash: hash}, nil
}

// ImportImage opens the photo at path.
func ImportImage(path string) (image.Image, error) {
	p, err := ImportPhoto(path)
	if err != nil {
		return nil, err
	}
	return p.Image, nil
}

// ImportPieces reads every "<id>.png" file in dir. The pieces are returned in
// directory order with only ID and Image set.
func ImportPieces(dir string) ([]piece.Piece, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "piece directory %s not found", dir)
		}
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var pieces []piece.Piece
	for _, e := range entries {
		id, ok := pieceID(e.Name())
		if e.IsDir() || !ok {
			continue
		}
		path := filepath.Join(dir, e.Name())
		img, err := imaging.Open(path)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeNoImage, err, "piece %s", path)
		}
		pieces = append(pieces, piece.Piece{ID: id, Image: imaging.Clone(img)})
	}
	return pieces, nil
}

// pieceID parses "<id>.png".
func pieceID(name string) (int, bool) {
	base, ok := strings.CutSuffix(strings.ToLower(name), ".png")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(base)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
