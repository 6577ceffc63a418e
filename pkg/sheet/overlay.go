package sheet

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/matzehuels/triangulator/pkg/cache"
	errs "github.com/matzehuels/triangulator/pkg/errors"
)

// OverlaySource supplies the image for an overlay label.
type OverlaySource interface {
	Overlay(ctx context.Context, label string) (image.Image, error)
}

// DirSource reads overlays from "<Dir>/<label>.png". File contents go through
// Cache, so labels shared by both sheets are read once.
type DirSource struct {
	Dir   string
	Cache cache.Cache
	Keyer cache.Keyer
}

// NewDirSource returns a source over dir. A nil cache disables caching.
func NewDirSource(dir string, c cache.Cache) *DirSource {
	if c == nil {
		c = cache.NewNullCache()
	}
	return &DirSource{Dir: dir, Cache: c, Keyer: cache.NewDefaultKeyer()}
}

// Overlay loads and decodes the image for label.
func (s *DirSource) Overlay(ctx context.Context, label string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := errs.ValidateLabel(label); err != nil {
		return nil, err
	}
	path := filepath.Join(s.Dir, label+".png")
	data, _, err := cache.GetOrLoad(ctx, s.Cache, "overlay", s.Keyer.OverlayKey(s.Dir, label), func() ([]byte, error) {
		return os.ReadFile(path)
	})
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "overlay %s", label)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeNoImage, err, "decode overlay %s", label)
	}
	return img, nil
}

// MapSource serves overlays from memory. Labels without an image are
// reported as missing.
type MapSource map[string]image.Image

// Overlay returns the image registered for label.
func (m MapSource) Overlay(_ context.Context, label string) (image.Image, error) {
	img, ok := m[label]
	if !ok {
		return nil, fmt.Errorf("overlay %s: %w", label, os.ErrNotExist)
	}
	return img, nil
}
