package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/triangulator/pkg/canvas"
	errs "github.com/matzehuels/triangulator/pkg/errors"
	"github.com/matzehuels/triangulator/pkg/mask"
)

// Manifest describes a whole session in TOML:
//
//	count    = 2
//	overlays = "assets/overlays"
//	output   = "out"
//	seed     = 42
//	pieces   = true
//
//	[window]
//	width  = 1280
//	height = 900
//
//	[[photo]]
//	path     = "photos/a.jpg"
//	offset_x = -20
//	scale    = 1.4
//
//	[[photo]]
//	path     = "photos/b.jpg"
//	rotation = 15
//
// Photos are listed in sequence order. Relative paths are resolved against
// the manifest's directory.
type Manifest struct {
	Count    int     `toml:"count"`
	Canvas   int     `toml:"canvas"`
	Window   *Window `toml:"window"`
	Overlays string  `toml:"overlays"`
	Output   string  `toml:"output"`
	Seed     uint64  `toml:"seed"`
	Pieces   bool    `toml:"pieces"`
	Photos   []Photo `toml:"photo"`

	// RequestedCount is set by Validate when Count was outside 1-8 and
	// replaced by 1.
	RequestedCount int `toml:"-"`
}

// Window is the viewport the canvas is sized from.
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Photo is one photo and its placement.
type Photo struct {
	Path     string  `toml:"path"`
	OffsetX  float64 `toml:"offset_x"`
	OffsetY  float64 `toml:"offset_y"`
	Scale    float64 `toml:"scale"`
	Rotation float64 `toml:"rotation"`
}

// Placement returns the photo's placement on the canvas.
func (p Photo) Placement() canvas.Placement {
	return canvas.Placement{
		OffsetX:  p.OffsetX,
		OffsetY:  p.OffsetY,
		Scale:    p.Scale,
		Rotation: p.Rotation,
	}
}

// LoadManifest reads and validates the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := ParseManifest(string(data))
	if err != nil {
		return nil, err
	}
	m.resolve(filepath.Dir(path))
	return m, nil
}

// ParseManifest decodes and validates manifest text. Paths are left as
// written.
func ParseManifest(text string) (*Manifest, error) {
	var m Manifest
	md, err := toml.Decode(text, &m)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "could not parse manifest")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errs.New(errs.ErrCodeInvalidManifest, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest and fills in the photo count from the photo
// list when it is omitted. A count with no mask sequence falls back to 1,
// which then needs exactly one photo.
func (m *Manifest) Validate() error {
	if len(m.Photos) == 0 {
		return errs.New(errs.ErrCodeInvalidManifest, "manifest lists no photos")
	}
	if m.Count == 0 {
		m.Count = len(m.Photos)
	}
	if n, ok := mask.NormalizeCount(m.Count); !ok {
		m.RequestedCount, m.Count = m.Count, n
	}
	if m.RequestedCount != 0 && len(m.Photos) != 1 {
		return errs.New(errs.ErrCodeInvalidManifest, "count %d is unsupported and falls back to 1, which needs 1 photo, got %d", m.RequestedCount, len(m.Photos))
	}
	if want := len(mask.Sequence(m.Count)); len(m.Photos) != want {
		return errs.New(errs.ErrCodeInvalidManifest, "count %d needs %d photos, got %d", m.Count, want, len(m.Photos))
	}
	for i, p := range m.Photos {
		if p.Path == "" {
			return errs.New(errs.ErrCodeInvalidManifest, "photo %d has no path", i+1)
		}
		if err := errs.ValidatePlacement(p.OffsetX, p.OffsetY, p.Scale, p.Rotation); err != nil {
			return errs.Wrap(errs.ErrCodeInvalidManifest, err, "photo %d", i+1)
		}
	}
	if m.Window != nil && (m.Window.Width <= 0 || m.Window.Height <= 0) {
		return errs.New(errs.ErrCodeInvalidManifest, "window size must be positive")
	}
	return nil
}

// CanvasSize returns the working canvas side: the explicit canvas if set,
// otherwise derived from the window, otherwise the default.
func (m *Manifest) CanvasSize() int {
	switch {
	case m.Canvas > 0:
		return m.Canvas
	case m.Window != nil:
		return mask.CanvasSize(m.Window.Width, m.Window.Height)
	}
	return DefaultCanvasSize
}

// Options returns the pipeline options the manifest asks for.
func (m *Manifest) Options() Options {
	return Options{
		Canvas:     m.CanvasSize(),
		OverlayDir: m.Overlays,
		Seed:       m.Seed,
	}
}

func (m *Manifest) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range m.Photos {
		m.Photos[i].Path = abs(m.Photos[i].Path)
	}
	m.Overlays = abs(m.Overlays)
	m.Output = abs(m.Output)
}
