package cache

import "fmt"

// Keyer builds cache keys.
type Keyer interface {
	// OverlayKey addresses the raw bytes of an overlay mark image.
	OverlayKey(dir, label string) string

	// CutKey addresses the pieces cut from one positioned photo.
	CutKey(photoHash string, opts CutKeyOpts) string
}

// CutKeyOpts holds every input that changes the result of a cut.
type CutKeyOpts struct {
	MaskID     int     `json:"mask_id"`
	Canvas     int     `json:"canvas"`
	ExportSize int     `json:"export_size"`
	Coverage   float64 `json:"coverage"`
	OffsetX    float64 `json:"offset_x"`
	OffsetY    float64 `json:"offset_y"`
	Scale      float64 `json:"scale"`
	Rotation   float64 `json:"rotation"`
}

// DefaultKeyer is the standard key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// OverlayKey returns "overlay:<dir>:<label>".
func (DefaultKeyer) OverlayKey(dir, label string) string {
	return fmt.Sprintf("overlay:%s:%s", dir, label)
}

// CutKey hashes the photo hash together with the cut options.
func (DefaultKeyer) CutKey(photoHash string, opts CutKeyOpts) string {
	return hashKey("cut", photoHash, opts)
}
