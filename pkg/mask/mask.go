// Package mask holds the static mask polygons, the photo-count sequencing
// table and the canvas sizing rules.
//
// Masks are authored in an 800×800 reference space ([ReferenceSize]) and
// rescaled once to the active canvas by [NewRegistry]. The sequencing table
// decides which masks a session cuts and in what order; the sheet mapping
// tables in package sheet assume pieces were cut under exactly this order, so
// the table is configuration data and must not be computed.
package mask

import (
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/triangulator/pkg/geom"
)

const (
	// ReferenceSize is the side of the square space the masks are authored in.
	ReferenceSize = 800

	// GuideReferenceSize is the side of the space the alignment guides are
	// authored in.
	GuideReferenceSize = 1200

	// CanvasFraction is the share of the smaller window side used for the canvas.
	CanvasFraction = 0.8

	// MinCanvasSize is the smallest canvas side in pixels.
	MinCanvasSize = 400

	// GridCells is the number of grid cells along each canvas side.
	GridCells = 8
)

// references are the mask polygons in reference space, wound clockwise on
// screen.
var references = map[int]geom.Polygon{
	1: {{100, 300}, {300, 100}, {500, 100}, {700, 300}, {500, 500}, {300, 500}},
	2: {{200, 200}, {400, 200}, {500, 300}, {500, 500}, {400, 600}, {200, 600}},
	3: {{200, 400}, {300, 300}, {600, 300}, {600, 400}, {400, 600}},
	4: {{200, 200}, {400, 200}, {600, 400}, {400, 600}, {200, 600}},
	5: {{200, 200}, {400, 200}, {500, 300}, {500, 500}, {400, 600}, {200, 400}},
	6: {{200, 200}, {400, 200}, {600, 400}, {600, 500}, {300, 500}, {200, 400}},
	7: {{200, 400}, {400, 200}, {500, 300}, {500, 500}, {300, 500}},
	8: {{100, 300}, {300, 100}, {600, 100}, {600, 400}, {500, 500}, {300, 500}},
}

// guides are the alignment dots shown while positioning a photo, in the
// 1200 guide reference space.
var guides = map[int]geom.Polygon{
	1: {{510, 174}, {210, 474}, {510, 726}, {774, 474}, {726, 426}},
	2: {{624, 360}, {324, 840}},
	3: {{876, 540}, {660, 624}},
	4: {{324, 360}, {624, 360}, {624, 576}, {540, 576}, {324, 840}},
	5: {{576, 576}},
	6: {{360, 324}, {576, 540}, {540, 624}, {840, 624}},
	7: {{540, 576}, {540, 624}, {576, 660}},
	8: {{210, 426}, {210, 474}, {774, 426}, {774, 474}, {726, 510}, {510, 726}},
}

// sequences maps a photo count to the masks cut for it, in order.
var sequences = map[int][]int{
	1: {1},
	2: {1, 4},
	3: {1, 4, 6},
	4: {1, 4, 6, 3},
	5: {1, 4, 6, 3, 8},
	6: {1, 4, 6, 3, 8, 2},
	7: {1, 4, 6, 3, 8, 2, 5},
	8: {1, 4, 6, 3, 8, 2, 5, 7},
}

// MaxPhotos is the largest supported photo count.
const MaxPhotos = 8

// Sequence returns the ordered mask ids for a photo count. Counts outside
// 1..MaxPhotos fall back to the single-mask sequence [1].
// The returned slice is a copy.
func Sequence(n int) []int {
	seq, ok := sequences[n]
	if !ok {
		seq = sequences[1]
	}
	return slices.Clone(seq)
}

// NormalizeCount returns n when it is a supported photo count. Any other
// count falls back to 1, the count whose sequence is [1]; ok reports
// whether n was kept.
func NormalizeCount(n int) (count int, ok bool) {
	if _, found := sequences[n]; found {
		return n, true
	}
	return 1, false
}

// CanvasSize returns the canvas side for a window of w×h pixels: the given
// fraction of the smaller side, floored, and never below MinCanvasSize.
func CanvasSize(w, h int) int {
	side := int(math.Floor(float64(min(w, h)) * CanvasFraction))
	return max(MinCanvasSize, side)
}

// GridCell returns the grid cell side for a canvas side.
func GridCell(canvas int) int {
	return canvas / GridCells
}

// Registry holds the masks scaled to one canvas size. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	canvas int
	masks  map[int]geom.Polygon
	guides map[int]geom.Polygon
}

// NewRegistry scales every reference mask and guide set to a canvas of the
// given side. Coordinates are rounded half up.
func NewRegistry(canvas int) *Registry {
	r := &Registry{
		canvas: canvas,
		masks:  make(map[int]geom.Polygon, len(references)),
		guides: make(map[int]geom.Polygon, len(guides)),
	}
	s := float64(canvas) / ReferenceSize
	for id, poly := range references {
		r.masks[id] = poly.Scale(s)
	}
	g := float64(canvas) / GuideReferenceSize
	for id, pts := range guides {
		r.guides[id] = pts.Scale(g)
	}
	return r
}

// CanvasSize returns the canvas side the registry was scaled to.
func (r *Registry) CanvasSize() int {
	return r.canvas
}

// Mask returns a copy of the scaled polygon for id.
func (r *Registry) Mask(id int) (geom.Polygon, error) {
	poly, ok := r.masks[id]
	if !ok {
		return nil, fmt.Errorf("unknown mask %d (must be 1-%d)", id, len(r.masks))
	}
	return slices.Clone(poly), nil
}

// Guides returns the scaled alignment dots for id; unknown ids have none.
func (r *Registry) Guides(id int) []geom.Point {
	return slices.Clone(r.guides[id])
}

// IDs returns the known mask ids in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.masks))
	for id := range r.masks {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
