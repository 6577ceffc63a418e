package piece

import (
	"image"
	"math/rand/v2"
	"slices"
	"sync"
)

// Pool is the session-wide set of pieces keyed by identifier. Pieces are only
// ever added; an identifier, once present, keeps its first image.
//
// Pool is safe for concurrent use.
type Pool struct {
	mu     sync.RWMutex
	pieces map[int]image.Image
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{pieces: make(map[int]image.Image)}
}

// Add stores img under id unless id is already present. It reports whether
// the piece was stored.
func (p *Pool) Add(id int, img image.Image) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.pieces[id]; ok {
		return false
	}
	p.pieces[id] = img
	return true
}

// Merge adds every piece and returns the identifiers that were already
// present and therefore skipped.
func (p *Pool) Merge(pieces []Piece) (skipped []int) {
	for _, pc := range pieces {
		if !p.Add(pc.ID, pc.Image) {
			skipped = append(skipped, pc.ID)
		}
	}
	return skipped
}

// Get returns the piece stored under id.
func (p *Pool) Get(id int) (image.Image, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	img, ok := p.pieces[id]
	return img, ok
}

// Len returns the number of pieces.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.pieces)
}

// IDs returns all identifiers in ascending order.
func (p *Pool) IDs() []int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]int, 0, len(p.pieces))
	for id := range p.pieces {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Random picks a piece uniformly from the pool's current contents. The ids
// are ordered ascending before drawing, so a seeded rng gives repeatable
// picks. It returns false for an empty pool.
func (p *Pool) Random(rng *rand.Rand) (int, image.Image, bool) {
	ids := p.IDs()
	if len(ids) == 0 {
		return 0, nil, false
	}
	id := ids[rng.IntN(len(ids))]
	img, ok := p.Get(id)
	return id, img, ok
}
