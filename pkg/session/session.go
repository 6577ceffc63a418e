// Package session tracks one cutting session: which masks are still to be
// cut, the photo loaded for the current mask, and the pool of pieces cut so
// far.
//
// A session walks its mask sequence front to back. Each successful cut merges
// its pieces into the pool and advances to the next mask; the photo has to be
// loaded again for every mask. Once every mask has been cut the session is
// ready and sheets may be generated.
//
// # Usage
//
//	sess := session.New(4)             // masks 1, 4, 6, 3
//	sess.SetPhoto(img)
//	res, err := sess.Record(pieces)    // merges and advances
//	if sess.Ready() {
//	    // assemble sheets from sess.Pool()
//	}
package session

import (
	"image"
	"sync"
	"time"

	"github.com/google/uuid"

	errs "github.com/matzehuels/triangulator/pkg/errors"
	"github.com/matzehuels/triangulator/pkg/mask"
	"github.com/matzehuels/triangulator/pkg/piece"
)

// Session is the state of one cutting session. It is safe for concurrent
// use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	sequence  []int
	index     int
	processed int
	photo     image.Image
	pool      *piece.Pool
}

// Result describes one recorded cut.
type Result struct {
	MaskID  int
	Added   int
	Skipped []int // identifiers already in the pool
	Next    int   // next mask id, 0 when the sequence is complete
}

// New starts a session for count photos. Counts outside 1..8 fall back to a
// single photo.
func New(count int) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		sequence:  mask.Sequence(count),
		pool:      piece.NewPool(),
	}
}

// Sequence returns the masks to be cut, in order.
func (s *Session) Sequence() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.sequence...)
}

// Current returns the mask to cut next. It returns false once the sequence is
// complete.
func (s *Session) Current() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.sequence) {
		return 0, false
	}
	return s.sequence[s.index], true
}

// Processed returns the number of masks cut so far.
func (s *Session) Processed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed
}

// Ready reports whether every mask has been cut.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processed >= len(s.sequence)
}

// Pool returns the session's piece pool.
func (s *Session) Pool() *piece.Pool {
	return s.pool
}

// SetPhoto loads the photo for the current mask.
func (s *Session) SetPhoto(img image.Image) error {
	if img == nil {
		return errs.New(errs.ErrCodeNoImage, "could not load image")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index >= len(s.sequence) {
		return errs.New(errs.ErrCodeSequenceComplete, "all masks processed")
	}
	s.photo = img
	return nil
}

// Photo returns the photo loaded for the current mask.
func (s *Session) Photo() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.photo == nil {
		return nil, errs.New(errs.ErrCodeCanvasNotReady, "original image not ready")
	}
	return s.photo, nil
}

// Record merges the pieces cut for the current mask into the pool and moves
// to the next mask. A cut without pieces is refused and leaves the session
// where it was, photo included.
func (s *Session) Record(pieces []piece.Piece) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index >= len(s.sequence) {
		return Result{}, errs.New(errs.ErrCodeSequenceComplete, "all masks processed")
	}
	maskID := s.sequence[s.index]
	if len(pieces) == 0 {
		return Result{MaskID: maskID}, errs.New(errs.ErrCodeNoPieces, "no triangles produced (maybe mask coverage too small)")
	}

	skipped := s.pool.Merge(pieces)
	s.processed++
	s.index++
	s.photo = nil

	res := Result{
		MaskID:  maskID,
		Added:   len(pieces) - len(skipped),
		Skipped: skipped,
	}
	if s.index < len(s.sequence) {
		res.Next = s.sequence[s.index]
	}
	return res, nil
}

// CheckReady returns a SESSION_INCOMPLETE error unless every mask has been
// cut.
func (s *Session) CheckReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processed < len(s.sequence) {
		return errs.New(errs.ErrCodeSessionIncomplete, "%d of %d masks processed", s.processed, len(s.sequence))
	}
	return nil
}
