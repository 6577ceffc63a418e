package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/matzehuels/triangulator/pkg/observability"
)

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

const spinnerInterval = 80 * time.Millisecond

// Spinner animates a one-line status on stderr until stopped or until its
// context ends. The message can change while it runs.
type Spinner struct {
	w      io.Writer
	ctx    context.Context
	cancel context.CancelFunc
	exited chan struct{}
	once   sync.Once

	mu      sync.Mutex
	started bool
	message string
	width   int // widest line drawn so far, for clearing
}

func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:       os.Stderr,
		ctx:     ctx,
		cancel:  cancel,
		exited:  make(chan struct{}),
		message: message,
	}
}

// Start draws frames in the background.
func (s *Spinner) Start() {
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	go func() {
		defer close(s.exited)
		tick := time.NewTicker(spinnerInterval)
		defer tick.Stop()
		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-tick.C:
				s.draw(spinnerFrames[i%len(spinnerFrames)])
			}
		}
	}()
}

// SetMessage replaces the text shown next to the frame.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Message returns the text currently shown.
func (s *Spinner) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

func (s *Spinner) draw(frame rune) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = max(s.width, len(s.message)+2)
	line := fmt.Sprintf("%-*s", s.width-2, s.message)
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(string(frame)), StyleDim.Render(line))
}

func (s *Spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%*s\r", s.width+2, "")
}

// Stop ends the animation and clears the line. It is safe to call more than
// once, and before Start.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			<-s.exited
		}
		s.clear()
	})
}

// StopWithError stops the spinner and prints message as an error.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context has ended, either through
// Stop or through its parent.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// spinnerHooks narrates pipeline progress on a spinner.
type spinnerHooks struct {
	observability.NoopPipelineHooks
	s *Spinner
}

func (h spinnerHooks) OnCutStart(_ context.Context, maskID int) {
	h.s.SetMessage(fmt.Sprintf("Cutting under mask %d...", maskID))
}

func (h spinnerHooks) OnSheetStart(_ context.Context, sheet string, poolSize int) {
	h.s.SetMessage(fmt.Sprintf("Assembling %s from %d pieces...", sheet, poolSize))
}

// follow installs hooks that keep the spinner's message in step with the
// pipeline until the returned function is called.
func (s *Spinner) follow() (restore func()) {
	return observability.Install(observability.Hooks{Pipeline: spinnerHooks{s: s}})
}
