package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/triangulator/pkg/observability"
)

func bufferedSpinner(ctx context.Context, message string) (*Spinner, *bytes.Buffer) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, message)
	s.w = &buf
	return s, &buf
}

func TestSpinnerDrawsAndStops(t *testing.T) {
	s, buf := bufferedSpinner(context.Background(), "Cutting under mask 1...")
	s.Start()
	time.Sleep(3 * spinnerInterval)
	s.Stop()
	s.Stop()

	if !strings.Contains(buf.String(), "Cutting under mask 1...") {
		t.Errorf("spinner never drew its message: %q", buf.String())
	}
	if !s.Cancelled() {
		t.Error("Cancelled() should report true after Stop")
	}
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	s, _ := bufferedSpinner(context.Background(), "idle")
	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop before Start blocked")
	}
}

func TestSpinnerParentCancel(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) }},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), spinnerInterval)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			s, _ := bufferedSpinner(ctx, "Running session...")
			s.Start()
			cancel()
			time.Sleep(2 * spinnerInterval)
			if !s.Cancelled() {
				t.Error("spinner should follow its parent context")
			}
			s.Stop()
		})
	}
}

func TestSpinnerFollowsPipeline(t *testing.T) {
	observability.Reset()
	defer observability.Reset()
	ctx := context.Background()

	s, _ := bufferedSpinner(ctx, "Running session...")
	restore := s.follow()

	observability.Pipeline().OnCutStart(ctx, 6)
	if got := s.Message(); got != "Cutting under mask 6..." {
		t.Errorf("after cut start: %q", got)
	}
	observability.Pipeline().OnSheetStart(ctx, "GREEN", 36)
	if got := s.Message(); got != "Assembling GREEN from 36 pieces..." {
		t.Errorf("after sheet start: %q", got)
	}

	restore()
	observability.Pipeline().OnCutStart(ctx, 1)
	if got := s.Message(); !strings.HasPrefix(got, "Assembling") {
		t.Errorf("spinner still followed after restore: %q", got)
	}
}
