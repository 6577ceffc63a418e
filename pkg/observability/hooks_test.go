package observability

import (
	"context"
	"testing"
	"time"
)

type countingHooks struct {
	NoopPipelineHooks
	cuts, sheets int
}

func (h *countingHooks) OnCutStart(context.Context, int)                       { h.cuts++ }
func (h *countingHooks) OnSheetStart(context.Context, string, int)             { h.sheets++ }
func (h *countingHooks) OnExport(context.Context, string, string, int)         {}
func (h *countingHooks) OnExportError(context.Context, string, string, error) {}

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	Pipeline().OnCutStart(ctx, 1)
	Pipeline().OnSheetComplete(ctx, "RED", 128, time.Second, nil)
	Cache().OnCacheSet(ctx, "cut", 1024)
	Export().OnExportError(ctx, "piece", "101.png", nil)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Errorf("Pipeline() = %T, want NoopPipelineHooks", Pipeline())
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() = %T, want NoopCacheHooks", Cache())
	}
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Errorf("Export() = %T, want NoopExportHooks", Export())
	}
}

func TestInstallAndRestore(t *testing.T) {
	Reset()
	defer Reset()
	ctx := context.Background()

	h := &countingHooks{}
	restore := Install(Hooks{Pipeline: h})

	Pipeline().OnCutStart(ctx, 4)
	Pipeline().OnCutStart(ctx, 6)
	Pipeline().OnSheetStart(ctx, "GREEN", 24)
	if h.cuts != 2 || h.sheets != 1 {
		t.Errorf("counted %d cuts and %d sheets, want 2 and 1", h.cuts, h.sheets)
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Install with a nil Cache field replaced the cache hooks")
	}

	restore()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("restore() did not reinstate the previous pipeline hooks")
	}
}

func TestInstallNests(t *testing.T) {
	Reset()
	defer Reset()

	outer := &countingHooks{}
	restoreOuter := Install(Hooks{Pipeline: outer, Export: outer})
	inner := &countingHooks{}
	restoreInner := Install(Hooks{Pipeline: inner})

	if Pipeline() != inner || Export() != outer {
		t.Fatal("inner Install should only replace the pipeline hooks")
	}
	restoreInner()
	if Pipeline() != outer {
		t.Error("restoring the inner hooks should bring back the outer ones")
	}
	restoreOuter()
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("restoring the outer hooks should bring back the defaults")
	}
}
