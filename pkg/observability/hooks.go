// Package observability lets callers watch the pipeline without the
// pipeline depending on them.
//
// Cutting, sheet assembly, the caches and file export report events to
// whatever hooks are installed; by default those are no-ops. The CLI installs
// pipeline hooks for the duration of a command to drive its progress line:
//
//	restore := observability.Install(observability.Hooks{Pipeline: h})
//	defer restore()
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from cutting and sheet assembly.
type PipelineHooks interface {
	OnCutStart(ctx context.Context, maskID int)
	OnCutComplete(ctx context.Context, maskID, pieceCount int, duration time.Duration, err error)
	OnSheetStart(ctx context.Context, sheet string, poolSize int)
	OnSheetComplete(ctx context.Context, sheet string, placed int, duration time.Duration, err error)
}

// CacheHooks receives cache lookups made through the cache package. keyType
// names the kind of value, such as "cut" or "overlay".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// ExportHooks receives an event for every raster written to disk. kind is
// "sheet" or "piece".
type ExportHooks interface {
	OnExport(ctx context.Context, kind, path string, size int)
	OnExportError(ctx context.Context, kind, path string, err error)
}

// NoopPipelineHooks ignores every event. Embed it to implement only some.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnCutStart(context.Context, int)                                    {}
func (NoopPipelineHooks) OnCutComplete(context.Context, int, int, time.Duration, error)      {}
func (NoopPipelineHooks) OnSheetStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnSheetComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks ignores every event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopExportHooks ignores every event.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExport(context.Context, string, string, int)        {}
func (NoopExportHooks) OnExportError(context.Context, string, string, error) {}

// Hooks is one implementation per event category.
type Hooks struct {
	Pipeline PipelineHooks
	Cache    CacheHooks
	Export   ExportHooks
}

func noop() Hooks {
	return Hooks{Pipeline: NoopPipelineHooks{}, Cache: NoopCacheHooks{}, Export: NoopExportHooks{}}
}

var (
	mu      sync.RWMutex
	current = noop()
)

// Install registers the non-nil fields of h, leaving the other categories
// as they are. The returned function restores what was installed before.
func Install(h Hooks) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	if h.Pipeline != nil {
		current.Pipeline = h.Pipeline
	}
	if h.Cache != nil {
		current.Cache = h.Cache
	}
	if h.Export != nil {
		current.Export = h.Export
	}
	return func() {
		mu.Lock()
		current = prev
		mu.Unlock()
	}
}

// Reset installs the no-op hooks for every category.
func Reset() {
	mu.Lock()
	current = noop()
	mu.Unlock()
}

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks {
	mu.RLock()
	defer mu.RUnlock()
	return current.Pipeline
}

// Cache returns the installed cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return current.Cache
}

// Export returns the installed export hooks.
func Export() ExportHooks {
	mu.RLock()
	defer mu.RUnlock()
	return current.Export
}
