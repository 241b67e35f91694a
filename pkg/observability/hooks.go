// Package observability lets main plug tracing or metrics into autoframe
// without the libraries importing a backend.
//
// Two hook sets exist: [ConversionHooks] for batch conversions and
// [HTTPHooks] for API requests. Both default to no-ops; main registers real
// ones once at startup, before any batch or request runs:
//
//	observability.SetConversionHooks(hooks)
//	observability.SetHTTPHooks(hooks)
//
// Emitters fetch the current hooks per batch or request:
//
//	ctx = observability.Conversion().OnBatchStart(ctx, len(selection))
//	// ... convert containers ...
//	observability.Conversion().OnBatchComplete(ctx, success, failed, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Conversion Hooks
// =============================================================================

// ContainerEvent describes the outcome of converting one container.
type ContainerEvent struct {
	Name      string
	Type      string
	Status    string
	Direction string
	Duration  time.Duration
	Err       error
}

// ConversionHooks receives events from the batch conversion pipeline.
type ConversionHooks interface {
	// OnBatchStart is called before the first container. The returned context
	// is used for the rest of the batch, so implementations can attach spans.
	OnBatchStart(ctx context.Context, containers int) context.Context

	// OnContainerComplete is called once per container, whatever its outcome.
	OnContainerComplete(ctx context.Context, ev ContainerEvent)

	// OnBatchComplete is called after the last container or on cancellation.
	OnBatchComplete(ctx context.Context, success, failed int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest is called when a request is routed. The returned context is
	// passed to the handler.
	OnRequest(ctx context.Context, method, path string) context.Context

	// OnResponse records the response status and latency.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopConversionHooks is a no-op implementation of ConversionHooks.
type NoopConversionHooks struct{}

func (NoopConversionHooks) OnBatchStart(ctx context.Context, _ int) context.Context {
	return ctx
}

func (NoopConversionHooks) OnContainerComplete(context.Context, ContainerEvent)             {}
func (NoopConversionHooks) OnBatchComplete(context.Context, int, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(ctx context.Context, _, _ string) context.Context {
	return ctx
}

func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	conversionHooks ConversionHooks = NoopConversionHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
	hooksMu         sync.RWMutex
)

// SetConversionHooks registers custom conversion hooks.
// This should be called once at application startup before any conversion.
func SetConversionHooks(h ConversionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		conversionHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Conversion returns the registered conversion hooks.
func Conversion() ConversionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return conversionHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	conversionHooks = NoopConversionHooks{}
	httpHooks = NoopHTTPHooks{}
}
