// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about drag sessions and size store operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drag().OnDragStart(sessionID, "bottomRight")
//	// ... pointer moves ...
//	observability.Drag().OnDragStop(sessionID, "bottomRight", 40, 12, elapsed)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from the resize engine. Drag handling runs
// synchronously inside pointer handlers, so these hooks carry no context.
type DragHooks interface {
	// OnDragStart records an Idle to Dragging transition.
	OnDragStart(session, direction string)

	// OnDragMove records a frame that changed the tracked size.
	OnDragMove(session, direction string, deltaWidth, deltaHeight float64)

	// OnDragStop records a Dragging to Idle transition with the final delta.
	OnDragStop(session, direction string, deltaWidth, deltaHeight float64, duration time.Duration)

	// OnDragRejected records a drag start that failed validation or setup.
	OnDragRejected(direction string, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from size store operations.
type StoreHooks interface {
	// OnStoreHit records a load that found a size.
	OnStoreHit(ctx context.Context, backend string)

	// OnStoreMiss records a load that found nothing.
	OnStoreMiss(ctx context.Context, backend string)

	// OnStoreSet records a write.
	OnStoreSet(ctx context.Context, backend string, size int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnDragStart(string, string)                                 {}
func (NoopDragHooks) OnDragMove(string, string, float64, float64)                {}
func (NoopDragHooks) OnDragStop(string, string, float64, float64, time.Duration) {}
func (NoopDragHooks) OnDragRejected(string, error)                               {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreHit(context.Context, string)      {}
func (NoopStoreHooks) OnStoreMiss(context.Context, string)     {}
func (NoopStoreHooks) OnStoreSet(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks  DragHooks  = NoopDragHooks{}
	storeHooks StoreHooks = NoopStoreHooks{}
	hooksMu    sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any drag begins.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	storeHooks = NoopStoreHooks{}
}
