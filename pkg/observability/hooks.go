// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about keyboard jumps, drag sessions and memo caches.
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
//	    observability.SetJumpHooks(&myJumpHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Jump().OnJumpAccepted(ctx, droppableID, from, to)
package observability

import (
	"context"
	"sync"
)

// =============================================================================
// Jump Hooks
// =============================================================================

// JumpHooks receives events from keyboard jump computations.
type JumpHooks interface {
	// OnJumpAccepted records a jump that produced a new impact.
	OnJumpAccepted(ctx context.Context, droppableID string, fromIndex, toIndex int)

	// OnJumpRejected records a jump that was rejected. code is the
	// machine-readable rejection reason.
	OnJumpRejected(ctx context.Context, code string)
}

// =============================================================================
// Session Hooks
// =============================================================================

// SessionHooks receives events from drag sessions.
type SessionHooks interface {
	OnLift(ctx context.Context, sessionID, draggableID string)
	OnDrop(ctx context.Context, sessionID string, fromIndex, toIndex int)
	OnCancel(ctx context.Context, sessionID string)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from memo caches.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopJumpHooks is a no-op implementation of JumpHooks.
type NoopJumpHooks struct{}

func (NoopJumpHooks) OnJumpAccepted(context.Context, string, int, int) {}
func (NoopJumpHooks) OnJumpRejected(context.Context, string)           {}

// NoopSessionHooks is a no-op implementation of SessionHooks.
type NoopSessionHooks struct{}

func (NoopSessionHooks) OnLift(context.Context, string, string)    {}
func (NoopSessionHooks) OnDrop(context.Context, string, int, int) {}
func (NoopSessionHooks) OnCancel(context.Context, string)          {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)  {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	jumpHooks    JumpHooks    = NoopJumpHooks{}
	sessionHooks SessionHooks = NoopSessionHooks{}
	cacheHooks   CacheHooks   = NoopCacheHooks{}
	hooksMu      sync.RWMutex
)

// SetJumpHooks registers custom jump hooks.
// This should be called once at application startup.
func SetJumpHooks(h JumpHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		jumpHooks = h
	}
}

// SetSessionHooks registers custom session hooks.
func SetSessionHooks(h SessionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sessionHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Jump returns the registered jump hooks.
func Jump() JumpHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return jumpHooks
}

// Session returns the registered session hooks.
func Session() SessionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sessionHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	jumpHooks = NoopJumpHooks{}
	sessionHooks = NoopSessionHooks{}
	cacheHooks = NoopCacheHooks{}
}
