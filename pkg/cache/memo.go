// Package cache provides in-process memoization for the drag-and-drop core.
//
// The core recomputes the same derived values on every keyboard jump during
// a drag: the ordered members of a droppable and the dragged item's index
// among them. Their inputs are snapshots whose identity only changes when
// the host replaces them, so a single remembered result is enough to skip
// the recomputation for the common case.
//
// # Usage
//
//	var index cache.One[indexKey, int]
//	i := index.Get(ctx, "index", key, func() int { return slices.Index(xs, x) })
//
// Hits and misses are reported through [observability.Cache].
package cache

import (
	"context"
	"sync"

	"github.com/matzehuels/reorder/pkg/observability"
)

// One remembers the most recent result of a computation.
//
// Keys are compared with ==, so they should be built from pointers or other
// identity values rather than from the contents of the inputs. The zero
// value is an empty cache ready for use. One is safe for concurrent use.
type One[K comparable, V any] struct {
	mu    sync.Mutex
	key   K
	value V
	ok    bool
}

// Get returns the remembered value when key matches the last key, otherwise
// it calls compute, remembers the result under key and returns it.
// keyType labels the cache in hook events.
func (c *One[K, V]) Get(ctx context.Context, keyType string, key K, compute func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ok && c.key == key {
		observability.Cache().OnCacheHit(ctx, keyType)
		return c.value
	}
	observability.Cache().OnCacheMiss(ctx, keyType)

	c.key, c.value, c.ok = key, compute(), true
	return c.value
}

// Reset forgets the remembered value.
func (c *One[K, V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zeroK K
	var zeroV V
	c.key, c.value, c.ok = zeroK, zeroV, false
}
