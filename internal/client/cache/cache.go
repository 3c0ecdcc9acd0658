// Package cache holds the shared collection cache behind the resource
// services. One cache key per resource name; staleness is resolved by an
// invalidation-triggered refetch of the whole collection, never by a
// client-side merge. No speculative (optimistic) mutation of cached data
// happens anywhere: callers see confirmed server state only.
package cache

import (
	"context"
	"sync"
)

// Collection caches one backend collection under a fixed key.
//
// A mutation on a collection of N records triggers a refetch of all N;
// this whole-collection discipline is a deliberate simplicity trade-off
// carried over from the reference system, not an oversight.
type Collection[T any] struct {
	key   string
	fetch func(ctx context.Context) ([]T, error)

	mu      sync.Mutex
	items   []T
	valid   bool
	loading bool
}

// NewCollection binds a cache key to its fetch function.
func NewCollection[T any](key string, fetch func(ctx context.Context) ([]T, error)) *Collection[T] {
	return &Collection[T]{key: key, fetch: fetch}
}

// Key returns the resource cache key ("orders", "products", ...).
func (c *Collection[T]) Key() string { return c.key }

// Get returns the cached collection, fetching it first when the cache is
// empty or stale. Before the first successful load the result is an empty
// slice, never nil.
func (c *Collection[T]) Get(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	if c.valid {
		items := c.items
		c.mu.Unlock()
		return items, nil
	}
	c.loading = true
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		// failed loads leave the previous snapshot untouched
		return c.snapshotLocked(), err
	}
	if items == nil {
		items = []T{}
	}
	c.items = items
	c.valid = true
	return c.items, nil
}

// Items returns the current snapshot without triggering a fetch.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Collection[T]) snapshotLocked() []T {
	if c.items == nil {
		return []T{}
	}
	return c.items
}

// IsLoading reports whether a fetch is in flight.
func (c *Collection[T]) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Invalidate marks the collection stale and immediately refetches it once.
// It is called by the resource services after each confirmed mutation; a
// failed mutation must not call it, so the cache stays byte-for-byte
// unchanged on failure. A failed refetch leaves the collection stale; the
// next Get tries again.
func (c *Collection[T]) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()

	_, err := c.Get(ctx)
	return err
}
