// Package resource provides a generic load-once cache for shared assets.
// The cache knows nothing about what it stores: a Loader turns a key into a
// resource, and every caller asking for the same key gets the same handle.
package resource

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Loader produces a resource from a key.
type Loader[K comparable, R any] interface {
	Load(key K) (R, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc[K comparable, R any] func(key K) (R, error)

// Load calls f(key).
func (f LoaderFunc[K, R]) Load(key K) (R, error) {
	return f(key)
}

// Cache maps keys to loaded resources. Entries are created lazily on first
// Load and live as long as the cache. Failed loads are not remembered.
//
// R is normally a pointer type so that callers share one instance.
type Cache[K comparable, R any] struct {
	loader Loader[K, R]
	items  map[K]R
	mu     sync.Mutex
}

// New creates an empty cache backed by loader.
func New[K comparable, R any](loader Loader[K, R]) *Cache[K, R] {
	return &Cache[K, R]{
		loader: loader,
		items:  make(map[K]R),
	}
}

// Load returns the cached resource for key, loading it on first use.
// The lock is held across the loader call so concurrent callers never
// load the same key twice.
func (c *Cache[K, R]) Load(key K) (R, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if r, ok := c.items[key]; ok {
		return r, nil
	}

	r, err := c.loader.Load(key)
	if err != nil {
		var zero R
		return zero, fmt.Errorf("resource: load %v: %w: %w", key, core.ErrLoad, err)
	}

	c.items[key] = r
	return r, nil
}

// Contains reports whether key has been loaded successfully.
func (c *Cache[K, R]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	return ok
}

// Len returns the number of cached resources.
func (c *Cache[K, R]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}
