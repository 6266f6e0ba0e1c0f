// Package cache provides a generic LRU cache with a soft limit.
//
//	c := cache.New[string, int](100)
//	v, err := c.GetOrCreate("key", func() (int, error) { return 42, nil })
package cache

import (
	"sort"
	"sync"
)

// Cache is a thread-safe LRU cache with a soft limit. When an insert
// pushes it past the limit, the least recently used quarter of the
// entries is evicted.
//
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*entry[V]
	softLimit int
	tick      int64 // Monotonic access counter
}

type entry[V any] struct {
	value V
	atime int64
}

// New creates a cache with the given soft limit; 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*entry[V]),
		softLimit: softLimit,
	}
}

// Get returns the cached value for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

// GetOrCreate returns the cached value for key, calling create under the
// lock on a miss. A create error is returned and nothing is cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.value, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.entries[key] = &entry[V]{value: v, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evict()
	}
	return v, nil
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]*entry[V])
	c.tick = 0
}

// evict drops the oldest entries until the cache is at three quarters of
// its limit. Caller must hold c.mu.
func (c *Cache[K, V]) evict() {
	target := max(1, c.softLimit*3/4)
	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].atime < all[j].atime })
	for _, a := range all[:len(all)-target] {
		delete(c.entries, a.key)
	}
}
