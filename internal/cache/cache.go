// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cache

import "sync"

// Cache is a thread-safe map from key to a value built on first use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]V
	order   []K
	hits    uint64
	misses  uint64
}

// New creates an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

// Get returns the cached value for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	return v, ok
}

// GetOrCreate returns the value for key, calling create under the lock if
// it is absent. hit reports whether the value was already cached. When
// create fails nothing is stored and the error is returned.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (value V, hit bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries[key]; ok {
		c.hits++
		return v, true, nil
	}
	c.misses++

	v, err := create()
	if err != nil {
		var zero V
		return zero, false, err
	}
	c.entries[key] = v
	c.order = append(c.order, key)
	return v, false, nil
}

// Range calls fn for every entry in insertion order until fn returns false.
func (c *Cache[K, V]) Range(fn func(key K, value V) bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range c.order {
		if !fn(k, c.entries[k]) {
			return
		}
	}
}

// Clear removes every entry, calling release on each value first in
// reverse insertion order. release may be nil. Statistics are kept.
func (c *Cache[K, V]) Clear(release func(V)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if release != nil {
		for i := len(c.order) - 1; i >= 0; i-- {
			release(c.entries[c.order[i]])
		}
	}
	c.entries = make(map[K]V)
	c.order = nil
}

// Stats returns cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Len:    len(c.entries),
		Hits:   c.hits,
		Misses: c.misses,
	}
	if total := c.hits + c.misses; total > 0 {
		s.HitRate = float64(c.hits) / float64(total)
	}
	return s
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Hits is the number of lookups served from the cache.
	Hits uint64
	// Misses is the number of lookups that called create.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), 0 before the first lookup.
	HitRate float64
}
