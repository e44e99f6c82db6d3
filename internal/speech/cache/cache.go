// Package cache memoizes upstream results by request fingerprint.
package cache

import "sync"

// Stats describes cache usage since construction.
type Stats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// Cache is an append-only map from fingerprint to result. There is no eviction:
// entries live as long as the Cache value does.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
	hits    int64
	misses  int64
}

// New returns an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// Get returns the stored result for fingerprint, if any.
func (c *Cache[V]) Get(fingerprint string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[fingerprint]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return v, ok
}

// Put stores result under fingerprint. An existing entry is never replaced.
func (c *Cache[V]) Put(fingerprint string, result V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[fingerprint]; exists {
		return
	}
	c.entries[fingerprint] = result
}

// Len returns the number of stored entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache[V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Entries: len(c.entries),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// Prefix returns at most n runes of text. Fingerprints use it to bound key size, so
// texts that only differ past n runes share an entry.
func Prefix(text string, n int) string {
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
