// File: layoutcache.go
// Title: Compiled Layout Cache
// Description: Bounded, concurrency-safe cache of compiled layouts keyed by
//              pattern string, so repeated Format calls compile once.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.2.0: Initial implementation

package timex

import "sync"

const defaultLayoutCacheSize = 256

// layoutCache holds compiled layouts. Invalid patterns are not cached.
type layoutCache struct {
	mu       sync.RWMutex
	items    map[string]*layoutEntry
	maxItems int
	clock    uint64

	// Metrics
	hits   uint64
	misses uint64
}

type layoutEntry struct {
	layout   *Layout
	lastUsed uint64
}

var layouts = newLayoutCache(defaultLayoutCacheSize)

func newLayoutCache(maxItems int) *layoutCache {
	if maxItems <= 0 {
		maxItems = defaultLayoutCacheSize
	}
	return &layoutCache{
		items:    make(map[string]*layoutEntry),
		maxItems: maxItems,
	}
}

// get returns the compiled layout for pattern, compiling it on a miss
func (c *layoutCache) get(pattern string) (*Layout, error) {
	c.mu.Lock()
	if entry, ok := c.items[pattern]; ok {
		c.clock++
		entry.lastUsed = c.clock
		c.hits++
		c.mu.Unlock()
		return entry.layout, nil
	}
	c.misses++
	c.mu.Unlock()

	layout, err := CompilePattern(pattern)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict if at capacity (least recently used)
	if _, exists := c.items[pattern]; !exists && len(c.items) >= c.maxItems {
		c.evictOldest()
	}
	c.clock++
	c.items[pattern] = &layoutEntry{layout: layout, lastUsed: c.clock}
	return layout, nil
}

// evictOldest removes the least recently used entry (must be called with lock held)
func (c *layoutCache) evictOldest() {
	var oldestKey string
	var oldest uint64
	found := false

	for key, entry := range c.items {
		if !found || entry.lastUsed < oldest {
			oldestKey = key
			oldest = entry.lastUsed
			found = true
		}
	}

	if found {
		delete(c.items, oldestKey)
	}
}

// size returns the number of cached layouts
func (c *layoutCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// stats returns hit and miss counts
func (c *layoutCache) stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
