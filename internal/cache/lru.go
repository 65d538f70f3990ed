// Package cache provides a small in-memory LRU cache.
package cache

import (
	"container/list"
	"sync"
)

// entry is one cached value and its position in the eviction list.
type entry[K comparable, V any] struct {
	key     K
	value   V
	element *list.Element
}

// LRU is a generic fixed-capacity cache that evicts the least recently
// used entry. It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	capacity  int
	entries   map[K]*entry[K, V]
	evictList *list.List
	mu        sync.Mutex

	hits   int64
	misses int64
}

// New creates an LRU cache holding at most capacity entries.
func New[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity:  capacity,
		entries:   make(map[K]*entry[K, V]),
		evictList: list.New(),
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.evictList.MoveToFront(e.element)
	return e.value, true
}

// Set adds or updates a value, evicting the oldest entry when full.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.evictList.MoveToFront(e.element)
		return
	}

	e := &entry[K, V]{key: key, value: value}
	e.element = c.evictList.PushFront(e)
	c.entries[key] = e

	for c.evictList.Len() > c.capacity {
		c.evictOldest()
	}
}

// GetOrSet returns the cached value for key, computing and storing it
// with fn on a miss.
func (c *LRU[K, V]) GetOrSet(key K, fn func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn()
	c.Set(key, v)
	return v
}

// Delete removes a key from the cache.
func (c *LRU[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.removeEntry(e)
	}
}

// Clear removes all entries from the cache.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*entry[K, V])
	c.evictList = list.New()
}

// Len returns the number of entries in the cache.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the hit and miss counts.
func (c *LRU[K, V]) Stats() (hits, misses int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// evictOldest removes the least recently used entry.
func (c *LRU[K, V]) evictOldest() {
	elem := c.evictList.Back()
	if elem == nil {
		return
	}
	c.removeEntry(elem.Value.(*entry[K, V]))
}

func (c *LRU[K, V]) removeEntry(e *entry[K, V]) {
	c.evictList.Remove(e.element)
	delete(c.entries, e.key)
}
