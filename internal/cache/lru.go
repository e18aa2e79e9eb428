// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package cache

import (
	"sync"
	"time"
)

// DefaultCapacity is used when NewLRU is given a non-positive capacity.
const DefaultCapacity = 1024

// entry is a node in the LRU list.
type entry[K comparable, V any] struct {
	key       K
	value     V
	prev      *entry[K, V]
	next      *entry[K, V]
	expiresAt time.Time
}

// LRU is a thread-safe Least Recently Used cache with optional TTL.
// Get, Add and eviction are O(1): a hashmap indexes a doubly-linked list
// ordered from most to least recently used.
type LRU[K comparable, V any] struct {
	mu sync.Mutex

	capacity int

	// ttl of zero or less means entries never expire.
	ttl time.Duration

	items map[K]*entry[K, V]

	// head.next is the most recently used, tail.prev the least.
	head *entry[K, V]
	tail *entry[K, V]

	hits   int64
	misses int64
}

// Stats is a point-in-time view of cache effectiveness.
type Stats struct {
	Hits   int64
	Misses int64
	Size   int
}

// HitRate returns hits as a percentage of lookups, or 0 with no lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// NewLRU creates a cache holding at most capacity entries.
func NewLRU[K comparable, V any](capacity int, ttl time.Duration) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &LRU[K, V]{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[K]*entry[K, V], capacity),
		head:     &entry[K, V]{},
		tail:     &entry[K, V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		if c.expired(e, time.Now()) {
			c.removeEntry(e)
		} else {
			c.moveToFront(e)
			c.hits++
			return e.value, true
		}
	}

	c.misses++
	var zero V
	return zero, false
}

// Add stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = time.Now().Add(c.ttl)
	}

	if e, ok := c.items[key]; ok {
		e.value = value
		e.expiresAt = expiresAt
		c.moveToFront(e)
		return
	}

	e := &entry[K, V]{key: key, value: value, expiresAt: expiresAt}
	c.addToFront(e)
	c.items[key] = e

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// GetOrAdd returns the cached value for key, computing and storing it with
// fn on a miss. fn runs without the lock held, so concurrent misses on the
// same key may both call it.
func (c *LRU[K, V]) GetOrAdd(key K, fn func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := fn()
	c.Add(key, v)
	return v
}

// Stats returns hit/miss statistics.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Hits: c.hits, Misses: c.misses, Size: len(c.items)}
}

// Internal methods (must be called with lock held)

func (c *LRU[K, V]) expired(e *entry[K, V], now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

func (c *LRU[K, V]) addToFront(e *entry[K, V]) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

func (c *LRU[K, V]) moveToFront(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	c.addToFront(e)
}

func (c *LRU[K, V]) removeEntry(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	delete(c.items, e.key)
}

func (c *LRU[K, V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	c.removeEntry(oldest)
}
