// Package cache implements the resolver's TTL-based response cache: a
// concurrent map from cache key to value, with per-entry expiration
// policies and a size cap at which an insert first drops long-unused
// entries. The cap is not strict: if nothing has gone unused for an hour,
// the insert still goes ahead. Entries carry either an absolute expiration or none
// at all; there is no negative caching and no hit/miss LRU eviction
// order, only a "haven't been read in an hour" sweep.
package cache

import (
	"sync"
	"time"
)

// MaxEntries is the cache size cap. Once reached, an insert first tries to
// make room by dropping entries unused for an hour or more.
const MaxEntries = 2_097_152

// dropUnusedAfter is the staleness window used for capacity-pressure
// eviction.
const dropUnusedAfter = time.Hour

// Policy governs whether and when an entry becomes invalid.
type Policy interface {
	validAt(created, now time.Time) bool
}

// AbsoluteExpiration marks an entry invalid once d has elapsed since it was
// created. d == 0 is legal: such an entry is never valid, so every read
// misses, even one at the same instant as the insert.
type AbsoluteExpiration time.Duration

func (d AbsoluteExpiration) validAt(created, now time.Time) bool {
	return created.Add(time.Duration(d)).After(now)
}

// NoExpiration marks an entry as never expiring on its own; it can still be
// evicted by capacity pressure.
type NoExpiration struct{}

func (NoExpiration) validAt(time.Time, time.Time) bool { return true }

type entry[V any] struct {
	value    V
	policy   Policy
	created  time.Time
	lastUsed time.Time
}

// Cache is a concurrent TTL cache keyed by K.
type Cache[K comparable, V any] struct {
	mu   sync.Mutex
	data map[K]*entry[V]
	now  func() time.Time
}

// New constructs an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		data: make(map[K]*entry[V]),
		now:  time.Now,
	}
}

// Get returns the cached value for key if present and still valid per its
// policy. A hit bumps the entry's last-used time. An invalid entry is
// removed and reported as a miss.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.data[key]
	if !ok {
		return zero, false
	}

	now := c.now()
	if !e.policy.validAt(e.created, now) {
		delete(c.data, key)
		return zero, false
	}

	e.lastUsed = now
	return e.value, true
}

// Add inserts value under key with the given expiration policy. Expired
// entries are dropped first; if the cache is still at or above MaxEntries,
// entries unused for an hour or more are dropped to make room. The insert
// happens even if that frees nothing.
func (c *Cache[K, V]) Add(key K, value V, policy Policy) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.dropExpiredLocked(now)
	if len(c.data) >= MaxEntries {
		c.dropUnusedForLocked(dropUnusedAfter, now)
	}

	c.data[key] = &entry[V]{
		value:    value,
		policy:   policy,
		created:  now,
		lastUsed: now,
	}
}

// Len returns the current entry count, without pruning anything.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// DropExpired removes every entry whose policy reports it invalid now.
func (c *Cache[K, V]) DropExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropExpiredLocked(c.now())
}

func (c *Cache[K, V]) dropExpiredLocked(now time.Time) {
	for k, e := range c.data {
		if !e.policy.validAt(e.created, now) {
			delete(c.data, k)
		}
	}
}

// DropUnusedFor removes every entry whose last-used time is at least
// period in the past, i.e. retains entries where lastUsed+period > now.
func (c *Cache[K, V]) DropUnusedFor(period time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropUnusedForLocked(period, c.now())
}

func (c *Cache[K, V]) dropUnusedForLocked(period time.Duration, now time.Time) {
	for k, e := range c.data {
		if !e.lastUsed.Add(period).After(now) {
			delete(c.data, k)
		}
	}
}
