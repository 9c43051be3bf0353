// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package cache

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTTL is used when New is given a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// Entry represents a cached value with its expiration time.
type Entry[V any] struct {
	Value     V
	ExpiresAt time.Time
}

// live reports whether the entry is still servable at now.
func (e Entry[V]) live(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits      int64     `json:"hits"`
	Misses    int64     `json:"misses"`
	Evictions int64     `json:"evictions"`
	Entries   int       `json:"entries"`
	LastSweep time.Time `json:"last_sweep,omitempty"`
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}
	return float64(s.Hits) / float64(total) * 100.0
}

// Option configures a TTL cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// TTL is a thread-safe keyed cache where every entry expires a fixed duration
// after it was written.
//
// Expiry is lazy: Get compares the entry's deadline against the clock and
// treats an expired entry as a miss. Sweep removes expired entries in bulk and
// is optional. Entries are only ever replaced by a later Set or dropped once
// expired; there is no invalidation hook.
//
// Example:
//
//	c := cache.New[int64, *Result](5 * time.Minute)
//	c.Set(42, result)
//	if r, ok := c.Get(42); ok {
//	    // serve r
//	}
type TTL[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]Entry[V]
	ttl     time.Duration
	now     func() time.Time

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	lastSweep atomic.Int64 // unix nanos
}

// New creates a TTL cache. A non-positive ttl falls back to DefaultTTL.
func New[K comparable, V any](ttl time.Duration, opts ...Option) *TTL[K, V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TTL[K, V]{
		entries: make(map[K]Entry[V]),
		ttl:     ttl,
		now:     o.now,
	}
}

// TTL returns the default time-to-live applied by Set.
func (c *TTL[K, V]) TTL() time.Duration {
	return c.ttl
}

// Get returns the value for key if a live entry exists.
//
// An expired entry counts as a miss and is removed, unless a concurrent Set
// already replaced it with a live one.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	entry, ok := c.GetEntry(key)
	return entry.Value, ok
}

// GetEntry is like Get but also returns the entry's expiration time.
func (c *TTL[K, V]) GetEntry(key K) (Entry[V], bool) {
	now := c.now()

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists {
		c.misses.Add(1)
		return Entry[V]{}, false
	}

	if !entry.live(now) {
		c.mu.Lock()
		if current, ok := c.entries[key]; ok && !current.live(now) {
			delete(c.entries, key)
			c.evictions.Add(1)
		}
		c.mu.Unlock()
		c.misses.Add(1)
		return Entry[V]{}, false
	}

	c.hits.Add(1)
	return entry, true
}

// Set stores value under key with the default TTL and returns the entry's
// expiration time. An existing entry for key is overwritten.
func (c *TTL[K, V]) Set(key K, value V) time.Time {
	return c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *TTL[K, V]) SetWithTTL(key K, value V, ttl time.Duration) time.Time {
	expiresAt := c.now().Add(ttl)

	c.mu.Lock()
	c.entries[key] = Entry[V]{Value: value, ExpiresAt: expiresAt}
	c.mu.Unlock()

	return expiresAt
}

// Len returns the number of stored entries, including expired ones that have
// not been swept yet.
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes every expired entry and returns how many were removed.
// Live entries are never touched.
func (c *TTL[K, V]) Sweep() int {
	now := c.now()

	c.mu.Lock()
	removed := 0
	for key, entry := range c.entries {
		if !entry.live(now) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	c.evictions.Add(int64(removed))
	c.lastSweep.Store(now.UnixNano())
	return removed
}

// Stats returns a snapshot of the cache counters.
func (c *TTL[K, V]) Stats() Stats {
	s := Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.Len(),
	}
	if ns := c.lastSweep.Load(); ns != 0 {
		s.LastSweep = time.Unix(0, ns)
	}
	return s
}
