// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

/*
Package cache provides a thread-safe, generic in-memory cache with TTL support.

It backs the per-user recommendation result cache: one entry per user id,
written on every fresh computation and served verbatim until its freshness
window elapses.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - A fixed time-to-live applied on every write
  - Lazy expiration checking on Get
  - Optional bulk removal of expired entries via Sweep
  - Hit, miss and eviction counters

# Usage Example

	c := cache.New[int64, *recommend.Result](5 * time.Minute)

	c.Set(userID, result)

	if cached, ok := c.Get(userID); ok {
	    return cached
	}

# Expiration

An entry is live while the clock is strictly before its ExpiresAt. Reads
never extend an entry's lifetime. There is deliberately no Delete or Clear:
reloading the underlying data does not invalidate results that are still
within their window.

Sweep is safe to call at any time and only removes entries that Get would
already treat as misses. The supervisor runs it periodically to bound memory
for users that stop querying.

# Testing

Use WithClock to drive expiry deterministically:

	now := time.Unix(0, 0)
	c := cache.New[int64, string](time.Minute, cache.WithClock(func() time.Time { return now }))
*/
package cache
