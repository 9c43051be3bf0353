// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package store

import (
	"slices"
	"sync"
	"time"

	"github.com/tomtom215/courserec/internal/metrics"
	"github.com/tomtom215/courserec/internal/recommend"
)

// collection is a copy-on-write slice. Replace swaps the whole slice under
// the write lock; Snapshot hands out the current slice, which is never
// written again.
type collection[T any] struct {
	mu         sync.RWMutex
	name       string
	records    []T
	generation uint64
	loadedAt   time.Time
}

func (c *collection[T]) replace(records []T) int {
	next := slices.Clone(records)
	if next == nil {
		next = []T{}
	}

	c.mu.Lock()
	c.records = next
	c.generation++
	c.loadedAt = time.Now()
	c.mu.Unlock()

	metrics.RecordStoreReload(c.name, len(next))
	return len(next)
}

func (c *collection[T]) snapshot() ([]T, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.records, c.generation
}

func (c *collection[T]) info() Info {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Info{
		Records:    len(c.records),
		Generation: c.generation,
		LoadedAt:   c.loadedAt,
	}
}

// Info describes a store's current contents.
type Info struct {
	Records    int       `json:"records"`
	Generation uint64    `json:"generation"`
	LoadedAt   time.Time `json:"loaded_at,omitempty"`
}

// Ratings holds the full ordered rating list. It is replaced wholesale,
// never appended to, and readers always see either the old or the new list.
type Ratings struct {
	c collection[recommend.Rating]
}

// NewRatings creates an empty rating store.
func NewRatings() *Ratings {
	return &Ratings{c: collection[recommend.Rating]{name: metrics.StoreRatings, records: []recommend.Rating{}}}
}

// Replace atomically swaps in a copy of ratings and returns the new count.
func (r *Ratings) Replace(ratings []recommend.Rating) int {
	return r.c.replace(ratings)
}

// Snapshot returns the current rating list and its generation.
// The returned slice must not be modified.
func (r *Ratings) Snapshot() ([]recommend.Rating, uint64) {
	return r.c.snapshot()
}

// Info returns the store's size and generation.
func (r *Ratings) Info() Info {
	return r.c.info()
}

// Catalog holds item metadata used to decorate results.
type Catalog struct {
	c collection[recommend.Item]

	// byID is rebuilt on every Replace and swapped with the records.
	mu   sync.RWMutex
	byID map[int64]recommend.Item
}

// NewCatalog creates an empty catalog store.
func NewCatalog() *Catalog {
	return &Catalog{
		c:    collection[recommend.Item]{name: metrics.StoreCatalog, records: []recommend.Item{}},
		byID: map[int64]recommend.Item{},
	}
}

// Replace atomically swaps in a copy of items and returns the new count.
// When ids repeat, the last entry wins for lookups.
func (c *Catalog) Replace(items []recommend.Item) int {
	index := make(map[int64]recommend.Item, len(items))
	for _, item := range items {
		index[item.ID] = item
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID = index
	return c.c.replace(items)
}

// Snapshot returns the current item list and its generation.
// The returned slice must not be modified.
func (c *Catalog) Snapshot() ([]recommend.Item, uint64) {
	return c.c.snapshot()
}

// Lookup returns the catalog entries for ids. Unknown ids are omitted.
func (c *Catalog) Lookup(ids []int64) map[int64]recommend.Item {
	c.mu.RLock()
	defer c.mu.RUnlock()

	found := make(map[int64]recommend.Item, len(ids))
	for _, id := range ids {
		if item, ok := c.byID[id]; ok {
			found[id] = item
		}
	}
	return found
}

// Info returns the store's size and generation.
func (c *Catalog) Info() Info {
	return c.c.info()
}
