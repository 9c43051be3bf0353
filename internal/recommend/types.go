// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package recommend

import (
	"time"
)

const (
	// MaxNeighbors caps how many of the most similar users contribute to a
	// similarity-weighted ranking.
	MaxNeighbors = 50

	// MaxResults caps the length of every recommendation list.
	MaxResults = 10
)

// Rating is a single (user, item, value) observation.
// The raw list may contain several ratings for the same pair; the last one
// wins when vectors are built.
type Rating struct {
	UserID int64   `json:"userId"`
	ItemID int64   `json:"itemId"`
	Value  float64 `json:"rating"`
}

// Item is a catalog entry. It is used only to decorate results for display
// and never influences scoring.
type Item struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// ScoredItem is one ranked recommendation.
// Score is a similarity-weighted rating sum or a raw rating count depending
// on the Result's Source; the two scales are not comparable.
type ScoredItem struct {
	ItemID int64   `json:"itemId"`
	Score  float64 `json:"score"`
}

// SimilarityEdge is the cosine similarity between the target user and one
// other user.
type SimilarityEdge struct {
	UserID int64   `json:"otherUserId"`
	Score  float64 `json:"score"`
}

// Source identifies which branch produced a Result.
type Source string

const (
	// SourceSimilarity marks results ranked by neighbor-weighted scores.
	SourceSimilarity Source = "similarity"

	// SourcePopularity marks results ranked by raw rating counts, used when
	// no neighbor contributed any candidate item.
	SourcePopularity Source = "popularity"
)

// String returns the source name.
func (s Source) String() string {
	return string(s)
}

// Result is a ranked recommendation list for one user together with the
// branch that produced it.
type Result struct {
	UserID int64        `json:"userId"`
	Source Source       `json:"source"`
	Items  []ScoredItem `json:"items"`

	// Neighbors is the number of positive-similarity users that contributed.
	Neighbors int `json:"neighbors"`

	// RatingsGeneration is the store generation the result was computed from.
	RatingsGeneration uint64 `json:"ratingsGeneration"`

	ComputedAt time.Time `json:"computedAt"`
	ExpiresAt  time.Time `json:"expiresAt"`

	// Cached is true when the result was served from the result cache.
	Cached bool `json:"cached"`
}

// clone returns a deep copy so callers cannot mutate a cached result.
func (r *Result) clone(cached bool) *Result {
	out := *r
	out.Items = make([]ScoredItem, len(r.Items))
	copy(out.Items, r.Items)
	out.Cached = cached
	return &out
}

// EngineStats contains engine request counters.
type EngineStats struct {
	Requests          int64 `json:"requests"`
	CacheHits         int64 `json:"cache_hits"`
	CacheMisses       int64 `json:"cache_misses"`
	Coalesced         int64 `json:"coalesced"`
	SimilarityResults int64 `json:"similarity_results"`
	PopularityResults int64 `json:"popularity_results"`
	Errors            int64 `json:"errors"`
	CachedEntries     int   `json:"cached_entries"`
}
