// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package models

import (
	"time"
)

// LoadResponse is returned by the bulk load endpoints.
type LoadResponse struct {
	Count int `json:"count"`
}

// RecommendationsResponse is a ranked recommendation list for one user.
//
// Source is "similarity" when the list comes from neighbor-weighted scores
// and "popularity" when the fallback ranking by rating count was used.
// Scores from the two sources are on different scales.
type RecommendationsResponse struct {
	UserID     int64             `json:"userId"`
	Source     string            `json:"source"`
	Items      []RecommendedItem `json:"items"`
	Neighbors  int               `json:"neighbors"`
	Cached     bool              `json:"cached"`
	ComputedAt time.Time         `json:"computedAt"`
	ExpiresAt  time.Time         `json:"expiresAt"`
}

// RecommendedItem is one ranked entry. Course is set only on the decorated
// endpoint and only when the catalog knows the item.
type RecommendedItem struct {
	ItemID int64       `json:"itemId"`
	Score  float64     `json:"score"`
	Course *CourseInfo `json:"course,omitempty"`
}

// CourseInfo is catalog metadata joined onto a recommendation.
type CourseInfo struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// NeighborsResponse lists the most similar users for a target user.
type NeighborsResponse struct {
	UserID    int64      `json:"userId"`
	Neighbors []Neighbor `json:"neighbors"`
}

// Neighbor is one positive-similarity user.
type Neighbor struct {
	UserID     int64   `json:"otherUserId"`
	Similarity float64 `json:"similarity"`
}

// StatusResponse reports store sizes and engine counters.
type StatusResponse struct {
	Ratings StoreStatus  `json:"ratings"`
	Catalog StoreStatus  `json:"catalog"`
	Engine  EngineStatus `json:"engine"`
}

// StoreStatus describes one in-memory store.
type StoreStatus struct {
	Records    int        `json:"records"`
	Generation uint64     `json:"generation"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`
}

// EngineStatus contains recommendation engine counters and cache state.
type EngineStatus struct {
	CacheTTLSeconds   float64 `json:"cache_ttl_seconds"`
	CachedEntries     int     `json:"cached_entries"`
	Requests          int64   `json:"requests"`
	CacheHits         int64   `json:"cache_hits"`
	CacheMisses       int64   `json:"cache_misses"`
	Coalesced         int64   `json:"coalesced"`
	SimilarityResults int64   `json:"similarity_results"`
	PopularityResults int64   `json:"popularity_results"`
	Errors            int64   `json:"errors"`
	CacheEvictions    int64   `json:"cache_evictions"`
	CacheHitRate      float64 `json:"cache_hit_rate"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status        string            `json:"status"`
	UptimeSeconds float64           `json:"uptime_seconds,omitempty"`
	Checks        map[string]string `json:"checks,omitempty"`
}

// LegacyRecommendation is one entry of the bare array served on
// /api/recommendations/{userID}.
type LegacyRecommendation struct {
	CourseID int64   `json:"courseId"`
	Score    float64 `json:"score"`
}

// LegacySeedResponse is returned by /api/seed/ratings and /api/seed/courses.
type LegacySeedResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// LegacyError is the error body of the legacy endpoints.
type LegacyError struct {
	Error string `json:"error"`
}
