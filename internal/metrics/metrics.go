// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared with callers.
const (
	CacheHit       = "hit"
	CacheMiss      = "miss"
	CacheCoalesced = "coalesced"

	StoreRatings = "ratings"
	StoreCatalog = "catalog"

	RejectDecode     = "decode"
	RejectValidation = "validation"
	RejectTooLarge   = "too_large"
)

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by cache outcome",
		},
		[]string{"cache"}, // "hit", "miss", "coalesced"
	)

	RecommendComputations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_computations_total",
			Help: "Total number of fresh recommendation computations by result source",
		},
		[]string{"source"}, // "similarity", "popularity"
	)

	RecommendComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_compute_duration_seconds",
			Help:    "Duration of a full recommendation computation in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	RecommendNeighbors = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_neighbors",
			Help:    "Number of positive-similarity neighbors used per computation",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 30, 40, 50},
		},
	)

	// Result Cache Metrics
	ResultCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_cache_entries",
			Help: "Current number of cached recommendation results",
		},
	)

	ResultCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_evictions_total",
			Help: "Total number of expired recommendation results removed by the sweeper",
		},
	)

	// Store Metrics
	StoreRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_records",
			Help: "Current number of records held by each in-memory store",
		},
		[]string{"store"}, // "ratings", "catalog"
	)

	StoreReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_reloads_total",
			Help: "Total number of bulk reloads per store",
		},
		[]string{"store"},
	)

	StoreRejectedLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_rejected_loads_total",
			Help: "Total number of bulk loads rejected as malformed",
		},
		[]string{"store", "reason"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendRequest records a recommendation request by cache outcome.
func RecordRecommendRequest(cacheResult string) {
	RecommendRequests.WithLabelValues(cacheResult).Inc()
}

// RecordRecommendCompute records a fresh computation.
func RecordRecommendCompute(source string, neighbors int, duration time.Duration) {
	RecommendComputations.WithLabelValues(source).Inc()
	RecommendNeighbors.Observe(float64(neighbors))
	RecommendComputeDuration.Observe(duration.Seconds())
}

// UpdateResultCache sets the cache size gauge and adds swept evictions.
func UpdateResultCache(entries, evicted int) {
	ResultCacheEntries.Set(float64(entries))
	if evicted > 0 {
		ResultCacheEvictions.Add(float64(evicted))
	}
}

// RecordStoreReload records a successful bulk replace of a store.
func RecordStoreReload(store string, records int) {
	StoreReloads.WithLabelValues(store).Inc()
	StoreRecords.WithLabelValues(store).Set(float64(records))
}

// RecordStoreRejected records a bulk load that was rejected before mutation.
func RecordStoreRejected(store, reason string) {
	StoreRejectedLoads.WithLabelValues(store, reason).Inc()
}
