// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/courserec/internal/models"
	"github.com/tomtom215/courserec/internal/store"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of readiness.
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse}
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, models.HealthResponse{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, time.Now(), false)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once startup seeding finished, 503 before that.
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthResponse}
// @Failure 503 {object} models.APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"ratings": storeCheck(h.ratings.Info()),
		"catalog": storeCheck(h.catalog.Info()),
	}

	if !h.ready.Load() {
		respondErrorWithDetails(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Service is starting", map[string]interface{}{"checks": checks}, nil)
		return
	}

	respondSuccess(w, models.HealthResponse{
		Status:        "ready",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Checks:        checks,
	}, time.Now(), false)
}

// storeCheck summarizes a store for the readiness probe. Empty stores are
// still ready: recommendations for an empty store are simply empty.
func storeCheck(info store.Info) string {
	if info.Generation == 0 {
		return "empty"
	}
	return "loaded"
}

// Status handles GET /api/v1/status
// Reports store sizes, generations and engine counters.
//
// @Summary Service status
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.StatusResponse}
// @Router /api/v1/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	engineStats := h.engine.Stats()
	cacheStats := h.engine.CacheStats()

	resp := models.StatusResponse{
		Ratings: storeStatus(h.ratings.Info()),
		Catalog: storeStatus(h.catalog.Info()),
		Engine: models.EngineStatus{
			CacheTTLSeconds:   h.engine.CacheTTL().Seconds(),
			CachedEntries:     engineStats.CachedEntries,
			Requests:          engineStats.Requests,
			CacheHits:         engineStats.CacheHits,
			CacheMisses:       engineStats.CacheMisses,
			Coalesced:         engineStats.Coalesced,
			SimilarityResults: engineStats.SimilarityResults,
			PopularityResults: engineStats.PopularityResults,
			Errors:            engineStats.Errors,
			CacheEvictions:    cacheStats.Evictions,
			CacheHitRate:      cacheStats.HitRate(),
		},
	}

	respondSuccess(w, resp, start, false)
}

func storeStatus(info store.Info) models.StoreStatus {
	status := models.StoreStatus{
		Records:    info.Records,
		Generation: info.Generation,
	}
	if !info.LoadedAt.IsZero() {
		loadedAt := info.LoadedAt
		status.LoadedAt = &loadedAt
	}
	return status
}
