// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/courserec/internal/logging"
	"github.com/tomtom215/courserec/internal/models"
)

// Recommendations handles GET /api/v1/recommendations/{userID}
// Returns up to 10 ranked item ids with scores.
//
// @Summary Get recommendations for a user
// @Tags Recommendations
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} models.APIResponse{data=models.RecommendationsResponse}
// @Failure 400 {object} models.APIResponse "INVALID_USER_ID"
// @Router /api/v1/recommendations/{userID} [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, false)
}

// DecoratedRecommendations handles GET /api/v1/recommendations/{userID}/decorated
// Same ranking as Recommendations with catalog metadata joined per item.
// Items missing from the catalog are returned without metadata.
//
// @Summary Get recommendations with course metadata
// @Tags Recommendations
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} models.APIResponse{data=models.RecommendationsResponse}
// @Failure 400 {object} models.APIResponse "INVALID_USER_ID"
// @Router /api/v1/recommendations/{userID}/decorated [get]
func (h *Handler) DecoratedRecommendations(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, true)
}

func (h *Handler) serveRecommendations(w http.ResponseWriter, r *http.Request, decorate bool) {
	start := time.Now()

	userID, raw, err := parseUserID(r)
	if err != nil {
		respondInvalidUserID(w, r, raw)
		return
	}

	result, err := h.engine.Recommend(r.Context(), userID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := models.RecommendationsResponse{
		UserID:     result.UserID,
		Source:     result.Source.String(),
		Items:      make([]models.RecommendedItem, len(result.Items)),
		Neighbors:  result.Neighbors,
		Cached:     result.Cached,
		ComputedAt: result.ComputedAt,
		ExpiresAt:  result.ExpiresAt,
	}
	for i, item := range result.Items {
		resp.Items[i] = models.RecommendedItem{ItemID: item.ItemID, Score: item.Score}
	}
	if decorate {
		h.decorate(resp.Items)
	}

	logging.Ctx(r.Context()).Debug().
		Int64("user_id", userID).
		Str("source", resp.Source).
		Int("items", len(resp.Items)).
		Bool("cached", resp.Cached).
		Msg("Recommendations served")

	respondSuccess(w, resp, start, result.Cached)
}

// decorate joins catalog metadata onto items in place.
func (h *Handler) decorate(items []models.RecommendedItem) {
	ids := make([]int64, len(items))
	for i := range items {
		ids[i] = items[i].ItemID
	}

	found := h.catalog.Lookup(ids)
	for i := range items {
		course, ok := found[items[i].ItemID]
		if !ok {
			continue
		}
		items[i].Course = &models.CourseInfo{
			ID:       course.ID,
			Title:    course.Title,
			Category: course.Category,
			Tags:     course.Tags,
		}
	}
}

// Neighbors handles GET /api/v1/recommendations/{userID}/neighbors
// Lists the users whose ratings would drive the similarity branch, most
// similar first. This is a diagnostic view and bypasses the result cache.
//
// @Summary List most similar users
// @Tags Recommendations
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} models.APIResponse{data=models.NeighborsResponse}
// @Failure 400 {object} models.APIResponse "INVALID_USER_ID"
// @Router /api/v1/recommendations/{userID}/neighbors [get]
func (h *Handler) Neighbors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, raw, err := parseUserID(r)
	if err != nil {
		respondInvalidUserID(w, r, raw)
		return
	}

	edges, err := h.engine.Explain(r.Context(), userID)
	if err != nil {
		respondEngineError(w, err)
		return
	}

	resp := models.NeighborsResponse{
		UserID:    userID,
		Neighbors: make([]models.Neighbor, len(edges)),
	}
	for i, e := range edges {
		resp.Neighbors[i] = models.Neighbor{UserID: e.UserID, Similarity: e.Score}
	}

	respondSuccess(w, resp, start, false)
}

func respondInvalidUserID(w http.ResponseWriter, r *http.Request, raw string) {
	logging.Ctx(r.Context()).Debug().Str("user_id", sanitizeLogValue(raw)).Msg("Rejected non-integer user id")
	respondErrorWithDetails(w, http.StatusBadRequest, ErrCodeInvalidUserID,
		"User ID must be an integer",
		map[string]interface{}{"user_id": raw}, nil)
}

// respondEngineError maps engine failures. A canceled or timed-out request
// context is reported as unavailable rather than as an internal fault.
func respondEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Request was canceled", nil)
		return
	}
	respondError(w, http.StatusInternalServerError, ErrCodeInternal, "Failed to compute recommendations", err)
}
