// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/courserec/internal/logging"
	"github.com/tomtom215/courserec/internal/metrics"
	"github.com/tomtom215/courserec/internal/models"
)

// The legacy endpoints keep the response bodies of the first release:
// bare arrays and {ok, count} objects with {error} on failure. They share
// stores, engine and result cache with /api/v1.

// LegacySeedRatings handles POST /api/seed/ratings
//
// @Summary Replace all ratings (legacy)
// @Tags Legacy
// @Accept json
// @Produce json
// @Success 200 {object} models.LegacySeedResponse
// @Failure 400 {object} models.LegacyError
// @Failure 413 {object} models.LegacyError
// @Router /api/seed/ratings [post]
func (h *Handler) LegacySeedRatings(w http.ResponseWriter, r *http.Request) {
	count, err := h.replaceRatings(r)
	if err != nil {
		respondLegacyRejection(w, rejectLoad(r, metrics.StoreRatings, ratingsShape, err))
		return
	}
	writeJSON(w, http.StatusOK, models.LegacySeedResponse{OK: true, Count: count})
}

// LegacySeedCourses handles POST /api/seed/courses
//
// @Summary Replace the course catalog (legacy)
// @Tags Legacy
// @Accept json
// @Produce json
// @Success 200 {object} models.LegacySeedResponse
// @Failure 400 {object} models.LegacyError
// @Failure 413 {object} models.LegacyError
// @Router /api/seed/courses [post]
func (h *Handler) LegacySeedCourses(w http.ResponseWriter, r *http.Request) {
	count, err := h.replaceCatalog(r)
	if err != nil {
		respondLegacyRejection(w, rejectLoad(r, metrics.StoreCatalog, catalogShape, err))
		return
	}
	writeJSON(w, http.StatusOK, models.LegacySeedResponse{OK: true, Count: count})
}

// LegacyRecommendations handles GET /api/recommendations/{userID}
// Returns the same ranking as /api/v1 as a bare [{courseId, score}] array.
//
// @Summary Get recommendations for a user (legacy)
// @Tags Legacy
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {array} models.LegacyRecommendation
// @Failure 400 {object} models.LegacyError
// @Router /api/recommendations/{userID} [get]
func (h *Handler) LegacyRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, raw, err := parseUserID(r)
	if err != nil {
		logging.Ctx(r.Context()).Debug().Str("user_id", sanitizeLogValue(raw)).Msg("Rejected non-integer user id")
		writeJSON(w, http.StatusBadRequest, models.LegacyError{Error: "Invalid userId"})
		return
	}

	result, err := h.engine.Recommend(r.Context(), userID)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			writeJSON(w, http.StatusServiceUnavailable, models.LegacyError{Error: "Request was canceled"})
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Int64("user_id", userID).Msg("Legacy recommendations failed")
		writeJSON(w, http.StatusInternalServerError, models.LegacyError{Error: "Failed to compute recommendations"})
		return
	}

	recs := make([]models.LegacyRecommendation, len(result.Items))
	for i, item := range result.Items {
		recs[i] = models.LegacyRecommendation{CourseID: item.ItemID, Score: item.Score}
	}
	writeJSON(w, http.StatusOK, recs)
}

func respondLegacyRejection(w http.ResponseWriter, rej loadRejection) {
	if rej.cause != nil {
		logging.Error().Str("code", rej.code).Str("error", sanitizeLogValue(rej.cause.Error())).Msg("API Error")
	}
	writeJSON(w, rej.status, models.LegacyError{Error: rej.message})
}
