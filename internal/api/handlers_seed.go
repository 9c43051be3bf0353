// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/courserec/internal/ingest"
	"github.com/tomtom215/courserec/internal/logging"
	"github.com/tomtom215/courserec/internal/metrics"
	"github.com/tomtom215/courserec/internal/models"
	"github.com/tomtom215/courserec/internal/validation"
)

// LoadRatings replaces the entire rating set.
//
// The body must be a JSON array of {userId, itemId|courseId, rating}. A
// malformed or invalid body leaves the current ratings untouched. Cached
// recommendations are not invalidated; they age out with their TTL.
//
// @Summary Replace all ratings
// @Tags Data
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.LoadResponse}
// @Failure 400 {object} models.APIResponse "INVALID_PAYLOAD or VALIDATION_ERROR"
// @Failure 413 {object} models.APIResponse "PAYLOAD_TOO_LARGE"
// @Router /api/v1/ratings [post]
func (h *Handler) LoadRatings(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	count, err := h.replaceRatings(r)
	if err != nil {
		respondLoadError(w, rejectLoad(r, metrics.StoreRatings, ratingsShape, err))
		return
	}

	respondSuccess(w, models.LoadResponse{Count: count}, start, false)
}

// LoadCatalog replaces the entire course catalog.
//
// @Summary Replace the course catalog
// @Tags Data
// @Accept json
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.LoadResponse}
// @Failure 400 {object} models.APIResponse "INVALID_PAYLOAD or VALIDATION_ERROR"
// @Failure 413 {object} models.APIResponse "PAYLOAD_TOO_LARGE"
// @Router /api/v1/catalog [post]
func (h *Handler) LoadCatalog(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	count, err := h.replaceCatalog(r)
	if err != nil {
		respondLoadError(w, rejectLoad(r, metrics.StoreCatalog, catalogShape, err))
		return
	}

	respondSuccess(w, models.LoadResponse{Count: count}, start, false)
}

const (
	ratingsShape = "an array of {userId, itemId, rating}"
	catalogShape = "an array of {id, title}"
)

// replaceRatings decodes the request body and swaps it into the rating store.
// The store is untouched when an error is returned.
func (h *Handler) replaceRatings(r *http.Request) (int, error) {
	ratings, err := ingest.DecodeRatings(r.Body)
	if err != nil {
		return 0, err
	}

	count := h.ratings.Replace(ratings)
	logging.Ctx(r.Context()).Info().
		Int("count", count).
		Uint64("generation", h.ratings.Info().Generation).
		Msg("Ratings replaced")
	return count, nil
}

// replaceCatalog decodes the request body and swaps it into the catalog.
func (h *Handler) replaceCatalog(r *http.Request) (int, error) {
	items, err := ingest.DecodeCatalog(r.Body)
	if err != nil {
		return 0, err
	}

	count := h.catalog.Replace(items)
	logging.Ctx(r.Context()).Info().
		Int("count", count).
		Uint64("generation", h.catalog.Info().Generation).
		Msg("Catalog replaced")
	return count, nil
}

// loadRejection describes why a bulk load was refused.
type loadRejection struct {
	status  int
	code    string
	message string
	invalid *validation.RequestValidationError
	cause   error
}

// rejectLoad classifies a bulk load failure, records the rejection and logs it.
func rejectLoad(r *http.Request, storeName, shape string, err error) loadRejection {
	var (
		maxErr *http.MaxBytesError
		verr   *validation.RequestValidationError
		decErr *ingest.DecodeError
		logger = logging.Ctx(r.Context())
	)

	switch {
	case errors.As(err, &maxErr):
		metrics.RecordStoreRejected(storeName, metrics.RejectTooLarge)
		logger.Warn().Str("store", storeName).Int64("limit", maxErr.Limit).Msg("Bulk load rejected: body too large")
		return loadRejection{
			status:  http.StatusRequestEntityTooLarge,
			code:    ErrCodePayloadTooLarge,
			message: fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit),
		}

	case errors.As(err, &verr):
		metrics.RecordStoreRejected(storeName, metrics.RejectValidation)
		logger.Warn().Str("store", storeName).Int("errors", len(verr.Errors())).Msg("Bulk load rejected: validation failed")
		return loadRejection{
			status:  http.StatusBadRequest,
			code:    ErrCodeValidation,
			message: verr.Error(),
			invalid: verr,
		}

	case errors.As(err, &decErr):
		metrics.RecordStoreRejected(storeName, metrics.RejectDecode)
		logger.Warn().Str("store", storeName).Str("error", sanitizeLogValue(decErr.Error())).Msg("Bulk load rejected: malformed body")
		return loadRejection{
			status:  http.StatusBadRequest,
			code:    ErrCodeInvalidPayload,
			message: "Request body must be " + shape,
		}

	default:
		return loadRejection{
			status:  http.StatusInternalServerError,
			code:    ErrCodeInternal,
			message: "Failed to load data",
			cause:   err,
		}
	}
}

// respondLoadError writes a rejection as an error envelope.
func respondLoadError(w http.ResponseWriter, rej loadRejection) {
	if rej.invalid != nil {
		respondValidationError(w, rej.invalid)
		return
	}
	respondError(w, rej.status, rej.code, rej.message, rej.cause)
}
