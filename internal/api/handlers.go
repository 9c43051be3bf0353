// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package api

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/tomtom215/courserec/internal/recommend"
	"github.com/tomtom215/courserec/internal/store"
)

// Handler serves the recommendation API.
//
// Dependencies:
//   - ratings: the rating store replaced by POST /api/v1/ratings
//   - catalog: the catalog store replaced by POST /api/v1/catalog
//   - engine: the cached recommendation engine reading from ratings
type Handler struct {
	ratings   *store.Ratings
	catalog   *store.Catalog
	engine    *recommend.Engine
	startTime time.Time
	ready     atomic.Bool
}

// NewHandler creates a new API handler. The handler reports not ready until
// SetReady(true) is called.
func NewHandler(ratings *store.Ratings, catalog *store.Catalog, engine *recommend.Engine) (*Handler, error) {
	if ratings == nil || catalog == nil || engine == nil {
		return nil, errors.New("api: ratings, catalog and engine are required")
	}
	return &Handler{
		ratings:   ratings,
		catalog:   catalog,
		engine:    engine,
		startTime: time.Now(),
	}, nil
}

// SetReady flips the readiness probe.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}
