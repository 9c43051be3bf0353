// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/courserec/internal/cache"
	"github.com/tomtom215/courserec/internal/metrics"
)

// RatingSource supplies the current rating collection.
// Snapshot must return a slice that is never mutated afterwards, together
// with the generation it belongs to.
type RatingSource interface {
	Snapshot() ([]Rating, uint64)
}

// Engine serves per-user recommendations over a RatingSource with a
// per-user TTL result cache. It is safe for concurrent use.
//
// Reloading the rating source does not invalidate cached results; a user
// keeps receiving the cached list until its TTL elapses.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	ratings RatingSource
	now     func() time.Time

	results *cache.TTL[int64, *Result]
	flight  singleflight.Group

	requestCount    atomic.Int64
	cacheHits       atomic.Int64
	cacheMisses     atomic.Int64
	coalesced       atomic.Int64
	similarityCount atomic.Int64
	popularityCount atomic.Int64
	errorCount      atomic.Int64
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock overrides the engine's time source. Intended for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(ratings RatingSource, cfg *Config, logger zerolog.Logger, opts ...EngineOption) (*Engine, error) {
	if ratings == nil {
		return nil, errors.New("rating source is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		ratings: ratings,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.results = cache.New[int64, *Result](e.config.Cache.TTL, cache.WithClock(e.now))

	return e, nil
}

// Recommend returns the ranked items for userID.
//
// A live cached result is returned verbatim with Cached set. Otherwise the
// engine computes over the current rating snapshot and caches the result.
func (e *Engine) Recommend(ctx context.Context, userID int64) (*Result, error) {
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("recommend user %d: %w", userID, err)
	}

	if entry, ok := e.results.GetEntry(userID); ok {
		e.cacheHits.Add(1)
		metrics.RecordRecommendRequest(metrics.CacheHit)
		out := entry.Value.clone(true)
		out.ExpiresAt = entry.ExpiresAt
		return out, nil
	}
	e.cacheMisses.Add(1)

	if !e.config.Cache.CoalesceMisses {
		metrics.RecordRecommendRequest(metrics.CacheMiss)
		return e.computeAndStore(userID).clone(false), nil
	}

	v, _, shared := e.flight.Do(strconv.FormatInt(userID, 10), func() (interface{}, error) {
		return e.computeAndStore(userID), nil
	})
	if shared {
		e.coalesced.Add(1)
		metrics.RecordRecommendRequest(metrics.CacheCoalesced)
	} else {
		metrics.RecordRecommendRequest(metrics.CacheMiss)
	}

	res, ok := v.(*Result)
	if !ok {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("recommend user %d: unexpected result type %T", userID, v)
	}
	return res.clone(false), nil
}

// computeAndStore runs a full computation over the current snapshot and
// caches the result. The returned result carries the cache entry's deadline;
// the stored copy is never written after it is published.
func (e *Engine) computeAndStore(userID int64) *Result {
	start := time.Now()
	ratings, generation := e.ratings.Snapshot()

	res := Compute(userID, ratings)
	res.RatingsGeneration = generation
	res.ComputedAt = e.now()

	stored := res
	res.ExpiresAt = e.results.Set(userID, &stored)

	switch res.Source {
	case SourceSimilarity:
		e.similarityCount.Add(1)
	case SourcePopularity:
		e.popularityCount.Add(1)
	}

	elapsed := time.Since(start)
	metrics.RecordRecommendCompute(res.Source.String(), res.Neighbors, elapsed)

	e.logger.Debug().
		Int64("user_id", userID).
		Str("source", res.Source.String()).
		Int("neighbors", res.Neighbors).
		Int("returned", len(res.Items)).
		Int("ratings", len(ratings)).
		Uint64("generation", generation).
		Dur("elapsed", elapsed).
		Msg("recommendation computed")

	return &res
}

// Explain returns the neighbors that would weight a fresh computation for
// userID, most similar first, capped at MaxNeighbors. It always reads the
// current snapshot and never touches the result cache.
func (e *Engine) Explain(ctx context.Context, userID int64) ([]SimilarityEdge, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("explain user %d: %w", userID, err)
	}

	ratings, _ := e.ratings.Snapshot()
	vectors := BuildUserVectors(ratings)
	target, _ := vectors.Vector(userID)

	neighbors := Neighbors(target, userID, vectors)
	if len(neighbors) > MaxNeighbors {
		neighbors = neighbors[:MaxNeighbors]
	}
	return neighbors, nil
}

// SweepCache removes expired results and returns how many were removed.
func (e *Engine) SweepCache() int {
	removed := e.results.Sweep()
	metrics.UpdateResultCache(e.results.Len(), removed)
	if removed > 0 {
		e.logger.Debug().Int("removed", removed).Msg("swept expired results")
	}
	return removed
}

// CacheTTL returns the result cache TTL.
func (e *Engine) CacheTTL() time.Duration {
	return e.results.TTL()
}

// Stats returns the current engine counters.
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		Requests:          e.requestCount.Load(),
		CacheHits:         e.cacheHits.Load(),
		CacheMisses:       e.cacheMisses.Load(),
		Coalesced:         e.coalesced.Load(),
		SimilarityResults: e.similarityCount.Load(),
		PopularityResults: e.popularityCount.Load(),
		Errors:            e.errorCount.Load(),
		CachedEntries:     e.results.Len(),
	}
}

// CacheStats returns the result cache counters.
func (e *Engine) CacheStats() cache.Stats {
	return e.results.Stats()
}
