// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/courserec/internal/config"
	"github.com/tomtom215/courserec/internal/ingest"
	"github.com/tomtom215/courserec/internal/recommend"
	"github.com/tomtom215/courserec/internal/store"
)

// RecommendComponents holds the stores and the engine reading from them.
type RecommendComponents struct {
	Ratings *store.Ratings
	Catalog *store.Catalog
	Engine  *recommend.Engine
}

// initRecommend builds the stores and the engine, then seeds the stores from
// the configured files. A seed failure is fatal: starting with a partial data
// set would serve misleading recommendations.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*RecommendComponents, error) {
	ratings := store.NewRatings()
	catalog := store.NewCatalog()

	engine, err := recommend.NewEngine(ratings, buildEngineConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	if err := seedStores(cfg, ratings, catalog, logger); err != nil {
		return nil, err
	}

	logger.Info().
		Dur("cache_ttl", engine.CacheTTL()).
		Bool("coalesce_misses", cfg.Recommend.CoalesceMisses).
		Int("ratings", ratings.Info().Records).
		Int("catalog", catalog.Info().Records).
		Msg("recommendation engine initialized")

	return &RecommendComponents{
		Ratings: ratings,
		Catalog: catalog,
		Engine:  engine,
	}, nil
}

// buildEngineConfig maps application config onto the engine config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	engineCfg := recommend.DefaultConfig()
	engineCfg.Cache.TTL = cfg.Recommend.CacheTTL
	engineCfg.Cache.CoalesceMisses = cfg.Recommend.CoalesceMisses
	return engineCfg
}

// seedStores loads the optional seed files. Empty paths are skipped.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func seedStores(cfg *config.Config, ratings *store.Ratings, catalog *store.Catalog, logger zerolog.Logger) error {
	if path := cfg.Seed.RatingsFile; path != "" {
		records, err := ingest.LoadRatingsFile(path)
		if err != nil {
			return fmt.Errorf("seed ratings: %w", err)
		}
		count := ratings.Replace(records)
		logger.Info().Str("path", path).Int("count", count).Msg("ratings seeded")
	}

	if path := cfg.Seed.CatalogFile; path != "" {
		items, err := ingest.LoadCatalogFile(path)
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		count := catalog.Replace(items)
		logger.Info().Str("path", path).Int("count", count).Msg("catalog seeded")
	}

	return nil
}
