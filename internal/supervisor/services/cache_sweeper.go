// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CacheSweeper removes expired entries from a result cache.
// Satisfied by *recommend.Engine.
type CacheSweeper interface {
	SweepCache() int
}

// CacheSweeperService periodically sweeps expired recommendation results.
//
// Expiry is already enforced lazily on read; sweeping only bounds the memory
// held by users who never come back. An interval of zero disables the ticker
// and the service idles until shutdown.
type CacheSweeperService struct {
	sweeper  CacheSweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheSweeperService creates a sweeper service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheSweeperService(sweeper CacheSweeper, interval time.Duration, logger zerolog.Logger) *CacheSweeperService {
	return &CacheSweeperService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With().Str("service", "cache-sweeper").Logger(),
		name:     "cache-sweeper",
	}
}

// Serve implements suture.Service.
func (s *CacheSweeperService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("cache sweeping disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info().Dur("interval", s.interval).Msg("cache sweeper starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("cache sweeper shutting down")
			return ctx.Err()

		case <-ticker.C:
			if removed := s.sweeper.SweepCache(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired results swept")
			}
		}
	}
}

// String returns the service name for logging.
func (s *CacheSweeperService) String() string {
	return s.name
}
