// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package recommend

import (
	"fmt"
	"time"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains result caching parameters.
type CacheConfig struct {
	// TTL is how long a computed result is served before recomputation.
	// Default: 5m.
	TTL time.Duration `json:"ttl"`

	// CoalesceMisses collapses concurrent cache misses for the same user
	// into a single computation.
	// Default: true.
	CoalesceMisses bool `json:"coalesce_misses"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			TTL:            5 * time.Minute,
			CoalesceMisses: true,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
