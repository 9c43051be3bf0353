// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Seed      SeedConfig      `koanf:"seed"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// MaxBodyBytes caps the size of bulk load request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// CacheTTL is how long a computed recommendation list is served
	// before it is recomputed. Default: 5m
	CacheTTL time.Duration `koanf:"cache_ttl"`

	// CacheSweepInterval controls how often expired entries are purged
	// from memory. Zero disables the sweeper; expiry is still enforced
	// on read.
	CacheSweepInterval time.Duration `koanf:"cache_sweep_interval"`

	// CoalesceMisses makes concurrent misses for the same user share a
	// single computation.
	CoalesceMisses bool `koanf:"coalesce_misses"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// SeedConfig names optional JSON files loaded into the stores at startup.
type SeedConfig struct {
	RatingsFile string `koanf:"ratings_file"`
	CatalogFile string `koanf:"catalog_file"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
