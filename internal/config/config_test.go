// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: "PORT must be between 1 and 65535",
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Server.Port = 65536 },
			wantErr: "PORT must be between 1 and 65535",
		},
		{
			name:    "non-positive read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: "HTTP_READ_TIMEOUT",
		},
		{
			name:    "tiny body limit",
			mutate:  func(c *Config) { c.Server.MaxBodyBytes = 10 },
			wantErr: "HTTP_MAX_BODY_BYTES",
		},
		{
			name:    "zero cache ttl",
			mutate:  func(c *Config) { c.Recommend.CacheTTL = 0 },
			wantErr: "RECOMMEND_CACHE_TTL must be positive",
		},
		{
			name:    "negative sweep interval",
			mutate:  func(c *Config) { c.Recommend.CacheSweepInterval = -time.Second },
			wantErr: "RECOMMEND_SWEEP_INTERVAL must not be negative",
		},
		{
			name:    "sub-second sweep interval",
			mutate:  func(c *Config) { c.Recommend.CacheSweepInterval = time.Millisecond },
			wantErr: "at least 1s",
		},
		{
			name:   "sweeper disabled",
			mutate: func(c *Config) { c.Recommend.CacheSweepInterval = 0 },
		},
		{
			name:    "no cors origins",
			mutate:  func(c *Config) { c.Security.CORSOrigins = nil },
			wantErr: "CORS_ORIGINS",
		},
		{
			name:    "rate limit requests out of range",
			mutate:  func(c *Config) { c.Security.RateLimitReqs = 0 },
			wantErr: "RATE_LIMIT_REQUESTS",
		},
		{
			name:    "rate limit window too short",
			mutate:  func(c *Config) { c.Security.RateLimitWindow = time.Millisecond },
			wantErr: "RATE_LIMIT_WINDOW",
		},
		{
			name: "rate limit bounds ignored when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
		{
			name:   "empty log format",
			mutate: func(c *Config) { c.Logging.Format = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Server.Port = -1
	cfg.Recommend.CacheTTL = -time.Minute
	cfg.Logging.Format = "yaml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"PORT", "RECOMMEND_CACHE_TTL", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}
