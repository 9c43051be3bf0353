// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package config

import (
	"errors"
	"fmt"
	"time"
)

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks that the configuration is usable. All problems are
// reported together.
func (c *Config) Validate() error {
	return errors.Join(
		c.validateServer(),
		c.validateRecommend(),
		c.validateSecurity(),
		c.validateLogging(),
	)
}

// validateServer validates the HTTP server configuration
func (c *Config) validateServer() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_READ_TIMEOUT must be positive"))
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_WRITE_TIMEOUT must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("HTTP_SHUTDOWN_TIMEOUT must be positive"))
	}
	if c.Server.MaxBodyBytes < 1024 {
		errs = append(errs, fmt.Errorf("HTTP_MAX_BODY_BYTES must be at least 1024, got %d", c.Server.MaxBodyBytes))
	}
	return errors.Join(errs...)
}

// validateRecommend validates recommendation engine settings
func (c *Config) validateRecommend() error {
	var errs []error
	if c.Recommend.CacheTTL <= 0 {
		errs = append(errs, errors.New("RECOMMEND_CACHE_TTL must be positive"))
	}
	if c.Recommend.CacheSweepInterval < 0 {
		errs = append(errs, errors.New("RECOMMEND_SWEEP_INTERVAL must not be negative"))
	}
	if c.Recommend.CacheSweepInterval > 0 && c.Recommend.CacheSweepInterval < time.Second {
		errs = append(errs, errors.New("RECOMMEND_SWEEP_INTERVAL must be at least 1s when enabled"))
	}
	return errors.Join(errs...)
}

// validateSecurity validates CORS and rate limiting bounds
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return errors.New("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	var errs []error
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000, got %d", c.Security.RateLimitReqs))
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h, got %v", c.Security.RateLimitWindow))
	}
	return errors.Join(errs...)
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	var errs []error
	if !validLogLevels[c.Logging.Level] {
		errs = append(errs, errors.New("LOG_LEVEL must be one of: trace, debug, info, warn, error"))
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		errs = append(errs, errors.New("LOG_FORMAT must be one of: json, console"))
	}
	return errors.Join(errs...)
}
