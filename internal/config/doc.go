// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

/*
Package config provides layered configuration loading for the recommendation
service.

Configuration is assembled with koanf v2 from three sources, later sources
overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, or the first of config.yaml,
    config.yml, /etc/courserec/config.yaml, /etc/courserec/config.yml
 3. Environment variables listed in envMappings

# Environment Variables

Server:
  - PORT: Listen port (default: 4000)
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - HTTP_MAX_BODY_BYTES: Bulk load body cap (default: 32MB)

Recommendation engine:
  - RECOMMEND_CACHE_TTL: Result cache lifetime (default: 5m)
  - RECOMMEND_SWEEP_INTERVAL: Expired entry purge interval, 0 disables (default: 1m)
  - RECOMMEND_COALESCE: Share concurrent misses per user (default: true)

Security:
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: Per-IP limit (default: 100 per 1m)
  - DISABLE_RATE_LIMIT: Turn off rate limiting

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include caller file:line

Seed data:
  - SEED_RATINGS_FILE: JSON array of ratings loaded at startup
  - SEED_CATALOG_FILE: JSON array of catalog items loaded at startup

Validate reports every problem found rather than stopping at the first.
*/
package config
