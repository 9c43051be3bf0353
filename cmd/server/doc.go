// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

/*
Package main is the entry point for the Courserec server.

Courserec serves user-based collaborative filtering recommendations for an
online course catalog. Ratings and the catalog live in memory and are
replaced wholesale through the API or seeded from JSON files at startup.

# Application Architecture

	RootSupervisor ("courserec")
	├── DataSupervisor ("data-layer")
	│   └── Cache sweeper (RECOMMEND_SWEEP_INTERVAL, 0 disables)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: koanf v2 layering defaults, config.yaml and environment
 2. Logging: zerolog with level and format from configuration
 3. Stores and engine; optional seeding from SEED_RATINGS_FILE and SEED_CATALOG_FILE
 4. Chi router and HTTP server
 5. Supervisor tree, served until SIGINT or SIGTERM

# Example Usage

	export PORT=4000
	export SEED_RATINGS_FILE=/data/ratings.json
	export SEED_CATALOG_FILE=/data/courses.json
	./courserec

	curl -s localhost:4000/api/v1/recommendations/42
*/
package main
