// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

/*
Package api exposes the recommendation engine over HTTP using the Chi router.

# Endpoints

	POST /api/v1/ratings                              replace all ratings
	POST /api/v1/catalog                              replace the course catalog
	GET  /api/v1/recommendations/{userID}             ranked item ids and scores
	GET  /api/v1/recommendations/{userID}/decorated   same, joined with catalog metadata
	GET  /api/v1/recommendations/{userID}/neighbors   most similar users
	GET  /api/v1/status                               store and engine counters
	GET  /health/live, /health/ready                  probes
	GET  /metrics                                     Prometheus exposition

The paths /api/seed/ratings, /api/seed/courses and /api/recommendations/{userID}
remain for clients of the first release. They share stores and the result
cache with /api/v1 but keep the old bodies: {"ok":true,"count":N} for seeds,
a bare [{"courseId":..,"score":..}] array for recommendations and
{"error":"..."} on failure.

# Responses

Every /api/v1 response uses the models.APIResponse envelope. Errors carry a
machine-readable code (see errors.go). Bulk loads are all-or-nothing: a
malformed or invalid body returns 400 and leaves the store unchanged.

# Middleware

Global: request ID, RealIP, Recoverer, CORS. Data endpoints additionally get
per-IP rate limiting (httprate), security headers, Prometheus metrics,
access logging and gzip compression. Write endpoints cap body size.
*/
package api
