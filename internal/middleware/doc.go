// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

/*
Package middleware provides HTTP middleware components.

All middleware here has the shape func(http.HandlerFunc) http.HandlerFunc and
is adapted to chi's r.Use by the api package.

Key Components:

  - RequestID: UUID request IDs in the X-Request-ID header and logging context
  - PrometheusMetrics: request count, latency and in-flight gauge labeled by
    chi route pattern
  - AccessLog: one log line per request, escalated for slow or failing requests

Usage Example:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(chiMiddleware(middleware.PrometheusMetrics))
	    r.Use(chiMiddleware(middleware.AccessLog(time.Second)))
	})

Route patterns are read after the wrapped handler returns, so the metrics and
access log middleware must be mounted on a chi router or sub-router.
*/
package middleware
