// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/courserec/internal/config"
	"github.com/tomtom215/courserec/internal/middleware"
)

// Router wires the handler and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	slowRequest   time.Duration
}

// NewRouter creates a router for handler using the given middleware config.
// A nil config uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
		slowRequest:   middleware.DefaultSlowRequestThreshold,
	}
}

// ChiMiddlewareConfigFrom builds the middleware config from application config.
func ChiMiddlewareConfigFrom(cfg *config.Config) *ChiMiddlewareConfig {
	mw := DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	mw.MaxBodyBytes = cfg.Server.MaxBodyBytes
	return mw
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(chiMiddleware(middleware.RequestID)) // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.chiMiddleware.CORS())         // CORS must be global to handle OPTIONS preflight

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// ========================
	// Health Endpoints
	// ========================
	// Not rate limited: probes run frequently from the orchestrator.
	r.Route("/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Handle("/metrics", promhttp.Handler())

	// One limiter shared by the versioned and legacy paths.
	rateLimit := router.chiMiddleware.RateLimit()

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		router.apiStack(r, rateLimit)

		r.With(router.chiMiddleware.BodyLimit()).Post("/ratings", router.handler.LoadRatings)
		r.With(router.chiMiddleware.BodyLimit()).Post("/catalog", router.handler.LoadCatalog)

		r.Get("/recommendations/{userID}", router.handler.Recommendations)
		r.Get("/recommendations/{userID}/decorated", router.handler.DecoratedRecommendations)
		r.Get("/recommendations/{userID}/neighbors", router.handler.Neighbors)

		r.Get("/status", router.handler.Status)
	})

	// ========================
	// Legacy Endpoints
	// ========================
	// Paths and response bodies of the first release, kept for existing clients.
	r.Route("/api", func(r chi.Router) {
		router.apiStack(r, rateLimit)

		r.With(router.chiMiddleware.BodyLimit()).Post("/seed/ratings", router.handler.LegacySeedRatings)
		r.With(router.chiMiddleware.BodyLimit()).Post("/seed/courses", router.handler.LegacySeedCourses)
		r.Get("/recommendations/{userID}", router.handler.LegacyRecommendations)
	})

	return r
}

// apiStack installs the middleware shared by every data endpoint.
func (router *Router) apiStack(r chi.Router, rateLimit func(http.Handler) http.Handler) {
	r.Use(rateLimit)
	r.Use(APISecurityHeaders())
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.AccessLog(router.slowRequest)))
	r.Use(chimiddleware.Compress(5, "application/json"))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
