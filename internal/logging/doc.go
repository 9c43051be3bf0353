// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

// Package logging provides centralized zerolog-based structured logging.
//
// JSON output is the default; console output is available for local
// development. The global logger is configured once at startup from the
// logging section of the application config:
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("records", n).Msg("Ratings loaded")
//
// # Component Loggers
//
//	storeLogger := logging.WithComponent("store")
//	storeLogger.Info().Msg("Catalog replaced")
//
// # Context-Aware Logging
//
// The request ID middleware stores a request ID in the request context;
// Ctx attaches it to every line logged for that request:
//
//	logging.Ctx(r.Context()).Warn().Msg("Invalid user id")
//
// # slog Adapter
//
// Suture reports supervisor events through *slog.Logger. NewSlogLogger
// bridges those events into zerolog:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger("supervisor")}
//
// All exported functions are safe for concurrent use.
package logging
