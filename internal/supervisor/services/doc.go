// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

// Package services provides suture.Service wrappers for long-running
// components: the HTTP server and the result cache sweeper.
package services
