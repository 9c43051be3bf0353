// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

// Package store holds the process-lifetime rating and catalog collections.
//
// Both stores are replaced wholesale. Replace copies the input and swaps it
// in under a write lock, bumping a generation counter; Snapshot returns the
// current slice, which is never written again. Readers therefore see either
// the old collection or the new one, never a mix, and a computation can keep
// using its snapshot after a reload.
//
// Nothing is persisted. Restarting the process empties both stores unless
// seed files are configured.
package store
