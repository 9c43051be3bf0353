// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator that reports JSON field names
// and knows one custom tag, finite, which rejects NaN and infinite floats.
//
// # Bulk payloads
//
// Rating and catalog loads are validated element by element with
// ValidateSlice, so every error carries the index of the offending record:
//
//	if verr := validation.ValidateSlice(records); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Identifier fields are pointers tagged required, so an explicit 0 is valid
// while a missing field is not.
package validation
