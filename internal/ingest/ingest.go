// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

// Package ingest decodes and validates bulk rating and catalog payloads.
//
// A payload must be a JSON array. Every element is validated before any
// record is returned, so callers can replace a store only after the whole
// payload is known to be well formed.
package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/courserec/internal/recommend"
	"github.com/tomtom215/courserec/internal/validation"
)

// ErrNotArray is returned when a payload is not a JSON array.
var ErrNotArray = errors.New("expected a JSON array")

// RatingRecord is the wire form of a rating. courseId is accepted as an
// alias for itemId; itemId wins when both are present. Ratings are bounded
// to +/-1e6 so squared norms over any realistic vector stay finite.
type RatingRecord struct {
	UserID   *int64   `json:"userId" validate:"required"`
	ItemID   *int64   `json:"itemId" validate:"required_without=CourseID"`
	CourseID *int64   `json:"courseId"`
	Rating   *float64 `json:"rating" validate:"required,finite,gte=-1e6,lte=1e6"`
}

// ToRating converts a validated record.
func (r *RatingRecord) ToRating() recommend.Rating {
	item := r.CourseID
	if r.ItemID != nil {
		item = r.ItemID
	}
	return recommend.Rating{UserID: *r.UserID, ItemID: *item, Value: *r.Rating}
}

// ItemRecord is the wire form of a catalog entry.
type ItemRecord struct {
	ID       *int64   `json:"id" validate:"required"`
	Title    string   `json:"title" validate:"required,max=500"`
	Category string   `json:"category" validate:"omitempty,max=200"`
	Tags     []string `json:"tags" validate:"omitempty,max=100,dive,max=100"`
}

// ToItem converts a validated record.
func (r *ItemRecord) ToItem() recommend.Item {
	return recommend.Item{ID: *r.ID, Title: r.Title, Category: r.Category, Tags: r.Tags}
}

// DecodeError wraps a payload that could not be parsed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode payload: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeRatings reads a JSON array of rating records from r.
// It returns a *DecodeError for malformed JSON and a
// *validation.RequestValidationError for invalid elements.
func DecodeRatings(r io.Reader) ([]recommend.Rating, error) {
	records, err := decodeArray[RatingRecord](r)
	if err != nil {
		return nil, err
	}
	if verr := validation.ValidateSlice(records); verr != nil {
		return nil, verr
	}

	ratings := make([]recommend.Rating, len(records))
	for i := range records {
		ratings[i] = records[i].ToRating()
	}
	return ratings, nil
}

// DecodeCatalog reads a JSON array of item records from r.
func DecodeCatalog(r io.Reader) ([]recommend.Item, error) {
	records, err := decodeArray[ItemRecord](r)
	if err != nil {
		return nil, err
	}
	if verr := validation.ValidateSlice(records); verr != nil {
		return nil, verr
	}

	items := make([]recommend.Item, len(records))
	for i := range records {
		items[i] = records[i].ToItem()
	}
	return items, nil
}

// LoadRatingsFile decodes a rating seed file.
func LoadRatingsFile(path string) ([]recommend.Rating, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open ratings file: %w", err)
	}
	defer f.Close()

	ratings, err := DecodeRatings(f)
	if err != nil {
		return nil, fmt.Errorf("load ratings file %s: %w", path, err)
	}
	return ratings, nil
}

// LoadCatalogFile decodes a catalog seed file.
func LoadCatalogFile(path string) ([]recommend.Item, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	items, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog file %s: %w", path, err)
	}
	return items, nil
}

func decodeArray[T any](r io.Reader) ([]T, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &DecodeError{Err: ErrNotArray}
	}

	var records []T
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &DecodeError{Err: err}
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}
