// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

/*
Package models defines the HTTP request and response structures.

  - APIResponse, Metadata, APIError: the envelope every endpoint returns
  - LoadResponse: bulk load acknowledgement
  - RecommendationsResponse, RecommendedItem, CourseInfo: ranked lists,
    optionally decorated with catalog metadata
  - NeighborsResponse: diagnostic similarity listing
  - StatusResponse, HealthResponse: operational endpoints

The package has no dependencies on other internal packages.
*/
package models
