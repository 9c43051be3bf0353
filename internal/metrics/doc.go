// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry via promauto and are
exposed at /metrics in Prometheus text format:

	curl http://localhost:4000/metrics

# Available Metrics

API:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommend_requests_total{cache}: hit, miss or coalesced
  - recommend_computations_total{source}: similarity or popularity
  - recommend_compute_duration_seconds
  - recommend_neighbors
  - recommend_cache_entries
  - recommend_cache_evictions_total

Stores:
  - store_records{store}
  - store_reloads_total{store}
  - store_rejected_loads_total{store, reason}

# Usage

Callers use the Record helpers rather than the collectors directly:

	metrics.RecordStoreReload(metrics.StoreRatings, len(records))
	metrics.RecordRecommendCompute("similarity", neighbors, time.Since(start))

The endpoint label is the chi route pattern, never the raw path, so user ids
do not create unbounded label cardinality.
*/
package metrics
