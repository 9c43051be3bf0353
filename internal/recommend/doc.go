// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

// Package recommend implements user-based collaborative filtering over an
// in-memory rating list.
//
// # Algorithm
//
// For a target user u, every request that misses the cache runs end to end
// over the full current rating list:
//
//  1. BuildUserVectors turns ratings into one sparse vector per user. Later
//     ratings for the same (user, item) pair overwrite earlier ones.
//  2. Neighbors computes Cosine(u, v) for every other user v and keeps only
//     strictly positive similarities, most similar first.
//  3. The top MaxNeighbors neighbors contribute sim(u, v) * r(v, i) to the
//     score of every item i that u has not rated.
//  4. If no item received a score, the popularity branch ranks the items u
//     has not rated by their number of rating records.
//  5. Either branch returns at most MaxResults items.
//
// The Result's Source records which branch fired. Scores from the two
// branches are on different scales and are never mixed in one Result.
//
// # Caching
//
// Engine keeps one cached Result per user for a fixed TTL (5 minutes by
// default). Reloading ratings does not invalidate cached results, so a user
// may see a result computed from the previous rating set until it expires.
// Concurrent misses for the same user can be coalesced into one computation.
//
// # Scaling
//
// Each miss is O(users x items) over the whole rating list; there is no
// incremental similarity index.
//
// # Usage
//
//	engine, err := recommend.NewEngine(ratingStore, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	res, err := engine.Recommend(ctx, userID)
//
// # Thread Safety
//
// Compute and the vector helpers are pure. Engine is safe for concurrent use
// as long as the RatingSource returns immutable snapshots.
package recommend
