// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package recommend

import (
	"slices"
)

// Compute ranks up to MaxResults items for targetID from the full rating
// list. It is pure and does not retain ratings.
//
// The similarity branch weights each of the top MaxNeighbors positive
// neighbors' ratings by their similarity and sums per item. Items the target
// already rated are never returned. If that produces no candidates, the
// popularity branch ranks items by how many rating records mention them.
//
// A target with no ratings is not an error; it simply has no neighbors.
func Compute(targetID int64, ratings []Rating) Result {
	vectors := BuildUserVectors(ratings)
	target, _ := vectors.Vector(targetID)

	neighbors := Neighbors(target, targetID, vectors)
	if len(neighbors) > MaxNeighbors {
		neighbors = neighbors[:MaxNeighbors]
	}

	if items := weightedScores(target, neighbors, vectors); len(items) > 0 {
		return Result{
			UserID:    targetID,
			Source:    SourceSimilarity,
			Items:     items,
			Neighbors: len(neighbors),
		}
	}

	return Result{
		UserID:    targetID,
		Source:    SourcePopularity,
		Items:     popularItems(target, ratings),
		Neighbors: len(neighbors),
	}
}

// weightedScores accumulates sim * rating per unrated item across neighbors
// and returns the top MaxResults. Ties keep the order in which items were
// first scored.
func weightedScores(target UserVector, neighbors []SimilarityEdge, vectors *VectorSet) []ScoredItem {
	index := make(map[int64]int)
	scored := make([]ScoredItem, 0)

	for _, n := range neighbors {
		vec, _ := vectors.Vector(n.UserID)
		vec.Each(func(item int64, value float64) {
			if target.Has(item) {
				return
			}
			i, ok := index[item]
			if !ok {
				i = len(scored)
				index[item] = i
				scored = append(scored, ScoredItem{ItemID: item})
			}
			scored[i].Score += n.Score * value
		})
	}

	return topK(scored, MaxResults)
}

// popularItems counts rating records per item across the whole list,
// skipping items the target already rated. Duplicate records for the same
// (user, item) pair each count. Ties keep first-appearance order.
func popularItems(target UserVector, ratings []Rating) []ScoredItem {
	index := make(map[int64]int)
	counts := make([]ScoredItem, 0)

	for _, r := range ratings {
		if target.Has(r.ItemID) {
			continue
		}
		i, ok := index[r.ItemID]
		if !ok {
			i = len(counts)
			index[r.ItemID] = i
			counts = append(counts, ScoredItem{ItemID: r.ItemID})
		}
		counts[i].Score++
	}

	return topK(counts, MaxResults)
}

// topK sorts items by score descending, stable, and truncates to k.
func topK(items []ScoredItem, k int) []ScoredItem {
	slices.SortStableFunc(items, func(a, b ScoredItem) int {
		return compareDesc(a.Score, b.Score)
	})
	if len(items) > k {
		items = items[:k]
	}
	return items
}
