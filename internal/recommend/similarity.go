// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package recommend

import (
	"math"
	"slices"
)

// Cosine returns the cosine similarity of a and b over the union of their
// items, with missing items treated as 0.
//
// If either vector has zero norm the similarity is 0. The result is not
// clamped. Each vector is scaled by its largest magnitude first so the
// squared norms stay finite for any finite ratings. Both vectors are walked
// in ascending item order, so Cosine(a, b) == Cosine(b, a) exactly.
func Cosine(a, b UserVector) float64 {
	scaleA, scaleB := maxAbs(a.values), maxAbs(b.values)
	if scaleA == 0 || scaleB == 0 {
		return 0
	}

	var dot, normA, normB float64

	i, j := 0, 0
	for i < len(a.items) && j < len(b.items) {
		switch {
		case a.items[i] == b.items[j]:
			x, y := a.values[i]/scaleA, b.values[j]/scaleB
			dot += x * y
			normA += x * x
			normB += y * y
			i++
			j++
		case a.items[i] < b.items[j]:
			x := a.values[i] / scaleA
			normA += x * x
			i++
		default:
			y := b.values[j] / scaleB
			normB += y * y
			j++
		}
	}
	for ; i < len(a.items); i++ {
		x := a.values[i] / scaleA
		normA += x * x
	}
	for ; j < len(b.items); j++ {
		y := b.values[j] / scaleB
		normB += y * y
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// maxAbs returns the largest absolute value in values, or 0 when empty.
func maxAbs(values []float64) float64 {
	var m float64
	for _, v := range values {
		if abs := math.Abs(v); abs > m {
			m = abs
		}
	}
	return m
}

// Neighbors scores every user in set other than targetID against target and
// returns those with strictly positive similarity, most similar first.
// Equal scores keep the users' first-appearance order.
func Neighbors(target UserVector, targetID int64, set *VectorSet) []SimilarityEdge {
	neighbors := make([]SimilarityEdge, 0, set.Len())

	for _, otherID := range set.order {
		if otherID == targetID {
			continue
		}

		sim := Cosine(target, set.vectors[otherID])
		if sim > 0 {
			neighbors = append(neighbors, SimilarityEdge{UserID: otherID, Score: sim})
		}
	}

	slices.SortStableFunc(neighbors, func(a, b SimilarityEdge) int {
		return compareDesc(a.Score, b.Score)
	})

	return neighbors
}

// compareDesc orders larger scores first.
func compareDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	default:
		return 0
	}
}
