// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package recommend

import (
	"math"
	"math/rand"
	"reflect"
	"testing"
)

const (
	itemA int64 = 101
	itemB int64 = 102
	itemC int64 = 103
)

func TestComputeSimilarityScenario(t *testing.T) {
	t.Parallel()

	ratings := []Rating{
		{UserID: 1, ItemID: itemA, Value: 5},
		{UserID: 1, ItemID: itemB, Value: 3},
		{UserID: 2, ItemID: itemA, Value: 4},
		{UserID: 2, ItemID: itemC, Value: 5},
		{UserID: 3, ItemID: itemA, Value: 5},
		{UserID: 3, ItemID: itemC, Value: 4},
	}

	got := Compute(1, ratings)

	if got.Source != SourceSimilarity {
		t.Fatalf("Source = %q, want %q", got.Source, SourceSimilarity)
	}
	if got.Neighbors != 2 {
		t.Errorf("Neighbors = %d, want 2", got.Neighbors)
	}
	if len(got.Items) != 1 {
		t.Fatalf("Items = %v, want exactly item C", got.Items)
	}

	// sim(U1,U2) = 20 / (sqrt(34) * sqrt(41)), sim(U1,U3) = 25 / (sqrt(34) * sqrt(41))
	sim12 := 20 / (math.Sqrt(34) * math.Sqrt(41))
	sim13 := 25 / (math.Sqrt(34) * math.Sqrt(41))
	want := sim12*5 + sim13*4

	if got.Items[0].ItemID != itemC {
		t.Errorf("ItemID = %d, want %d", got.Items[0].ItemID, itemC)
	}
	if math.Abs(got.Items[0].Score-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", got.Items[0].Score, want)
	}
}

func TestComputePopularityScenario(t *testing.T) {
	t.Parallel()

	ratings := []Rating{
		{UserID: 1, ItemID: itemA, Value: 5},
		{UserID: 2, ItemID: itemB, Value: 5},
		{UserID: 3, ItemID: itemC, Value: 5},
	}

	got := Compute(1, ratings)

	if got.Source != SourcePopularity {
		t.Fatalf("Source = %q, want %q", got.Source, SourcePopularity)
	}
	if got.Neighbors != 0 {
		t.Errorf("Neighbors = %d, want 0", got.Neighbors)
	}

	want := []ScoredItem{{ItemID: itemB, Score: 1}, {ItemID: itemC, Score: 1}}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("Items = %v, want %v", got.Items, want)
	}
}

func TestComputeFallbackWhenNeighborsAddNothing(t *testing.T) {
	t.Parallel()

	// User 2 is similar but has only items user 1 already rated.
	ratings := []Rating{
		{UserID: 1, ItemID: 1, Value: 5},
		{UserID: 1, ItemID: 2, Value: 4},
		{UserID: 2, ItemID: 1, Value: 5},
		{UserID: 3, ItemID: 7, Value: 1},
		{UserID: 4, ItemID: 7, Value: 1},
		{UserID: 4, ItemID: 8, Value: 1},
	}

	got := Compute(1, ratings)

	if got.Source != SourcePopularity {
		t.Fatalf("Source = %q, want popularity", got.Source)
	}
	if got.Neighbors != 1 {
		t.Errorf("Neighbors = %d, want 1", got.Neighbors)
	}
	want := []ScoredItem{{ItemID: 7, Score: 2}, {ItemID: 8, Score: 1}}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("Items = %v, want %v", got.Items, want)
	}
}

func TestComputePopularityCountsRawRecords(t *testing.T) {
	t.Parallel()

	ratings := []Rating{
		{UserID: 1, ItemID: 1, Value: 5},
		{UserID: 2, ItemID: 5, Value: 1},
		{UserID: 2, ItemID: 5, Value: 2}, // duplicate record still counts
		{UserID: 3, ItemID: 6, Value: 1},
	}

	got := Compute(1, ratings)

	want := []ScoredItem{{ItemID: 5, Score: 2}, {ItemID: 6, Score: 1}}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("Items = %v, want %v", got.Items, want)
	}
}

func TestComputeHugeRatingsKeepSimilarityBranch(t *testing.T) {
	t.Parallel()

	ratings := []Rating{
		{UserID: 1, ItemID: 1, Value: 1e200},
		{UserID: 2, ItemID: 1, Value: 1e200},
		{UserID: 2, ItemID: 2, Value: 1e200},
	}

	got := Compute(1, ratings)

	if got.Source != SourceSimilarity {
		t.Fatalf("Source = %q, want similarity", got.Source)
	}
	if got.Neighbors != 1 {
		t.Errorf("Neighbors = %d, want 1", got.Neighbors)
	}
	if len(got.Items) != 1 || got.Items[0].ItemID != 2 {
		t.Fatalf("Items = %v, want only item 2", got.Items)
	}
	score := got.Items[0].Score
	if math.IsNaN(score) || math.IsInf(score, 0) {
		t.Fatalf("Score = %v, want finite", score)
	}
	if want := 1e200 / math.Sqrt2; math.Abs(score-want)/want > 1e-12 {
		t.Errorf("Score = %v, want %v", score, want)
	}
}

func TestComputeUnknownUser(t *testing.T) {
	t.Parallel()

	ratings := []Rating{
		{UserID: 2, ItemID: 1, Value: 5},
		{UserID: 3, ItemID: 1, Value: 5},
		{UserID: 3, ItemID: 2, Value: 5},
	}

	got := Compute(99, ratings)

	if got.Source != SourcePopularity {
		t.Fatalf("Source = %q, want popularity", got.Source)
	}
	want := []ScoredItem{{ItemID: 1, Score: 2}, {ItemID: 2, Score: 1}}
	if !reflect.DeepEqual(got.Items, want) {
		t.Errorf("Items = %v, want %v", got.Items, want)
	}
}

func TestComputeEmptyStore(t *testing.T) {
	t.Parallel()

	got := Compute(1, nil)

	if got.Source != SourcePopularity {
		t.Errorf("Source = %q, want popularity", got.Source)
	}
	if got.Items == nil || len(got.Items) != 0 {
		t.Errorf("Items = %#v, want empty non-nil slice", got.Items)
	}
}

func TestComputeUsesLastDuplicateForExclusion(t *testing.T) {
	t.Parallel()

	ratings := []Rating{
		{UserID: 1, ItemID: 1, Value: 1},
		{UserID: 1, ItemID: 1, Value: 5},
		{UserID: 2, ItemID: 1, Value: 5},
		{UserID: 2, ItemID: 2, Value: 4},
	}

	got := Compute(1, ratings)

	if got.Source != SourceSimilarity {
		t.Fatalf("Source = %q, want similarity", got.Source)
	}
	if len(got.Items) != 1 || got.Items[0].ItemID != 2 {
		t.Errorf("Items = %v, want only item 2", got.Items)
	}
}

func TestComputeNeighborCap(t *testing.T) {
	t.Parallel()

	// 60 neighbors share item 1 with the target; each also rates a unique item.
	ratings := []Rating{{UserID: 0, ItemID: 1, Value: 5}}
	for u := int64(1); u <= 60; u++ {
		ratings = append(ratings,
			Rating{UserID: u, ItemID: 1, Value: 5},
			Rating{UserID: u, ItemID: 1000 + u, Value: 1},
		)
	}

	got := Compute(0, ratings)

	if got.Neighbors != MaxNeighbors {
		t.Errorf("Neighbors = %d, want %d", got.Neighbors, MaxNeighbors)
	}
	if len(got.Items) != MaxResults {
		t.Errorf("len(Items) = %d, want %d", len(got.Items), MaxResults)
	}
	// All neighbors tie, so the first ten in appearance order win.
	for i, item := range got.Items {
		if want := int64(1001 + i); item.ItemID != want {
			t.Errorf("Items[%d] = %d, want %d", i, item.ItemID, want)
		}
	}
}

func TestComputeRanksByWeightedScore(t *testing.T) {
	t.Parallel()

	ratings := []Rating{
		{UserID: 1, ItemID: 1, Value: 5},
		{UserID: 2, ItemID: 1, Value: 5},
		{UserID: 2, ItemID: 10, Value: 1},
		{UserID: 2, ItemID: 11, Value: 5},
		{UserID: 3, ItemID: 1, Value: 5},
		{UserID: 3, ItemID: 11, Value: 5},
		{UserID: 3, ItemID: 12, Value: 3},
	}

	got := Compute(1, ratings)

	ids := make([]int64, len(got.Items))
	for i, item := range got.Items {
		ids[i] = item.ItemID
	}
	if !reflect.DeepEqual(ids, []int64{11, 12, 10}) {
		t.Errorf("ranked ids = %v, want [11 12 10]", ids)
	}
	for i := 1; i < len(got.Items); i++ {
		if got.Items[i].Score > got.Items[i-1].Score {
			t.Errorf("Items not sorted descending at %d: %v", i, got.Items)
		}
	}
}

func TestComputeInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		var ratings []Rating
		n := rng.Intn(300)
		for i := 0; i < n; i++ {
			ratings = append(ratings, Rating{
				UserID: int64(rng.Intn(30)),
				ItemID: int64(rng.Intn(40)),
				Value:  float64(1 + rng.Intn(5)),
			})
		}
		target := int64(rng.Intn(35))

		got := Compute(target, ratings)

		if len(got.Items) > MaxResults {
			t.Fatalf("round %d: %d items exceeds cap", round, len(got.Items))
		}

		rated := BuildUserVectors(ratings)
		vec, _ := rated.Vector(target)
		seen := make(map[int64]bool)
		for _, item := range got.Items {
			if vec.Has(item.ItemID) {
				t.Fatalf("round %d: recommended already-rated item %d", round, item.ItemID)
			}
			if seen[item.ItemID] {
				t.Fatalf("round %d: duplicate item %d", round, item.ItemID)
			}
			seen[item.ItemID] = true
		}

		// Same input, same output.
		again := Compute(target, ratings)
		if !reflect.DeepEqual(got, again) {
			t.Fatalf("round %d: Compute not deterministic", round)
		}
	}
}
