// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package store

import (
	"sync"
	"testing"

	"github.com/tomtom215/courserec/internal/recommend"
)

func TestRatingsReplace(t *testing.T) {
	s := NewRatings()

	got, gen := s.Snapshot()
	if len(got) != 0 || gen != 0 {
		t.Fatalf("new store Snapshot() = (%v, %d), want empty generation 0", got, gen)
	}

	input := []recommend.Rating{
		{UserID: 1, ItemID: 1, Value: 5},
		{UserID: 2, ItemID: 1, Value: 3},
	}
	if n := s.Replace(input); n != 2 {
		t.Errorf("Replace() = %d, want 2", n)
	}

	// The store owns a copy.
	input[0].Value = 0
	got, gen = s.Snapshot()
	if got[0].Value != 5 {
		t.Error("store aliased the caller's slice")
	}
	if gen != 1 {
		t.Errorf("generation = %d, want 1", gen)
	}

	// Replace, never append.
	if n := s.Replace([]recommend.Rating{{UserID: 9, ItemID: 9, Value: 1}}); n != 1 {
		t.Errorf("Replace() = %d, want 1", n)
	}
	got, gen = s.Snapshot()
	if len(got) != 1 || got[0].UserID != 9 || gen != 2 {
		t.Errorf("Snapshot() = (%v, %d) after second replace", got, gen)
	}

	info := s.Info()
	if info.Records != 1 || info.Generation != 2 || info.LoadedAt.IsZero() {
		t.Errorf("Info() = %+v", info)
	}
}

func TestRatingsReplaceNil(t *testing.T) {
	s := NewRatings()
	s.Replace([]recommend.Rating{{UserID: 1, ItemID: 1, Value: 1}})

	if n := s.Replace(nil); n != 0 {
		t.Errorf("Replace(nil) = %d, want 0", n)
	}
	got, _ := s.Snapshot()
	if got == nil || len(got) != 0 {
		t.Errorf("Snapshot() = %#v, want empty non-nil", got)
	}
}

func TestRatingsSnapshotIsStable(t *testing.T) {
	s := NewRatings()
	s.Replace([]recommend.Rating{{UserID: 1, ItemID: 1, Value: 1}})

	old, _ := s.Snapshot()
	s.Replace([]recommend.Rating{{UserID: 2, ItemID: 2, Value: 2}, {UserID: 3, ItemID: 3, Value: 3}})

	if len(old) != 1 || old[0].UserID != 1 {
		t.Errorf("earlier snapshot changed after replace: %v", old)
	}
}

// Readers must observe either the old or the new collection in full.
func TestRatingsAtomicReplace(t *testing.T) {
	s := NewRatings()

	makeSet := func(user int64, n int) []recommend.Rating {
		out := make([]recommend.Rating, n)
		for i := range out {
			out[i] = recommend.Rating{UserID: user, ItemID: int64(i), Value: 1}
		}
		return out
	}
	setA := makeSet(1, 100)
	setB := makeSet(2, 300)
	s.Replace(setA)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if i%2 == 0 {
				s.Replace(setB)
			} else {
				s.Replace(setA)
			}
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snap, _ := s.Snapshot()
				if len(snap) != 100 && len(snap) != 300 {
					t.Errorf("observed partial collection of %d records", len(snap))
					return
				}
				user := snap[0].UserID
				for _, r := range snap {
					if r.UserID != user {
						t.Errorf("observed mixed collection")
						return
					}
				}
			}
		}()
	}

	wg.Wait()
}

func TestCatalog(t *testing.T) {
	c := NewCatalog()

	n := c.Replace([]recommend.Item{
		{ID: 1, Title: "Go"},
		{ID: 2, Title: "Rust", Category: "systems"},
		{ID: 1, Title: "Go, second edition"},
	})
	if n != 3 {
		t.Errorf("Replace() = %d, want 3", n)
	}

	found := c.Lookup([]int64{1, 2, 3})
	if len(found) != 2 {
		t.Fatalf("Lookup() = %v, want 2 entries", found)
	}
	if found[1].Title != "Go, second edition" {
		t.Errorf("Lookup(1).Title = %q, want last duplicate", found[1].Title)
	}
	if found[2].Category != "systems" {
		t.Errorf("Lookup(2).Category = %q", found[2].Category)
	}

	c.Replace([]recommend.Item{{ID: 3, Title: "Stats"}})
	found = c.Lookup([]int64{1, 3})
	if _, ok := found[1]; ok {
		t.Error("Lookup() returned an item from the previous catalog")
	}
	if found[3].Title != "Stats" {
		t.Errorf("Lookup(3) = %+v", found[3])
	}

	items, gen := c.Snapshot()
	if len(items) != 1 || gen != 2 {
		t.Errorf("Snapshot() = (%v, %d)", items, gen)
	}
	if c.Info().Records != 1 {
		t.Errorf("Info().Records = %d, want 1", c.Info().Records)
	}
}
