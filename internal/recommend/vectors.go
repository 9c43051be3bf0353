// Courserec - Collaborative Filtering Course Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/courserec

package recommend

import (
	"slices"
)

// UserVector is a sparse item -> rating vector with unique, ascending item
// keys. The zero value is an empty vector.
type UserVector struct {
	items  []int64
	values []float64
}

// NewUserVector builds a vector from a map.
func NewUserVector(m map[int64]float64) UserVector {
	if len(m) == 0 {
		return UserVector{}
	}
	items := make([]int64, 0, len(m))
	for item := range m {
		items = append(items, item)
	}
	slices.Sort(items)

	values := make([]float64, len(items))
	for i, item := range items {
		values[i] = m[item]
	}
	return UserVector{items: items, values: values}
}

// Len returns the number of rated items.
func (v UserVector) Len() int {
	return len(v.items)
}

// Has reports whether item is rated in v.
func (v UserVector) Has(item int64) bool {
	_, ok := slices.BinarySearch(v.items, item)
	return ok
}

// Get returns the rating for item, or 0 and false if absent.
func (v UserVector) Get(item int64) (float64, bool) {
	i, ok := slices.BinarySearch(v.items, item)
	if !ok {
		return 0, false
	}
	return v.values[i], true
}

// Each calls fn for every entry in ascending item order.
func (v UserVector) Each(fn func(item int64, value float64)) {
	for i, item := range v.items {
		fn(item, v.values[i])
	}
}

// Map returns a copy of the vector as a map.
func (v UserVector) Map() map[int64]float64 {
	m := make(map[int64]float64, len(v.items))
	for i, item := range v.items {
		m[item] = v.values[i]
	}
	return m
}

// VectorSet maps each user to their vector and remembers the order in which
// users first appeared in the rating list.
type VectorSet struct {
	order   []int64
	vectors map[int64]UserVector
}

// BuildUserVectors turns a flat rating list into one vector per user.
//
// Ratings are applied in order, so a later rating for the same (user, item)
// pair overwrites an earlier one. The input slice is not modified.
func BuildUserVectors(ratings []Rating) *VectorSet {
	order := make([]int64, 0)
	raw := make(map[int64]map[int64]float64)

	for _, r := range ratings {
		vec, ok := raw[r.UserID]
		if !ok {
			vec = make(map[int64]float64)
			raw[r.UserID] = vec
			order = append(order, r.UserID)
		}
		vec[r.ItemID] = r.Value
	}

	vectors := make(map[int64]UserVector, len(raw))
	for user, m := range raw {
		vectors[user] = NewUserVector(m)
	}

	return &VectorSet{order: order, vectors: vectors}
}

// Len returns the number of users.
func (s *VectorSet) Len() int {
	return len(s.order)
}

// Users returns user ids in first-appearance order.
func (s *VectorSet) Users() []int64 {
	return slices.Clone(s.order)
}

// Vector returns the vector for user. A user without ratings gets an empty
// vector and false.
func (s *VectorSet) Vector(user int64) (UserVector, bool) {
	v, ok := s.vectors[user]
	return v, ok
}
