// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"cmp"
	"slices"
)

// Index is a bidirectional mapping between entity IDs and matrix positions.
// It is built once per fit and never modified afterwards.
type Index[K cmp.Ordered] struct {
	ids []K
	pos map[K]int
}

// newIndex builds an index over the distinct values of ids in ascending order.
// Sorting makes the index independent of input order.
func newIndex[K cmp.Ordered](ids []K) *Index[K] {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	pos := make(map[K]int, len(sorted))
	for i, id := range sorted {
		pos[id] = i
	}

	return &Index[K]{ids: sorted, pos: pos}
}

// Len returns the number of indexed entities.
func (x *Index[K]) Len() int {
	return len(x.ids)
}

// Position returns the matrix position of id.
func (x *Index[K]) Position(id K) (int, bool) {
	i, ok := x.pos[id]
	return i, ok
}

// ID returns the entity at position i.
func (x *Index[K]) ID(i int) K {
	return x.ids[i]
}

// IDs returns a copy of the ordered entity list.
func (x *Index[K]) IDs() []K {
	return slices.Clone(x.ids)
}
