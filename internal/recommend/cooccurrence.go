// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"cmp"
	"slices"
)

// PairKey is an unordered pair of distinct product names in canonical
// (lexicographic) order: A < B.
type PairKey struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NewPairKey returns the canonical key for two products in either order.
func NewPairKey(x, y string) PairKey {
	if x > y {
		x, y = y, x
	}
	return PairKey{A: x, B: y}
}

// PatternCounts maps a product pair to the number of purchase occasions
// (same customer, same date) in which both products appeared.
type PatternCounts map[PairKey]int

// MinePatterns counts co-purchased product pairs.
//
// Records are grouped by (customer, purchase date). Product names are
// deduplicated within a group, then every unordered pair of distinct products
// in a group with at least two products is counted once. The result does not
// depend on record order.
//
//nolint:gocritic // rangeValCopy: PurchaseRecord is small enough to copy
func MinePatterns(records []PurchaseRecord) PatternCounts {
	baskets := make(map[occasionKey]map[string]struct{})
	for _, r := range records {
		key := r.occasion()
		if baskets[key] == nil {
			baskets[key] = make(map[string]struct{})
		}
		baskets[key][r.ProductName] = struct{}{}
	}

	patterns := make(PatternCounts)
	for _, basket := range baskets {
		if len(basket) < 2 {
			continue
		}

		items := make([]string, 0, len(basket))
		for name := range basket {
			items = append(items, name)
		}
		slices.Sort(items)

		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				patterns[PairKey{A: items[i], B: items[j]}]++
			}
		}
	}

	return patterns
}

// Keys returns the pairs in canonical order, giving callers a stable
// iteration order over the map.
func (p PatternCounts) Keys() []PairKey {
	keys := make([]PairKey, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(x, y PairKey) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})
	return keys
}

// Count returns the co-purchase count for two products in either order.
func (p PatternCounts) Count(x, y string) int {
	return p[NewPairKey(x, y)]
}
