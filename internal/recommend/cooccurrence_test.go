// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPairKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PairKey{A: "Bread", B: "Milk"}, NewPairKey("Milk", "Bread"))
	assert.Equal(t, PairKey{A: "Bread", B: "Milk"}, NewPairKey("Bread", "Milk"))
}

func TestMinePatterns(t *testing.T) {
	t.Parallel()

	records := []PurchaseRecord{
		// Customer 1, day 0: Milk twice counts once.
		purchase(1, "Milk", "Dairy", 1, 0),
		purchase(1, "Bread", "Bakery", 1, 0),
		purchase(1, "Milk", "Dairy", 2, 0),
		// Customer 2, day 0: three products.
		purchase(2, "Bread", "Bakery", 1, 0),
		purchase(2, "Milk", "Dairy", 1, 0),
		purchase(2, "Eggs", "Dairy", 1, 0),
		// Customer 1, day 1: single product basket.
		purchase(1, "Milk", "Dairy", 1, 1),
		// Customer 3, day 2: one distinct product bought twice.
		purchase(3, "Rice", "Pantry", 1, 2),
		purchase(3, "Rice", "Pantry", 1, 2),
	}

	got := MinePatterns(records)

	want := PatternCounts{
		{A: "Bread", B: "Milk"}: 2,
		{A: "Bread", B: "Eggs"}: 1,
		{A: "Eggs", B: "Milk"}:  1,
	}
	assert.Equal(t, want, got)
}

func TestMinePatterns_SameDateDifferentTimes(t *testing.T) {
	t.Parallel()

	morning := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 5, 1, 20, 30, 0, 0, time.UTC)

	records := []PurchaseRecord{
		{CustomerID: 1, ProductName: "Coffee", Category: "Beverages", Quantity: 1, PurchaseDate: morning},
		{CustomerID: 1, ProductName: "Bread", Category: "Bakery", Quantity: 1, PurchaseDate: evening},
	}

	got := MinePatterns(records)
	assert.Equal(t, 1, got.Count("Coffee", "Bread"))
}

func TestMinePatterns_PairOrderIndependent(t *testing.T) {
	t.Parallel()

	ab := []PurchaseRecord{
		purchase(1, "Apples", "Produce", 1, 0),
		purchase(1, "Bananas", "Produce", 1, 0),
	}
	ba := []PurchaseRecord{
		purchase(1, "Bananas", "Produce", 1, 0),
		purchase(1, "Apples", "Produce", 1, 0),
	}

	assert.Equal(t, MinePatterns(ab), MinePatterns(ba))
	assert.Equal(t, 1, MinePatterns(ba).Count("Apples", "Bananas"))
	assert.Equal(t, 1, MinePatterns(ba).Count("Bananas", "Apples"))
}

func TestMinePatterns_DifferentCustomersSameDay(t *testing.T) {
	t.Parallel()

	records := []PurchaseRecord{
		purchase(1, "Milk", "Dairy", 1, 0),
		purchase(2, "Bread", "Bakery", 1, 0),
	}

	assert.Empty(t, MinePatterns(records))
}

func TestPatternCounts_Keys(t *testing.T) {
	t.Parallel()

	p := PatternCounts{
		{A: "Eggs", B: "Milk"}:   1,
		{A: "Bread", B: "Milk"}:  4,
		{A: "Bread", B: "Eggs"}:  2,
		{A: "Apples", B: "Rice"}: 3,
	}

	assert.Equal(t, []PairKey{
		{A: "Apples", B: "Rice"},
		{A: "Bread", B: "Eggs"},
		{A: "Bread", B: "Milk"},
		{A: "Eggs", B: "Milk"},
	}, p.Keys())
}
