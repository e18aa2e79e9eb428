// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/mat"
)

var day0 = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

// purchase builds a record on day0 plus the given number of days.
func purchase(customerID int, product, category string, quantity, day int) PurchaseRecord {
	return PurchaseRecord{
		CustomerID:   customerID,
		ProductName:  product,
		Category:     category,
		Quantity:     quantity,
		PurchaseDate: day0.AddDate(0, 0, day),
	}
}

func TestBuildInteractionMatrix(t *testing.T) {
	t.Parallel()

	records := []PurchaseRecord{
		purchase(2, "Bread", "Bakery", 4, 0),
		purchase(1, "Milk", "Dairy", 2, 0),
		purchase(1, "Milk", "Dairy", 1, 3),
	}

	m := BuildInteractionMatrix(records)

	customers, products := m.Dims()
	if customers != 2 || products != 2 {
		t.Fatalf("Dims() = (%d, %d), want (2, 2)", customers, products)
	}

	if got := m.Customers().IDs(); got[0] != 1 || got[1] != 2 {
		t.Errorf("customer order = %v, want [1 2]", got)
	}
	if got := m.Products().IDs(); got[0] != "Bread" || got[1] != "Milk" {
		t.Errorf("product order = %v, want [Bread Milk]", got)
	}

	tests := []struct {
		customer int
		product  string
		want     float64
	}{
		{1, "Milk", 3},
		{1, "Bread", 0},
		{2, "Bread", 4},
		{2, "Milk", 0},
		{3, "Milk", 0},
		{1, "Eggs", 0},
	}
	for _, tt := range tests {
		if got := m.Quantity(tt.customer, tt.product); got != tt.want {
			t.Errorf("Quantity(%d, %q) = %v, want %v", tt.customer, tt.product, got, tt.want)
		}
	}
}

func TestBuildInteractionMatrix_RowSumsEqualTotalQuantity(t *testing.T) {
	t.Parallel()

	records := []PurchaseRecord{
		purchase(1, "Milk", "Dairy", 2, 0),
		purchase(1, "Bread", "Bakery", 1, 1),
		purchase(1, "Milk", "Dairy", 5, 2),
		purchase(7, "Eggs", "Dairy", 3, 0),
	}
	totals := map[int]float64{1: 8, 7: 3}

	m := BuildInteractionMatrix(records)
	for id, want := range totals {
		row, ok := m.Customers().Position(id)
		if !ok {
			t.Fatalf("customer %d missing from matrix", id)
		}
		var sum float64
		for _, q := range m.Row(row) {
			sum += q
		}
		if sum != want {
			t.Errorf("row sum for customer %d = %v, want %v", id, sum, want)
		}
	}
}

func TestBuildInteractionMatrix_OrderIndependent(t *testing.T) {
	t.Parallel()

	records := []PurchaseRecord{
		purchase(3, "Coffee", "Beverages", 1, 0),
		purchase(1, "Milk", "Dairy", 2, 1),
		purchase(2, "Bread", "Bakery", 1, 2),
		purchase(1, "Bread", "Bakery", 3, 3),
	}
	reversed := make([]PurchaseRecord, len(records))
	for i, r := range records {
		reversed[len(records)-1-i] = r
	}

	a := BuildInteractionMatrix(records)
	b := BuildInteractionMatrix(reversed)

	if !mat.Equal(a.CustomerVectors(), b.CustomerVectors()) {
		t.Error("matrices differ when input order is reversed")
	}
}

func TestBuildInteractionMatrix_Empty(t *testing.T) {
	t.Parallel()

	m := BuildInteractionMatrix(nil)
	customers, products := m.Dims()
	if customers != 0 || products != 0 {
		t.Errorf("Dims() = (%d, %d), want (0, 0)", customers, products)
	}
	if m.CustomerVectors() != nil || m.ProductVectors() != nil {
		t.Error("expected nil vectors for empty matrix")
	}
	if got := m.Quantity(1, "Milk"); got != 0 {
		t.Errorf("Quantity() = %v, want 0", got)
	}
}

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	rows := mat.NewDense(4, 2, []float64{
		1, 0,
		0, 0,
		2, 0,
		1, 1,
	})

	sim := CosineSimilarity(rows)

	tests := []struct {
		name string
		i, j int
		want float64
	}{
		{"parallel vectors", 0, 2, 1.0},
		{"diagonal of non-zero vector", 3, 3, 1.0},
		{"zero vector against non-zero", 0, 1, 0.0},
		{"zero vector against itself", 1, 1, 0.0},
		{"forty-five degrees", 0, 3, 1 / math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sim.At(tt.i, tt.j)
			if math.IsNaN(got) {
				t.Fatalf("At(%d, %d) is NaN", tt.i, tt.j)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("At(%d, %d) = %v, want %v", tt.i, tt.j, got, tt.want)
			}
		})
	}
}

func TestCosineSimilarity_SymmetricAndBounded(t *testing.T) {
	t.Parallel()

	rows := mat.NewDense(3, 4, []float64{
		3, 1, 0, 2,
		1, 1, 1, 1,
		0, 5, 2, 0,
	})

	sim := CosineSimilarity(rows)
	n, _ := sim.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if math.Abs(sim.At(i, j)-sim.At(j, i)) > 1e-9 {
				t.Errorf("asymmetric at (%d, %d)", i, j)
			}
			if v := sim.At(i, j); v < 0 || v > 1 {
				t.Errorf("At(%d, %d) = %v out of [0, 1]", i, j, v)
			}
		}
		if sim.At(i, i) != 1.0 {
			t.Errorf("diagonal At(%d, %d) = %v, want 1", i, i, sim.At(i, i))
		}
	}
}

func TestCosineSimilarity_NilAndEmpty(t *testing.T) {
	t.Parallel()

	if CosineSimilarity(nil) != nil {
		t.Error("expected nil for nil input")
	}
	if CosineSimilarity(&mat.Dense{}) != nil {
		t.Error("expected nil for a matrix with no rows")
	}

	empty := BuildInteractionMatrix(nil)
	if customers, products := empty.Dims(); customers != 0 || products != 0 {
		t.Errorf("Dims() = %d, %d; want 0, 0", customers, products)
	}
	if CosineSimilarity(empty.CustomerVectors()) != nil {
		t.Error("expected nil customer similarity for an empty interaction matrix")
	}
	if CosineSimilarity(empty.ProductVectors()) != nil {
		t.Error("expected nil product similarity for an empty interaction matrix")
	}

	sim := newSimilarityMatrix(empty.Products(), CosineSimilarity(empty.ProductVectors()))
	if sim.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sim.Len())
	}
	if got := sim.Similarity("Milk", "Bread"); got != 0 {
		t.Errorf("Similarity() on empty matrix = %v, want 0", got)
	}
}
