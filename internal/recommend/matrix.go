// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"gonum.org/v1/gonum/mat"
)

// InteractionMatrix is a dense customer x product table of summed quantities.
//
// Rows are distinct customer IDs in ascending order and columns are distinct
// product names in lexicographic order. Missing entries are zero. The matrix
// is read-only once built.
type InteractionMatrix struct {
	customers *Index[int]
	products  *Index[string]

	// data is nil when the matrix was built from no records, since gonum
	// does not allow zero-sized dense matrices.
	data *mat.Dense
}

// BuildInteractionMatrix aggregates purchase records into an interaction matrix.
// Quantities of records sharing (customer, product) are summed. Identical
// multisets of records produce identical matrices regardless of order.
//
//nolint:gocritic // rangeValCopy: PurchaseRecord is small enough to copy
func BuildInteractionMatrix(records []PurchaseRecord) *InteractionMatrix {
	customerIDs := make([]int, 0, len(records))
	productNames := make([]string, 0, len(records))
	for _, r := range records {
		customerIDs = append(customerIDs, r.CustomerID)
		productNames = append(productNames, r.ProductName)
	}

	m := &InteractionMatrix{
		customers: newIndex(customerIDs),
		products:  newIndex(productNames),
	}
	if len(records) == 0 {
		return m
	}

	m.data = mat.NewDense(m.customers.Len(), m.products.Len(), nil)
	for _, r := range records {
		row, _ := m.customers.Position(r.CustomerID)
		col, _ := m.products.Position(r.ProductName)
		m.data.Set(row, col, m.data.At(row, col)+float64(r.Quantity))
	}

	return m
}

// Dims returns the number of customers and products.
func (m *InteractionMatrix) Dims() (customers, products int) {
	return m.customers.Len(), m.products.Len()
}

// Customers returns the row index.
func (m *InteractionMatrix) Customers() *Index[int] {
	return m.customers
}

// Products returns the column index.
func (m *InteractionMatrix) Products() *Index[string] {
	return m.products
}

// Quantity returns the summed quantity for a customer and product, or zero
// if either is absent.
func (m *InteractionMatrix) Quantity(customerID int, product string) float64 {
	row, ok := m.customers.Position(customerID)
	if !ok {
		return 0
	}
	col, ok := m.products.Position(product)
	if !ok {
		return 0
	}
	return m.data.At(row, col)
}

// Row returns a copy of the quantities at row position i.
func (m *InteractionMatrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.data)
}

// CustomerVectors returns one row per customer over the product space,
// or nil for an empty matrix.
func (m *InteractionMatrix) CustomerVectors() mat.Matrix {
	if m.data == nil {
		return nil
	}
	return m.data
}

// ProductVectors returns the transposed view: one row per product over the
// customer space, or nil for an empty matrix.
func (m *InteractionMatrix) ProductVectors() mat.Matrix {
	if m.data == nil {
		return nil
	}
	return m.data.T()
}
