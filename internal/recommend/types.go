// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"fmt"
	"time"
)

// PurchaseRecord is a single purchase event supplied by a data source.
// Records are never modified by the engine.
type PurchaseRecord struct {
	// CustomerID identifies the purchasing customer (>= 1).
	CustomerID int `json:"customer_id" validate:"gte=1"`

	// ProductName is the product identifier used throughout the engine.
	ProductName string `json:"product_name" validate:"required,notblank"`

	// Category is the product category, used only by insights.
	Category string `json:"category" validate:"required,notblank"`

	// Quantity is the number of units purchased (>= 1).
	Quantity int `json:"quantity" validate:"gte=1"`

	// PurchaseDate is the calendar date of the purchase.
	// Only the date part is significant; see Date.
	PurchaseDate time.Time `json:"purchase_date" validate:"required"`
}

// occasion returns the (customer, date) key that groups records bought together.
func (r *PurchaseRecord) occasion() occasionKey {
	return occasionKey{customerID: r.CustomerID, date: Date(r.PurchaseDate)}
}

// occasionKey groups records from one customer on one calendar day.
type occasionKey struct {
	customerID int
	date       time.Time
}

// Date truncates t to its calendar date at UTC midnight.
// Records from different time zones with the same wall-clock date compare equal.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Recommendation pairs a product with its fused score.
// Scores have no fixed scale; only their relative order matters.
type Recommendation struct {
	Product string  `json:"product"`
	Score   float64 `json:"score"`
}

// PurchaseFrequency is the average number of days between a customer's purchases.
// Sufficient is false when fewer than two purchases exist.
type PurchaseFrequency struct {
	Days       float64 `json:"days"`
	Sufficient bool    `json:"sufficient"`
}

// InsufficientData is the rendered value of a PurchaseFrequency without enough history.
const InsufficientData = "insufficient data"

// String renders the frequency with one decimal and a unit label.
//
//nolint:gocritic // value receiver keeps PurchaseFrequency usable as a plain value
func (f PurchaseFrequency) String() string {
	if !f.Sufficient {
		return InsufficientData
	}
	return fmt.Sprintf("%.1f days", f.Days)
}

// NoCategory is the favorite category reported for a customer without records.
const NoCategory = "None"

// CustomerInsights summarizes a customer's purchase behavior.
type CustomerInsights struct {
	// TotalPurchases is the number of purchase records.
	TotalPurchases int `json:"total_purchases"`

	// UniqueProducts is the number of distinct products purchased.
	UniqueProducts int `json:"unique_products"`

	// FavoriteCategory is the most frequent category, or NoCategory.
	FavoriteCategory string `json:"favorite_category"`

	// AvgQuantity is the mean quantity per record.
	AvgQuantity float64 `json:"avg_quantity"`

	// PurchaseFrequency is the mean gap between purchase dates.
	PurchaseFrequency PurchaseFrequency `json:"purchase_frequency"`
}

// ModelStatus describes the currently served model snapshot.
type ModelStatus struct {
	// Fitted is false until the first successful Fit.
	Fitted bool `json:"fitted"`

	// Version is incremented on every successful Fit.
	Version int64 `json:"version"`

	// FittedAt is when the snapshot was built.
	FittedAt time.Time `json:"fitted_at"`

	// FitDurationMS is how long building the snapshot took.
	FitDurationMS int64 `json:"fit_duration_ms"`

	// Records is the number of purchase records the snapshot was built from.
	Records int `json:"records"`

	// Customers is the number of distinct customers in the snapshot.
	Customers int `json:"customers"`

	// Products is the number of distinct products in the snapshot.
	Products int `json:"products"`

	// Patterns is the number of distinct co-purchased product pairs.
	Patterns int `json:"patterns"`
}
