// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"math"
	"slices"
	"time"
)

// Insights summarizes a customer's purchase behavior from raw records.
//
// The second return is false when the customer is absent from the fitted
// model; callers must check it rather than read the zero value.
func (m *Model) Insights(customerID int, records []PurchaseRecord) (CustomerInsights, bool) {
	if !m.HasCustomer(customerID) {
		return CustomerInsights{}, false
	}
	return Summarize(customerID, records), true
}

// Summarize computes insights for a customer over the given records without
// consulting a model.
//
//nolint:gocritic // rangeValCopy: PurchaseRecord is small enough to copy
func Summarize(customerID int, records []PurchaseRecord) CustomerInsights {
	var (
		total      int
		quantity   int
		products   = make(map[string]struct{})
		categories = make(map[string]int)
		dates      []time.Time

		favorite  = NoCategory
		bestCount int
	)

	for _, r := range records {
		if r.CustomerID != customerID {
			continue
		}

		total++
		quantity += r.Quantity
		products[r.ProductName] = struct{}{}
		dates = append(dates, Date(r.PurchaseDate))

		// The first category to reach a new maximum keeps it on ties.
		categories[r.Category]++
		if categories[r.Category] > bestCount {
			bestCount = categories[r.Category]
			favorite = r.Category
		}
	}

	insights := CustomerInsights{
		TotalPurchases:    total,
		UniqueProducts:    len(products),
		FavoriteCategory:  favorite,
		PurchaseFrequency: purchaseFrequency(dates),
	}
	if total > 0 {
		insights.AvgQuantity = float64(quantity) / float64(total)
	}

	return insights
}

// purchaseFrequency returns the mean gap in days between consecutive
// purchase dates, rounded to one decimal place.
func purchaseFrequency(dates []time.Time) PurchaseFrequency {
	if len(dates) < 2 {
		return PurchaseFrequency{}
	}

	sorted := slices.Clone(dates)
	slices.SortFunc(sorted, func(a, b time.Time) int {
		return a.Compare(b)
	})

	var totalDays float64
	for i := 1; i < len(sorted); i++ {
		totalDays += math.Floor(sorted[i].Sub(sorted[i-1]).Hours() / 24)
	}
	mean := totalDays / float64(len(sorted)-1)

	return PurchaseFrequency{
		Days:       math.Round(mean*10) / 10,
		Sufficient: true,
	}
}
