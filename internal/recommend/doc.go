// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

// Package recommend implements a purchase-history recommendation engine.
//
// # Architecture
//
// A model is built once from a full dataset of purchase records:
//
//   - Interaction matrix: customer x product table of summed quantities
//   - Product similarity: cosine similarity between product columns
//   - Customer similarity: cosine similarity between customer rows
//   - Co-purchase patterns: product pairs bought by the same customer on the same day
//
// Recommendations fuse three signals into one additive score per product:
//
//   - Item similarity: best single analogous purchase, max(sim * quantity)
//   - Peer customers: similarity of each of the 3 closest customers, summed
//   - Co-purchase: count * 0.1 for frequent pairs (count > 2) half-owned by the customer
//
// Customers absent from the model receive a fixed cold-start list.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	if err := engine.Fit(ctx, records); err != nil {
//	    return err
//	}
//
//	products := engine.Recommend(customerID, 5)
//	insights, version, ok := engine.Insights(customerID)
//
// Insights summarizes the dataset stored in the published Model, so
// the answer and the reported version always describe the same fit.
//
// # Thread Safety
//
// A Model is immutable. The Engine publishes each new Model with an atomic
// swap, so any number of goroutines may query while a refit is in progress.
// Each Model memoizes customer rankings in its own LRU cache; a refit starts
// with an empty one.
package recommend
