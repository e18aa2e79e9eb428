// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"errors"
	"slices"
	"time"

	"github.com/tomtom215/basketwise/internal/cache"
)

// ErrNoRecords is returned when a model is built from an empty dataset.
var ErrNoRecords = errors.New("no purchase records")

// Model is an immutable snapshot of one dataset and everything derived from
// it: the interaction matrix, both similarity matrices, and co-purchase
// counts. A Model is safe for concurrent read-only use.
type Model struct {
	scoring        ScoringConfig
	coldStartItems []string

	// records is the dataset the snapshot was built from.
	records []PurchaseRecord

	matrix      *InteractionMatrix
	productSim  *SimilarityMatrix[string]
	customerSim *SimilarityMatrix[int]
	patterns    PatternCounts

	// patternKeys fixes the iteration order of patterns.
	patternKeys []PairKey

	// rankings memoizes Rank per customer; nil when disabled.
	rankings *cache.LRU[int, []Recommendation]

	status ModelStatus
}

// BuildModel derives a model snapshot from a full purchase dataset.
// It returns ErrNoRecords for an empty dataset.
func BuildModel(records []PurchaseRecord, cfg *Config) (*Model, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	start := time.Now()

	matrix := BuildInteractionMatrix(records)
	patterns := MinePatterns(records)

	m := &Model{
		scoring:        cfg.Scoring,
		coldStartItems: cfg.Clone().ColdStartItems,
		records:        slices.Clone(records),
		matrix:         matrix,
		productSim:     newSimilarityMatrix(matrix.Products(), CosineSimilarity(matrix.ProductVectors())),
		customerSim:    newSimilarityMatrix(matrix.Customers(), CosineSimilarity(matrix.CustomerVectors())),
		patterns:       patterns,
		patternKeys:    patterns.Keys(),
	}
	if cfg.RankCacheSize > 0 {
		m.rankings = cache.NewLRU[int, []Recommendation](cfg.RankCacheSize, 0)
	}

	customers, products := matrix.Dims()
	m.status = ModelStatus{
		Fitted:        true,
		FittedAt:      time.Now(),
		FitDurationMS: time.Since(start).Milliseconds(),
		Records:       len(records),
		Customers:     customers,
		Products:      products,
		Patterns:      len(patterns),
	}

	return m, nil
}

// Status returns the snapshot's build statistics.
func (m *Model) Status() ModelStatus {
	return m.status
}

// Records returns the dataset the snapshot was built from. Callers must not
// modify it.
func (m *Model) Records() []PurchaseRecord {
	return m.records
}

// Matrix returns the interaction matrix.
func (m *Model) Matrix() *InteractionMatrix {
	return m.matrix
}

// ProductSimilarity returns the product-product similarity matrix.
func (m *Model) ProductSimilarity() *SimilarityMatrix[string] {
	return m.productSim
}

// CustomerSimilarity returns the customer-customer similarity matrix.
func (m *Model) CustomerSimilarity() *SimilarityMatrix[int] {
	return m.customerSim
}

// Patterns returns the co-purchase counts. Callers must not modify the map.
func (m *Model) Patterns() PatternCounts {
	return m.patterns
}

// HasCustomer reports whether the customer appears in the fitted data.
func (m *Model) HasCustomer(customerID int) bool {
	_, ok := m.matrix.Customers().Position(customerID)
	return ok
}

// RankCacheStats reports the ranking cache. It is zero when the cache is
// disabled.
func (m *Model) RankCacheStats() cache.Stats {
	if m.rankings == nil {
		return cache.Stats{}
	}
	return m.rankings.Stats()
}

// withVersion returns a copy of the model carrying the given version.
func (m *Model) withVersion(version int64) *Model {
	clone := *m
	clone.status.Version = version
	return &clone
}
