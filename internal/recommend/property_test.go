// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend_test

import (
	"cmp"
	"context"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/basketwise/internal/dataset"
	"github.com/tomtom215/basketwise/internal/recommend"
)

func syntheticRecords(seed int64, customers int) []recommend.PurchaseRecord {
	cfg := dataset.DefaultGeneratorConfig()
	cfg.Seed = seed
	cfg.Customers = customers
	return dataset.NewGenerator(cfg).Generate()
}

func fitEngine(t *testing.T, records []recommend.PurchaseRecord) *recommend.Engine {
	t.Helper()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, engine.Fit(context.Background(), records))
	return engine
}

// assertSameModel compares the derived structures of two fitted models
// entry by entry, keyed by ID rather than position.
func assertSameModel(t *testing.T, want, got *recommend.Model) {
	t.Helper()
	require.NotNil(t, want)
	require.NotNil(t, got)

	assertSameSimilarity(t, "product", want.ProductSimilarity(), got.ProductSimilarity())
	assertSameSimilarity(t, "customer", want.CustomerSimilarity(), got.CustomerSimilarity())
	assert.Equal(t, want.Patterns(), got.Patterns())
}

func assertSameSimilarity[K cmp.Ordered](t *testing.T, name string, want, got *recommend.SimilarityMatrix[K]) {
	t.Helper()

	ids := want.Index().IDs()
	require.Equal(t, ids, got.Index().IDs(), "%s index", name)

	for i, a := range ids {
		gi, ok := got.Index().Position(a)
		require.True(t, ok)
		for j, b := range ids {
			gj, ok := got.Index().Position(b)
			require.True(t, ok)
			assert.InDelta(t, want.At(i, j), got.At(gi, gj), 1e-12, "%s similarity %v/%v", name, a, b)
		}
	}
}

// Recommendations on synthetic data never repeat a product, never exceed
// topN, and never include something the customer already bought.
func TestRecommend_SyntheticInvariants(t *testing.T) {
	t.Parallel()

	for _, seed := range []int64{1, 42, 2024} {
		records := syntheticRecords(seed, 30)
		engine := fitEngine(t, records)

		bought := make(map[int]map[string]bool)
		for _, r := range records {
			if bought[r.CustomerID] == nil {
				bought[r.CustomerID] = make(map[string]bool)
			}
			bought[r.CustomerID][r.ProductName] = true
		}

		for customer := 1; customer <= 30; customer++ {
			for _, topN := range []int{1, 3, 5, 10} {
				served := engine.Serve(customer, topN)
				require.False(t, served.ColdStart, "seed %d customer %d", seed, customer)
				recs := served.Products
				assert.LessOrEqual(t, len(recs), topN)

				seen := make(map[string]bool, len(recs))
				for _, p := range recs {
					assert.False(t, seen[p], "seed %d customer %d: duplicate %s", seed, customer, p)
					seen[p] = true
					assert.False(t, bought[customer][p], "seed %d customer %d: already bought %s", seed, customer, p)
				}
			}
		}
	}
}

// Fitting on a shuffled copy of the dataset serves identical results.
func TestFit_RecordOrderIndependent(t *testing.T) {
	t.Parallel()

	records := syntheticRecords(42, 25)
	shuffled := make([]recommend.PurchaseRecord, len(records))
	copy(shuffled, records)
	rng := rand.New(rand.NewPCG(7, 11))
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	a := fitEngine(t, records)
	b := fitEngine(t, shuffled)

	assertSameModel(t, a.Model(), b.Model())

	for customer := 0; customer <= 26; customer++ {
		assert.Equal(t, a.Recommend(customer, 5), b.Recommend(customer, 5), "customer %d", customer)

		ia, _, okA := a.Insights(customer)
		ib, _, okB := b.Insights(customer)
		assert.Equal(t, okA, okB, "customer %d", customer)
		if okA {
			assert.Equal(t, ia.TotalPurchases, ib.TotalPurchases)
			assert.Equal(t, ia.UniqueProducts, ib.UniqueProducts)
			assert.InDelta(t, ia.AvgQuantity, ib.AvgQuantity, 1e-12)
			assert.Equal(t, ia.PurchaseFrequency, ib.PurchaseFrequency)
		}
	}
}

// Refitting on the same data is idempotent.
func TestFit_Idempotent(t *testing.T) {
	t.Parallel()

	records := syntheticRecords(9, 20)
	engine := fitEngine(t, records)
	before := make(map[int][]string)
	for customer := 1; customer <= 20; customer++ {
		before[customer] = engine.Recommend(customer, 5)
	}

	first := engine.Model()

	require.NoError(t, engine.Fit(context.Background(), records))
	assert.Equal(t, int64(2), engine.Status().Version)
	assertSameModel(t, first, engine.Model())
	for customer := 1; customer <= 20; customer++ {
		assert.Equal(t, before[customer], engine.Recommend(customer, 5), "customer %d", customer)
	}
}
