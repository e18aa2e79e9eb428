// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package dataset

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/tomtom215/basketwise/internal/config"
	"github.com/tomtom215/basketwise/internal/recommend"
)

// Product is one entry of the synthetic catalog.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

var catalog = []Product{
	{ID: 1, Name: "Milk", Category: "Dairy"},
	{ID: 2, Name: "Bread", Category: "Bakery"},
	{ID: 3, Name: "Eggs", Category: "Dairy"},
	{ID: 4, Name: "Cheese", Category: "Dairy"},
	{ID: 5, Name: "Apples", Category: "Produce"},
	{ID: 6, Name: "Bananas", Category: "Produce"},
	{ID: 7, Name: "Chicken", Category: "Meat"},
	{ID: 8, Name: "Rice", Category: "Pantry"},
	{ID: 9, Name: "Pasta", Category: "Pantry"},
	{ID: 10, Name: "Coffee", Category: "Beverages"},
}

// Catalog returns the products the generator draws from, ordered by ID.
func Catalog() []Product {
	return slices.Clone(catalog)
}

// DefaultReferenceDate is the last day of generated history.
var DefaultReferenceDate = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

// GeneratorConfig controls the synthetic dataset.
type GeneratorConfig struct {
	Seed          int64
	Customers     int
	Days          int
	MinPurchases  int
	MaxPurchases  int
	ReferenceDate time.Time
}

// DefaultGeneratorConfig returns 50 customers with 5-20 purchases each over 90 days.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:          42,
		Customers:     50,
		Days:          90,
		MinPurchases:  5,
		MaxPurchases:  20,
		ReferenceDate: DefaultReferenceDate,
	}
}

// GeneratorConfigFrom maps the data config section onto a GeneratorConfig.
func GeneratorConfigFrom(cfg *config.DataConfig) GeneratorConfig {
	return GeneratorConfig{
		Seed:          cfg.Seed,
		Customers:     cfg.Customers,
		Days:          cfg.Days,
		MinPurchases:  cfg.MinPurchases,
		MaxPurchases:  cfg.MaxPurchases,
		ReferenceDate: DefaultReferenceDate,
	}
}

// Generator produces a reproducible synthetic purchase history.
// The same config always yields the same records in the same order.
type Generator struct {
	cfg GeneratorConfig
}

// NewGenerator creates a generator. Out-of-range values fall back to defaults.
func NewGenerator(cfg GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()
	if cfg.Customers < 1 {
		cfg.Customers = def.Customers
	}
	if cfg.Days < 1 {
		cfg.Days = def.Days
	}
	if cfg.MinPurchases < 1 {
		cfg.MinPurchases = def.MinPurchases
	}
	if cfg.MaxPurchases < cfg.MinPurchases {
		cfg.MaxPurchases = cfg.MinPurchases
	}
	if cfg.ReferenceDate.IsZero() {
		cfg.ReferenceDate = def.ReferenceDate
	}
	cfg.ReferenceDate = recommend.Date(cfg.ReferenceDate)
	return &Generator{cfg: cfg}
}

// Name implements Source.
func (g *Generator) Name() string { return config.SourceSynthetic }

// Load implements Source.
func (g *Generator) Load(ctx context.Context) ([]recommend.PurchaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// Generate returns customers 1..N, each with a random number of purchases
// of catalog products, quantities 1-5, dated within the history window.
func (g *Generator) Generate() []recommend.PurchaseRecord {
	seed := uint64(g.cfg.Seed) //nolint:gosec // seed bits are reinterpreted, not narrowed
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	span := g.cfg.MaxPurchases - g.cfg.MinPurchases + 1
	records := make([]recommend.PurchaseRecord, 0, g.cfg.Customers*(g.cfg.MinPurchases+span/2))

	for customer := 1; customer <= g.cfg.Customers; customer++ {
		purchases := g.cfg.MinPurchases + rng.IntN(span)
		for range purchases {
			product := catalog[rng.IntN(len(catalog))]
			records = append(records, recommend.PurchaseRecord{
				CustomerID:   customer,
				ProductName:  product.Name,
				Category:     product.Category,
				Quantity:     1 + rng.IntN(5),
				PurchaseDate: g.cfg.ReferenceDate.AddDate(0, 0, -rng.IntN(g.cfg.Days)),
			})
		}
	}

	return records
}
