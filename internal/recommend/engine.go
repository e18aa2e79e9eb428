// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Note: This package depends only on the leaf cache package.
// The Observer interface lets the metrics package watch the engine
// without an import cycle.

// Observer receives notifications about engine activity.
type Observer interface {
	// FitCompleted is called after every Fit attempt. status is the zero
	// value when err is non-nil.
	FitCompleted(status ModelStatus, duration time.Duration, err error)

	// RecommendServed is called for every recommendation query.
	RecommendServed(coldStart bool, returned int)

	// InsightsServed is called for every insights query.
	InsightsServed(found bool)
}

type noopObserver struct{}

func (noopObserver) FitCompleted(ModelStatus, time.Duration, error) {}
func (noopObserver) RecommendServed(bool, int)                      {}
func (noopObserver) InsightsServed(bool)                            {}

// Engine serves recommendations from the most recently fitted Model.
//
// Fit builds a complete new snapshot before publishing it with an atomic
// swap, so queries never observe partial state and never take a lock.
// Concurrent Fit calls are serialized.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	observer Observer

	model   atomic.Pointer[Model]
	version atomic.Int64
	fitMu   sync.Mutex
}

// NewEngine creates a new recommendation engine with no fitted model.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		observer: noopObserver{},
	}
	e.logger.Debug().Str("config", e.config.String()).Msg("recommendation engine created")
	return e, nil
}

// SetObserver installs an observer. It must be called before the engine is
// shared between goroutines.
func (e *Engine) SetObserver(o Observer) {
	if o == nil {
		o = noopObserver{}
	}
	e.observer = o
}

// Fit builds a new model from the full dataset and publishes it.
// On error the previously published model, if any, stays in place.
func (e *Engine) Fit(ctx context.Context, records []PurchaseRecord) error {
	e.fitMu.Lock()
	defer e.fitMu.Unlock()

	start := time.Now()
	e.logger.Info().
		Int("records", len(records)).
		Msg("fitting recommendation model")

	if err := ctx.Err(); err != nil {
		e.observer.FitCompleted(ModelStatus{}, time.Since(start), err)
		return fmt.Errorf("fit canceled: %w", err)
	}

	model, err := BuildModel(records, e.config)
	if err != nil {
		e.observer.FitCompleted(ModelStatus{}, time.Since(start), err)
		e.logger.Error().Err(err).Msg("model fit failed")
		return fmt.Errorf("build model: %w", err)
	}

	model = model.withVersion(e.version.Add(1))
	if retired := e.model.Swap(model); retired != nil {
		stats := retired.RankCacheStats()
		e.logger.Debug().
			Int64("version", retired.status.Version).
			Int64("hits", stats.Hits).
			Int64("misses", stats.Misses).
			Float64("hit_rate", stats.HitRate()).
			Msg("retired model ranking cache")
	}

	status := model.Status()
	e.observer.FitCompleted(status, time.Since(start), nil)
	e.logger.Info().
		Int64("version", status.Version).
		Int("customers", status.Customers).
		Int("products", status.Products).
		Int("patterns", status.Patterns).
		Int64("duration_ms", status.FitDurationMS).
		Msg("model fit complete")

	return nil
}

// Model returns the currently published snapshot, or nil before the first
// successful Fit.
func (e *Engine) Model() *Model {
	return e.model.Load()
}

// Recommend returns up to topN product names for a customer.
// Before the first successful Fit every customer is a cold start.
func (e *Engine) Recommend(customerID, topN int) []string {
	return e.Serve(customerID, topN).Products
}

// Served is one recommendation answer together with the snapshot that
// produced it.
type Served struct {
	Products  []string
	ColdStart bool

	// ModelVersion is 0 before the first successful Fit.
	ModelVersion int64
}

// Serve is Recommend that also reports whether the cold-start fallback
// was used and which model version answered. Everything comes from one
// snapshot.
func (e *Engine) Serve(customerID, topN int) Served {
	if topN <= 0 {
		topN = e.config.Scoring.DefaultTopN
	}

	model := e.model.Load()
	var version int64
	if model != nil {
		version = model.status.Version
	}

	if model == nil || !model.HasCustomer(customerID) {
		recs := coldStart(e.config.ColdStartItems, topN)
		e.observer.RecommendServed(true, len(recs))
		e.logger.Debug().
			Int("customer_id", customerID).
			Msg("unknown customer, serving cold start items")
		return Served{Products: recs, ColdStart: true, ModelVersion: version}
	}

	recs := model.Recommend(customerID, topN)
	e.observer.RecommendServed(false, len(recs))
	e.logger.Debug().
		Int("customer_id", customerID).
		Int("top_n", topN).
		Int("returned", len(recs)).
		Msg("recommendations served")
	return Served{Products: recs, ModelVersion: version}
}

// Insights summarizes a customer over the dataset the published model was
// fitted on and returns that model's version. ok is false when no model is
// fitted or the customer is not in it.
func (e *Engine) Insights(customerID int) (insights CustomerInsights, version int64, ok bool) {
	model := e.model.Load()
	if model == nil {
		e.observer.InsightsServed(false)
		return CustomerInsights{}, 0, false
	}

	insights, ok = model.Insights(customerID, model.Records())
	e.observer.InsightsServed(ok)
	return insights, model.status.Version, ok
}

// Status returns the status of the published model.
func (e *Engine) Status() ModelStatus {
	model := e.model.Load()
	if model == nil {
		return ModelStatus{}
	}
	return model.Status()
}
