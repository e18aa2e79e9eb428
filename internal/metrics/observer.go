// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/basketwise/internal/recommend"
)

// EngineObserver publishes recommendation engine activity to Prometheus.
//
//	engine.SetObserver(metrics.EngineObserver{})
type EngineObserver struct{}

var _ recommend.Observer = EngineObserver{}

// FitCompleted records the outcome of a fit and, on success, the model size.
func (EngineObserver) FitCompleted(status recommend.ModelStatus, duration time.Duration, err error) {
	ModelFitDuration.Observe(duration.Seconds())
	ModelFitsTotal.WithLabelValues(fitOutcome(err)).Inc()
	if err != nil {
		return
	}

	ModelVersion.Set(float64(status.Version))
	ModelLastFitTimestamp.Set(float64(status.FittedAt.Unix()))
	ModelSize.WithLabelValues("records").Set(float64(status.Records))
	ModelSize.WithLabelValues("customers").Set(float64(status.Customers))
	ModelSize.WithLabelValues("products").Set(float64(status.Products))
	ModelSize.WithLabelValues("patterns").Set(float64(status.Patterns))
}

// RecommendServed records one recommendation query.
func (EngineObserver) RecommendServed(coldStart bool, returned int) {
	path := "personalized"
	if coldStart {
		path = "cold_start"
	}
	RecommendationsTotal.WithLabelValues(path).Inc()
	RecommendationsReturned.Observe(float64(returned))
}

// InsightsServed records one insights query.
func (EngineObserver) InsightsServed(found bool) {
	outcome := "found"
	if !found {
		outcome = "not_found"
	}
	InsightsTotal.WithLabelValues(outcome).Inc()
}

func fitOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, recommend.ErrNoRecords):
		return "empty"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
