// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Model Metrics
	ModelFitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "basketwise_model_fit_duration_seconds",
			Help:    "Duration of recommendation model fits in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
	)

	ModelFitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basketwise_model_fits_total",
			Help: "Total number of model fit attempts",
		},
		[]string{"outcome"}, // "success", "empty", "canceled", "error"
	)

	ModelVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "basketwise_model_version",
			Help: "Version of the currently served model",
		},
	)

	ModelLastFitTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "basketwise_model_last_fit_timestamp_seconds",
			Help: "Unix timestamp of the last successful model fit",
		},
	)

	ModelSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "basketwise_model_size",
			Help: "Size of the served model by dimension",
		},
		[]string{"dimension"}, // "records", "customers", "products", "patterns"
	)

	// Query Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basketwise_recommendations_total",
			Help: "Total number of recommendation queries by path",
		},
		[]string{"path"}, // "personalized", "cold_start"
	)

	RecommendationsReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "basketwise_recommendations_returned",
			Help:    "Number of products returned per recommendation query",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	InsightsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basketwise_insights_total",
			Help: "Total number of insights queries by outcome",
		},
		[]string{"outcome"}, // "found", "not_found"
	)

	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "basketwise_dataset_load_duration_seconds",
			Help:    "Duration of purchase dataset loads in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)

	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "basketwise_dataset_records",
			Help: "Number of purchase records in the last successful load",
		},
		[]string{"source"},
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "basketwise_dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
		[]string{"source"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// RecordDBQuery records a DuckDB query.
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordDatasetLoad records a load from a purchase data source.
func RecordDatasetLoad(source string, records int, duration time.Duration, err error) {
	DatasetLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.WithLabelValues(source).Inc()
		return
	}
	DatasetRecords.WithLabelValues(source).Set(float64(records))
}

// RecordAPIRequest records an API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}
