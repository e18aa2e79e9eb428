// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package metrics provides Prometheus instrumentation for Basketwise.

All metrics are registered with the default registry through promauto and
exposed at /metrics by the API router.

# Available Metrics

Model:
  - basketwise_model_fit_duration_seconds (histogram)
  - basketwise_model_fits_total{outcome} (counter): success, empty, canceled, error
  - basketwise_model_version (gauge)
  - basketwise_model_last_fit_timestamp_seconds (gauge)
  - basketwise_model_size{dimension} (gauge): records, customers, products, patterns

Queries:
  - basketwise_recommendations_total{path} (counter): personalized, cold_start
  - basketwise_recommendations_returned (histogram)
  - basketwise_insights_total{outcome} (counter): found, not_found

Dataset and storage:
  - basketwise_dataset_load_duration_seconds{source} (histogram)
  - basketwise_dataset_records{source} (gauge)
  - basketwise_dataset_load_errors_total{source} (counter)
  - duckdb_query_duration_seconds{operation} (histogram)
  - duckdb_query_errors_total{operation} (counter)

HTTP:
  - api_requests_total{method,endpoint,status_code} (counter)
  - api_request_duration_seconds{method,endpoint} (histogram)
  - api_active_requests (gauge)
  - api_rate_limit_hits_total{endpoint} (counter)

# Engine Integration

The recommend package has no dependency on this package. Install the
observer to feed engine activity into the model and query metrics:

	engine.SetObserver(metrics.EngineObserver{})
*/
package metrics
