// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope every HTTP endpoint returns.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"customer_id": 7, "cold_start": false, "products": ["Eggs", "Rice"]},
//	  "metadata": {
//	    "timestamp": "2026-03-01T12:00:00Z",
//	    "request_id": "2f1c...",
//	    "model_version": 3
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "request_id": "2f1c..."},
//	  "error": {"code": "CUSTOMER_NOT_FOUND", "message": "Customer 99 not found"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes the response rather than the payload.
type Metadata struct {
	Timestamp    time.Time `json:"timestamp"`
	RequestID    string    `json:"request_id,omitempty"`
	ModelVersion int64     `json:"model_version,omitempty"`
}

// APIError is a machine-readable error code with a human-readable message.
//
// Codes:
//   - VALIDATION_ERROR: invalid path or query parameter
//   - CUSTOMER_NOT_FOUND: customer absent from the fitted model
//   - REFIT_FAILED: the data source could not be loaded or fitted
//   - REFIT_UNAVAILABLE: the server has no data source to refit from
//   - RATE_LIMITED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RecommendationsResponse is the payload of the recommendations endpoint.
type RecommendationsResponse struct {
	CustomerID int      `json:"customer_id"`
	ColdStart  bool     `json:"cold_start"`
	Products   []string `json:"products"`
}

// InsightsResponse is the payload of the insights endpoint.
type InsightsResponse struct {
	CustomerID        int     `json:"customer_id"`
	TotalPurchases    int     `json:"total_purchases"`
	UniqueProducts    int     `json:"unique_products"`
	FavoriteCategory  string  `json:"favorite_category"`
	AvgQuantity       float64 `json:"avg_quantity"`
	PurchaseFrequency string  `json:"purchase_frequency"`
}

// HealthStatus reports server and model state.
type HealthStatus struct {
	Status    string      `json:"status"` // "healthy" or "degraded"
	Model     ModelStatus `json:"model"`
	Uptime    float64     `json:"uptime_seconds"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
}

// ModelStatus describes the published recommendation model.
type ModelStatus struct {
	Fitted    bool       `json:"fitted"`
	Version   int64      `json:"version"`
	FittedAt  *time.Time `json:"fitted_at,omitempty"`
	Records   int        `json:"records"`
	Customers int        `json:"customers"`
	Products  int        `json:"products"`
	Patterns  int        `json:"patterns"`
}

// RefitResponse is the payload of the refit endpoint.
type RefitResponse struct {
	Model      ModelStatus `json:"model"`
	DurationMS int64       `json:"duration_ms"`
}
