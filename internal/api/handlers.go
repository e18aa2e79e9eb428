// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/basketwise/internal/logging"
	"github.com/tomtom215/basketwise/internal/models"
	"github.com/tomtom215/basketwise/internal/recommend"
	"github.com/tomtom215/basketwise/internal/validation"
)

// maxTopN bounds the top_n query parameter.
const maxTopN = 100

// Recommender is the query side of the recommendation engine.
// Satisfied by *recommend.Engine.
type Recommender interface {
	Serve(customerID, topN int) recommend.Served
	Insights(customerID int) (recommend.CustomerInsights, int64, bool)
	Status() recommend.ModelStatus
}

// Refitter reloads the dataset and refits the engine.
type Refitter interface {
	Refit(ctx context.Context) error
}

// Handler serves the HTTP API.
type Handler struct {
	engine    Recommender
	data      Refitter
	version   string
	startTime time.Time
}

// NewHandler creates a handler. data may be nil, in which case refits
// answer 503.
func NewHandler(engine Recommender, data Refitter, version string) *Handler {
	return &Handler{
		engine:    engine,
		data:      data,
		version:   version,
		startTime: time.Now(),
	}
}

// Health handles GET /api/v1/health.
// Status is "degraded" until a model has been fitted.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.engine.Status()

	health := models.HealthStatus{
		Status:    "healthy",
		Model:     toModelStatus(status),
		Uptime:    time.Since(h.startTime).Seconds(),
		Version:   h.version,
		Timestamp: time.Now().UTC(),
	}
	if !status.Fitted {
		health.Status = "degraded"
	}

	meta := metadata(r)
	meta.ModelVersion = status.Version
	respondSuccess(w, health, meta)
}

// Recommendations handles GET /api/v1/customers/{id}/recommendations.
// Unknown customers receive the cold-start list with cold_start set.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	customerID, ok := parseCustomerID(w, r)
	if !ok {
		return
	}

	topN := 0
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		if verr := validation.ValidateVar(raw, "top_n", "number"); verr != nil {
			respondValidationError(w, r, verr)
			return
		}
		topN, _ = strconv.Atoi(raw)
		if verr := validation.ValidateVar(topN, "top_n", fmt.Sprintf("gte=1,lte=%d", maxTopN)); verr != nil {
			respondValidationError(w, r, verr)
			return
		}
	}

	served := h.engine.Serve(customerID, topN)
	products := served.Products
	if products == nil {
		products = []string{}
	}

	meta := metadata(r)
	meta.ModelVersion = served.ModelVersion
	respondSuccess(w, models.RecommendationsResponse{
		CustomerID: customerID,
		ColdStart:  served.ColdStart,
		Products:   products,
	}, meta)
}

// Insights handles GET /api/v1/customers/{id}/insights.
func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	customerID, ok := parseCustomerID(w, r)
	if !ok {
		return
	}

	insights, version, found := h.engine.Insights(customerID)
	if !found {
		respondError(w, r, http.StatusNotFound, ErrCodeCustomerNotFound,
			fmt.Sprintf("Customer %d not found", customerID), nil)
		return
	}

	meta := metadata(r)
	meta.ModelVersion = version
	respondSuccess(w, models.InsightsResponse{
		CustomerID:        customerID,
		TotalPurchases:    insights.TotalPurchases,
		UniqueProducts:    insights.UniqueProducts,
		FavoriteCategory:  insights.FavoriteCategory,
		AvgQuantity:       insights.AvgQuantity,
		PurchaseFrequency: insights.PurchaseFrequency.String(),
	}, meta)
}

// Refit handles POST /api/v1/model/refit.
func (h *Handler) Refit(w http.ResponseWriter, r *http.Request) {
	if h.data == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeRefitUnavailable,
			"No data source configured", nil)
		return
	}

	start := time.Now()
	if err := h.data.Refit(r.Context()); err != nil {
		respondError(w, r, http.StatusInternalServerError, ErrCodeRefitFailed,
			"Failed to refit model", err)
		return
	}

	status := h.engine.Status()
	logging.Ctx(r.Context()).Info().
		Int64("version", status.Version).
		Msg("model refit via API")

	meta := metadata(r)
	meta.ModelVersion = status.Version
	respondSuccess(w, models.RefitResponse{
		Model:      toModelStatus(status),
		DurationMS: time.Since(start).Milliseconds(),
	}, meta)
}

// NotFound answers unmatched routes with the error envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
}

// MethodNotAllowed answers known routes called with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}

// parseCustomerID reads and validates the {id} path parameter, writing a
// 400 response when it is not a positive integer.
func parseCustomerID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	if verr := validation.ValidateVar(raw, "id", "required,number"); verr != nil {
		respondValidationError(w, r, verr)
		return 0, false
	}

	customerID, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "id is out of range", nil)
		return 0, false
	}
	if verr := validation.ValidateVar(customerID, "id", "gte=1"); verr != nil {
		respondValidationError(w, r, verr)
		return 0, false
	}
	return customerID, true
}

func toModelStatus(s recommend.ModelStatus) models.ModelStatus {
	out := models.ModelStatus{
		Fitted:    s.Fitted,
		Version:   s.Version,
		Records:   s.Records,
		Customers: s.Customers,
		Products:  s.Products,
		Patterns:  s.Patterns,
	}
	if s.Fitted {
		fittedAt := s.FittedAt.UTC()
		out.FittedAt = &fittedAt
	}
	return out
}
