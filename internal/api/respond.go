// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/basketwise/internal/logging"
	"github.com/tomtom215/basketwise/internal/middleware"
	"github.com/tomtom215/basketwise/internal/models"
	"github.com/tomtom215/basketwise/internal/validation"
)

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	ErrCodeRefitFailed      = "REFIT_FAILED"
	ErrCodeRefitUnavailable = "REFIT_UNAVAILABLE"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)

// sanitizeLogValue replaces control characters so client-supplied values
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// metadata stamps a response with the time and request ID.
func metadata(r *http.Request) models.Metadata {
	return models.Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: middleware.GetRequestID(r),
	}
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, meta models.Metadata) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: meta,
	})
}

// respondError sends an error response. err, when set, is logged but
// never returned to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, status, &models.APIResponse{
		Status:   models.StatusError,
		Data:     nil,
		Metadata: metadata(r),
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondValidationError sends a 400 carrying the validator's field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondJSON(w, http.StatusBadRequest, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: metadata(r),
		Error: &models.APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}
