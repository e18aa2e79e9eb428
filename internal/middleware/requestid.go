// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/basketwise/internal/logging"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds IDs accepted from upstream proxies.
const maxRequestIDLength = 128

// RequestID assigns every request an ID, reusing a well-formed upstream
// X-Request-ID, and stores it in the logging context and response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set(RequestIDHeader, requestID)
		ctx := logging.ContextWithRequestID(r.Context(), requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from the request context.
func GetRequestID(r *http.Request) string {
	return logging.RequestIDFromContext(r.Context())
}

// AccessLog writes one structured log line per request. It also stores
// logger in the request context, where logging.Ctx picks it up.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func AccessLog(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapper, r.WithContext(logging.ContextWithLogger(r.Context(), logger)))

			event := logger.Debug()
			if wrapper.statusCode >= http.StatusInternalServerError {
				event = logger.Warn()
			}
			event.
				Str("request_id", GetRequestID(r)).
				Str("method", r.Method).
				Str("route", RoutePattern(r)).
				Int("status", wrapper.statusCode).
				Dur("duration", time.Since(start)).
				Msg("http request")
		})
	}
}
