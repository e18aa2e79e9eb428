// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package middleware provides HTTP middleware for the Basketwise API.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and stores it in the logging context
  - PrometheusMetrics: request count and latency labelled by chi route pattern
  - AccessLog: one structured zerolog line per request

All middleware uses the func(http.Handler) http.Handler shape so it plugs
straight into chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(logger))
*/
package middleware
