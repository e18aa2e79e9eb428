// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/tomtom215/basketwise/internal/middleware"
)

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	logger        zerolog.Logger
}

// NewRouter creates a router. A nil mwConfig uses DefaultChiMiddlewareConfig.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRouter(handler *Handler, mwConfig *ChiMiddlewareConfig, logger zerolog.Logger) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
		logger:        logger,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.AccessLog(router.logger))

	r.NotFound(router.handler.NotFound)
	r.MethodNotAllowed(router.handler.MethodNotAllowed)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)

		// Health stays outside the rate limiter so monitoring is never throttled.
		r.Get("/health", router.handler.Health)

		r.Group(func(r chi.Router) {
			r.Use(router.chiMiddleware.RateLimit())

			r.Get("/customers/{id}/recommendations", router.handler.Recommendations)
			r.Get("/customers/{id}/insights", router.handler.Insights)
			r.Post("/model/refit", router.handler.Refit)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
