// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package api exposes the recommendation engine over HTTP using chi.

Routes:

	GET  /api/v1/health                              model status
	GET  /api/v1/customers/{id}/recommendations      ?top_n=1..100
	GET  /api/v1/customers/{id}/insights             404 CUSTOMER_NOT_FOUND if unknown
	POST /api/v1/model/refit                         reload data source and refit
	GET  /metrics                                    Prometheus exposition

Every JSON response uses the models.APIResponse envelope. Customer IDs are
validated here, before they reach the engine: non-numeric or non-positive
IDs answer 400 VALIDATION_ERROR.

Middleware order: request ID, real IP, panic recovery, CORS, access log,
then per-route security headers, Prometheus metrics, and httprate limiting
(health is never rate limited).
*/
package api
