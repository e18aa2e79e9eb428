// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared by the whole process. It validates
// purchase records as data sources load them, the loaded configuration, and
// HTTP path and query parameters.
//
// # Quick Start
//
//	if verr := validation.ValidateStruct(&record); verr != nil {
//	    return fmt.Errorf("invalid record: %w", verr)
//	}
//
//	if verr := validation.ValidateVar(topN, "top_n", "gte=1,lte=100"); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message)
//	    return
//	}
//
// # Custom Tags
//
//   - notblank: string must contain a non-whitespace character
//
// Field names in messages use the json tag, falling back to the koanf tag,
// so "customer_id must be greater than or equal to 1" matches the input key.
package validation
