// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package cache provides a generic, thread-safe LRU cache with optional TTL.

The recommendation engine keeps one cache per fitted model snapshot for
customer rankings. A refit publishes a new snapshot with an empty cache, so
entries never need explicit invalidation.

Usage:

	rankings := cache.NewLRU[int, []recommend.Recommendation](1024, 0)
	ranked := rankings.GetOrAdd(customerID, func() []recommend.Recommendation {
	    return score(customerID)
	})
*/
package cache
