// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

// Package models defines the JSON shapes returned by the HTTP API.
//
// Every endpoint wraps its payload in APIResponse so clients can read
// status, metadata, and errors the same way regardless of route.
package models
