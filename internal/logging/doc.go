// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

// Package logging provides zerolog-based structured logging for Basketwise.
//
// # Overview
//
// The package provides:
//   - A process-wide zerolog logger configured once from main
//   - JSON output for services, console output for the interactive menu
//   - Request ID propagation through context.Context
//   - An slog adapter so sutureslog can report supervisor events
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("records", n).Msg("dataset loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("refit skipped")
//
// Components take a child logger so every line carries its origin:
//
//	logger := logging.WithComponent("refit")
//
// # Configuration
//
// Environment variables, read by the config package:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file and line (default: false)
//
// # Thread Safety
//
// The global logger is guarded by a RWMutex; Init may be called again at any
// time to reconfigure it.
package logging
