// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package config provides layered configuration for Basketwise.

Configuration is loaded with Koanf v2 from, in increasing priority:

  - Built-in defaults
  - A YAML file (CONFIG_PATH, config.yaml, or /etc/basketwise/config.yaml)
  - Environment variables

# Sections

  - logging: level, format, caller
  - data: purchase source (synthetic, json, csv, duckdb) and generator settings
  - database: DuckDB file and resource limits
  - recommend: scoring parameters and the cold-start list
  - server: HTTP listen address, timeouts, rate limit, CORS
  - refit: periodic model rebuild in serve mode

# Environment Variables

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller (default: false)

Data:
  - DATA_SOURCE: synthetic, json, csv, duckdb (default: synthetic)
  - DATA_PATH: input file for json and csv
  - DATA_SEED, DATA_CUSTOMERS, DATA_DAYS: generator settings (42, 50, 90)
  - DATA_MIN_PURCHASES, DATA_MAX_PURCHASES: per-customer range (5, 20)

Database:
  - DUCKDB_PATH: database file (default: basketwise.duckdb)
  - DUCKDB_MAX_MEMORY, DUCKDB_THREADS: resource limits

Recommendations:
  - RECOMMEND_TOP_N (5), RECOMMEND_PEER_COUNT (3)
  - RECOMMEND_PATTERN_MIN_COUNT (2), RECOMMEND_PATTERN_WEIGHT (0.1)
  - RECOMMEND_COLD_START_ITEMS: comma-separated (Milk,Bread,Eggs)

Server:
  - HTTP_HOST (0.0.0.0), HTTP_PORT (8080)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT
  - RATE_LIMIT_REQUESTS (100), RATE_LIMIT_WINDOW (1m), DISABLE_RATE_LIMIT
  - CORS_ORIGINS: comma-separated (*)

Refit:
  - REFIT_INTERVAL: duration, 0 disables (default: 1h)
  - REFIT_ON_STARTUP (default: true)

# Usage

	cfg, err := config.Load("")
	if err != nil {
	    return err
	}
	engine, err := recommend.NewEngine(cfg.EngineConfig(), logger)
*/
package config
