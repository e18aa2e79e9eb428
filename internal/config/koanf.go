// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config files searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/basketwise/config.yaml",
	"/etc/basketwise/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns the built-in defaults, applied before file and env.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Data: DataConfig{
			Source:       SourceSynthetic,
			Seed:         42,
			Customers:    50,
			Days:         90,
			MinPurchases: 5,
			MaxPurchases: 20,
		},
		Database: DatabaseConfig{
			Path: "basketwise.duckdb",
		},
		Recommend: RecommendConfig{
			TopN:            5,
			PeerCount:       3,
			PatternMinCount: 2,
			PatternWeight:   0.1,
			ColdStartItems:  []string{"Milk", "Bread", "Eggs"},
			RankCacheSize:   1024,
		},
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Refit: RefitConfig{
			Interval:  time.Hour,
			OnStartup: true,
		},
	}
}

// Default returns the built-in configuration without reading file or env.
func Default() *Config {
	return defaultConfig()
}

// Load reads configuration in layers, later layers overriding earlier ones:
//  1. Built-in defaults
//  2. YAML file at path, or the first of CONFIG_PATH and DefaultConfigPaths found
//  3. Environment variables
//
// The result is validated before it is returned.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"recommend.cold_start_items",
	"server.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	"data_source":        "data.source",
	"data_path":          "data.path",
	"data_seed":          "data.seed",
	"data_customers":     "data.customers",
	"data_days":          "data.days",
	"data_min_purchases": "data.min_purchases",
	"data_max_purchases": "data.max_purchases",

	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	"recommend_top_n":             "recommend.top_n",
	"recommend_peer_count":        "recommend.peer_count",
	"recommend_pattern_min_count": "recommend.pattern_min_count",
	"recommend_pattern_weight":    "recommend.pattern_weight",
	"recommend_cold_start_items":  "recommend.cold_start_items",
	"recommend_rank_cache_size":   "recommend.rank_cache_size",

	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"rate_limit_requests":   "server.rate_limit_reqs",
	"rate_limit_window":     "server.rate_limit_window",
	"disable_rate_limit":    "server.rate_limit_disabled",
	"cors_origins":          "server.cors_origins",

	"refit_interval":   "refit.interval",
	"refit_on_startup": "refit.on_startup",
}

// envTransformFunc maps an environment variable to its koanf path.
//
// Examples:
//   - LOG_LEVEL -> logging.level
//   - DATA_SOURCE -> data.source
//   - HTTP_PORT -> server.port
//   - REFIT_INTERVAL -> refit.interval
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
