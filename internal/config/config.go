// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package config

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"time"

	"github.com/tomtom215/basketwise/internal/recommend"
)

// Data source kinds accepted by DataConfig.Source.
const (
	SourceSynthetic = "synthetic"
	SourceJSON      = "json"
	SourceCSV       = "csv"
	SourceDuckDB    = "duckdb"
)

// Config holds all application configuration.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	Data      DataConfig      `koanf:"data"`
	Database  DatabaseConfig  `koanf:"database"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Refit     RefitConfig     `koanf:"refit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"required"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// DataConfig selects where purchase records come from.
type DataConfig struct {
	// Source is one of synthetic, json, csv, duckdb.
	// Default: synthetic
	Source string `koanf:"source" validate:"oneof=synthetic json csv duckdb"`

	// Path is the input file for the json and csv sources.
	Path string `koanf:"path"`

	// Seed makes the synthetic generator reproducible.
	// Default: 42
	Seed int64 `koanf:"seed"`

	// Customers is the number of synthetic customers.
	// Default: 50
	Customers int `koanf:"customers" validate:"gte=1"`

	// Days is the synthetic history window ending at the reference date.
	// Default: 90
	Days int `koanf:"days" validate:"gte=1"`

	// MinPurchases and MaxPurchases bound the synthetic records per customer.
	// Default: 5 and 20
	MinPurchases int `koanf:"min_purchases" validate:"gte=1"`
	MaxPurchases int `koanf:"max_purchases" validate:"gte=1"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the DuckDB file. Empty opens an in-memory database.
	// Default: basketwise.duckdb
	Path string `koanf:"path"`

	// MaxMemory caps DuckDB's memory use, e.g. "512MB".
	MaxMemory string `koanf:"max_memory"`

	// Threads limits DuckDB worker threads. 0 lets DuckDB decide.
	Threads int `koanf:"threads" validate:"gte=0"`
}

// RecommendConfig holds scoring parameters for the engine.
type RecommendConfig struct {
	// TopN is the default number of recommendations.
	// Default: 5
	TopN int `koanf:"top_n" validate:"gte=1"`

	// PeerCount is the number of similar customers consulted.
	// Default: 3
	PeerCount int `koanf:"peer_count" validate:"gte=0"`

	// PatternMinCount is the co-purchase count a pair must exceed.
	// Default: 2
	PatternMinCount int `koanf:"pattern_min_count" validate:"gte=0"`

	// PatternWeight scales co-purchase counts into scores.
	// Default: 0.1
	PatternWeight float64 `koanf:"pattern_weight" validate:"gte=0"`

	// ColdStartItems is served to customers with no history.
	// Default: [Milk, Bread, Eggs]
	ColdStartItems []string `koanf:"cold_start_items" validate:"min=1,dive,notblank"`

	// RankCacheSize is the number of customer rankings memoized per fitted
	// model. 0 disables the cache.
	// Default: 1024
	RankCacheSize int `koanf:"rank_cache_size" validate:"gte=0"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	// Host is the bind address.
	// Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port.
	// Default: 8080
	Port int `koanf:"port" validate:"gte=1,lte=65535"`

	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	// RateLimitReqs requests per RateLimitWindow are allowed per client IP.
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"gt=0"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// CORSOrigins lists allowed origins.
	// Default: ["*"]
	CORSOrigins []string `koanf:"cors_origins"`
}

// Addr returns the host:port listen address.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// RefitConfig controls periodic model rebuilding in serve mode.
type RefitConfig struct {
	// Interval between refits. Zero disables periodic refits.
	// Default: 1h
	Interval time.Duration `koanf:"interval" validate:"gte=0"`

	// OnStartup fits the model before the HTTP server accepts queries.
	// Default: true
	OnStartup bool `koanf:"on_startup"`
}

// EngineConfig converts the recommend section into an engine configuration.
func (c *Config) EngineConfig() *recommend.Config {
	return &recommend.Config{
		Scoring: recommend.ScoringConfig{
			DefaultTopN:     c.Recommend.TopN,
			PeerCount:       c.Recommend.PeerCount,
			PatternMinCount: c.Recommend.PatternMinCount,
			PatternWeight:   c.Recommend.PatternWeight,
		},
		ColdStartItems: slices.Clone(c.Recommend.ColdStartItems),
		RankCacheSize:  c.Recommend.RankCacheSize,
	}
}

// String returns a one-line summary for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("source=%s addr=%s refit=%s top_n=%d",
		c.Data.Source, c.Server.Addr(), c.Refit.Interval, c.Recommend.TopN)
}
