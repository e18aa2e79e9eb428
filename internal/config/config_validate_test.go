// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "unknown source",
			mutate:  func(c *Config) { c.Data.Source = "parquet" },
			wantErr: "source must be one of",
		},
		{
			name:    "csv without path",
			mutate:  func(c *Config) { c.Data.Source = SourceCSV },
			wantErr: "DATA_PATH is required",
		},
		{
			name: "csv with path",
			mutate: func(c *Config) {
				c.Data.Source = SourceCSV
				c.Data.Path = "purchases.csv"
			},
		},
		{
			name: "duckdb in memory",
			mutate: func(c *Config) {
				c.Data.Source = SourceDuckDB
				c.Database.Path = ""
			},
			wantErr: "DUCKDB_PATH is required",
		},
		{
			name: "purchase range inverted",
			mutate: func(c *Config) {
				c.Data.MinPurchases = 30
				c.Data.MaxPurchases = 10
			},
			wantErr: "must not exceed",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: "not a valid level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "format must be one of",
		},
		{
			name:    "zero top_n",
			mutate:  func(c *Config) { c.Recommend.TopN = 0 },
			wantErr: "top_n must be greater than or equal to 1",
		},
		{
			name:    "empty cold start list",
			mutate:  func(c *Config) { c.Recommend.ColdStartItems = nil },
			wantErr: "cold_start_items",
		},
		{
			name:    "blank cold start item",
			mutate:  func(c *Config) { c.Recommend.ColdStartItems = []string{"Milk", " "} },
			wantErr: "must not be blank",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "port must be less than or equal to 65535",
		},
		{
			name:    "negative refit interval",
			mutate:  func(c *Config) { c.Refit.Interval = -1 },
			wantErr: "interval",
		},
		{
			name:   "refit disabled",
			mutate: func(c *Config) { c.Refit.Interval = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestEngineConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Recommend.TopN = 7
	cfg.Recommend.ColdStartItems = []string{"Rice"}

	engineCfg := cfg.EngineConfig()
	if engineCfg.Scoring.DefaultTopN != 7 {
		t.Errorf("DefaultTopN = %d, want 7", engineCfg.Scoring.DefaultTopN)
	}
	if err := engineCfg.Validate(); err != nil {
		t.Errorf("engine config should validate: %v", err)
	}

	engineCfg.ColdStartItems[0] = "Pasta"
	if cfg.Recommend.ColdStartItems[0] != "Rice" {
		t.Error("EngineConfig() must copy the cold start list")
	}
}
