// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package recommend

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Scoring contains the signal fusion parameters.
	Scoring ScoringConfig `json:"scoring"`

	// ColdStartItems is returned, truncated to the requested length,
	// for customers absent from the fitted model.
	// Default: Milk, Bread, Eggs.
	ColdStartItems []string `json:"cold_start_items"`

	// RankCacheSize is the number of customer rankings memoized per model
	// snapshot. Zero disables the cache.
	// Default: 1024.
	RankCacheSize int `json:"rank_cache_size"`
}

// ScoringConfig contains the parameters of the three-signal score fusion.
type ScoringConfig struct {
	// DefaultTopN is the number of recommendations returned when the caller
	// does not ask for a specific count.
	// Default: 5.
	DefaultTopN int `json:"default_top_n"`

	// PeerCount is the number of most similar customers consulted by the
	// peer-customer signal.
	// Default: 3.
	PeerCount int `json:"peer_count"`

	// PatternMinCount is the exclusive lower bound on a pair's co-purchase
	// count; pairs at or below it are ignored.
	// Default: 2.
	PatternMinCount int `json:"pattern_min_count"`

	// PatternWeight scales a pair's co-purchase count into a score.
	// Default: 0.1.
	PatternWeight float64 `json:"pattern_weight"`
}

// DefaultConfig returns a Config with the engine's standard parameters.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			DefaultTopN:     5,
			PeerCount:       3,
			PatternMinCount: 2,
			PatternWeight:   0.1,
		},
		ColdStartItems: []string{"Milk", "Bread", "Eggs"},
		RankCacheSize:  1024,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Scoring.DefaultTopN < 1 {
		return fmt.Errorf("scoring.default_top_n must be at least 1, got %d", c.Scoring.DefaultTopN)
	}
	if c.Scoring.PeerCount < 0 {
		return fmt.Errorf("scoring.peer_count must be non-negative, got %d", c.Scoring.PeerCount)
	}
	if c.Scoring.PatternMinCount < 0 {
		return fmt.Errorf("scoring.pattern_min_count must be non-negative, got %d", c.Scoring.PatternMinCount)
	}
	if c.Scoring.PatternWeight < 0 {
		return fmt.Errorf("scoring.pattern_weight must be non-negative, got %f", c.Scoring.PatternWeight)
	}
	if c.RankCacheSize < 0 {
		return fmt.Errorf("rank_cache_size must be non-negative, got %d", c.RankCacheSize)
	}
	if len(c.ColdStartItems) == 0 {
		return fmt.Errorf("cold_start_items must not be empty")
	}
	for i, item := range c.ColdStartItems {
		if item == "" {
			return fmt.Errorf("cold_start_items[%d] must not be empty", i)
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.ColdStartItems = slices.Clone(c.ColdStartItems)
	return &clone
}

// String returns a JSON representation of the config for logging.
func (c *Config) String() string {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Sprintf("Config{error: %v}", err)
	}
	return string(data)
}
