// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package config

import (
	"fmt"

	"github.com/tomtom215/basketwise/internal/logging"
	"github.com/tomtom215/basketwise/internal/validation"
)

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateData()
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateData() error {
	switch c.Data.Source {
	case SourceJSON, SourceCSV:
		if c.Data.Path == "" {
			return fmt.Errorf("DATA_PATH is required when DATA_SOURCE=%s", c.Data.Source)
		}
	case SourceDuckDB:
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DATA_SOURCE=duckdb")
		}
	}

	if c.Data.MinPurchases > c.Data.MaxPurchases {
		return fmt.Errorf("DATA_MIN_PURCHASES (%d) must not exceed DATA_MAX_PURCHASES (%d)",
			c.Data.MinPurchases, c.Data.MaxPurchases)
	}
	return nil
}
