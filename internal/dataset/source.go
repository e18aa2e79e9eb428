// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package dataset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/basketwise/internal/config"
	"github.com/tomtom215/basketwise/internal/metrics"
	"github.com/tomtom215/basketwise/internal/recommend"
	"github.com/tomtom215/basketwise/internal/validation"
)

// ErrUnknownSource is returned by NewSource for an unrecognized source kind.
var ErrUnknownSource = errors.New("unknown data source")

// DateLayout is the calendar date format used by file sources.
const DateLayout = "2006-01-02"

// Source produces the full purchase dataset the engine is fitted on.
type Source interface {
	// Load returns every purchase record. Implementations must not
	// return records that fail validation.
	Load(ctx context.Context) ([]recommend.PurchaseRecord, error)

	// Name identifies the source in logs and metrics.
	Name() string
}

// Store is the subset of the DuckDB store used as a data source.
type Store interface {
	Ping(ctx context.Context) error
	LoadPurchases(ctx context.Context) ([]recommend.PurchaseRecord, error)
}

// NewSource builds the source selected by cfg.Data.Source. store is only
// consulted for the duckdb source and may be nil otherwise.
func NewSource(cfg *config.Config, store Store) (Source, error) {
	switch cfg.Data.Source {
	case config.SourceSynthetic:
		return NewGenerator(GeneratorConfigFrom(&cfg.Data)), nil
	case config.SourceJSON:
		return &JSONFile{Path: cfg.Data.Path}, nil
	case config.SourceCSV:
		return &CSVFile{Path: cfg.Data.Path}, nil
	case config.SourceDuckDB:
		if store == nil {
			return nil, fmt.Errorf("duckdb source requires an open store")
		}
		return &storeSource{store: store}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Data.Source)
	}
}

type storeSource struct {
	store Store
}

func (s *storeSource) Name() string { return config.SourceDuckDB }

func (s *storeSource) Load(ctx context.Context) ([]recommend.PurchaseRecord, error) {
	if err := s.store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("store unreachable: %w", err)
	}
	records, err := s.store.LoadPurchases(ctx)
	if err != nil {
		return nil, err
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Load reads src, recording duration and size metrics and logging the outcome.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Load(ctx context.Context, src Source, logger zerolog.Logger) ([]recommend.PurchaseRecord, error) {
	start := time.Now()
	records, err := src.Load(ctx)
	duration := time.Since(start)

	metrics.RecordDatasetLoad(src.Name(), len(records), duration, err)
	if err != nil {
		logger.Error().Err(err).Str("source", src.Name()).Msg("dataset load failed")
		return nil, fmt.Errorf("load %s dataset: %w", src.Name(), err)
	}

	logger.Info().
		Str("source", src.Name()).
		Int("records", len(records)).
		Dur("duration", duration).
		Msg("dataset loaded")
	return records, nil
}

// Validate checks every record, reporting the first invalid one by position.
func Validate(records []recommend.PurchaseRecord) error {
	for i := range records {
		if verr := validation.ValidateStruct(&records[i]); verr != nil {
			return fmt.Errorf("record %d: %w", i+1, verr)
		}
	}
	return nil
}
