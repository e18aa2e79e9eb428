// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/basketwise/internal/dataset"
	"github.com/tomtom215/basketwise/internal/recommend"
)

// ModelFitter fits a model from a full dataset. Satisfied by *recommend.Engine.
type ModelFitter interface {
	Fit(ctx context.Context, records []recommend.PurchaseRecord) error
}

// RefitServiceConfig holds configuration for the refit service.
type RefitServiceConfig struct {
	// FitOnStartup fits once as soon as the service starts.
	FitOnStartup bool

	// Interval between scheduled refits. Zero disables them.
	Interval time.Duration

	// Timeout bounds a single load-and-fit cycle.
	// Default: 5m
	Timeout time.Duration
}

// RefitService reloads the dataset from its source and refits the engine,
// on startup, on a schedule, and on demand through Refit. The fitted
// dataset travels inside the published model, so nothing is stored here.
type RefitService struct {
	source dataset.Source
	engine ModelFitter
	config RefitServiceConfig
	logger zerolog.Logger
	name   string
	mu     sync.Mutex
}

// NewRefitService creates a new refit service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRefitService(source dataset.Source, engine ModelFitter, cfg RefitServiceConfig, logger zerolog.Logger) *RefitService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &RefitService{
		source: source,
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "refit").Logger(),
		name:   "refit-service",
	}
}

// Serve implements suture.Service. Failed refits are logged and retried on
// the next tick; they never stop the service.
func (s *RefitService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("source", s.source.Name()).
		Bool("fit_on_startup", s.config.FitOnStartup).
		Dur("interval", s.config.Interval).
		Msg("refit service starting")

	if s.config.FitOnStartup {
		if err := s.Refit(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial fit failed (will retry on schedule)")
		}
	}

	if s.config.Interval <= 0 {
		<-ctx.Done()
		s.logger.Info().Msg("refit service shutting down")
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("refit service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.logger.Debug().Msg("scheduled refit triggered")
			if err := s.Refit(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled refit failed")
			}
		}
	}
}

// Refit loads the full dataset and fits the engine. Concurrent calls are
// serialized. On failure the previous model stays published.
func (s *RefitService) Refit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fitCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	start := time.Now()
	records, err := dataset.Load(fitCtx, s.source, s.logger)
	if err != nil {
		return err
	}

	if err := s.engine.Fit(fitCtx, records); err != nil {
		return fmt.Errorf("fit %s dataset: %w", s.source.Name(), err)
	}

	s.logger.Info().
		Int("records", len(records)).
		Dur("duration", time.Since(start)).
		Msg("refit complete")
	return nil
}

// String returns the service name for logging.
func (s *RefitService) String() string {
	return s.name
}
