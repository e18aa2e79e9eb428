// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/basketwise/internal/api"
	"github.com/tomtom215/basketwise/internal/logging"
	"github.com/tomtom215/basketwise/internal/metrics"
	"github.com/tomtom215/basketwise/internal/recommend"
	"github.com/tomtom215/basketwise/internal/supervisor"
	"github.com/tomtom215/basketwise/internal/supervisor/services"
)

func runServe(args []string, stderr io.Writer) error {
	fs := newFlagSet("serve", stderr)
	configPath := fs.String("config", "", "path to config file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}

	logging.Info().Str("version", version).Msg("Starting Basketwise with supervisor tree")
	logging.Info().
		Str("source", cfg.Data.Source).
		Str("addr", cfg.Server.Addr()).
		Dur("refit_interval", cfg.Refit.Interval).
		Msg("Configuration loaded")

	source, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	engine, err := recommend.NewEngine(cfg.EngineConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return err
	}
	engine.SetObserver(metrics.EngineObserver{})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		return err
	}

	refit := services.NewRefitService(source, engine, services.RefitServiceConfig{
		FitOnStartup: cfg.Refit.OnStartup,
		Interval:     cfg.Refit.Interval,
	}, logging.Logger())
	tree.AddModelService(refit)

	handler := api.NewHandler(engine, refit, version)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFrom(&cfg.Server), logging.WithComponent("api"))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
			serveErr = err
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Basketwise stopped gracefully")
	return serveErr
}
