// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package services provides suture.Service wrappers for Basketwise components.

Each wrapper implements suture's Serve(ctx) error and fmt.Stringer:

  - HTTPServerService: runs an *http.Server, draining connections on shutdown
  - RefitService: loads the dataset and refits the engine on startup, on a
    ticker, and on demand; failed refits keep the previous model. Insights
    read the dataset stored in the published model, not the service.

Wiring in serve mode:

	refit := services.NewRefitService(source, engine, services.RefitServiceConfig{
	    FitOnStartup: cfg.Refit.OnStartup,
	    Interval:     cfg.Refit.Interval,
	}, logger)
	tree.AddModelService(refit)

	handler := api.NewHandler(engine, refit, version)
	server := &http.Server{Addr: cfg.Server.Addr(), Handler: api.NewRouter(handler, mw, logger).SetupChi()}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
*/
package services
