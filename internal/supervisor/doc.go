// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package supervisor runs long-lived server components under a suture v4
supervisor tree.

	basketwise (root)
	├── model-layer   RefitService
	└── api-layer     HTTPServerService

Each layer restarts its own failed services with exponential backoff, so
a refit loop that keeps crashing never interrupts the HTTP server. Suture
events are logged through sutureslog into the zerolog-backed slog handler
from the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddModelService(refit)
	tree.AddAPIService(httpSvc)
	return tree.Serve(ctx)
*/
package supervisor
