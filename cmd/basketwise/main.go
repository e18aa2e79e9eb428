// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

// Package main is the entry point for the basketwise command.
//
// Basketwise recommends grocery products to customers from their purchase
// history. It fuses three signals: item-to-item cosine similarity, purchases
// of similar customers, and products frequently bought together on the same
// day. Customers without history receive a fixed cold-start list.
//
// # Commands
//
//	basketwise [menu]   Interactive text menu over a fitted model (default)
//	basketwise serve    Supervised HTTP API with periodic refits
//	basketwise generate Write a synthetic dataset to JSON or CSV
//	basketwise import   Load a CSV file into the DuckDB purchase store
//
// Every command accepts -config to point at a YAML file.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (DATA_SOURCE, HTTP_PORT, REFIT_INTERVAL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// serve handles graceful shutdown on SIGINT and SIGTERM:
//  1. Cancel the root context
//  2. The supervisor tree stops the HTTP server, draining open requests
//  3. The refit loop stops after the current fit
//  4. The DuckDB store is checkpointed and closed
//
// # Example Usage
//
//	# Explore recommendations on synthetic data
//	basketwise
//
//	# Serve the API from a DuckDB store, refitting every 30 minutes
//	basketwise import -csv purchases.csv -db data/basketwise.duckdb
//	DATA_SOURCE=duckdb DUCKDB_PATH=data/basketwise.duckdb REFIT_INTERVAL=30m basketwise serve
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tomtom215/basketwise/internal/config"
	"github.com/tomtom215/basketwise/internal/database"
	"github.com/tomtom215/basketwise/internal/dataset"
	"github.com/tomtom215/basketwise/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const usage = `Usage: basketwise <command> [flags]

Commands:
  menu      interactive recommendations menu (default)
  serve     run the HTTP API with periodic refits
  generate  write a synthetic dataset (-out file.json|file.csv)
  import    load a CSV file into DuckDB (-csv file)

Run "basketwise <command> -h" for command flags.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := "menu"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "menu":
		err = runMenu(args, stdin, stdout, stderr)
	case "serve":
		err = runServe(args, stderr)
	case "generate":
		err = runGenerate(args, stdout, stderr)
	case "import":
		err = runImport(args, stdout, stderr)
	case "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", cmd, usage)
		return 2
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		return 2
	default:
		fmt.Fprintf(stderr, "basketwise %s: %v\n", cmd, err)
		return 1
	}
}

// errUsage reports a flag error the flag set has already printed.
var errUsage = errors.New("usage error")

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return errUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return errUsage
	}
	return nil
}

// loadConfig loads configuration and initializes logging to stderr.
func loadConfig(path string, stderr io.Writer) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    stderr,
	})
	return cfg, nil
}

// openSource builds the configured data source. For the duckdb source it
// opens the store; the returned close function releases it.
func openSource(cfg *config.Config) (dataset.Source, func(), error) {
	noop := func() {}
	if cfg.Data.Source != config.SourceDuckDB {
		source, err := dataset.NewSource(cfg, nil)
		return source, noop, err
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, noop, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}

	source, err := dataset.NewSource(cfg, db)
	if err != nil {
		closeDB()
		return nil, noop, err
	}
	return source, closeDB, nil
}
