// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomtom215/basketwise/internal/database"
	"github.com/tomtom215/basketwise/internal/dataset"
	"github.com/tomtom215/basketwise/internal/logging"
	"github.com/tomtom215/basketwise/internal/recommend"
)

func runGenerate(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("generate", stderr)
	configPath := fs.String("config", "", "path to config file")
	out := fs.String("out", "", "output file (.json or .csv), or - for JSON on stdout")
	seed := fs.Int64("seed", 0, "random seed (overrides data.seed)")
	customers := fs.Int("customers", 0, "number of customers (overrides data.customers)")
	days := fs.Int("days", 0, "history window in days (overrides data.days)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *out == "" {
		fmt.Fprintln(stderr, "generate: -out is required")
		fs.Usage()
		return errUsage
	}

	cfg, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}

	genCfg := dataset.GeneratorConfigFrom(&cfg.Data)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			genCfg.Seed = *seed
		case "customers":
			genCfg.Customers = *customers
		case "days":
			genCfg.Days = *days
		}
	})
	records := dataset.NewGenerator(genCfg).Generate()

	if *out == "-" {
		return dataset.WriteJSON(stdout, records)
	}
	if err := writeDataset(*out, records); err != nil {
		return err
	}

	logging.Info().
		Str("path", *out).
		Int("records", len(records)).
		Int64("seed", genCfg.Seed).
		Msg("Synthetic dataset written")
	fmt.Fprintf(stdout, "Wrote %d purchase records to %s\n", len(records), *out)
	return nil
}

// writeDataset writes records in the format implied by the file extension.
func writeDataset(path string, records []recommend.PurchaseRecord) (err error) {
	var write func(io.Writer, []recommend.PurchaseRecord) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		write = dataset.WriteJSON
	case ".csv":
		write = dataset.WriteCSV
	default:
		return fmt.Errorf("unsupported output extension %q (want .json or .csv)", ext)
	}

	f, err := os.Create(path) //nolint:gosec // path is an operator-supplied CLI flag
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f, records)
}

func runImport(args []string, stdout, stderr io.Writer) error {
	fs := newFlagSet("import", stderr)
	configPath := fs.String("config", "", "path to config file")
	csvPath := fs.String("csv", "", "CSV file with customer_id,product_name,category,quantity,purchase_date")
	dbPath := fs.String("db", "", "DuckDB file (overrides database.path)")
	replace := fs.Bool("replace", false, "delete existing purchases before importing")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *csvPath == "" {
		fmt.Fprintln(stderr, "import: -csv is required")
		fs.Usage()
		return errUsage
	}

	cfg, err := loadConfig(*configPath, stderr)
	if err != nil {
		return err
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx := context.Background()
	if *replace {
		deleted, err := db.DeletePurchases(ctx)
		if err != nil {
			return err
		}
		logging.Info().Int64("deleted", deleted).Msg("Existing purchases removed")
	}

	imported, err := db.ImportCSV(ctx, *csvPath)
	if err != nil {
		return err
	}
	total, err := db.CountPurchases(ctx)
	if err != nil {
		return err
	}
	logging.Info().
		Str("csv", *csvPath).
		Str("db", db.Path()).
		Int64("imported", imported).
		Int64("total", total).
		Msg("CSV import complete")
	fmt.Fprintf(stdout, "Imported %d purchase records (%d stored)\n", imported, total)
	return nil
}
