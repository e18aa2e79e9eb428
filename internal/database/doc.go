// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package database persists purchase records in DuckDB.

The store holds a single purchases table. It is both an import target
(InsertPurchases, ImportCSV) and a data source for the recommendation
engine (LoadPurchases, which returns rows in insertion order so fitted
models are reproducible).

Every query records duration and errors through the metrics package
under an operation label:

	insert_purchases, load_purchases, count_purchases,
	delete_purchases, import_csv

An empty path opens an in-memory database, which the tests use.
*/
package database
