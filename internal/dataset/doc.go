// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

/*
Package dataset supplies purchase history to the recommendation engine.

A Source returns the complete, validated dataset in one call. Sources:

  - Generator: reproducible synthetic data over a fixed ten-product catalog
  - JSONFile: a JSON array of records with calendar-day dates
  - CSVFile: a headered CSV file (customer_id,product_name,category,quantity,purchase_date)
  - the DuckDB store, selected with source "duckdb"

NewSource picks one from configuration; Load wraps any source with
metrics and logging. WriteJSON and WriteCSV produce files the file
sources read back unchanged.
*/
package dataset
