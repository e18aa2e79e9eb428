// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/basketwise/internal/logging"
	"github.com/tomtom215/basketwise/internal/metrics"
	"github.com/tomtom215/basketwise/internal/recommend"
)

// InsertPurchases appends records in one transaction. Either every record
// is stored or none is.
func (db *DB) InsertPurchases(ctx context.Context, records []recommend.PurchaseRecord) (inserted int, err error) {
	if len(records) == 0 {
		return 0, nil
	}

	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert_purchases", time.Since(start), err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Msg("Transaction rollback failed")
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO purchases
		(customer_id, product_name, category, quantity, purchase_date)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeQuietly(stmt)

	for i := range records {
		r := &records[i]
		if _, err = stmt.ExecContext(ctx,
			r.CustomerID, r.ProductName, r.Category, r.Quantity, recommend.Date(r.PurchaseDate),
		); err != nil {
			return 0, fmt.Errorf("failed to insert record %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logging.Debug().Int("inserted", len(records)).Msg("Purchase batch committed")
	return len(records), nil
}

// LoadPurchases returns every stored purchase in insertion order.
func (db *DB) LoadPurchases(ctx context.Context) (records []recommend.PurchaseRecord, err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("load_purchases", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT customer_id, product_name, category, quantity, purchase_date
		FROM purchases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var r recommend.PurchaseRecord
		if err = rows.Scan(&r.CustomerID, &r.ProductName, &r.Category, &r.Quantity, &r.PurchaseDate); err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		r.PurchaseDate = recommend.Date(r.PurchaseDate)
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate purchases: %w", err)
	}
	return records, nil
}

// CountPurchases returns the number of stored purchases.
func (db *DB) CountPurchases(ctx context.Context) (count int64, err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("count_purchases", time.Since(start), err) }()

	err = db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM purchases").Scan(&count)
	return count, err
}

// DeletePurchases removes every stored purchase.
func (db *DB) DeletePurchases(ctx context.Context) (deleted int64, err error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	start := time.Now()
	defer func() { metrics.RecordDBQuery("delete_purchases", time.Since(start), err) }()

	result, err := db.conn.ExecContext(ctx, "DELETE FROM purchases")
	if err != nil {
		return 0, fmt.Errorf("failed to delete purchases: %w", err)
	}
	return result.RowsAffected()
}

// invalidImportRows counts staged rows the engine would reject.
const invalidImportRows = `SELECT COUNT(*) FROM purchase_import
	WHERE customer_id IS NULL OR customer_id < 1
	   OR quantity IS NULL OR quantity < 1
	   OR product_name IS NULL OR trim(product_name) = ''
	   OR category IS NULL OR trim(category) = ''
	   OR purchase_date IS NULL`

// ImportCSV bulk-loads a headered purchases CSV using DuckDB's reader.
// Rows are staged and checked first; a file with any invalid row imports
// nothing.
func (db *DB) ImportCSV(ctx context.Context, path string) (imported int64, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("import_csv", time.Since(start), err) }()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logging.Error().Err(rbErr).AnErr("original_error", err).Msg("Transaction rollback failed")
			}
		}
	}()

	stage := fmt.Sprintf(`CREATE OR REPLACE TEMP TABLE purchase_import AS
		SELECT
			TRY_CAST(customer_id AS INTEGER) AS customer_id,
			trim(product_name) AS product_name,
			trim(category) AS category,
			TRY_CAST(quantity AS INTEGER) AS quantity,
			TRY_CAST(purchase_date AS DATE) AS purchase_date
		FROM read_csv_auto(%s, header = true, all_varchar = true)`, quoteLiteral(path))
	if _, err = tx.ExecContext(ctx, stage); err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var invalid int64
	if err = tx.QueryRowContext(ctx, invalidImportRows).Scan(&invalid); err != nil {
		return 0, fmt.Errorf("failed to check staged rows: %w", err)
	}
	if invalid > 0 {
		err = fmt.Errorf("%s: %d invalid rows", path, invalid)
		return 0, err
	}

	result, err := tx.ExecContext(ctx, `INSERT INTO purchases
		(customer_id, product_name, category, quantity, purchase_date)
		SELECT customer_id, product_name, category, quantity, purchase_date
		FROM purchase_import ORDER BY rowid`)
	if err != nil {
		return 0, fmt.Errorf("failed to insert staged rows: %w", err)
	}
	if imported, err = result.RowsAffected(); err != nil {
		return 0, err
	}

	if _, err = tx.ExecContext(ctx, "DROP TABLE purchase_import"); err != nil {
		return 0, fmt.Errorf("failed to drop staging table: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logging.Info().Str("path", path).Int64("imported", imported).Msg("CSV imported")
	return imported, nil
}

// quoteLiteral renders s as a SQL string literal. DuckDB table functions
// take the file path as a constant, not a bind parameter.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
