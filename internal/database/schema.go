// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// tableCreationQueries creates the purchases table. Row IDs come from a
// sequence so LoadPurchases can return rows in insertion order.
var tableCreationQueries = []string{
	`CREATE SEQUENCE IF NOT EXISTS purchases_id_seq START 1`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id BIGINT PRIMARY KEY DEFAULT nextval('purchases_id_seq'),
		customer_id INTEGER NOT NULL,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		purchase_date DATE NOT NULL,
		imported_at TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_customer ON purchases(customer_id)`,
}

// createTables creates the schema if it does not exist.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}
