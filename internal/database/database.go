// Basketwise - Purchase History Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/basketwise

package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/basketwise/internal/config"
	"github.com/tomtom215/basketwise/internal/logging"
)

// memoryPath opens a private in-memory database.
const memoryPath = ":memory:"

// DB wraps the DuckDB connection and provides purchase storage.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens the database at cfg.Path and creates the schema.
// An empty path opens an in-memory database.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	path := cfg.Path
	if path == "" {
		path = memoryPath
	}

	// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
	if path != memoryPath {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	conn, err := sql.Open("duckdb", connectionString(path, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}
	db.configureConnectionPool()

	if err := db.createTables(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Debug().Str("path", path).Msg("DuckDB opened")
	return db, nil
}

// connectionString appends tuning options to path. Extension auto-install
// stays off so startup never reaches the network.
func connectionString(path string, cfg *config.DatabaseConfig) string {
	opts := []string{
		"autoinstall_known_extensions=false",
		"autoload_known_extensions=false",
	}
	if cfg.Threads > 0 {
		opts = append(opts, fmt.Sprintf("threads=%d", cfg.Threads))
	}
	if cfg.MaxMemory != "" {
		opts = append(opts, "max_memory="+cfg.MaxMemory)
	}
	return path + "?" + strings.Join(opts, "&")
}

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// Path returns the configured database path.
func (db *DB) Path() string {
	return db.cfg.Path
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Checkpoint forces a WAL checkpoint
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// Close checkpoints file-backed databases and closes the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	if db.cfg.Path != "" && db.cfg.Path != memoryPath {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := db.Checkpoint(ctx); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}

	return db.conn.Close()
}

// ensureContext creates a context with 30-second timeout if none provided
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), 30*time.Second)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, 30*time.Second)
	}
	return ctx, func() {}
}

// closeQuietly closes a resource when the error cannot be acted upon.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close() // Explicitly ignore error - cleanup is best-effort
	}
}
