// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) the database at dbPath, applies the pragmas the
// engine depends on, and runs migrations. Foreign keys MUST be on: cascade
// deletion and referential integrity are enforced by the schema, not in Go.
func Open(ctx context.Context, dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			slog.Error("failed to apply pragma", "pragma", pragma, "error", err)
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing db", "error", closeErr)
			}
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// SQLite benefits from a single writer connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := runMigrations(ctx, db); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing db", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
