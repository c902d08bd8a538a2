package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// mapConstraintErr translates SQLite constraint violations into domain error
// kinds. Unique and foreign-key constraints are the race-closing mechanism:
// a concurrent caller can invalidate a prior existence check, and the
// constraint violation is what actually surfaces it.
func mapConstraintErr(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", models.ErrAlreadyExists, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	}
	return err
}

// storeTime normalizes timestamps before they hit the store so that
// exact-match deletes compare equal after a round trip.
func storeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

// nullTimeToTime converts sql.NullTime to time.Time.
// Returns zero time if the value is not valid.
func nullTimeToTime(nt sql.NullTime) time.Time {
	if nt.Valid {
		return nt.Time
	}
	return time.Time{}
}

// nullStringToString converts sql.NullString to string.
// Returns empty string if the value is not valid.
func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// nullInt64ToPtr converts sql.NullInt64 to *int64.
// Returns nil if the value is not valid.
func nullInt64ToPtr(nv sql.NullInt64) *int64 {
	if nv.Valid {
		val := nv.Int64
		return &val
	}
	return nil
}
