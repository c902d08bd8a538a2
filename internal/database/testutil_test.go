package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// setupTestDB creates an in-memory database and runs the real migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Enable foreign key constraints (required for CASCADE deletions)
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t))
}

func seedProject(t *testing.T, r *Repository, title string) int64 {
	t.Helper()
	project, err := r.CreateProject(context.Background(), models.Project{
		Title:     title,
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Failed to seed project: %v", err)
	}
	return project.ID
}

func seedTask(t *testing.T, r *Repository, projectID int64, parentID *int64, title string) int64 {
	t.Helper()
	id, err := r.CreateTask(context.Background(), projectID, parentID, models.TaskFields{Title: title})
	if err != nil {
		t.Fatalf("Failed to seed task: %v", err)
	}
	return id
}

func seedEmployee(t *testing.T, r *Repository, username string) {
	t.Helper()
	err := r.CreateEmployee(context.Background(), models.Employee{
		Username:     username,
		Name:         "Test " + username,
		Email:        username + "@plannex.test",
		Password:     "secret",
		WorkdayStart: "09:00",
		WorkdayEnd:   "17:00",
	})
	if err != nil {
		t.Fatalf("Failed to seed employee: %v", err)
	}
}
