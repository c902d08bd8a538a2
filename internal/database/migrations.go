package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema. Every foreign key cascades on
// delete, so removing a project takes its tasks, and removing a task takes
// its subtasks, dependency edges, assignments, contributions and artifacts.
func runMigrations(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			start_date TIMESTAMP,
			end_date TIMESTAMP
		)`,

		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			parent_id INTEGER,
			title TEXT NOT NULL,
			description TEXT,
			start_date TIMESTAMP,
			end_date TIMESTAMP,
			duration_hours REAL NOT NULL DEFAULT 0,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE,
			FOREIGN KEY (parent_id) REFERENCES tasks(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_id)`,

		`CREATE TABLE IF NOT EXISTS employees (
			username TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			workday_start TEXT NOT NULL DEFAULT '09:00',
			workday_end TEXT NOT NULL DEFAULT '17:00'
		)`,

		`CREATE TABLE IF NOT EXISTS dependencies (
			task_id INTEGER NOT NULL,
			must_follow_id INTEGER NOT NULL,
			UNIQUE (task_id, must_follow_id),
			FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE,
			FOREIGN KEY (must_follow_id) REFERENCES tasks(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS assignments (
			task_id INTEGER NOT NULL,
			username TEXT NOT NULL,
			UNIQUE (task_id, username),
			FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE,
			FOREIGN KEY (username) REFERENCES employees(username) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS contributions (
			task_id INTEGER NOT NULL,
			username TEXT NOT NULL,
			hours REAL NOT NULL,
			recorded_at TIMESTAMP NOT NULL,
			FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE,
			FOREIGN KEY (username) REFERENCES employees(username) ON DELETE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contributions_task ON contributions(task_id)`,

		`CREATE TABLE IF NOT EXISTS artifacts (
			id TEXT PRIMARY KEY,
			task_id INTEGER NOT NULL,
			username TEXT NOT NULL,
			path TEXT NOT NULL,
			FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE,
			FOREIGN KEY (username) REFERENCES employees(username) ON DELETE CASCADE
		)`,

		`CREATE TABLE IF NOT EXISTS skills (
			title TEXT PRIMARY KEY
		)`,

		`CREATE TABLE IF NOT EXISTS employee_skills (
			username TEXT NOT NULL,
			skill_title TEXT NOT NULL,
			level TEXT NOT NULL,
			UNIQUE (username, skill_title, level),
			FOREIGN KEY (username) REFERENCES employees(username) ON DELETE CASCADE,
			FOREIGN KEY (skill_title) REFERENCES skills(title) ON DELETE CASCADE
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	return nil
}
