package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

// CreateProject inserts a new project and returns it with its assigned id.
func (r *ProjectRepo) CreateProject(ctx context.Context, fields models.Project) (*models.Project, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (title, description, start_date, end_date)
		 VALUES (?, ?, ?, ?)`,
		fields.Title, fields.Description, storeTime(fields.StartDate), storeTime(fields.EndDate),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project '%s': %w", fields.Title, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get project ID after insert: %w", err)
	}

	return r.GetProjectByID(ctx, id)
}

// GetProjectByID retrieves a single project.
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	project := &models.Project{}
	var description sql.NullString
	var start, end sql.NullTime

	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, description, start_date, end_date
		 FROM projects WHERE id = ?`,
		id,
	).Scan(&project.ID, &project.Title, &description, &start, &end)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}

	project.Description = nullStringToString(description)
	project.StartDate = nullTimeToTime(start)
	project.EndDate = nullTimeToTime(end)
	return project, nil
}

// GetAllProjects retrieves every project.
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description, start_date, end_date FROM projects ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project := &models.Project{}
		var description sql.NullString
		var start, end sql.NullTime
		if err := rows.Scan(&project.ID, &project.Title, &description, &start, &end); err != nil {
			return nil, err
		}
		project.Description = nullStringToString(description)
		project.StartDate = nullTimeToTime(start)
		project.EndDate = nullTimeToTime(end)
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// UpdateProject overwrites every field of the project. Returns the number
// of rows affected.
func (r *ProjectRepo) UpdateProject(ctx context.Context, id int64, fields models.Project) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects
		 SET title = ?, description = ?, start_date = ?, end_date = ?
		 WHERE id = ?`,
		fields.Title, fields.Description, storeTime(fields.StartDate), storeTime(fields.EndDate), id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update project %d: %w", id, err)
	}
	return result.RowsAffected()
}

// DeleteProject removes a project. The schema cascades the delete to all
// tasks owned by the project and everything hanging off them.
func (r *ProjectRepo) DeleteProject(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project %d: %w", id, err)
	}
	return result.RowsAffected()
}

// ProjectExists reports whether a project with the given id exists.
func (r *ProjectRepo) ProjectExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM projects WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check project %d: %w", id, err)
	}
	return true, nil
}
