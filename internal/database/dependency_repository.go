package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// DependencyRepo handles the directed must-follow edges between subtasks.
type DependencyRepo struct {
	db *sql.DB
}

// AddDependency inserts the ordered edge (taskID, mustFollowID). A duplicate
// edge surfaces as ErrAlreadyExists via the unique constraint; a missing
// endpoint surfaces as ErrNotFound via the foreign keys.
func (r *DependencyRepo) AddDependency(ctx context.Context, taskID, mustFollowID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO dependencies (task_id, must_follow_id) VALUES (?, ?)`,
		taskID, mustFollowID,
	)
	if err != nil {
		return fmt.Errorf("failed to add dependency %d -> %d: %w",
			taskID, mustFollowID, mapConstraintErr(err))
	}
	return nil
}

// RemoveDependency deletes the ordered edge and returns the number of rows
// affected. Zero rows means there was no such edge, whether or not the
// endpoints exist.
func (r *DependencyRepo) RemoveDependency(ctx context.Context, taskID, mustFollowID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM dependencies WHERE task_id = ? AND must_follow_id = ?`,
		taskID, mustFollowID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to remove dependency %d -> %d: %w", taskID, mustFollowID, err)
	}
	return result.RowsAffected()
}

// ListDependencies returns the outgoing edges of a task.
func (r *DependencyRepo) ListDependencies(ctx context.Context, taskID int64) ([]*models.Dependency, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, must_follow_id FROM dependencies WHERE task_id = ?`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list dependencies for task %d: %w", taskID, err)
	}
	defer rows.Close()

	var deps []*models.Dependency
	for rows.Next() {
		dep := &models.Dependency{}
		if err := rows.Scan(&dep.TaskID, &dep.MustFollowID); err != nil {
			return nil, err
		}
		deps = append(deps, dep)
	}

	return deps, rows.Err()
}
