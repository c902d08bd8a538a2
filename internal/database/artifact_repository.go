package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// ArtifactRepo handles file artifact records. Only the logical record lives
// here; byte storage is someone else's problem.
type ArtifactRepo struct {
	db *sql.DB
}

// InsertArtifact stores an artifact record. Paths are not unique; the id is.
func (r *ArtifactRepo) InsertArtifact(ctx context.Context, a models.Artifact) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO artifacts (id, task_id, username, path) VALUES (?, ?, ?, ?)`,
		a.ID, a.TaskID, a.Username, a.Path,
	)
	if err != nil {
		return fmt.Errorf("failed to insert artifact '%s': %w", a.Path, mapConstraintErr(err))
	}
	return nil
}

// GetArtifactsForTask retrieves every artifact recorded against a task.
func (r *ArtifactRepo) GetArtifactsForTask(ctx context.Context, taskID int64) ([]*models.Artifact, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, task_id, username, path FROM artifacts WHERE task_id = ?`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts for task %d: %w", taskID, err)
	}
	defer rows.Close()

	var artifacts []*models.Artifact
	for rows.Next() {
		a := &models.Artifact{}
		if err := rows.Scan(&a.ID, &a.TaskID, &a.Username, &a.Path); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}

	return artifacts, rows.Err()
}

// DeleteArtifact removes an artifact record by id and returns the number of
// rows affected.
func (r *ArtifactRepo) DeleteArtifact(ctx context.Context, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM artifacts WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete artifact %s: %w", id, err)
	}
	return result.RowsAffected()
}
