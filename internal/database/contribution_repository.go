package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// ContributionRepo handles logged time records and their aggregates.
type ContributionRepo struct {
	db *sql.DB
}

// InsertContribution appends a timestamped record. Records for the same
// (employee, task) pair are never merged.
func (r *ContributionRepo) InsertContribution(ctx context.Context, c models.Contribution) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contributions (task_id, username, hours, recorded_at)
		 VALUES (?, ?, ?, ?)`,
		c.TaskID, c.Username, c.Hours, storeTime(c.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to log %v hours for %s on task %d: %w",
			c.Hours, c.Username, c.TaskID, mapConstraintErr(err))
	}
	return nil
}

// DeleteContribution removes records matching the exact (employee, task,
// timestamp) triple and returns the number of rows affected.
func (r *ContributionRepo) DeleteContribution(ctx context.Context, username string, taskID int64, recordedAt time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM contributions WHERE username = ? AND task_id = ? AND recorded_at = ?`,
		username, taskID, storeTime(recordedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete contribution by %s on task %d: %w", username, taskID, err)
	}
	return result.RowsAffected()
}

// SumHoursForTask totals the hours logged directly on the task and on its
// subtasks. Returns 0 when nothing has been logged.
func (r *ContributionRepo) SumHoursForTask(ctx context.Context, taskID int64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(c.hours), 0)
		 FROM contributions c
		 JOIN tasks t ON c.task_id = t.id
		 WHERE t.id = ? OR t.parent_id = ?`,
		taskID, taskID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum hours for task %d: %w", taskID, err)
	}
	return total, nil
}

// SumHoursForProject totals the hours logged anywhere under the project.
func (r *ContributionRepo) SumHoursForProject(ctx context.Context, projectID int64) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(c.hours), 0)
		 FROM contributions c
		 JOIN tasks t ON c.task_id = t.id
		 WHERE t.project_id = ?`,
		projectID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum hours for project %d: %w", projectID, err)
	}
	return total, nil
}

// GetHoursForTask returns the individual hour values logged directly on the
// task, unaggregated, for per-entry display.
func (r *ContributionRepo) GetHoursForTask(ctx context.Context, taskID int64) ([]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT hours FROM contributions WHERE task_id = ?`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get hours for task %d: %w", taskID, err)
	}
	defer rows.Close()

	var hours []float64
	for rows.Next() {
		var h float64
		if err := rows.Scan(&h); err != nil {
			return nil, err
		}
		hours = append(hours, h)
	}

	return hours, rows.Err()
}

// GetContributionsForTask returns the full records logged directly on the task.
func (r *ContributionRepo) GetContributionsForTask(ctx context.Context, taskID int64) ([]*models.Contribution, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, username, hours, recorded_at
		 FROM contributions WHERE task_id = ?
		 ORDER BY recorded_at`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions for task %d: %w", taskID, err)
	}
	defer rows.Close()

	var contributions []*models.Contribution
	for rows.Next() {
		c := &models.Contribution{}
		var recorded sql.NullTime
		if err := rows.Scan(&c.TaskID, &c.Username, &c.Hours, &recorded); err != nil {
			return nil, err
		}
		c.RecordedAt = nullTimeToTime(recorded)
		contributions = append(contributions, c)
	}

	return contributions, rows.Err()
}
