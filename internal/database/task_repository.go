package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// TaskRepo handles all task-related database operations. Tasks and subtasks
// share one table; parent_id NULL marks a top-level task.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = `id, project_id, parent_id, title, description, start_date, end_date, duration_hours`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	var parent sql.NullInt64
	var description sql.NullString
	var start, end sql.NullTime

	err := row.Scan(
		&task.ID, &task.ProjectID, &parent, &task.Title,
		&description, &start, &end, &task.DurationHours,
	)
	if err != nil {
		return nil, err
	}

	task.ParentID = nullInt64ToPtr(parent)
	task.Description = nullStringToString(description)
	task.StartDate = nullTimeToTime(start)
	task.EndDate = nullTimeToTime(end)
	return task, nil
}

// CreateTask inserts a task. parentID nil creates a top-level task; the
// hierarchy rules around parentID are enforced by the service layer.
func (r *TaskRepo) CreateTask(ctx context.Context, projectID int64, parentID *int64, fields models.TaskFields) (int64, error) {
	var parent sql.NullInt64
	if parentID != nil {
		parent = sql.NullInt64{Int64: *parentID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (project_id, parent_id, title, description, start_date, end_date, duration_hours)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		projectID, parent, fields.Title, fields.Description,
		storeTime(fields.StartDate), storeTime(fields.EndDate), fields.DurationHours,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert task '%s': %w", fields.Title, mapConstraintErr(err))
	}

	return result.LastInsertId()
}

// GetTask retrieves a task by id.
func (r *TaskRepo) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	task, err := scanTask(r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// ListTopLevelTasks retrieves every top-level task of a project.
func (r *TaskRepo) ListTopLevelTasks(ctx context.Context, projectID int64) ([]*models.Task, error) {
	return r.listTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = ? AND parent_id IS NULL`,
		projectID,
	)
}

// ListSubtasks retrieves every subtask of a task.
func (r *TaskRepo) ListSubtasks(ctx context.Context, parentID int64) ([]*models.Task, error) {
	return r.listTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE parent_id = ?`,
		parentID,
	)
}

func (r *TaskRepo) listTasks(ctx context.Context, query string, arg int64) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// UpdateTask overwrites every caller-supplied field of the task. Returns
// the number of rows affected.
func (r *TaskRepo) UpdateTask(ctx context.Context, id int64, fields models.TaskFields) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks
		 SET title = ?, description = ?, start_date = ?, end_date = ?, duration_hours = ?
		 WHERE id = ?`,
		fields.Title, fields.Description, storeTime(fields.StartDate),
		storeTime(fields.EndDate), fields.DurationHours, id,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return result.RowsAffected()
}

// DeleteTask removes a task. The schema cascades the delete to subtasks,
// dependency edges, assignments, contributions and artifacts.
func (r *TaskRepo) DeleteTask(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return result.RowsAffected()
}

// TaskExists reports whether a task with the given id exists.
func (r *TaskRepo) TaskExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM tasks WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check task %d: %w", id, err)
	}
	return true, nil
}
