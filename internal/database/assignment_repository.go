package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// AssignmentRepo handles the many-to-many relation between employees and tasks.
type AssignmentRepo struct {
	db *sql.DB
}

// AddAssignment binds an employee to a task. A duplicate pair surfaces as
// ErrAlreadyExists; a missing task or employee as ErrNotFound.
func (r *AssignmentRepo) AddAssignment(ctx context.Context, taskID int64, username string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assignments (task_id, username) VALUES (?, ?)`,
		taskID, username,
	)
	if err != nil {
		return fmt.Errorf("failed to assign %s to task %d: %w",
			username, taskID, mapConstraintErr(err))
	}
	return nil
}

// RemoveAssignment unbinds an employee from a task and returns the number
// of rows affected.
func (r *AssignmentRepo) RemoveAssignment(ctx context.Context, taskID int64, username string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM assignments WHERE task_id = ? AND username = ?`,
		taskID, username,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to unassign %s from task %d: %w", username, taskID, err)
	}
	return result.RowsAffected()
}

// GetAssignees retrieves every employee assigned to a task.
func (r *AssignmentRepo) GetAssignees(ctx context.Context, taskID int64) ([]*models.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT e.username, e.name, e.email, e.workday_start, e.workday_end
		 FROM employees e
		 JOIN assignments a ON a.username = e.username
		 WHERE a.task_id = ?
		 ORDER BY e.username`,
		taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignees for task %d: %w", taskID, err)
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		emp := &models.Employee{}
		if err := rows.Scan(&emp.Username, &emp.Name, &emp.Email, &emp.WorkdayStart, &emp.WorkdayEnd); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// CountInvolvedForTask counts distinct employees assigned to the task or to
// any of its subtasks.
func (r *AssignmentRepo) CountInvolvedForTask(ctx context.Context, taskID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT a.username)
		 FROM assignments a
		 JOIN tasks t ON a.task_id = t.id
		 WHERE t.id = ? OR t.parent_id = ?`,
		taskID, taskID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count involved for task %d: %w", taskID, err)
	}
	return count, nil
}

// CountInvolvedForProject counts distinct employees assigned anywhere under
// the project.
func (r *AssignmentRepo) CountInvolvedForProject(ctx context.Context, projectID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(DISTINCT a.username)
		 FROM assignments a
		 JOIN tasks t ON a.task_id = t.id
		 WHERE t.project_id = ?`,
		projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count involved for project %d: %w", projectID, err)
	}
	return count, nil
}
