package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// EmployeeRepo handles all employee-related database operations.
type EmployeeRepo struct {
	db *sql.DB
}

// CreateEmployee registers a new employee. A duplicate username surfaces as
// ErrAlreadyExists via the primary key.
func (r *EmployeeRepo) CreateEmployee(ctx context.Context, emp models.Employee) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (username, name, email, password, workday_start, workday_end)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		emp.Username, emp.Name, emp.Email, emp.Password, emp.WorkdayStart, emp.WorkdayEnd,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee '%s': %w", emp.Username, mapConstraintErr(err))
	}
	return nil
}

// GetEmployee retrieves an employee, including the credential column.
func (r *EmployeeRepo) GetEmployee(ctx context.Context, username string) (*models.Employee, error) {
	emp := &models.Employee{}
	err := r.db.QueryRowContext(ctx,
		`SELECT username, name, email, password, workday_start, workday_end
		 FROM employees WHERE username = ?`,
		username,
	).Scan(&emp.Username, &emp.Name, &emp.Email, &emp.Password, &emp.WorkdayStart, &emp.WorkdayEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee '%s': %w", username, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee '%s': %w", username, err)
	}
	return emp, nil
}

// GetAllEmployees retrieves every registered employee, without credentials.
func (r *EmployeeRepo) GetAllEmployees(ctx context.Context) ([]*models.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT username, name, email, workday_start, workday_end
		 FROM employees ORDER BY username`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
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

// UpdateEmployee overwrites every mutable field of the employee. Returns the
// number of rows affected.
func (r *EmployeeRepo) UpdateEmployee(ctx context.Context, emp models.Employee) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE employees
		 SET name = ?, email = ?, password = ?, workday_start = ?, workday_end = ?
		 WHERE username = ?`,
		emp.Name, emp.Email, emp.Password, emp.WorkdayStart, emp.WorkdayEnd, emp.Username,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update employee '%s': %w", emp.Username, err)
	}
	return result.RowsAffected()
}

// DeleteEmployee removes an employee. The schema cascades the delete to
// assignments, contributions, artifacts and skill assignments.
func (r *EmployeeRepo) DeleteEmployee(ctx context.Context, username string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE username = ?`, username)
	if err != nil {
		return 0, fmt.Errorf("failed to delete employee '%s': %w", username, err)
	}
	return result.RowsAffected()
}

// EmployeeExists reports whether an employee with the given username exists.
func (r *EmployeeRepo) EmployeeExists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM employees WHERE username = ?`, username).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check employee '%s': %w", username, err)
	}
	return true, nil
}
