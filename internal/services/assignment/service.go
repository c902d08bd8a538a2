// Package assignment maintains the many-to-many relation between employees
// and tasks.
package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/database"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Service defines work assignment operations.
type Service interface {
	Assign(ctx context.Context, taskID int64, username string) error
	Unassign(ctx context.Context, taskID int64, username string) error
	ListAssignees(ctx context.Context, taskID int64) ([]*models.Employee, error)
	CountInvolvedForTask(ctx context.Context, taskID int64) (int, error)
	CountInvolvedForProject(ctx context.Context, projectID int64) (int, error)
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new assignment service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Assign binds an employee to a task. Both endpoints must exist and the
// pair must be new.
func (s *service) Assign(ctx context.Context, taskID int64, username string) error {
	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to check task %d: %w", taskID, err)
	}
	if !exists {
		return ErrTaskNotFound
	}

	exists, err = s.repo.EmployeeExists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check employee '%s': %w", username, err)
	}
	if !exists {
		return ErrEmployeeNotFound
	}

	if err := s.repo.AddAssignment(ctx, taskID, username); err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyExists):
			return ErrAlreadyAssigned
		case errors.Is(err, models.ErrNotFound):
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to assign: %w", err)
	}
	return nil
}

// Unassign unbinds an employee from a task. Exactly one row must go away;
// zero rows means the pair was never assigned.
func (s *service) Unassign(ctx context.Context, taskID int64, username string) error {
	rows, err := s.repo.RemoveAssignment(ctx, taskID, username)
	if err != nil {
		return fmt.Errorf("failed to unassign: %w", err)
	}
	if rows == 0 {
		return ErrAssignmentNotFound
	}
	if rows != 1 {
		return fmt.Errorf("unassign removed %d rows for (%d, %s), expected 1", rows, taskID, username)
	}
	return nil
}

// ListAssignees retrieves every employee assigned to a task.
func (s *service) ListAssignees(ctx context.Context, taskID int64) ([]*models.Employee, error) {
	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task %d: %w", taskID, err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	return s.repo.GetAssignees(ctx, taskID)
}

// CountInvolvedForTask counts distinct employees assigned to the task or
// any of its subtasks.
func (s *service) CountInvolvedForTask(ctx context.Context, taskID int64) (int, error) {
	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("failed to check task %d: %w", taskID, err)
	}
	if !exists {
		return 0, ErrTaskNotFound
	}

	return s.repo.CountInvolvedForTask(ctx, taskID)
}

// CountInvolvedForProject counts distinct employees assigned anywhere under
// the project.
func (s *service) CountInvolvedForProject(ctx context.Context, projectID int64) (int, error) {
	exists, err := s.repo.ProjectExists(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to check project %d: %w", projectID, err)
	}
	if !exists {
		return 0, ErrProjectNotFound
	}

	return s.repo.CountInvolvedForProject(ctx, projectID)
}
