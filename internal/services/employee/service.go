// Package employee is the registry of workers and managers.
package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/database"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Service defines employee registry operations.
type Service interface {
	Register(ctx context.Context, emp models.Employee) error
	Get(ctx context.Context, username string) (*models.Employee, error)
	List(ctx context.Context) ([]*models.Employee, error)
	Update(ctx context.Context, emp models.Employee) error
	Remove(ctx context.Context, username string) error
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new employee service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Register adds a new employee. Usernames are the primary key; a duplicate
// is an error, not an update.
func (s *service) Register(ctx context.Context, emp models.Employee) error {
	if emp.Username == "" {
		return ErrEmptyUsername
	}

	if err := s.repo.CreateEmployee(ctx, emp); err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("failed to register employee: %w", err)
	}
	return nil
}

// Get retrieves an employee with their skill rows attached.
func (s *service) Get(ctx context.Context, username string) (*models.Employee, error) {
	emp, err := s.repo.GetEmployee(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	skills, err := s.repo.GetSkillsForEmployee(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	emp.Skills = skills
	return emp, nil
}

// List retrieves every registered employee.
func (s *service) List(ctx context.Context) ([]*models.Employee, error) {
	return s.repo.GetAllEmployees(ctx)
}

// Update overwrites every mutable field of an employee.
func (s *service) Update(ctx context.Context, emp models.Employee) error {
	rows, err := s.repo.UpdateEmployee(ctx, emp)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if rows == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// Remove deletes an employee, cascading to their assignments, contributions,
// artifacts and skill rows.
func (s *service) Remove(ctx context.Context, username string) error {
	rows, err := s.repo.DeleteEmployee(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to remove employee: %w", err)
	}
	if rows == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

// Authenticate compares the supplied password against the stored one
// verbatim. Credentials are kept in plain text; see DESIGN.md.
func (s *service) Authenticate(ctx context.Context, username, password string) (bool, error) {
	emp, err := s.repo.GetEmployee(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return false, ErrEmployeeNotFound
		}
		return false, err
	}
	return emp.Password == password, nil
}
