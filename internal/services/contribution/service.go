// Package contribution is the ledger of logged hours and file artifacts.
// It records (employee, task, hours, timestamp) tuples and computes the
// per-task and per-project aggregates the dashboards run on. Authorization
// for deletions is the caller's job, not this package's.
package contribution

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/database"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Service defines the contribution ledger operations.
type Service interface {
	LogContribution(ctx context.Context, username string, taskID int64, hours float64) (*models.Contribution, error)
	DeleteContribution(ctx context.Context, username string, taskID int64, recordedAt time.Time) error
	TotalHoursForTask(ctx context.Context, taskID int64) (float64, error)
	TotalHoursForProject(ctx context.Context, projectID int64) (float64, error)
	AllContributions(ctx context.Context, taskID int64) ([]float64, error)
	ListContributions(ctx context.Context, taskID int64) ([]*models.Contribution, error)

	AddArtifact(ctx context.Context, taskID int64, username, path string) (*models.Artifact, error)
	ListArtifacts(ctx context.Context, taskID int64) ([]*models.Artifact, error)
	RemoveArtifact(ctx context.Context, id string) error
}

// service implements Service interface
type service struct {
	repo database.DataStore
	now  func() time.Time
}

// NewService creates a new contribution service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo, now: time.Now}
}

// LogContribution appends a timestamped record of hours worked. Repeated
// contributions for the same pair accumulate; nothing is merged.
func (s *service) LogContribution(ctx context.Context, username string, taskID int64, hours float64) (*models.Contribution, error) {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil, ErrInvalidHours
	}

	if err := s.checkEndpoints(ctx, username, taskID); err != nil {
		return nil, err
	}

	c := models.Contribution{
		Username:   username,
		TaskID:     taskID,
		Hours:      hours,
		RecordedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.repo.InsertContribution(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to log contribution: %w", err)
	}
	return &c, nil
}

// DeleteContribution removes the record matching the exact (employee, task,
// timestamp) triple.
func (s *service) DeleteContribution(ctx context.Context, username string, taskID int64, recordedAt time.Time) error {
	rows, err := s.repo.DeleteContribution(ctx, username, taskID, recordedAt)
	if err != nil {
		return fmt.Errorf("failed to delete contribution: %w", err)
	}
	if rows == 0 {
		return ErrContributionNotFound
	}
	return nil
}

// TotalHoursForTask sums every contribution logged on the task and its
// subtasks. A task with no contributions totals 0.0; only an unknown task
// id is an error.
func (s *service) TotalHoursForTask(ctx context.Context, taskID int64) (float64, error) {
	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("failed to check task %d: %w", taskID, err)
	}
	if !exists {
		return 0, ErrTaskNotFound
	}

	return s.repo.SumHoursForTask(ctx, taskID)
}

// TotalHoursForProject sums every contribution logged anywhere under the
// project.
func (s *service) TotalHoursForProject(ctx context.Context, projectID int64) (float64, error) {
	exists, err := s.repo.ProjectExists(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to check project %d: %w", projectID, err)
	}
	if !exists {
		return 0, ErrProjectNotFound
	}

	return s.repo.SumHoursForProject(ctx, projectID)
}

// AllContributions returns the individual hour values logged directly on
// the task, unaggregated, for per-entry display.
func (s *service) AllContributions(ctx context.Context, taskID int64) ([]float64, error) {
	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task %d: %w", taskID, err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	return s.repo.GetHoursForTask(ctx, taskID)
}

// ListContributions returns the full records logged directly on the task.
func (s *service) ListContributions(ctx context.Context, taskID int64) ([]*models.Contribution, error) {
	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task %d: %w", taskID, err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	return s.repo.GetContributionsForTask(ctx, taskID)
}

// AddArtifact records a file or link produced on a task. Paths are not
// unique, so every record gets its own uuid.
func (s *service) AddArtifact(ctx context.Context, taskID int64, username, path string) (*models.Artifact, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	if err := s.checkEndpoints(ctx, username, taskID); err != nil {
		return nil, err
	}

	a := models.Artifact{
		ID:       uuid.NewString(),
		TaskID:   taskID,
		Username: username,
		Path:     path,
	}
	if err := s.repo.InsertArtifact(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to add artifact: %w", err)
	}
	return &a, nil
}

// ListArtifacts retrieves every artifact recorded against a task.
func (s *service) ListArtifacts(ctx context.Context, taskID int64) ([]*models.Artifact, error) {
	exists, err := s.repo.TaskExists(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task %d: %w", taskID, err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	return s.repo.GetArtifactsForTask(ctx, taskID)
}

// RemoveArtifact deletes one artifact record by id.
func (s *service) RemoveArtifact(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteArtifact(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to remove artifact: %w", err)
	}
	if rows == 0 {
		return ErrArtifactNotFound
	}
	return nil
}

// checkEndpoints verifies the task and employee both exist.
func (s *service) checkEndpoints(ctx context.Context, username string, taskID int64) error {
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
	return nil
}
