// Package dependency maintains the directed must-follow edges between
// subtasks. Edges are stored without transitive closure or cycle checking;
// the engine trusts callers to avoid cycles and consumers to bound their
// traversals.
package dependency

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/database"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Service defines the dependency graph operations.
type Service interface {
	AddDependency(ctx context.Context, forID, mustFollowID int64) error
	RemoveDependency(ctx context.Context, forID, mustFollowID int64) error
	ListDependencies(ctx context.Context, forID int64) ([]*models.Dependency, error)
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new dependency service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// AddDependency records that forID must follow mustFollowID. Self-edges are
// rejected before touching the store; missing endpoints and duplicate edges
// surface from the store's constraints.
func (s *service) AddDependency(ctx context.Context, forID, mustFollowID int64) error {
	if forID == mustFollowID {
		return ErrSelfDependency
	}

	for _, id := range []int64{forID, mustFollowID} {
		exists, err := s.repo.TaskExists(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to check task %d: %w", id, err)
		}
		if !exists {
			return ErrTaskNotFound
		}
	}

	if err := s.repo.AddDependency(ctx, forID, mustFollowID); err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyExists):
			return ErrDuplicateEdge
		case errors.Is(err, models.ErrNotFound):
			// endpoint vanished between the check and the insert
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to add dependency: %w", err)
	}
	return nil
}

// RemoveDependency deletes the exact ordered edge. Whether the endpoints
// are missing or simply unconnected, the answer is the same: no such edge.
func (s *service) RemoveDependency(ctx context.Context, forID, mustFollowID int64) error {
	rows, err := s.repo.RemoveDependency(ctx, forID, mustFollowID)
	if err != nil {
		return fmt.Errorf("failed to remove dependency: %w", err)
	}
	if rows == 0 {
		return ErrEdgeNotFound
	}
	return nil
}

// ListDependencies returns the outgoing edges of a task.
func (s *service) ListDependencies(ctx context.Context, forID int64) ([]*models.Dependency, error) {
	exists, err := s.repo.TaskExists(ctx, forID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task %d: %w", forID, err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	return s.repo.ListDependencies(ctx, forID)
}
