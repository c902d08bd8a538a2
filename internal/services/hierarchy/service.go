package hierarchy

import (
	"context"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/database"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Service defines project and task tree operations. It owns the two-level
// invariant: top-level tasks hang off a project, subtasks hang off a
// top-level task, and the tree never goes deeper.
type Service interface {
	// Projects
	CreateProject(ctx context.Context, fields models.Project) (*models.Project, error)
	GetProject(ctx context.Context, id int64) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id int64, fields models.Project) (int64, error)
	DeleteProject(ctx context.Context, id int64) (int64, error)

	// Tasks. parentID uses 0 for "absent" on the top-level path.
	CreateTopLevelTask(ctx context.Context, projectID, parentID int64, fields models.TaskFields) (int64, error)
	CreateSubtask(ctx context.Context, parentID int64, fields models.TaskFields) (int64, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	ListTopLevelTasks(ctx context.Context, projectID int64) ([]*models.Task, error)
	ListSubtasks(ctx context.Context, parentID int64) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id int64, fields models.TaskFields) (int64, error)
	DeleteTask(ctx context.Context, id int64) (int64, error)
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new hierarchy service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CreateProject creates a new project.
func (s *service) CreateProject(ctx context.Context, fields models.Project) (*models.Project, error) {
	if fields.Title == "" {
		return nil, ErrEmptyTitle
	}

	project, err := s.repo.CreateProject(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetProject retrieves a project by id.
func (s *service) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.repo.GetProjectByID(ctx, id)
}

// ListProjects retrieves all projects.
func (s *service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// UpdateProject overwrites every field of a project.
func (s *service) UpdateProject(ctx context.Context, id int64, fields models.Project) (int64, error) {
	rows, err := s.repo.UpdateProject(ctx, id, fields)
	if err != nil {
		return 0, fmt.Errorf("failed to update project: %w", err)
	}
	if rows == 0 {
		return 0, ErrProjectNotFound
	}
	return rows, nil
}

// DeleteProject removes a project, cascading to every task, subtask,
// dependency edge, assignment, contribution and artifact under it.
func (s *service) DeleteProject(ctx context.Context, id int64) (int64, error) {
	rows, err := s.repo.DeleteProject(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete project: %w", err)
	}
	if rows == 0 {
		return 0, ErrProjectNotFound
	}
	return rows, nil
}

// CreateTopLevelTask creates a task directly under a project. This path must
// never be used to create subtasks: a non-zero parentID is rejected before
// anything touches the store.
func (s *service) CreateTopLevelTask(ctx context.Context, projectID, parentID int64, fields models.TaskFields) (int64, error) {
	if parentID != 0 {
		return 0, ErrParentOnTopLevel
	}
	if fields.Title == "" {
		return 0, ErrEmptyTitle
	}

	exists, err := s.repo.ProjectExists(ctx, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return 0, ErrProjectNotFound
	}

	id, err := s.repo.CreateTask(ctx, projectID, nil, fields)
	if err != nil {
		return 0, fmt.Errorf("failed to create task: %w", err)
	}
	return id, nil
}

// CreateSubtask creates a task under a top-level task. The parent must
// exist and must itself be top-level; the subtask inherits its project.
func (s *service) CreateSubtask(ctx context.Context, parentID int64, fields models.TaskFields) (int64, error) {
	if parentID == 0 {
		return 0, ErrMissingParent
	}
	if fields.Title == "" {
		return 0, ErrEmptyTitle
	}

	parent, err := s.repo.GetTask(ctx, parentID)
	if err != nil {
		return 0, ErrTaskNotFound
	}
	if parent.IsSubtask() {
		return 0, ErrDepthExceeded
	}

	id, err := s.repo.CreateTask(ctx, parent.ProjectID, &parentID, fields)
	if err != nil {
		return 0, fmt.Errorf("failed to create subtask: %w", err)
	}
	return id, nil
}

// GetTask retrieves a task by id.
func (s *service) GetTask(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.GetTask(ctx, id)
}

// ListTopLevelTasks retrieves the top-level tasks of a project. The result
// is an unordered set and may be empty.
func (s *service) ListTopLevelTasks(ctx context.Context, projectID int64) ([]*models.Task, error) {
	return s.repo.ListTopLevelTasks(ctx, projectID)
}

// ListSubtasks retrieves the subtasks of a top-level task. Asking for the
// subtasks of a subtask is a hierarchy violation, not an empty result.
func (s *service) ListSubtasks(ctx context.Context, parentID int64) ([]*models.Task, error) {
	parent, err := s.repo.GetTask(ctx, parentID)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	if parent.IsSubtask() {
		return nil, ErrDepthExceeded
	}

	return s.repo.ListSubtasks(ctx, parentID)
}

// UpdateTask overwrites every field of a task. Fields are replaced, not
// merged.
func (s *service) UpdateTask(ctx context.Context, id int64, fields models.TaskFields) (int64, error) {
	rows, err := s.repo.UpdateTask(ctx, id, fields)
	if err != nil {
		return 0, fmt.Errorf("failed to update task: %w", err)
	}
	if rows == 0 {
		return 0, ErrTaskNotFound
	}
	return rows, nil
}

// DeleteTask removes a task. If it is top-level the delete cascades to its
// subtasks and, transitively, to every dependency edge, assignment,
// contribution and artifact referencing any of them.
func (s *service) DeleteTask(ctx context.Context, id int64) (int64, error) {
	rows, err := s.repo.DeleteTask(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete task: %w", err)
	}
	if rows == 0 {
		return 0, ErrTaskNotFound
	}
	return rows, nil
}
