// Package database defines repository interfaces for data access
package database

import (
	"context"
	"time"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// ProjectStore defines project persistence operations.
type ProjectStore interface {
	CreateProject(ctx context.Context, fields models.Project) (*models.Project, error)
	GetProjectByID(ctx context.Context, id int64) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id int64, fields models.Project) (int64, error)
	DeleteProject(ctx context.Context, id int64) (int64, error)
	ProjectExists(ctx context.Context, id int64) (bool, error)
}

// TaskStore defines task persistence operations.
type TaskStore interface {
	CreateTask(ctx context.Context, projectID int64, parentID *int64, fields models.TaskFields) (int64, error)
	GetTask(ctx context.Context, id int64) (*models.Task, error)
	ListTopLevelTasks(ctx context.Context, projectID int64) ([]*models.Task, error)
	ListSubtasks(ctx context.Context, parentID int64) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id int64, fields models.TaskFields) (int64, error)
	DeleteTask(ctx context.Context, id int64) (int64, error)
	TaskExists(ctx context.Context, id int64) (bool, error)
}

// DependencyStore defines dependency edge persistence operations.
type DependencyStore interface {
	AddDependency(ctx context.Context, taskID, mustFollowID int64) error
	RemoveDependency(ctx context.Context, taskID, mustFollowID int64) (int64, error)
	ListDependencies(ctx context.Context, taskID int64) ([]*models.Dependency, error)
}

// AssignmentStore defines assignment persistence operations.
type AssignmentStore interface {
	AddAssignment(ctx context.Context, taskID int64, username string) error
	RemoveAssignment(ctx context.Context, taskID int64, username string) (int64, error)
	GetAssignees(ctx context.Context, taskID int64) ([]*models.Employee, error)
	CountInvolvedForTask(ctx context.Context, taskID int64) (int, error)
	CountInvolvedForProject(ctx context.Context, projectID int64) (int, error)
}

// ContributionStore defines time record persistence operations.
type ContributionStore interface {
	InsertContribution(ctx context.Context, c models.Contribution) error
	DeleteContribution(ctx context.Context, username string, taskID int64, recordedAt time.Time) (int64, error)
	SumHoursForTask(ctx context.Context, taskID int64) (float64, error)
	SumHoursForProject(ctx context.Context, projectID int64) (float64, error)
	GetHoursForTask(ctx context.Context, taskID int64) ([]float64, error)
	GetContributionsForTask(ctx context.Context, taskID int64) ([]*models.Contribution, error)
}

// ArtifactStore defines artifact record persistence operations.
type ArtifactStore interface {
	InsertArtifact(ctx context.Context, a models.Artifact) error
	GetArtifactsForTask(ctx context.Context, taskID int64) ([]*models.Artifact, error)
	DeleteArtifact(ctx context.Context, id string) (int64, error)
}

// EmployeeStore defines employee persistence operations.
type EmployeeStore interface {
	CreateEmployee(ctx context.Context, emp models.Employee) error
	GetEmployee(ctx context.Context, username string) (*models.Employee, error)
	GetAllEmployees(ctx context.Context) ([]*models.Employee, error)
	UpdateEmployee(ctx context.Context, emp models.Employee) (int64, error)
	DeleteEmployee(ctx context.Context, username string) (int64, error)
	EmployeeExists(ctx context.Context, username string) (bool, error)
}

// SkillStore defines skill catalog and employee-skill persistence operations.
type SkillStore interface {
	AddSkill(ctx context.Context, title string) (int64, error)
	RemoveSkill(ctx context.Context, title string) (int64, error)
	GetAllSkills(ctx context.Context) ([]*models.Skill, error)
	AssignSkill(ctx context.Context, es models.EmployeeSkill) error
	UnassignSkill(ctx context.Context, es models.EmployeeSkill) (int64, error)
	GetSkillsForEmployee(ctx context.Context, username string) ([]*models.EmployeeSkill, error)
	CountSkillsByLevel(ctx context.Context, username string, level models.SkillLevel) (int, error)
	ReconcileSkills(ctx context.Context, toAdd, toRemove []models.EmployeeSkill) error
}

// DataStore defines the unified interface for all data operations needed by
// the services. Consumers can depend on the smaller interfaces for clearer
// dependencies and easier mocking.
type DataStore interface {
	ProjectStore
	TaskStore
	DependencyStore
	AssignmentStore
	ContributionStore
	ArtifactStore
	EmployeeStore
	SkillStore
}

var _ DataStore = (*Repository)(nil)
