// Package skill maintains the global skill catalog, the per-employee skill
// assignments, and the skill-weighted hourly wage derived from them.
package skill

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/database"
	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Wage multipliers: each Expert skill compounds a 10% premium and each
// Intermediate skill a 5% premium, multiplicatively and order-independent.
const (
	expertPremium       = 1.10
	intermediatePremium = 1.05
)

// Service defines skill catalog, skill assignment and wage operations.
type Service interface {
	AddSkillToCatalog(ctx context.Context, title string) (int64, error)
	RemoveSkillFromCatalog(ctx context.Context, title string) (int64, error)
	ListCatalog(ctx context.Context) ([]*models.Skill, error)

	AssignSkill(ctx context.Context, username, title string, level models.SkillLevel) error
	UnassignSkill(ctx context.Context, username, title string, level models.SkillLevel) error
	SkillsFor(ctx context.Context, username string) ([]*models.EmployeeSkill, error)
	ReconcileSkillSet(ctx context.Context, username string, desired []models.EmployeeSkill) (added, removed int, err error)

	BaseWage(username string) float64
	HourlyWage(ctx context.Context, username string) (float64, error)
}

// service implements Service interface
type service struct {
	repo     database.DataStore
	baseWage float64
}

// NewService creates a new skill service. baseWage is the constant baseline
// every wage computation starts from.
func NewService(repo database.DataStore, baseWage float64) Service {
	return &service{repo: repo, baseWage: baseWage}
}

// AddSkillToCatalog inserts a title into the global catalog. Adding an
// existing title is a no-op returning 0; a new title returns 1.
func (s *service) AddSkillToCatalog(ctx context.Context, title string) (int64, error) {
	if title == "" {
		return 0, fmt.Errorf("%w: skill title cannot be empty", models.ErrInvalidValue)
	}
	return s.repo.AddSkill(ctx, title)
}

// RemoveSkillFromCatalog deletes a title from the catalog. Removing an
// absent title is a no-op returning 0.
func (s *service) RemoveSkillFromCatalog(ctx context.Context, title string) (int64, error) {
	return s.repo.RemoveSkill(ctx, title)
}

// ListCatalog retrieves the global skill catalog.
func (s *service) ListCatalog(ctx context.Context) ([]*models.Skill, error) {
	return s.repo.GetAllSkills(ctx)
}

// AssignSkill binds an employee to a catalog skill at a level. The level is
// validated before anything touches the store.
func (s *service) AssignSkill(ctx context.Context, username, title string, level models.SkillLevel) error {
	if !level.Valid() {
		return ErrInvalidLevel
	}

	exists, err := s.repo.EmployeeExists(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check employee '%s': %w", username, err)
	}
	if !exists {
		return ErrEmployeeNotFound
	}

	es := models.EmployeeSkill{Username: username, SkillTitle: title, Level: level}
	if err := s.repo.AssignSkill(ctx, es); err != nil {
		switch {
		case errors.Is(err, models.ErrAlreadyExists):
			return ErrDuplicateSkillRow
		case errors.Is(err, models.ErrNotFound):
			return ErrSkillNotFound
		}
		return fmt.Errorf("failed to assign skill: %w", err)
	}
	return nil
}

// UnassignSkill removes one (skill, level) row from an employee.
func (s *service) UnassignSkill(ctx context.Context, username, title string, level models.SkillLevel) error {
	if !level.Valid() {
		return ErrInvalidLevel
	}

	es := models.EmployeeSkill{Username: username, SkillTitle: title, Level: level}
	rows, err := s.repo.UnassignSkill(ctx, es)
	if err != nil {
		return fmt.Errorf("failed to unassign skill: %w", err)
	}
	if rows == 0 {
		return ErrSkillRowNotFound
	}
	return nil
}

// SkillsFor retrieves the employee's skill rows.
func (s *service) SkillsFor(ctx context.Context, username string) ([]*models.EmployeeSkill, error) {
	exists, err := s.repo.EmployeeExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check employee '%s': %w", username, err)
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	return s.repo.GetSkillsForEmployee(ctx, username)
}

// ReconcileSkillSet makes the stored skill set equal the desired one. The
// symmetric difference is computed by (title, level) value and only the
// difference is applied: rows present in both sets are never touched.
func (s *service) ReconcileSkillSet(ctx context.Context, username string, desired []models.EmployeeSkill) (int, int, error) {
	exists, err := s.repo.EmployeeExists(ctx, username)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to check employee '%s': %w", username, err)
	}
	if !exists {
		return 0, 0, ErrEmployeeNotFound
	}

	type key struct {
		title string
		level models.SkillLevel
	}

	want := make(map[key]models.EmployeeSkill, len(desired))
	for _, es := range desired {
		if !es.Level.Valid() {
			return 0, 0, ErrInvalidLevel
		}
		want[key{es.SkillTitle, es.Level}] = models.EmployeeSkill{
			Username:   username,
			SkillTitle: es.SkillTitle,
			Level:      es.Level,
		}
	}

	current, err := s.repo.GetSkillsForEmployee(ctx, username)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load current skills: %w", err)
	}

	have := make(map[key]models.EmployeeSkill, len(current))
	for _, es := range current {
		have[key{es.SkillTitle, es.Level}] = *es
	}

	var toAdd, toRemove []models.EmployeeSkill
	for k, es := range want {
		if _, ok := have[k]; !ok {
			toAdd = append(toAdd, es)
		}
	}
	for k, es := range have {
		if _, ok := want[k]; !ok {
			toRemove = append(toRemove, es)
		}
	}

	if len(toAdd) == 0 && len(toRemove) == 0 {
		return 0, 0, nil
	}

	if err := s.repo.ReconcileSkills(ctx, toAdd, toRemove); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return 0, 0, ErrSkillNotFound
		}
		return 0, 0, fmt.Errorf("failed to reconcile skills: %w", err)
	}
	return len(toAdd), len(toRemove), nil
}

// BaseWage returns the baseline hourly wage. It is a configured constant,
// identical for every employee; the username parameter exists for the day
// compensation rules grow up.
func (s *service) BaseWage(username string) float64 {
	_ = username
	return s.baseWage
}

// HourlyWage prices an hour of the employee's work: the base wage compounded
// by the premium of every skill they hold. Zero skills yields exactly the
// base wage.
func (s *service) HourlyWage(ctx context.Context, username string) (float64, error) {
	exists, err := s.repo.EmployeeExists(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("failed to check employee '%s': %w", username, err)
	}
	if !exists {
		return 0, ErrEmployeeNotFound
	}

	expert, err := s.repo.CountSkillsByLevel(ctx, username, models.LevelExpert)
	if err != nil {
		return 0, err
	}
	intermediate, err := s.repo.CountSkillsByLevel(ctx, username, models.LevelIntermediate)
	if err != nil {
		return 0, err
	}

	wage := s.baseWage *
		math.Pow(expertPremium, float64(expert)) *
		math.Pow(intermediatePremium, float64(intermediate))
	return wage, nil
}
