package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// SkillRepo handles the global skill catalog and per-employee skill rows.
type SkillRepo struct {
	db *sql.DB
}

// AddSkill inserts a title into the catalog. Inserting an existing title is
// a no-op; the returned count is 0 in that case and 1 otherwise.
func (r *SkillRepo) AddSkill(ctx context.Context, title string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO skills (title) VALUES (?)`,
		title,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add skill '%s': %w", title, err)
	}
	return result.RowsAffected()
}

// RemoveSkill deletes a title from the catalog, cascading to every employee
// holding it. Removing an absent title is a no-op returning 0.
func (r *SkillRepo) RemoveSkill(ctx context.Context, title string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM skills WHERE title = ?`, title)
	if err != nil {
		return 0, fmt.Errorf("failed to remove skill '%s': %w", title, err)
	}
	return result.RowsAffected()
}

// GetAllSkills retrieves the catalog.
func (r *SkillRepo) GetAllSkills(ctx context.Context) ([]*models.Skill, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT title FROM skills ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []*models.Skill
	for rows.Next() {
		s := &models.Skill{}
		if err := rows.Scan(&s.Title); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}

	return skills, rows.Err()
}

// AssignSkill binds an employee to a catalog skill at a level. A duplicate
// row surfaces as ErrAlreadyExists; an unknown employee or uncataloged
// skill as ErrNotFound.
func (r *SkillRepo) AssignSkill(ctx context.Context, es models.EmployeeSkill) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employee_skills (username, skill_title, level) VALUES (?, ?, ?)`,
		es.Username, es.SkillTitle, string(es.Level),
	)
	if err != nil {
		return fmt.Errorf("failed to assign skill '%s' (%s) to '%s': %w",
			es.SkillTitle, es.Level, es.Username, mapConstraintErr(err))
	}
	return nil
}

// UnassignSkill removes one (employee, skill, level) row and returns the
// number of rows affected.
func (r *SkillRepo) UnassignSkill(ctx context.Context, es models.EmployeeSkill) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM employee_skills WHERE username = ? AND skill_title = ? AND level = ?`,
		es.Username, es.SkillTitle, string(es.Level),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to unassign skill '%s' (%s) from '%s': %w",
			es.SkillTitle, es.Level, es.Username, err)
	}
	return result.RowsAffected()
}

// GetSkillsForEmployee retrieves the employee's skill rows.
func (r *SkillRepo) GetSkillsForEmployee(ctx context.Context, username string) ([]*models.EmployeeSkill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT username, skill_title, level
		 FROM employee_skills WHERE username = ?
		 ORDER BY skill_title, level`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills for '%s': %w", username, err)
	}
	defer rows.Close()

	var skills []*models.EmployeeSkill
	for rows.Next() {
		es := &models.EmployeeSkill{}
		var level string
		if err := rows.Scan(&es.Username, &es.SkillTitle, &level); err != nil {
			return nil, err
		}
		es.Level = models.SkillLevel(level)
		skills = append(skills, es)
	}

	return skills, rows.Err()
}

// CountSkillsByLevel counts how many skills the employee holds at a level.
func (r *SkillRepo) CountSkillsByLevel(ctx context.Context, username string, level models.SkillLevel) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM employee_skills WHERE username = ? AND level = ?`,
		username, string(level),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s skills for '%s': %w", level, username, err)
	}
	return count, nil
}

// ReconcileSkills applies a precomputed set difference in one transaction:
// everything in toRemove is deleted and everything in toAdd is inserted.
// The diff itself is the service layer's job.
func (r *SkillRepo) ReconcileSkills(ctx context.Context, toAdd, toRemove []models.EmployeeSkill) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, es := range toRemove {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM employee_skills WHERE username = ? AND skill_title = ? AND level = ?`,
				es.Username, es.SkillTitle, string(es.Level),
			); err != nil {
				return fmt.Errorf("failed to remove skill '%s' (%s): %w", es.SkillTitle, es.Level, err)
			}
		}
		for _, es := range toAdd {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO employee_skills (username, skill_title, level) VALUES (?, ?, ?)`,
				es.Username, es.SkillTitle, string(es.Level),
			); err != nil {
				return fmt.Errorf("failed to add skill '%s' (%s): %w", es.SkillTitle, es.Level, mapConstraintErr(err))
			}
		}
		return nil
	})
}
