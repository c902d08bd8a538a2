package skill

import (
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Skill and wage related errors.
var (
	ErrEmployeeNotFound = fmt.Errorf("employee %w", models.ErrNotFound)
	ErrSkillNotFound    = fmt.Errorf("skill %w", models.ErrNotFound)

	// ErrSkillRowNotFound is returned when unassigning a (skill, level)
	// row the employee does not hold.
	ErrSkillRowNotFound = fmt.Errorf("skill assignment %w", models.ErrNotFound)

	// ErrDuplicateSkillRow is returned when assigning a (skill, level) row
	// the employee already holds.
	ErrDuplicateSkillRow = fmt.Errorf("skill assignment %w", models.ErrAlreadyExists)

	// ErrInvalidLevel is returned for any level outside
	// {Intermediate, Expert}.
	ErrInvalidLevel = fmt.Errorf("%w: skill level must be Intermediate or Expert", models.ErrInvalidValue)
)
