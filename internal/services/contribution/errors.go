package contribution

import (
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Contribution-related errors.
var (
	ErrTaskNotFound     = fmt.Errorf("task %w", models.ErrNotFound)
	ErrProjectNotFound  = fmt.Errorf("project %w", models.ErrNotFound)
	ErrEmployeeNotFound = fmt.Errorf("employee %w", models.ErrNotFound)

	// ErrContributionNotFound is returned when no record matches the exact
	// (employee, task, timestamp) triple.
	ErrContributionNotFound = fmt.Errorf("contribution %w", models.ErrNotFound)

	ErrArtifactNotFound = fmt.Errorf("artifact %w", models.ErrNotFound)

	// ErrInvalidHours is returned for negative or non-finite hour values.
	// There is no upper bound.
	ErrInvalidHours = fmt.Errorf("%w: hours must be a non-negative number", models.ErrInvalidValue)

	ErrEmptyPath = fmt.Errorf("%w: artifact path cannot be empty", models.ErrInvalidValue)
)
