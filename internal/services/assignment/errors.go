package assignment

import (
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Assignment-related errors.
var (
	ErrTaskNotFound     = fmt.Errorf("task %w", models.ErrNotFound)
	ErrProjectNotFound  = fmt.Errorf("project %w", models.ErrNotFound)
	ErrEmployeeNotFound = fmt.Errorf("employee %w", models.ErrNotFound)

	// ErrAssignmentNotFound is returned when unassigning a pair that was
	// never assigned. The failure is idempotent; the table is untouched.
	ErrAssignmentNotFound = fmt.Errorf("assignment %w", models.ErrNotFound)

	// ErrAlreadyAssigned is returned on a duplicate pair. Assignment is
	// not silently idempotent.
	ErrAlreadyAssigned = fmt.Errorf("assignment %w", models.ErrAlreadyExists)
)
