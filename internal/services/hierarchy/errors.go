package hierarchy

import (
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Hierarchy-related errors. Each wraps one of the models error kinds so
// callers can match with errors.Is on either the sentinel or the kind.
var (
	ErrProjectNotFound = fmt.Errorf("project %w", models.ErrNotFound)
	ErrTaskNotFound    = fmt.Errorf("task %w", models.ErrNotFound)

	// ErrParentOnTopLevel is returned when the top-level creation path is
	// handed a parent task id. Subtasks have their own path.
	ErrParentOnTopLevel = fmt.Errorf("%w: top-level tasks cannot have a parent", models.ErrUnsupportedOperation)

	// ErrMissingParent is returned when the subtask creation path is handed
	// no parent task id.
	ErrMissingParent = fmt.Errorf("%w: subtasks require a parent task", models.ErrUnsupportedOperation)

	// ErrDepthExceeded is returned when an operation would place or assume
	// tasks below the second level of the tree.
	ErrDepthExceeded = fmt.Errorf("%w: subtasks cannot have subtasks", models.ErrUnsupportedOperation)

	ErrEmptyTitle = fmt.Errorf("%w: task title cannot be empty", models.ErrInvalidValue)
)
