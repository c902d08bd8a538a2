package dependency

import (
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Dependency-related errors.
var (
	ErrTaskNotFound = fmt.Errorf("task %w", models.ErrNotFound)

	// ErrEdgeNotFound covers every "no such edge" case on removal: the
	// endpoints may be missing or merely unconnected, the caller cannot
	// tell the difference.
	ErrEdgeNotFound = fmt.Errorf("dependency %w", models.ErrNotFound)

	// ErrSelfDependency is returned when a task is asked to follow itself.
	ErrSelfDependency = fmt.Errorf("%w: task cannot depend on itself", models.ErrUnsupportedOperation)

	// ErrDuplicateEdge is returned when the exact ordered edge already
	// exists. Duplicate insert is an error, not an upsert.
	ErrDuplicateEdge = fmt.Errorf("dependency %w", models.ErrAlreadyExists)
)
