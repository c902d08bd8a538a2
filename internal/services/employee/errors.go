package employee

import (
	"fmt"

	"github.com/Gruppe-8-org/Plannex-sub000/internal/models"
)

// Employee-related errors.
var (
	ErrEmployeeNotFound = fmt.Errorf("employee %w", models.ErrNotFound)
	ErrDuplicateUser    = fmt.Errorf("employee %w", models.ErrAlreadyExists)
	ErrEmptyUsername    = fmt.Errorf("%w: username cannot be empty", models.ErrInvalidValue)
)
