package models

import "errors"

// Error kinds shared across the engine. Every failure a service returns
// wraps exactly one of these, so callers can match on the kind with
// errors.Is without knowing which entity was involved.
var (
	// ErrNotFound indicates a referenced entity, edge, or record does not
	// exist at the time of the operation
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an insert would violate a uniqueness
	// constraint
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidValue indicates a supplied value fails a domain constraint
	ErrInvalidValue = errors.New("invalid value")

	// ErrUnsupportedOperation indicates an operation was invoked against
	// the wrong hierarchy level
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
