package solver

import "errors"

var (
	// ErrProviderRequired indicates a nil AI provider was supplied.
	ErrProviderRequired = errors.New("ai provider is required")

	// ErrTaskRequired indicates a nil task was supplied.
	ErrTaskRequired = errors.New("task is required")
)
