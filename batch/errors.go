package batch

import "errors"

var (
	// ErrSolverRequired indicates a nil solver was supplied.
	ErrSolverRequired = errors.New("solver is required")
)
