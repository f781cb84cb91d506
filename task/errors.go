package task

import "errors"

var (
	// ErrReadTask indicates the task file could not be read or parsed.
	ErrReadTask = errors.New("failed to read task")

	// ErrWriteResult indicates the result file could not be written.
	ErrWriteResult = errors.New("failed to write result")
)
