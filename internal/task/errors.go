package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrInputTooLong    = errors.New("input text is too long")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidTitle    = errors.New("title must be between 1 and 255 characters")
	ErrInvalidPriority = errors.New("priority must be between 1 and 4")
	ErrInvalidCategory = errors.New("unknown category")
)
