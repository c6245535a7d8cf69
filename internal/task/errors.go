package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyName       = errors.New("task name is empty")
	ErrInvalidDuration = errors.New("required duration must be positive")
	ErrInvalidChunk    = errors.New("invalid chunk bounds")
	ErrInvalidPriority = errors.New("priority must be HIGH, NORMAL or LOW")
	ErrInvalidDate     = errors.New("unrecognised date")
	ErrTaskNotFound    = errors.New("task not found")
)
