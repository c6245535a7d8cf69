package repository

import (
	"time"

	"task-scheduler/internal/model"
)

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	Name              string
	Notes             string
	Priority          model.Priority
	RequiredSeconds   int64
	MinChunkSeconds   int64
	MaxChunkSeconds   int64
	ScheduleNotBefore time.Time
	DueDate           time.Time
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
type ListTasksOptions struct {
	OpenOnly bool
	Limit    int
	Offset   int
}
