package task

import "task-scheduler/internal/model"

// CreateInput is the input for task creation.
type CreateInput struct {
	Name            string
	Notes           string
	Priority        string // HIGH, NORMAL (or MEDIUM), LOW
	RequiredSeconds int64
	MinChunkSeconds int64 // 0 uses the scheduler default
	MaxChunkSeconds int64 // 0 uses the scheduler default
	ScheduleAfter   string
	Due             string
}

// ListInput filters the task list.
type ListInput struct {
	IncludeDone bool
	Limit       int
	Offset      int
}

// ListOutput is a page of tasks.
type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}
