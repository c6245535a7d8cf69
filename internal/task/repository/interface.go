package repository

import (
	"context"

	"task-scheduler/internal/model"
)

// Repository is the task data store.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	// ListOpenTasks returns every task with required time left.
	ListOpenTasks(ctx context.Context) ([]model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
