package task

import (
	"context"

	"task-scheduler/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create validates and stores a task. Due and schedule-after dates accept
	// RFC3339, YYYY-MM-DD or relative phrases like "in 3 days".
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// List returns tasks, open ones only unless IncludeDone is set.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	Detail(ctx context.Context, id string) (model.Task, error)
	Delete(ctx context.Context, id string) error
}
