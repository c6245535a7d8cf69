package usecase

import (
	"context"
	"errors"
	"fmt"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	"task-scheduler/internal/task/repository"
)

// List returns a page of tasks.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	offset := max(0, input.Offset)

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		OpenOnly: !input.IncludeDone,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return task.ListOutput{Tasks: tasks, Total: total, Limit: limit, Offset: offset}, nil
}

// Detail returns one task.
func (uc *implUseCase) Detail(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Detail: %v", err)
		return model.Task{}, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// Delete removes a task together with its bookings.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return fmt.Errorf("failed to delete task: %w", err)
	}
	uc.l.Infof(ctx, "task.usecase.Delete: deleted %s", id)
	return nil
}
