package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	"task-scheduler/internal/task/repository"
)

// Create validates and stores a task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	opt, err := uc.buildCreateOptions(input)
	if err != nil {
		return model.Task{}, err
	}

	created, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "task.usecase.Create: created %s (%s, %ds)", created.ID, created.Priority, created.RequiredSeconds)
	return created, nil
}

func (uc *implUseCase) buildCreateOptions(input task.CreateInput) (repository.CreateTaskOptions, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return repository.CreateTaskOptions{}, task.ErrEmptyName
	}
	if input.RequiredSeconds <= 0 {
		return repository.CreateTaskOptions{}, task.ErrInvalidDuration
	}
	if input.MinChunkSeconds < 0 || input.MaxChunkSeconds < 0 ||
		(input.MinChunkSeconds > 0 && input.MaxChunkSeconds > 0 && input.MaxChunkSeconds < input.MinChunkSeconds) {
		return repository.CreateTaskOptions{}, task.ErrInvalidChunk
	}
	priority, ok := model.ParsePriority(input.Priority)
	if !ok {
		return repository.CreateTaskOptions{}, task.ErrInvalidPriority
	}

	now := uc.now().In(uc.dateMath.Location())
	notBefore, err := uc.resolveDate(input.ScheduleAfter, now)
	if err != nil {
		return repository.CreateTaskOptions{}, err
	}
	due, err := uc.resolveDate(input.Due, now)
	if err != nil {
		return repository.CreateTaskOptions{}, err
	}

	return repository.CreateTaskOptions{
		Name:              name,
		Notes:             strings.TrimSpace(input.Notes),
		Priority:          priority,
		RequiredSeconds:   input.RequiredSeconds,
		MinChunkSeconds:   input.MinChunkSeconds,
		MaxChunkSeconds:   input.MaxChunkSeconds,
		ScheduleNotBefore: notBefore,
		DueDate:           due,
	}, nil
}

// resolveDate turns user input into an instant. Empty input means no date.
func (uc *implUseCase) resolveDate(s string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	t, err := uc.dateMath.ParseStrict(s, now)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", task.ErrInvalidDate, err)
	}
	return t, nil
}
