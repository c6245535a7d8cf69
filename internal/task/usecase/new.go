package usecase

import (
	"time"

	"task-scheduler/internal/task"
	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/datemath"
	pkgLog "task-scheduler/pkg/log"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new task UseCase instance. Dates are resolved in the
// parser's timezone.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser) task.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
	}
}
