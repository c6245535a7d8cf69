package usecase

import (
	"sync"
	"time"

	"task-scheduler/internal/scheduler"
	"task-scheduler/internal/scheduler/repository"
	pkgLog "task-scheduler/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	tasks     repository.TaskRepository
	bookings  repository.BookingRepository
	busy      repository.BusySource
	publisher repository.Publisher
	meetings  repository.MeetingRepository
	opt       scheduler.Options
	now       func() time.Time

	running sync.Mutex

	lastMu sync.RWMutex
	last   *scheduler.RunOutput
}

// Option customises the usecase.
type Option func(*implUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// WithPublisher mirrors created and purged bookings to an external calendar.
func WithPublisher(p repository.Publisher) Option {
	return func(uc *implUseCase) {
		uc.publisher = p
	}
}

// WithMeetings enables AddMeetings. The same store should also be part of
// the busy source so stored meetings block time.
func WithMeetings(m repository.MeetingRepository) Option {
	return func(uc *implUseCase) {
		uc.meetings = m
	}
}

// New creates a new scheduler UseCase instance.
func New(
	l pkgLog.Logger,
	tasks repository.TaskRepository,
	bookings repository.BookingRepository,
	busy repository.BusySource,
	opt scheduler.Options,
	opts ...Option,
) *implUseCase {
	if opt.Location == nil {
		opt.Location = time.UTC
	}
	uc := &implUseCase{
		l:        l,
		tasks:    tasks,
		bookings: bookings,
		busy:     busy,
		opt:      opt,
		now:      time.Now,
	}
	for _, o := range opts {
		o(uc)
	}
	return uc
}
