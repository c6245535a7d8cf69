package usecase_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler/repository"
	"task-scheduler/pkg/interval"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// memStore holds tasks and bookings the way the SQLite store does.
type memStore struct {
	mu       sync.Mutex
	tasks    []model.Task
	bookings map[string]model.Booking

	taskErr   error
	listErr   error
	commitErr error

	taskCalls int
	commits   int
	freezes   int
}

func newMemStore(tasks ...model.Task) *memStore {
	return &memStore{tasks: tasks, bookings: map[string]model.Booking{}}
}

func (s *memStore) ListOpenTasks(ctx context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.taskCalls++
	if s.taskErr != nil {
		return nil, s.taskErr
	}
	var out []model.Task
	for _, t := range s.tasks {
		if t.RemainingSeconds() > 0 {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memStore) ListBookings(ctx context.Context, opt repository.ListBookingsOptions) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []model.Booking
	for _, b := range s.bookings {
		if opt.Status != "" && b.Status != opt.Status {
			continue
		}
		if !opt.From.IsZero() && !b.End.After(opt.From) {
			continue
		}
		if !opt.To.IsZero() && !b.Start.Before(opt.To) {
			continue
		}
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b model.Booking) int { return a.Start.Compare(b.Start) })
	return out, nil
}

func (s *memStore) FreezeBookings(ctx context.Context, ids []string) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.freezes++
	var frozen []model.Booking
	for _, id := range ids {
		b, ok := s.bookings[id]
		if !ok || b.Status != model.BookingPlanned {
			continue
		}
		b.Status = model.BookingLocked
		s.bookings[id] = b
		for i := range s.tasks {
			if s.tasks[i].ID == b.TaskID {
				s.tasks[i].CompletedSeconds += b.DurationSeconds
			}
		}
		frozen = append(frozen, b)
	}
	return frozen, nil
}

func (s *memStore) CommitDay(ctx context.Context, opt repository.CommitDayOptions) (repository.CommitDayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.commitErr != nil {
		return repository.CommitDayResult{}, s.commitErr
	}
	s.commits++
	var res repository.CommitDayResult
	for _, id := range opt.Delete {
		if _, ok := s.bookings[id]; ok {
			delete(s.bookings, id)
			res.Deleted++
		}
	}
	for _, b := range opt.Insert {
		if _, ok := s.bookings[b.ID]; ok {
			res.Duplicates++
			continue
		}
		s.bookings[b.ID] = b
		res.Inserted = append(res.Inserted, b)
	}
	return res, nil
}

func (s *memStore) SetExternalID(ctx context.Context, id, externalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return errors.New("not found")
	}
	b.ExternalID = externalID
	s.bookings[id] = b
	return nil
}

func (s *memStore) seed(bookings ...model.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range bookings {
		s.bookings[b.ID] = b
	}
}

func (s *memStore) removeTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = slices.DeleteFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

func (s *memStore) setRequired(id string, seconds int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].RequiredSeconds = seconds
		}
	}
}

func (s *memStore) byStatus(status model.BookingStatus) []model.Booking {
	out, _ := s.ListBookings(context.Background(), repository.ListBookingsOptions{Status: status})
	return out
}

func (s *memStore) task(id string) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t
		}
	}
	return model.Task{}
}

type mockBusy struct {
	mu      sync.Mutex
	busy    []model.BusyInterval
	err     error
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (m *mockBusy) ListBusy(ctx context.Context, opt repository.ListBusyOptions) ([]model.BusyInterval, error) {
	if m.entered != nil {
		m.entered <- struct{}{}
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []model.BusyInterval
	for _, b := range m.busy {
		if interval.Overlaps(b.Interval(), interval.New(opt.From, opt.To)) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBusy) add(start, end time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = append(m.busy, model.BusyInterval{Start: start, End: end, Kind: model.BusyExternalMeeting, Source: "test"})
}

type mockPublisher struct {
	published   []string
	unpublished []string
	err         error
}

func (m *mockPublisher) Publish(ctx context.Context, b model.Booking) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.published = append(m.published, b.ID)
	return "evt-" + b.ID, nil
}

func (m *mockPublisher) Unpublish(ctx context.Context, b model.Booking) error {
	m.unpublished = append(m.unpublished, b.ExternalID)
	return m.err
}

type mockMeetings struct {
	mockBusy
	stored []model.BusyInterval
}

func (m *mockMeetings) UpsertMeetings(ctx context.Context, meetings []model.BusyInterval) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.stored = append(m.stored, meetings...)
	for _, b := range meetings {
		m.add(b.Start, b.End)
	}
	return len(meetings), nil
}
