package scheduler

import (
	"fmt"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler/engine"
	"task-scheduler/pkg/datemath"
)

// Options is the scheduling policy of a run.
type Options struct {
	Location      *time.Location
	HorizonDays   int
	WorkStart     datemath.TimeOfDay
	WorkEnd       datemath.TimeOfDay
	Workdays      map[time.Weekday]bool // empty means every day
	Break         time.Duration
	MinChunk      int64 // seconds, used when a task sets none
	MaxChunk      int64 // seconds, used when a task sets none
	Step          int64 // seconds removed per fallback attempt
	RankMode      engine.RankMode
	UrgencyWindow time.Duration
}

// Validate reports configuration errors.
func (o Options) Validate() error {
	if err := engine.ValidateWorkWindow(o.WorkStart, o.WorkEnd); err != nil {
		return err
	}
	if o.HorizonDays < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, o.HorizonDays)
	}
	switch {
	case o.MinChunk <= 0:
		return fmt.Errorf("%w: min chunk must be positive, got %d", ErrInvalidChunkPolicy, o.MinChunk)
	case o.MaxChunk < o.MinChunk:
		return fmt.Errorf("%w: max chunk %d below min chunk %d", ErrInvalidChunkPolicy, o.MaxChunk, o.MinChunk)
	case o.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidChunkPolicy, o.Step)
	case o.Break < 0:
		return fmt.Errorf("%w: negative break %s", ErrInvalidChunkPolicy, o.Break)
	}
	switch o.RankMode {
	case "", engine.RankOrdinal, engine.RankUrgency:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRankMode, o.RankMode)
	}
	return nil
}

// RunInput overrides parts of the configured policy for one run.
type RunInput struct {
	Days int // horizon override, 0 keeps the configured horizon
}

// BookingsInput filters stored bookings. Zero times leave a side open.
type BookingsInput struct {
	From   time.Time
	To     time.Time
	Status model.BookingStatus
}

// DayReport is what one day's cycle decided.
type DayReport struct {
	Index       int                       `json:"index"`
	Date        time.Time                 `json:"date"`
	WindowStart time.Time                 `json:"window_start"`
	WindowEnd   time.Time                 `json:"window_end"`
	Kept        []model.Booking           `json:"kept"`
	Conflicts   []model.Booking           `json:"conflicts"`
	Created     []model.Booking           `json:"created"`
	Duplicates  int                       `json:"duplicates"`
	Unscheduled []model.UnscheduledRecord `json:"unscheduled"`
}

// RunOutput is the report of a run.
type RunOutput struct {
	RunID         string                    `json:"run_id"`
	StartedAt     time.Time                 `json:"started_at"`
	FinishedAt    time.Time                 `json:"finished_at"`
	Frozen        []model.Booking           `json:"frozen"`
	Days          []DayReport               `json:"days"`
	TotalBookings int                       `json:"total_bookings"`
	Remaining     []model.UnscheduledRecord `json:"remaining"`
}
