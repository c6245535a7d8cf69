package engine

import (
	"errors"
	"fmt"
	"time"

	"task-scheduler/pkg/datemath"
)

var (
	ErrInvalidWindow  = errors.New("work window end must be after start")
	ErrInvalidHorizon = errors.New("horizon must be at least one day")
)

// DayWindow is the schedulable part of one calendar day.
type DayWindow struct {
	Index int       // position in the horizon, 0 is today
	Date  time.Time // midnight of the day in the run timezone
	Start time.Time
	End   time.Time
}

// HorizonOptions describes the multi-day work window.
type HorizonOptions struct {
	Now       time.Time
	Days      int
	WorkStart datemath.TimeOfDay
	WorkEnd   datemath.TimeOfDay
	Workdays  map[time.Weekday]bool // empty means every day
	Location  *time.Location
}

// ValidateWorkWindow reports a configuration error for an empty or inverted
// daily window.
func ValidateWorkWindow(start, end datemath.TimeOfDay) error {
	if end.Minutes() <= start.Minutes() {
		return fmt.Errorf("%w: %s-%s", ErrInvalidWindow, start, end)
	}
	return nil
}

// Windows lists the eligible day windows of the horizon starting today.
// Today's window starts no earlier than Now; a day whose window has already
// ended is skipped.
func Windows(opt HorizonOptions) ([]DayWindow, error) {
	if opt.Days <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, opt.Days)
	}
	if err := ValidateWorkWindow(opt.WorkStart, opt.WorkEnd); err != nil {
		return nil, err
	}
	loc := opt.Location
	if loc == nil {
		loc = time.UTC
	}

	now := opt.Now.In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	windows := make([]DayWindow, 0, opt.Days)
	for d := 0; d < opt.Days; d++ {
		day := today.AddDate(0, 0, d)
		if len(opt.Workdays) > 0 && !opt.Workdays[day.Weekday()] {
			continue
		}

		start := time.Date(day.Year(), day.Month(), day.Day(), opt.WorkStart.Hour, opt.WorkStart.Minute, 0, 0, loc)
		end := time.Date(day.Year(), day.Month(), day.Day(), opt.WorkEnd.Hour, opt.WorkEnd.Minute, 0, 0, loc)
		if d == 0 && now.After(start) {
			start = now
		}
		if !end.After(start) {
			continue
		}

		windows = append(windows, DayWindow{Index: d, Date: day, Start: start, End: end})
	}
	return windows, nil
}
