package datemath

import (
	"fmt"
	"time"
)

// ParseResult holds the result of parsing a relative date string.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}

// TimeOfDay is a wall-clock time such as the start of the work day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String formats as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}
