package model

// UnscheduledRecord is the part of a task that could not be placed.
type UnscheduledRecord struct {
	Task             Task  `json:"task"`
	RemainingSeconds int64 `json:"remaining_seconds"`
}

// ScheduleResult is the outcome of one allocation pass.
type ScheduleResult struct {
	Bookings    []Booking
	Unscheduled []UnscheduledRecord
}

// SecondsByTask sums booked seconds per task id.
func (r ScheduleResult) SecondsByTask() map[string]int64 {
	out := make(map[string]int64, len(r.Bookings))
	for _, b := range r.Bookings {
		out[b.TaskID] += b.DurationSeconds
	}
	return out
}
