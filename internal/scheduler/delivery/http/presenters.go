package http

import (
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler"
	"task-scheduler/pkg/response"
)

// --- Request DTOs ---

type runReq struct {
	Days int `json:"days" binding:"min=0,max=366"`
}

func (r runReq) toInput() scheduler.RunInput {
	return scheduler.RunInput{Days: r.Days}
}

type bookingsReq struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Status string `form:"status"`
}

type meetingReq struct {
	Start   time.Time `json:"start"   binding:"required"`
	End     time.Time `json:"end"     binding:"required"`
	Summary string    `json:"summary" binding:"max=255"`
}

type meetingsReq struct {
	Meetings []meetingReq `json:"meetings" binding:"required,dive"`
}

func (r meetingsReq) toInput() []model.BusyInterval {
	out := make([]model.BusyInterval, len(r.Meetings))
	for i, m := range r.Meetings {
		out[i] = model.BusyInterval{Start: m.Start, End: m.End, Summary: m.Summary}
	}
	return out
}

// --- Response DTOs ---

type bookingResp struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	Title      string    `json:"title"`
	Priority   string    `json:"priority"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Minutes    int64     `json:"minutes"`
	SlotIndex  int       `json:"slot_index"`
	Status     string    `json:"status"`
	ExternalID string    `json:"external_id,omitempty"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		ID:         b.ID,
		TaskID:     b.TaskID,
		Title:      b.Title,
		Priority:   string(b.Priority),
		Start:      b.Start,
		End:        b.End,
		Minutes:    b.DurationSeconds / 60,
		SlotIndex:  b.SlotIndex,
		Status:     string(b.Status),
		ExternalID: b.ExternalID,
	}
}

func newBookingResps(bs []model.Booking) []bookingResp {
	out := make([]bookingResp, len(bs))
	for i, b := range bs {
		out[i] = newBookingResp(b)
	}
	return out
}

type unscheduledResp struct {
	TaskID           string `json:"task_id"`
	Name             string `json:"name"`
	Priority         string `json:"priority"`
	RemainingMinutes int64  `json:"remaining_minutes"`
}

func newUnscheduledResps(rs []model.UnscheduledRecord) []unscheduledResp {
	out := make([]unscheduledResp, len(rs))
	for i, r := range rs {
		out[i] = unscheduledResp{
			TaskID:           r.Task.ID,
			Name:             r.Task.Name,
			Priority:         string(r.Task.Priority),
			RemainingMinutes: r.RemainingSeconds / 60,
		}
	}
	return out
}

type dayResp struct {
	Date        response.Date     `json:"date"`
	WindowStart time.Time         `json:"window_start"`
	WindowEnd   time.Time         `json:"window_end"`
	Kept        []bookingResp     `json:"kept"`
	Conflicts   []bookingResp     `json:"conflicts"`
	Created     []bookingResp     `json:"created"`
	Duplicates  int               `json:"duplicates"`
	Unscheduled []unscheduledResp `json:"unscheduled"`
}

type runResp struct {
	RunID         string            `json:"run_id"`
	StartedAt     time.Time         `json:"started_at"`
	FinishedAt    time.Time         `json:"finished_at"`
	Frozen        []bookingResp     `json:"frozen"`
	Days          []dayResp         `json:"days"`
	TotalBookings int               `json:"total_bookings"`
	Remaining     []unscheduledResp `json:"remaining"`
}

func (h *handler) newRunResp(out scheduler.RunOutput) runResp {
	days := make([]dayResp, len(out.Days))
	for i, d := range out.Days {
		days[i] = dayResp{
			Date:        response.Date(d.Date),
			WindowStart: d.WindowStart,
			WindowEnd:   d.WindowEnd,
			Kept:        newBookingResps(d.Kept),
			Conflicts:   newBookingResps(d.Conflicts),
			Created:     newBookingResps(d.Created),
			Duplicates:  d.Duplicates,
			Unscheduled: newUnscheduledResps(d.Unscheduled),
		}
	}
	return runResp{
		RunID:         out.RunID,
		StartedAt:     out.StartedAt,
		FinishedAt:    out.FinishedAt,
		Frozen:        newBookingResps(out.Frozen),
		Days:          days,
		TotalBookings: out.TotalBookings,
		Remaining:     newUnscheduledResps(out.Remaining),
	}
}

type bookingsResp struct {
	Bookings []bookingResp `json:"bookings"`
}

type meetingsResp struct {
	Stored int `json:"stored"`
}
