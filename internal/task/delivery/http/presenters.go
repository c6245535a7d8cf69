package http

import (
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Name            string `json:"name"              binding:"required,max=255"`
	Notes           string `json:"notes"             binding:"max=4000"`
	Priority        string `json:"priority"          example:"HIGH"`
	RequiredMinutes int64  `json:"required_minutes"  binding:"required,min=1"`
	MinChunkMinutes int64  `json:"min_chunk_minutes" binding:"min=0"`
	MaxChunkMinutes int64  `json:"max_chunk_minutes" binding:"min=0"`
	ScheduleAfter   string `json:"schedule_after"    example:"tomorrow"`
	Due             string `json:"due"               example:"2025-10-03T17:00:00Z"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Name:            r.Name,
		Notes:           r.Notes,
		Priority:        r.Priority,
		RequiredSeconds: r.RequiredMinutes * 60,
		MinChunkSeconds: r.MinChunkMinutes * 60,
		MaxChunkSeconds: r.MaxChunkMinutes * 60,
		ScheduleAfter:   r.ScheduleAfter,
		Due:             r.Due,
	}
}

type listReq struct {
	All    bool `form:"all"`
	Limit  int  `form:"limit"`
	Offset int  `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{IncludeDone: r.All, Limit: r.Limit, Offset: r.Offset}
}

// --- Response DTOs ---

type taskResp struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Notes             string     `json:"notes,omitempty"`
	Priority          string     `json:"priority"`
	RequiredMinutes   int64      `json:"required_minutes"`
	CompletedMinutes  int64      `json:"completed_minutes"`
	RemainingMinutes  int64      `json:"remaining_minutes"`
	MinChunkMinutes   int64      `json:"min_chunk_minutes,omitempty"`
	MaxChunkMinutes   int64      `json:"max_chunk_minutes,omitempty"`
	ScheduleNotBefore *time.Time `json:"schedule_not_before,omitempty"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:                t.ID,
		Name:              t.Name,
		Notes:             t.Notes,
		Priority:          string(t.Priority),
		RequiredMinutes:   t.RequiredSeconds / 60,
		CompletedMinutes:  t.CompletedSeconds / 60,
		RemainingMinutes:  t.RemainingSeconds() / 60,
		MinChunkMinutes:   t.MinChunkSeconds / 60,
		MaxChunkMinutes:   t.MaxChunkSeconds / 60,
		ScheduleNotBefore: optionalTime(t.ScheduleNotBefore),
		DueDate:           optionalTime(t.DueDate),
		CreatedAt:         t.CreatedAt,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

type detailResp struct {
	Task taskResp `json:"task"`
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
