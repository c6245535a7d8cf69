package model

import (
	"strings"
	"time"
)

// Priority is the user-facing priority of a task.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityNormal Priority = "NORMAL"
	PriorityLow    Priority = "LOW"
)

// ParsePriority normalises user input. MEDIUM is accepted as NORMAL.
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HIGH":
		return PriorityHigh, true
	case "NORMAL", "MEDIUM", "":
		return PriorityNormal, true
	case "LOW":
		return PriorityLow, true
	}
	return "", false
}

// Rank is the priority ordinal, lower is more urgent.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Weight is the base score used by urgency ranking.
func (p Priority) Weight() int64 {
	switch p {
	case PriorityHigh:
		return 200
	case PriorityLow:
		return 40
	default:
		return 120
	}
}

// Task is a unit of required work to be placed on the calendar.
type Task struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Notes             string    `json:"notes,omitempty"`
	Priority          Priority  `json:"priority"`
	RequiredSeconds   int64     `json:"required_seconds"`
	CompletedSeconds  int64     `json:"completed_seconds"`
	MinChunkSeconds   int64     `json:"min_chunk_seconds,omitempty"` // 0 means use the scheduler default
	MaxChunkSeconds   int64     `json:"max_chunk_seconds,omitempty"` // 0 means use the scheduler default
	ScheduleNotBefore time.Time `json:"schedule_not_before,omitzero"`
	DueDate           time.Time `json:"due_date,omitzero"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RemainingSeconds is required minus completed, floored at zero.
func (t Task) RemainingSeconds() int64 {
	return max(0, t.RequiredSeconds-max(0, t.CompletedSeconds))
}
