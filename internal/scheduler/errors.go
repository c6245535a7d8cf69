package scheduler

import (
	"errors"

	"task-scheduler/internal/scheduler/engine"
)

// Configuration errors are reported before anything is read or written.
var (
	ErrInvalidWorkWindow  = engine.ErrInvalidWindow
	ErrInvalidHorizon     = engine.ErrInvalidHorizon
	ErrInvalidChunkPolicy = errors.New("invalid chunk policy")
	ErrInvalidRankMode    = errors.New("unknown priority mode")
)

var (
	ErrRunInProgress = errors.New("a scheduling run is already in progress")
	ErrSourceFetch   = errors.New("failed to read scheduling snapshot")
	ErrCommit        = errors.New("failed to commit scheduled bookings")
	ErrNoRunYet      = errors.New("no scheduling run has completed yet")

	ErrInvalidMeeting       = errors.New("meeting must end after it starts")
	ErrMeetingsUnavailable  = errors.New("meeting store is not configured")
	ErrInvalidBookingFilter = errors.New("invalid booking filter")
)
