package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/scheduler"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/log"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	Run(c *gin.Context)
	Latest(c *gin.Context)
	Bookings(c *gin.Context)
	AddMeetings(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       scheduler.UseCase
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new HTTP handler for the scheduler domain. Query dates are
// resolved with dateMath.
func New(l log.Logger, uc scheduler.UseCase, dateMath *datemath.Parser) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
		now:      time.Now,
	}
}
