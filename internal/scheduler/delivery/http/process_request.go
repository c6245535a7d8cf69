package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/model"
	"task-scheduler/internal/scheduler"
	"task-scheduler/pkg/response"
)

// processRunReq binds the optional run body. An empty body keeps defaults.
func (h *handler) processRunReq(c *gin.Context) (runReq, error) {
	var req runReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// processBookingsReq binds and resolves the booking filter.
func (h *handler) processBookingsReq(c *gin.Context) (scheduler.BookingsInput, error) {
	var req bookingsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return scheduler.BookingsInput{}, err
	}

	now := h.now()
	from, err := h.resolveDate(req.From, now)
	if err != nil {
		return scheduler.BookingsInput{}, err
	}
	to, err := h.resolveDate(req.To, now)
	if err != nil {
		return scheduler.BookingsInput{}, err
	}
	return scheduler.BookingsInput{From: from, To: to, Status: model.BookingStatus(req.Status)}, nil
}

func (h *handler) resolveDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := h.dateMath.ParseStrict(s, now)
	if err != nil {
		return time.Time{}, response.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return t, nil
}

// processMeetingsReq binds the meetings body.
func (h *handler) processMeetingsReq(c *gin.Context) (meetingsReq, error) {
	var req meetingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
