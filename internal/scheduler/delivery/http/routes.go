package http

import (
	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Triggering a
// run is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	schedule := rg.Group("/schedule")
	{
		schedule.POST("/run", mw.RateLimit(), h.Run)
		schedule.GET("/latest", h.Latest)
		schedule.GET("/bookings", h.Bookings)
	}
	rg.POST("/meetings", h.AddMeetings)
}
