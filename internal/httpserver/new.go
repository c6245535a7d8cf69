package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	schedulerHTTP "task-scheduler/internal/scheduler/delivery/http"
	taskHTTP "task-scheduler/internal/task/delivery/http"
	"task-scheduler/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	taskHandler      taskHTTP.Handler
	schedulerHandler schedulerHTTP.Handler

	// Readiness
	readyCheck func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	TaskHandler      taskHTTP.Handler
	SchedulerHandler schedulerHTTP.Handler

	// ReadyCheck reports whether dependencies (the database) are reachable.
	ReadyCheck func() error
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		taskHandler:      cfg.TaskHandler,
		schedulerHandler: cfg.SchedulerHandler,
		readyCheck:       cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil || srv.schedulerHandler == nil {
		return errors.New("task and scheduler handlers are required")
	}
	return nil
}
