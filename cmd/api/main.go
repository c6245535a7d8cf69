package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-scheduler/config"
	_ "task-scheduler/docs" // Swagger docs
	"task-scheduler/internal/app"
	"task-scheduler/internal/httpserver"
	"task-scheduler/internal/middleware"
	schedulerCron "task-scheduler/internal/scheduler/delivery/cron"
	schedulerHTTP "task-scheduler/internal/scheduler/delivery/http"
	taskHTTP "task-scheduler/internal/task/delivery/http"
	"task-scheduler/pkg/log"
)

// @title       Task Scheduler API
// @description Splits tasks into chunks and books them into free calendar time, reconciling with meetings on every run.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Domains
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize: %v", err)
		os.Exit(1)
	}
	defer a.Close()

	// 4. Periodic runs (optional)
	if cfg.Scheduler.CronSpec != "" {
		worker, err := schedulerCron.New(logger, a.Scheduler, schedulerCron.Options{
			Spec:     cfg.Scheduler.CronSpec,
			Location: a.Options.Location,
			Timeout:  cfg.Scheduler.RunTimeout,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize cron worker: %v", err)
			os.Exit(1)
		}
		worker.Start(ctx)
		defer worker.Stop(context.Background())
	} else {
		logger.Info(ctx, "scheduler.cron_spec is empty, periodic runs disabled")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.RateLimit.RequestsPerMin),
		TaskHandler:      taskHTTP.New(logger, a.Tasks),
		SchedulerHandler: schedulerHTTP.New(logger, a.Scheduler, a.DateMath),
		ReadyCheck:       func() error { return a.DB.PingContext(ctx) },
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
