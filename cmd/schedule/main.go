// cmd/schedule runs a single reconciliation pass and prints the report.
//
// Usage:
//
//	go run ./cmd/schedule --days 14 --config config/config.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"task-scheduler/config"
	"task-scheduler/internal/app"
	"task-scheduler/internal/scheduler"
	"task-scheduler/pkg/log"
)

func main() {
	days := pflag.Int("days", 0, "days to schedule ahead, 0 uses scheduler.horizon_days")
	cfgPath := pflag.String("config", "", "config file, empty searches the default locations")
	pflag.Parse()

	cfg, err := config.LoadFile(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize:", err)
		os.Exit(1)
	}
	defer a.Close()

	out, err := a.Scheduler.Run(ctx, scheduler.RunInput{Days: *days})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Run failed:", err)
		os.Exit(1)
	}

	writeReport(os.Stdout, out)
}
