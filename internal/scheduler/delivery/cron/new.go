package cron

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"task-scheduler/internal/scheduler"
	pkgLog "task-scheduler/pkg/log"
)

const defaultTimeout = 5 * time.Minute

// Options configures the periodic trigger.
type Options struct {
	Spec     string // cron spec or descriptor such as "@every 15m"
	Location *time.Location
	Timeout  time.Duration // per run, 0 uses five minutes
}

// Worker re-runs the scheduler on a cron spec. A tick that fires while the
// previous run is still going is skipped.
type Worker struct {
	l   pkgLog.Logger
	uc  scheduler.UseCase
	opt Options

	parser cron.Parser

	mu sync.Mutex
	c  *cron.Cron
}

// New validates the spec and creates a stopped worker.
func New(l pkgLog.Logger, uc scheduler.UseCase, opt Options) (*Worker, error) {
	if opt.Location == nil {
		opt.Location = time.UTC
	}
	if opt.Timeout <= 0 {
		opt.Timeout = defaultTimeout
	}
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	if _, err := parser.Parse(opt.Spec); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", opt.Spec, err)
	}
	return &Worker{l: l, uc: uc, opt: opt, parser: parser}, nil
}
