package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"task-scheduler/internal/scheduler"
	"task-scheduler/internal/scheduler/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: test\n"))
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Environment.Name != "test" || cfg.HTTPServer.Port != 8080 {
		t.Errorf("unexpected server config: %+v", cfg)
	}
	s := cfg.Scheduler
	if s.HorizonDays != 7 || s.WorkStart != "08:00" || s.WorkEnd != "17:00" || len(s.Workdays) != 5 ||
		s.BreakSeconds != 900 || s.DefaultMinChunkSeconds != 1800 || s.DefaultMaxChunkSeconds != 3600 ||
		s.StepSeconds != 300 || s.PriorityMode != "ordinal" || s.UrgencyWindowHours != 168 || s.CronSpec != "" {
		t.Errorf("unexpected scheduler defaults: %+v", s)
	}
	if cfg.Storage.BusyTimeout != 5*time.Second || cfg.GoogleCalendar.CalendarID != "primary" {
		t.Errorf("unexpected storage/calendar defaults: %+v %+v", cfg.Storage, cfg.GoogleCalendar)
	}

	opt, err := s.Options()
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opt.Break != 15*time.Minute || opt.RankMode != engine.RankOrdinal || !opt.Workdays[time.Friday] || opt.Workdays[time.Saturday] {
		t.Errorf("unexpected options: %+v", opt)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
scheduler:
  timezone: Europe/London
  horizon_days: 3
  work_start: "09:30"
  work_end: "18:00"
  workdays: [mon, wed]
  priority_mode: URGENCY
  cron_spec: "@every 15m"
google_calendar:
  credentials_path: /secrets/creds.json
  publish_bookings: true
`)
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Scheduler.CronSpec != "@every 15m" || !cfg.GoogleCalendar.PublishBookings || cfg.GoogleCalendar.CredentialsPath != "/secrets/creds.json" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	opt, err := cfg.Scheduler.Options()
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	if opt.HorizonDays != 3 || opt.WorkStart.Minutes() != 570 || opt.RankMode != engine.RankUrgency || len(opt.Workdays) != 2 {
		t.Errorf("unexpected options: %+v", opt)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for an explicit missing file")
	}
}

func TestSchedulerOptionsErrors(t *testing.T) {
	valid := SchedulerConfig{
		Timezone: "UTC", HorizonDays: 7, WorkStart: "08:00", WorkEnd: "17:00",
		BreakSeconds: 900, DefaultMinChunkSeconds: 1800, DefaultMaxChunkSeconds: 3600, StepSeconds: 300,
		PriorityMode: "ordinal",
	}
	tests := []struct {
		name    string
		mutate  func(c *SchedulerConfig)
		wantErr error
	}{
		{"End before start", func(c *SchedulerConfig) { c.WorkEnd = "07:00" }, scheduler.ErrInvalidWorkWindow},
		{"Bad time", func(c *SchedulerConfig) { c.WorkStart = "8am" }, scheduler.ErrInvalidWorkWindow},
		{"Zero horizon", func(c *SchedulerConfig) { c.HorizonDays = 0 }, scheduler.ErrInvalidHorizon},
		{"Max below min", func(c *SchedulerConfig) { c.DefaultMaxChunkSeconds = 600 }, scheduler.ErrInvalidChunkPolicy},
		{"Unknown mode", func(c *SchedulerConfig) { c.PriorityMode = "fifo" }, scheduler.ErrInvalidRankMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if _, err := c.Options(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	bad := valid
	bad.Timezone = "Mars/Olympus"
	if _, err := bad.Options(); err == nil {
		t.Error("expected timezone error")
	}
	bad = valid
	bad.Workdays = []string{"funday"}
	if _, err := bad.Options(); err == nil {
		t.Error("expected weekday error")
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"mon, tue", " fri ", ""})
	if len(got) != 3 || got[0] != "mon" || got[1] != "tue" || got[2] != "fri" {
		t.Errorf("splitList() = %v", got)
	}
}
