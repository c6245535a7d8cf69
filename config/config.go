package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"task-scheduler/internal/scheduler"
	"task-scheduler/internal/scheduler/engine"
	"task-scheduler/pkg/datemath"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Scheduling
	Scheduler      SchedulerConfig
	Storage        StorageConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// SchedulerConfig is the scheduling policy as written in config.yaml.
type SchedulerConfig struct {
	Timezone               string
	HorizonDays            int
	WorkStart              string
	WorkEnd                string
	Workdays               []string
	BreakSeconds           int64
	DefaultMinChunkSeconds int64
	DefaultMaxChunkSeconds int64
	StepSeconds            int64
	PriorityMode           string
	UrgencyWindowHours     int
	CronSpec               string // empty disables periodic runs
	RunTimeout             time.Duration
}

type StorageConfig struct {
	Path        string
	BusyTimeout time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
	PublishBookings bool
	IncludeAllDay   bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// default locations.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/app/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Scheduler
	cfg.Scheduler.Timezone = v.GetString("scheduler.timezone")
	cfg.Scheduler.HorizonDays = v.GetInt("scheduler.horizon_days")
	cfg.Scheduler.WorkStart = v.GetString("scheduler.work_start")
	cfg.Scheduler.WorkEnd = v.GetString("scheduler.work_end")
	cfg.Scheduler.Workdays = splitList(v.GetStringSlice("scheduler.workdays"))
	cfg.Scheduler.BreakSeconds = v.GetInt64("scheduler.break_seconds")
	cfg.Scheduler.DefaultMinChunkSeconds = v.GetInt64("scheduler.default_min_chunk_seconds")
	cfg.Scheduler.DefaultMaxChunkSeconds = v.GetInt64("scheduler.default_max_chunk_seconds")
	cfg.Scheduler.StepSeconds = v.GetInt64("scheduler.step_seconds")
	cfg.Scheduler.PriorityMode = v.GetString("scheduler.priority_mode")
	cfg.Scheduler.UrgencyWindowHours = v.GetInt("scheduler.urgency_window_hours")
	cfg.Scheduler.CronSpec = v.GetString("scheduler.cron_spec")
	cfg.Scheduler.RunTimeout = v.GetDuration("scheduler.run_timeout")

	// Storage
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Storage.BusyTimeout = v.GetDuration("storage.busy_timeout")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = expandEnvVar(v, v.GetString("google_calendar.credentials_path"))
	cfg.GoogleCalendar.TokenPath = expandEnvVar(v, v.GetString("google_calendar.token_path"))
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.PublishBookings = v.GetBool("google_calendar.publish_bookings")
	cfg.GoogleCalendar.IncludeAllDay = v.GetBool("google_calendar.include_all_day")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.requests_per_min", 30)

	// Scheduling policy
	v.SetDefault("scheduler.timezone", "UTC")
	v.SetDefault("scheduler.horizon_days", 7)
	v.SetDefault("scheduler.work_start", "08:00")
	v.SetDefault("scheduler.work_end", "17:00")
	v.SetDefault("scheduler.workdays", []string{"mon", "tue", "wed", "thu", "fri"})
	v.SetDefault("scheduler.break_seconds", 900)
	v.SetDefault("scheduler.default_min_chunk_seconds", 1800)
	v.SetDefault("scheduler.default_max_chunk_seconds", 3600)
	v.SetDefault("scheduler.step_seconds", 300)
	v.SetDefault("scheduler.priority_mode", string(engine.RankOrdinal))
	v.SetDefault("scheduler.urgency_window_hours", 168)
	v.SetDefault("scheduler.run_timeout", "5m")

	v.SetDefault("storage.path", "data/scheduler.db")
	v.SetDefault("storage.busy_timeout", "5s")

	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// Location resolves the configured timezone.
func (c SchedulerConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Options converts the configuration into the scheduling policy and validates it.
func (c SchedulerConfig) Options() (scheduler.Options, error) {
	loc, err := c.Location()
	if err != nil {
		return scheduler.Options{}, err
	}
	start, err := datemath.ParseTimeOfDay(c.WorkStart)
	if err != nil {
		return scheduler.Options{}, fmt.Errorf("%w: work_start: %v", scheduler.ErrInvalidWorkWindow, err)
	}
	end, err := datemath.ParseTimeOfDay(c.WorkEnd)
	if err != nil {
		return scheduler.Options{}, fmt.Errorf("%w: work_end: %v", scheduler.ErrInvalidWorkWindow, err)
	}
	workdays, err := datemath.ParseWeekdays(c.Workdays)
	if err != nil {
		return scheduler.Options{}, fmt.Errorf("workdays: %w", err)
	}

	opt := scheduler.Options{
		Location:      loc,
		HorizonDays:   c.HorizonDays,
		WorkStart:     start,
		WorkEnd:       end,
		Workdays:      workdays,
		Break:         time.Duration(c.BreakSeconds) * time.Second,
		MinChunk:      c.DefaultMinChunkSeconds,
		MaxChunk:      c.DefaultMaxChunkSeconds,
		Step:          c.StepSeconds,
		RankMode:      engine.RankMode(strings.ToLower(c.PriorityMode)),
		UrgencyWindow: time.Duration(c.UrgencyWindowHours) * time.Hour,
	}
	if err := opt.Validate(); err != nil {
		return scheduler.Options{}, err
	}
	return opt, nil
}

// splitList accepts both YAML lists and comma separated env values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return value
}
