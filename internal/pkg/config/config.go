// Package config centralizes environment-driven configuration with
// validated fallbacks. Bad values never abort startup; they produce
// warnings and the documented default.
package config

import (
	"time"
)

// Defaults for every tunable.
const (
	DefaultHTTPAddr             = ":8080"
	DefaultWeeklyGoalTarget     = 3
	DefaultDailyEssentialSource = "tldr"
	DefaultRateLimitRPS         = 10
	DefaultRateLimitBurst       = 20
	DefaultCronSchedule         = "5 0 * * *" // daily at 00:05
	DefaultTimezone             = "UTC"
	DefaultShutdownTimeout      = 10 * time.Second
)

// Config holds the runtime configuration shared by cmd/api and cmd/worker.
type Config struct {
	HTTPAddr             string
	DatabaseURL          string
	WeeklyGoalTarget     int
	DailyEssentialSource string
	RateLimitRPS         int
	RateLimitBurst       int
	CronSchedule         string
	Timezone             string
	ShutdownTimeout      time.Duration
}

// Load reads configuration from the environment. It always succeeds;
// invalid values fall back to defaults and are reported as warnings
// for the caller to log.
func Load() (Config, []string) {
	var warnings []string
	collect := func(r ConfigLoadResult) ConfigLoadResult {
		warnings = append(warnings, r.Warnings...)
		return r
	}

	target := collect(LoadEnvInt("WEEKLY_GOAL_TARGET", DefaultWeeklyGoalTarget, func(v int) error {
		return ValidateIntRange(v, 1, 100)
	}))
	rps := collect(LoadEnvInt("RATE_LIMIT_RPS", DefaultRateLimitRPS, func(v int) error {
		return ValidateIntRange(v, 1, 10000)
	}))
	burst := collect(LoadEnvInt("RATE_LIMIT_BURST", DefaultRateLimitBurst, func(v int) error {
		return ValidateIntRange(v, 1, 10000)
	}))
	schedule := collect(LoadEnvWithFallback("CRON_SCHEDULE", DefaultCronSchedule, ValidateCronSchedule))
	timezone := collect(LoadEnvWithFallback("TIMEZONE", DefaultTimezone, ValidateTimezone))
	shutdown := collect(LoadEnvDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout, ValidatePositiveDuration))

	cfg := Config{
		HTTPAddr:             LoadEnvString("HTTP_ADDR", DefaultHTTPAddr),
		DatabaseURL:          LoadEnvString("DATABASE_URL", ""),
		WeeklyGoalTarget:     target.Value.(int),
		DailyEssentialSource: LoadEnvString("DAILY_ESSENTIAL_SOURCE", DefaultDailyEssentialSource),
		RateLimitRPS:         rps.Value.(int),
		RateLimitBurst:       burst.Value.(int),
		CronSchedule:         schedule.Value.(string),
		Timezone:             timezone.Value.(string),
		ShutdownTimeout:      shutdown.Value.(time.Duration),
	}
	return cfg, warnings
}

// Location resolves the configured timezone. The value was validated at
// load time, so failures here only happen if tzdata disappeared since.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
