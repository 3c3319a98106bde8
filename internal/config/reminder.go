package config

import (
	"os"
	"strconv"
	"time"
)

const (
	reminderMaxDaysEnv      = "REMINDER_MAX_DAYS"
	reminderHourLocalEnv    = "REMINDER_HOUR_LOCAL"
	batchDisplayCapEnv      = "REMINDER_BATCH_DISPLAY_CAP"
	reminderTimezoneEnv     = "REMINDER_TIMEZONE"
	sweepIntervalMinutesEnv = "SWEEP_INTERVAL_MINUTES"

	defaultReminderMaxDays   = 5
	defaultReminderHourLocal = 8
	defaultBatchDisplayCap   = 4
	defaultReminderTimezone  = "Asia/Kolkata"
)

type ReminderConfig struct {
	// MaxDays caps the escalation counter; silence for MaxDays straight
	// pauses further reminders.
	MaxDays int
	// HourLocal is the local delivery hour used for snooze-until-tomorrow.
	HourLocal int
	// BatchDisplayCap limits the "other plants" count shown in batched
	// messages before the "+" suffix kicks in.
	BatchDisplayCap int
	// Timezone is the fallback local timezone for users without one.
	Timezone string
	// SweepInterval is the in-process snooze sweep cadence; zero disables
	// the ticker and leaves sweeping to the external trigger.
	SweepInterval time.Duration
}

func LoadReminderConfig() (*ReminderConfig, error) {
	maxDays := defaultReminderMaxDays
	if v := os.Getenv(reminderMaxDaysEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxDays = parsed
		}
	}

	hourLocal := defaultReminderHourLocal
	if v := os.Getenv(reminderHourLocalEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 23 {
			hourLocal = parsed
		}
	}

	batchCap := defaultBatchDisplayCap
	if v := os.Getenv(batchDisplayCapEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			batchCap = parsed
		}
	}

	tz := os.Getenv(reminderTimezoneEnv)
	if tz == "" {
		tz = defaultReminderTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, ErrInvalidTimezone
	}

	var sweepInterval time.Duration
	if v := os.Getenv(sweepIntervalMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sweepInterval = time.Duration(parsed) * time.Minute
		}
	}

	return &ReminderConfig{
		MaxDays:         maxDays,
		HourLocal:       hourLocal,
		BatchDisplayCap: batchCap,
		Timezone:        tz,
		SweepInterval:   sweepInterval,
	}, nil
}
