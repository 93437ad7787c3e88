package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ValidateCronSchedule validates a standard five-field cron expression
// ("minute hour day month weekday") using the robfig/cron/v3 parser, the
// same parser the cache sweeper runs on. Validation tool: https://crontab.guru/
//
// Example:
//
//	err := ValidateCronSchedule("*/5 * * * *")
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}

	return nil
}

// ValidatePositiveDuration rejects zero and negative durations. Used for
// timeouts and TTLs where a non-positive value would disable the protection
// the setting exists for.
func ValidatePositiveDuration(duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", duration)
	}
	return nil
}

// ValidatePositiveInt rejects zero and negative integers. Used for rates,
// bursts, and capacities.
func ValidatePositiveInt(value int) error {
	if value <= 0 {
		return fmt.Errorf("value must be positive, got %d", value)
	}
	return nil
}

// ValidateIntRange returns a validator rejecting integers outside
// [min, max].
func ValidateIntRange(min, max int) func(int) error {
	return func(value int) error {
		if value < min || value > max {
			return fmt.Errorf("value must be between %d and %d, got %d", min, max, value)
		}
		return nil
	}
}
