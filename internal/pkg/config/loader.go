// Package config provides validated environment loading with warning-based
// fallbacks and Prometheus metrics for configuration state.
//
// Unlike loaders that abort on bad input, every function here always returns
// a usable value: an invalid environment value produces a warning and the
// default. Callers log the warnings and keep starting up, and the fallback
// metrics make a misconfigured deployment visible on a dashboard.
package config

import (
	"fmt"
	"os"
	"time"
)

// ConfigLoadResult is the outcome of loading one configuration value.
//
// Value holds the loaded value (or the default when a fallback was applied),
// Warnings holds one message per fallback, and FallbackApplied reports
// whether the default was used because of an invalid environment value.
//
// Example:
//
//	result := LoadEnvDuration("CACHE_TTL", 10*time.Minute, ValidatePositiveDuration)
//	for _, w := range result.Warnings {
//	    logger.Warn("configuration fallback", slog.String("detail", w))
//	}
//	ttl := result.Value.(time.Duration)
type ConfigLoadResult struct {
	Value           interface{}
	Warnings        []string
	FallbackApplied bool
}

// fallback builds the result for an invalid value.
func fallback(envKey, rawValue string, reason error, defaultValue interface{}) ConfigLoadResult {
	return ConfigLoadResult{
		Value: defaultValue,
		Warnings: []string{fmt.Sprintf(
			"Invalid %s='%s': %v, falling back to default '%v'",
			envKey, rawValue, reason, defaultValue)},
		FallbackApplied: true,
	}
}

// LoadEnvString returns the environment variable value, or defaultValue when
// unset or empty. No validation is applied; use LoadEnvWithFallback when the
// value needs checking.
func LoadEnvString(envKey, defaultValue string) string {
	value := os.Getenv(envKey)
	if value == "" {
		return defaultValue
	}
	return value
}

// LoadEnvWithFallback loads a string value, validates it, and falls back to
// defaultValue with a warning when validation fails. An unset or empty
// variable uses the default silently. A nil validator accepts any value.
//
// Example:
//
//	result := LoadEnvWithFallback("CACHE_SWEEP_SCHEDULE", "*/5 * * * *", ValidateCronSchedule)
//	schedule := result.Value.(string)
func LoadEnvWithFallback(envKey, defaultValue string, validator func(string) error) ConfigLoadResult {
	value := os.Getenv(envKey)
	if value == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	if validator != nil {
		if err := validator(value); err != nil {
			return fallback(envKey, value, err, defaultValue)
		}
	}

	return ConfigLoadResult{Value: value}
}

// LoadEnvDuration loads a time.Duration value ("30s", "5m", "1h30m"),
// validates it, and falls back to defaultValue with a warning when parsing
// or validation fails.
//
// Example:
//
//	result := LoadEnvDuration("REQUEST_TIMEOUT", 30*time.Second, ValidatePositiveDuration)
//	timeout := result.Value.(time.Duration)
func LoadEnvDuration(envKey string, defaultValue time.Duration, validator func(time.Duration) error) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	parsed, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback(envKey, valueStr, err, defaultValue)
	}

	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallback(envKey, valueStr, err, defaultValue)
		}
	}

	return ConfigLoadResult{Value: parsed}
}

// LoadEnvInt loads an integer value, validates it, and falls back to
// defaultValue with a warning when parsing or validation fails.
//
// Example:
//
//	result := LoadEnvInt("RATE_LIMIT_RPS", 10, ValidatePositiveInt)
//	rps := result.Value.(int)
func LoadEnvInt(envKey string, defaultValue int, validator func(int) error) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	var parsed int
	if _, err := fmt.Sscanf(valueStr, "%d", &parsed); err != nil {
		return fallback(envKey, valueStr, fmt.Errorf("invalid integer format"), defaultValue)
	}

	if validator != nil {
		if err := validator(parsed); err != nil {
			return fallback(envKey, valueStr, err, defaultValue)
		}
	}

	return ConfigLoadResult{Value: parsed}
}

// LoadEnvBool loads a boolean value and falls back to defaultValue with a
// warning when the value is not a recognized boolean.
//
// True values: "1", "t", "T", "true", "TRUE", "True".
// False values: "0", "f", "F", "false", "FALSE", "False".
func LoadEnvBool(envKey string, defaultValue bool) ConfigLoadResult {
	valueStr := os.Getenv(envKey)
	if valueStr == "" {
		return ConfigLoadResult{Value: defaultValue}
	}

	switch valueStr {
	case "1", "t", "T", "true", "TRUE", "True":
		return ConfigLoadResult{Value: true}
	case "0", "f", "F", "false", "FALSE", "False":
		return ConfigLoadResult{Value: false}
	}
	return fallback(envKey, valueStr,
		fmt.Errorf("invalid boolean format, expected 'true' or 'false'"), defaultValue)
}
