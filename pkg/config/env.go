// Package config provides typed environment variable helpers with defaults.
//
// These helpers never fail: unparseable values log a warning and fall back to
// the provided default, so a typo in the environment degrades a setting
// rather than taking the service down.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// GetEnvString returns the environment variable value, or defaultValue when
// the variable is unset or empty.
//
// Example:
//
//	addr := GetEnvString("LISTEN_ADDR", ":8080")
func GetEnvString(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvInt returns the environment variable parsed as an integer. Unset,
// empty, or unparseable values yield defaultValue; parse failures are logged.
//
// Example:
//
//	burst := GetEnvInt("RATE_LIMIT_BURST", 20)
func GetEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		slog.Warn("invalid integer value for environment variable, using default",
			slog.String("key", key),
			slog.String("value", valueStr),
			slog.Int("default", defaultValue),
			slog.String("error", err.Error()))
		return defaultValue
	}

	return value
}

// GetEnvStringList returns the environment variable split on commas, with
// whitespace trimmed from each element and empty elements dropped. Unset or
// empty variables yield defaultValue.
//
// Example:
//
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", nil)
func GetEnvStringList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
