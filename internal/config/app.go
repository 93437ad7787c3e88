// Package config loads the application configuration from the environment.
//
// Every value has a production-ready default, so the service starts with no
// environment at all. Invalid values fall back to the default with a warning
// rather than aborting startup; the warnings are surfaced to the caller for
// logging and recorded as Prometheus fallback metrics.
package config

import (
	"fmt"
	"time"

	pkgconfig "textlens/internal/pkg/config"
	envconfig "textlens/pkg/config"
)

// Provider names accepted by SENTIMENT_PROVIDER.
const (
	SentimentClaude  = "claude"
	SentimentOpenAI  = "openai"
	SentimentLexicon = "lexicon"
	SentimentNoop    = "noop"
)

// Provider names accepted by ENTITY_PROVIDER.
const (
	EntityClaude    = "claude"
	EntityOpenAI    = "openai"
	EntityHeuristic = "heuristic"
	EntityNoop      = "noop"
)

// appConfigMetrics tracks configuration load state and fallbacks.
var appConfigMetrics = pkgconfig.NewConfigMetrics("textlens")

// AppConfig holds the runtime configuration for the analysis service.
type AppConfig struct {
	// ListenAddr is the address the API server binds to.
	ListenAddr string

	// MetricsAddr is the address the Prometheus metrics server binds to.
	MetricsAddr string

	// RequestTimeout bounds the total processing time of a single request.
	RequestTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown on SIGTERM/SIGINT.
	ShutdownTimeout time.Duration

	// RateLimitRPS is the sustained per-client request rate.
	RateLimitRPS int

	// RateLimitBurst is the per-client burst allowance.
	RateLimitBurst int

	// SentimentProvider selects the sentiment scorer implementation.
	SentimentProvider string

	// EntityProvider selects the entity extractor implementation.
	EntityProvider string

	// LexiconPath points to an optional YAML word-polarity table.
	// Empty means the built-in lexicon.
	LexiconPath string

	// StopwordsPath points to an optional YAML stopword list.
	// Empty means the built-in set.
	StopwordsPath string

	// ReadmePath is the markdown document served at /nlp-readme.
	ReadmePath string

	// CORSAllowedOrigins lists origins allowed to call the API from browsers.
	CORSAllowedOrigins []string

	// CacheTTL is how long fetched page content stays valid.
	CacheTTL time.Duration

	// CacheMaxEntries caps the number of cached pages.
	CacheMaxEntries int

	// CacheSweepSchedule is the cron schedule for expired-entry sweeps.
	CacheSweepSchedule string
}

// validSentimentProvider rejects unknown sentiment provider names.
func validSentimentProvider(name string) error {
	switch name {
	case SentimentClaude, SentimentOpenAI, SentimentLexicon, SentimentNoop:
		return nil
	}
	return fmt.Errorf("unknown sentiment provider %q (expected claude, openai, lexicon, or noop)", name)
}

// validEntityProvider rejects unknown entity provider names.
func validEntityProvider(name string) error {
	switch name {
	case EntityClaude, EntityOpenAI, EntityHeuristic, EntityNoop:
		return nil
	}
	return fmt.Errorf("unknown entity provider %q (expected claude, openai, heuristic, or noop)", name)
}

// LoadAppConfig reads the application configuration from environment
// variables. It never fails: invalid values fall back to defaults and the
// returned warnings describe each fallback so the caller can log them.
//
// Environment variables:
//   - LISTEN_ADDR: API bind address (default ":8080")
//   - METRICS_ADDR: metrics bind address (default ":9090")
//   - REQUEST_TIMEOUT: per-request processing limit (default "30s")
//   - SHUTDOWN_TIMEOUT: graceful shutdown limit (default "10s")
//   - RATE_LIMIT_RPS: sustained per-client requests per second (default 10)
//   - RATE_LIMIT_BURST: per-client burst allowance (default 20)
//   - SENTIMENT_PROVIDER: claude | openai | lexicon | noop (default "lexicon")
//   - ENTITY_PROVIDER: claude | openai | heuristic | noop (default "heuristic")
//   - LEXICON_PATH: YAML word-polarity table (default: built-in)
//   - STOPWORDS_PATH: YAML stopword list (default: built-in)
//   - NLP_README_PATH: markdown served at /nlp-readme (default "docs/nlp_readme.md")
//   - CORS_ALLOWED_ORIGINS: comma-separated origin list (default empty: CORS disabled)
//   - CACHE_TTL: page cache entry lifetime (default "10m")
//   - CACHE_MAX_ENTRIES: page cache capacity (default 1024)
//   - CACHE_SWEEP_SCHEDULE: cron schedule for cache sweeps (default "*/5 * * * *")
func LoadAppConfig() (*AppConfig, []string) {
	var warnings []string

	results := map[string]pkgconfig.ConfigLoadResult{
		"request_timeout": pkgconfig.LoadEnvDuration(
			"REQUEST_TIMEOUT", 30*time.Second, pkgconfig.ValidatePositiveDuration),
		"shutdown_timeout": pkgconfig.LoadEnvDuration(
			"SHUTDOWN_TIMEOUT", 10*time.Second, pkgconfig.ValidatePositiveDuration),
		"rate_limit_rps": pkgconfig.LoadEnvInt(
			"RATE_LIMIT_RPS", 10, pkgconfig.ValidatePositiveInt),
		"rate_limit_burst": pkgconfig.LoadEnvInt(
			"RATE_LIMIT_BURST", 20, pkgconfig.ValidatePositiveInt),
		"cache_ttl": pkgconfig.LoadEnvDuration(
			"CACHE_TTL", 10*time.Minute, pkgconfig.ValidatePositiveDuration),
		"cache_max_entries": pkgconfig.LoadEnvInt(
			"CACHE_MAX_ENTRIES", 1024, pkgconfig.ValidatePositiveInt),
		"cache_sweep_schedule": pkgconfig.LoadEnvWithFallback(
			"CACHE_SWEEP_SCHEDULE", "*/5 * * * *", pkgconfig.ValidateCronSchedule),
		"sentiment_provider": pkgconfig.LoadEnvWithFallback(
			"SENTIMENT_PROVIDER", SentimentLexicon, validSentimentProvider),
		"entity_provider": pkgconfig.LoadEnvWithFallback(
			"ENTITY_PROVIDER", EntityHeuristic, validEntityProvider),
	}
	anyFallback := false
	for field, result := range results {
		if result.FallbackApplied {
			anyFallback = true
			appConfigMetrics.RecordFallback(field)
		}
		warnings = append(warnings, result.Warnings...)
	}
	appConfigMetrics.SetFallbackActive(anyFallback)

	cfg := &AppConfig{
		ListenAddr:         envconfig.GetEnvString("LISTEN_ADDR", ":8080"),
		MetricsAddr:        envconfig.GetEnvString("METRICS_ADDR", ":9090"),
		RequestTimeout:     results["request_timeout"].Value.(time.Duration),
		ShutdownTimeout:    results["shutdown_timeout"].Value.(time.Duration),
		RateLimitRPS:       results["rate_limit_rps"].Value.(int),
		RateLimitBurst:     results["rate_limit_burst"].Value.(int),
		SentimentProvider:  results["sentiment_provider"].Value.(string),
		EntityProvider:     results["entity_provider"].Value.(string),
		LexiconPath:        envconfig.GetEnvString("LEXICON_PATH", ""),
		StopwordsPath:      envconfig.GetEnvString("STOPWORDS_PATH", ""),
		ReadmePath:         envconfig.GetEnvString("NLP_README_PATH", "docs/nlp_readme.md"),
		CORSAllowedOrigins: envconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil),
		CacheTTL:           results["cache_ttl"].Value.(time.Duration),
		CacheMaxEntries:    results["cache_max_entries"].Value.(int),
		CacheSweepSchedule: results["cache_sweep_schedule"].Value.(string),
	}

	appConfigMetrics.RecordLoadTimestamp()
	return cfg, warnings
}
