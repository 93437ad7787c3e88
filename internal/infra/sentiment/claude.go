package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
	"textlens/internal/usecase/analyze"
)

// ClaudeConfig holds configuration parameters for the Claude sentiment scorer.
type ClaudeConfig struct {
	// Model is the Claude API model identifier to use for scoring.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	// Scoring responses are a single number, so this stays small.
	MaxTokens int

	// Timeout is the maximum duration for a single scoring API call.
	Timeout time.Duration
}

// DefaultClaudeConfig returns the default Claude scorer configuration.
func DefaultClaudeConfig() ClaudeConfig {
	return ClaudeConfig{
		Model:     string(anthropic.ModelClaudeSonnet4_5_20250929),
		MaxTokens: 16,
		Timeout:   30 * time.Second,
	}
}

// Claude implements analyze.SentimentProvider using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client          anthropic.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          ClaudeConfig
	metricsRecorder ScoreMetricsRecorder
}

// NewClaude creates a new Claude sentiment scorer with the given API key.
// It automatically configures circuit breaker, retry logic, and metrics recording.
func NewClaude(apiKey string) *Claude {
	config := DefaultClaudeConfig()

	slog.Info("Initialized Claude sentiment scorer",
		slog.String("model", config.Model),
		slog.Duration("timeout", config.Timeout))

	return &Claude{
		client:          anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusScoreMetrics(),
	}
}

// Score returns the polarity of the given text in [-1, 1] using Claude.
// It uses circuit breaker and retry logic for improved reliability.
func (c *Claude) Score(ctx context.Context, text string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result float64

	// Wrap with retry logic
	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		// Execute through circuit breaker
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doScore(ctx, text)
		})

		// Handle circuit breaker open state
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("claude api circuit breaker open, request rejected",
					slog.String("service", "claude-api"),
					slog.String("state", c.circuitBreaker.State().String()))
				return fmt.Errorf("claude api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(float64)
		return nil
	})

	if retryErr != nil {
		c.metricsRecorder.RecordFailure()
		return 0, fmt.Errorf("claude sentiment scoring failed after retries: %w", retryErr)
	}

	return result, nil
}

// Health reports the scorer's availability based on circuit breaker state.
func (c *Claude) Health(_ context.Context) (*analyze.HealthStatus, error) {
	open := c.circuitBreaker.IsOpen()
	status := &analyze.HealthStatus{
		Healthy:     !open,
		CircuitOpen: open,
		Message:     "claude sentiment scorer",
	}
	if open {
		status.Message = "claude api circuit breaker open"
	}
	return status, nil
}

// doScore performs the actual API call without retry or circuit breaker.
func (c *Claude) doScore(ctx context.Context, inputText string) (float64, error) {
	// Generate unique request ID for tracing
	requestID := uuid.New().String()

	truncatedText := truncate(inputText)
	if len(truncatedText) < len(inputText) {
		slog.Warn("text truncated for claude api",
			slog.String("request_id", requestID),
			slog.Int("original_length", len(inputText)),
			slog.Int("truncated_length", len(truncatedText)))
	}

	slog.DebugContext(ctx, "Scoring sentiment",
		slog.String("request_id", requestID),
		slog.Int("input_length", len(truncatedText)))

	start := time.Now()

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(buildPrompt(truncatedText)),
			),
		},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Sentiment scoring failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return 0, fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return 0, fmt.Errorf("claude api returned unexpected response type")
	}

	polarity, err := parsePolarity(textBlock.Text)
	if err != nil {
		slog.ErrorContext(ctx, "Claude API response not parseable as polarity",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("claude response parse error: %w", err)
	}

	slog.DebugContext(ctx, "Sentiment scored",
		slog.String("request_id", requestID),
		slog.Float64("polarity", polarity),
		slog.Duration("duration", duration))

	c.metricsRecorder.RecordPolarity(polarity)
	c.metricsRecorder.RecordDuration(duration)

	return polarity, nil
}
