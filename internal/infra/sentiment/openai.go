package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
	"textlens/internal/usecase/analyze"
)

// OpenAIConfig holds configuration parameters for the OpenAI sentiment scorer.
type OpenAIConfig struct {
	// Model is the OpenAI API model identifier to use for scoring.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single scoring API call.
	Timeout time.Duration
}

// Validate checks the configuration and returns an error if invalid.
func (c *OpenAIConfig) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model cannot be empty")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive, got %d", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}

// DefaultOpenAIConfig returns the default OpenAI scorer configuration.
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model:     openai.GPT3Dot5Turbo,
		MaxTokens: 16,
		Timeout:   30 * time.Second,
	}
}

// OpenAI implements analyze.SentimentProvider using OpenAI's chat API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          OpenAIConfig
	metricsRecorder ScoreMetricsRecorder
}

// NewOpenAI creates a new OpenAI sentiment scorer with the given API key.
// It automatically configures circuit breaker, retry logic, and metrics recording.
func NewOpenAI(apiKey string, config OpenAIConfig) (*OpenAI, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid OpenAI configuration: %w", err)
	}

	slog.Info("Initialized OpenAI sentiment scorer",
		slog.String("model", config.Model),
		slog.Duration("timeout", config.Timeout))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          config,
		metricsRecorder: NewPrometheusScoreMetrics(),
	}, nil
}

// Score returns the polarity of the given text in [-1, 1] using OpenAI.
// It uses circuit breaker and retry logic for improved reliability.
func (o *OpenAI) Score(ctx context.Context, text string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result float64

	// Wrap with retry logic
	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		// Execute through circuit breaker
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doScore(ctx, text)
		})

		// Handle circuit breaker open state
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(float64)
		return nil
	})

	if retryErr != nil {
		o.metricsRecorder.RecordFailure()
		return 0, fmt.Errorf("openai sentiment scoring failed after retries: %w", retryErr)
	}

	return result, nil
}

// Health reports the scorer's availability based on circuit breaker state.
func (o *OpenAI) Health(_ context.Context) (*analyze.HealthStatus, error) {
	open := o.circuitBreaker.IsOpen()
	status := &analyze.HealthStatus{
		Healthy:     !open,
		CircuitOpen: open,
		Message:     "openai sentiment scorer",
	}
	if open {
		status.Message = "openai api circuit breaker open"
	}
	return status, nil
}

// doScore performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doScore(ctx context.Context, inputText string) (float64, error) {
	truncatedText := truncate(inputText)
	if len(truncatedText) < len(inputText) {
		slog.Warn("text truncated for openai api",
			slog.Int("original_length", len(inputText)),
			slog.Int("truncated_length", len(truncatedText)))
	}

	slog.DebugContext(ctx, "Scoring sentiment",
		slog.Int("input_length", len(truncatedText)))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{{
			Role:    "user",
			Content: buildPrompt(truncatedText),
		}},
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "Sentiment scoring failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("openai api error: %w", err)
	}

	// Validate response structure (safety check to prevent panic on array access)
	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.Duration("duration", duration))
		return 0, fmt.Errorf("openai api returned empty response")
	}

	polarity, err := parsePolarity(resp.Choices[0].Message.Content)
	if err != nil {
		slog.ErrorContext(ctx, "OpenAI API response not parseable as polarity",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("openai response parse error: %w", err)
	}

	slog.DebugContext(ctx, "Sentiment scored",
		slog.Float64("polarity", polarity),
		slog.Duration("duration", duration))

	o.metricsRecorder.RecordPolarity(polarity)
	o.metricsRecorder.RecordDuration(duration)

	return polarity, nil
}
