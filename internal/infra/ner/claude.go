package ner

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

	"textlens/internal/domain/entity"
	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
	"textlens/internal/usecase/analyze"
)

// ClaudeConfig holds configuration parameters for the Claude entity recognizer.
type ClaudeConfig struct {
	// Model is the Claude API model identifier to use for recognition.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	// Entity lists grow with input size, so this is larger than for scoring.
	MaxTokens int

	// Timeout is the maximum duration for a single recognition API call.
	Timeout time.Duration
}

// DefaultClaudeConfig returns the default Claude recognizer configuration.
func DefaultClaudeConfig() ClaudeConfig {
	return ClaudeConfig{
		Model:     string(anthropic.ModelClaudeSonnet4_5_20250929),
		MaxTokens: 2048,
		Timeout:   30 * time.Second,
	}
}

// Claude implements analyze.EntityProvider using Anthropic's Claude API.
// It includes circuit breaker and retry logic for improved reliability.
type Claude struct {
	client         anthropic.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         ClaudeConfig
}

// NewClaude creates a new Claude entity recognizer with the given API key.
// It automatically configures circuit breaker and retry logic.
func NewClaude(apiKey string) *Claude {
	config := DefaultClaudeConfig()

	slog.Info("Initialized Claude entity recognizer",
		slog.String("model", config.Model),
		slog.Duration("timeout", config.Timeout))

	return &Claude{
		client:         anthropic.NewClient(option.WithAPIKey(apiKey)),
		circuitBreaker: circuitbreaker.New(circuitbreaker.ClaudeAPIConfig()),
		retryConfig:    retry.AIAPIConfig(),
		config:         config,
	}
}

// Extract returns all named-entity mentions found in the text using Claude.
// It uses circuit breaker and retry logic for improved reliability.
func (c *Claude) Extract(ctx context.Context, text string) ([]entity.EntityMention, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var result []entity.EntityMention

	// Wrap with retry logic
	retryErr := retry.WithBackoff(ctx, c.retryConfig, func() error {
		// Execute through circuit breaker
		cbResult, err := c.circuitBreaker.Execute(func() (interface{}, error) {
			return c.doExtract(ctx, text)
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

		result = cbResult.([]entity.EntityMention)
		return nil
	})

	if retryErr != nil {
		return nil, fmt.Errorf("claude entity extraction failed after retries: %w", retryErr)
	}

	return result, nil
}

// Health reports the recognizer's availability based on circuit breaker state.
func (c *Claude) Health(_ context.Context) (*analyze.HealthStatus, error) {
	open := c.circuitBreaker.IsOpen()
	status := &analyze.HealthStatus{
		Healthy:     !open,
		CircuitOpen: open,
		Message:     "claude entity recognizer",
	}
	if open {
		status.Message = "claude api circuit breaker open"
	}
	return status, nil
}

// doExtract performs the actual API call without retry or circuit breaker.
func (c *Claude) doExtract(ctx context.Context, inputText string) ([]entity.EntityMention, error) {
	// Generate unique request ID for tracing
	requestID := uuid.New().String()

	truncatedText := truncate(inputText)
	if len(truncatedText) < len(inputText) {
		slog.Warn("text truncated for claude api",
			slog.String("request_id", requestID),
			slog.Int("original_length", len(inputText)),
			slog.Int("truncated_length", len(truncatedText)))
	}

	slog.DebugContext(ctx, "Extracting entities",
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
		slog.ErrorContext(ctx, "Entity extraction failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		slog.ErrorContext(ctx, "Claude API returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		slog.ErrorContext(ctx, "Claude API returned unexpected response type",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("claude api returned unexpected response type")
	}

	mentions, err := parseMentions(textBlock.Text)
	if err != nil {
		slog.ErrorContext(ctx, "Claude API response not parseable as mentions",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("claude response parse error: %w", err)
	}

	slog.DebugContext(ctx, "Entities extracted",
		slog.String("request_id", requestID),
		slog.Int("mentions", len(mentions)),
		slog.Duration("duration", duration))

	return mentions, nil
}
