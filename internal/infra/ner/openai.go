package ner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"textlens/internal/domain/entity"
	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
	"textlens/internal/usecase/analyze"
)

// OpenAIConfig holds configuration parameters for the OpenAI entity recognizer.
type OpenAIConfig struct {
	// Model is the OpenAI API model identifier to use for recognition.
	Model string

	// MaxTokens is the maximum number of tokens for the API response.
	MaxTokens int

	// Timeout is the maximum duration for a single recognition API call.
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

// DefaultOpenAIConfig returns the default OpenAI recognizer configuration.
func DefaultOpenAIConfig() OpenAIConfig {
	return OpenAIConfig{
		Model:     openai.GPT3Dot5Turbo,
		MaxTokens: 2048,
		Timeout:   30 * time.Second,
	}
}

// OpenAI implements analyze.EntityProvider using OpenAI's chat API.
// It includes circuit breaker and retry logic for improved reliability.
type OpenAI struct {
	client         *openai.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
	config         OpenAIConfig
}

// NewOpenAI creates a new OpenAI entity recognizer with the given API key.
// It automatically configures circuit breaker and retry logic.
func NewOpenAI(apiKey string, config OpenAIConfig) (*OpenAI, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid OpenAI configuration: %w", err)
	}

	slog.Info("Initialized OpenAI entity recognizer",
		slog.String("model", config.Model),
		slog.Duration("timeout", config.Timeout))

	return &OpenAI{
		client:         openai.NewClient(apiKey),
		circuitBreaker: circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:    retry.AIAPIConfig(),
		config:         config,
	}, nil
}

// Extract returns all named-entity mentions found in the text using OpenAI.
// It uses circuit breaker and retry logic for improved reliability.
func (o *OpenAI) Extract(ctx context.Context, text string) ([]entity.EntityMention, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result []entity.EntityMention

	// Wrap with retry logic
	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		// Execute through circuit breaker
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doExtract(ctx, text)
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

		result = cbResult.([]entity.EntityMention)
		return nil
	})

	if retryErr != nil {
		return nil, fmt.Errorf("openai entity extraction failed after retries: %w", retryErr)
	}

	return result, nil
}

// Health reports the recognizer's availability based on circuit breaker state.
func (o *OpenAI) Health(_ context.Context) (*analyze.HealthStatus, error) {
	open := o.circuitBreaker.IsOpen()
	status := &analyze.HealthStatus{
		Healthy:     !open,
		CircuitOpen: open,
		Message:     "openai entity recognizer",
	}
	if open {
		status.Message = "openai api circuit breaker open"
	}
	return status, nil
}

// doExtract performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doExtract(ctx context.Context, inputText string) ([]entity.EntityMention, error) {
	truncatedText := truncate(inputText)
	if len(truncatedText) < len(inputText) {
		slog.Warn("text truncated for openai api",
			slog.Int("original_length", len(inputText)),
			slog.Int("truncated_length", len(truncatedText)))
	}

	slog.DebugContext(ctx, "Extracting entities",
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
		slog.ErrorContext(ctx, "Entity extraction failed",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	// Validate response structure (safety check to prevent panic on array access)
	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "OpenAI API returned empty response",
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("openai api returned empty response")
	}

	mentions, err := parseMentions(resp.Choices[0].Message.Content)
	if err != nil {
		slog.ErrorContext(ctx, "OpenAI API response not parseable as mentions",
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai response parse error: %w", err)
	}

	slog.DebugContext(ctx, "Entities extracted",
		slog.Int("mentions", len(mentions)),
		slog.Duration("duration", duration))

	return mentions, nil
}
