// Package sentiment provides polarity scoring implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability
// patterns, plus a deterministic lexicon scorer for offline operation.
// All scorers return a polarity in [-1, 1] and are observable through
// structured logging and Prometheus metrics.
package sentiment

import (
	"fmt"
	"regexp"
	"strconv"
)

// maxInputChars caps the text sent to a scoring API in one call.
// Longer inputs are truncated; polarity is robust against losing the tail.
const maxInputChars = 10000

// scorePrompt instructs the model to answer with a bare number so the
// response can be parsed without any post-processing heuristics.
const scorePrompt = "Rate the overall sentiment of the following text as a single number " +
	"between -1.0 (most negative) and 1.0 (most positive). " +
	"Reply with the number only, no explanation:\n%s"

// numberPattern matches the first signed decimal in a model response.
var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// buildPrompt formats the scoring prompt for the given text.
func buildPrompt(text string) string {
	return fmt.Sprintf(scorePrompt, text)
}

// truncate limits input length for API calls.
func truncate(text string) string {
	if len(text) <= maxInputChars {
		return text
	}
	return text[:maxInputChars]
}

// parsePolarity extracts a polarity score from a model response.
// Models occasionally wrap the number in prose despite instructions, so the
// first decimal found anywhere in the response is used. The result is
// clamped to [-1, 1].
func parsePolarity(response string) (float64, error) {
	match := numberPattern.FindString(response)
	if match == "" {
		return 0, fmt.Errorf("no numeric polarity in response %q", response)
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid polarity %q: %w", match, err)
	}
	return clamp(value), nil
}

// clamp bounds a polarity score to [-1, 1].
func clamp(value float64) float64 {
	switch {
	case value > 1:
		return 1
	case value < -1:
		return -1
	default:
		return value
	}
}
