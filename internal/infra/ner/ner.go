// Package ner provides named-entity recognition implementations.
// It includes adapters for Claude (Anthropic) and OpenAI APIs with reliability
// patterns, plus a deterministic capitalization heuristic for offline
// operation. Providers return raw mentions; counting and ranking live in the
// use case layer.
package ner

import (
	"encoding/json"
	"fmt"
	"strings"

	"textlens/internal/domain/entity"
)

// maxInputChars caps the text sent to a recognition API in one call.
const maxInputChars = 10000

// extractPrompt instructs the model to answer with a bare JSON array so the
// response can be parsed without post-processing heuristics. Labels follow
// the usual NER tag set (PERSON, ORG, GPE, DATE, ...).
const extractPrompt = "List every named entity in the following text as a JSON array of " +
	`objects with "text" and "type" fields, one element per occurrence, in order ` +
	"of appearance. Use standard NER labels such as PERSON, ORG, GPE, LOC, DATE, " +
	"PRODUCT, EVENT. Reply with the JSON array only, no explanation:\n%s"

// buildPrompt formats the extraction prompt for the given text.
func buildPrompt(text string) string {
	return fmt.Sprintf(extractPrompt, text)
}

// truncate limits input length for API calls.
func truncate(text string) string {
	if len(text) <= maxInputChars {
		return text
	}
	return text[:maxInputChars]
}

// mentionJSON is the wire shape a model is asked to reply with.
type mentionJSON struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// parseMentions extracts entity mentions from a model response.
// Models occasionally wrap the array in code fences or prose despite
// instructions, so parsing starts at the first '[' and ends at the last ']'.
func parseMentions(response string) ([]entity.EntityMention, error) {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start < 0 || end < start {
		return nil, fmt.Errorf("no JSON array in response %q", response)
	}

	var raw []mentionJSON
	if err := json.Unmarshal([]byte(response[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("invalid mention array: %w", err)
	}

	mentions := make([]entity.EntityMention, 0, len(raw))
	for _, m := range raw {
		if m.Text == "" {
			continue
		}
		mentions = append(mentions, entity.EntityMention{Text: m.Text, Type: m.Type})
	}
	return mentions, nil
}
