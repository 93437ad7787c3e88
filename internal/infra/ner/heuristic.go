package ner

import (
	"context"
	"strings"
	"unicode"

	"textlens/internal/domain/entity"
	"textlens/internal/nlp/token"
	"textlens/internal/usecase/analyze"
)

// heuristicLabel marks mentions found by capitalization alone; the heuristic
// cannot distinguish people from places or organizations.
const heuristicLabel = "PROPN"

// Heuristic implements analyze.EntityProvider with a capitalization scan.
// Consecutive capitalized words form one candidate mention ("Steve Jobs" is
// a single entity, not two). A lone capitalized word at sentence start is
// treated as ordinary prose. The heuristic is fully deterministic and needs
// no network access, which makes it the default recognizer when no API key
// is configured.
type Heuristic struct{}

// NewHeuristic creates a new capitalization-based entity recognizer.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Extract returns capitalized-word runs as entity mentions, in document order.
func (h *Heuristic) Extract(_ context.Context, text string) ([]entity.EntityMention, error) {
	var mentions []entity.EntityMention

	for _, sentence := range token.Sentences(text) {
		words := strings.Fields(sentence)

		var run []string
		runStart := -1
		flush := func() {
			if len(run) == 0 {
				return
			}
			// A single capitalized word opening the sentence is just
			// sentence case, not a proper noun.
			if !(runStart == 0 && len(run) == 1) {
				mentions = append(mentions, entity.EntityMention{
					Text: strings.Join(run, " "),
					Type: heuristicLabel,
				})
			}
			run = nil
			runStart = -1
		}

		for i, word := range words {
			cleaned := strings.TrimFunc(word, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsNumber(r)
			})
			if !isCapitalized(cleaned) {
				flush()
				continue
			}
			if len(run) == 0 {
				runStart = i
			}
			run = append(run, cleaned)
			// Clause punctuation ends the run even when the next word is
			// also capitalized ("visited Paris, London" is two mentions).
			if endsClause(word) {
				flush()
			}
		}
		flush()
	}

	return mentions, nil
}

// Health always reports healthy; the heuristic has no external dependency.
func (h *Heuristic) Health(context.Context) (*analyze.HealthStatus, error) {
	return &analyze.HealthStatus{Healthy: true, Message: "heuristic entity recognizer"}, nil
}

// isCapitalized reports whether the word starts with an uppercase letter.
func isCapitalized(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// endsClause reports whether the raw word carries trailing clause punctuation.
func endsClause(word string) bool {
	return strings.ContainsAny(word[len(word)-1:], ",;:.!?")
}
