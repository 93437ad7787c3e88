package sentiment

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"textlens/internal/nlp/token"
	"textlens/internal/usecase/analyze"
)

// negators flip the sign of the sentiment word that follows them.
var negators = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "nor": {}, "neither": {},
	"hardly": {}, "barely": {}, "cannot": {}, "cant": {}, "dont": {},
	"doesnt": {}, "isnt": {}, "wasnt": {}, "wont": {}, "without": {},
}

// Lexicon implements analyze.SentimentProvider with a word-polarity table.
// It is fully deterministic and needs no network access, which makes it the
// default scorer when no API key is configured.
type Lexicon struct {
	weights map[string]float64
}

// NewLexicon creates a scorer from the given word-polarity table.
// Keys must be lowercase; weights are expected in [-1, 1].
func NewLexicon(weights map[string]float64) *Lexicon {
	return &Lexicon{weights: weights}
}

// lexiconFile is the on-disk YAML format for polarity tables.
type lexiconFile struct {
	Words map[string]float64 `yaml:"words"`
}

// LoadLexiconFile reads a word-polarity table from a YAML file.
//
// File format:
//
//	words:
//	  excellent: 0.9
//	  terrible: -0.9
//
// Returns an error when the file is missing, malformed, or holds no words.
func LoadLexiconFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}

	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon file %s: %w", path, err)
	}
	if len(file.Words) == 0 {
		return nil, fmt.Errorf("lexicon file %s holds no words", path)
	}

	return NewLexicon(file.Words), nil
}

// Score returns the average polarity of the lexicon words found in the text.
// A negator immediately before a sentiment word flips its sign
// ("not good" scores as -0.7 rather than 0.7). Text without any lexicon
// word scores 0.
func (l *Lexicon) Score(_ context.Context, text string) (float64, error) {
	words := token.Words(text)

	var sum float64
	var matched int
	negated := false

	for _, word := range words {
		if _, ok := negators[word]; ok {
			negated = true
			continue
		}
		weight, ok := l.weights[word]
		if ok {
			if negated {
				weight = -weight
			}
			sum += weight
			matched++
		}
		negated = false
	}

	if matched == 0 {
		return 0, nil
	}
	return clamp(sum / float64(matched)), nil
}

// Health always reports healthy; the lexicon has no external dependency.
func (l *Lexicon) Health(context.Context) (*analyze.HealthStatus, error) {
	return &analyze.HealthStatus{Healthy: true, Message: "lexicon sentiment scorer"}, nil
}

// DefaultLexicon returns a scorer backed by the bundled English polarity table.
func DefaultLexicon() *Lexicon {
	return NewLexicon(defaultWeights)
}

// defaultWeights is a compact English polarity table. Weights follow common
// opinion-lexicon conventions: strong judgements near ±0.9, mild ones near ±0.3.
var defaultWeights = map[string]float64{
	// positive
	"amazing": 0.9, "awesome": 0.9, "excellent": 0.9, "outstanding": 0.9,
	"perfect": 0.9, "wonderful": 0.9, "fantastic": 0.9, "brilliant": 0.9,
	"love": 0.8, "loved": 0.8, "superb": 0.8, "delightful": 0.8,
	"great": 0.7, "impressive": 0.7, "beautiful": 0.7, "best": 0.7,
	"happy": 0.6, "glad": 0.6, "enjoyable": 0.6, "satisfied": 0.6,
	"good": 0.5, "useful": 0.5, "helpful": 0.5, "reliable": 0.5,
	"nice": 0.4, "pleasant": 0.4, "solid": 0.4, "works": 0.3,
	"fine": 0.2, "okay": 0.1, "decent": 0.2,

	// negative
	"terrible": -0.9, "horrible": -0.9, "awful": -0.9, "atrocious": -0.9,
	"worst": -0.9, "unusable": -0.9, "disgusting": -0.9,
	"hate": -0.8, "hated": -0.8, "dreadful": -0.8, "appalling": -0.8,
	"bad": -0.7, "broken": -0.7, "useless": -0.7, "failure": -0.7,
	"poor": -0.6, "disappointing": -0.6, "disappointed": -0.6, "frustrating": -0.6,
	"sad": -0.5, "unhappy": -0.5, "annoying": -0.5, "unreliable": -0.5,
	"slow": -0.4, "buggy": -0.4, "confusing": -0.4, "mediocre": -0.3,
	"meh": -0.2, "lacking": -0.3,
}
