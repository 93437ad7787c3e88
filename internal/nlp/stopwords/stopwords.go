// Package stopwords provides an immutable stopword set for frequency analysis.
// The set is constructed once at startup and passed by reference; it is never
// mutated after construction.
package stopwords

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Set is a read-only membership set of stopword tokens.
// Tokens are expected to be lower-cased before lookup.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the given words. Words are stored as-is;
// callers supply lower-cased tokens.
func New(words []string) *Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return &Set{words: m}
}

// Contains reports whether token is a stopword.
func (s *Set) Contains(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	return len(s.words)
}

// fileFormat is the YAML layout for external stopword lists.
type fileFormat struct {
	Words []string `yaml:"words"`
}

// LoadFile reads a stopword list from a YAML file with a top-level
// "words" sequence. Returns an error the caller can distinguish as a
// missing-resource failure rather than an analysis fault.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopword file: %w", err)
	}

	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse stopword file %s: %w", path, err)
	}
	if len(f.Words) == 0 {
		return nil, fmt.Errorf("stopword file %s contains no words", path)
	}

	return New(f.Words), nil
}

// Default returns the bundled English stopword set.
func Default() *Set {
	return New(defaultEnglish)
}

// defaultEnglish mirrors the common English stopword list used by NLTK-style
// frequency analysis: articles, pronouns, auxiliaries, and short function words.
var defaultEnglish = []string{
	"a", "an", "the", "and", "or", "but",
	"to", "in", "of", "on", "for", "with", "as", "at", "by", "from",
	"is", "are", "was", "were", "be", "been", "being", "am",
	"this", "that", "these", "those", "it", "its", "itself",
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
	"you", "your", "yours", "yourself", "yourselves",
	"he", "him", "his", "himself", "she", "her", "hers", "herself",
	"they", "them", "their", "theirs", "themselves",
	"what", "which", "who", "whom",
	"do", "does", "did", "doing",
	"have", "has", "had", "having",
	"not", "no", "nor", "only", "own", "same", "very", "too",
	"can", "could", "should", "would", "may", "might", "must", "will", "shall",
	"if", "then", "else", "than", "so", "because", "while", "when", "where", "why", "how",
	"about", "against", "above", "below", "under", "over", "between", "through",
	"into", "out", "up", "down", "off",
	"again", "further", "once", "here", "there",
	"all", "any", "both", "each", "few", "more", "most", "other", "some", "such",
	"s", "t", "don", "just", "now", "during", "before", "after",
}
