// Package summarize implements frequency-based extractive summarization.
// A document is scored sentence by sentence against a whole-document word
// frequency table, and the highest-scoring sentences are returned verbatim.
package summarize

import (
	"sort"
	"strings"

	"textlens/internal/nlp/stopwords"
	"textlens/internal/nlp/token"
)

// Summarizer selects the most representative sentences of a document.
// It is pure and stateless per call; the only shared data is the read-only
// stopword set supplied at construction time.
//
// Thread safety: Summarizer is safe for concurrent use.
type Summarizer struct {
	stopwords *stopwords.Set
}

// New creates a Summarizer with the given stopword set.
// The caller owns the set's lifecycle and must not mutate it afterwards.
func New(sw *stopwords.Set) *Summarizer {
	return &Summarizer{stopwords: sw}
}

// ScoredSentence is a candidate sentence with its frequency-sum score and
// its position in the source document.
type ScoredSentence struct {
	Text     string
	Score    int
	Position int
}

// Result holds the output of a summarization call.
type Result struct {
	// Summary is the selected sentences in descending score order,
	// space-joined. Empty when no sentence scored above zero.
	Summary string

	// Sentences are the selected sentences with their scores,
	// in the same order as Summary.
	Sentences []ScoredSentence
}

// Summarize returns the sentenceCount highest-scoring sentences of document,
// in descending score order. Equal scores order by first occurrence in the
// document. An empty document or sentenceCount <= 0 yields an empty Result.
//
// Scoring: every token occurrence in a sentence contributes the token's
// whole-document frequency (stopwords excluded from the table, so they
// contribute zero). Sentences with zero score are not candidates.
func (s *Summarizer) Summarize(document string, sentenceCount int) Result {
	if document == "" || sentenceCount <= 0 {
		return Result{}
	}

	freq := s.frequencies(document)
	if len(freq) == 0 {
		return Result{}
	}

	candidates := scoreSentences(document, freq)
	if len(candidates) == 0 {
		return Result{}
	}

	// Descending by score; ties keep document order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if sentenceCount < len(candidates) {
		candidates = candidates[:sentenceCount]
	}

	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.Text
	}

	return Result{
		Summary:   strings.Join(texts, " "),
		Sentences: candidates,
	}
}

// frequencies builds the whole-document frequency table over non-stopword tokens.
func (s *Summarizer) frequencies(document string) map[string]int {
	freq := make(map[string]int)
	for _, w := range token.Words(document) {
		if s.stopwords.Contains(w) {
			continue
		}
		freq[w]++
	}
	return freq
}

// scoreSentences scores each sentence by summing the frequency-table value of
// every token occurrence. Tokens absent from the table (stopwords and words
// that appear nowhere else in the table) contribute nothing. Zero-scoring
// sentences are dropped from the candidate set.
func scoreSentences(document string, freq map[string]int) []ScoredSentence {
	sentences := token.Sentences(document)
	candidates := make([]ScoredSentence, 0, len(sentences))

	for pos, sent := range sentences {
		score := 0
		for _, w := range token.Words(sent) {
			score += freq[w]
		}
		if score == 0 {
			continue
		}
		candidates = append(candidates, ScoredSentence{
			Text:     sent,
			Score:    score,
			Position: pos,
		})
	}
	return candidates
}
