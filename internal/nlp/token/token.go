// Package token provides tokenization and sentence splitting for text analysis.
// Tokens are lower-cased maximal alphanumeric runs; sentences are split on a
// terminator character followed by whitespace, retaining original punctuation.
package token

import (
	"regexp"
	"strings"
)

var (
	// wordPattern matches maximal runs of alphanumeric characters.
	// Everything else acts as a separator and is discarded.
	wordPattern = regexp.MustCompile(`[0-9a-z]+`)

	// sentenceBoundary matches a sentence terminator followed by whitespace.
	// The terminator stays with the preceding sentence.
	sentenceBoundary = regexp.MustCompile(`([.!?])\s+`)
)

// Words tokenizes text into lower-cased alphanumeric tokens.
// Returns nil for text containing no alphanumeric characters.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Sentences splits text into sentences at terminator-plus-whitespace
// boundaries. Each sentence retains its original casing and punctuation.
// Leading and trailing whitespace is trimmed; empty fragments are dropped.
//
// Sentence boundaries are independent of tokenization: a sentence may
// contain any characters, including the terminator that closed it.
func Sentences(text string) []string {
	// Mark each boundary, then split on the marker. The marker uses a
	// character that cannot appear in the input after this substitution.
	const marker = "\x00"
	replaced := sentenceBoundary.ReplaceAllString(text, "$1"+marker)

	parts := strings.Split(replaced, marker)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// CountRunes counts Unicode characters in text. Multi-byte characters
// (Japanese, emoji) count as one each.
func CountRunes(text string) int {
	return len([]rune(text))
}
