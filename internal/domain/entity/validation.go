package entity

import (
	"fmt"
)

const (
	// maxDocumentBytes defines the maximum accepted document size to
	// prevent unbounded memory use from oversized analysis requests.
	maxDocumentBytes = 1 << 20 // 1MB

	// maxSentenceCount caps the number of sentences a caller may request.
	maxSentenceCount = 100

	// maxTopEntities caps the number of ranked entities a caller may request.
	maxTopEntities = 100
)

// ValidateDocument validates an input document for analysis.
// An empty document is valid (it yields an empty result); only size
// limits are enforced here.
func ValidateDocument(text string) error {
	if len(text) > maxDocumentBytes {
		return &ValidationError{
			Field:   "text",
			Message: fmt.Sprintf("text must not exceed %d bytes", maxDocumentBytes),
		}
	}
	return nil
}

// ValidateSentenceCount validates a requested summary length.
// Negative values are rejected; zero is valid and yields an empty summary.
func ValidateSentenceCount(n int) error {
	if n < 0 {
		return &ValidationError{Field: "num_sentences", Message: "must be non-negative"}
	}
	if n > maxSentenceCount {
		return &ValidationError{
			Field:   "num_sentences",
			Message: fmt.Sprintf("must not exceed %d", maxSentenceCount),
		}
	}
	return nil
}

// ValidateThreshold validates a sentiment polarity threshold.
// Polarity scores live in [-1, 1], so a classification threshold outside
// [0, 1] can never be crossed and is rejected as invalid.
func ValidateThreshold(threshold float64) error {
	if threshold < 0 || threshold > 1 {
		return &ValidationError{Field: "threshold", Message: "must be between 0 and 1"}
	}
	return nil
}

// ValidateTopK validates a requested entity ranking size.
func ValidateTopK(k int) error {
	if k < 0 {
		return &ValidationError{Field: "top_k", Message: "must be non-negative"}
	}
	if k > maxTopEntities {
		return &ValidationError{
			Field:   "top_k",
			Message: fmt.Sprintf("must not exceed %d", maxTopEntities),
		}
	}
	return nil
}
