// Package analyze provides the use cases for document analysis: extractive
// summarization, aspect-based sentiment classification, and named-entity
// ranking, over raw text, webpages, and syndication feeds.
package analyze

import "errors"

// Sentinel errors for analysis use case operations.
var (
	// ErrFeedFetchFailed indicates that fetching a feed from the source URL failed.
	// This can occur due to network issues, invalid URLs, or server errors.
	ErrFeedFetchFailed = errors.New("failed to fetch feed from source")

	// ErrInvalidFeedFormat indicates that the feed content could not be parsed.
	// This typically happens when the feed is not valid RSS or Atom format.
	ErrInvalidFeedFormat = errors.New("invalid feed format")

	// ErrSentimentFailed indicates that sentiment scoring of a text failed.
	// This can occur due to provider API errors, rate limits, or invalid content.
	ErrSentimentFailed = errors.New("failed to score text sentiment")

	// ErrEntityExtractionFailed indicates that named-entity recognition failed.
	ErrEntityExtractionFailed = errors.New("failed to extract entities")
)
