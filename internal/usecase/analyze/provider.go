package analyze

import (
	"context"
	"time"

	"textlens/internal/domain/entity"
)

// SentimentProvider defines the interface for polarity scoring backends.
// This abstraction allows switching between different scorers
// (e.g., Claude API, OpenAI API, the bundled lexicon) without changing
// business logic.
type SentimentProvider interface {
	// Score returns the polarity of the given text in [-1, 1], where -1 is
	// maximally negative and +1 is maximally positive. An empty or
	// unscoreable text returns 0.
	Score(ctx context.Context, text string) (float64, error)

	// Health returns the health status of the provider.
	Health(ctx context.Context) (*HealthStatus, error)
}

// EntityProvider defines the interface for named-entity recognition backends.
// Implementations return every mention in document order; counting and
// ranking are business logic and stay in this package.
type EntityProvider interface {
	// Extract returns all named-entity mentions found in the text, in
	// document order, one element per occurrence.
	Extract(ctx context.Context, text string) ([]entity.EntityMention, error)

	// Health returns the health status of the provider.
	Health(ctx context.Context) (*HealthStatus, error)
}

// FeedFetcher is an interface for fetching items from RSS/Atom feeds.
type FeedFetcher interface {
	// FetchFeed fetches and parses the feed at the given URL, returning its
	// items in feed order.
	//
	// Errors:
	//   - ErrFeedFetchFailed: the feed could not be retrieved
	//   - ErrInvalidFeedFormat: the payload is not valid RSS or Atom
	FetchFeed(ctx context.Context, url string) ([]FeedItem, error)
}

// FeedItem is a single entry of a syndication feed.
type FeedItem struct {
	Title     string
	Link      string
	Content   string
	Published time.Time
}

// HealthStatus represents the health of an analysis provider.
type HealthStatus struct {
	Healthy     bool
	Latency     time.Duration
	Message     string
	CircuitOpen bool
}
