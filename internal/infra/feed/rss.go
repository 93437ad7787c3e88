// Package feed provides the RSS/Atom feed fetching implementation.
// It uses the gofeed library to parse feed content with reliability patterns.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"textlens/internal/observability/metrics"
	"textlens/internal/resilience/circuitbreaker"
	"textlens/internal/resilience/retry"
	"textlens/internal/usecase/analyze"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"
)

// RSSFetcher implements analyze.FeedFetcher using the gofeed library.
// It includes circuit breaker and retry logic for improved reliability.
type RSSFetcher struct {
	client         *http.Client
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
// It automatically configures circuit breaker and retry logic.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{
		client:         client,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FeedFetchConfig(),
	}
}

// FetchFeed retrieves and parses an RSS/Atom feed from the given URL.
// It uses circuit breaker and retry logic for improved reliability.
// Returns the parsed feed entries in feed order, with entry content
// reduced to plain text.
func (f *RSSFetcher) FetchFeed(ctx context.Context, feedURL string) ([]analyze.FeedItem, error) {
	var items []analyze.FeedItem
	start := time.Now()

	// Wrap with retry logic
	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		// Execute through circuit breaker
		cbResult, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, feedURL)
		})

		// Handle circuit breaker open state
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("service", "feed-fetch"),
					slog.String("url", feedURL),
					slog.String("state", f.circuitBreaker.State().String()))
				return err
			}
			return err
		}

		items = cbResult.([]analyze.FeedItem)
		return nil
	})

	if retryErr != nil {
		classified := classifyError(retryErr)
		errType := "fetch_failed"
		if errors.Is(classified, analyze.ErrInvalidFeedFormat) {
			errType = "invalid_format"
		}
		metrics.RecordFeedFetchError(errType)
		return nil, classified
	}

	metrics.RecordFeedFetch(time.Since(start), len(items))
	return items, nil
}

// doFetch performs the actual feed fetch without retry or circuit breaker.
func (f *RSSFetcher) doFetch(ctx context.Context, feedURL string) ([]analyze.FeedItem, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "TextLensBot"
	fp.Client = f.client

	parsed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]analyze.FeedItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		pubAt := time.Now()
		if it.PublishedParsed != nil {
			pubAt = *it.PublishedParsed
		}

		// Prefer Content, fall back to Description
		content := it.Content
		if content == "" {
			content = it.Description
		}

		items = append(items, analyze.FeedItem{
			Title:     it.Title,
			Link:      it.Link,
			Content:   stripHTML(content),
			Published: pubAt,
		})
	}

	return items, nil
}

// classifyError maps fetch failures onto the use case sentinel errors.
func classifyError(err error) error {
	if errors.Is(err, gofeed.ErrFeedTypeNotDetected) {
		return fmt.Errorf("%w: %v", analyze.ErrInvalidFeedFormat, err)
	}
	return fmt.Errorf("%w: %v", analyze.ErrFeedFetchFailed, err)
}

// stripHTML reduces entry markup to plain text. Feed entries routinely carry
// HTML bodies, which would pollute word frequencies downstream.
func stripHTML(content string) string {
	if !strings.ContainsRune(content, '<') {
		return strings.TrimSpace(content)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return strings.TrimSpace(content)
	}
	return strings.TrimSpace(doc.Text())
}
