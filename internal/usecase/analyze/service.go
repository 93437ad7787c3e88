package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"textlens/internal/domain/entity"
	"textlens/internal/nlp/summarize"
	"textlens/internal/observability/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	// feedSummaryParallelism limits concurrent per-item summarization when
	// summarizing a whole feed.
	feedSummaryParallelism = 5

	// maxFeedItems caps how many feed entries a single request summarizes.
	maxFeedItems = 20
)

// Service provides the document analysis operations.
// It orchestrates the extractive summarizer, the sentiment and entity
// providers, and the content fetchers, with logging, validation, and
// error handling.
type Service struct {
	summarizer *summarize.Summarizer
	sentiment  SentimentProvider
	entities   EntityProvider
	fetcher    ContentFetcher
	feeds      FeedFetcher
}

// NewService creates a new analysis service.
//
// Parameters:
//   - summarizer: Frequency-based extractive summarizer
//   - sentiment: Polarity scoring provider (API-backed or lexicon)
//   - entities: Named-entity recognition provider
//   - fetcher: Webpage content fetcher for URL-based operations
//   - feeds: RSS/Atom feed fetcher for feed summarization
//
// Returns:
//   - *Service: Configured analysis service ready to use
func NewService(
	summarizer *summarize.Summarizer,
	sentiment SentimentProvider,
	entities EntityProvider,
	fetcher ContentFetcher,
	feeds FeedFetcher,
) *Service {
	return &Service{
		summarizer: summarizer,
		sentiment:  sentiment,
		entities:   entities,
		fetcher:    fetcher,
		feeds:      feeds,
	}
}

// SummarizeText produces an extractive summary of the given text.
//
// Sentences are scored by summed stopword-filtered word frequencies and the
// top sentences are returned in descending score order, space-joined.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - text: Document to summarize
//   - numSentences: Number of sentences to select (0 yields an empty summary)
//
// Returns:
//   - *entity.SummaryResult: The selected sentences joined into one string
//   - error: Validation error if the inputs are out of range
func (s *Service) SummarizeText(ctx context.Context, text string, numSentences int) (*entity.SummaryResult, error) {
	requestID := s.getOrCreateRequestID(ctx)

	if err := entity.ValidateDocument(text); err != nil {
		return nil, err
	}
	if err := entity.ValidateSentenceCount(numSentences); err != nil {
		return nil, err
	}

	result := s.summarizer.Summarize(text, numSentences)

	slog.Info("text summarized",
		slog.String("request_id", requestID),
		slog.Int("input_bytes", len(text)),
		slog.Int("sentences_requested", numSentences),
		slog.Int("sentences_selected", len(result.Sentences)))

	return &entity.SummaryResult{Summary: result.Summary}, nil
}

// SummarizeURL fetches a webpage and summarizes its main article content.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - url: Webpage URL to fetch and summarize
//   - numSentences: Number of sentences to select
//
// Returns:
//   - *entity.SummaryResult: Summary of the extracted article text
//   - error: Fetch errors (ErrInvalidURL, ErrPrivateIP, ...) or validation errors
func (s *Service) SummarizeURL(ctx context.Context, url string, numSentences int) (*entity.SummaryResult, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "analyze.SummarizeURL")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	text, err := s.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.SummarizeText(ctx, text, numSentences)
}

// AnalyzeSentiment performs aspect-based sentiment analysis on the given text.
//
// The text is split into paragraphs on blank lines; each paragraph is scored
// as a whole and additionally broken into sentences, each scored on its own.
// Polarity scores are classified against the threshold: above it is Positive,
// below its negation is Negative, anything in between is Neutral.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - text: Document to analyze
//   - threshold: Classification threshold in [0, 1]
//
// Returns:
//   - *entity.SentimentResult: Per-paragraph classification with per-sentence breakdown
//   - error: ErrSentimentFailed wrapping the provider error, or validation errors
func (s *Service) AnalyzeSentiment(ctx context.Context, text string, threshold float64) (*entity.SentimentResult, error) {
	requestID := s.getOrCreateRequestID(ctx)

	if err := entity.ValidateDocument(text); err != nil {
		return nil, err
	}
	if err := entity.ValidateThreshold(threshold); err != nil {
		return nil, err
	}

	paragraphs := strings.Split(text, "\n\n")
	result := &entity.SentimentResult{
		Paragraphs: make([]entity.ParagraphSentiment, 0, len(paragraphs)),
	}

	for _, paragraph := range paragraphs {
		polarity, err := s.sentiment.Score(ctx, paragraph)
		if err != nil {
			slog.Error("paragraph sentiment scoring failed",
				slog.String("request_id", requestID),
				slog.Any("error", err))
			return nil, fmt.Errorf("%w: %v", ErrSentimentFailed, err)
		}

		ps := entity.ParagraphSentiment{
			Paragraph: paragraph,
			Polarity:  polarity,
			Sentiment: entity.ClassifySentiment(polarity, threshold),
		}

		for _, sentence := range strings.Split(paragraph, ". ") {
			sentencePolarity, err := s.sentiment.Score(ctx, sentence)
			if err != nil {
				slog.Error("sentence sentiment scoring failed",
					slog.String("request_id", requestID),
					slog.Any("error", err))
				return nil, fmt.Errorf("%w: %v", ErrSentimentFailed, err)
			}
			ps.Sentences = append(ps.Sentences, entity.SentenceSentiment{
				Sentence:  sentence,
				Polarity:  sentencePolarity,
				Sentiment: entity.ClassifySentiment(sentencePolarity, threshold),
			})
		}

		result.Paragraphs = append(result.Paragraphs, ps)
	}

	slog.Info("sentiment analyzed",
		slog.String("request_id", requestID),
		slog.Int("paragraphs", len(result.Paragraphs)),
		slog.Float64("threshold", threshold))

	return result, nil
}

// SentimentURL fetches a webpage and analyzes the sentiment of its main
// article content.
func (s *Service) SentimentURL(ctx context.Context, url string, threshold float64) (*entity.SentimentResult, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "analyze.SentimentURL")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	text, err := s.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeSentiment(ctx, text, threshold)
}

// ExtractEntities returns the most frequent named entities in the given text.
//
// Every mention reported by the provider is counted per distinct (text, type)
// pair; the top-K pairs are returned in descending count order, ties broken
// by first occurrence in the document.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - text: Document to analyze
//   - topK: Number of ranked entities to return
//
// Returns:
//   - *entity.EntityResult: Ranked entities with their occurrence counts
//   - error: ErrEntityExtractionFailed wrapping the provider error, or validation errors
func (s *Service) ExtractEntities(ctx context.Context, text string, topK int) (*entity.EntityResult, error) {
	requestID := s.getOrCreateRequestID(ctx)

	if err := entity.ValidateDocument(text); err != nil {
		return nil, err
	}
	if err := entity.ValidateTopK(topK); err != nil {
		return nil, err
	}

	mentions, err := s.entities.Extract(ctx, text)
	if err != nil {
		slog.Error("entity extraction failed",
			slog.String("request_id", requestID),
			slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrEntityExtractionFailed, err)
	}

	counts := make(map[entity.EntityMention]int, len(mentions))
	firstSeen := make(map[entity.EntityMention]int, len(mentions))
	for i, m := range mentions {
		if _, ok := counts[m]; !ok {
			firstSeen[m] = i
		}
		counts[m]++
	}

	ranked := make([]entity.RankedEntity, 0, len(counts))
	for m, c := range counts {
		ranked = append(ranked, entity.RankedEntity{Text: m.Text, Type: m.Type, Count: c})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		a := entity.EntityMention{Text: ranked[i].Text, Type: ranked[i].Type}
		b := entity.EntityMention{Text: ranked[j].Text, Type: ranked[j].Type}
		return firstSeen[a] < firstSeen[b]
	})
	if topK < len(ranked) {
		ranked = ranked[:topK]
	}

	slog.Info("entities extracted",
		slog.String("request_id", requestID),
		slog.Int("mentions", len(mentions)),
		slog.Int("distinct", len(counts)),
		slog.Int("returned", len(ranked)))

	return &entity.EntityResult{Entities: ranked}, nil
}

// EntitiesURL fetches a webpage and ranks the named entities of its main
// article content.
func (s *Service) EntitiesURL(ctx context.Context, url string, topK int) (*entity.EntityResult, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "analyze.EntitiesURL")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	text, err := s.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	return s.ExtractEntities(ctx, text, topK)
}

// FeedItemSummary is the summary of a single feed entry.
type FeedItemSummary struct {
	Title   string
	Link    string
	Summary string
}

// SummarizeFeed fetches an RSS/Atom feed and summarizes each entry's content.
//
// At most maxFeedItems entries are summarized, concurrently with bounded
// parallelism. Entries with no content yield an empty summary rather than
// an error. The result preserves feed order.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - url: Feed URL to fetch
//   - numSentences: Number of sentences to select per entry
//
// Returns:
//   - []FeedItemSummary: One summary per feed entry, in feed order
//   - error: ErrFeedFetchFailed, ErrInvalidFeedFormat, or validation errors
func (s *Service) SummarizeFeed(ctx context.Context, url string, numSentences int) ([]FeedItemSummary, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "analyze.SummarizeFeed")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	requestID := s.getOrCreateRequestID(ctx)

	if err := entity.ValidateSentenceCount(numSentences); err != nil {
		return nil, err
	}

	items, err := s.feeds.FetchFeed(ctx, url)
	if err != nil {
		slog.Error("feed fetch failed",
			slog.String("request_id", requestID),
			slog.String("url", url),
			slog.Any("error", err))
		return nil, err
	}
	if len(items) > maxFeedItems {
		items = items[:maxFeedItems]
	}

	summaries := make([]FeedItemSummary, len(items))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(feedSummaryParallelism)
	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := entity.ValidateDocument(item.Content); err != nil {
				// Oversized entries are skipped, not fatal for the feed.
				slog.Warn("feed entry skipped",
					slog.String("request_id", requestID),
					slog.String("title", item.Title),
					slog.Any("error", err))
				mu.Lock()
				summaries[i] = FeedItemSummary{Title: item.Title, Link: item.Link}
				mu.Unlock()
				return nil
			}
			result := s.summarizer.Summarize(item.Content, numSentences)
			mu.Lock()
			summaries[i] = FeedItemSummary{
				Title:   item.Title,
				Link:    item.Link,
				Summary: result.Summary,
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("feed summarized",
		slog.String("request_id", requestID),
		slog.String("url", url),
		slog.Int("items", len(summaries)))

	return summaries, nil
}

// fetchPage retrieves the main article text for URL-based operations.
func (s *Service) fetchPage(ctx context.Context, url string) (string, error) {
	requestID := s.getOrCreateRequestID(ctx)

	text, err := s.fetcher.FetchContent(ctx, url)
	if err != nil {
		slog.Error("webpage fetch failed",
			slog.String("request_id", requestID),
			slog.String("url", url),
			slog.Any("error", err))
		return "", err
	}

	slog.Debug("webpage fetched",
		slog.String("request_id", requestID),
		slog.String("url", url),
		slog.Int("content_bytes", len(text)))

	return text, nil
}

// getOrCreateRequestID extracts request ID from context or creates a new one.
func (s *Service) getOrCreateRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value("request_id").(string); ok && requestID != "" {
		return requestID
	}
	return uuid.New().String()
}
