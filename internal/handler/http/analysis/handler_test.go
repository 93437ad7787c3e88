package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlens/internal/domain/entity"
	"textlens/internal/nlp/stopwords"
	"textlens/internal/nlp/summarize"
	analyzeUC "textlens/internal/usecase/analyze"
)

// stubSentiment scores every text with a fixed polarity.
type stubSentiment struct {
	polarity float64
	err      error
}

func (s *stubSentiment) Score(context.Context, string) (float64, error) {
	return s.polarity, s.err
}

func (s *stubSentiment) Health(context.Context) (*analyzeUC.HealthStatus, error) {
	return &analyzeUC.HealthStatus{Healthy: true}, nil
}

// stubEntities returns fixed mentions.
type stubEntities struct {
	mentions []entity.EntityMention
	err      error
}

func (s *stubEntities) Extract(context.Context, string) ([]entity.EntityMention, error) {
	return s.mentions, s.err
}

func (s *stubEntities) Health(context.Context) (*analyzeUC.HealthStatus, error) {
	return &analyzeUC.HealthStatus{Healthy: true}, nil
}

// stubFetcher returns fixed page content or an error.
type stubFetcher struct {
	content string
	err     error
}

func (s *stubFetcher) FetchContent(context.Context, string) (string, error) {
	return s.content, s.err
}

// stubFeed returns fixed feed items or an error.
type stubFeed struct {
	items []analyzeUC.FeedItem
	err   error
}

func (s *stubFeed) FetchFeed(context.Context, string) ([]analyzeUC.FeedItem, error) {
	return s.items, s.err
}

type serviceStubs struct {
	sentiment *stubSentiment
	entities  *stubEntities
	fetcher   *stubFetcher
	feed      *stubFeed
}

func newTestMux(t *testing.T, stubs serviceStubs, readmePath string) *http.ServeMux {
	t.Helper()
	if stubs.sentiment == nil {
		stubs.sentiment = &stubSentiment{}
	}
	if stubs.entities == nil {
		stubs.entities = &stubEntities{}
	}
	if stubs.fetcher == nil {
		stubs.fetcher = &stubFetcher{}
	}
	if stubs.feed == nil {
		stubs.feed = &stubFeed{}
	}

	svc := analyzeUC.NewService(
		summarize.New(stopwords.Default()),
		stubs.sentiment,
		stubs.entities,
		stubs.fetcher,
		stubs.feed,
	)

	mux := http.NewServeMux()
	Register(mux, svc, readmePath)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

const sampleDoc = "The cat sat on the mat. The cat chased a mouse. Dogs bark loudly at night. The mouse escaped quickly."

func TestTextSummary(t *testing.T) {
	mux := newTestMux(t, serviceStubs{}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-summary", `{"text":"`+sampleDoc+`","num_sentences":1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Summary)
	assert.NotContains(t, resp.Summary, "Dogs bark", "lowest scoring sentence should not be selected")
}

func TestTextSummary_MissingText(t *testing.T) {
	mux := newTestMux(t, serviceStubs{}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-summary", `{"num_sentences":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "text is required")
}

func TestTextSummary_InvalidJSON(t *testing.T) {
	mux := newTestMux(t, serviceStubs{}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-summary", `{"text": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid JSON body")
}

func TestTextSummary_InvalidSentenceCount(t *testing.T) {
	mux := newTestMux(t, serviceStubs{}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-summary", `{"text":"Some text.","num_sentences":-1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "num_sentences")
}

func TestURLSummary(t *testing.T) {
	mux := newTestMux(t, serviceStubs{fetcher: &stubFetcher{content: sampleDoc}}, "")

	rec := doJSON(t, mux, http.MethodGet, "/summary?url=https://example.com/article&num_sentences=2", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Summary)
}

func TestURLSummary_MissingURL(t *testing.T) {
	mux := newTestMux(t, serviceStubs{}, "")

	rec := doJSON(t, mux, http.MethodGet, "/summary", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "url parameter is required")
}

func TestURLSummary_PrivateIPRejected(t *testing.T) {
	mux := newTestMux(t, serviceStubs{fetcher: &stubFetcher{err: analyzeUC.ErrPrivateIP}}, "")

	rec := doJSON(t, mux, http.MethodGet, "/summary?url=http://169.254.169.254/meta", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestURLSummary_NonIntegerParam(t *testing.T) {
	mux := newTestMux(t, serviceStubs{}, "")

	rec := doJSON(t, mux, http.MethodGet, "/summary?url=https://example.com&num_sentences=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "must be an integer")
}

func TestTextSentiment(t *testing.T) {
	mux := newTestMux(t, serviceStubs{sentiment: &stubSentiment{polarity: 0.8}}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-sentiment", `{"text":"Great product. Works well."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SentimentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Paragraphs, 1)
	assert.Equal(t, "Positive", resp.Paragraphs[0].Sentiment)
	assert.InDelta(t, 0.8, resp.Paragraphs[0].Polarity, 1e-9)
	require.Len(t, resp.Paragraphs[0].Sentences, 2)
	assert.Equal(t, "Positive", resp.Paragraphs[0].Sentences[0].Sentiment)
}

func TestTextSentiment_NeutralWithinDefaultThreshold(t *testing.T) {
	mux := newTestMux(t, serviceStubs{sentiment: &stubSentiment{polarity: 0.3}}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-sentiment", `{"text":"It exists."}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SentimentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Paragraphs, 1)
	assert.Equal(t, "Neutral", resp.Paragraphs[0].Sentiment)
}

func TestTextSentiment_CustomThreshold(t *testing.T) {
	mux := newTestMux(t, serviceStubs{sentiment: &stubSentiment{polarity: 0.3}}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-sentiment", `{"text":"It exists.","threshold":0.2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SentimentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Positive", resp.Paragraphs[0].Sentiment)
}

func TestTextSentiment_ProviderFailure(t *testing.T) {
	mux := newTestMux(t, serviceStubs{sentiment: &stubSentiment{err: context.DeadlineExceeded}}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-sentiment", `{"text":"Anything."}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "sentiment analysis failed")
}

func TestTextSentiment_InvalidThreshold(t *testing.T) {
	mux := newTestMux(t, serviceStubs{}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-sentiment", `{"text":"Anything.","threshold":1.5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "threshold")
}

func TestTextEntities(t *testing.T) {
	mux := newTestMux(t, serviceStubs{entities: &stubEntities{mentions: []entity.EntityMention{
		{Text: "Apple", Type: "ORG"},
		{Text: "Tim Cook", Type: "PERSON"},
		{Text: "Apple", Type: "ORG"},
	}}}, "")

	rec := doJSON(t, mux, http.MethodPost, "/text-entities", `{"text":"Apple news about Tim Cook and Apple.","top_k":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EntitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entities, 2)
	assert.Equal(t, EntityDTO{Text: "Apple", Type: "ORG", Count: 2}, resp.Entities[0])
	assert.Equal(t, EntityDTO{Text: "Tim Cook", Type: "PERSON", Count: 1}, resp.Entities[1])
}

func TestURLEntities(t *testing.T) {
	mux := newTestMux(t, serviceStubs{
		fetcher:  &stubFetcher{content: "Apple ships a new device."},
		entities: &stubEntities{mentions: []entity.EntityMention{{Text: "Apple", Type: "ORG"}}},
	}, "")

	rec := doJSON(t, mux, http.MethodGet, "/entities?url=https://example.com/article", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp EntitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Entities, 1)
	assert.Equal(t, "Apple", resp.Entities[0].Text)
}

func TestFeedSummary(t *testing.T) {
	mux := newTestMux(t, serviceStubs{feed: &stubFeed{items: []analyzeUC.FeedItem{
		{Title: "First", Link: "https://example.com/1", Content: sampleDoc, Published: time.Now()},
		{Title: "Second", Link: "https://example.com/2", Content: "", Published: time.Now()},
	}}}, "")

	rec := doJSON(t, mux, http.MethodGet, "/feed-summary?url=https://example.com/rss&num_sentences=1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FeedSummaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "First", resp.Items[0].Title)
	assert.NotEmpty(t, resp.Items[0].Summary)
	assert.Empty(t, resp.Items[1].Summary, "entry without content gets an empty summary")
}

func TestFeedSummary_InvalidFormat(t *testing.T) {
	mux := newTestMux(t, serviceStubs{feed: &stubFeed{err: analyzeUC.ErrInvalidFeedFormat}}, "")

	rec := doJSON(t, mux, http.MethodGet, "/feed-summary?url=https://example.com/not-a-feed", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valid RSS or Atom feed")
}

func TestReadme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nlp_readme.md")
	require.NoError(t, os.WriteFile(path, []byte("# Analysis API\n\nUsage notes."), 0o600))

	mux := newTestMux(t, serviceStubs{}, path)

	rec := doJSON(t, mux, http.MethodGet, "/nlp-readme", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "# Analysis API")
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/markdown")
}

func TestReadme_Missing(t *testing.T) {
	mux := newTestMux(t, serviceStubs{}, filepath.Join(t.TempDir(), "absent.md"))

	rec := doJSON(t, mux, http.MethodGet, "/nlp-readme", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found.", rec.Body.String())
}
