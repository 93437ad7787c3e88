package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"textlens/internal/infra/feed"
	"textlens/internal/usecase/analyze"
)

func newTestServer(t *testing.T, contentType, payload string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		if _, err := w.Write([]byte(payload)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
}

func TestRSSFetcher_FetchFeed_Success(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Article 1</title>
      <link>https://example.com/article1</link>
      <description>Description 1</description>
      <pubDate>Mon, 01 Jan 2024 00:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Article 2</title>
      <link>https://example.com/article2</link>
      <description>Description 2</description>
      <pubDate>Tue, 02 Jan 2024 00:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`
	server := newTestServer(t, "application/rss+xml", rss)
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := feed.NewRSSFetcher(client)

	items, err := fetcher.FetchFeed(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchFeed() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("items length = %d, want 2", len(items))
	}

	if items[0].Title != "Article 1" {
		t.Errorf("items[0].Title = %q, want %q", items[0].Title, "Article 1")
	}
	if items[0].Link != "https://example.com/article1" {
		t.Errorf("items[0].Link = %q, want %q", items[0].Link, "https://example.com/article1")
	}
	if items[0].Content != "Description 1" {
		t.Errorf("items[0].Content = %q, want %q", items[0].Content, "Description 1")
	}

	wantTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !items[0].Published.Equal(wantTime) {
		t.Errorf("items[0].Published = %v, want %v", items[0].Published, wantTime)
	}
}

func TestRSSFetcher_FetchFeed_Atom(t *testing.T) {
	atom := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Test Atom Feed</title>
  <link href="https://example.com"/>
  <updated>2024-01-01T00:00:00Z</updated>
  <entry>
    <title>Atom Article 1</title>
    <link href="https://example.com/atom1"/>
    <id>atom1</id>
    <updated>2024-01-01T00:00:00Z</updated>
    <summary>Atom Summary 1</summary>
  </entry>
</feed>`
	server := newTestServer(t, "application/atom+xml", atom)
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := feed.NewRSSFetcher(client)

	items, err := fetcher.FetchFeed(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchFeed() error = %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("items length = %d, want 1", len(items))
	}
	if items[0].Title != "Atom Article 1" {
		t.Errorf("items[0].Title = %q, want %q", items[0].Title, "Atom Article 1")
	}
	if items[0].Content != "Atom Summary 1" {
		t.Errorf("items[0].Content = %q, want %q", items[0].Content, "Atom Summary 1")
	}
}

func TestRSSFetcher_FetchFeed_StripsHTML(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test</description>
    <item>
      <title>Markup Entry</title>
      <link>https://example.com/markup</link>
      <description>&lt;p&gt;First sentence.&lt;/p&gt;&lt;p&gt;Second sentence.&lt;/p&gt;</description>
    </item>
  </channel>
</rss>`
	server := newTestServer(t, "application/rss+xml", rss)
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := feed.NewRSSFetcher(client)

	items, err := fetcher.FetchFeed(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchFeed() error = %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("items length = %d, want 1", len(items))
	}
	want := "First sentence.Second sentence."
	if items[0].Content != want {
		t.Errorf("items[0].Content = %q, want %q", items[0].Content, want)
	}
}

func TestRSSFetcher_FetchFeed_InvalidFormat(t *testing.T) {
	server := newTestServer(t, "text/html", "<html><body>not a feed</body></html>")
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := feed.NewRSSFetcher(client)

	_, err := fetcher.FetchFeed(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for non-feed payload, got nil")
	}
}

func TestRSSFetcher_FetchFeed_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := feed.NewRSSFetcher(client)

	_, err := fetcher.FetchFeed(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for missing feed, got nil")
	}
}

func TestRSSFetcher_FetchFeed_EmptyFeed(t *testing.T) {
	rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Empty Feed</title>
    <link>https://example.com</link>
    <description>No entries</description>
  </channel>
</rss>`
	server := newTestServer(t, "application/rss+xml", rss)
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := feed.NewRSSFetcher(client)

	items, err := fetcher.FetchFeed(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchFeed() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("items length = %d, want 0", len(items))
	}
}

var _ analyze.FeedFetcher = (*feed.RSSFetcher)(nil)
