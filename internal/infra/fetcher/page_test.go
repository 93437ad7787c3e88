package fetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"textlens/internal/resilience/retry"
	"textlens/internal/usecase/analyze"

	"github.com/sony/gobreaker"
)

// newTestFetcher builds a fetcher with SSRF protection disabled (the test
// servers listen on loopback) and near-zero retry delays.
func newTestFetcher(config PageFetchConfig) *PageFetcher {
	config.DenyPrivateIPs = false
	f := NewPageFetcher(config)
	f.retryConfig = retry.Config{
		MaxAttempts:    3,
		InitialDelay:   time.Millisecond,
		MaxDelay:       5 * time.Millisecond,
		Multiplier:     2.0,
		JitterFraction: 0,
	}
	return f
}

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "TextLensBot/1.0" {
			t.Errorf("expected User-Agent='TextLensBot/1.0', got %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
}

func TestFetchContent_ArticleElement(t *testing.T) {
	server := serveHTML(t, `<!DOCTYPE html>
<html>
<head><title>Test Article</title></head>
<body>
	<nav>Site navigation</nav>
	<article>
		<h1>Test Article Title</h1>
		<p>This is the first paragraph of the article content.</p>
	</article>
</body>
</html>`)
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	content, err := f.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "first paragraph") {
		t.Errorf("expected article text, got: %q", content)
	}
	if strings.Contains(content, "Site navigation") {
		t.Errorf("navigation must not leak into extracted content: %q", content)
	}
}

func TestFetchContent_MainContentDivFallback(t *testing.T) {
	server := serveHTML(t, `<html><body>
	<div class="main-content"><p>Fallback container content here.</p></div>
</body></html>`)
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	content, err := f.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "Fallback container content") {
		t.Errorf("expected div.main-content text, got: %q", content)
	}
}

func TestFetchContent_ArticleIDDivFallback(t *testing.T) {
	server := serveHTML(t, `<html><body>
	<div id="article"><p>Identified article body.</p></div>
</body></html>`)
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	content, err := f.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "Identified article body") {
		t.Errorf("expected div#article text, got: %q", content)
	}
}

func TestFetchContent_SelectorPrecedence(t *testing.T) {
	// article wins over the div fallbacks when both are present
	server := serveHTML(t, `<html><body>
	<article><p>Primary container.</p></article>
	<div class="main-content"><p>Secondary container.</p></div>
</body></html>`)
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	content, err := f.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "Primary container") {
		t.Errorf("expected article element to win, got: %q", content)
	}
	if strings.Contains(content, "Secondary container") {
		t.Errorf("fallback container should not be used, got: %q", content)
	}
}

func TestFetchContent_ReadabilityFallback(t *testing.T) {
	// No recognizable container; Readability should still find the body text.
	paragraphs := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		paragraphs = append(paragraphs,
			fmt.Sprintf("<p>Paragraph %d carries enough prose for the readability scorer to keep it around.</p>", i))
	}
	server := serveHTML(t, "<html><head><title>Plain</title></head><body><div>"+
		strings.Join(paragraphs, "\n")+"</div></body></html>")
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	content, err := f.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "Paragraph 3") {
		t.Errorf("expected readability-extracted text, got: %q", content)
	}
}

func TestFetchContent_ExtractionFailed(t *testing.T) {
	server := serveHTML(t, `<html><body></body></html>`)
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	_, err := f.FetchContent(context.Background(), server.URL)
	if !errors.Is(err, analyze.ErrExtractionFailed) {
		t.Errorf("expected ErrExtractionFailed, got: %v", err)
	}
}

func TestFetchContent_InvalidURL(t *testing.T) {
	f := newTestFetcher(DefaultConfig())

	tests := []struct {
		name string
		url  string
	}{
		{name: "malformed URL", url: "not-a-valid-url"},
		{name: "empty URL", url: ""},
		{name: "file scheme", url: "file:///etc/passwd"},
		{name: "ftp scheme", url: "ftp://example.com/file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.FetchContent(context.Background(), tt.url)
			if !errors.Is(err, analyze.ErrInvalidURL) {
				t.Errorf("expected ErrInvalidURL, got: %v", err)
			}
		})
	}
}

func TestFetchContent_PrivateIPBlocked(t *testing.T) {
	config := DefaultConfig() // DenyPrivateIPs enabled
	f := NewPageFetcher(config)

	tests := []string{
		"http://localhost/article",
		"http://127.0.0.1/article",
		"http://10.0.0.1/article",
		"http://192.168.1.1/article",
		"http://[::1]/article",
	}

	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			_, err := f.FetchContent(context.Background(), url)
			if err == nil {
				t.Fatal("expected error for private target, got nil")
			}
			if !errors.Is(err, analyze.ErrPrivateIP) && !errors.Is(err, analyze.ErrInvalidURL) {
				t.Errorf("expected ErrPrivateIP or ErrInvalidURL, got: %v", err)
			}
		})
	}
}

func TestFetchContent_NotFoundIsNotRetried(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	_, err := f.FetchContent(context.Background(), server.URL)

	var httpErr *retry.HTTPError
	if !errors.As(err, &httpErr) || httpErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected HTTP 404 error, got: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("404 should not be retried, server hit %d times", hits.Load())
	}
}

func TestFetchContent_ServerErrorIsRetried(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><article><p>Recovered content.</p></article></body></html>`))
	}))
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	content, err := f.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "Recovered content") {
		t.Errorf("expected content after retry, got: %q", content)
	}
	if hits.Load() != 3 {
		t.Errorf("expected 3 attempts, server hit %d times", hits.Load())
	}
}

func TestFetchContent_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><article>"))
		_, _ = w.Write([]byte(strings.Repeat("x", 4096)))
		_, _ = w.Write([]byte("</article></body></html>"))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.MaxBodySize = 1024
	f := newTestFetcher(config)

	_, err := f.FetchContent(context.Background(), server.URL)
	if !errors.Is(err, analyze.ErrBodyTooLarge) {
		t.Errorf("expected ErrBodyTooLarge, got: %v", err)
	}
}

func TestFetchContent_TooManyRedirects(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer server.Close()

	config := DefaultConfig()
	config.MaxRedirects = 2
	f := newTestFetcher(config)

	_, err := f.FetchContent(context.Background(), server.URL)
	if !errors.Is(err, analyze.ErrTooManyRedirects) {
		t.Errorf("expected ErrTooManyRedirects, got: %v", err)
	}
}

func TestFetchContent_SuccessfulRedirect(t *testing.T) {
	target := serveHTML(t, `<html><body><article><p>Redirect target content.</p></article></body></html>`)
	defer target.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
	}))
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	content, err := f.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}
	if !strings.Contains(content, "Redirect target content") {
		t.Errorf("expected redirect target text, got: %q", content)
	}
}

func TestFetchContent_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte("<html><body><article>late</article></body></html>"))
	}))
	defer server.Close()

	config := DefaultConfig()
	config.Timeout = 50 * time.Millisecond
	f := newTestFetcher(config)
	f.retryConfig.MaxAttempts = 1

	_, err := f.FetchContent(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
}

func TestFetchContent_CircuitBreakerOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := newTestFetcher(DefaultConfig())

	// PageFetchConfig trips at 80% failures over at least 5 requests;
	// every attempt here fails, so repeated calls open the circuit.
	var lastErr error
	for i := 0; i < 5; i++ {
		_, lastErr = f.FetchContent(context.Background(), server.URL)
	}

	if !errors.Is(lastErr, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState after repeated failures, got: %v", lastErr)
	}
	if !f.circuitBreaker.IsOpen() {
		t.Error("expected circuit breaker to be open")
	}
}

func BenchmarkURLValidation(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = validateURL("https://example.com/some/article/path", false)
	}
}

func BenchmarkExtract(b *testing.B) {
	f := newTestFetcher(DefaultConfig())
	html := []byte(`<html><body><article><h1>Title</h1><p>` +
		strings.Repeat("Benchmark prose sentence. ", 200) + `</p></article></body></html>`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.extract(html, nil, "https://example.com/bench"); err != nil {
			b.Fatal(err)
		}
	}
}
