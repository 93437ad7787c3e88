package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"textlens/internal/config"
	"textlens/internal/infra/cache"
	"textlens/internal/infra/feed"
	"textlens/internal/infra/fetcher"
	"textlens/internal/infra/ner"
	"textlens/internal/infra/sentiment"
	"textlens/internal/nlp/stopwords"
	"textlens/internal/nlp/summarize"
	"textlens/internal/observability/logging"
	"textlens/internal/observability/tracing"
	analyzeUC "textlens/internal/usecase/analyze"

	hhttp "textlens/internal/handler/http"
	"textlens/internal/handler/http/analysis"
	"textlens/internal/handler/http/middleware"
	"textlens/internal/handler/http/requestid"

	_ "textlens/docs" // swagger docs
)

// @title           TextLens API
// @version         1.0
// @description     Text analysis REST API providing extractive summarization,
// @description     sentiment classification, and named-entity ranking for raw
// @description     text, webpages, and RSS/Atom feeds.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, warnings := config.LoadAppConfig()
	for _, w := range warnings {
		logger.Warn("configuration fallback", slog.String("detail", w))
	}

	version := getVersion()

	components, err := buildComponents(logger, cfg)
	if err != nil {
		logger.Error("failed to build analysis service", slog.Any("error", err))
		os.Exit(1)
	}

	if err := components.pageCache.StartSweeper(); err != nil {
		logger.Error("failed to start cache sweeper", slog.Any("error", err))
		os.Exit(1)
	}
	defer components.pageCache.StopSweeper()

	handler := buildHandler(logger, cfg, components, version)
	runServers(logger, cfg, handler, version)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// components bundles the wired analysis service with the pieces the HTTP
// layer needs for health reporting.
type components struct {
	service   *analyzeUC.Service
	pageCache *cache.FetchCache
	checkers  map[string]hhttp.HealthChecker
}

// buildComponents wires the NLP engines, providers, fetchers, and cache into
// the analysis service according to the loaded configuration.
func buildComponents(logger *slog.Logger, cfg *config.AppConfig) (*components, error) {
	stops, err := loadStopwords(cfg)
	if err != nil {
		return nil, err
	}
	summarizer := summarize.New(stops)

	sentimentProvider, err := buildSentimentProvider(cfg)
	if err != nil {
		return nil, err
	}
	entityProvider, err := buildEntityProvider(cfg)
	if err != nil {
		return nil, err
	}

	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	pageFetcher := fetcher.NewPageFetcher(fetchCfg)

	pageCache, err := cache.New(pageFetcher, cache.Config{
		TTL:           cfg.CacheTTL,
		MaxEntries:    cfg.CacheMaxEntries,
		SweepSchedule: cfg.CacheSweepSchedule,
	})
	if err != nil {
		return nil, err
	}

	feedFetcher := feed.NewRSSFetcher(newHTTPClient())

	logger.Info("analysis service configured",
		slog.String("sentiment_provider", cfg.SentimentProvider),
		slog.String("entity_provider", cfg.EntityProvider),
		slog.Int("stopwords", stops.Len()),
		slog.Duration("cache_ttl", cfg.CacheTTL))

	return &components{
		service:   analyzeUC.NewService(summarizer, sentimentProvider, entityProvider, pageCache, feedFetcher),
		pageCache: pageCache,
		checkers: map[string]hhttp.HealthChecker{
			"sentiment_provider": sentimentProvider,
			"entity_provider":    entityProvider,
		},
	}, nil
}

// loadStopwords returns the configured stopword set, or the built-in one.
func loadStopwords(cfg *config.AppConfig) (*stopwords.Set, error) {
	if cfg.StopwordsPath == "" {
		return stopwords.Default(), nil
	}
	return stopwords.LoadFile(cfg.StopwordsPath)
}

// buildSentimentProvider constructs the polarity scorer named by the config.
func buildSentimentProvider(cfg *config.AppConfig) (analyzeUC.SentimentProvider, error) {
	switch cfg.SentimentProvider {
	case config.SentimentClaude:
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, errors.New("ANTHROPIC_API_KEY must be set for the claude sentiment provider")
		}
		return sentiment.NewClaude(key), nil
	case config.SentimentOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, errors.New("OPENAI_API_KEY must be set for the openai sentiment provider")
		}
		return sentiment.NewOpenAI(key, sentiment.DefaultOpenAIConfig())
	case config.SentimentLexicon:
		if cfg.LexiconPath != "" {
			return sentiment.LoadLexiconFile(cfg.LexiconPath)
		}
		return sentiment.DefaultLexicon(), nil
	case config.SentimentNoop:
		return sentiment.NewNoOp(), nil
	}
	return nil, errors.New("unknown sentiment provider " + cfg.SentimentProvider)
}

// buildEntityProvider constructs the entity extractor named by the config.
func buildEntityProvider(cfg *config.AppConfig) (analyzeUC.EntityProvider, error) {
	switch cfg.EntityProvider {
	case config.EntityClaude:
		key := os.Getenv("ANTHROPIC_API_KEY")
		if key == "" {
			return nil, errors.New("ANTHROPIC_API_KEY must be set for the claude entity provider")
		}
		return ner.NewClaude(key), nil
	case config.EntityOpenAI:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return nil, errors.New("OPENAI_API_KEY must be set for the openai entity provider")
		}
		return ner.NewOpenAI(key, ner.DefaultOpenAIConfig())
	case config.EntityHeuristic:
		return ner.NewHeuristic(), nil
	case config.EntityNoop:
		return ner.NewNoOp(), nil
	}
	return nil, errors.New("unknown entity provider " + cfg.EntityProvider)
}

// newHTTPClient creates the outbound HTTP client used for feed fetching.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

// buildHandler registers the routes and wraps them in the middleware chain.
//
// Middleware order (outermost first):
//  1. CORS (handles preflight requests early)
//  2. Request ID (generates unique ID for request tracking)
//  3. Tracing (opens the server span, propagates W3C context)
//  4. Rate limiting (rejects floods before expensive analysis)
//  5. Recovery (catches panics)
//  6. Logging (logs all requests)
//  7. Metrics (records request metrics)
//  8. Input validation (URI and body size limits)
//  9. Request timeout (bounds total processing time)
func buildHandler(logger *slog.Logger, cfg *config.AppConfig, c *components, version string) http.Handler {
	mux := http.NewServeMux()
	analysis.Register(mux, c.service, cfg.ReadmePath)

	health := hhttp.NewHealthHandler(c.checkers, c.pageCache, version)
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	rateLimiter := hhttp.NewRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)

	// Apply in reverse order (innermost to outermost)
	var chain http.Handler = mux
	chain = hhttp.Timeout(cfg.RequestTimeout)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = rateLimiter.Limit(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSAllowedOrigins))(chain)

	return chain
}

// runServers starts the API and metrics servers and blocks until shutdown.
func runServers(logger *slog.Logger, cfg *config.AppConfig, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	apiServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", hhttp.MetricsHandler())
	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", slog.String("addr", cfg.MetricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.Any("error", err))
		}
	}()

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.ListenAddr),
			slog.String("version", version))
		if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
