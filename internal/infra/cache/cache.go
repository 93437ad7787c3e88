// Package cache provides an in-memory TTL cache for fetched page content.
// It decorates a ContentFetcher so repeated analyses of the same URL within
// the TTL window reuse the extracted text instead of refetching the page.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/singleflight"

	"textlens/internal/usecase/analyze"
)

// Config holds the cache configuration.
type Config struct {
	// TTL is how long a fetched page stays valid.
	// Default: 10 minutes
	TTL time.Duration

	// MaxEntries caps the number of cached pages. When the cap is reached,
	// storing a new page evicts the oldest entry.
	// Default: 1024
	MaxEntries int

	// SweepSchedule is the cron expression for the periodic sweep that
	// removes expired entries. Format: "minute hour day month weekday".
	// Default: "*/5 * * * *" (every 5 minutes)
	SweepSchedule string
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		TTL:           10 * time.Minute,
		MaxEntries:    1024,
		SweepSchedule: "*/5 * * * *",
	}
}

// Validate checks the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be positive, got %v", c.TTL)
	}
	if c.MaxEntries <= 0 {
		return fmt.Errorf("max entries must be positive, got %d", c.MaxEntries)
	}
	if _, err := cron.ParseStandard(c.SweepSchedule); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", c.SweepSchedule, err)
	}
	return nil
}

// entry is a cached page with its storage time.
type entry struct {
	content  string
	storedAt time.Time
}

// Stats reports cache effectiveness counters.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// FetchCache decorates a ContentFetcher with an in-memory TTL cache.
// Concurrent requests for the same URL are collapsed into a single
// upstream fetch. Fetch errors are never cached, so a transient failure
// does not poison subsequent requests.
type FetchCache struct {
	inner  analyze.ContentFetcher
	config Config
	group  singleflight.Group
	cron   *cron.Cron

	mu      sync.RWMutex
	entries map[string]entry
	hits    uint64
	misses  uint64

	// now is replaceable for tests.
	now func() time.Time
}

// New creates a FetchCache wrapping the given fetcher.
func New(inner analyze.ContentFetcher, config Config) (*FetchCache, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache configuration: %w", err)
	}

	slog.Info("Initialized page content cache",
		slog.Duration("ttl", config.TTL),
		slog.Int("max_entries", config.MaxEntries),
		slog.String("sweep_schedule", config.SweepSchedule))

	return &FetchCache{
		inner:   inner,
		config:  config,
		entries: make(map[string]entry),
		now:     time.Now,
	}, nil
}

// FetchContent returns cached content for the URL when fresh, otherwise
// fetches through the wrapped fetcher and stores the result.
func (fc *FetchCache) FetchContent(ctx context.Context, url string) (string, error) {
	if content, ok := fc.lookup(url); ok {
		fc.mu.Lock()
		fc.hits++
		fc.mu.Unlock()
		slog.DebugContext(ctx, "page cache hit", slog.String("url", url))
		return content, nil
	}

	fc.mu.Lock()
	fc.misses++
	fc.mu.Unlock()

	// Collapse concurrent fetches of the same URL into one upstream call.
	result, err, _ := fc.group.Do(url, func() (interface{}, error) {
		// Another goroutine may have stored the page while this one
		// waited on the flight group.
		if content, ok := fc.lookup(url); ok {
			return content, nil
		}

		content, err := fc.inner.FetchContent(ctx, url)
		if err != nil {
			return "", err
		}
		fc.store(url, content)
		return content, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// StartSweeper schedules the periodic expired-entry sweep. Call StopSweeper
// during shutdown.
func (fc *FetchCache) StartSweeper() error {
	c := cron.New()
	if _, err := c.AddFunc(fc.config.SweepSchedule, fc.Sweep); err != nil {
		return fmt.Errorf("failed to schedule cache sweep: %w", err)
	}
	c.Start()
	fc.cron = c

	slog.Info("page cache sweeper started",
		slog.String("schedule", fc.config.SweepSchedule))
	return nil
}

// StopSweeper stops the periodic sweep. Safe to call when the sweeper was
// never started.
func (fc *FetchCache) StopSweeper() {
	if fc.cron != nil {
		fc.cron.Stop()
	}
}

// Sweep removes all expired entries. It runs on the cron schedule but can
// also be invoked directly.
func (fc *FetchCache) Sweep() {
	now := fc.now()

	fc.mu.Lock()
	before := len(fc.entries)
	for url, e := range fc.entries {
		if now.Sub(e.storedAt) >= fc.config.TTL {
			delete(fc.entries, url)
		}
	}
	after := len(fc.entries)
	fc.mu.Unlock()

	if removed := before - after; removed > 0 {
		slog.Debug("page cache swept",
			slog.Int("removed", removed),
			slog.Int("remaining", after))
	}
}

// Stats returns a snapshot of the cache counters.
func (fc *FetchCache) Stats() Stats {
	fc.mu.RLock()
	defer fc.mu.RUnlock()
	return Stats{
		Hits:    fc.hits,
		Misses:  fc.misses,
		Entries: len(fc.entries),
	}
}

// lookup returns the cached content for the URL if present and fresh.
func (fc *FetchCache) lookup(url string) (string, bool) {
	fc.mu.RLock()
	e, ok := fc.entries[url]
	fc.mu.RUnlock()

	if !ok || fc.now().Sub(e.storedAt) >= fc.config.TTL {
		return "", false
	}
	return e.content, true
}

// store saves content for the URL, evicting the oldest entry at capacity.
func (fc *FetchCache) store(url, content string) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if len(fc.entries) >= fc.config.MaxEntries {
		var oldestURL string
		var oldestAt time.Time
		for u, e := range fc.entries {
			if oldestURL == "" || e.storedAt.Before(oldestAt) {
				oldestURL = u
				oldestAt = e.storedAt
			}
		}
		delete(fc.entries, oldestURL)
	}

	fc.entries[url] = entry{content: content, storedAt: fc.now()}
}
