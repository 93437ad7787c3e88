package http

import (
	"context"
	"net/http"
	"time"

	"textlens/internal/handler/http/respond"
	"textlens/internal/infra/cache"
	"textlens/internal/usecase/analyze"
)

// healthCheckTimeout bounds each dependency probe so a stuck provider
// cannot hang the readiness endpoint.
const healthCheckTimeout = 5 * time.Second

// HealthChecker is the subset of a provider used by the readiness probe.
type HealthChecker interface {
	Health(ctx context.Context) (*analyze.HealthStatus, error)
}

// ComponentStatus describes one dependency in the readiness response.
type ComponentStatus struct {
	Status      string `json:"status"`
	Message     string `json:"message,omitempty"`
	CircuitOpen bool   `json:"circuit_open,omitempty"`
	LatencyMS   int64  `json:"latency_ms"`
}

// HealthResponse is the readiness probe payload.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components"`
	Cache      *CacheStatus               `json:"cache,omitempty"`
}

// CacheStatus reports page cache effectiveness.
type CacheStatus struct {
	Entries int    `json:"entries"`
	Hits    uint64 `json:"hits"`
	Misses  uint64 `json:"misses"`
}

// HealthHandler serves liveness and readiness probes.
// Liveness never checks dependencies; readiness probes each provider with
// a bounded timeout and reports per-component status. An open circuit
// breaker degrades the response but does not fail readiness, because the
// text-only endpoints keep working without the AI providers.
type HealthHandler struct {
	checkers map[string]HealthChecker
	cache    *cache.FetchCache
	version  string
}

// NewHealthHandler creates a health handler.
// checkers maps component names (e.g. "sentiment_provider") to their
// health probes; cache may be nil when page caching is disabled.
func NewHealthHandler(checkers map[string]HealthChecker, pageCache *cache.FetchCache, version string) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		cache:    pageCache,
		version:  version,
	}
}

// Live handles the liveness probe. It answers 200 as long as the
// process can serve HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles the readiness probe; it runs the same dependency checks as
// Health since readiness here means the providers answer.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	h.Health(w, r)
}

// Health reports overall service health, checking every registered dependency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]ComponentStatus, len(h.checkers)),
	}
	code := http.StatusOK

	for name, checker := range h.checkers {
		component := h.checkComponent(r.Context(), checker)
		resp.Components[name] = component

		switch component.Status {
		case "unhealthy":
			resp.Status = "unhealthy"
			code = http.StatusServiceUnavailable
		case "degraded":
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}
	}

	if h.cache != nil {
		stats := h.cache.Stats()
		resp.Cache = &CacheStatus{
			Entries: stats.Entries,
			Hits:    stats.Hits,
			Misses:  stats.Misses,
		}
		UpdatePageCacheEntries(stats.Entries)
	}

	respond.JSON(w, code, resp)
}

// checkComponent probes one dependency with a bounded timeout.
func (h *HealthHandler) checkComponent(ctx context.Context, checker HealthChecker) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	start := time.Now()
	status, err := checker.Health(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return ComponentStatus{
			Status:    "unhealthy",
			Message:   respond.SanitizeError(err),
			LatencyMS: latency,
		}
	}

	component := ComponentStatus{
		Status:      "ok",
		Message:     status.Message,
		CircuitOpen: status.CircuitOpen,
		LatencyMS:   latency,
	}
	if !status.Healthy {
		component.Status = "degraded"
	}
	return component
}
