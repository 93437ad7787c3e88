// Package observability groups the service's logging, metrics, and tracing.
//
// Subpackages:
//   - logging: slog logger construction, request-ID and context helpers
//   - metrics: Prometheus metrics for outbound page and feed fetching
//   - tracing: OpenTelemetry server spans and W3C trace propagation
//
// HTTP request metrics live with the handlers in internal/handler/http;
// this tree covers everything that crosses the network outbound.
package observability
