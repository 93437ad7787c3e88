// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware extracts W3C Trace Context from incoming requests,
// opens a server span per request, and echoes the trace ID back in the
// X-Trace-Id response header. Analysis operations open child spans through
// GetTracer.
//
// Example usage:
//
//	import "textlens/internal/observability/tracing"
//
//	func analyze(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "summarize-text")
//	    defer span.End()
//	    // ... analyze ...
//	}
package tracing
