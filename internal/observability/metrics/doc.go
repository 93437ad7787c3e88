// Package metrics provides Prometheus metrics for outbound content retrieval.
//
// The HTTP serving layer records its own request metrics; this package covers
// the other side of the wire: webpage content fetches and RSS/Atom feed
// fetches performed on behalf of analysis requests.
//
// All metrics are registered with the Prometheus default registry and exposed
// via the /metrics endpoint.
//
// Example usage:
//
//	import "textlens/internal/observability/metrics"
//
//	start := time.Now()
//	content, err := fetcher.FetchContent(ctx, url)
//	if err != nil {
//	    metrics.RecordContentFetchFailed(time.Since(start))
//	    return "", err
//	}
//	metrics.RecordContentFetchSuccess(time.Since(start), len(content))
package metrics
