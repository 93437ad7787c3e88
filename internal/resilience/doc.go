// Package resilience provides reliability and fault tolerance patterns for
// outbound calls: webpage fetches, feed fetches, and AI provider requests.
//
// The package supports:
//   - Circuit breakers for external API calls (Claude, OpenAI) and fetches
//   - Retry logic with exponential backoff and jitter
//
// Usage example:
//
//	cb := circuitbreaker.New(circuitbreaker.PageFetchConfig())
//	err := retry.WithBackoff(ctx, retry.PageFetchConfig(), func() error {
//	    _, err := cb.Execute(func() (interface{}, error) {
//	        return fetchPage(ctx, url)
//	    })
//	    return err
//	})
package resilience
