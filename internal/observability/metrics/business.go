package metrics

import (
	"time"
)

// RecordContentFetchSuccess records a successful webpage content fetch.
// This tracks both the duration and size of extracted content.
//
// Parameters:
//   - duration: Time taken to fetch and extract the content
//   - size: Size of extracted content in bytes
//
// Example:
//
//	start := time.Now()
//	content, err := fetcher.FetchContent(ctx, url)
//	if err == nil {
//	    RecordContentFetchSuccess(time.Since(start), len(content))
//	}
func RecordContentFetchSuccess(duration time.Duration, size int) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
	ContentFetchSize.Observe(float64(size))
}

// RecordContentFetchFailed records a failed webpage content fetch.
//
// Parameters:
//   - duration: Time taken before the fetch failed
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordFeedFetch records a successful feed fetch with its entry count.
func RecordFeedFetch(duration time.Duration, itemCount int) {
	FeedFetchDuration.Observe(duration.Seconds())
	FeedFetchItems.Observe(float64(itemCount))
}

// RecordFeedFetchError records an error during feed fetching.
// ErrorType should be "invalid_format" or "fetch_failed".
func RecordFeedFetchError(errorType string) {
	FeedFetchErrors.WithLabelValues(errorType).Inc()
}
