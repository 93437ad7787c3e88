package analysis

import (
	"net/http"
	"time"

	handlerhttp "textlens/internal/handler/http"
	"textlens/internal/handler/http/respond"
	analyzeUC "textlens/internal/usecase/analyze"
)

// FeedSummaryHandler fetches an RSS/Atom feed and summarizes each entry.
type FeedSummaryHandler struct{ Svc *analyzeUC.Service }

// ServeHTTP summarizes a feed.
// @Summary      Summarize a feed
// @Description  Fetches an RSS or Atom feed and produces an extractive summary of every entry's content. Entries without content get an empty summary.
// @Tags         feed
// @Produce      json
// @Param        url query string true "Feed URL (http or https)"
// @Param        num_sentences query int false "Number of sentences to select per entry (default 3)"
// @Success      200 {object} FeedSummaryResponse "Per-entry summaries in feed order"
// @Failure      400 {string} string "Bad request - invalid URL or not a feed"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /feed-summary [get]
func (h FeedSummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	url, ok := requireURLParam(w, r)
	if !ok {
		return
	}
	numSentences, err := intQueryParam(r, "num_sentences", DefaultNumSentences)
	if err != nil {
		respondError(w, err)
		return
	}

	start := time.Now()
	items, err := h.Svc.SummarizeFeed(r.Context(), url, numSentences)
	handlerhttp.RecordAnalysis("feed_summary", err == nil, time.Since(start))
	if err != nil {
		respondError(w, err)
		return
	}
	handlerhttp.RecordFeedItemsSummarized(len(items))

	respond.JSON(w, http.StatusOK, toFeedResponse(items))
}
