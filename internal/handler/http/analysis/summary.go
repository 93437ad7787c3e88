package analysis

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	handlerhttp "textlens/internal/handler/http"
	"textlens/internal/handler/http/respond"
	analyzeUC "textlens/internal/usecase/analyze"
)

// TextSummaryHandler summarizes a document supplied in the request body.
type TextSummaryHandler struct{ Svc *analyzeUC.Service }

// ServeHTTP summarizes raw text.
// @Summary      Summarize text
// @Description  Produces an extractive summary of the supplied document. Sentences are ranked by word frequency and the top ones are returned in descending score order.
// @Tags         summary
// @Accept       json
// @Produce      json
// @Param        request body object true "Document and optional num_sentences (default 3)"
// @Success      200 {object} SummaryResponse "Summary"
// @Failure      400 {string} string "Bad request - invalid document or parameters"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /text-summary [post]
func (h TextSummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text         string `json:"text"`
		NumSentences *int   `json:"num_sentences"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	numSentences := DefaultNumSentences
	if req.NumSentences != nil {
		numSentences = *req.NumSentences
	}

	start := time.Now()
	result, err := h.Svc.SummarizeText(r.Context(), req.Text, numSentences)
	handlerhttp.RecordAnalysis("summary", err == nil, time.Since(start))
	if err != nil {
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, SummaryResponse{Summary: result.Summary})
}

// URLSummaryHandler fetches a webpage and summarizes its article content.
type URLSummaryHandler struct{ Svc *analyzeUC.Service }

// ServeHTTP summarizes a webpage.
// @Summary      Summarize a webpage
// @Description  Fetches the page, extracts its main article content, and produces an extractive summary.
// @Tags         summary
// @Produce      json
// @Param        url query string true "Webpage URL (http or https)"
// @Param        num_sentences query int false "Number of sentences to select (default 3)"
// @Success      200 {object} SummaryResponse "Summary"
// @Failure      400 {string} string "Bad request - invalid URL or unfetchable page"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /summary [get]
func (h URLSummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
	result, err := h.Svc.SummarizeURL(r.Context(), url, numSentences)
	handlerhttp.RecordAnalysis("summary", err == nil, time.Since(start))
	handlerhttp.RecordPageFetch(err == nil)
	if err != nil {
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, SummaryResponse{Summary: result.Summary})
}
