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

// TextSentimentHandler analyzes sentiment of a document supplied in the request body.
type TextSentimentHandler struct{ Svc *analyzeUC.Service }

// ServeHTTP analyzes raw text sentiment.
// @Summary      Analyze text sentiment
// @Description  Splits the document into paragraphs, scores each paragraph and each of its sentences for polarity, and classifies every score against the threshold.
// @Tags         sentiment
// @Accept       json
// @Produce      json
// @Param        request body object true "Document and optional threshold in [0,1] (default 0.5)"
// @Success      200 {object} SentimentResponse "Per-paragraph classification with sentence breakdown"
// @Failure      400 {string} string "Bad request - invalid document or threshold"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /text-sentiment [post]
func (h TextSentimentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text      string   `json:"text"`
		Threshold *float64 `json:"threshold"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	threshold := DefaultThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	start := time.Now()
	result, err := h.Svc.AnalyzeSentiment(r.Context(), req.Text, threshold)
	handlerhttp.RecordAnalysis("sentiment", err == nil, time.Since(start))
	if err != nil {
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toSentimentResponse(result))
}

// URLSentimentHandler fetches a webpage and analyzes its article sentiment.
type URLSentimentHandler struct{ Svc *analyzeUC.Service }

// ServeHTTP analyzes webpage sentiment.
// @Summary      Analyze webpage sentiment
// @Description  Fetches the page, extracts its main article content, and performs paragraph-level sentiment analysis.
// @Tags         sentiment
// @Produce      json
// @Param        url query string true "Webpage URL (http or https)"
// @Param        threshold query number false "Classification threshold in [0,1] (default 0.5)"
// @Success      200 {object} SentimentResponse "Per-paragraph classification with sentence breakdown"
// @Failure      400 {string} string "Bad request - invalid URL or unfetchable page"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /sentiment [get]
func (h URLSentimentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	url, ok := requireURLParam(w, r)
	if !ok {
		return
	}
	threshold, err := floatQueryParam(r, "threshold", DefaultThreshold)
	if err != nil {
		respondError(w, err)
		return
	}

	start := time.Now()
	result, err := h.Svc.SentimentURL(r.Context(), url, threshold)
	handlerhttp.RecordAnalysis("sentiment", err == nil, time.Since(start))
	handlerhttp.RecordPageFetch(err == nil)
	if err != nil {
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toSentimentResponse(result))
}
