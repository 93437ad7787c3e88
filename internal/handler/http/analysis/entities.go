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

// TextEntitiesHandler ranks named entities of a document supplied in the request body.
type TextEntitiesHandler struct{ Svc *analyzeUC.Service }

// ServeHTTP ranks entities in raw text.
// @Summary      Rank text entities
// @Description  Extracts named-entity mentions from the document, counts occurrences per distinct (text, type) pair, and returns the most frequent entities.
// @Tags         entities
// @Accept       json
// @Produce      json
// @Param        request body object true "Document and optional top_k (default 5)"
// @Success      200 {object} EntitiesResponse "Ranked entities"
// @Failure      400 {string} string "Bad request - invalid document or top_k"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /text-entities [post]
func (h TextEntitiesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
		TopK *int   `json:"top_k"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}
	if req.Text == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("text is required"))
		return
	}

	topK := DefaultTopK
	if req.TopK != nil {
		topK = *req.TopK
	}

	start := time.Now()
	result, err := h.Svc.ExtractEntities(r.Context(), req.Text, topK)
	handlerhttp.RecordAnalysis("entities", err == nil, time.Since(start))
	if err != nil {
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toEntitiesResponse(result))
}

// URLEntitiesHandler fetches a webpage and ranks its article's named entities.
type URLEntitiesHandler struct{ Svc *analyzeUC.Service }

// ServeHTTP ranks entities in a webpage.
// @Summary      Rank webpage entities
// @Description  Fetches the page, extracts its main article content, and returns the most frequent named entities.
// @Tags         entities
// @Produce      json
// @Param        url query string true "Webpage URL (http or https)"
// @Param        top_k query int false "Number of entities to return (default 5)"
// @Success      200 {object} EntitiesResponse "Ranked entities"
// @Failure      400 {string} string "Bad request - invalid URL or unfetchable page"
// @Failure      429 {string} string "Too many requests - rate limit exceeded"
// @Failure      500 {string} string "Internal server error"
// @Router       /entities [get]
func (h URLEntitiesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	url, ok := requireURLParam(w, r)
	if !ok {
		return
	}
	topK, err := intQueryParam(r, "top_k", DefaultTopK)
	if err != nil {
		respondError(w, err)
		return
	}

	start := time.Now()
	result, err := h.Svc.EntitiesURL(r.Context(), url, topK)
	handlerhttp.RecordAnalysis("entities", err == nil, time.Since(start))
	handlerhttp.RecordPageFetch(err == nil)
	if err != nil {
		respondError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toEntitiesResponse(result))
}
