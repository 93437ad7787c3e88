package analysis

import (
	"net/http"

	analyzeUC "textlens/internal/usecase/analyze"
)

// Register registers all analysis HTTP handlers with the given mux.
// Every operation has a POST form taking the document in the body and a GET
// form taking a webpage URL; the feed and readme endpoints are GET only.
func Register(mux *http.ServeMux, svc *analyzeUC.Service, readmePath string) {
	mux.Handle("POST /text-summary", TextSummaryHandler{Svc: svc})
	mux.Handle("GET  /summary", URLSummaryHandler{Svc: svc})

	mux.Handle("POST /text-sentiment", TextSentimentHandler{Svc: svc})
	mux.Handle("GET  /sentiment", URLSentimentHandler{Svc: svc})

	mux.Handle("POST /text-entities", TextEntitiesHandler{Svc: svc})
	mux.Handle("GET  /entities", URLEntitiesHandler{Svc: svc})

	mux.Handle("GET  /feed-summary", FeedSummaryHandler{Svc: svc})
	mux.Handle("GET  /nlp-readme", ReadmeHandler{Path: readmePath})
}
