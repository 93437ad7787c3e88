// Package analysis provides HTTP handlers for the text analysis endpoints.
// Each operation comes in two forms: a POST endpoint taking the document in
// the request body and a GET endpoint taking a webpage URL to fetch first.
package analysis

import (
	"textlens/internal/domain/entity"
	analyzeUC "textlens/internal/usecase/analyze"
)

// Default parameter values applied when a request omits them.
const (
	DefaultNumSentences = 3
	DefaultThreshold    = 0.5
	DefaultTopK         = 5
)

// SummaryResponse is the JSON structure for summarization results.
type SummaryResponse struct {
	Summary string `json:"summary" example:"The main point. A supporting detail."`
}

// SentenceDTO is one sentence's sentiment classification.
type SentenceDTO struct {
	Sentence  string  `json:"sentence" example:"The interface is excellent"`
	Sentiment string  `json:"sentiment" example:"Positive"`
	Polarity  float64 `json:"polarity" example:"0.8"`
}

// ParagraphDTO is one paragraph's sentiment with its sentence breakdown.
type ParagraphDTO struct {
	Paragraph string        `json:"paragraph" example:"The interface is excellent. Setup was painless."`
	Sentiment string        `json:"sentiment" example:"Positive"`
	Polarity  float64       `json:"polarity" example:"0.7"`
	Sentences []SentenceDTO `json:"sentences"`
}

// SentimentResponse is the JSON structure for sentiment analysis results.
type SentimentResponse struct {
	Paragraphs []ParagraphDTO `json:"paragraphs"`
}

// EntityDTO is one ranked named entity.
type EntityDTO struct {
	Text  string `json:"text" example:"Apple"`
	Type  string `json:"type" example:"ORG"`
	Count int    `json:"count" example:"4"`
}

// EntitiesResponse is the JSON structure for entity ranking results.
type EntitiesResponse struct {
	Entities []EntityDTO `json:"entities"`
}

// FeedItemDTO is one summarized feed entry.
type FeedItemDTO struct {
	Title   string `json:"title" example:"Release notes"`
	Link    string `json:"link" example:"https://example.com/post/1"`
	Summary string `json:"summary" example:"The release adds two features."`
}

// FeedSummaryResponse is the JSON structure for feed summarization results.
type FeedSummaryResponse struct {
	Items []FeedItemDTO `json:"items"`
}

// toSentimentResponse maps the domain result onto the wire shape.
func toSentimentResponse(result *entity.SentimentResult) SentimentResponse {
	resp := SentimentResponse{Paragraphs: make([]ParagraphDTO, 0, len(result.Paragraphs))}
	for _, p := range result.Paragraphs {
		dto := ParagraphDTO{
			Paragraph: p.Paragraph,
			Sentiment: string(p.Sentiment),
			Polarity:  p.Polarity,
			Sentences: make([]SentenceDTO, 0, len(p.Sentences)),
		}
		for _, s := range p.Sentences {
			dto.Sentences = append(dto.Sentences, SentenceDTO{
				Sentence:  s.Sentence,
				Sentiment: string(s.Sentiment),
				Polarity:  s.Polarity,
			})
		}
		resp.Paragraphs = append(resp.Paragraphs, dto)
	}
	return resp
}

// toEntitiesResponse maps the domain result onto the wire shape.
func toEntitiesResponse(result *entity.EntityResult) EntitiesResponse {
	resp := EntitiesResponse{Entities: make([]EntityDTO, 0, len(result.Entities))}
	for _, e := range result.Entities {
		resp.Entities = append(resp.Entities, EntityDTO{Text: e.Text, Type: e.Type, Count: e.Count})
	}
	return resp
}

// toFeedResponse maps per-item summaries onto the wire shape.
func toFeedResponse(items []analyzeUC.FeedItemSummary) FeedSummaryResponse {
	resp := FeedSummaryResponse{Items: make([]FeedItemDTO, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, FeedItemDTO{
			Title:   item.Title,
			Link:    item.Link,
			Summary: item.Summary,
		})
	}
	return resp
}
