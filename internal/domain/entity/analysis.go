// Package entity defines the core domain types and validation logic for the
// application. It contains the analysis result objects returned by the text
// analysis operations, along with their validation rules and domain errors.
package entity

// SummaryResult holds an extractive summary of a document.
type SummaryResult struct {
	// Summary is the selected sentences in descending score order,
	// space-joined into one string. Empty when nothing was scoreable.
	Summary string
}

// Sentiment is a coarse sentiment class derived from a polarity score
// and a caller-supplied threshold.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// ClassifySentiment maps a polarity score in [-1, 1] onto a Sentiment class.
// Polarity above threshold is positive, below the negated threshold is
// negative, anything in between is neutral.
func ClassifySentiment(polarity, threshold float64) Sentiment {
	switch {
	case polarity > threshold:
		return SentimentPositive
	case polarity < -threshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// SentenceSentiment is the classified sentiment of a single sentence.
type SentenceSentiment struct {
	Sentence  string
	Sentiment Sentiment
	Polarity  float64
}

// ParagraphSentiment is the classified sentiment of one paragraph together
// with the per-sentence breakdown inside it.
type ParagraphSentiment struct {
	Paragraph string
	Sentiment Sentiment
	Polarity  float64
	Sentences []SentenceSentiment
}

// SentimentResult is the aspect-level sentiment analysis of a document:
// one entry per paragraph, in document order.
type SentimentResult struct {
	Paragraphs []ParagraphSentiment
}

// EntityMention is a single named-entity occurrence reported by a
// recognition provider.
type EntityMention struct {
	Text string
	Type string
}

// RankedEntity is a distinct (text, type) entity with its occurrence count.
type RankedEntity struct {
	Text  string
	Type  string
	Count int
}

// EntityResult holds the top-K entities of a document by occurrence count,
// in descending count order.
type EntityResult struct {
	Entities []RankedEntity
}
