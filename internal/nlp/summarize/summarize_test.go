package summarize

import (
	"strings"
	"testing"

	"textlens/internal/nlp/stopwords"
	"textlens/internal/nlp/token"
)

func newSummarizer() *Summarizer {
	return New(stopwords.Default())
}

func TestSummarize_GoldenSelection(t *testing.T) {
	// "cat" and "sat" repeat across sentences, so the longer sentence that
	// contains both plus "mat" outscores the rest.
	doc := "The cat sat. The cat sat on the mat. Dogs bark."

	result := newSummarizer().Summarize(doc, 1)

	if result.Summary != "The cat sat on the mat." {
		t.Errorf("Summarize() = %q, want %q", result.Summary, "The cat sat on the mat.")
	}
	if len(result.Sentences) != 1 {
		t.Fatalf("expected 1 selected sentence, got %d", len(result.Sentences))
	}
	if result.Sentences[0].Score != 5 {
		t.Errorf("selected sentence score = %d, want 5", result.Sentences[0].Score)
	}
}

func TestSummarize_EmptyDocument(t *testing.T) {
	result := newSummarizer().Summarize("", 3)
	if result.Summary != "" {
		t.Errorf("empty document: summary = %q, want empty", result.Summary)
	}
	if len(result.Sentences) != 0 {
		t.Errorf("empty document: got %d sentences", len(result.Sentences))
	}
}

func TestSummarize_NonPositiveCount(t *testing.T) {
	doc := "The cat sat. The cat sat on the mat."
	for _, n := range []int{0, -1, -100} {
		result := newSummarizer().Summarize(doc, n)
		if result.Summary != "" {
			t.Errorf("n=%d: summary = %q, want empty", n, result.Summary)
		}
	}
}

func TestSummarize_OnlyStopwords(t *testing.T) {
	doc := "The and of. It is the. They were there."
	result := newSummarizer().Summarize(doc, 5)
	if result.Summary != "" {
		t.Errorf("stopword-only document: summary = %q, want empty", result.Summary)
	}
}

func TestSummarize_CountExceedsCandidates(t *testing.T) {
	doc := "The cat sat. The cat sat on the mat."

	result := newSummarizer().Summarize(doc, 5)

	if len(result.Sentences) != 2 {
		t.Fatalf("expected all 2 scoreable sentences, got %d", len(result.Sentences))
	}
	// Descending score order: the longer sentence repeats more scored tokens.
	if result.Sentences[0].Score < result.Sentences[1].Score {
		t.Errorf("sentences not in descending score order: %d before %d",
			result.Sentences[0].Score, result.Sentences[1].Score)
	}
	want := "The cat sat on the mat. The cat sat."
	if result.Summary != want {
		t.Errorf("Summarize() = %q, want %q", result.Summary, want)
	}
}

func TestSummarize_DescendingScoreOrder(t *testing.T) {
	doc := "Alpha beta gamma. Alpha alpha beta beta gamma. Alpha beta. Delta epsilon."

	result := newSummarizer().Summarize(doc, 10)

	for i := 1; i < len(result.Sentences); i++ {
		if result.Sentences[i].Score > result.Sentences[i-1].Score {
			t.Fatalf("score order violated at %d: %d > %d",
				i, result.Sentences[i].Score, result.Sentences[i-1].Score)
		}
	}
}

func TestSummarize_TieBreakIsDocumentOrder(t *testing.T) {
	// Both sentences score identically; selection must be stable by
	// first occurrence in the document.
	doc := "Red fox runs. Red fox naps. Filler filler."

	result := newSummarizer().Summarize(doc, 2)

	if len(result.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(result.Sentences))
	}
	if result.Sentences[0].Position > result.Sentences[1].Position {
		t.Errorf("tie not broken by document order: positions %d, %d",
			result.Sentences[0].Position, result.Sentences[1].Position)
	}
}

func TestSummarize_SelectionNotRewriting(t *testing.T) {
	doc := "Parsers parse tokens eagerly. Tokens feed parsers. Compilers emit code, and code runs."

	result := newSummarizer().Summarize(doc, 3)

	originals := token.Sentences(doc)
	present := make(map[string]bool, len(originals))
	for _, s := range originals {
		present[s] = true
	}
	for _, s := range result.Sentences {
		if !present[s.Text] {
			t.Errorf("output sentence %q not present verbatim in input", s.Text)
		}
	}
}

func TestSummarize_ScoresCountDuplicateTokensPerOccurrence(t *testing.T) {
	// "mill" appears 4 times in the document; the sentence repeating it
	// three times must score 3 occurrences, not 1.
	doc := "Mill mill mill grinds. Mill stops. River flows on, river bends."

	result := newSummarizer().Summarize(doc, 1)

	if len(result.Sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(result.Sentences))
	}
	got := result.Sentences[0]
	if got.Text != "Mill mill mill grinds." {
		t.Fatalf("selected %q, want the triple-mill sentence", got.Text)
	}
	// freq(mill)=4 times 3 occurrences + freq(grinds)=1.
	if got.Score != 13 {
		t.Errorf("score = %d, want 13", got.Score)
	}
}

func TestSummarize_NoDuplicatesInOutput(t *testing.T) {
	doc := "Wolves hunt deer. Deer graze fields. Fields feed wolves."

	result := newSummarizer().Summarize(doc, 10)

	seen := make(map[int]bool)
	for _, s := range result.Sentences {
		if seen[s.Position] {
			t.Errorf("sentence at position %d selected twice", s.Position)
		}
		seen[s.Position] = true
	}
	if joined := strings.Join(sentenceTexts(result.Sentences), " "); joined != result.Summary {
		t.Errorf("summary %q does not match joined sentences %q", result.Summary, joined)
	}
}

func sentenceTexts(ss []ScoredSentence) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Text
	}
	return out
}
