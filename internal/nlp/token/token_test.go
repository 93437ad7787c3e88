package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple sentence",
			input: "The cat sat.",
			want:  []string{"the", "cat", "sat"},
		},
		{
			name:  "mixed case and digits",
			input: "Go 1.23 Released!",
			want:  []string{"go", "1", "23", "released"},
		},
		{
			name:  "punctuation as separators",
			input: "state-of-the-art, really?",
			want:  []string{"state", "of", "the", "art", "really"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only punctuation",
			input: "!!! --- ???",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Words(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "period boundaries",
			input: "The cat sat. The dog barked. The end.",
			want:  []string{"The cat sat.", "The dog barked.", "The end."},
		},
		{
			name:  "mixed terminators",
			input: "Really? Yes! Good.",
			want:  []string{"Really?", "Yes!", "Good."},
		},
		{
			name:  "terminator without whitespace is not a boundary",
			input: "Version 1.2 shipped today. It works.",
			want:  []string{"Version 1.2 shipped today.", "It works."},
		},
		{
			name:  "no terminator",
			input: "a single fragment without ending",
			want:  []string{"a single fragment without ending"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
		{
			name:  "newline after terminator",
			input: "First line.\nSecond line.",
			want:  []string{"First line.", "Second line."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sentences(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSentences_RetainsPunctuation(t *testing.T) {
	got := Sentences("Wait... what? It's fine.")
	for _, s := range got {
		if s == "" {
			t.Fatal("empty sentence in output")
		}
	}
	// Original punctuation must survive the split.
	if got[len(got)-1] != "It's fine." {
		t.Errorf("last sentence = %q, want %q", got[len(got)-1], "It's fine.")
	}
}

func TestCountRunes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"こんにちは", 5},
		{"", 0},
	}
	for _, tt := range tests {
		if got := CountRunes(tt.input); got != tt.want {
			t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
