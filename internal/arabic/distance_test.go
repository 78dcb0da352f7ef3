package arabic

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"same", "same", 0},
		{"مدرسه", "مدرسة", 1}, // single substitution over runes
	}
	for _, tt := range tests {
		if got := Levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	if Levenshtein("قلم", "اقلام") != Levenshtein("اقلام", "قلم") {
		t.Error("distance should be symmetric")
	}
}

func TestSimilarity(t *testing.T) {
	if got := Similarity("", ""); got != 1 {
		t.Errorf("Similarity of empties = %f, want 1", got)
	}
	if got := Similarity("abcd", "abcd"); got != 1 {
		t.Errorf("identical = %f, want 1", got)
	}
	// One edit over four runes = 0.75.
	if got := Similarity("abcd", "abce"); got != 0.75 {
		t.Errorf("Similarity = %f, want 0.75", got)
	}
}
