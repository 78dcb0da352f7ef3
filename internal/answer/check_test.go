package answer

import (
	"testing"

	"github.com/hsaleh/durus/internal/lesson"
)

func mcq(choices []string, correct int) *lesson.Question {
	return &lesson.Question{Type: lesson.QuestionMCQ, Choices: choices, CorrectIndex: correct}
}

func TestCheck_MCQ(t *testing.T) {
	q := mcq([]string{"2", "3", "4"}, 1)

	r := NewResponse(q)
	if Check(q, r) {
		t.Error("no selection should be incorrect")
	}

	r.SelectedIndex = 1
	if !Check(q, r) {
		t.Error("correct index should pass")
	}

	r.SelectedIndex = 0
	if Check(q, r) {
		t.Error("wrong index should fail")
	}
}

func TestCheck_InputNumeric(t *testing.T) {
	q := &lesson.Question{Type: lesson.QuestionInput, Answer: "25"}

	tests := []struct {
		value string
		want  bool
	}{
		{"25", true},
		{"٢٥", true}, // Arabic-indic digits fold
		{"25.0", true},
		{"24", false},
		{"", false},
	}
	for _, tt := range tests {
		r := &Response{Value: tt.value}
		if got := Check(q, r); got != tt.want {
			t.Errorf("Check(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestCheck_InputFraction(t *testing.T) {
	q := &lesson.Question{Type: lesson.QuestionInput, Answer: "1/2"}

	for _, v := range []string{"1/2", "2/4", "0.5", "٢/٤"} {
		if !Check(q, &Response{Value: v}) {
			t.Errorf("%q should equal 1/2", v)
		}
	}
	if Check(q, &Response{Value: "1/3"}) {
		t.Error("1/3 should not equal 1/2")
	}
}

func TestCheck_InputNumericOnlyFlag(t *testing.T) {
	q := &lesson.Question{
		Type:     lesson.QuestionInput,
		Answer:   "٧",
		Validate: &lesson.Validation{NumericOnly: true},
	}
	if !Check(q, &Response{Value: "7"}) {
		t.Error("numericOnly should fold digits both ways")
	}
}

func TestCheck_InputPlainText(t *testing.T) {
	q := &lesson.Question{Type: lesson.QuestionInput, Answer: "الرياض"}

	if !Check(q, &Response{Value: "الرياض"}) {
		t.Error("exact should pass")
	}
	if !Check(q, &Response{Value: "الريَاض"}) {
		t.Error("diacritic variant should pass")
	}
	// Without fuzzy, dropping the article fails the plain path.
	if Check(q, &Response{Value: "رياض"}) {
		t.Error("article drop should fail without fuzzy")
	}
}

func TestCheck_InputFuzzyAutocorrect(t *testing.T) {
	q := &lesson.Question{
		Type:     lesson.QuestionInput,
		Answer:   "الرياض",
		Validate: &lesson.Validation{FuzzyAutocorrect: true},
	}

	out := CheckDetailed(q, &Response{Value: "رياض"})
	if !out.Correct {
		t.Fatal("article drop should pass with fuzzy")
	}
	if out.Corrected != "الرياض" {
		t.Errorf("corrected = %q, want model answer", out.Corrected)
	}

	if Check(q, &Response{Value: "جدة"}) {
		t.Error("different city should still fail")
	}
}

func TestCheck_InputJudgeDelegation(t *testing.T) {
	q := &lesson.Question{
		Type:            lesson.QuestionInput,
		Answer:          "المدينة المنورة",
		AcceptedPhrases: []string{"طيبة"},
		ForbiddenWords:  []string{"مكة"},
	}

	if !Check(q, &Response{Value: "طيبة"}) {
		t.Error("accepted phrase should pass via judge")
	}
	if Check(q, &Response{Value: "مكة المدينة المنورة"}) {
		t.Error("forbidden word should reject via judge")
	}
}

func TestCheck_Ordering(t *testing.T) {
	q := &lesson.Question{
		Type:  lesson.QuestionOrdering,
		Items: []string{"أولا", "ثانيا", "ثالثا"},
	}

	r := NewResponse(q)
	if Check(q, r) {
		t.Error("unplaced ordering should fail")
	}

	r.Order = []string{"أولا", "ثانيا", "ثالثا"}
	if !Check(q, r) {
		t.Error("correct order should pass")
	}

	r.Order = []string{"ثانيا", "أولا", "ثالثا"}
	if Check(q, r) {
		t.Error("swapped order should fail")
	}

	r.Order = []string{"أولا", "", "ثالثا"}
	if Check(q, r) {
		t.Error("missing entry should fail")
	}
}

func TestCheck_Match(t *testing.T) {
	q := &lesson.Question{
		Type: lesson.QuestionMatch,
		Pairs: []lesson.Pair{
			{Left: "السعودية", Right: "الرياض"},
			{Left: "مصر", Right: "القاهرة"},
		},
	}

	r := NewResponse(q)
	r.Matches = []string{"الرياض", "القاهرة"}
	if !Check(q, r) {
		t.Error("all pairs matched should pass")
	}

	r.Matches = []string{"القاهرة", "الرياض"}
	if Check(q, r) {
		t.Error("crossed pairs should fail")
	}

	r.Matches = []string{"الرياض", ""}
	if Check(q, r) {
		t.Error("unset pair should fail")
	}
}

func TestCheck_FillBlank(t *testing.T) {
	q := &lesson.Question{
		Type:   lesson.QuestionFillBlank,
		Text:   "العاصمة هي [[blank]] وعدد الحروف [[blank]]",
		Blanks: []string{"الرياض", "٦"},
	}

	r := NewResponse(q)
	r.Blanks = []string{"الرياض", "6"}
	if !Check(q, r) {
		t.Error("exact text + folded numeric should pass")
	}

	// Fuzzy by default: missing article accepted via the judge.
	out := CheckDetailed(q, &Response{Blanks: []string{"رياض", "6"}})
	if !out.Correct {
		t.Error("article drop should be judge-accepted in fillblank")
	}

	if Check(q, &Response{Blanks: []string{"جدة", "6"}}) {
		t.Error("wrong blank should fail")
	}
	if Check(q, &Response{Blanks: []string{"الرياض", "7"}}) {
		t.Error("wrong numeric blank should fail")
	}
}

func TestHasResponse(t *testing.T) {
	input := &lesson.Question{Type: lesson.QuestionInput, Answer: "x"}
	if HasResponse(input, &Response{Value: "  "}) {
		t.Error("whitespace is not a response")
	}
	if !HasResponse(input, &Response{Value: "شيء"}) {
		t.Error("typed text is a response")
	}

	choice := mcq([]string{"أ", "ب"}, 0)
	if HasResponse(choice, NewResponse(choice)) {
		t.Error("no selection is not a response")
	}
	if !HasResponse(choice, &Response{SelectedIndex: 0}) {
		t.Error("selection is a response")
	}

	if HasResponse(input, nil) {
		t.Error("nil response is not a response")
	}
}
