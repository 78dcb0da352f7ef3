package answer

import (
	"strings"

	"github.com/hsaleh/durus/internal/arabic"
	"github.com/hsaleh/durus/internal/judge"
	"github.com/hsaleh/durus/internal/lesson"
)

// fuzzyThreshold is the similarity floor for fuzzy-autocorrect text
// acceptance.
const fuzzyThreshold = 0.85

// Outcome is the result of checking one response.
type Outcome struct {
	Correct bool

	// Corrected carries the model answer when a text response was
	// accepted with a non-exact match.
	Corrected string
}

// Check reports whether r answers q correctly.
func Check(q *lesson.Question, r *Response) bool {
	return CheckDetailed(q, r).Correct
}

// CheckDetailed checks r against q and reports any autocorrection.
// It is safe to call repeatedly; it only reads the response.
func CheckDetailed(q *lesson.Question, r *Response) Outcome {
	if r == nil {
		return Outcome{}
	}
	switch q.Type {
	case lesson.QuestionMCQ:
		return Outcome{Correct: r.SelectedIndex >= 0 && r.SelectedIndex == q.CorrectIndex}
	case lesson.QuestionInput:
		return checkInput(q, r.Value)
	case lesson.QuestionOrdering:
		return Outcome{Correct: checkOrdering(q, r)}
	case lesson.QuestionMatch:
		return Outcome{Correct: checkMatch(q, r)}
	case lesson.QuestionFillBlank:
		return checkFillBlank(q, r)
	}
	return Outcome{}
}

// checkInput validates a free-text answer. Numeric answers take the
// numeric path; answers with judge tuning go through the judge; the
// rest compare as normalized strings, with an extra tolerant pass when
// fuzzy autocorrect is enabled.
func checkInput(q *lesson.Question, value string) Outcome {
	if numericOnly(q) || isNumeric(q.Answer) {
		return Outcome{Correct: numericEqual(value, q.Answer)}
	}

	if spec := judgeSpecFor(q); spec != nil {
		v := judge.Evaluate(value, *spec)
		return Outcome{Correct: v.OK, Corrected: v.Corrected}
	}

	// Plain comparison keeps the definite article significant.
	keep := arabic.Options{KeepAl: true}
	student := arabic.Normalize(value, keep)
	model := arabic.Normalize(q.Answer, keep)
	if student == model {
		return Outcome{Correct: true}
	}

	if q.Validate != nil && q.Validate.FuzzyAutocorrect {
		// Tolerant pass: full normalization (article stripped) plus a
		// similarity floor.
		s := arabic.Normalize(value, arabic.Options{})
		m := arabic.Normalize(q.Answer, arabic.Options{})
		if s == m || arabic.Similarity(s, m) >= fuzzyThreshold {
			return Outcome{Correct: true, Corrected: q.Answer}
		}
	}
	return Outcome{}
}

// checkOrdering requires the learner's arrangement to match the
// authored order exactly; unplaced entries are incorrect.
func checkOrdering(q *lesson.Question, r *Response) bool {
	if len(r.Order) != len(q.Items) {
		return false
	}
	for i, want := range q.Items {
		got := strings.TrimSpace(r.Order[i])
		if got == "" || got != strings.TrimSpace(want) {
			return false
		}
	}
	return true
}

// checkMatch requires every pair's expected right side; unset pairs
// are incorrect. Comparison is trimmed and case-sensitive.
func checkMatch(q *lesson.Question, r *Response) bool {
	if len(r.Matches) != len(q.Pairs) {
		return false
	}
	for i, pair := range q.Pairs {
		got := strings.TrimSpace(r.Matches[i])
		if got == "" || got != strings.TrimSpace(pair.Right) {
			return false
		}
	}
	return true
}

// checkFillBlank validates each blank independently: numeric blanks
// compare numerically, text blanks go through the judge with fuzzy
// acceptance on by default.
func checkFillBlank(q *lesson.Question, r *Response) Outcome {
	if len(r.Blanks) != len(q.Blanks) {
		return Outcome{}
	}
	var corrected []string
	for i, want := range q.Blanks {
		got := r.Blanks[i]
		if isNumeric(want) {
			if !numericEqual(got, want) {
				return Outcome{}
			}
			continue
		}
		v := judge.Evaluate(got, judge.Spec{
			ModelAnswer:     want,
			AcceptedPhrases: q.AcceptedPhrases,
			ForbiddenWords:  q.ForbiddenWords,
			MaxEditDistance: q.MaxEditDistance,
		})
		if !v.OK {
			return Outcome{}
		}
		if v.Corrected != "" {
			corrected = append(corrected, v.Corrected)
		}
	}
	return Outcome{Correct: true, Corrected: strings.Join(corrected, "، ")}
}

// numericOnly reports whether the question forces numeric checking.
func numericOnly(q *lesson.Question) bool {
	return q.Validate != nil && q.Validate.NumericOnly
}

// judgeSpecFor returns a judge spec when the question carries judge
// tuning, nil otherwise.
func judgeSpecFor(q *lesson.Question) *judge.Spec {
	if len(q.AcceptedPhrases) == 0 && len(q.AcceptedCore) == 0 &&
		len(q.ForbiddenWords) == 0 && q.MaxEditDistance == 0 {
		return nil
	}
	return &judge.Spec{
		ModelAnswer:     q.Answer,
		AcceptedPhrases: q.AcceptedPhrases,
		AcceptedCore:    q.AcceptedCore,
		ForbiddenWords:  q.ForbiddenWords,
		MaxEditDistance: q.MaxEditDistance,
	}
}
