// Package answer checks learner responses against canonical questions.
package answer

import (
	"strings"

	"github.com/hsaleh/durus/internal/lesson"
)

// Response holds the learner's in-progress answer for one question.
// Responses live in the engine's runtime side table, keyed by question
// ID, never on the lesson document itself, so the document stays
// shareable across attempts.
type Response struct {
	// Value is the typed text for input questions.
	Value string

	// SelectedIndex is the chosen mcq option, -1 when none.
	SelectedIndex int

	// Order is the learner's arrangement for ordering questions.
	// Entries are "" until placed.
	Order []string

	// Matches is the chosen right-hand side per pair for match
	// questions. Entries are "" until set.
	Matches []string

	// Blanks is the typed text per [[blank]] token.
	Blanks []string
}

// NewResponse builds an empty response sized for q.
func NewResponse(q *lesson.Question) *Response {
	r := &Response{SelectedIndex: -1}
	switch q.Type {
	case lesson.QuestionOrdering:
		r.Order = make([]string, len(q.Items))
	case lesson.QuestionMatch:
		r.Matches = make([]string, len(q.Pairs))
	case lesson.QuestionFillBlank:
		r.Blanks = make([]string, len(q.Blanks))
	}
	return r
}

// HasResponse reports whether the learner supplied any answer at all.
// Optional questions with no response may be skipped without penalty.
func HasResponse(q *lesson.Question, r *Response) bool {
	if r == nil {
		return false
	}
	switch q.Type {
	case lesson.QuestionMCQ:
		return r.SelectedIndex >= 0
	case lesson.QuestionInput:
		return strings.TrimSpace(r.Value) != ""
	case lesson.QuestionOrdering:
		for _, o := range r.Order {
			if o != "" {
				return true
			}
		}
		return false
	case lesson.QuestionMatch:
		for _, m := range r.Matches {
			if m != "" {
				return true
			}
		}
		return false
	case lesson.QuestionFillBlank:
		for _, b := range r.Blanks {
			if strings.TrimSpace(b) != "" {
				return true
			}
		}
		return false
	}
	return false
}
