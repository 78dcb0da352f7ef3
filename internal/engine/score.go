package engine

import (
	"github.com/hsaleh/durus/internal/answer"
	"github.com/hsaleh/durus/internal/lesson"
)

// Score is the assessment outcome.
type Score struct {
	Score int
	Total int
}

// Percent returns the score as a 0-100 percentage; an empty total
// grades as 100.
func (s Score) Percent() int {
	if s.Total == 0 {
		return 100
	}
	return s.Score * 100 / s.Total
}

// ScoreAssessment grades the assessment from the recorded responses:
// each question's points count toward the total when the question is
// required or was answered; optional questions the learner skipped are
// left out of the total entirely, so skipping never lowers the
// percentage.
func ScoreAssessment(a *lesson.Assessment, responses map[string]*answer.Response) Score {
	var s Score
	if a == nil {
		return s
	}
	for i := range a.Questions {
		q := &a.Questions[i]
		r := responses[q.ID]
		answered := answer.HasResponse(q, r)
		if !q.Required() && !answered {
			continue
		}
		s.Total += q.Points
		if answered && answer.Check(q, r) {
			s.Score += q.Points
		}
	}
	return s
}
