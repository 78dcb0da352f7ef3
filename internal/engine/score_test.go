package engine

import (
	"testing"

	"github.com/hsaleh/durus/internal/answer"
	"github.com/hsaleh/durus/internal/lesson"
)

func TestScoreAssessment_TwoRequiredMCQ(t *testing.T) {
	a := &lesson.Assessment{Questions: []lesson.Question{
		{ID: "a0", Type: lesson.QuestionMCQ, Choices: []string{"١", "٢"}, CorrectIndex: 0, Points: 1},
		{ID: "a1", Type: lesson.QuestionMCQ, Choices: []string{"١", "٢"}, CorrectIndex: 1, Points: 1},
	}}
	responses := map[string]*answer.Response{
		"a0": {SelectedIndex: 0}, // correct
		"a1": {SelectedIndex: 0}, // wrong
	}

	s := ScoreAssessment(a, responses)
	if s.Score != 1 || s.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", s.Score, s.Total)
	}
}

func TestScoreAssessment_PointsWeighting(t *testing.T) {
	a := &lesson.Assessment{Questions: []lesson.Question{
		{ID: "a0", Type: lesson.QuestionInput, Answer: "5", Points: 3},
		{ID: "a1", Type: lesson.QuestionInput, Answer: "7", Points: 1},
	}}
	responses := map[string]*answer.Response{
		"a0": {Value: "٥"},
		"a1": {Value: "0"},
	}

	s := ScoreAssessment(a, responses)
	if s.Score != 3 || s.Total != 4 {
		t.Errorf("score = %d/%d, want 3/4", s.Score, s.Total)
	}
}

func TestScoreAssessment_OptionalSkippedExcluded(t *testing.T) {
	no := false
	a := &lesson.Assessment{Questions: []lesson.Question{
		{ID: "a0", Type: lesson.QuestionInput, Answer: "5", Points: 1},
		{ID: "a1", Type: lesson.QuestionInput, Answer: "7", Points: 1, IsRequired: &no},
	}}

	// Skipped optional: out of the total entirely.
	s := ScoreAssessment(a, map[string]*answer.Response{"a0": {Value: "5"}})
	if s.Score != 1 || s.Total != 1 {
		t.Errorf("score = %d/%d, want 1/1 with optional skipped", s.Score, s.Total)
	}

	// Answered optional: counts both ways.
	s = ScoreAssessment(a, map[string]*answer.Response{
		"a0": {Value: "5"},
		"a1": {Value: "8"},
	})
	if s.Score != 1 || s.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2 with optional answered wrong", s.Score, s.Total)
	}
}

func TestScoreAssessment_RequiredUnansweredCountsInTotal(t *testing.T) {
	a := &lesson.Assessment{Questions: []lesson.Question{
		{ID: "a0", Type: lesson.QuestionInput, Answer: "5", Points: 1},
	}}
	s := ScoreAssessment(a, map[string]*answer.Response{})
	if s.Score != 0 || s.Total != 1 {
		t.Errorf("score = %d/%d, want 0/1", s.Score, s.Total)
	}
}

func TestScorePercent(t *testing.T) {
	if got := (Score{Score: 1, Total: 2}).Percent(); got != 50 {
		t.Errorf("percent = %d, want 50", got)
	}
	if got := (Score{}).Percent(); got != 100 {
		t.Errorf("empty total percent = %d, want 100", got)
	}
}

func TestScoreAssessment_Nil(t *testing.T) {
	s := ScoreAssessment(nil, nil)
	if s.Score != 0 || s.Total != 0 {
		t.Errorf("nil assessment = %+v, want zero", s)
	}
}
