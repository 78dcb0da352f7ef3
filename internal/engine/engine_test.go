package engine

import (
	"testing"

	"github.com/hsaleh/durus/internal/lesson"
)

func advanceTo(e *Engine, stage Stage) {
	for i := 0; i < 64 && e.State().Stage != stage; i++ {
		e.Advance()
	}
}

func TestEngine_SubmitMCQ(t *testing.T) {
	e := New(testLesson(t))
	advanceTo(e, StagePrereq)
	e.Advance() // past the text prereq, onto the mcq

	q := e.CurrentQuestion()
	if q == nil || q.Type != lesson.QuestionMCQ {
		t.Fatalf("current question = %+v, want prereq mcq", q)
	}

	e.Response(q).SelectedIndex = 1
	res := e.Submit()
	if res.Correct {
		t.Fatal("wrong choice should fail")
	}
	if res.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", res.Attempts)
	}
	if res.Hint != "" {
		t.Error("prereq checks do not escalate hints")
	}

	e.Response(q).SelectedIndex = 0
	res = e.Submit()
	if !res.Correct {
		t.Fatal("correct choice should pass")
	}
	if !e.Answered(q) {
		t.Error("correct submit should be recorded")
	}
}

func TestEngine_HintEscalation(t *testing.T) {
	l := testLesson(t)
	// Give the concept question authored hints and a solution.
	q := l.Concepts[0].Flow[1].Question
	q.Hints = []string{"تلميح ١", "تلميح ٢"}
	q.Solution = "الحل الكامل"

	e := New(l)
	e.Restore(State{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1})

	e.Response(q).Value = "خطأ"

	res := e.Submit()
	if res.Correct || res.Hint != "تلميح ١" || res.RevealSolution {
		t.Fatalf("attempt 1 = %+v, want first hint only", res)
	}
	res = e.Submit()
	if res.Hint != "تلميح ٢" || res.RevealSolution {
		t.Fatalf("attempt 2 = %+v, want second hint only", res)
	}
	res = e.Submit()
	if !res.RevealSolution {
		t.Fatalf("attempt 3 = %+v, want solution reveal", res)
	}
	if !e.SolutionRevealed(q) {
		t.Error("reveal should stick")
	}

	// No cap: a later correct answer still passes.
	e.Response(q).Value = "ج١"
	if res = e.Submit(); !res.Correct {
		t.Error("correct answer after many attempts should pass")
	}
}

func TestEngine_GenericHintFallback(t *testing.T) {
	l := testLesson(t)
	q := l.Concepts[0].Flow[1].Question // no authored hints

	e := New(l)
	e.Restore(State{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1})
	e.Response(q).Value = "خطأ"

	res := e.Submit()
	if res.Hint == "" {
		t.Error("attempt 1 should fall back to a generic hint")
	}
}

func TestEngine_OptionalSkip(t *testing.T) {
	l := testLesson(t)
	no := false
	l.Prerequisites[1].IsRequired = &no
	lesson.Normalize(l) // re-derive the prereq question with the flag

	e := New(l)
	e.Restore(State{Stage: StagePrereq, PrereqIndex: 1})

	res := e.Submit()
	if !res.Skipped {
		t.Fatalf("result = %+v, want skip for optional unanswered", res)
	}
}

func TestEngine_RequiredEmptySubmitBlocks(t *testing.T) {
	l := testLesson(t)
	e := New(l)
	e.Restore(State{Stage: StageAssessment})

	q := e.CurrentQuestion()
	if q == nil || !q.Required() {
		t.Fatalf("current question = %+v, want required assessment mcq", q)
	}

	// Enter with nothing selected: no grading, no burned attempt.
	res := e.Submit()
	if !res.NeedsResponse {
		t.Fatalf("result = %+v, want NeedsResponse", res)
	}
	if res.Correct || res.Skipped || res.Attempts != 0 {
		t.Errorf("empty submit must not grade: %+v", res)
	}
	if got := e.State().Assessment; got.CurrentIndex != 0 || got.Attempts != 0 {
		t.Errorf("assessment state = %+v, want untouched", got)
	}

	// The real answer still grades normally afterwards.
	e.Response(q).SelectedIndex = 1
	if res = e.Submit(); !res.Correct {
		t.Errorf("result = %+v, want correct after answering", res)
	}
}

func TestEngine_RequiredEmptySubmitBurnsNoHint(t *testing.T) {
	l := testLesson(t)
	q := l.Concepts[0].Flow[1].Question
	q.Hints = []string{"تلميح ١"}

	e := New(l)
	e.Restore(State{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1})

	res := e.Submit()
	if !res.NeedsResponse || res.Hint != "" || res.Attempts != 0 {
		t.Fatalf("result = %+v, want a blocked submit with no escalation", res)
	}

	// The first wrong answer still gets the first hint.
	e.Response(q).Value = "خطأ"
	if res = e.Submit(); res.Hint != "تلميح ١" || res.Attempts != 1 {
		t.Errorf("result = %+v, want first hint on first real attempt", res)
	}
}

func TestEngine_AssessmentAttemptsAggregate(t *testing.T) {
	e := New(testLesson(t))
	e.Restore(State{Stage: StageAssessment})

	q := e.CurrentQuestion()
	e.Response(q).SelectedIndex = 0 // wrong
	e.Submit()
	e.Response(q).SelectedIndex = 1 // right
	e.Submit()
	e.Advance()

	e.Response(e.CurrentQuestion()).Value = "٩" // wrong
	e.Submit()

	if got := e.State().Assessment.Attempts; got != 2 {
		t.Errorf("aggregate attempts = %d, want 2 wrong answers counted", got)
	}
}

func TestEngine_ResponseStability(t *testing.T) {
	e := New(testLesson(t))
	e.Restore(State{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1})

	q := e.CurrentQuestion()
	e.Response(q).Value = "نص جزئي"

	// Re-render elsewhere and come back: the response object survives.
	e.Back()
	e.Advance()
	e.Advance()
	e.Restore(State{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1})

	if got := e.Response(e.CurrentQuestion()).Value; got != "نص جزئي" {
		t.Errorf("value = %q, want preserved keystrokes", got)
	}
}

func TestEngine_ResumeIdempotence(t *testing.T) {
	l := testLesson(t)

	e1 := New(l)
	advanceTo(e1, StageConcept)
	e1.Advance()
	saved := e1.State()

	e2 := New(l)
	e2.Restore(saved)

	if e2.State() != saved {
		t.Fatalf("restored = %+v, want %+v", e2.State(), saved)
	}
	if len(e1.VisibleItems()) != len(e2.VisibleItems()) {
		t.Error("restored engine should render the same visible items")
	}
}

func TestEngine_VisibleItemsCumulative(t *testing.T) {
	e := New(testLesson(t))
	e.Restore(State{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1})

	items := e.VisibleItems()
	if len(items) != 2 {
		t.Fatalf("visible = %d, want items 0..1", len(items))
	}
	if items[0].Type != lesson.ItemExplain || !items[1].Type.IsQuestion() {
		t.Error("visible items out of order")
	}
}

func TestEngine_FinalScoreFrozenAtAssessmentExit(t *testing.T) {
	l := testLesson(t)
	e := New(l)
	e.Restore(State{Stage: StageAssessment})

	// Answer first correct, second wrong.
	q0 := e.CurrentQuestion()
	e.Response(q0).SelectedIndex = 1
	if !e.Submit().Correct {
		t.Fatal("q0 should pass")
	}
	e.Advance()

	q1 := e.CurrentQuestion()
	e.Response(q1).Value = "٩"
	e.Submit()
	e.Advance() // leaves the assessment, freezing the score

	if !e.Done() {
		t.Fatal("engine should be done")
	}
	s := e.FinalScore()
	if s.Score != 1 || s.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", s.Score, s.Total)
	}
	if s.Percent() != 50 {
		t.Errorf("percent = %d, want 50", s.Percent())
	}
}
