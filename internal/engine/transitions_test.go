package engine

import (
	"testing"

	"github.com/hsaleh/durus/internal/lesson"
)

// testLesson builds a normalized two-concept card with prerequisites
// and an assessment.
func testLesson(t *testing.T) *lesson.Lesson {
	t.Helper()
	l := &lesson.Lesson{
		Title: "درس تجريبي",
		Prerequisites: []lesson.PrereqItem{
			{Kind: lesson.PrereqText, Text: "تمهيد"},
			{Kind: lesson.PrereqMCQ, Text: "اختر", Choices: []string{"أ", "ب"}, CorrectIndex: 0},
		},
		Concepts: []lesson.Concept{
			{Title: "الأول", Flow: []lesson.FlowItem{
				{Type: lesson.ItemExplain, Text: "شرح"},
				{Type: lesson.ItemInput, Text: "س١", Answer: "ج١"},
			}},
			{Title: "الثاني", Flow: []lesson.FlowItem{
				{Type: lesson.ItemExplain, Text: "شرح آخر"},
			}},
		},
		Assessment: &lesson.Assessment{Questions: []lesson.Question{
			{Type: lesson.QuestionMCQ, Text: "ت١", Choices: []string{"١", "٢"}, CorrectIndex: 1},
			{Type: lesson.QuestionInput, Text: "ت٢", Answer: "٥"},
		}},
	}
	lesson.Normalize(l)
	return l
}

func TestAdvance_FullWalk(t *testing.T) {
	l := testLesson(t)
	st := Initial()

	want := []State{
		{Stage: StagePrereq, PrereqIndex: 0},
		{Stage: StagePrereq, PrereqIndex: 1},
		{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 0, PrereqIndex: 1},
		{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1, PrereqIndex: 1},
		{Stage: StageConcept, ConceptIndex: 1, ItemIndex: 0, PrereqIndex: 1},
		{Stage: StageAssessment, ConceptIndex: 1, ItemIndex: 0, PrereqIndex: 1},
	}
	for i, w := range want {
		st = Advance(st, l)
		if st.Stage != w.Stage || st.ConceptIndex != w.ConceptIndex ||
			st.ItemIndex != w.ItemIndex || st.PrereqIndex != w.PrereqIndex {
			t.Fatalf("step %d: state = %+v, want %+v", i, st, w)
		}
	}

	st = Advance(st, l) // second assessment question
	if st.Assessment.CurrentIndex != 1 {
		t.Fatalf("assessment index = %d, want 1", st.Assessment.CurrentIndex)
	}
	st = Advance(st, l) // terminal
	if st.Stage != StageDone || !st.Assessment.Completed {
		t.Fatalf("state = %+v, want done/completed", st)
	}
	if got := Advance(st, l); got.Stage != StageDone {
		t.Error("done is terminal")
	}
}

func TestAdvance_Monotonic(t *testing.T) {
	l := testLesson(t)
	st := Initial()
	for i := 0; i < 32 && st.Stage != StageDone; i++ {
		next := Advance(st, l)
		if !Less(st, next) {
			t.Fatalf("advance from %+v to %+v is not strictly forward", st, next)
		}
		st = next
	}
	if st.Stage != StageDone {
		t.Fatal("walk never terminated")
	}
}

func TestAdvance_NoAssessment(t *testing.T) {
	l := testLesson(t)
	l.Assessment = nil

	st := State{Stage: StageConcept, ConceptIndex: 1, ItemIndex: 0}
	st = Advance(st, l)
	if st.Stage != StageDone {
		t.Fatalf("stage = %v, want done when no assessment", st.Stage)
	}
}

func TestAdvance_EmptyPrerequisites(t *testing.T) {
	l := testLesson(t)
	l.Prerequisites = nil

	st := Advance(Initial(), l) // goals -> prereq (empty)
	if st.Stage != StagePrereq {
		t.Fatalf("stage = %v, want prereq", st.Stage)
	}
	st = Advance(st, l) // single continue -> concept
	if st.Stage != StageConcept || st.ConceptIndex != 0 || st.ItemIndex != 0 {
		t.Fatalf("state = %+v, want concept(0,0)", st)
	}
}

func TestAdvance_NoConcepts(t *testing.T) {
	l := testLesson(t)
	l.Concepts = nil

	st := State{Stage: StagePrereq, PrereqIndex: 1}
	st = Advance(st, l)
	if st.Stage != StageAssessment {
		t.Fatalf("stage = %v, want assessment when concepts are empty", st.Stage)
	}
}

func TestBack(t *testing.T) {
	l := testLesson(t)

	st := Back(State{Stage: StageAssessment}, l)
	if st.Stage != StageConcept || st.ConceptIndex != 1 || st.ItemIndex != 0 {
		t.Fatalf("back from assessment = %+v, want last item of last concept", st)
	}

	st = Back(State{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1}, l)
	if st.Stage != StagePrereq || st.PrereqIndex != 1 {
		t.Fatalf("back from concept = %+v, want last prereq", st)
	}

	st = Back(State{Stage: StagePrereq, PrereqIndex: 1}, l)
	if st.Stage != StageGoals {
		t.Fatalf("back from prereq = %+v, want goals", st)
	}

	st = Back(State{Stage: StageGoals}, l)
	if st.Stage != StageGoals {
		t.Fatal("goals has no back target")
	}
}

func TestClamp_ShrunkContent(t *testing.T) {
	l := testLesson(t)

	st := Clamp(State{Stage: StageConcept, ConceptIndex: 9, ItemIndex: 9}, l)
	if st.ConceptIndex != 1 || st.ItemIndex != 0 {
		t.Fatalf("clamped = %+v, want last concept, last item", st)
	}

	st = Clamp(State{Stage: StagePrereq, PrereqIndex: 5}, l)
	if st.PrereqIndex != 1 {
		t.Fatalf("prereq clamped = %d, want 1", st.PrereqIndex)
	}

	// Assessment removed since the save: fall back to concept stage.
	l.Assessment = nil
	st = Clamp(State{Stage: StageAssessment, Assessment: AssessmentState{CurrentIndex: 1}}, l)
	if st.Stage != StageConcept {
		t.Fatalf("stage = %v, want concept after assessment removal", st.Stage)
	}
}

func TestLess_StageOrder(t *testing.T) {
	order := []State{
		{Stage: StageGoals},
		{Stage: StagePrereq, PrereqIndex: 0},
		{Stage: StagePrereq, PrereqIndex: 1},
		{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 0},
		{Stage: StageConcept, ConceptIndex: 0, ItemIndex: 1},
		{Stage: StageConcept, ConceptIndex: 1, ItemIndex: 0},
		{Stage: StageAssessment},
		{Stage: StageDone},
	}
	for i := 0; i < len(order)-1; i++ {
		if !Less(order[i], order[i+1]) {
			t.Errorf("order[%d] should be < order[%d]", i, i+1)
		}
		if Less(order[i+1], order[i]) {
			t.Errorf("order[%d] should not be < order[%d]", i+1, i)
		}
	}
}

func TestStageRoundTrip(t *testing.T) {
	for _, s := range []Stage{StageGoals, StagePrereq, StageConcept, StageAssessment, StageDone} {
		if got := StageFromString(s.String()); got != s {
			t.Errorf("round trip %v -> %q -> %v", s, s.String(), got)
		}
	}
	if got := StageFromString("garbage"); got != StageGoals {
		t.Errorf("unknown tag = %v, want goals", got)
	}
}
