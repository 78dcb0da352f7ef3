package player

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hsaleh/durus/internal/engine"
	"github.com/hsaleh/durus/internal/lesson"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testCard(t *testing.T) *lesson.Lesson {
	t.Helper()
	l := &lesson.Lesson{
		Week:  1,
		Title: "درس تجريبي",
		Prerequisites: []lesson.PrereqItem{
			{Kind: lesson.PrereqText, Text: "تمهيد"},
		},
		Concepts: []lesson.Concept{
			{Title: "المفهوم", Flow: []lesson.FlowItem{
				{Type: lesson.ItemExplain, Text: "شرح"},
				{Type: lesson.ItemMCQ, Text: "اختر", Choices: []string{"أ", "ب"}, CorrectIndex: 1,
					Hints: []string{"تلميح أول"}},
			}},
		},
		Assessment: &lesson.Assessment{Questions: []lesson.Question{
			{Type: lesson.QuestionInput, Text: "كم؟", Answer: "٥"},
		}},
	}
	lesson.Normalize(l)
	return l
}

// testPlayer builds a preview player with the engine already loaded.
func testPlayer(t *testing.T) *PlayerScreen {
	t.Helper()
	p := NewPreview(testCard(t))
	p.eng = engine.New(testCard(t))
	p.syncPosition()
	return p
}

func TestPlayer_QuitConfirm(t *testing.T) {
	p := testPlayer(t)

	p.Update(specialKey(tea.KeyEscape))
	if !p.quitConfirm {
		t.Fatal("esc should open the quit dialog")
	}

	p.Update(keyPress('n'))
	if p.quitConfirm {
		t.Fatal("n should dismiss the quit dialog")
	}

	p.Update(specialKey(tea.KeyEscape))
	_, cmd := p.Update(keyPress('y'))
	if cmd == nil {
		t.Error("y should produce a pop command")
	}
}

func TestPlayer_GoalsAdvanceOnEnter(t *testing.T) {
	p := testPlayer(t)
	if p.eng.State().Stage != engine.StageGoals {
		t.Fatal("fresh player starts at goals")
	}
	p.Update(specialKey(tea.KeyEnter))
	if p.eng.State().Stage != engine.StagePrereq {
		t.Errorf("stage = %v, want prereq after enter", p.eng.State().Stage)
	}
}

func TestPlayer_MCQWrongThenHint(t *testing.T) {
	p := testPlayer(t)
	p.eng.Restore(engine.State{Stage: engine.StageConcept, ItemIndex: 1})
	p.syncPosition()

	q := p.eng.CurrentQuestion()
	if q == nil || q.Type != lesson.QuestionMCQ {
		t.Fatalf("current question = %+v, want mcq", q)
	}

	// Choose the wrong option and submit.
	p.mc.Selected = 0
	p.Update(specialKey(tea.KeyEnter))

	if p.toastStyle != toastError {
		t.Error("wrong answer should show an error toast")
	}
	if len(p.hints) != 1 || p.hints[0] != "تلميح أول" {
		t.Errorf("hints = %v, want the authored hint", p.hints)
	}

	// Correct on retry.
	p.mc.Selected = 1
	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if p.toastStyle != toastSuccess {
		t.Error("correct answer should show a success toast")
	}
	if cmd == nil {
		t.Error("correct answer should schedule the auto-advance")
	}
}

func TestPlayer_StaleAdvanceTokenIgnored(t *testing.T) {
	p := testPlayer(t)
	p.eng.Restore(engine.State{Stage: engine.StageConcept, ItemIndex: 1})
	p.syncPosition()

	p.mc.Selected = 1
	p.Update(specialKey(tea.KeyEnter)) // correct, schedules advance
	before := p.eng.State()

	// A keypress arrives before the tick: the token moves on.
	p.Update(keyPress('x'))
	p.Update(autoAdvanceMsg{Token: p.advanceTok - 1})

	if got := p.eng.State(); got != before {
		t.Errorf("state = %+v, stale tick must not advance", got)
	}

	// The current token does advance.
	p.Update(autoAdvanceMsg{Token: p.advanceTok})
	if got := p.eng.State(); got == before {
		t.Error("fresh token should advance")
	}
}

func TestPlayer_AssessmentEmptySubmitBlocks(t *testing.T) {
	p := testPlayer(t)
	p.eng.Restore(engine.State{Stage: engine.StageAssessment})
	p.syncPosition()

	q := p.eng.CurrentQuestion()
	if q == nil || q.Type != lesson.QuestionInput {
		t.Fatalf("current question = %+v, want assessment input", q)
	}

	// Enter with an empty field must not consume the grading.
	_, cmd := p.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("blocked submit should not schedule anything")
	}
	if p.toastStyle != toastError {
		t.Error("blocked submit should prompt for an answer")
	}
	if st := p.eng.State(); st.Stage != engine.StageAssessment || st.Assessment.CurrentIndex != 0 {
		t.Errorf("state = %+v, want unchanged position", st)
	}

	// Answering afterwards still grades as a first attempt.
	p.input.SetValue("٥")
	p.Update(specialKey(tea.KeyEnter))
	if p.toastStyle != toastSuccess {
		t.Errorf("toast = %v, want success on the real answer", p.toastStyle)
	}
}

// brokenCard carries schema-valid but unanswerable questions: a match
// with no pairs and an optional fillblank with no blanks.
func brokenCard(t *testing.T) *lesson.Lesson {
	t.Helper()
	no := false
	l := &lesson.Lesson{
		Week:  2,
		Title: "درس معطوب",
		Concepts: []lesson.Concept{
			{Title: "المفهوم", Flow: []lesson.FlowItem{
				{Type: lesson.ItemMatch, Text: "صِل"},
				{Type: lesson.ItemFillBlank, Text: "أكمل [[blank]]", IsRequired: &no},
				{Type: lesson.ItemExplain, Text: "شرح"},
			}},
		},
	}
	lesson.Normalize(l)
	return l
}

func TestPlayer_MalformedRequiredQuestionBlocks(t *testing.T) {
	doc := brokenCard(t)
	p := NewPreview(doc)
	p.eng = engine.New(doc)
	p.eng.Restore(engine.State{Stage: engine.StageConcept})
	p.syncPosition()

	if v := p.View(80, 24); !strings.Contains(v, "تعذر عرض هذا السؤال") {
		t.Error("malformed question should render the inline error block")
	}

	// Keys that would drive the match control are ignored, not a panic.
	p.Update(specialKey(tea.KeyRight))
	p.Update(keyPress(' '))

	// Enter stays put: a required broken question cannot be skipped.
	p.Update(specialKey(tea.KeyEnter))
	if st := p.eng.State(); st.ItemIndex != 0 {
		t.Errorf("item index = %d, want blocked at the broken question", st.ItemIndex)
	}
	if p.toastStyle != toastError {
		t.Error("blocked continue should explain itself")
	}
}

func TestPlayer_MalformedOptionalQuestionSkips(t *testing.T) {
	doc := brokenCard(t)
	p := NewPreview(doc)
	p.eng = engine.New(doc)
	p.eng.Restore(engine.State{Stage: engine.StageConcept, ItemIndex: 1})
	p.syncPosition()

	// Tab on a blankless fillblank is ignored, not a division by zero.
	p.Update(specialKey(tea.KeyTab))

	p.Update(specialKey(tea.KeyEnter))
	if st := p.eng.State(); st.ItemIndex != 2 {
		t.Errorf("item index = %d, want stepped past the optional broken question", st.ItemIndex)
	}
}

func TestPlayer_ViewRendersStages(t *testing.T) {
	p := testPlayer(t)

	if v := p.View(80, 24); !strings.Contains(v, "درس تجريبي") {
		t.Error("goals view should show the lesson title")
	}

	p.eng.Restore(engine.State{Stage: engine.StageConcept, ItemIndex: 1})
	p.syncPosition()
	if v := p.View(80, 24); !strings.Contains(v, "اختر") {
		t.Error("concept view should show the current question")
	}

	p.eng.Restore(engine.State{Stage: engine.StageAssessment})
	p.syncPosition()
	if v := p.View(80, 24); !strings.Contains(v, "التقييم النهائي") {
		t.Error("assessment view should show the assessment banner")
	}
}

func TestProgressRoundTrip(t *testing.T) {
	st := engine.State{
		Stage:        engine.StageAssessment,
		ConceptIndex: 2,
		ItemIndex:    3,
		PrereqIndex:  1,
		Assessment:   engine.AssessmentState{CurrentIndex: 1, Score: 2, Total: 4},
	}

	got := stateFromProgress(progressFromState("hala", 5, st))
	if got != st {
		t.Errorf("round trip = %+v, want %+v", got, st)
	}
}

func TestProgressCompletedFlag(t *testing.T) {
	row := progressFromState("hala", 5, engine.State{Stage: engine.StageDone})
	if !row.Completed || row.Stage != "done" {
		t.Errorf("row = %+v, want completed/done", row)
	}
}

func TestShuffledCopy(t *testing.T) {
	items := []string{"أ", "ب", "ج", "د"}

	a := shuffledCopy(items, "c0.i1")
	b := shuffledCopy(items, "c0.i1")
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("shuffle must be stable for the same ID")
		}
	}

	same := true
	for i := range a {
		if a[i] != items[i] {
			same = false
		}
	}
	if same {
		t.Error("presentation order should differ from the answer order")
	}

	if got := shuffledCopy([]string{"وحيد"}, "x"); len(got) != 1 || got[0] != "وحيد" {
		t.Errorf("single item = %v, want unchanged", got)
	}
}
