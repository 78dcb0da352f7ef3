package engine

import (
	"github.com/hsaleh/durus/internal/answer"
	"github.com/hsaleh/durus/internal/lesson"
)

// Engine owns one lesson attempt: the current position plus the
// runtime side tables (responses, attempt counts, reveals) keyed by
// stable item ID. The lesson document itself is never mutated, so one
// parsed card can back many attempts.
type Engine struct {
	doc *lesson.Lesson
	st  State

	responses map[string]*answer.Response
	attempts  map[string]int
	revealed  map[string]bool
	correct   map[string]bool
}

// New creates an engine positioned at the start of doc.
func New(doc *lesson.Lesson) *Engine {
	return &Engine{
		doc:       doc,
		st:        Initial(),
		responses: make(map[string]*answer.Response),
		attempts:  make(map[string]int),
		revealed:  make(map[string]bool),
		correct:   make(map[string]bool),
	}
}

// Doc returns the lesson document.
func (e *Engine) Doc() *lesson.Lesson { return e.doc }

// State returns the current position.
func (e *Engine) State() State { return e.st }

// Restore positions the engine at a saved state, clamped into valid
// range for the current content.
func (e *Engine) Restore(st State) {
	e.st = Clamp(st, e.doc)
}

// Advance moves one step forward. When the move crosses out of the
// assessment it freezes the final score into the state first.
func (e *Engine) Advance() State {
	if e.st.Stage == StageAssessment && e.doc.Assessment != nil &&
		e.st.Assessment.CurrentIndex+1 >= len(e.doc.Assessment.Questions) {
		s := ScoreAssessment(e.doc.Assessment, e.responses)
		e.st.Assessment.Score = s.Score
		e.st.Assessment.Total = s.Total
	}
	e.st = Advance(e.st, e.doc)
	return e.st
}

// Back steps one stage backwards.
func (e *Engine) Back() State {
	e.st = Back(e.st, e.doc)
	return e.st
}

// Done reports whether the attempt reached the terminal stage.
func (e *Engine) Done() bool { return e.st.Stage == StageDone }

// FinalScore returns the frozen assessment score. Lessons without an
// assessment grade as a full score over zero total.
func (e *Engine) FinalScore() Score {
	return Score{Score: e.st.Assessment.Score, Total: e.st.Assessment.Total}
}

// CurrentItem returns the flow item at the current concept position,
// or nil outside the concept stage.
func (e *Engine) CurrentItem() *lesson.FlowItem {
	if e.st.Stage != StageConcept {
		return nil
	}
	flow := conceptFlow(e.doc, e.st.ConceptIndex)
	if e.st.ItemIndex < 0 || e.st.ItemIndex >= len(flow) {
		return nil
	}
	return &flow[e.st.ItemIndex]
}

// VisibleItems returns the items the learner should currently see:
// everything from the start of the concept through the current item,
// so in-concept history stays on screen.
func (e *Engine) VisibleItems() []*lesson.FlowItem {
	if e.st.Stage != StageConcept {
		return nil
	}
	flow := conceptFlow(e.doc, e.st.ConceptIndex)
	end := e.st.ItemIndex
	if end >= len(flow) {
		end = len(flow) - 1
	}
	items := make([]*lesson.FlowItem, 0, end+1)
	for i := 0; i <= end && i < len(flow); i++ {
		items = append(items, &flow[i])
	}
	return items
}

// CurrentQuestion returns the question at the current position, if the
// position holds one: a prereq check, a question flow item, or an
// assessment question.
func (e *Engine) CurrentQuestion() *lesson.Question {
	switch e.st.Stage {
	case StagePrereq:
		if e.st.PrereqIndex < len(e.doc.Prerequisites) {
			return e.doc.Prerequisites[e.st.PrereqIndex].Question
		}
	case StageConcept:
		if item := e.CurrentItem(); item != nil {
			return item.Question
		}
	case StageAssessment:
		if e.doc.Assessment != nil && e.st.Assessment.CurrentIndex < len(e.doc.Assessment.Questions) {
			return &e.doc.Assessment.Questions[e.st.Assessment.CurrentIndex]
		}
	}
	return nil
}

// CurrentPrereq returns the prerequisite at the current position, or
// nil outside the prereq stage.
func (e *Engine) CurrentPrereq() *lesson.PrereqItem {
	if e.st.Stage != StagePrereq || e.st.PrereqIndex >= len(e.doc.Prerequisites) {
		return nil
	}
	return &e.doc.Prerequisites[e.st.PrereqIndex]
}

// Response returns the runtime response for q, creating it on first
// access. The same object is returned for the lifetime of the attempt,
// so typed input survives re-renders.
func (e *Engine) Response(q *lesson.Question) *answer.Response {
	r, ok := e.responses[q.ID]
	if !ok {
		r = answer.NewResponse(q)
		e.responses[q.ID] = r
	}
	return r
}

// Attempts returns the wrong-answer count recorded for q.
func (e *Engine) Attempts(q *lesson.Question) int { return e.attempts[q.ID] }

// SolutionRevealed reports whether q's solution has been shown. Once
// revealed it stays revealed.
func (e *Engine) SolutionRevealed(q *lesson.Question) bool { return e.revealed[q.ID] }

// Answered reports whether q was already checked correct this attempt.
func (e *Engine) Answered(q *lesson.Question) bool { return e.correct[q.ID] }

// SubmitResult is the outcome of checking the current question.
type SubmitResult struct {
	Correct bool

	// Skipped is set when an optional question had no response; the
	// caller advances without validation or penalty.
	Skipped bool

	// NeedsResponse is set when a required question had no response.
	// Nothing is graded: the attempt counter does not move and no hint
	// is burned, the caller prompts for an answer and stays put.
	NeedsResponse bool

	// Corrected carries an accepted autocorrection for display.
	Corrected string

	// Attempts is the cumulative wrong count after this submit.
	Attempts int

	// Hint and RevealSolution describe the escalation step for a
	// wrong answer. Hints escalate only during the concept stage;
	// prereq and assessment checks block without revealing anything.
	Hint           string
	RevealSolution bool
}

// Submit validates the current question against its recorded response.
// Wrong answers increment the attempt counter; there is no cap, the
// learner may retry until correct.
func (e *Engine) Submit() SubmitResult {
	q := e.CurrentQuestion()
	if q == nil {
		return SubmitResult{Correct: true}
	}

	r := e.Response(q)
	if !answer.HasResponse(q, r) {
		if !q.Required() {
			return SubmitResult{Skipped: true}
		}
		return SubmitResult{NeedsResponse: true, Attempts: e.attempts[q.ID]}
	}

	out := answer.CheckDetailed(q, r)
	if out.Correct {
		e.correct[q.ID] = true
		return SubmitResult{
			Correct:   true,
			Corrected: out.Corrected,
			Attempts:  e.attempts[q.ID],
		}
	}

	e.attempts[q.ID]++
	if e.st.Stage == StageAssessment {
		// Aggregate wrong count for the whole assessment; it rides
		// along in the saved state.
		e.st.Assessment.Attempts++
	}
	res := SubmitResult{Attempts: e.attempts[q.ID]}
	if e.st.Stage == StageConcept {
		res.Hint, res.RevealSolution = HintForAttempt(q, res.Attempts)
		if res.RevealSolution {
			e.revealed[q.ID] = true
		}
	}
	return res
}
