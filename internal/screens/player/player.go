// Package player hosts the interactive lesson screen: it walks one
// weekly card through its stages, checks answers, escalates hints, and
// saves progress after every move.
package player

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hsaleh/durus/internal/answer"
	"github.com/hsaleh/durus/internal/completion"
	"github.com/hsaleh/durus/internal/engine"
	"github.com/hsaleh/durus/internal/lesson"
	"github.com/hsaleh/durus/internal/router"
	"github.com/hsaleh/durus/internal/screen"
	"github.com/hsaleh/durus/internal/screens/summary"
	"github.com/hsaleh/durus/internal/store"
	"github.com/hsaleh/durus/internal/ui/components"
	"github.com/hsaleh/durus/internal/ui/layout"
)

// advanceDelay is the pause after a graded answer before the player
// moves on. Any keypress cancels it and advances immediately.
const advanceDelay = 900 * time.Millisecond

type toastKind int

const (
	toastNone toastKind = iota
	toastSuccess
	toastError
	toastHint
	toastInfo
)

// PlayerScreen implements screen.Screen for an active lesson attempt.
type PlayerScreen struct {
	library   *lesson.Library
	preloaded *lesson.Lesson
	week      int
	studentID string
	progress  store.ProgressRepo
	events    store.EventRepo
	recorder  completion.Recorder

	eng *engine.Engine

	input    components.TextInput
	mc       components.MultiChoice
	ordering components.Ordering
	match    components.Match
	blanks   []components.TextInput
	blankIdx int

	toast       string
	toastStyle  toastKind
	hints       []string
	quitConfirm bool
	advanceTok  int
	cert        *completion.Certificate
	errMsg      string
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)

// New creates a player for a stored week: the card comes from the
// library and progress is loaded, saved, and completed against the
// store.
func New(lib *lesson.Library, week int, studentID string, progress store.ProgressRepo, events store.EventRepo, recorder completion.Recorder) *PlayerScreen {
	return &PlayerScreen{
		library:   lib,
		week:      week,
		studentID: studentID,
		progress:  progress,
		events:    events,
		recorder:  recorder,
	}
}

// NewPreview creates a player over an already-parsed card with no
// persistence. Authors use it to walk a draft.
func NewPreview(doc *lesson.Lesson) *PlayerScreen {
	return &PlayerScreen{
		preloaded: doc,
		week:      doc.Week,
		studentID: "preview",
		recorder:  completion.NopRecorder{},
	}
}

func (p *PlayerScreen) Init() tea.Cmd {
	return p.loadLesson()
}

func (p *PlayerScreen) Title() string {
	if p.eng != nil {
		return p.eng.Doc().Title
	}
	return fmt.Sprintf("الأسبوع %d", p.week)
}

func (p *PlayerScreen) KeyHints() []layout.KeyHint {
	if p.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "خروج"},
			{Key: "N", Description: "متابعة"},
		}
	}
	if p.eng != nil && p.eng.Done() {
		return []layout.KeyHint{{Key: "Enter", Description: "النتيجة"}}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "متابعة"},
		{Key: "Shift+Tab", Description: "رجوع"},
		{Key: "Esc", Description: "خروج"},
	}
	if q := p.currentQuestion(); q != nil && !q.Required() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+S", Description: "تخطي"})
	}
	return hints
}

// loadLesson loads the card and saved progress off the Update loop.
func (p *PlayerScreen) loadLesson() tea.Cmd {
	return func() tea.Msg {
		doc := p.preloaded
		if doc == nil {
			var err error
			doc, err = p.library.LoadWeek(p.week)
			if err != nil {
				return lessonReadyMsg{Err: err}
			}
		}

		eng := engine.New(doc)
		if p.progress != nil {
			saved, err := p.progress.Load(context.Background(), p.studentID, p.week)
			if err != nil {
				return lessonReadyMsg{Err: err}
			}
			// A completed card restarts fresh; the completion record
			// and certificate stay in the log.
			if saved != nil && !saved.Completed {
				eng.Restore(stateFromProgress(saved))
			}
		}
		return lessonReadyMsg{Eng: eng}
	}
}

func (p *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
			return p, nil
		}
		p.eng = msg.Eng
		p.syncPosition()
		return p, nil

	case progressSavedMsg:
		if msg.Err != nil {
			p.setToast("تعذر حفظ التقدم", toastError)
		}
		return p, nil

	case autoAdvanceMsg:
		if msg.Token != p.advanceTok {
			return p, nil
		}
		return p.doAdvance()

	case completionRecordedMsg:
		return p.handleCompletionRecorded(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p.forwardToComponent(msg)
}

func (p *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.errMsg != "" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if p.eng == nil {
		return p, nil
	}

	if p.quitConfirm {
		switch key {
		case "y", "Y":
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			p.quitConfirm = false
		}
		return p, nil
	}

	// A pending auto-advance is cancelled by any key; Enter takes the
	// step immediately, everything else just stops the timer.
	if p.pendingAdvance() {
		p.advanceTok++
		if key == "enter" {
			return p.doAdvance()
		}
		if key != "esc" {
			return p, nil
		}
	}

	switch key {
	case "esc":
		p.quitConfirm = true
		return p, nil
	case "shift+tab":
		return p.doBack()
	case "ctrl+s":
		return p.trySkip()
	case "enter":
		return p.handleEnter()
	}

	return p.forwardToComponent(msg)
}

// handleEnter submits the current question, or advances when the
// position holds no question.
func (p *PlayerScreen) handleEnter() (screen.Screen, tea.Cmd) {
	if p.eng.Done() {
		return p.finish()
	}

	q := p.currentQuestion()
	if q == nil {
		return p.doAdvance()
	}

	// Malformed content never grades: optional items can be stepped
	// over, required ones block until the card is fixed upstream.
	if q.Malformed() {
		if q.Required() {
			p.setToast("محتوى السؤال غير صالح، لا يمكن المتابعة", toastError)
			return p, nil
		}
		return p.doAdvance()
	}

	// Fillblank commits the focused blank first.
	if q.Type == lesson.QuestionFillBlank && p.blankIdx < len(p.blanks)-1 {
		p.commitBlanks(q)
		p.blankIdx++
		return p, p.blanks[p.blankIdx].Init()
	}

	return p.submit(q)
}

// submit grades q against the learner's response.
func (p *PlayerScreen) submit(q *lesson.Question) (screen.Screen, tea.Cmd) {
	p.storeResponse(q)
	res := p.eng.Submit()

	// A required question with no answer blocks in place: nothing is
	// graded, logged, or advanced.
	if res.NeedsResponse {
		p.setToast("اكتب إجابتك أولًا", toastError)
		return p, nil
	}

	cmds := []tea.Cmd{p.appendAnswerEvent(q, res)}

	switch {
	case res.Skipped:
		p.setToast("سؤال اختياري، تم التخطي", toastInfo)
		cmds = append(cmds, p.scheduleAdvance())

	case res.Correct:
		p.revealComponents(q)
		if res.Corrected != "" {
			p.setToast("إجابة صحيحة — التصحيح: "+res.Corrected, toastSuccess)
		} else {
			p.setToast("إجابة صحيحة!", toastSuccess)
		}
		cmds = append(cmds, p.scheduleAdvance())

	default:
		if p.eng.State().Stage == engine.StageAssessment {
			// Assessment questions grade once and move on.
			p.revealComponents(q)
			p.setToast("إجابة غير صحيحة", toastError)
			cmds = append(cmds, p.scheduleAdvance())
			break
		}

		p.setToast("حاول مرة أخرى", toastError)
		if res.Hint != "" {
			p.hints = append(p.hints, res.Hint)
			cmds = append(cmds, p.appendHintEvent(q, res))
		}
		if res.RevealSolution {
			cmds = append(cmds, p.appendHintEvent(q, res))
		}
		p.input.Submit(false)
	}

	return p, tea.Batch(cmds...)
}

// trySkip skips the current optional question.
func (p *PlayerScreen) trySkip() (screen.Screen, tea.Cmd) {
	q := p.currentQuestion()
	if q == nil || q.Required() {
		return p, nil
	}
	p.setToast("تم تخطي السؤال", toastInfo)
	return p, p.scheduleAdvance()
}

// doAdvance moves forward and persists the new position.
func (p *PlayerScreen) doAdvance() (screen.Screen, tea.Cmd) {
	p.advanceTok++
	p.eng.Advance()
	p.syncPosition()

	if p.eng.Done() && p.cert == nil {
		return p, tea.Batch(p.saveProgress(), p.recordCompletion())
	}
	return p, p.saveProgress()
}

// doBack steps backwards and persists the new position.
func (p *PlayerScreen) doBack() (screen.Screen, tea.Cmd) {
	p.advanceTok++
	p.eng.Back()
	p.syncPosition()
	return p, p.saveProgress()
}

// finish replaces the player with the summary screen.
func (p *PlayerScreen) finish() (screen.Screen, tea.Cmd) {
	doc := p.eng.Doc()
	score := p.eng.FinalScore()
	cert := p.cert
	return p, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(doc, score, cert),
		}
	}
}

func (p *PlayerScreen) handleCompletionRecorded(msg completionRecordedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.setToast("تعذر تسجيل الإنجاز", toastError)
		return p, nil
	}
	p.cert = msg.Cert
	return p, nil
}

// pendingAdvance reports whether a graded answer is waiting out its
// pause.
func (p *PlayerScreen) pendingAdvance() bool {
	return p.toastStyle == toastSuccess || p.toastStyle == toastInfo ||
		(p.toastStyle == toastError && p.eng != nil && p.eng.State().Stage == engine.StageAssessment && p.revealedNow())
}

func (p *PlayerScreen) revealedNow() bool {
	return p.mc.Revealed || p.ordering.Revealed || p.match.Revealed
}

// scheduleAdvance arms the cancelable post-answer pause.
func (p *PlayerScreen) scheduleAdvance() tea.Cmd {
	p.advanceTok++
	token := p.advanceTok
	return tea.Tick(advanceDelay, func(time.Time) tea.Msg {
		return autoAdvanceMsg{Token: token}
	})
}

// syncPosition rebuilds input components for the new position,
// restoring any response recorded earlier in the attempt.
func (p *PlayerScreen) syncPosition() {
	p.toast = ""
	p.toastStyle = toastNone
	p.hints = nil
	p.blankIdx = 0
	p.mc = components.MultiChoice{}
	p.ordering = components.Ordering{}
	p.match = components.Match{}
	p.blanks = nil

	q := p.currentQuestion()
	if q == nil {
		return
	}
	if q.Malformed() {
		p.setToast("سؤال غير صالح في هذا الدرس", toastError)
		return
	}
	r := p.eng.Response(q)

	switch q.Type {
	case lesson.QuestionMCQ:
		p.mc = components.NewMultiChoice(q.Choices)
		if r.SelectedIndex >= 0 {
			p.mc.Selected = r.SelectedIndex
		}

	case lesson.QuestionInput:
		numeric := q.Validate != nil && q.Validate.NumericOnly
		p.input = components.NewTextInput(q.Placeholder, numeric, 40)
		p.input.SetValue(r.Value)

	case lesson.QuestionOrdering:
		if hasAny(r.Order) {
			p.ordering = components.NewOrdering(r.Order)
		} else {
			p.ordering = components.NewOrdering(shuffledCopy(q.Items, q.ID))
		}

	case lesson.QuestionMatch:
		lefts := make([]string, len(q.Pairs))
		rights := make([]string, len(q.Pairs))
		for i, pair := range q.Pairs {
			lefts[i] = pair.Left
			rights[i] = pair.Right
		}
		p.match = components.NewMatch(lefts, shuffledCopy(rights, q.ID))
		for i, chosen := range r.Matches {
			if chosen == "" {
				continue
			}
			for j, opt := range p.match.Options {
				if opt == chosen {
					p.match.Choices[i] = j
				}
			}
		}

	case lesson.QuestionFillBlank:
		p.blanks = make([]components.TextInput, len(q.Blanks))
		for i := range p.blanks {
			p.blanks[i] = components.NewTextInput("…", false, 30)
			if i < len(r.Blanks) {
				p.blanks[i].SetValue(r.Blanks[i])
			}
		}
	}
}

// storeResponse copies component values into the engine's response.
func (p *PlayerScreen) storeResponse(q *lesson.Question) {
	r := p.eng.Response(q)
	switch q.Type {
	case lesson.QuestionMCQ:
		r.SelectedIndex = p.mc.Selected
	case lesson.QuestionInput:
		r.Value = p.input.Value()
	case lesson.QuestionOrdering:
		r.Order = p.ordering.Order()
	case lesson.QuestionMatch:
		r.Matches = p.match.Matches()
	case lesson.QuestionFillBlank:
		p.commitBlanks(q)
	}
}

func (p *PlayerScreen) commitBlanks(q *lesson.Question) {
	r := p.eng.Response(q)
	for i := range p.blanks {
		if i < len(r.Blanks) {
			r.Blanks[i] = p.blanks[i].Value()
		}
	}
}

// revealComponents shows grading colors on selection components.
func (p *PlayerScreen) revealComponents(q *lesson.Question) {
	switch q.Type {
	case lesson.QuestionMCQ:
		p.mc.Reveal(p.mc.Selected, q.CorrectIndex)
	case lesson.QuestionOrdering:
		p.ordering.Reveal(q.Items)
	case lesson.QuestionMatch:
		want := make([]string, len(q.Pairs))
		for i, pair := range q.Pairs {
			want[i] = pair.Right
		}
		p.match.Reveal(want)
	case lesson.QuestionInput:
		p.input.Submit(true)
	}
}

// forwardToComponent routes non-handled messages to the active input.
func (p *PlayerScreen) forwardToComponent(msg tea.Msg) (screen.Screen, tea.Cmd) {
	q := p.currentQuestion()
	if q == nil || q.Malformed() || p.quitConfirm {
		return p, nil
	}

	var cmd tea.Cmd
	switch q.Type {
	case lesson.QuestionMCQ:
		p.mc, cmd = p.mc.Update(msg)
	case lesson.QuestionInput:
		p.input, cmd = p.input.Update(msg)
	case lesson.QuestionOrdering:
		p.ordering, cmd = p.ordering.Update(msg)
	case lesson.QuestionMatch:
		p.match, cmd = p.match.Update(msg)
	case lesson.QuestionFillBlank:
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "tab" && len(p.blanks) > 0 {
			p.commitBlanks(q)
			p.blankIdx = (p.blankIdx + 1) % len(p.blanks)
			return p, nil
		}
		if p.blankIdx < len(p.blanks) {
			p.blanks[p.blankIdx], cmd = p.blanks[p.blankIdx].Update(msg)
		}
	}
	return p, cmd
}

func (p *PlayerScreen) currentQuestion() *lesson.Question {
	if p.eng == nil {
		return nil
	}
	return p.eng.CurrentQuestion()
}

func (p *PlayerScreen) setToast(text string, kind toastKind) {
	p.toast = text
	p.toastStyle = kind
}

// saveProgress persists the current position in the background.
func (p *PlayerScreen) saveProgress() tea.Cmd {
	if p.progress == nil {
		return nil
	}
	row := progressFromState(p.studentID, p.week, p.eng.State())
	repo := p.progress
	return func() tea.Msg {
		return progressSavedMsg{Err: repo.Save(context.Background(), row)}
	}
}

// recordCompletion issues the certificate once the terminal stage is
// reached.
func (p *PlayerScreen) recordCompletion() tea.Cmd {
	doc := p.eng.Doc()
	score := p.eng.FinalScore()
	rec := p.recorder
	student := p.studentID
	return func() tea.Msg {
		cert, err := rec.Record(context.Background(), student, doc, score)
		return completionRecordedMsg{Cert: cert, Err: err}
	}
}

// appendAnswerEvent logs the graded answer in the background.
func (p *PlayerScreen) appendAnswerEvent(q *lesson.Question, res engine.SubmitResult) tea.Cmd {
	if p.events == nil || res.Skipped {
		return nil
	}
	data := store.AnswerEventData{
		StudentID:    p.studentID,
		Week:         p.week,
		QuestionID:   q.ID,
		Stage:        p.eng.State().Stage.String(),
		QuestionType: string(q.Type),
		Response:     responseSummary(q, p.eng.Response(q)),
		Correct:      res.Correct,
		Corrected:    res.Corrected,
		Attempt:      res.Attempts,
	}
	repo := p.events
	return func() tea.Msg {
		_ = repo.AppendAnswer(context.Background(), data)
		return nil
	}
}

// appendHintEvent logs a hint or reveal in the background.
func (p *PlayerScreen) appendHintEvent(q *lesson.Question, res engine.SubmitResult) tea.Cmd {
	if p.events == nil {
		return nil
	}
	data := store.HintEventData{
		StudentID:        p.studentID,
		Week:             p.week,
		QuestionID:       q.ID,
		Attempt:          res.Attempts,
		HintText:         res.Hint,
		RevealedSolution: res.RevealSolution,
	}
	repo := p.events
	return func() tea.Msg {
		_ = repo.AppendHint(context.Background(), data)
		return nil
	}
}

// responseSummary flattens a response for the event log.
func responseSummary(q *lesson.Question, r *answer.Response) string {
	switch q.Type {
	case lesson.QuestionMCQ:
		if r.SelectedIndex >= 0 && r.SelectedIndex < len(q.Choices) {
			return q.Choices[r.SelectedIndex]
		}
		return ""
	case lesson.QuestionOrdering:
		return strings.Join(r.Order, " | ")
	case lesson.QuestionMatch:
		return strings.Join(r.Matches, " | ")
	case lesson.QuestionFillBlank:
		return strings.Join(r.Blanks, " | ")
	}
	return r.Value
}

func hasAny(vals []string) bool {
	for _, v := range vals {
		if v != "" {
			return true
		}
	}
	return false
}
