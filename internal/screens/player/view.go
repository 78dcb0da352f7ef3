package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hsaleh/durus/internal/engine"
	"github.com/hsaleh/durus/internal/lesson"
	"github.com/hsaleh/durus/internal/ui/theme"
)

func (p *PlayerScreen) View(width, height int) string {
	if p.errMsg != "" {
		return renderError(width, p.errMsg)
	}
	if p.eng == nil {
		return centered(width, theme.Hint.Render("جارٍ تحميل الدرس..."))
	}
	if p.quitConfirm {
		return renderQuitConfirm(width)
	}

	var b strings.Builder
	b.WriteString(p.renderStageBar(width))
	b.WriteString("\n\n")

	switch p.eng.State().Stage {
	case engine.StageGoals:
		b.WriteString(p.renderGoals(width))
	case engine.StagePrereq:
		b.WriteString(p.renderPrereq(width))
	case engine.StageConcept:
		b.WriteString(p.renderConcept(width))
	case engine.StageAssessment:
		b.WriteString(p.renderAssessment(width))
	case engine.StageDone:
		b.WriteString(p.renderDone(width))
	}

	if p.toast != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, p.renderToast()))
	}

	return b.String()
}

// renderStageBar shows the coarse position across the lesson.
func (p *PlayerScreen) renderStageBar(width int) string {
	labels := []struct {
		stage engine.Stage
		text  string
	}{
		{engine.StageGoals, "الأهداف"},
		{engine.StagePrereq, "التمهيد"},
		{engine.StageConcept, "الشرح"},
		{engine.StageAssessment, "التقييم"},
	}

	current := p.eng.State().Stage
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		switch {
		case l.stage == current:
			parts = append(parts, theme.Selected.Render("● "+l.text))
		case l.stage < current:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Success).Render("✓ "+l.text))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ "+l.text))
		}
	}
	return centered(width, strings.Join(parts, "   "))
}

func (p *PlayerScreen) renderGoals(width int) string {
	doc := p.eng.Doc()

	var b strings.Builder
	b.WriteString(centered(width, theme.Title.Render(doc.Title)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Subtitle.Render("في هذا الدرس سوف تتعلم:")))
	b.WriteString("\n\n")

	for _, g := range doc.Goals {
		b.WriteString(centered(width, theme.Body.Render("◆ "+g.Text)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render("اضغط Enter للبدء")))
	return b.String()
}

func (p *PlayerScreen) renderPrereq(width int) string {
	doc := p.eng.Doc()
	st := p.eng.State()

	var b strings.Builder
	if len(doc.Prerequisites) == 0 {
		b.WriteString(centered(width, theme.Body.Render("لا توجد متطلبات سابقة لهذا الدرس.")))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render("اضغط Enter للمتابعة")))
		return b.String()
	}

	b.WriteString(centered(width, theme.Subtitle.Render(
		fmt.Sprintf("هل تتذكر؟ %d/%d", st.PrereqIndex+1, len(doc.Prerequisites)))))
	b.WriteString("\n\n")

	item := p.eng.CurrentPrereq()
	if item == nil {
		return b.String()
	}

	b.WriteString(centered(width, theme.Body.Bold(true).Render(item.Text)))
	b.WriteString("\n\n")

	if item.Question != nil {
		b.WriteString(p.renderQuestionInput(width, item.Question))
	} else {
		b.WriteString(centered(width, theme.Hint.Render("اضغط Enter للمتابعة")))
	}
	return b.String()
}

func (p *PlayerScreen) renderConcept(width int) string {
	doc := p.eng.Doc()
	st := p.eng.State()
	if st.ConceptIndex >= len(doc.Concepts) {
		return ""
	}
	concept := doc.Concepts[st.ConceptIndex]

	var b strings.Builder
	b.WriteString(centered(width, theme.Title.Render(
		fmt.Sprintf("%s  (%d/%d)", concept.Title, st.ConceptIndex+1, len(doc.Concepts)))))
	b.WriteString("\n\n")

	items := p.eng.VisibleItems()
	for i, item := range items {
		last := i == len(items)-1
		b.WriteString(p.renderFlowItem(width, item, last))
		b.WriteString("\n")
	}

	if item := p.eng.CurrentItem(); item != nil && !item.Type.IsQuestion() {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render("اضغط Enter للمتابعة")))
	}
	return b.String()
}

// renderFlowItem renders one concept step. Only the last (current)
// item gets an interactive question; earlier ones render as history.
func (p *PlayerScreen) renderFlowItem(width int, item *lesson.FlowItem, current bool) string {
	var b strings.Builder
	indent := lipgloss.NewStyle().PaddingRight(4).PaddingLeft(4).Width(width)

	switch item.Type {
	case lesson.ItemExplain:
		b.WriteString(indent.Render(theme.Body.Render(item.Text)))

	case lesson.ItemExample:
		b.WriteString(indent.Render(
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("مثال: ") +
				theme.Body.Render(item.Text)))

	case lesson.ItemMistake:
		b.WriteString(indent.Render(
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("انتبه! ") +
				theme.Body.Render(item.Text)))

	case lesson.ItemNote:
		b.WriteString(indent.Render(
			lipgloss.NewStyle().Foreground(theme.Accent).Render("ملاحظة: ") +
				theme.Body.Render(item.Text)))

	case lesson.ItemDetail:
		var lines []string
		if item.Text != "" {
			lines = append(lines, theme.Body.Render(item.Text))
		}
		for _, d := range item.Details {
			lines = append(lines, theme.Body.Render("  • "+d))
		}
		b.WriteString(indent.Render(strings.Join(lines, "\n")))

	case lesson.ItemVideo:
		b.WriteString(indent.Render(theme.Hint.Render("▶ فيديو: " + item.URL)))

	case lesson.ItemImage:
		b.WriteString(indent.Render(theme.Hint.Render("◻ صورة: " + item.URL)))

	default:
		if item.Type.IsQuestion() {
			if item.Question == nil {
				b.WriteString(indent.Render(theme.Incorrect.Render("عنصر غير صالح، تم تجاوزه")))
				break
			}
			b.WriteString(indent.Render(theme.Body.Bold(true).Render(item.Question.Text)))
			if current {
				b.WriteString("\n\n")
				b.WriteString(p.renderQuestionInput(width, item.Question))
			}
		}
	}

	return b.String()
}

func (p *PlayerScreen) renderAssessment(width int) string {
	doc := p.eng.Doc()
	st := p.eng.State()

	var b strings.Builder
	if doc.Assessment == nil || len(doc.Assessment.Questions) == 0 {
		return centered(width, theme.Body.Render("لا يوجد تقييم لهذا الدرس."))
	}

	total := len(doc.Assessment.Questions)
	b.WriteString(centered(width, theme.Subtitle.Render(
		fmt.Sprintf("التقييم النهائي  %d/%d", st.Assessment.CurrentIndex+1, total))))
	b.WriteString("\n\n")

	q := p.eng.CurrentQuestion()
	if q == nil {
		return b.String()
	}

	b.WriteString(centered(width, theme.Body.Bold(true).Render(q.Text)))
	if q.Points > 1 {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render(fmt.Sprintf("(%d نقاط)", q.Points))))
	}
	b.WriteString("\n\n")
	b.WriteString(p.renderQuestionInput(width, q))
	return b.String()
}

func (p *PlayerScreen) renderDone(width int) string {
	score := p.eng.FinalScore()

	var b strings.Builder
	b.WriteString(centered(width, theme.Title.Render("أحسنت! أكملت الدرس")))
	b.WriteString("\n\n")
	if score.Total > 0 {
		b.WriteString(centered(width, theme.Body.Render(
			fmt.Sprintf("نتيجتك: %d من %d (%d%%)", score.Score, score.Total, score.Percent()))))
		b.WriteString("\n")
	}
	if p.cert != nil {
		b.WriteString(centered(width, theme.Certificate.Render("شهادة إتمام: "+p.cert.ID)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render("اضغط Enter لعرض الملخص")))
	return b.String()
}

// renderQuestionInput renders the interactive component for q plus any
// accumulated hints and the revealed solution.
func (p *PlayerScreen) renderQuestionInput(width int, q *lesson.Question) string {
	var b strings.Builder

	if q.Malformed() {
		b.WriteString(centered(width, theme.Incorrect.Render("تعذر عرض هذا السؤال: محتوى غير صالح")))
		b.WriteString("\n")
		if q.Required() {
			b.WriteString(centered(width, theme.Hint.Render("هذا السؤال إلزامي ولا يمكن تجاوزه، راجع ملف الدرس")))
		} else {
			b.WriteString(centered(width, theme.Hint.Render("اضغط Enter للتجاوز")))
		}
		return b.String()
	}

	switch q.Type {
	case lesson.QuestionMCQ:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.mc.View()))

	case lesson.QuestionInput:
		b.WriteString(centered(width, "الإجابة: "+p.input.View()))

	case lesson.QuestionOrdering:
		b.WriteString(centered(width, theme.Hint.Render("رتّب العناصر بالترتيب الصحيح")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.ordering.View()))

	case lesson.QuestionMatch:
		b.WriteString(centered(width, theme.Hint.Render("صِل كل عنصر بما يناسبه")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.match.View()))

	case lesson.QuestionFillBlank:
		b.WriteString(centered(width, renderBlankedText(q.Text)))
		b.WriteString("\n")
		for i := range p.blanks {
			marker := "  "
			if i == p.blankIdx {
				marker = "▸ "
			}
			b.WriteString(centered(width, fmt.Sprintf("%sالفراغ %d: %s", marker, i+1, p.blanks[i].View())))
			b.WriteString("\n")
		}
	}

	if !q.Required() {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render("سؤال اختياري")))
	}

	for _, h := range p.hints {
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Accent).Render("تلميح: "+h)))
	}

	if p.eng.SolutionRevealed(q) && q.Solution != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Secondary).Render("الحل: "+q.Solution)))
	}

	return b.String()
}

// renderBlankedText shows the fillblank sentence with numbered slots.
func renderBlankedText(text string) string {
	out := text
	for i := 1; strings.Contains(out, "[[blank]]"); i++ {
		out = strings.Replace(out, "[[blank]]", fmt.Sprintf("〔%d〕", i), 1)
	}
	return theme.Body.Bold(true).Render(out)
}

func (p *PlayerScreen) renderToast() string {
	switch p.toastStyle {
	case toastSuccess:
		return theme.Correct.Render(p.toast)
	case toastError:
		return theme.Incorrect.Render(p.toast)
	case toastHint:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(p.toast)
	default:
		return theme.Hint.Render(p.toast)
	}
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Body.Bold(true).Render("الخروج من الدرس؟")))
	b.WriteString("\n")
	b.WriteString(centered(width, theme.Hint.Render("تقدمك محفوظ ويمكنك المتابعة لاحقًا.")))
	b.WriteString("\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Success).Render("[Y] نعم، خروج")))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] لا، متابعة")))
	return b.String()
}

func renderError(width int, msg string) string {
	return centered(width, theme.Incorrect.Render("خطأ: "+msg)) +
		"\n\n" + centered(width, theme.Hint.Render("اضغط أي مفتاح للرجوع"))
}

func centered(width int, s string) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
