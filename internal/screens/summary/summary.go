package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hsaleh/durus/internal/completion"
	"github.com/hsaleh/durus/internal/engine"
	"github.com/hsaleh/durus/internal/lesson"
	"github.com/hsaleh/durus/internal/router"
	"github.com/hsaleh/durus/internal/screen"
	"github.com/hsaleh/durus/internal/ui/components"
	"github.com/hsaleh/durus/internal/ui/layout"
	"github.com/hsaleh/durus/internal/ui/theme"
)

// SummaryScreen shows the outcome of a finished lesson.
type SummaryScreen struct {
	doc   *lesson.Lesson
	score engine.Score
	cert  *completion.Certificate
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. cert may be nil in preview mode.
func New(doc *lesson.Lesson, score engine.Score, cert *completion.Certificate) *SummaryScreen {
	return &SummaryScreen{doc: doc, score: score, cert: cert}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "ملخص الدرس"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "الرئيسية"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(center(width, theme.Title.Render("اكتمل الدرس!")))
	b.WriteString("\n\n")
	b.WriteString(center(width, theme.Body.Render(
		fmt.Sprintf("الأسبوع %d — %s", s.doc.Week, s.doc.Title))))
	b.WriteString("\n\n")

	if s.score.Total > 0 {
		b.WriteString(center(width, theme.Body.Bold(true).Render(
			fmt.Sprintf("النتيجة: %d / %d", s.score.Score, s.score.Total))))
		b.WriteString("\n\n")

		bar := components.NewProgressBar("", float64(s.score.Percent())/100, true, min(width-20, 50))
		b.WriteString(center(width, bar.View()))
		b.WriteString("\n\n")

		b.WriteString(center(width, s.renderVerdict()))
		b.WriteString("\n\n")
	} else {
		b.WriteString(center(width, theme.Body.Render("أكملت هذا الدرس بدون تقييم نهائي.")))
		b.WriteString("\n\n")
	}

	if s.cert != nil {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 50)))
		b.WriteString(center(width, divider))
		b.WriteString("\n")
		b.WriteString(center(width, theme.Certificate.Render("شهادة إتمام")))
		b.WriteString("\n")
		b.WriteString(center(width, theme.Hint.Render(s.cert.ID)))
		b.WriteString("\n")
	}

	return b.String()
}

// renderVerdict maps the percentage to an encouragement line.
func (s *SummaryScreen) renderVerdict() string {
	p := s.score.Percent()
	switch {
	case p >= 90:
		return theme.Correct.Render("ممتاز! إتقان كامل")
	case p >= 70:
		return lipgloss.NewStyle().Foreground(theme.Secondary).Render("جيد جدًا، استمر!")
	case p >= 50:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("جيد، راجع الدرس مرة أخرى")
	default:
		return theme.Incorrect.Render("يحتاج إلى مراجعة، أعد الدرس")
	}
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
