package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hsaleh/durus/internal/ui/theme"
)

// Match pairs each left-hand item with one of the right-hand options.
// Up/down move between rows; left/right cycle the option assigned to
// the current row.
type Match struct {
	Lefts    []string
	Options  []string
	Choices  []int // index into Options per row, -1 when unset
	Cursor   int
	Revealed bool
	correct  map[int]bool
}

// NewMatch creates a match component. options is the shuffled pool of
// right-hand values.
func NewMatch(lefts, options []string) Match {
	choices := make([]int, len(lefts))
	for i := range choices {
		choices[i] = -1
	}
	return Match{Lefts: lefts, Options: options, Choices: choices}
}

// Update handles row navigation and option cycling.
func (m Match) Update(msg tea.Msg) (Match, tea.Cmd) {
	if m.Revealed || len(m.Lefts) == 0 || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Lefts)-1 {
			m.Cursor++
		}
	case "right", "l", "space", " ":
		m.Choices[m.Cursor] = (m.Choices[m.Cursor] + 1) % len(m.Options)
	case "left", "h":
		if m.Choices[m.Cursor] < 0 {
			m.Choices[m.Cursor] = len(m.Options) - 1
		} else {
			m.Choices[m.Cursor] = (m.Choices[m.Cursor] + len(m.Options) - 1) % len(m.Options)
		}
	}

	return m, nil
}

// Matches returns the chosen right-hand value per row, "" when unset.
func (m Match) Matches() []string {
	out := make([]string, len(m.Choices))
	for i, c := range m.Choices {
		if c >= 0 && c < len(m.Options) {
			out[i] = m.Options[c]
		}
	}
	return out
}

// Reveal colors each row by correctness against want.
func (m *Match) Reveal(want []string) {
	m.Revealed = true
	m.correct = make(map[int]bool, len(m.Lefts))
	got := m.Matches()
	for i := range m.Lefts {
		m.correct[i] = i < len(want) && got[i] == want[i]
	}
}

// View renders the rows.
func (m Match) View() string {
	var s string
	for i, left := range m.Lefts {
		chosen := "…"
		if c := m.Choices[i]; c >= 0 && c < len(m.Options) {
			chosen = m.Options[c]
		}

		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s  ←  %s", prefix, left, chosen)

		switch {
		case m.Revealed && m.correct[i]:
			s += theme.Correct.Render(line) + "\n"
		case m.Revealed:
			s += theme.Incorrect.Render(line) + "\n"
		case i == m.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	if !m.Revealed {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  الأسهم يمينًا ويسارًا لتبديل الإجابة") + "\n"
	}
	return s
}
