package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hsaleh/durus/internal/ui/theme"
)

var choiceLabels = []string{"١", "٢", "٣", "٤", "٥", "٦"}

// MultiChoice is a multiple-choice selector. The caller grades the
// chosen index; the component only handles navigation and reveal
// styling after grading.
type MultiChoice struct {
	Options      []string
	Selected     int
	Revealed     bool
	CorrectIndex int
	ChosenIndex  int
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:      options,
		CorrectIndex: -1,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation. Number keys jump directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "1", "2", "3", "4", "5", "6":
		i := int(kmsg.String()[0] - '1')
		if i < len(m.Options) {
			m.Selected = i
		}
	}

	return m, nil
}

// Reveal colors the options after grading.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.Revealed = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correct
}

// View renders the options.
func (m MultiChoice) View() string {
	var s string
	for i, opt := range m.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(choiceLabels) {
			label = choiceLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case m.Revealed && i == m.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case m.Revealed && i == m.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
