package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hsaleh/durus/internal/ui/theme"
)

// Ordering lets the learner rearrange a list of items. Space grabs or
// releases the item under the cursor; moving the cursor with a grabbed
// item drags it along.
type Ordering struct {
	Items    []string
	Cursor   int
	Grabbed  bool
	Revealed bool
	correct  map[int]bool
}

// NewOrdering creates an ordering component over a shuffled copy of
// items. The caller supplies the presentation order.
func NewOrdering(items []string) Ordering {
	cp := make([]string, len(items))
	copy(cp, items)
	return Ordering{Items: cp}
}

// Update handles cursor movement and item dragging.
func (o Ordering) Update(msg tea.Msg) (Ordering, tea.Cmd) {
	if o.Revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Cursor > 0 {
			if o.Grabbed {
				o.Items[o.Cursor], o.Items[o.Cursor-1] = o.Items[o.Cursor-1], o.Items[o.Cursor]
			}
			o.Cursor--
		}
	case "down", "j":
		if o.Cursor < len(o.Items)-1 {
			if o.Grabbed {
				o.Items[o.Cursor], o.Items[o.Cursor+1] = o.Items[o.Cursor+1], o.Items[o.Cursor]
			}
			o.Cursor++
		}
	case "space", " ":
		o.Grabbed = !o.Grabbed
	}

	return o, nil
}

// Order returns the current arrangement.
func (o Ordering) Order() []string {
	out := make([]string, len(o.Items))
	copy(out, o.Items)
	return out
}

// Reveal colors each position by correctness against want.
func (o *Ordering) Reveal(want []string) {
	o.Revealed = true
	o.Grabbed = false
	o.correct = make(map[int]bool, len(o.Items))
	for i, item := range o.Items {
		o.correct[i] = i < len(want) && item == want[i]
	}
}

// View renders the list.
func (o Ordering) View() string {
	var s string
	for i, item := range o.Items {
		prefix := "  "
		if i == o.Cursor && !o.Revealed {
			prefix = "▸ "
			if o.Grabbed {
				prefix = "◆ "
			}
		}

		line := fmt.Sprintf("%s%d. %s", prefix, i+1, item)

		switch {
		case o.Revealed && o.correct[i]:
			s += theme.Correct.Render(line) + "\n"
		case o.Revealed:
			s += theme.Incorrect.Render(line) + "\n"
		case i == o.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	if !o.Revealed {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("  مسافة للإمساك بالعنصر ثم الأسهم لتحريكه") + "\n"
	}
	return s
}
