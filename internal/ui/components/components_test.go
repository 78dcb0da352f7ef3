package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestOrdering_Drag(t *testing.T) {
	o := NewOrdering([]string{"أ", "ب", "ج"})

	// Grab the first item and drag it down one slot.
	o, _ = o.Update(key(' '))
	if !o.Grabbed {
		t.Fatal("space should grab")
	}
	o, _ = o.Update(special(tea.KeyDown))
	o, _ = o.Update(key(' '))

	got := o.Order()
	want := []string{"ب", "أ", "ج"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestOrdering_CursorWithoutGrabDoesNotMoveItems(t *testing.T) {
	o := NewOrdering([]string{"أ", "ب"})
	o, _ = o.Update(special(tea.KeyDown))
	if o.Order()[0] != "أ" {
		t.Error("plain cursor movement must not rearrange")
	}
	if o.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", o.Cursor)
	}
}

func TestOrdering_RevealFreezes(t *testing.T) {
	o := NewOrdering([]string{"أ", "ب"})
	o.Reveal([]string{"أ", "ب"})
	o, _ = o.Update(special(tea.KeyDown))
	if o.Cursor != 0 {
		t.Error("revealed ordering should ignore input")
	}
}

func TestMatch_CycleAndMatches(t *testing.T) {
	m := NewMatch([]string{"مسجد", "مدرسة"}, []string{"صلاة", "تعليم"})

	got := m.Matches()
	if got[0] != "" || got[1] != "" {
		t.Fatalf("matches = %v, want unset rows", got)
	}

	m, _ = m.Update(special(tea.KeyRight)) // row 0 -> first option
	m, _ = m.Update(special(tea.KeyDown))
	m, _ = m.Update(special(tea.KeyRight))
	m, _ = m.Update(special(tea.KeyRight)) // row 1 cycles to second option

	got = m.Matches()
	if got[0] != "صلاة" || got[1] != "تعليم" {
		t.Errorf("matches = %v, want cycled choices", got)
	}
}

func TestMatch_LeftCyclesBackwards(t *testing.T) {
	m := NewMatch([]string{"س"}, []string{"أ", "ب", "ج"})
	m, _ = m.Update(special(tea.KeyLeft))
	if got := m.Matches()[0]; got != "ج" {
		t.Errorf("match = %q, want wrap to last option", got)
	}
}

func TestMatch_EmptyIgnoresKeys(t *testing.T) {
	m := NewMatch(nil, nil)
	for _, msg := range []tea.KeyPressMsg{
		special(tea.KeyRight), special(tea.KeyLeft), key(' '), special(tea.KeyDown),
	} {
		m, _ = m.Update(msg)
	}
	if got := m.Matches(); len(got) != 0 {
		t.Errorf("matches = %v, want none", got)
	}
}

func TestMultiChoice_NumberJump(t *testing.T) {
	mc := NewMultiChoice([]string{"أ", "ب", "ج"})
	mc, _ = mc.Update(key('3'))
	if mc.Selected != 2 {
		t.Errorf("selected = %d, want 2", mc.Selected)
	}
	mc, _ = mc.Update(key('9'))
	if mc.Selected != 2 {
		t.Error("out-of-range number keys are ignored")
	}
}

func TestTextInput_NumericFiltersLetters(t *testing.T) {
	ti := NewTextInput("", true, 10)
	ti, _ = ti.Update(key('a'))
	if ti.Value() != "" {
		t.Error("letters should be filtered in numeric mode")
	}
	for _, r := range "٢٥" {
		ti, _ = ti.Update(key(r))
	}
	if ti.Value() != "٢٥" {
		t.Errorf("value = %q, want Arabic digits accepted", ti.Value())
	}
}
