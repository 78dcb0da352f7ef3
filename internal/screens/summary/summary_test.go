package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hsaleh/durus/internal/completion"
	"github.com/hsaleh/durus/internal/engine"
	"github.com/hsaleh/durus/internal/lesson"
)

func testSummary() *SummaryScreen {
	return New(
		&lesson.Lesson{Week: 3, Title: "جدول الضرب"},
		engine.Score{Score: 3, Total: 4},
		&completion.Certificate{ID: "cert-123", Week: 3},
	)
}

func TestSummaryScreen_Title(t *testing.T) {
	s := testSummary()
	if s.Title() != "ملخص الدرس" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := testSummary().View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "cert-123") {
		t.Error("expected the certificate ID in the view")
	}
	if !strings.Contains(view, "3 / 4") {
		t.Error("expected the score in the view")
	}
}

func TestSummaryScreen_NoCertificate(t *testing.T) {
	s := New(&lesson.Lesson{Week: 1, Title: "تجربة"}, engine.Score{}, nil)
	view := s.View(80, 24)
	if strings.Contains(view, "شهادة") {
		t.Error("preview summaries should not show a certificate block")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		_, cmd := testSummary().Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Errorf("expected a pop command for key %q", code)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	if len(testSummary().KeyHints()) == 0 {
		t.Error("expected key hints")
	}
}
