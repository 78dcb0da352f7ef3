package home

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hsaleh/durus/internal/completion"
	"github.com/hsaleh/durus/internal/lesson"
)

const homeTestCard = `{
  "week": 1,
  "title": "درس الجمع",
  "concepts": [
    {"title": "الجمع", "flow": [{"type": "explain", "text": "شرح"}]}
  ]
}`

func testHome(t *testing.T) *HomeScreen {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "week1.json"), []byte(homeTestCard), 0o644); err != nil {
		t.Fatal(err)
	}
	return New(lesson.NewLibrary(dir), "hala", nil, nil, completion.NopRecorder{})
}

func load(t *testing.T, h *HomeScreen) {
	t.Helper()
	msg := h.loadLibrary()()
	h.Update(msg)
	if !h.loaded {
		t.Fatalf("library failed to load: %v", h.errMsg)
	}
}

func TestHome_ListsCards(t *testing.T) {
	h := testHome(t)
	load(t, h)

	if len(h.rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(h.rows))
	}
	view := h.View(80, 24)
	if !strings.Contains(view, "درس الجمع") {
		t.Error("view should show the card title")
	}
}

func TestHome_EnterPushesPlayer(t *testing.T) {
	h := testHome(t)
	load(t, h)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should push the player")
	}
}

func TestHome_EmptyLibrary(t *testing.T) {
	h := New(lesson.NewLibrary(t.TempDir()), "hala", nil, nil, completion.NopRecorder{})
	load(t, h)

	if view := h.View(80, 24); !strings.Contains(view, "لا توجد دروس") {
		t.Error("empty library should explain itself")
	}
}
