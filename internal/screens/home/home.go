// Package home lists the available weekly cards and launches lessons.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hsaleh/durus/internal/completion"
	"github.com/hsaleh/durus/internal/lesson"
	"github.com/hsaleh/durus/internal/router"
	"github.com/hsaleh/durus/internal/screen"
	"github.com/hsaleh/durus/internal/screens/player"
	"github.com/hsaleh/durus/internal/store"
	"github.com/hsaleh/durus/internal/ui/theme"
)

// cardRow is one selectable lesson in the list.
type cardRow struct {
	info      lesson.CardInfo
	completed bool
	inFlight  bool // has saved progress but not completed
	percent   int  // completion percentage, when completed
}

// libraryLoadedMsg carries the card list joined with saved progress.
type libraryLoadedMsg struct {
	rows []cardRow
	err  error
}

// HomeScreen is the lesson picker.
type HomeScreen struct {
	library   *lesson.Library
	studentID string
	progress  store.ProgressRepo
	events    store.EventRepo
	recorder  completion.Recorder

	rows     []cardRow
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. progress and events may be nil when
// running without a database.
func New(lib *lesson.Library, studentID string, progress store.ProgressRepo, events store.EventRepo, recorder completion.Recorder) *HomeScreen {
	return &HomeScreen{
		library:   lib,
		studentID: studentID,
		progress:  progress,
		events:    events,
		recorder:  recorder,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadLibrary()
}

func (h *HomeScreen) Title() string {
	return "الدروس الأسبوعية"
}

// loadLibrary lists the cards and joins each with saved progress.
func (h *HomeScreen) loadLibrary() tea.Cmd {
	return func() tea.Msg {
		cards, err := h.library.List()
		if err != nil {
			return libraryLoadedMsg{err: err}
		}

		byWeek := make(map[int]*store.Progress)
		if h.progress != nil {
			saved, err := h.progress.List(context.Background(), h.studentID)
			if err != nil {
				return libraryLoadedMsg{err: err}
			}
			for _, p := range saved {
				byWeek[p.Week] = p
			}
		}

		rows := make([]cardRow, 0, len(cards))
		for _, c := range cards {
			row := cardRow{info: c}
			if p := byWeek[c.Week]; p != nil {
				row.completed = p.Completed
				row.inFlight = !p.Completed
				if p.Completed && p.Assessment.Total > 0 {
					row.percent = p.Assessment.Score * 100 / p.Assessment.Total
				}
			}
			rows = append(rows, row)
		}
		return libraryLoadedMsg{rows: rows}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case libraryLoadedMsg:
		if msg.err != nil {
			h.errMsg = msg.err.Error()
			return h, nil
		}
		h.rows = msg.rows
		h.loaded = true
		return h, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if h.selected > 0 {
				h.selected--
			}
		case "down", "j":
			if h.selected < len(h.rows)-1 {
				h.selected++
			}
		case "enter":
			return h.openSelected()
		case "q":
			return h, tea.Quit
		}
	}
	return h, nil
}

// openSelected pushes the player for the highlighted week.
func (h *HomeScreen) openSelected() (screen.Screen, tea.Cmd) {
	if h.selected < 0 || h.selected >= len(h.rows) {
		return h, nil
	}
	week := h.rows[h.selected].info.Week
	return h, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: player.New(h.library, week, h.studentID, h.progress, h.events, h.recorder),
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return center(width, theme.Incorrect.Render("خطأ: "+h.errMsg))
	}
	if !h.loaded {
		return center(width, theme.Hint.Render("جارٍ قراءة الدروس..."))
	}
	if len(h.rows) == 0 {
		return center(width, theme.Body.Render("لا توجد دروس بعد. أضف ملفات الدروس إلى مجلد lessons."))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(center(width, theme.Title.Render("اختر درس الأسبوع")))
	b.WriteString("\n\n")

	for i, row := range h.rows {
		label := fmt.Sprintf("الأسبوع %d — %s", row.info.Week, row.info.Title)

		var badge string
		switch {
		case row.completed:
			badge = lipgloss.NewStyle().Foreground(theme.Success).Render(
				fmt.Sprintf("  ✓ مكتمل %d%%", row.percent))
		case row.inFlight:
			badge = lipgloss.NewStyle().Foreground(theme.Accent).Render("  … متابعة")
		}

		prefix := "    "
		style := theme.Unselected
		if i == h.selected {
			prefix = "  ▸ "
			style = theme.Selected
		}
		b.WriteString(center(width, style.Render(prefix+label)+badge))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(width, theme.Hint.Render("Enter للدخول • q للخروج")))
	return b.String()
}

func center(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
