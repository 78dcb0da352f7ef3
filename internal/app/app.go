// Package app wires the Bubble Tea program: router, frame, and the
// shared dependencies of every screen.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hsaleh/durus/internal/completion"
	"github.com/hsaleh/durus/internal/lesson"
	"github.com/hsaleh/durus/internal/router"
	"github.com/hsaleh/durus/internal/screen"
	"github.com/hsaleh/durus/internal/screens/home"
	"github.com/hsaleh/durus/internal/screens/player"
	"github.com/hsaleh/durus/internal/store"
	"github.com/hsaleh/durus/internal/ui/layout"
)

// Options carries the dependencies built by the CLI layer.
type Options struct {
	Library   *lesson.Library
	StudentID string

	// Progress and Events are nil in preview mode.
	Progress store.ProgressRepo
	Events   store.EventRepo
	Recorder completion.Recorder

	// Week, when set, opens the player directly instead of the picker.
	Week int

	// PreviewDoc runs a single parsed card with no persistence.
	PreviewDoc *lesson.Lesson
}

// initialScreen picks the first screen for the given options.
func initialScreen(opts Options) screen.Screen {
	if opts.PreviewDoc != nil {
		return player.NewPreview(opts.PreviewDoc)
	}
	if opts.Week > 0 {
		return player.New(opts.Library, opts.Week, opts.StudentID, opts.Progress, opts.Events, opts.Recorder)
	}
	return home.New(opts.Library, opts.StudentID, opts.Progress, opts.Events, opts.Recorder)
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	studentID string
	width     int
	height    int
}

func newAppModel(opts Options) AppModel {
	return AppModel{
		router:    router.New(initialScreen(opts)),
		studentID: opts.StudentID,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.studentID, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "إنهاء"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), footerHints...)
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
