// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ajugbo/aiq-platform/internal/router"
	"github.com/Ajugbo/aiq-platform/internal/screen"
	"github.com/Ajugbo/aiq-platform/internal/screens/home"
	"github.com/Ajugbo/aiq-platform/internal/screens/welcome"
	"github.com/Ajugbo/aiq-platform/internal/store"
	"github.com/Ajugbo/aiq-platform/internal/ui/layout"
)

// statusMsg carries the header summary of the stored result.
type statusMsg string

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  store.ResultStore
	status string
	width  int
	height int
}

// newAppModel creates an AppModel that opens on the welcome screen.
func newAppModel(d home.Deps) AppModel {
	return newAppModelWith(d, welcome.New(func() screen.Screen {
		return home.New(d)
	}))
}

func newAppModelWith(d home.Deps, initial screen.Screen) AppModel {
	return AppModel{
		router: router.New(initial),
		store:  d.Store,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Active().Init(), m.loadStatus())
}

func (m AppModel) loadStatus() tea.Cmd {
	s := m.store
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		res, err := s.Get(context.Background())
		if err != nil || res == nil {
			return statusMsg("")
		}
		return statusMsg(formatStatus(res.Score, string(res.Level)))
	}
}

func formatStatus(score int, level string) string {
	return fmt.Sprintf("%d · %s", score, level)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case screen.ResultSavedMsg:
		m.status = formatStatus(msg.Score, msg.Level)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok && bh.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
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

	v.SetContent(m.render())
	return v
}

func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		if hints := p.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(d home.Deps) error {
	p := tea.NewProgram(newAppModel(d))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
