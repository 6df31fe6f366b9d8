package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/router"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/screen"
	"github.com/Ajugbo/aiq-platform/internal/screens/questionnaire"
	"github.com/Ajugbo/aiq-platform/internal/screens/results"
	"github.com/Ajugbo/aiq-platform/internal/screens/verify"
	"github.com/Ajugbo/aiq-platform/internal/session"
	"github.com/Ajugbo/aiq-platform/internal/store"
	"github.com/Ajugbo/aiq-platform/internal/ui/components"
	"github.com/Ajugbo/aiq-platform/internal/ui/layout"
)

// Deps are the services the home menu hands to the screens it opens.
type Deps struct {
	Store    store.ResultStore
	Sessions *session.Service
	Verifier *certificate.Verifier
}

const (
	itemTakeTest = iota
	itemViewResult
	itemVerify
	itemExit
)

type resultLoadedMsg struct {
	result *store.Result
	err    error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	labels  []string
	result  *store.Result
	loadErr error
}

var (
	_ screen.Screen          = (*HomeScreen)(nil)
	_ screen.Resumer         = (*HomeScreen)(nil)
	_ screen.KeyHintProvider = (*HomeScreen)(nil)
)

// New creates a new HomeScreen. View Result stays disabled until a stored
// result has been loaded.
func New(d Deps) *HomeScreen {
	labels := []string{"TAKE ASSESSMENT", "VIEW RESULT", "VERIFY CERTIFICATE", "EXIT"}

	items := []components.MenuItem{
		itemTakeTest: {Label: labels[itemTakeTest], Action: func() tea.Cmd {
			return push(questionnaire.New(d.Sessions, d.Store))
		}},
		itemViewResult: {Label: labels[itemViewResult], Disabled: true, Action: func() tea.Cmd {
			return push(results.New(d.Store, nil))
		}},
		itemVerify: {Label: labels[itemVerify], Action: func() tea.Cmd {
			return push(verify.New(d.Verifier))
		}},
		itemExit: {Label: labels[itemExit], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:   d,
		menu:   components.NewMenu(items),
		labels: labels,
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// Resume reloads the last result when the home screen is revealed again.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	s := h.deps.Store
	if s == nil {
		return nil
	}
	return func() tea.Msg {
		res, err := s.Get(context.Background())
		return resultLoadedMsg{result: res, err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultLoadedMsg:
		h.result, h.loadErr = msg.result, msg.err
		h.menu.Items[itemViewResult].Disabled = h.result == nil
		if h.menu.Items[h.menu.Selected].Disabled {
			h.menu.Selected = itemTakeTest
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var level scorer.Level
	if h.result != nil {
		level = h.result.Level
	}

	disabled := make(map[int]bool, len(h.menu.Items))
	for i, item := range h.menu.Items {
		disabled[i] = item.Disabled
	}

	sections := []string{renderTitle(cw, compact)}
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(level), cw))
	}
	sections = append(sections, renderStatsBar(h.result, h.loadErr, cw, compact))
	if compact {
		sections = append(sections, renderMenuCompact(h.labels, h.menu.Selected, cw, disabled))
	} else {
		sections = append(sections, renderMenu(h.labels, h.menu.Selected, cw, disabled))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
