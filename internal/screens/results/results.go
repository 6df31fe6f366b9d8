// Package results shows a stored assessment result with its category
// breakdown and certificate code.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/router"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/screen"
	"github.com/Ajugbo/aiq-platform/internal/screens/verify"
	"github.com/Ajugbo/aiq-platform/internal/store"
	"github.com/Ajugbo/aiq-platform/internal/ui/components"
	"github.com/Ajugbo/aiq-platform/internal/ui/layout"
	"github.com/Ajugbo/aiq-platform/internal/ui/theme"
)

type loadedMsg struct {
	result *store.Result
	err    error
}

// Screen displays one result.
type Screen struct {
	store   store.ResultStore
	result  *store.Result
	loading bool
	err     error
	menu    components.Menu
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New shows res. When res is nil the stored result is loaded from s.
func New(s store.ResultStore, res *store.Result) *Screen {
	r := &Screen{
		store:   s,
		result:  res,
		loading: res == nil && s != nil,
	}
	r.menu = components.NewMenu([]components.MenuItem{
		{Label: "Back to home", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
		{Label: "Verify this certificate", Disabled: s == nil, Action: r.verify},
	})
	return r
}

func (r *Screen) Init() tea.Cmd {
	if !r.loading {
		return nil
	}
	s := r.store
	return func() tea.Msg {
		res, err := s.Get(context.Background())
		return loadedMsg{result: res, err: err}
	}
}

func (r *Screen) Title() string {
	return "Results"
}

func (r *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Home"},
	}
}

func (r *Screen) verify() tea.Cmd {
	if r.result == nil {
		return nil
	}
	next := verify.NewWithCode(certificate.NewVerifier(r.store), r.result.CertificateCode)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (r *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		r.loading = false
		r.result, r.err = msg.result, msg.err
		return r, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		r.menu, cmd = r.menu.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *Screen) View(width, height int) string {
	switch {
	case r.loading:
		return center(width, height, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading result..."))
	case r.err != nil:
		return center(width, height, lipgloss.NewStyle().Foreground(theme.Error).
			Render(fmt.Sprintf("Could not load result: %v", r.err)))
	case r.result == nil:
		return center(width, height, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("No assessment has been completed yet."))
	}

	res := r.result
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Your AIQ"))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(components.LevelColor(res.Level)).
		Bold(true).
		Render(fmt.Sprintf("%d / 100", res.Score))+"\n"+components.LevelBadge(res.Level))

	var bars []string
	for _, c := range scorer.Categories() {
		v := res.Breakdown.Get(c)
		bar := components.ProgressBar{
			Label:   fmt.Sprintf("%-10s", c.DisplayName()),
			Percent: float64(v) / scorer.MaxCategoryScore,
			Width:   cw,
			Suffix:  fmt.Sprintf("%2d/%d", v, scorer.MaxCategoryScore),
			Fill:    components.LevelColor(res.Level),
		}
		bars = append(bars, bar.View())
	}
	sections = append(sections, strings.Join(bars, "\n"))

	cert := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Certificate") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Info).Bold(true).Render(res.CertificateCode) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Issued "+res.Timestamp.Format(certificate.DateLayout))
	sections = append(sections, components.Card(cert, cw))

	sections = append(sections, r.menu.View())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, joinSections(sections)...))
}

func joinSections(sections []string) []string {
	out := make([]string, 0, 2*len(sections))
	for i, s := range sections {
		if i > 0 {
			out = append(out, "")
		}
		out = append(out, s)
	}
	return out
}

func center(width, height int, s string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
