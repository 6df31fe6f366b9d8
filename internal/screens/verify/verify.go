// Package verify is the screen for checking a certificate code.
package verify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/screen"
	"github.com/Ajugbo/aiq-platform/internal/ui/components"
	"github.com/Ajugbo/aiq-platform/internal/ui/layout"
	"github.com/Ajugbo/aiq-platform/internal/ui/theme"
)

// inputLimit leaves room for surrounding spaces around an 11 character code.
const inputLimit = 16

type verifiedMsg struct {
	code    string
	outcome certificate.Verification
	err     error
}

// Screen reads a code and shows the verification outcome.
type Screen struct {
	verifier *certificate.Verifier
	input    components.TextInput
	checking bool
	checked  string
	outcome  *certificate.Verification
	err      error
}

var (
	_ screen.Screen          = (*Screen)(nil)
	_ screen.KeyHintProvider = (*Screen)(nil)
)

// New creates an empty verify screen.
func New(v *certificate.Verifier) *Screen {
	return &Screen{
		verifier: v,
		input:    components.NewTextInput(certificate.Prefix+"XXXXXXXX", true, inputLimit),
	}
}

// NewWithCode creates a verify screen with code already typed in.
func NewWithCode(v *certificate.Verifier, code string) *Screen {
	s := New(v)
	s.input.SetValue(code)
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *Screen) Title() string {
	return "Verify Certificate"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Verify"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case verifiedMsg:
		s.checking = false
		s.checked = msg.code
		if msg.err != nil {
			s.err, s.outcome = msg.err, nil
			s.input.Submit(false)
			return s, nil
		}
		s.err = nil
		s.outcome = &msg.outcome
		s.input.Submit(msg.outcome.Valid)
		return s, nil

	case tea.KeyPressMsg:
		if s.checking {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.check()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if !s.input.Submitted() {
			s.outcome, s.err = nil, nil
		}
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) check() tea.Cmd {
	code := certificate.Normalize(s.input.Value())
	if code == "" {
		return nil
	}
	if s.verifier == nil {
		s.err = errors.New("verification unavailable")
		return nil
	}
	s.checking = true
	v := s.verifier
	return func() tea.Msg {
		out, err := v.Verify(context.Background(), code)
		return verifiedMsg{code: code, outcome: out, err: err}
	}
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Verify an AIQ certificate"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Enter the code printed on the certificate. Case and spaces are ignored."))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")

	switch {
	case s.checking:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Checking..."))
	case s.err != nil:
		b.WriteString(theme.Invalid.Render(fmt.Sprintf("✗ %v", s.err)))
	case s.outcome != nil:
		b.WriteString(components.Card(renderOutcome(s.checked, *s.outcome), cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(b.String()))
}

func renderOutcome(code string, v certificate.Verification) string {
	if !v.Valid {
		return theme.Invalid.Render("✗ "+v.Status) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(code)
	}

	lines := []string{
		theme.Valid.Render("✓ " + v.Status),
		lipgloss.NewStyle().Foreground(theme.Info).Bold(true).Render(code),
	}
	if v.Score != nil {
		lines = append(lines, fmt.Sprintf("Score %d / 100", *v.Score))
	}
	if v.Level != "" {
		lines = append(lines, components.LevelBadge(v.Level))
	}
	if v.Date != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Issued "+v.Date))
	}
	return strings.Join(lines, "\n")
}
