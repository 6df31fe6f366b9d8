package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Ajugbo/aiq-platform/internal/router"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/screen"
	"github.com/Ajugbo/aiq-platform/internal/screens/home"
	"github.com/Ajugbo/aiq-platform/internal/store"
	"github.com/Ajugbo/aiq-platform/internal/ui/layout"
)

type stubScreen struct {
	title    string
	back     bool
	received []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "stub:" + s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) HandlesBack() bool    { return s.back }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "F1", Description: "Stub"}}
}

func escKey() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEscape} }

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestEscPopsWhenStacked(t *testing.T) {
	m := newAppModelWith(home.Deps{}, &stubScreen{title: "base"})
	m.router.Push(&stubScreen{title: "top"})

	_, cmd := update(t, m, escKey())
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestEscAtRootIsNoop(t *testing.T) {
	m := newAppModelWith(home.Deps{}, &stubScreen{title: "base"})
	if _, cmd := update(t, m, escKey()); cmd != nil {
		t.Error("esc at the root should do nothing")
	}
}

func TestEscForwardedToBackHandler(t *testing.T) {
	top := &stubScreen{title: "top", back: true}
	m := newAppModelWith(home.Deps{}, &stubScreen{title: "base"})
	m.router.Push(top)

	_, cmd := update(t, m, escKey())
	if cmd != nil {
		t.Errorf("expected no pop, got %T", cmd())
	}
	if len(top.received) != 1 {
		t.Fatalf("expected esc to reach the screen, got %d messages", len(top.received))
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModelWith(home.Deps{}, &stubScreen{title: "base"})
	_, cmd := update(t, m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestResultSavedUpdatesHeader(t *testing.T) {
	m := newAppModelWith(home.Deps{}, &stubScreen{title: "base"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(t, m, screen.ResultSavedMsg{Score: 64, Level: "AI Competent"})

	out := m.render()
	if !strings.Contains(out, "64 · AI Competent") {
		t.Error("header should show the saved score")
	}
	if !strings.Contains(out, "F1") {
		t.Error("footer should use the screen's key hints")
	}
	if !strings.Contains(out, "stub:base") {
		t.Error("content should render the active screen")
	}
}

func TestInitLoadsStatusFromStore(t *testing.T) {
	mem := store.NewMemory()
	err := mem.Put(context.Background(), &store.Result{
		Score:           91,
		Level:           scorer.LevelExpert,
		Breakdown:       scorer.Breakdown{Clarity: 23, Depth: 23, Efficiency: 22, Creativity: 23},
		CertificateCode: "AIQ-ZZZZ0000",
		Timestamp:       time.Now().UTC(),
	})
	if err != nil {
		t.Fatal(err)
	}

	m := newAppModelWith(home.Deps{Store: mem}, &stubScreen{title: "base"})
	cmd := m.loadStatus()
	if cmd == nil {
		t.Fatal("expected status command")
	}
	m, _ = update(t, m, cmd())
	if m.status != "91 · AI Expert" {
		t.Errorf("status = %q", m.status)
	}
}

func TestTooSmall(t *testing.T) {
	m := newAppModelWith(home.Deps{}, &stubScreen{title: "base"})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}
