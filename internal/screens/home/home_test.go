package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Ajugbo/aiq-platform/internal/certificate"
	"github.com/Ajugbo/aiq-platform/internal/router"
	"github.com/Ajugbo/aiq-platform/internal/scorer"
	"github.com/Ajugbo/aiq-platform/internal/screens/questionnaire"
	"github.com/Ajugbo/aiq-platform/internal/screens/results"
	"github.com/Ajugbo/aiq-platform/internal/screens/verify"
	"github.com/Ajugbo/aiq-platform/internal/session"
	"github.com/Ajugbo/aiq-platform/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps() (Deps, *store.Memory) {
	mem := store.NewMemory()
	return Deps{
		Store:    mem,
		Sessions: session.NewService(mem),
		Verifier: certificate.NewVerifier(mem),
	}, mem
}

func putResult(t *testing.T, mem *store.Memory, level scorer.Level) {
	t.Helper()
	err := mem.Put(context.Background(), &store.Result{
		Score:           82,
		Level:           level,
		Breakdown:       scorer.Breakdown{Clarity: 21, Depth: 20, Efficiency: 20, Creativity: 21},
		CertificateCode: "AIQ-7KQ2M9XA",
		Timestamp:       time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
}

// loaded runs the screen's Init and applies the loaded result.
func loaded(t *testing.T, h *HomeScreen) *HomeScreen {
	t.Helper()
	cmd := h.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	h.Update(cmd())
	return h
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestHome_Title(t *testing.T) {
	d, _ := testDeps()
	if New(d).Title() != "Home" {
		t.Error("unexpected title")
	}
}

func TestHome_ViewResultDisabledWithoutResult(t *testing.T) {
	d, _ := testDeps()
	h := loaded(t, New(d))

	if !h.menu.Items[itemViewResult].Disabled {
		t.Error("View Result should be disabled with an empty store")
	}
	if !strings.Contains(h.View(120, 40), "NO ASSESSMENT YET") {
		t.Error("stats bar should show the empty state")
	}

	h.Update(specialKey(tea.KeyDown))
	if h.menu.Selected != itemVerify {
		t.Errorf("down should skip the disabled item, selected = %d", h.menu.Selected)
	}
}

func TestHome_ShowsLastResult(t *testing.T) {
	d, mem := testDeps()
	putResult(t, mem, scorer.LevelProficient)
	h := loaded(t, New(d))

	if h.menu.Items[itemViewResult].Disabled {
		t.Error("View Result should be enabled")
	}
	view := h.View(120, 40)
	for _, want := range []string{"82/100", "AI Proficient", "AIQ-7KQ2M9XA"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHome_MenuActions(t *testing.T) {
	d, mem := testDeps()
	putResult(t, mem, scorer.LevelCompetent)
	h := loaded(t, New(d))

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*questionnaire.Screen); !ok {
		t.Error("first item should open the questionnaire")
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd = h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*results.Screen); !ok {
		t.Error("second item should open results")
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd = h.Update(specialKey(tea.KeyEnter))
	if _, ok := pushed(t, cmd).(*verify.Screen); !ok {
		t.Error("third item should open verify")
	}

	h.Update(specialKey(tea.KeyDown))
	_, cmd = h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("exit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestHome_ResumeReloads(t *testing.T) {
	d, mem := testDeps()
	h := loaded(t, New(d))
	putResult(t, mem, scorer.LevelExpert)

	cmd := h.Resume()
	if cmd == nil {
		t.Fatal("expected reload command")
	}
	h.Update(cmd())
	if h.result == nil || h.result.Level != scorer.LevelExpert {
		t.Errorf("result not refreshed: %+v", h.result)
	}
}

func TestHome_CompactView(t *testing.T) {
	d, _ := testDeps()
	h := loaded(t, New(d))
	if !strings.Contains(h.View(80, 16), "A · I · Q") {
		t.Error("compact view should use the short title")
	}
}

func TestMascotFor(t *testing.T) {
	tests := []struct {
		level scorer.Level
		want  MascotVariant
	}{
		{"", MascotIdle},
		{scorer.LevelNovice, MascotNudge},
		{scorer.LevelBeginner, MascotNudge},
		{scorer.LevelCompetent, MascotIdle},
		{scorer.LevelProficient, MascotCelebrating},
		{scorer.LevelExpert, MascotCelebrating},
	}
	for _, tt := range tests {
		if got := mascotFor(tt.level); got != tt.want {
			t.Errorf("mascotFor(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
