package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

func newTestModel(embedded bool) Model {
	cfg := config.DefaultRunnerConfig()
	ctrl := runner.NewController(cfg, runner.Deps{}, nil)
	return NewModel(ctrl, Options{
		Width:    80,
		Height:   24,
		Viewport: cfg.Viewport,
		Embedded: embedded,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelLayoutFollowsTerminal(t *testing.T) {
	m := newTestModel(false)
	w, h := m.ctrl.Session().Viewport()
	if w != 800 || h != 480 {
		t.Fatalf("viewport = (%v, %v), expected (800, 480)", w, h)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	w, h = m.ctrl.Session().Viewport()
	if w != 400 || h != 240 {
		t.Errorf("viewport after resize = (%v, %v), expected (400, 240)", w, h)
	}
}

func TestModelStartsOnJump(t *testing.T) {
	m := newTestModel(false)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatal("starting a run should schedule a tick")
	}
	if m.ctrl.Session().State() != runner.StateRunning {
		t.Errorf("state = %v, expected running", m.ctrl.Session().State())
	}
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := newTestModel(false)
	ticket, ok := m.ctrl.Handle(core.ActionJump, time.Now())
	if !ok {
		t.Fatal("jump should start a run")
	}

	_, cmd := update(t, m, TickMsg{Ticket: ticket + 1, Time: time.Now()})
	if cmd != nil {
		t.Error("a stale tick must not schedule another")
	}
	if m.ctrl.Session().Frames() != 0 {
		t.Error("a stale tick must not step the session")
	}

	_, cmd = update(t, m, TickMsg{Ticket: ticket, Time: time.Now()})
	if cmd == nil {
		t.Error("a current tick should schedule the next one")
	}
	if m.ctrl.Session().Frames() != 1 {
		t.Errorf("frames = %d, expected 1", m.ctrl.Session().Frames())
	}
}

func TestModelBack(t *testing.T) {
	t.Run("standalone quits", func(t *testing.T) {
		m := newTestModel(false)
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() || cmd == nil {
			t.Error("back on the idle screen should quit to the menu")
		}
	})

	t.Run("embedded stays", func(t *testing.T) {
		m := newTestModel(true)
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() || cmd != nil {
			t.Error("embedded back should flag the parent without quitting")
		}
	})

	t.Run("ignored while running", func(t *testing.T) {
		m := newTestModel(false)
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.BackToMenu() {
			t.Error("back should be ignored during a run")
		}
	})
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(false)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.ctrl.Loop().Running() {
		t.Error("quitting should stop the loop")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewShowsHUD(t *testing.T) {
	m := newTestModel(false)
	m.render()
	if got := m.screen.String(); !strings.Contains(got, "Score") || !strings.Contains(got, "RUNNER") {
		t.Errorf("idle frame missing HUD or overlay:\n%s", got)
	}
}
