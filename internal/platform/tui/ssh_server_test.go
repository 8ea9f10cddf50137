package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/showcase/internal/core"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestSessionWidgetRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), nil)

	// bounce is first in the sorted list
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateWidget || m.widget == nil {
		t.Fatalf("state = %v after selecting a widget", m.state)
	}
	g := m.widget.game.(*fakeGame)
	if g.resets != 1 {
		t.Error("widget was not mounted")
	}
	if !m.widget.remote || !m.widget.embedded {
		t.Error("session widgets must be embedded and remote")
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu || m.widget != nil {
		t.Fatalf("state = %v after esc", m.state)
	}
	if g.destroyed != 1 {
		t.Error("widget not destroyed on the way out")
	}
	if m.quitting {
		t.Error("esc from a widget should not end the session")
	}
}

func TestSessionMergeSize(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), nil)

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateMergeSize {
		t.Fatalf("state = %v, expected the size selector", m.state)
	}

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state != stateWidget {
		t.Fatalf("state = %v, expected the widget", m.state)
	}
	if size := m.widget.game.(*fakeGame).size; size != 5 {
		t.Errorf("board size = %d, expected 5", size)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), nil)

	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != stateScores {
		t.Fatalf("state = %v, expected scores", m.state)
	}
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != stateMenu || m.quitting {
		t.Error("esc from scores should return to the menu")
	}

	m = updateSession(t, m, keyRunes("q"))
	if !m.quitting || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}

func TestSessionResizeReachesWidget(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), nil)
	m = updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.config.ScreenW != 120 || m.widget.config.ScreenW != 120 {
		t.Error("resize did not reach the widget")
	}
}

func TestResolveHostKey(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "keys", "host_key")

	got, err := resolveHostKey(want)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("resolveHostKey = %q, want %q", got, want)
	}
	if fi, err := os.Stat(filepath.Dir(want)); err != nil || !fi.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.HostKeyPath != DefaultHostKeyPath {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.MaxSessions <= 0 || cfg.IdleTimeout <= 0 {
		t.Errorf("limits not set: %+v", cfg)
	}
}
