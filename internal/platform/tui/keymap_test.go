package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/showcase/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", keyRunes("w"), core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"s", keyRunes("s"), core.ActionDown, false},
		{"a", keyRunes("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", keyRunes(" "), core.ActionConfirm, false},
		{"pad 1", keyRunes("1"), core.ActionPad1, false},
		{"pad 4", keyRunes("4"), core.ActionPad4, false},
		{"pause", keyRunes("p"), core.ActionPause, false},
		{"restart", keyRunes("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", keyRunes("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", keyRunes("z"), core.ActionNone, false},
		{"pad 5 is unbound", keyRunes("5"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey = (%v, %v), expected (%v, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapHostKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want HostAction
	}{
		{keyRunes("t"), HostTheme},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, HostScreenshot},
		{tea.KeyMsg{Type: tea.KeyCtrlY}, HostCopy},
		{keyRunes("?"), HostHelp},
		{keyRunes("s"), HostNone},
	}
	for _, tt := range tests {
		if got := km.MapHostKey(tt.msg); got != tt.want {
			t.Errorf("MapHostKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{keyRunes("k"), MenuActionUp},
		{keyRunes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{keyRunes("q"), MenuActionQuit},
		{keyRunes("x"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapMouseToFrame(t *testing.T) {
	cfg := core.DefaultConfig()
	in := core.NewInputFrame()

	MapMouseToFrame(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionMotion}, cfg, &in)
	if !in.Pointer.Moved || in.Pointer.Pressed {
		t.Errorf("motion: %+v", in.Pointer)
	}
	if x, y := cfg.CellAt(in.Pointer.X, in.Pointer.Y); x != 4 || y != 2 {
		t.Errorf("pointer maps back to cell (%d, %d)", x, y)
	}

	MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, cfg, &in)
	if in.Pointer.Pressed {
		t.Error("right button should not press")
	}
	MapMouseToFrame(tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, cfg, &in)
	if !in.Pointer.Pressed {
		t.Error("left button should press")
	}
}
