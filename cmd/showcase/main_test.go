package main

import (
	"testing"

	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/games/bounce"
	"github.com/vovakirdan/showcase/internal/games/merge"
	"github.com/vovakirdan/showcase/internal/registry"
)

func TestPort(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:22", "22"},
		{"nonsense", "nonsense"},
	}
	for _, tt := range tests {
		if got := port(tt.addr); got != tt.want {
			t.Errorf("port(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestResolveThemeExplicit(t *testing.T) {
	defer func() { flagTheme = "auto" }()

	flagTheme = "light"
	if resolveTheme() != core.ThemeLight {
		t.Error("--theme light not honored")
	}
	flagTheme = "dark"
	if resolveTheme() != core.ThemeDark {
		t.Error("--theme dark not honored")
	}
}

func TestSetupRejectsBadFlags(t *testing.T) {
	defer func() {
		flagTheme = "auto"
		flagLogLevel = "info"
	}()

	flagTheme = "sepia"
	if err := setup(rootCmd, nil); err == nil {
		t.Error("unknown theme accepted")
	}
	flagTheme = "auto"
	flagLogLevel = "loud"
	if err := setup(rootCmd, nil); err == nil {
		t.Error("unknown log level accepted")
	}
	flagLogLevel = "debug"
	if err := setup(rootCmd, nil); err != nil {
		t.Errorf("valid flags rejected: %v", err)
	}
}

func TestSnapshotPerWidget(t *testing.T) {
	for _, w := range registry.List() {
		g, err := registry.Create(w.ID)
		if err != nil {
			t.Fatal(err)
		}
		if snapshot(g) == nil {
			t.Errorf("%s has no snapshot", w.ID)
		}
	}

	if _, ok := snapshot(bounce.New()).(bounce.Snapshot); !ok {
		t.Error("bounce snapshot has the wrong type")
	}
	if _, ok := snapshot(merge.New()).(merge.Snapshot); !ok {
		t.Error("merge snapshot has the wrong type")
	}
}

func TestNotes(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"bounce", "window"},
		{"merge", "scores"},
		{"memory", "scores"},
	}
	for _, tt := range tests {
		if got := notes(tt.id); got != tt.want {
			t.Errorf("notes(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
