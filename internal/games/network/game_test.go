package network

import (
	"strings"
	"testing"

	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func TestGamePointerFromInput(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	in := core.NewInputFrame()
	in.MovePointer(320, 192)
	g.Step(in, 16.67)
	if x, y, ok := g.Engine().Pointer(); !ok || x != 320 || y != 192 {
		t.Errorf("pointer = (%v, %v, %v), expected (320, 192, true)", x, y, ok)
	}

	// The pointer position persists while it stays inside
	in.Clear()
	g.Step(in, 16.67)
	if _, _, ok := g.Engine().Pointer(); !ok {
		t.Error("pointer should stay active between moves")
	}

	in.LeavePointer()
	g.Step(in, 16.67)
	if _, _, ok := g.Engine().Pointer(); ok {
		t.Error("pointer should be cleared after leaving")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(2))
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame(), 16.67)
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	if !strings.Contains(out, "The Network") {
		t.Error("expected the title label")
	}
	if !strings.Contains(out, "•") {
		t.Error("expected points in the frame")
	}
	if !strings.ContainsAny(out, "─│╱╲") {
		t.Error("expected at least one edge stroke with 60 points on an 80x24 surface")
	}
}

func TestGameThemeChangesEdgeColor(t *testing.T) {
	line, pointer := EdgeColors(core.ThemeDark)
	if line != core.ColorMist || pointer != core.ColorSnow {
		t.Errorf("dark edge colors = %v, %v", line, pointer)
	}
	line, pointer = EdgeColors(core.ThemeLight)
	if line != core.ColorSlate || pointer != core.ColorInk {
		t.Errorf("light edge colors = %v, %v", line, pointer)
	}

	g := New()
	var _ registry.Themed = g
	g.Reset(testConfig(3))
	g.SetTheme(core.ThemeLight)
	if g.theme != core.ThemeLight {
		t.Error("SetTheme did not apply")
	}
}

func TestGameResizeKeepsPopulation(t *testing.T) {
	g := New()
	g.Reset(testConfig(4))
	before := g.Engine().Points()

	cfg := testConfig(4)
	cfg.ScreenW, cfg.ScreenH = 20, 10
	g.Resize(cfg)

	after := g.Engine().Points()
	if len(after) != len(before) {
		t.Fatalf("population changed %d -> %d", len(before), len(after))
	}
	for i, p := range after {
		if p.X > 160 || p.Y > 160 {
			t.Errorf("point %d outside 160x160 after resize", i)
		}
	}
}

func TestGameDestroy(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))
	g.Destroy()
	g.Destroy()
	g.Step(core.NewInputFrame(), 16.67)
	g.Render(core.NewScreen(10, 4))
	if g.Engine() != nil {
		t.Error("Destroy should release the engine")
	}
}
