package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/storage"
)

// fakeGame records what the host does to it.
type fakeGame struct {
	id        string
	resets    int
	resizes   []core.RuntimeConfig
	steps     int
	lastIn    core.InputFrame
	lastDt    float64
	state     core.GameState
	cues      []core.Cue
	theme     core.Theme
	size      int
	destroyed int
}

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Resize(cfg core.RuntimeConfig) { g.resizes = append(g.resizes, cfg) }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Destroy() { g.destroyed++ }
func (g *fakeGame) SetTheme(t core.Theme) { g.theme = t }
func (g *fakeGame) SetBoardSize(n int) { g.size = n }
func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake frame")
}

func (g *fakeGame) Step(in core.InputFrame, dt float64) core.StepResult {
	g.steps++
	g.lastIn = in.Clone()
	g.lastDt = dt
	return core.StepResult{State: g.state, Cues: g.cues}
}

func newTestModel(g *fakeGame, store *storage.Store) Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(g, store, cfg)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
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

// tickTime only moves forward, at least 100ms per tick.
var tickTime time.Time

// tick starts the clock if needed and delivers one due tick.
func tick(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	if !m.clock.Running() {
		m.Init()
	}
	if now := time.Now(); now.After(tickTime) {
		tickTime = now
	}
	tickTime = tickTime.Add(100 * time.Millisecond)
	return update(t, m, TickMsg{Time: tickTime, Gen: m.clock.Generation()})
}

func TestModelMountsWidget(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)

	if g.resets != 1 {
		t.Errorf("Reset called %d times at mount", g.resets)
	}
	if m.config.ScreenH != 24-statusHeight || m.screen.Height() != 24-statusHeight {
		t.Errorf("widget height = %d, expected room for the status bar", m.config.ScreenH)
	}
}

func TestModelResizeKeepsState(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Error("resize must not reset the widget")
	}
	if len(g.resizes) != 1 || g.resizes[0].ScreenW != 100 || g.resizes[0].ScreenH != 39 {
		t.Errorf("resizes = %+v", g.resizes)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelTickStepsWidget(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)

	m, cmd := tick(t, m)
	if g.steps != 1 {
		t.Fatalf("steps = %d, expected 1", g.steps)
	}
	if g.lastDt <= 0 || g.lastDt > 250 {
		t.Errorf("dt = %v", g.lastDt)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestModelStaleTickDropped(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)
	m.Init()

	stale := m.clock.Generation() + 1000
	_, cmd := update(t, m, TickMsg{Time: time.Now().Add(time.Second), Gen: stale})
	if g.steps != 0 {
		t.Error("stale tick stepped the widget")
	}
	if cmd != nil {
		t.Error("stale tick chain should end")
	}
}

func TestModelKeysReachWidget(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)

	m, _ = update(t, m, keyRunes("r"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, keyRunes("3"))
	m, _ = tick(t, m)

	for _, a := range []core.Action{core.ActionRestart, core.ActionLeft, core.ActionPad3} {
		if !g.lastIn.Has(a) {
			t.Errorf("widget did not see %v", a)
		}
	}

	// Input is cleared after each step
	tick(t, m)
	if g.lastIn.Has(core.ActionRestart) {
		t.Error("actions leaked into the next frame")
	}
}

func TestModelMouse(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)

	m, _ = update(t, m, tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = tick(t, m)

	px, py := m.config.CellCenter(2, 3)
	p := g.lastIn.Pointer
	if !p.Pressed || !p.Inside || p.X != px || p.Y != py {
		t.Errorf("pointer = %+v, expected press at (%v, %v)", p, px, py)
	}

	// The status bar is off the surface
	m, _ = update(t, m, tea.MouseMsg{X: 2, Y: m.config.ScreenH, Action: tea.MouseActionMotion})
	tick(t, m)
	if g.lastIn.Pointer.Inside {
		t.Error("pointer over the status bar should be outside")
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{id: "merge", state: core.GameState{Score: 64, GameOver: true}}
	m := newTestModel(g, store)
	for i := 0; i < 3; i++ {
		m, _ = tick(t, m)
	}

	scores, _ := store.TopScores("merge", 10)
	if len(scores) != 1 || scores[0].Score != 64 {
		t.Fatalf("scores = %+v, expected one save", scores)
	}

	// A new game over saves again
	g.state.GameOver = false
	m, _ = tick(t, m)
	g.state = core.GameState{Score: 128, GameOver: true}
	tick(t, m)
	if scores, _ = store.TopScores("merge", 10); len(scores) != 2 {
		t.Errorf("expected two saved scores, got %d", len(scores))
	}
}

func TestModelSkipsUnscoredWidgets(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{id: "bounce", state: core.GameState{Score: 10, GameOver: true}}
	m := newTestModel(g, store)
	tick(t, m)

	all, _ := store.GetAllGamesStats()
	if len(all) != 0 {
		t.Errorf("unscored widget saved a score: %v", all)
	}
}

func TestModelQuitDestroysWidget(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)
	m.Init()

	m, cmd := update(t, m, keyRunes("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}
	if g.destroyed != 1 || m.clock.Running() {
		t.Error("quit should destroy the widget and stop the clock")
	}
	if m.View() != "" {
		t.Error("view after quit should be empty")
	}
}

func TestModelBackInSession(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil).Embedded()
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || cmd != nil {
		t.Error("esc inside a session should return to the menu without quitting")
	}
	if g.destroyed != 1 {
		t.Error("leaving should destroy the widget")
	}
}

func TestModelThemeToggle(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)

	m, _ = update(t, m, keyRunes("t"))
	if m.renderer.Theme() != core.ThemeLight || g.theme != core.ThemeLight {
		t.Error("t should switch to the light theme")
	}
	if m.flash == "" {
		t.Error("expected a status message")
	}
}

func TestModelHelpShrinksWidget(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil)
	before := m.config.ScreenH

	m, _ = update(t, m, keyRunes("?"))
	if m.config.ScreenH >= before {
		t.Errorf("help open: widget height %d, was %d", m.config.ScreenH, before)
	}
	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Errorf("view has %d lines, expected the full terminal height", len(lines))
	}
}

func TestModelRemoteDisablesClipboard(t *testing.T) {
	g := &fakeGame{id: "fake"}
	m := newTestModel(g, nil).Remote()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	if !strings.Contains(m.flash, "not available") {
		t.Errorf("flash = %q", m.flash)
	}
}

func TestModelView(t *testing.T) {
	g := &fakeGame{id: "merge", state: core.GameState{Score: 1234}}
	m := newTestModel(g, nil)
	m, _ = tick(t, m)

	out := stripANSI(m.View())
	if !strings.Contains(out, "fake frame") {
		t.Error("view missing widget frame")
	}
	if !strings.Contains(out, "Fake") || !strings.Contains(out, "Score 1,234") {
		t.Errorf("status bar missing title or score:\n%s", out)
	}
}
