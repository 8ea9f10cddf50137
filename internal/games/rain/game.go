// Package rain implements the glyph rain widget.
// Columns of random glyphs fall down the surface and fade behind themselves.
// Glyphs near the pointer light up.
package rain

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/registry"
)

// Package-level config path (set via SetConfigPath before game creation)
var configPath string

// SetConfigPath sets a custom config file path for the widget.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the glyph rain widget.
//
// Each tick produces a batch of glyphs. The batch is painted once: onto the
// widget's own trail buffer when rendered to a terminal, or onto the host's
// persistent canvas when drawn on the desktop.
type Game struct {
	engine  *Engine
	cfg     config.RainConfig
	runtime core.RuntimeConfig
	theme   core.Theme
	trail   *core.Screen
	pending [][]Glyph // one batch per tick not yet drawn
	pointer core.Pointer
	tick    uint64
	paused  bool
}

// New creates a new glyph rain widget.
func New() *Game {
	return &Game{cfg: config.DefaultRainConfig()}
}

// ID returns the widget identifier.
func (g *Game) ID() string {
	return "rain"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Glyph Rain"
}

// FrameRate asks the host for the classic slower rain cadence.
func (g *Game) FrameRate() int {
	return g.cfg.Rate
}

// Reset starts a fresh rain.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rc, err := config.LoadRain(configPath)
	if err != nil {
		rc = config.DefaultRainConfig()
	}
	g.cfg = rc
	g.runtime = cfg.Normalize()
	g.theme = cfg.Theme
	g.tick = 0
	g.paused = false
	g.pending = nil
	g.pointer = core.Pointer{}

	g.engine = NewEngine(rc, rand.New(rand.NewSource(cfg.Seed)))
	g.engine.Init(g.runtime.SurfaceSize())
	g.trail = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
}

// Resize keeps every column cursor and only adds columns when the surface grows.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	if g.engine == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = cfg.ScreenW, cfg.ScreenH
	g.engine.Resize(g.runtime.SurfaceSize())
	g.trail.Resize(cfg.ScreenW, cfg.ScreenH)
}

// SetTheme switches the palette; the trail keeps its old colors until it fades.
func (g *Game) SetTheme(t core.Theme) {
	g.theme = t
}

// Step advances every column by one row.
func (g *Game) Step(in core.InputFrame, dtMillis float64) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.trail.Clear()
		g.pending = g.pending[:0]
		g.engine.Init(g.runtime.SurfaceSize())
	}
	g.pointer = in.Pointer
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Tick reuses its buffer, and the host may step again before drawing.
	g.pending = append(g.pending, slices.Clone(g.engine.Tick()))
	g.tick++
	return core.StepResult{State: g.State()}
}

// Draw paints every tick produced since the last draw over the existing
// canvas contents, fading once per tick. Hosts must keep the canvas
// between frames.
func (g *Game) Draw(c core.Canvas) {
	if g.engine == nil || c == nil || len(g.pending) == 0 {
		return
	}
	for _, batch := range g.pending {
		g.engine.Paint(c, batch, g.pointer, g.theme)
	}
	g.pending = g.pending[:0]
}

// Render copies the trail buffer to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil || dst == nil {
		return
	}
	if len(g.pending) > 0 {
		g.Draw(core.NewCellCanvas(g.trail, g.runtime.CellW, g.runtime.CellH))
	}
	dst.Clear()
	dst.Blit(g.trail, 0, 0)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current widget state. The rain never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Destroy drops the engine and the trail buffer. Safe to call more than once.
func (g *Game) Destroy() {
	g.engine = nil
	g.trail = nil
	g.pending = nil
}

// Engine exposes the simulation for inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Register the widget with the registry
func init() {
	registry.Register("rain", func() registry.Game {
		return New()
	})
}
