// Package network implements the force network widget.
// Drifting points link up when close; the pointer pulls the network
// toward itself and a click scatters it.
package network

import (
	"math/rand"

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

// Game implements the force network widget.
type Game struct {
	engine  *Engine
	runtime core.RuntimeConfig
	theme   core.Theme
	tick    uint64
	paused  bool
}

// New creates a new force network widget.
func New() *Game {
	return &Game{}
}

// ID returns the widget identifier.
func (g *Game) ID() string {
	return "network"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "The Network"
}

// Reset scatters a fresh population.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	nc, err := config.LoadNetwork(configPath)
	if err != nil {
		nc = config.DefaultNetworkConfig()
	}
	g.runtime = cfg.Normalize()
	g.theme = cfg.Theme
	g.tick = 0
	g.paused = false

	w, h := g.runtime.SurfaceSize()
	g.engine = NewEngine(nc, rand.New(rand.NewSource(cfg.Seed)))
	g.engine.Init(nc.Population, w, h)
}

// Resize clamps the points into the new surface.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	if g.engine == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = cfg.ScreenW, cfg.ScreenH
	g.engine.Resize(g.runtime.SurfaceSize())
}

// SetTheme switches the edge colors.
func (g *Game) SetTheme(t core.Theme) {
	g.theme = t
}

// Step advances the network by one tick.
func (g *Game) Step(in core.InputFrame, dtMillis float64) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		next := g.runtime
		next.Seed += int64(g.tick) + 1
		g.Reset(next)
	}

	p := in.Pointer
	if p.Inside {
		g.engine.PointerMove(p.X, p.Y)
	} else {
		g.engine.PointerLeave()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	if p.Pressed {
		g.engine.Click(p.X, p.Y)
	}

	g.engine.Tick(dtMillis)
	g.tick++
	return core.StepResult{State: g.State()}
}

// Draw paints the network onto a pixel canvas.
func (g *Game) Draw(c core.Canvas) {
	if g.engine == nil || c == nil {
		return
	}
	c.Clear()
	g.engine.Paint(c, g.theme)
}

// Render draws the network into the character grid.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil || dst == nil {
		return
	}
	dst.Clear()
	g.Draw(core.NewCellCanvas(dst, g.runtime.CellW, g.runtime.CellH))

	dst.DrawTextColored(2, 1, g.Title(), core.ColorGray)
	dst.DrawTextColored(2, 2, "Interactive Canvas", core.ColorGray)

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current widget state. The network never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Destroy drops the points. Safe to call more than once.
func (g *Game) Destroy() {
	g.engine = nil
}

// Engine exposes the simulation for inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Register the widget with the registry
func init() {
	registry.Register("network", func() registry.Game {
		return New()
	})
}
