// Package bounce implements the bouncing balls widget.
// Balls fall under gravity, lose energy on every bounce and settle on the
// floor. Clicking kicks nearby balls up and away; hovering nudges them.
package bounce

import (
	"math/rand"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/registry"
)

const label = " GRAVITY "

// Package-level config path (set via SetConfigPath before game creation)
var configPath string

// SetConfigPath sets a custom config file path for the widget.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the bouncing balls widget.
type Game struct {
	engine  *Engine
	runtime core.RuntimeConfig
	tick    uint64
	paused  bool
	hover   bool
}

// New creates a new bouncing balls widget.
func New() *Game {
	return &Game{}
}

// ID returns the widget identifier.
func (g *Game) ID() string {
	return "bounce"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bouncing Balls"
}

// Reset seeds a fresh set of balls.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	bc, err := config.LoadBounce(configPath)
	if err != nil {
		bc = config.DefaultBounceConfig()
	}
	g.runtime = cfg.Normalize()
	g.tick = 0
	g.paused = false
	g.hover = false

	w, h := g.runtime.SurfaceSize()
	g.engine = NewEngine(bc, rand.New(rand.NewSource(cfg.Seed)))
	g.engine.Init(bc.Population, w, h)
}

// Resize adapts to a new surface without reseeding.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	if g.engine == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = cfg.ScreenW, cfg.ScreenH
	g.engine.Resize(g.runtime.SurfaceSize())
}

// Step advances the simulation by one tick.
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
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	p := in.Pointer
	g.hover = p.Inside
	if p.Pressed {
		g.engine.Impulse(p.X, p.Y)
	} else if p.Moved && p.Inside {
		g.engine.HoverNudge(p.X, p.Y)
	}

	g.engine.Tick(dtMillis)
	g.tick++
	return core.StepResult{State: g.State()}
}

// Draw paints the balls onto a pixel canvas.
func (g *Game) Draw(c core.Canvas) {
	if g.engine == nil || c == nil {
		return
	}
	c.Clear()
	g.engine.Paint(c)
}

// Render draws the balls into the character grid.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil || dst == nil {
		return
	}
	dst.Clear()
	g.Draw(core.NewCellCanvas(dst, g.runtime.CellW, g.runtime.CellH))

	// The label gets out of the way while the pointer is over the surface
	if !g.hover {
		dst.SetColored(1, 0, '●', core.ColorSunflower)
		dst.DrawText(2, 0, label)
	}
	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current widget state. The toy never ends.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Destroy drops the bodies. Safe to call more than once.
func (g *Game) Destroy() {
	g.engine = nil
}

// Engine exposes the simulation for inspection.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Register the widget with the registry
func init() {
	registry.Register("bounce", func() registry.Game {
		return New()
	})
}
