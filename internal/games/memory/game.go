// Package memory implements the sequence memory game.
// The board plays back a growing sequence of pads; the player repeats it.
// One wrong pad ends the game.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/registry"
)

// Board geometry in terminal cells
const (
	maxPadW   = 18
	maxPadH   = 7
	padGapX   = 2
	padGapY   = 1
	headerH   = 3
	minScreen = 20
)

// Package-level config path (set via SetConfigPath before game creation)
var configPath string

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the sequence memory game.
type Game struct {
	machine *Machine
	runtime core.RuntimeConfig
	pads    [PadCount]core.Rect
	paused  bool
}

// New creates a new sequence memory game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "History Sequences"
}

// Reset returns the game to the idle start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mc, err := config.LoadMemory(configPath)
	if err != nil {
		mc = config.DefaultMemoryConfig()
	}
	g.runtime = cfg.Normalize()
	g.paused = false
	g.machine = NewMachine(mc, rand.New(rand.NewSource(cfg.Seed)))
	g.layout()
}

// Resize recomputes the pad layout. The round continues untouched.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	if g.machine == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = cfg.ScreenW, cfg.ScreenH
	g.layout()
}

// layout centers a 2x2 pad grid below the header.
func (g *Game) layout() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	padW := core.Clamp((w-padGapX-4)/2, 4, maxPadW)
	padH := core.Clamp((h-headerH-padGapY-2)/2, 2, maxPadH)

	gridW := 2*padW + padGapX
	gridH := 2*padH + padGapY
	x0 := (w - gridW) / 2
	y0 := headerH + (h-headerH-gridH)/2

	for i := range g.pads {
		col, row := i%2, i/2
		g.pads[i] = core.NewRect(x0+col*(padW+padGapX), y0+row*(padH+padGapY), padW, padH)
	}
}

// PadAt returns the pad under the given cell, or -1.
func (g *Game) PadAt(x, y int) int {
	for i, r := range g.pads {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, dtMillis float64) core.StepResult {
	if g.machine == nil {
		return core.StepResult{State: g.State()}
	}

	m := g.machine
	switch m.Phase() {
	case PhaseIdle:
		if in.Has(core.ActionConfirm) || in.Pointer.Pressed {
			m.Start()
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) || in.Pointer.Pressed {
			m.Start()
		}
	default:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return core.StepResult{State: g.State()}
		}
		g.handlePads(in)
	}

	m.Advance(dtMillis)
	return core.StepResult{State: g.State(), Cues: m.TakeCues()}
}

// handlePads submits every pad press of the tick in the order it arrived.
func (g *Game) handlePads(in core.InputFrame) {
	for _, a := range in.Actions() {
		if pad, ok := a.Pad(); ok {
			g.machine.Submit(pad)
		}
	}
	if in.Pointer.Pressed {
		x, y := g.runtime.CellAt(in.Pointer.X, in.Pointer.Y)
		if pad := g.PadAt(x, y); pad >= 0 {
			g.machine.Submit(pad)
		}
	}
}

// Render draws the header, the pads and any overlay.
func (g *Game) Render(dst *core.Screen) {
	if g.machine == nil || dst == nil {
		return
	}
	dst.Clear()

	if dst.Width() < minScreen || dst.Height() < headerH+4 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	m := g.machine
	dst.SetColored(1, 0, '◆', core.ColorIris)
	dst.DrawTextColored(3, 0, "HISTORY SEQUENCES", core.ColorGray)
	dst.DrawText(3, 1, fmt.Sprintf("Score: %d", m.Score()))

	switch m.Phase() {
	case PhaseAwaitingInput:
		g.drawStatus(dst, "YOUR TURN", core.ColorLeaf)
	case PhasePresenting:
		g.drawStatus(dst, "WATCH", core.ColorCoral)
	}

	lit, level := m.Lit()
	for i, r := range g.pads {
		g.drawPad(dst, r, PadColors[i], i == lit, level)
	}

	switch {
	case m.Phase() == PhaseIdle:
		dst.DrawMessage("▶ START GAME", "Press Enter or click")
	case m.Phase() == PhaseGameOver:
		dst.DrawMessage("Sequence Broken", fmt.Sprintf("Final Score: %d  |  Press R to try again", m.Score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

func (g *Game) drawStatus(dst *core.Screen, text string, c core.Color) {
	x := dst.Width() - len(text) - 2
	dst.SetColored(x-2, 0, '●', c)
	dst.DrawTextColored(x, 0, text, core.ColorGray)
}

// drawPad fills a lit pad with its color at the given intensity and draws
// dark pads as outlines.
func (g *Game) drawPad(dst *core.Screen, r core.Rect, c core.Color, lit bool, level float64) {
	if !lit {
		dst.DrawBoxColored(r, core.ColorGray)
		return
	}
	alpha := uint8(core.Clamp(level, 0, 1) * float64(core.AlphaOpaque))
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetCell(x, y, core.Cell{Rune: '█', Color: c, Alpha: alpha})
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.machine.Score(),
		GameOver: g.machine.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Destroy drops the machine. Safe to call more than once.
func (g *Game) Destroy() {
	g.machine = nil
}

// Machine exposes the state machine for inspection.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Register the game with the registry
func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}
