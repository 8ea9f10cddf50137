// Package merge implements the merge-tile sliding puzzle on an N x N board.
package merge

import (
	"math/rand"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/fx"
	"github.com/vovakirdan/showcase/internal/registry"
)

// Phase is the game outcome so far.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon           // win value reached; play continues
	PhaseLost          // no move left
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Package-level variables for config
var (
	configPath   string
	selectedSize int
)

// SetConfigPath sets a custom config file path for the game.
func SetConfigPath(path string) {
	configPath = path
}

// SetSize sets the board size for the next Reset. 0 keeps the configured size.
func SetSize(n int) {
	selectedSize = n
}

// GetSize returns the currently selected board size.
func GetSize() int {
	return selectedSize
}

// Game implements the merge-tile puzzle.
type Game struct {
	cfg     config.MergeConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64
	size    int // per-instance board size, overrides SetSize

	grid    Grid
	score   int
	phase   Phase
	reached bool // win value seen at least once

	paused   bool
	tooSmall bool

	pop      *popIn
	confetti *fx.Confetti
	cues     []core.Cue
}

// New creates a new merge-tile game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("merge", func() registry.Game {
		return New()
	})
}

// SetBoardSize picks the board size for this instance. It applies on the
// next Reset.
func (g *Game) SetBoardSize(n int) {
	g.size = n
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "merge"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Merge Tiles"
}

// Reset starts a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mc, err := config.LoadMerge(configPath)
	if err != nil {
		mc = config.DefaultMergeConfig()
	}
	switch {
	case g.size > 0:
		mc = mc.WithSize(g.size)
	case selectedSize > 0:
		mc = mc.WithSize(selectedSize)
	}
	g.cfg = mc
	g.runtime = cfg.Normalize()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.confetti = fx.NewConfetti(g.rng)
	g.start()
	g.checkScreenSize()
}

// start clears the board and places the starting tiles.
func (g *Game) start() {
	g.tick = 0
	g.score = 0
	g.phase = PhasePlaying
	g.reached = false
	g.paused = false
	g.pop = nil
	g.cues = nil
	g.confetti.Stop()

	g.grid = NewGrid(g.cfg.Size)
	for i := 0; i < g.cfg.StartingTiles; i++ {
		g.spawnTile()
	}
}

// restart begins a new board with a different seed.
func (g *Game) restart() {
	g.runtime.Seed += int64(g.tick) + 1
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	g.confetti = fx.NewConfetti(g.rng)
	g.start()
}

// Resize adapts the layout. The board is kept.
func (g *Game) Resize(cfg core.RuntimeConfig) {
	if g.grid == nil {
		return
	}
	g.runtime.ScreenW, g.runtime.ScreenH = cfg.ScreenW, cfg.ScreenH
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	boardW, boardH := boardSize(g.cfg.Size)
	g.tooSmall = g.runtime.ScreenW < boardW+2 || g.runtime.ScreenH < boardH+hudHeight+2
}

// spawnTile places a 2 (or a 4 with FourChance) in a random empty cell.
func (g *Game) spawnTile() (Cell, bool) {
	empty := EmptyCells(g.grid)
	if len(empty) == 0 {
		return Cell{}, false
	}

	cell := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < g.cfg.FourChance {
		value = 4
	}
	g.grid[cell.Y][cell.X] = value
	return cell, true
}

// Move plays one move. Moves on a lost board are ignored; an unknown
// direction returns core.ErrInvalidInput and changes nothing.
func (g *Game) Move(d Direction) error {
	if !d.Valid() {
		return core.ErrInvalidInput
	}
	if g.grid == nil || g.phase == PhaseLost {
		return nil
	}
	if !CanMove(g.grid) {
		g.phase = PhaseLost
		return nil
	}

	res := Move(g.grid, d)
	if !res.Changed {
		return nil
	}

	g.grid = res.Grid
	if cell, ok := g.spawnTile(); ok {
		g.pop = newPopIn(cell, g.cfg.PopMillis)
	}
	g.score += res.Gained

	if !g.reached {
		for _, v := range res.Merged {
			if v == g.cfg.WinValue {
				g.win()
				break
			}
		}
	}
	if !CanMove(g.grid) {
		g.phase = PhaseLost
	}
	return nil
}

// win enters the won phase and fires the celebration.
func (g *Game) win() {
	g.reached = true
	g.phase = PhaseWon
	g.cues = append(g.cues, core.Cue{Kind: core.CueWin})

	cx, cy := g.boardCenter()
	px, py := g.runtime.CellCenter(cx, cy)
	g.confetti.Fire(px, py)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, dtMillis float64) core.StepResult {
	if g.grid == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase != PhaseLost {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Moves apply in the order they were pressed.
	for _, a := range in.Actions() {
		if d, ok := DirectionFor(a); ok {
			g.Move(d)
		}
	}

	if g.pop != nil && g.pop.update(dtMillis) {
		g.pop = nil
	}
	g.confetti.Tick()

	cues := g.cues
	g.cues = nil
	return core.StepResult{State: g.State(), Cues: cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.grid == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseLost,
		Paused:   g.paused || g.tooSmall,
	}
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid {
	return Clone(g.grid)
}

// Score returns the score.
func (g *Game) Score() int {
	return g.score
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Destroy drops the board and effects. Safe to call more than once.
func (g *Game) Destroy() {
	g.grid = nil
	g.pop = nil
	if g.confetti != nil {
		g.confetti.Stop()
	}
}
