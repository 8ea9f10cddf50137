package core

// Default pixel size of one terminal cell. Widgets simulate in pixels so the
// same numbers work for the terminal grid and the desktop window.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// RuntimeConfig contains configuration passed to widgets at mount and resize.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Host ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic runs
	CellW    int   // Pixel width of one character cell
	CellH    int   // Pixel height of one character cell
	Theme    Theme // Initial color theme
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		CellW:    DefaultCellW,
		CellH:    DefaultCellH,
		Theme:    ThemeDark,
	}
}

// Normalize fills zero cell sizes and tick rate with defaults.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	if c.CellW <= 0 {
		c.CellW = DefaultCellW
	}
	if c.CellH <= 0 {
		c.CellH = DefaultCellH
	}
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
	return c
}

// SurfaceSize returns the drawable area in pixels.
func (c RuntimeConfig) SurfaceSize() (w, h float64) {
	c = c.Normalize()
	return float64(c.ScreenW * c.CellW), float64(c.ScreenH * c.CellH)
}

// CellCenter converts a cell coordinate to the pixel at its center.
func (c RuntimeConfig) CellCenter(x, y int) (px, py float64) {
	c = c.Normalize()
	return (float64(x) + 0.5) * float64(c.CellW), (float64(y) + 0.5) * float64(c.CellH)
}

// CellAt converts a pixel coordinate to the cell containing it.
func (c RuntimeConfig) CellAt(px, py float64) (x, y int) {
	c = c.Normalize()
	return floorDiv(px, c.CellW), floorDiv(py, c.CellH)
}

func floorDiv(v float64, size int) int {
	q := v / float64(size)
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}

// GameState represents the current state of a widget.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated state and any cues raised during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}

// CueKind identifies a sound the host may play.
type CueKind uint8

const (
	CuePad  CueKind = iota + 1 // a memory pad lit up
	CueFail                    // wrong input
	CueWin                     // win celebration
)

// Cue is a sound event raised during a step.
type Cue struct {
	Kind CueKind
	Pad  int // pad index for CuePad
}
