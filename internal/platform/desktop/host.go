// Package desktop runs pixel widgets in an Ebitengine window.
//
// The host owns the window loop. Ebitengine calls Update at its own tick
// rate; a frame.Clock throttles those calls to the widget's rate, and input
// collected in between is handed to the next widget step.
package desktop

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/showcase/internal/audio"
	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/frame"
	"github.com/vovakirdan/showcase/internal/registry"
)

// Default window size in pixels.
const (
	DefaultWidth  = 960
	DefaultHeight = 640
)

// keyActions maps keys to widget actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyEnter:      core.ActionConfirm,
	ebiten.KeySpace:      core.ActionConfirm,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyDigit1:     core.ActionPad1,
	ebiten.KeyDigit2:     core.ActionPad2,
	ebiten.KeyDigit3:     core.ActionPad3,
	ebiten.KeyDigit4:     core.ActionPad4,
}

// Options configures a window.
type Options struct {
	Width  int
	Height int
	Config core.RuntimeConfig
	Player *audio.Player
	Logger *log.Logger
}

// Host adapts a Drawer widget to ebiten.Game.
type Host struct {
	game   registry.Game
	drawer registry.Drawer
	clock  *frame.Clock
	gen    uint64
	canvas *Canvas
	config core.RuntimeConfig
	input  core.InputFrame
	player *audio.Player
	logger *log.Logger

	keys                     []ebiten.Key // reused by collectInput
	lastCursorX, lastCursorY int
	closed                   bool
}

// New mounts the widget on a fresh canvas. Widgets without a pixel surface
// are rejected with core.ErrSurfaceUnavailable.
func New(game registry.Game, opts Options) (*Host, error) {
	drawer, ok := game.(registry.Drawer)
	if !ok {
		return nil, fmt.Errorf("desktop: %s: %w", game.ID(), core.ErrSurfaceUnavailable)
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	face, err := LoadFace(glyphSize)
	if err != nil {
		return nil, err
	}

	cfg := opts.Config.Normalize()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg.ScreenW, cfg.ScreenH = gridSize(opts.Width, opts.Height, cfg)

	h := &Host{
		game:   game,
		drawer: drawer,
		clock:  frame.NewClock(registry.FrameRate(game, cfg.TickRate)),
		canvas: NewCanvas(opts.Width, opts.Height, face, cfg.Theme),
		config: cfg,
		input:  core.NewInputFrame(),
		player: opts.Player,
		logger: opts.Logger,
	}
	game.Reset(cfg)
	h.gen = h.clock.Start(time.Now())
	h.logger.Debug("widget mounted", "widget", game.ID(), "width", opts.Width, "height", opts.Height)
	return h, nil
}

// gridSize converts a pixel size to whole cells.
func gridSize(w, h int, cfg core.RuntimeConfig) (cols, rows int) {
	return max(w/cfg.CellW, 1), max(h/cfg.CellH, 1)
}

// Update collects input and steps the widget when its clock is due.
func (h *Host) Update() error {
	if h.closed {
		return ebiten.Termination
	}
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		h.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		h.toggleTheme()
	}

	h.collectInput()
	h.clock.Tick(time.Now(), h.gen, h.step)
	return nil
}

func (h *Host) collectInput() {
	// Keys pressed in one Update have no order between them; earlier
	// Updates that did not step keep theirs ahead in the frame.
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	for _, k := range h.keys {
		if a, ok := keyActions[k]; ok {
			h.input.Set(a)
		}
	}

	x, y := ebiten.CursorPosition()
	w, hh := h.canvas.Size()
	inside := x >= 0 && y >= 0 && float64(x) < w && float64(y) < hh
	switch {
	case !inside:
		if h.input.Pointer.Inside {
			h.input.LeavePointer()
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		h.input.PressPointer(float64(x), float64(y))
	case x != h.lastCursorX || y != h.lastCursorY || !h.input.Pointer.Inside:
		h.input.MovePointer(float64(x), float64(y))
	}
	h.lastCursorX, h.lastCursorY = x, y
}

func (h *Host) step(dtMillis float64) {
	res := h.game.Step(h.input, dtMillis)
	if h.player != nil && len(res.Cues) > 0 {
		if err := h.player.Play(res.Cues); err != nil {
			h.logger.Warn("audio disabled", "error", err)
			h.player = nil
		}
	}
	h.input.Clear()
}

func (h *Host) toggleTheme() {
	h.config.Theme = h.config.Theme.Toggle()
	h.canvas.SetTheme(h.config.Theme)
	if themed, ok := h.game.(registry.Themed); ok {
		themed.SetTheme(h.config.Theme)
	}
}

// Draw paints the widget onto the persistent canvas and shows it.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(background(h.config.Theme))
	if h.closed {
		return
	}
	h.drawer.Draw(h.canvas)
	screen.DrawImage(h.canvas.Image(), nil)
}

// Layout follows the window size. A size change resizes the widget
// without resetting it.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, hh := h.canvas.Size()
	if outsideWidth != int(w) || outsideHeight != int(hh) {
		h.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (h *Host) resize(w, hh int) {
	if h.closed || w <= 0 || hh <= 0 {
		return
	}
	h.canvas.Resize(w, hh)
	h.config.ScreenW, h.config.ScreenH = gridSize(w, hh, h.config)
	h.game.Resize(h.config)
	h.logger.Debug("widget resized", "widget", h.game.ID(), "width", w, "height", hh)
}

// Close stops the clock and destroys the widget. Safe to call more than once.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.clock.Stop()
	h.game.Destroy()
	h.canvas.Deallocate()
	h.logger.Debug("widget destroyed", "widget", h.game.ID())
}

// Run opens a window for the widget and blocks until it is closed.
func Run(game registry.Game, opts Options) error {
	h, err := New(game, opts)
	if err != nil {
		return err
	}
	defer h.Close()

	w, hh := h.canvas.Size()
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(w), int(hh))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
