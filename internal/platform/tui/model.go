package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/showcase/internal/audio"
	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/frame"
	"github.com/vovakirdan/showcase/internal/registry"
	"github.com/vovakirdan/showcase/internal/storage"
)

// statusHeight is the number of rows below the widget used by the status bar.
const statusHeight = 1

// flashDuration is how long a status message stays visible.
const flashDuration = 2 * time.Second

var (
	statusTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#917FF0"))
	statusTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusFlashStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FCD748"))
)

// Model is the Bubble Tea model that hosts one widget.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	renderer  *Renderer
	clock     *frame.Clock
	store     *storage.Store
	player    *audio.Player
	logger    *log.Logger
	keyMapper *KeyMapper
	help      help.Model

	config     core.RuntimeConfig
	width      int // terminal size
	height     int
	inputFrame core.InputFrame
	gameState  core.GameState

	showHelp   bool
	flash      string
	flashUntil time.Time

	embedded   bool // inside a session: Back returns to the menu
	remote     bool // no local clipboard or filesystem for the viewer
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel mounts the widget and creates a model for it. cfg carries the
// terminal size; the widget gets the area above the status bar.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	cfg = cfg.Normalize()

	m := Model{
		game:       game,
		renderer:   NewRenderer(cfg.Theme),
		clock:      frame.NewClock(registry.FrameRate(game, cfg.TickRate)),
		store:      store,
		logger:     log.Default(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	cfg.ScreenH = max(cfg.ScreenH-m.chromeHeight(), 1)
	m.config = cfg
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	game.Reset(cfg)
	m.gameState = game.State()
	return m
}

// WithAudio plays widget cues through p.
func (m Model) WithAudio(p *audio.Player) Model {
	m.player = p
	return m
}

// WithLogger replaces the default logger.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// Embedded makes Back return to the enclosing session instead of quitting.
func (m Model) Embedded() Model {
	m.embedded = true
	return m
}

// Remote disables screenshots and clipboard copies, which would land on
// the server rather than with the viewer.
func (m Model) Remote() Model {
	m.remote = true
	return m
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	gen := m.clock.Start(time.Now())
	m.logger.Debug("widget mounted", "widget", m.game.ID(), "rate", m.clock.Interval())
	return tickCmd(m.clock.Interval(), gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Y >= m.config.ScreenH {
			m.inputFrame.LeavePointer()
		} else {
			MapMouseToFrame(msg, m.config, &m.inputFrame)
		}
		return m, nil

	case tea.BlurMsg:
		m.inputFrame.LeavePointer()
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapHostKey(msg) {
	case HostTheme:
		m.toggleTheme()
		return m, nil
	case HostScreenshot:
		m.saveScreenshot()
		return m, nil
	case HostCopy:
		m.copyFrame()
		return m, nil
	case HostHelp:
		m.showHelp = !m.showHelp
		m.layout()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.unmount()
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		m.unmount()
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The widget keeps its state.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.layout()
	return m, nil
}

// layout sizes the widget area to the terminal minus the status rows.
func (m *Model) layout() {
	m.config.ScreenW = m.width
	m.config.ScreenH = max(m.height-m.chromeHeight(), 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config)
}

func (m *Model) chromeHeight() int {
	if !m.showHelp {
		return statusHeight
	}
	return statusHeight + lipgloss.Height(m.help.FullHelpView(m.keyMapper.Keys().FullHelp()))
}

// handleTick processes frame clock ticks. Ticks from a stopped or
// replaced clock end their chain here.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.clock.Generation() || !m.clock.Running() {
		return m, nil
	}
	if m.flash != "" && msg.Time.After(m.flashUntil) {
		m.flash = ""
	}

	m.clock.Tick(msg.Time, msg.Gen, func(dt float64) {
		m.step(dt)
	})

	return m, tickCmd(m.clock.Interval(), msg.Gen)
}

func (m *Model) step(dtMillis float64) {
	result := m.game.Step(m.inputFrame, dtMillis)
	m.gameState = result.State
	m.playCues(result.Cues)
	m.recordScore()

	// Clear input for next frame
	m.inputFrame.Clear()
}

func (m *Model) playCues(cues []core.Cue) {
	if m.player == nil || len(cues) == 0 {
		return
	}
	if err := m.player.Play(cues); err != nil {
		m.logger.Warn("audio disabled", "error", err)
		m.player = nil
	}
}

// recordScore saves the score once per game over, for scored widgets only.
func (m *Model) recordScore() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	id := m.game.ID()
	if m.store == nil || !storage.Scored(id) || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(id, m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "widget", id, "error", err)
		return
	}
	m.logger.Info("score saved", "widget", id, "score", m.gameState.Score)
	m.setFlash("Score saved")
}

func (m *Model) toggleTheme() {
	t := m.renderer.Theme().Toggle()
	m.renderer.SetTheme(t)
	m.config.Theme = t
	if themed, ok := m.game.(registry.Themed); ok {
		themed.SetTheme(t)
	}
	m.setFlash("Theme: " + t.String())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.remote {
		m.setFlash("Screenshots are not available over SSH")
		return
	}
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".showcase", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setFlash("Saved " + filepath.Base(path))
}

// copyFrame puts the plain-text frame on the system clipboard.
func (m *Model) copyFrame() {
	if m.remote || clipboard.Unsupported {
		m.setFlash("Clipboard not available")
		return
	}
	m.game.Render(m.screen)
	if err := clipboard.WriteAll(m.screen.String()); err != nil {
		m.logger.Warn("copy failed", "error", err)
		m.setFlash("Copy failed")
		return
	}
	m.setFlash("Frame copied")
}

func (m *Model) setFlash(text string) {
	m.flash = text
	m.flashUntil = time.Now().Add(flashDuration)
}

// unmount stops the clock and releases the widget.
func (m *Model) unmount() {
	m.clock.Stop()
	m.game.Destroy()
	m.logger.Debug("widget unmounted", "widget", m.game.ID())
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user left the widget.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(m.renderer.Render(m.screen))
	b.WriteByte('\n')
	b.WriteString(m.statusBar())
	if m.showHelp {
		b.WriteByte('\n')
		b.WriteString(m.help.FullHelpView(m.keyMapper.Keys().FullHelp()))
	}
	return b.String()
}

// statusBar shows the title, score or flash message on the left and the
// short help on the right.
func (m Model) statusBar() string {
	left := statusTitleStyle.Render(m.game.Title())
	switch {
	case m.flash != "":
		left += "  " + statusFlashStyle.Render(m.flash)
	case storage.Scored(m.game.ID()):
		left += "  " + statusTextStyle.Render("Score "+humanize.Comma(int64(m.gameState.Score)))
	}

	right := m.help.ShortHelpView(m.keyMapper.Keys().ShortHelp())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// Run starts the Bubble Tea program for a single widget.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player *audio.Player, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithAudio(player).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
