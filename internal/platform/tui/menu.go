package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/registry"
	"github.com/vovakirdan/showcase/internal/storage"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#651FFF"))
	menuSubtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#72D2BE"))
	menuBlurbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	menuBadgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#917FF0"))
	menuBestStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FCD748"))
)

// Rows above the first item, and rows per item (title and blurb).
const (
	menuListTop   = 5
	menuRowHeight = 2
	menuNameWidth = 20
)

// blurbs describe each widget under its title.
var blurbs = map[string]string{
	"bounce":  "Click to kick the balls around",
	"rain":    "Falling glyphs that light up near the pointer",
	"network": "Points pulled toward the pointer, linked when close",
	"memory":  "Repeat the sequence on pads 1-4",
	"merge":   "Slide and merge tiles to reach 2048",
}

// MenuItem represents a selectable widget in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int  // best saved score, scored widgets only
	Window bool // can also run in a desktop window
}

// MenuModel is the Bubble Tea model for the widget picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered widget with its best score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, 0, len(infos))
	for _, info := range infos {
		items = append(items, newMenuItem(info, store))
	}

	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

func newMenuItem(info registry.GameInfo, store *storage.Store) MenuItem {
	item := MenuItem{GameID: info.ID, Title: info.Title}
	if store != nil && storage.Scored(info.ID) {
		if best, err := store.HighScore(info.ID); err == nil {
			item.Best = best
		}
	}
	if g, err := registry.Create(info.ID); err == nil {
		_, item.Window = g.(registry.Drawer)
		g.Destroy()
	}
	return item
}

// Init implements tea.Model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = max(min(m.cursor+1, len(m.items)-1), 0)
	case MenuActionSelect:
		return m.choose()
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse moves the cursor with the pointer and selects on click.
func (m MenuModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	i, ok := m.itemAt(msg.Y)
	if !ok {
		return m, nil
	}
	m.cursor = i
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return m.choose()
	}
	return m, nil
}

// itemAt maps a terminal row to a menu item.
func (m MenuModel) itemAt(y int) (int, bool) {
	if y < menuListTop {
		return 0, false
	}
	i := (y - menuListTop) / menuRowHeight
	return i, i < len(m.items)
}

func (m MenuModel) choose() (tea.Model, tea.Cmd) {
	if len(m.items) == 0 {
		return m, nil
	}
	item := m.items[m.cursor]
	m.selected = &item
	return m, tea.Quit
}

// View implements tea.Model.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S H O W C A S E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuSubtitleStyle.Render("Pick a widget"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		b.WriteString(centerText(m.itemLine(i, item), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(menuBlurbStyle.Render(fmt.Sprintf("  %-42s", blurbs[item.GameID])), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "↑/↓ or mouse: Navigate  |  Enter/click: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuSubtitleStyle.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

// itemLine renders the title row: cursor, name, badges and best score.
func (m MenuModel) itemLine(i int, item MenuItem) string {
	name := fmt.Sprintf("  %-*s", menuNameWidth, item.Title)
	if i == m.cursor {
		name = menuCursorStyle.Render(fmt.Sprintf("> %-*s", menuNameWidth, item.Title))
	}

	badge := "        "
	if item.Window {
		badge = menuBadgeStyle.Render("[window]")
	}

	best := strings.Repeat(" ", 14)
	if item.Best > 0 {
		best = menuBestStyle.Render(fmt.Sprintf("  best %7s", humanize.Comma(int64(item.Best))))
	}
	return name + badge + best
}

// Selected returns the chosen item, or nil.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user asked to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard reports whether the user asked for the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring without ANSI codes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the user picked in RunMenu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu shows the menu until the user picks something.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
