package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/showcase/internal/registry"
	"github.com/vovakirdan/showcase/internal/storage"
)

const (
	statsCardWidth = 26  // stats panel beside the table
	wideLayout     = 72  // narrower terminals put the stats on one line
	scoreRows      = 100 // rows loaded per widget
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#917FF0"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#917FF0")).Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// boardKeys is the subset of the keymap the scoreboard answers to.
type boardKeys struct {
	scroll, switchTab, back, quit key.Binding
}

func newBoardKeys(k KeyMap) boardKeys {
	return boardKeys{
		scroll:    key.NewBinding(key.WithKeys("up", "down", "w", "s"), key.WithHelp("↑/↓", "scroll")),
		switchTab: key.NewBinding(key.WithKeys("left", "right", "a", "d", "tab", "shift+tab"), key.WithHelp("←/→", "widget")),
		back:      k.Back,
		quit:      k.Quit,
	}
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.scroll, k.switchTab, k.back, k.quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ScoreboardModel lists past scores for the widgets that keep them.
type ScoreboardModel struct {
	games     []registry.GameInfo
	tab       int
	store     *storage.Store
	scores    []storage.ScoreEntry
	stats     *storage.GameStats
	table     table.Model
	help      help.Model
	keys      boardKeys
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first scored widget.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	var games []registry.GameInfo
	for _, g := range registry.List() {
		if storage.Scored(g.ID) {
			games = append(games, g)
		}
	}

	m := ScoreboardModel{
		games:  games,
		store:  store,
		help:   help.New(),
		keys:   newBoardKeys(DefaultKeyMap()),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= wideLayout
}

// newTable sizes the score table to whatever the stats panel leaves.
func (m ScoreboardModel) newTable() table.Model {
	avail := m.width - 6
	if m.wide() {
		avail -= statsCardWidth + 4
	}
	when := min(max(avail-20, 10), 24)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 12},
			{Title: "When", Width: when},
		}),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#917FF0")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads scores and stats for the selected tab.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.tab].ID
		if scores, err := m.store.TopScores(id, scoreRows); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprint(i + 1),
			humanize.Comma(int64(s.Score)),
			humanize.Time(s.CreatedAt),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.switchTab):
			m.switchTab(msg.String())
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchTab(k string) {
	n := len(m.games)
	if n == 0 {
		return
	}
	switch k {
	case "left", "a", "shift+tab":
		m.tab = (m.tab + n - 1) % n
	default:
		m.tab = (m.tab + 1) % n
	}
	m.load()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardPanelStyle.Render(m.scoreTable())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsCard())
	} else if line := m.statsLine(); line != "" {
		body = lipgloss.JoinVertical(lipgloss.Center, boardDimStyle.Render(line), body)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return boardDimStyle.Render("No widget keeps scores")
	}
	parts := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.tab {
			parts[i] = boardActiveTab.Render(g.Title)
		} else {
			parts[i] = boardTabStyle.Render(g.Title)
		}
	}
	return strings.Join(parts, " ")
}

func (m ScoreboardModel) scoreTable() string {
	if len(m.scores) == 0 {
		return boardEmptyStyle.Render("No scores recorded yet.\nFinish a round to set one!")
	}
	return m.table.View()
}

// statsLine is the one-line summary used on narrow terminals.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%s games | avg %s | last played %s",
		humanize.Comma(int64(m.stats.GamesCount)),
		humanize.Comma(int64(m.stats.AvgScore)),
		humanize.Time(m.stats.LastPlayed),
	)
}

func (m ScoreboardModel) statsCard() string {
	rows := [][2]string{{"Games", "0"}, {"Best", "-"}, {"Average", "-"}, {"Total", "-"}, {"Last played", "never"}}
	if s := m.stats; s != nil && s.GamesCount > 0 {
		rows = [][2]string{
			{"Games", humanize.Comma(int64(s.GamesCount))},
			{"Best", humanize.Comma(int64(s.HighScore))},
			{"Average", humanize.CommafWithDigits(s.AvgScore, 1)},
			{"Total", humanize.Comma(s.TotalScore)},
			{"Last played", humanize.Time(s.LastPlayed)},
		}
	}

	inner := statsCardWidth - 4
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Stats"))
	for _, r := range rows {
		gap := max(inner-lipgloss.Width(r[0])-lipgloss.Width(r[1]), 1)
		b.WriteString("\n")
		b.WriteString(boardDimStyle.Render(r[0]) + strings.Repeat(" ", gap) + r[1])
	}
	return boardPanelStyle.Width(statsCardWidth - 2).Render(b.String())
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen. goBack is false when the user quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
