package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/showcase/internal/core"
)

// boardChoice is one entry of the merge size picker.
type boardChoice struct {
	n     int
	label string
}

var boardChoices = []boardChoice{
	{3, "quick, little room to recover"},
	{4, "the classic board"},
	{5, "roomy, long runs"},
}

var (
	previewCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	previewBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#917FF0")).Padding(0, 1)
)

// MergeSizeModel asks for the merge board size before a round starts.
type MergeSizeModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	chosen    int // board size once picked
	quitting  bool
	back      bool
}

// NewMergeSizeModel starts with the smallest board highlighted.
func NewMergeSizeModel(width, height int) MergeSizeModel {
	return MergeSizeModel{width: width, height: height, keyMapper: NewKeyMapper()}
}

func (m MergeSizeModel) Init() tea.Cmd {
	return nil
}

func (m MergeSizeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		// Digits pick a size directly.
		for _, c := range boardChoices {
			if msg.String() == fmt.Sprint(c.n) {
				m.chosen = c.n
				return m, tea.Quit
			}
		}
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(boardChoices)-1)
		case MenuActionSelect:
			m.chosen = boardChoices[m.cursor].n
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MergeSizeModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		menuTitleStyle.Render("M E R G E"),
		"",
		menuSubtitleStyle.Render("Board size"),
		"",
	}
	for i, c := range boardChoices {
		row := fmt.Sprintf("  %dx%d  %s", c.n, c.n, menuBlurbStyle.Render(c.label))
		if i == m.cursor {
			row = menuCursorStyle.Render(fmt.Sprintf("> %dx%d", c.n, c.n)) + "  " + menuBlurbStyle.Render(c.label)
		}
		lines = append(lines, row)
	}
	list := lipgloss.JoinVertical(lipgloss.Left, lines...)

	body := list
	if m.width >= 60 {
		body = lipgloss.JoinHorizontal(lipgloss.Center, list, "    ", preview(boardChoices[m.cursor].n))
	}

	help := menuSubtitleStyle.Render("↑/↓ or 3-5: Choose  |  Enter: Play  |  Esc: Back  |  Q: Quit")
	view := lipgloss.JoinVertical(lipgloss.Center, body, "", help)
	return "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
}

// preview draws an empty n by n board.
func preview(n int) string {
	row := strings.TrimSpace(strings.Repeat("· ", n))
	rows := make([]string, n)
	for i := range rows {
		rows[i] = previewCellStyle.Render(row)
	}
	return previewBoxStyle.Render(strings.Join(rows, "\n"))
}

// Selected returns the chosen size, or 0 while the user is still choosing.
func (m MergeSizeModel) Selected() int {
	return m.chosen
}

func (m MergeSizeModel) IsQuitting() bool {
	return m.quitting
}

func (m MergeSizeModel) WantsBack() bool {
	return m.back
}

// RunMergeSizeSelector shows the size picker. It returns 0 when the user
// backs out or quits.
func RunMergeSizeSelector(cfg core.RuntimeConfig) (int, error) {
	final, err := tea.NewProgram(NewMergeSizeModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen()).Run()
	if err != nil {
		return 0, err
	}
	if m, ok := final.(MergeSizeModel); ok {
		return m.Selected(), nil
	}
	return 0, nil
}
