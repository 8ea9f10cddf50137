package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/showcase/internal/core"
	"github.com/vovakirdan/showcase/internal/registry"
	"github.com/vovakirdan/showcase/internal/storage"
)

func init() {
	registry.Register("merge", func() registry.Game { return &fakeGame{id: "merge"} })
	registry.Register("bounce", func() registry.Game { return &fakeGame{id: "bounce"} })
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestMenuListsWidgets(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("merge", 2048)

	m := NewMenuModel(store, core.DefaultConfig())
	if len(m.items) != 2 {
		t.Fatalf("items = %+v", m.items)
	}
	for _, item := range m.items {
		if item.GameID == "merge" && item.Best != 2048 {
			t.Errorf("merge best = %d", item.Best)
		}
		if item.GameID == "bounce" && item.Best != 0 {
			t.Error("unscored widget should have no best score")
		}
	}
	if out := stripANSI(m.View()); !strings.Contains(out, "best   2,048") {
		t.Errorf("view missing best score:\n%s", out)
	}
}

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Error("cursor moved above the first item")
	}
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("cursor = %d, expected the last item", m.cursor)
	}

	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "merge" || cmd == nil {
		t.Errorf("selected = %+v", m.Selected())
	}
}

func TestMenuMouse(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	// Hovering the second item's blurb row moves the cursor
	m, cmd := updateMenu(t, m, tea.MouseMsg{X: 10, Y: menuListTop + menuRowHeight + 1, Action: tea.MouseActionMotion})
	if m.cursor != 1 || cmd != nil {
		t.Errorf("cursor = %d after hover", m.cursor)
	}

	// Clicks above the list are ignored
	m, _ = updateMenu(t, m, tea.MouseMsg{Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Selected() != nil {
		t.Error("click on the title selected an item")
	}

	m, cmd = updateMenu(t, m, tea.MouseMsg{Y: menuListTop, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Selected() == nil || m.Selected().GameID != "bounce" || cmd == nil {
		t.Errorf("click selected %+v", m.Selected())
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	sb, _ := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !sb.WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}

	q, _ := updateMenu(t, m, keyRunes("q"))
	if !q.IsQuitting() || q.View() != "" {
		t.Error("q should quit")
	}
}

func TestMergeSizeSelector(t *testing.T) {
	m := NewMergeSizeModel(80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MergeSizeModel)
	if m.Selected() != 0 {
		t.Error("nothing should be selected yet")
	}
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MergeSizeModel)
	if m.Selected() != 4 || cmd == nil {
		t.Errorf("selected = %d, expected 4", m.Selected())
	}

	back, _ := NewMergeSizeModel(80, 24).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.(MergeSizeModel).WantsBack() {
		t.Error("esc should go back")
	}
	if !strings.Contains(stripANSI(NewMergeSizeModel(80, 24).View()), "5x5") {
		t.Error("view should list the 5x5 board")
	}

	digit, cmd := NewMergeSizeModel(80, 24).Update(keyRunes("5"))
	if digit.(MergeSizeModel).Selected() != 5 || cmd == nil {
		t.Error("5 should pick the 5x5 board")
	}
	if out := stripANSI(NewMergeSizeModel(80, 24).View()); !strings.Contains(out, "· · ·") {
		t.Errorf("wide view should preview the board:\n%s", out)
	}
}

func TestScoreboardShowsScoredWidgets(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	store.SaveScore("merge", 1500)

	m := NewScoreboardModel(store, 100, 30)
	if len(m.games) != 1 || m.games[0].ID != "merge" {
		t.Fatalf("scoreboard tabs = %+v", m.games)
	}
	out := stripANSI(m.View())
	if !strings.Contains(out, "1,500") || !strings.Contains(out, "Stats") || !strings.Contains(out, "Games") {
		t.Errorf("wide scoreboard view:\n%s", out)
	}

	narrow := NewScoreboardModel(store, 60, 30)
	if out := stripANSI(narrow.View()); !strings.Contains(out, "1 games") || strings.Contains(out, "Stats") {
		t.Errorf("narrow scoreboard view:\n%s", out)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
