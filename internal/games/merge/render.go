package merge

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/showcase/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	// Faintest alpha a popping tile is drawn with
	minPopAlpha = 48
)

// boardSize returns the board footprint in cells, borders included.
func boardSize(n int) (w, h int) {
	return n*cellWidth + 1, n*cellHeight + 1
}

// boardOrigin returns the top-left cell of the board.
func (g *Game) boardOrigin() (x, y int) {
	boardW, _ := boardSize(g.cfg.Size)
	return (g.runtime.ScreenW - boardW) / 2, hudHeight + 1
}

// boardCenter returns the cell at the middle of the board.
func (g *Game) boardCenter() (x, y int) {
	bx, by := g.boardOrigin()
	boardW, boardH := boardSize(g.cfg.Size)
	return bx + boardW/2, by + boardH/2
}

// TileColor returns the color a tile value is drawn with.
func TileColor(v int) core.Color {
	switch v {
	case 2, 4:
		return core.ColorDefault
	case 8:
		return core.ColorSunflower
	case 16:
		return core.ColorOrange
	case 32:
		return core.ColorCoral
	case 64:
		return core.ColorRed
	case 128:
		return core.ColorAqua
	case 256:
		return core.ColorSky
	case 512:
		return core.ColorIris
	case 1024:
		return core.ColorViolet
	case 2048:
		return core.ColorBrand
	default:
		return core.ColorLeaf
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	if g.grid == nil || dst == nil {
		return
	}
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX, boardY := g.boardOrigin()
	boardW, _ := boardSize(g.cfg.Size)

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.confetti.Render(dst, g.runtime.CellW, g.runtime.CellH)
	g.renderOverlays(dst)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := fmt.Sprintf("MERGE %dx%d", g.cfg.Size, g.cfg.Size)
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorIris)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	info := fmt.Sprintf("Max: %d", MaxTile(g.grid))
	dst.DrawText(max(boardX, boardX+boardW-len(info)), 1, info)

	if g.reached {
		msg := fmt.Sprintf("%d reached! Keep going", g.cfg.WinValue)
		dst.DrawTextColored(boardX+(boardW-len(msg))/2, 2, msg, core.ColorLeaf)
	}
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	n := g.cfg.Size
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	for y, row := range g.grid {
		for x, v := range row {
			if v == 0 {
				continue
			}
			text := strconv.Itoa(v)
			padLeft := max((cellWidth-1-len(text))/2, 0)
			cellX := boardX + x*cellWidth + 1 + padLeft
			cellY := boardY + y*cellHeight + 1

			level := g.pop.levelAt(Cell{x, y})
			alpha := uint8(minPopAlpha + core.Clamp(level, 0, 1)*float64(core.AlphaOpaque-minPopAlpha))
			for i, r := range text {
				dst.SetCell(cellX+i, cellY, core.Cell{Rune: r, Color: TileColor(v), Alpha: alpha})
			}
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen) {
	switch {
	case g.phase == PhaseLost:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}
