package merge

import (
	"fmt"

	"github.com/vovakirdan/showcase/internal/core"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// DirectionFor maps a directional action to a Direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Grid is a square board indexed [row][col]. Zero is an empty cell;
// every other value is a power of two.
type Grid [][]int

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// NewGrid returns an empty n x n grid.
func NewGrid(n int) Grid {
	g := make(Grid, n)
	for y := range g {
		g[y] = make([]int, n)
	}
	return g
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func Clone(g Grid) Grid {
	out := make(Grid, len(g))
	for y, row := range g {
		out[y] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether two grids hold the same tiles.
func Equal(a, b Grid) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}

// MoveResult is the outcome of sliding a grid.
type MoveResult struct {
	Grid    Grid
	Gained  int   // sum of the tiles produced by merges
	Changed bool  // whether any tile moved or merged
	Merged  []int // values produced by merges, in row order
}

// slideRow compacts a row toward index 0. Each tile merges at most once
// per move, so [2, 2, 4] becomes [4, 4, 0], never [8, 0, 0].
func slideRow(row []int) (out []int, gained int, merged []int) {
	out = make([]int, len(row))
	writePos := 0
	canMerge := false

	for _, v := range row {
		if v == 0 {
			continue
		}
		if canMerge && out[writePos-1] == v {
			out[writePos-1] *= 2
			gained += out[writePos-1]
			merged = append(merged, out[writePos-1])
			canMerge = false
			continue
		}
		out[writePos] = v
		writePos++
		canMerge = true
	}
	return out, gained, merged
}

func reverse(row []int) []int {
	out := make([]int, len(row))
	for i, v := range row {
		out[len(row)-1-i] = v
	}
	return out
}

func transpose(g Grid) Grid {
	out := NewGrid(len(g))
	for y := range g {
		for x := range g[y] {
			out[x][y] = g[y][x]
		}
	}
	return out
}

// Move slides every tile in the given direction and merges equal
// neighbours. The input grid is never modified. An unknown direction
// returns an unchanged copy.
func Move(g Grid, d Direction) MoveResult {
	res := MoveResult{Grid: Clone(g)}
	if !d.Valid() {
		return res
	}

	work := g
	if d == DirUp || d == DirDown {
		work = transpose(g)
	}
	out := NewGrid(len(g))
	for y, row := range work {
		if d == DirRight || d == DirDown {
			row = reverse(row)
		}
		slid, gained, merged := slideRow(row)
		if d == DirRight || d == DirDown {
			slid = reverse(slid)
		}
		out[y] = slid
		res.Gained += gained
		res.Merged = append(res.Merged, merged...)
	}
	if d == DirUp || d == DirDown {
		out = transpose(out)
	}

	res.Grid = out
	res.Changed = !Equal(g, out)
	return res
}

// EmptyCells returns the coordinates of all empty cells in row order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y, row := range g {
		for x, v := range row {
			if v == 0 {
				cells = append(cells, Cell{x, y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for _, row := range g {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(g Grid) bool {
	n := len(g)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			v := g[y][x]
			if v == 0 {
				continue
			}
			// Check right neighbor
			if x < n-1 && g[y][x+1] == v {
				return true
			}
			// Check bottom neighbor
			if y < n-1 && g[y+1][x] == v {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(g Grid) int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			maxVal = max(maxVal, v)
		}
	}
	return maxVal
}
