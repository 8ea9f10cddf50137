package merge

import "testing"

func TestSlideRow(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
		score    int
	}{
		{"simple merge", []int{2, 2, 0}, []int{4, 0, 0}, 4},
		{"merge with trailing tile", []int{2, 2, 2}, []int{4, 2, 0}, 4},
		{"merged tile does not merge again", []int{2, 2, 4}, []int{4, 4, 0}, 4},
		{"double merge", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8},
		{"no merge possible", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0},
		{"slide with gap", []int{0, 0, 2, 2}, []int{4, 0, 0, 0}, 4},
		{"slide with multiple gaps", []int{2, 0, 0, 2}, []int{4, 0, 0, 0}, 4},
		{"chain stays single pass", []int{4, 4, 8, 0, 0}, []int{8, 8, 0, 0, 0}, 8},
		{"empty row", []int{0, 0, 0}, []int{0, 0, 0}, 0},
		{"single tile", []int{0, 4, 0}, []int{4, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, _ := slideRow(tt.input)
			for i := range tt.expected {
				if result[i] != tt.expected[i] {
					t.Fatalf("slideRow(%v) = %v, want %v", tt.input, result, tt.expected)
				}
			}
			if score != tt.score {
				t.Errorf("slideRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestMoveDirections(t *testing.T) {
	board := Grid{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		dir      Direction
		expected Grid
		score    int
	}{
		{DirLeft, Grid{
			{4, 0, 0, 0},
			{8, 0, 0, 0},
			{4, 4, 0, 0},
			{2, 0, 0, 0},
		}, 20},
		{DirRight, Grid{
			{0, 0, 0, 4},
			{0, 0, 0, 8},
			{0, 0, 4, 4},
			{0, 0, 0, 2},
		}, 20},
		{DirUp, Grid{
			{2, 4, 4, 4},
			{4, 0, 2, 0},
			{2, 0, 0, 0},
			{0, 0, 0, 0},
		}, 8},
		{DirDown, Grid{
			{0, 0, 0, 0},
			{2, 0, 0, 0},
			{4, 0, 4, 0},
			{2, 4, 2, 4},
		}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			res := Move(board, tt.dir)
			if !Equal(res.Grid, tt.expected) {
				t.Errorf("Move %v: got\n%v\nwant\n%v", tt.dir, res.Grid, tt.expected)
			}
			if res.Gained != tt.score {
				t.Errorf("Move %v gained %d, want %d", tt.dir, res.Gained, tt.score)
			}
			if !res.Changed {
				t.Errorf("Move %v should report a change", tt.dir)
			}
		})
	}
}

func TestMoveDoesNotMutateInput(t *testing.T) {
	board := Grid{{2, 2, 0}, {0, 0, 0}, {0, 0, 4}}
	before := Clone(board)
	Move(board, DirLeft)
	if !Equal(board, before) {
		t.Errorf("input mutated: %v", board)
	}
}

func TestMoveUnchanged(t *testing.T) {
	board := Grid{{2, 4, 0}, {0, 0, 0}, {0, 0, 0}}
	res := Move(board, DirLeft)
	if res.Changed || res.Gained != 0 || !Equal(res.Grid, board) {
		t.Errorf("blocked move changed the grid: %+v", res)
	}

	res = Move(board, Direction(9))
	if res.Changed || !Equal(res.Grid, board) {
		t.Error("unknown direction should leave the grid alone")
	}
}

func TestMoveReportsMergedValues(t *testing.T) {
	board := Grid{{1024, 1024, 0}, {2, 2, 0}, {0, 0, 0}}
	res := Move(board, DirLeft)
	if len(res.Merged) != 2 || res.Merged[0] != 2048 || res.Merged[1] != 4 {
		t.Errorf("Merged = %v", res.Merged)
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want bool
	}{
		{"empty cell", Grid{{2, 4, 2}, {4, 0, 4}, {2, 4, 2}}, true},
		{"horizontal merge", Grid{{2, 2, 4}, {4, 8, 16}, {8, 16, 32}}, true},
		{"vertical merge", Grid{{2, 4, 8}, {2, 8, 16}, {4, 16, 32}}, true},
		{"stuck", Grid{{2, 4, 2}, {4, 2, 4}, {2, 4, 2}}, false},
		{"empty grid", NewGrid(3), true},
	}
	for _, tt := range tests {
		if got := CanMove(tt.grid); got != tt.want {
			t.Errorf("%s: CanMove = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEmptyCellsAndMaxTile(t *testing.T) {
	g := Grid{{0, 2}, {8, 0}}
	cells := EmptyCells(g)
	if len(cells) != 2 || cells[0] != (Cell{0, 0}) || cells[1] != (Cell{1, 1}) {
		t.Errorf("EmptyCells = %v", cells)
	}
	if MaxTile(g) != 8 {
		t.Errorf("MaxTile = %d", MaxTile(g))
	}
	if MaxTile(NewGrid(0)) != 0 || HasEmptyCell(NewGrid(0)) {
		t.Error("zero-size grid should be empty and stuck")
	}
}
