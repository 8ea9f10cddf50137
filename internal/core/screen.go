package core

import "strings"

// AlphaOpaque is the alpha of a freshly drawn cell.
const AlphaOpaque uint8 = 255

// fadeFloor is the alpha below which a fading cell is erased.
const fadeFloor = 16

// Cell is one character of the screen with its color and opacity.
type Cell struct {
	Rune  rune
	Color Color
	Alpha uint8
}

var blank = Cell{Rune: ' ', Color: ColorDefault, Alpha: AlphaOpaque}

// Blank reports whether the cell holds nothing visible.
func (c Cell) Blank() bool {
	return c.Rune == ' ' || c.Rune == 0
}

// Screen is the cell grid a widget renders into. Hosts turn it into
// terminal output or pixels; widgets only ever see cells.
type Screen struct {
	w, h  int
	cells []Cell // row-major, len w*h
}

// NewScreen returns a blank screen. Negative sizes become zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.reset(width, height)
	return s
}

func (s *Screen) reset(width, height int) {
	s.w, s.h = max(width, 0), max(height, 0)
	s.cells = make([]Cell, s.w*s.h)
	s.Clear()
}

func (s *Screen) Width() int  { return s.w }
func (s *Screen) Height() int { return s.h }

func (s *Screen) in(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

func (s *Screen) row(y int) []Cell {
	return s.cells[y*s.w : (y+1)*s.w]
}

// Resize changes the size and keeps the overlapping top-left region.
func (s *Screen) Resize(width, height int) {
	if max(width, 0) == s.w && max(height, 0) == s.h {
		return
	}
	old := *s
	s.reset(width, height)
	for y := range min(old.h, s.h) {
		copy(s.row(y), old.row(y)[:min(old.w, s.w)])
	}
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	s.Fill(' ')
}

// Fill sets every cell to r in the default color.
func (s *Screen) Fill(r rune) {
	c := Cell{Rune: r, Color: ColorDefault, Alpha: AlphaOpaque}
	for i := range s.cells {
		s.cells[i] = c
	}
}

// Fade scales the alpha of every visible cell by (1 - amount).
// Cells that fall below the visibility floor are erased.
func (s *Screen) Fade(amount float64) {
	if amount <= 0 {
		return
	}
	keep := 1 - Clamp(amount, 0, 1)
	for i, c := range s.cells {
		if c.Blank() {
			continue
		}
		if a := uint8(float64(c.Alpha) * keep); a >= fadeFloor {
			s.cells[i].Alpha = a
		} else {
			s.cells[i] = blank
		}
	}
}

// Set draws r in the default color. Writes outside the screen are dropped,
// as they are for every drawing method.
func (s *Screen) Set(x, y int, r rune) {
	s.SetCell(x, y, Cell{Rune: r, Color: ColorDefault, Alpha: AlphaOpaque})
}

// SetColored draws an opaque r in color c.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	s.SetCell(x, y, Cell{Rune: r, Color: c, Alpha: AlphaOpaque})
}

func (s *Screen) SetCell(x, y int, c Cell) {
	if s.in(x, y) {
		s.cells[y*s.w+x] = c
	}
}

// Get returns the rune at (x, y), or a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

func (s *Screen) GetCell(x, y int) Cell {
	if !s.in(x, y) {
		return blank
	}
	return s.cells[y*s.w+x]
}

// Blit copies every visible cell of src onto s with its top-left at (x, y).
func (s *Screen) Blit(src *Screen, x, y int) {
	if src == nil {
		return
	}
	for i, c := range src.cells {
		if !c.Blank() {
			s.SetCell(x+i%src.w, y+i/src.w, c)
		}
	}
}

// DrawText writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for i, r := range []rune(text) {
		s.SetColored(x+i, y, r, c)
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.w-len([]rune(text)))/2, y, text)
}

func (s *Screen) DrawRect(r Rect, fill rune) {
	s.DrawRectColored(r, fill, ColorDefault)
}

// DrawRectColored fills r with fill in color c.
func (s *Screen) DrawRectColored(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxColored(r, ColorDefault)
}

// DrawBoxColored outlines r with light box-drawing runes.
func (s *Screen) DrawBoxColored(r Rect, c Color) {
	x1, y1 := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < x1; x++ {
		s.SetColored(x, r.Y, '─', c)
		s.SetColored(x, y1, '─', c)
	}
	for y := r.Y + 1; y < y1; y++ {
		s.SetColored(r.X, y, '│', c)
		s.SetColored(x1, y, '│', c)
	}
	s.SetColored(r.X, r.Y, '┌', c)
	s.SetColored(x1, r.Y, '┐', c)
	s.SetColored(r.X, y1, '└', c)
	s.SetColored(x1, y1, '┘', c)
}

// DrawMessage draws a boxed title and subtitle in the middle of the screen,
// clearing what was under the box.
func (s *Screen) DrawMessage(title, subtitle string) {
	tw, sw := len([]rune(title)), len([]rune(subtitle))
	box := NewRect(0, 0, max(tw, sw)+4, 5)
	box.X, box.Y = (s.w-box.W)/2, (s.h-box.H)/2

	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawText(box.X+(box.W-tw)/2, box.Y+1, title)
	s.DrawText(box.X+(box.W-sw)/2, box.Y+3, subtitle)
}

// String returns the runes row by row, joined with newlines.
func (s *Screen) String() string {
	rows := make([]string, s.h)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}

// Row returns row y as text, or spaces outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.h {
		return strings.Repeat(" ", s.w)
	}
	var b strings.Builder
	for _, c := range s.row(y) {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

