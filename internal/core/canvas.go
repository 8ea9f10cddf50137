package core

import "math"

// Canvas is a pixel-addressed drawing surface. Coordinates are relative to
// the surface origin. The terminal host backs it with a Screen; the desktop
// host backs it with an offscreen image.
type Canvas interface {
	Size() (w, h float64)
	Clear()
	// Fade dims everything drawn so far by amount (0..1), leaving a trail.
	Fade(amount float64)
	FillCircle(cx, cy, r float64, c Color)
	// Line draws a thin line with the given opacity (0..1).
	Line(x0, y0, x1, y1 float64, c Color, alpha float64)
	Glyph(x, y float64, r rune, c Color)
}

// CellCanvas rasterizes pixel drawing onto a character Screen.
type CellCanvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCellCanvas wraps a screen. Non-positive cell sizes fall back to defaults.
func NewCellCanvas(s *Screen, cellW, cellH int) *CellCanvas {
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	return &CellCanvas{screen: s, cellW: float64(cellW), cellH: float64(cellH)}
}

// Size returns the canvas size in pixels.
func (c *CellCanvas) Size() (w, h float64) {
	if c.screen == nil {
		return 0, 0
	}
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// Clear erases the screen.
func (c *CellCanvas) Clear() {
	if c.screen != nil {
		c.screen.Clear()
	}
}

// Fade dims all cells.
func (c *CellCanvas) Fade(amount float64) {
	if c.screen != nil {
		c.screen.Fade(amount)
	}
}

// FillCircle fills every cell whose center lies inside the circle.
// A circle smaller than a cell still marks the cell holding its center.
func (c *CellCanvas) FillCircle(cx, cy, r float64, col Color) {
	if c.screen == nil {
		return
	}
	x0 := int(math.Floor((cx - r) / c.cellW))
	x1 := int(math.Floor((cx + r) / c.cellW))
	y0 := int(math.Floor((cy - r) / c.cellH))
	y1 := int(math.Floor((cy + r) / c.cellH))

	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := (float64(x) + 0.5) * c.cellW
			py := (float64(y) + 0.5) * c.cellH
			dx, dy := px-cx, py-cy
			if dx*dx+dy*dy <= r*r {
				c.screen.SetColored(x, y, '█', col)
				hit = true
			}
		}
	}
	if !hit {
		c.screen.SetColored(int(math.Floor(cx/c.cellW)), int(math.Floor(cy/c.cellH)), '•', col)
	}
}

// Line walks the cells between the endpoints, picking a stroke rune from
// the slope. It never overwrites filled shapes or glyphs, and a fainter line
// never overwrites a stronger one.
func (c *CellCanvas) Line(x0, y0, x1, y1 float64, col Color, alpha float64) {
	if c.screen == nil || alpha <= 0 {
		return
	}
	a := uint8(Clamp(alpha, 0, 1) * float64(AlphaOpaque))
	if a < fadeFloor {
		return
	}
	stroke := strokeRune(x1-x0, y1-y0)

	fx0, fy0 := x0/c.cellW, y0/c.cellH
	fx1, fy1 := x1/c.cellW, y1/c.cellH
	steps := int(math.Ceil(math.Max(math.Abs(fx1-fx0), math.Abs(fy1-fy0))))
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(fx0 + (fx1-fx0)*t))
		y := int(math.Floor(fy0 + (fy1-fy0)*t))
		cur := c.screen.GetCell(x, y)
		if !cur.Blank() && (!isStroke(cur.Rune) || cur.Alpha >= a) {
			continue
		}
		c.screen.SetCell(x, y, Cell{Rune: stroke, Color: col, Alpha: a})
	}
}

// Glyph places a rune in the cell containing (x, y).
func (c *CellCanvas) Glyph(x, y float64, r rune, col Color) {
	if c.screen == nil {
		return
	}
	c.screen.SetColored(int(math.Floor(x/c.cellW)), int(math.Floor(y/c.cellH)), r, col)
}

func strokeRune(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady <= adx*0.4:
		return '─'
	case adx <= ady*0.4:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func isStroke(r rune) bool {
	switch r {
	case '─', '│', '╱', '╲':
		return true
	}
	return false
}
