package rain

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
)

// Kind distinguishes ordinary trail glyphs from brighter heads.
type Kind uint8

const (
	KindNormal Kind = iota
	KindHead
)

// Glyph is one character drawn during a tick.
type Glyph struct {
	Column int
	X, Y   float64 // Pixel position of the glyph cell
	Rune   rune
	Kind   Kind
}

// Engine advances one cursor per column and emits the glyphs to draw.
type Engine struct {
	cfg      config.RainConfig
	rng      *rand.Rand
	alphabet []rune
	drops    []float64 // Cursor row per column; negative rows are above the top
	active   int
	w, h     float64
	batch    []Glyph
}

// NewEngine creates an engine with the given parameters.
func NewEngine(cfg config.RainConfig, rng *rand.Rand) *Engine {
	return &Engine{
		cfg:      cfg,
		rng:      rng,
		alphabet: []rune(cfg.Alphabet),
	}
}

// Init sizes the column set for a w×h surface and scatters every cursor above the top.
func (e *Engine) Init(w, h float64) {
	e.w, e.h = w, h
	e.active = e.columnsFor(w)
	e.drops = make([]float64, e.active)
	for i := range e.drops {
		e.drops[i] = e.restartRow()
	}
}

func (e *Engine) columnsFor(w float64) int {
	if w <= 0 {
		return 0
	}
	return int(math.Ceil(w / e.cfg.GlyphSize))
}

func (e *Engine) restartRow() float64 {
	return -e.rng.Float64() * e.cfg.RecycleDepth
}

// Tick emits one glyph per active column and moves every cursor down a row.
// The returned slice is reused by the next call.
func (e *Engine) Tick() []Glyph {
	e.batch = e.batch[:0]
	size := e.cfg.GlyphSize
	for i := 0; i < e.active; i++ {
		g := Glyph{
			Column: i,
			X:      float64(i) * size,
			Y:      e.drops[i] * size,
			Rune:   e.alphabet[e.rng.Intn(len(e.alphabet))],
		}
		if e.rng.Float64() < e.cfg.HeadChance {
			g.Kind = KindHead
		}
		e.batch = append(e.batch, g)

		// Only columns that already ran off the bottom may restart
		if g.Y > e.h && e.rng.Float64() < e.cfg.ResetChance {
			e.drops[i] = e.restartRow()
		}
		e.drops[i]++
	}
	return e.batch
}

// Paint fades the canvas and draws batch over it. Glyphs near an active
// pointer take the highlight color for this frame only.
func (e *Engine) Paint(c core.Canvas, batch []Glyph, p core.Pointer, t core.Theme) {
	c.Fade(e.cfg.Fade)

	text, head, highlight := Colors(t)
	for _, g := range batch {
		if g.Y < 0 || g.Y >= e.h {
			continue
		}
		col := text
		switch {
		case p.Inside && core.Dist(g.X, g.Y, p.X, p.Y) < e.cfg.HighlightRadius:
			col = highlight
		case g.Kind == KindHead:
			col = head
		}
		c.Glyph(g.X, g.Y, g.Rune, col)
	}
}

// Colors returns the text, head and highlight colors for a theme.
func Colors(t core.Theme) (text, head, highlight core.Color) {
	if t == core.ThemeLight {
		return core.ColorBrand, core.ColorViolet, core.ColorInk
	}
	return core.ColorBrand, core.ColorLavender, core.ColorSnow
}

// Resize recomputes the active column count. Existing cursors are kept and
// new columns are only allocated when the surface grows past every column
// seen so far.
func (e *Engine) Resize(w, h float64) {
	e.w, e.h = w, h
	e.active = e.columnsFor(w)
	for len(e.drops) < e.active {
		e.drops = append(e.drops, e.restartRow())
	}
}

// Active returns the number of columns currently drawn.
func (e *Engine) Active() int {
	return e.active
}

// Drops returns a copy of every column cursor, including inactive ones.
func (e *Engine) Drops() []float64 {
	out := make([]float64, len(e.drops))
	copy(out, e.drops)
	return out
}
