package merge

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// popIn grows a freshly spawned tile from transparent to opaque.
type popIn struct {
	cell  Cell
	tween *gween.Tween
	level float32
}

func newPopIn(cell Cell, millis int) *popIn {
	if millis <= 0 {
		return nil
	}
	return &popIn{
		cell:  cell,
		tween: gween.New(0, 1, float32(millis), ease.OutQuad),
	}
}

// update advances the tween and reports whether it finished.
func (p *popIn) update(dtMillis float64) bool {
	level, done := p.tween.Update(float32(dtMillis))
	p.level = level
	return done
}

// levelAt returns the opacity of the tile at c.
func (p *popIn) levelAt(c Cell) float64 {
	if p == nil || p.cell != c {
		return 1
	}
	return float64(p.level)
}
