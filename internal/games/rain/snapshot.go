package rain

// Snapshot captures the widget state for determinism testing and headless runs.
type Snapshot struct {
	Tick    uint64
	Columns int
	Visible int // Columns whose cursor is inside the surface
	Paused  bool
}

// Snapshot returns the current widget snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{Tick: g.tick, Paused: g.paused}
	if g.engine == nil {
		return s
	}
	s.Columns = g.engine.active
	for i := 0; i < g.engine.active; i++ {
		y := g.engine.drops[i] * g.engine.cfg.GlyphSize
		if y >= 0 && y < g.engine.h {
			s.Visible++
		}
	}
	return s
}
