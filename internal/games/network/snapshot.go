package network

// Snapshot captures the widget state for determinism testing and headless runs.
type Snapshot struct {
	Tick    uint64
	Points  int
	Edges   int
	Pointer bool // pointer is over the surface
	Paused  bool
}

// Snapshot returns the current widget snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Tick: g.tick, Paused: g.paused}
	}
	_, _, pointing := g.engine.Pointer()
	return Snapshot{
		Tick:    g.tick,
		Points:  len(g.engine.points),
		Edges:   len(g.engine.Edges()),
		Pointer: pointing,
		Paused:  g.paused,
	}
}
