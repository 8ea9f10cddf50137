package bounce

// Snapshot captures the widget state for determinism testing and headless runs.
type Snapshot struct {
	Tick    uint64
	Bodies  int
	Resting int // Bodies sitting on the floor with no vertical motion
	Kinetic float64
	Paused  bool
}

// Snapshot returns the current widget snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Tick: g.tick, Paused: g.paused}
	}
	_, h := g.engine.Bounds()
	resting := 0
	for _, b := range g.engine.bodies {
		if b.VY == 0 && b.Y == h-b.Radius {
			resting++
		}
	}
	return Snapshot{
		Tick:    g.tick,
		Bodies:  len(g.engine.bodies),
		Resting: resting,
		Kinetic: g.engine.KineticEnergy(),
		Paused:  g.paused,
	}
}
