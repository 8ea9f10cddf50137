package memory

// Snapshot captures the game state for determinism testing and headless runs.
type Snapshot struct {
	Phase       string
	Score       int
	SequenceLen int
	Progress    int
	LitPad      int
	Paused      bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.machine == nil {
		return Snapshot{LitPad: -1, Paused: g.paused}
	}
	lit, _ := g.machine.Lit()
	return Snapshot{
		Phase:       g.machine.Phase().String(),
		Score:       g.machine.Score(),
		SequenceLen: len(g.machine.sequence),
		Progress:    g.machine.Progress(),
		LitPad:      lit,
		Paused:      g.paused,
	}
}
