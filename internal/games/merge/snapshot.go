package merge

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Size     int
	Score    int
	Grid     Grid
	MaxTile  int
	Phase    string
	Confetti int // live confetti pieces
	Paused   bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:    g.tick,
		Size:    g.cfg.Size,
		Score:   g.score,
		Grid:    Clone(g.grid),
		MaxTile: MaxTile(g.grid),
		Phase:   g.phase.String(),
		Paused:  g.paused || g.tooSmall,
	}
	if g.confetti != nil {
		s.Confetti = len(g.confetti.Particles())
	}
	return s
}
