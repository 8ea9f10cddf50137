package memory

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
)

func newTestMachine(seed int64) *Machine {
	return NewMachine(config.DefaultMemoryConfig(), rand.New(rand.NewSource(seed)))
}

// playback advances in small steps until the player's turn and returns
// the pads lit along the way.
func playback(t *testing.T, m *Machine) []int {
	t.Helper()
	var lit []int
	for i := 0; i < 10000 && m.Phase() == PhasePresenting; i++ {
		m.Advance(10)
		for _, c := range m.TakeCues() {
			if c.Kind == core.CuePad {
				lit = append(lit, c.Pad)
			}
		}
	}
	if m.Phase() != PhaseAwaitingInput {
		t.Fatalf("playback ended in phase %v", m.Phase())
	}
	return lit
}

func repeat(t *testing.T, m *Machine) {
	t.Helper()
	seq := m.Sequence()
	for i, pad := range seq {
		v, err := m.Submit(pad)
		if err != nil {
			t.Fatalf("Submit(%d) failed: %v", pad, err)
		}
		want := VerdictMatch
		if i == len(seq)-1 {
			want = VerdictRoundComplete
		}
		if v != want {
			t.Fatalf("step %d verdict = %v, expected %v", i, v, want)
		}
	}
}

func TestStart(t *testing.T) {
	m := newTestMachine(1)
	if m.Phase() != PhaseIdle {
		t.Fatalf("new machine phase = %v, expected idle", m.Phase())
	}

	m.Start()
	if m.Phase() != PhasePresenting {
		t.Errorf("phase after Start = %v", m.Phase())
	}
	if len(m.Sequence()) != 1 || m.Score() != 0 || m.Progress() != 0 {
		t.Errorf("fresh game: seq=%v score=%d progress=%d", m.Sequence(), m.Score(), m.Progress())
	}
}

func TestPlaybackTiming(t *testing.T) {
	m := newTestMachine(2)
	m.Start()
	pad := m.Sequence()[0]

	m.Advance(799)
	if p, _ := m.Lit(); p != -1 {
		t.Fatalf("pad %d lit before the first interval", p)
	}
	m.Advance(1) // 800
	if p, level := m.Lit(); p != pad || level != 1 {
		t.Fatalf("at 800ms Lit() = (%d, %v), expected (%d, 1)", p, level, pad)
	}
	cues := m.TakeCues()
	if len(cues) != 1 || cues[0] != (core.Cue{Kind: core.CuePad, Pad: pad}) {
		t.Errorf("cues = %v", cues)
	}

	m.Advance(200) // 1000
	_, mid := m.Lit()
	if mid <= 0 || mid >= 1 {
		t.Errorf("intensity halfway through the highlight = %v, expected in (0, 1)", mid)
	}
	m.Advance(200) // 1200
	if p, _ := m.Lit(); p != -1 {
		t.Errorf("pad still lit after the highlight ended")
	}

	m.Advance(399) // 1599
	if m.Phase() != PhasePresenting {
		t.Fatal("input accepted before playback finished")
	}
	m.Advance(1) // 1600
	if m.Phase() != PhaseAwaitingInput {
		t.Fatalf("phase at 1600ms = %v, expected awaiting input", m.Phase())
	}
}

func TestNextRoundWaitsForPause(t *testing.T) {
	m := newTestMachine(3)
	m.Start()
	playback(t, m)
	repeat(t, m)
	m.TakeCues()

	// lead (1000) + first step (800)
	m.Advance(1799)
	for _, c := range m.TakeCues() {
		if c.Kind == core.CuePad {
			t.Fatal("next round started before the pause elapsed")
		}
	}
	m.Advance(1)
	if p, _ := m.Lit(); p != m.Sequence()[0] {
		t.Errorf("first step of the next round not lit at 1800ms")
	}
}

func TestSequenceGrowsOnePerRound(t *testing.T) {
	m := newTestMachine(4)
	m.Start()

	for k := 0; k < 8; k++ {
		if got := len(m.Sequence()); got != k+1 {
			t.Fatalf("after %d rounds len(sequence) = %d, expected %d", k, got, k+1)
		}
		before := m.Sequence()
		lit := playback(t, m)
		if len(lit) != len(before) {
			t.Fatalf("round %d played %d steps, expected %d", k, len(lit), len(before))
		}
		for i := range lit {
			if lit[i] != before[i] {
				t.Fatalf("round %d step %d played pad %d, expected %d", k, i, lit[i], before[i])
			}
		}
		repeat(t, m)
		if m.Score() != k+1 {
			t.Errorf("score after %d rounds = %d", k+1, m.Score())
		}
		// The prefix is kept; exactly one step is appended
		after := m.Sequence()
		for i := range before {
			if after[i] != before[i] {
				t.Fatalf("round %d rewrote step %d", k, i)
			}
		}
	}
}

func TestMismatchEndsGame(t *testing.T) {
	m := newTestMachine(5)
	m.Start()
	playback(t, m)
	repeat(t, m)
	playback(t, m)

	seq := m.Sequence()
	if v, _ := m.Submit(seq[0]); v != VerdictMatch {
		t.Fatalf("first step verdict = %v", v)
	}
	wrong := (seq[1] + 1) % PadCount
	v, err := m.Submit(wrong)
	if err != nil || v != VerdictMismatch {
		t.Fatalf("wrong pad: verdict %v err %v", v, err)
	}
	if m.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, expected game over", m.Phase())
	}
	cues := m.TakeCues()
	if cues[len(cues)-1].Kind != core.CueFail {
		t.Errorf("expected a failure cue, got %v", cues)
	}

	score := m.Score()
	for i := 0; i < PadCount; i++ {
		if v, _ := m.Submit(i); v != VerdictIgnored {
			t.Errorf("Submit after game over = %v", v)
		}
	}
	m.Advance(5000)
	if m.Score() != score || m.Phase() != PhaseGameOver {
		t.Error("score or phase changed after game over")
	}

	m.Start()
	if m.Score() != 0 || len(m.Sequence()) != 1 {
		t.Error("Start should begin a fresh game")
	}
}

func TestSubmitIgnoredOutsideTurn(t *testing.T) {
	m := newTestMachine(6)
	if v, err := m.Submit(0); v != VerdictIgnored || err != nil {
		t.Errorf("idle Submit = (%v, %v)", v, err)
	}
	m.Start()
	if v, _ := m.Submit(m.Sequence()[0]); v != VerdictIgnored {
		t.Errorf("Submit during playback = %v", v)
	}
	if m.Progress() != 0 {
		t.Error("ignored input changed progress")
	}
}

func TestInvalidPad(t *testing.T) {
	m := newTestMachine(7)
	m.Start()
	playback(t, m)

	for _, pad := range []int{-1, PadCount, 99} {
		v, err := m.Submit(pad)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("Submit(%d) err = %v, expected ErrInvalidInput", pad, err)
		}
		if v != VerdictIgnored {
			t.Errorf("Submit(%d) verdict = %v", pad, v)
		}
	}
	if m.Phase() != PhaseAwaitingInput || m.Progress() != 0 {
		t.Error("invalid input changed the game")
	}
}

func TestDeterministicSequence(t *testing.T) {
	a, b := newTestMachine(42), newTestMachine(42)
	for _, m := range []*Machine{a, b} {
		m.Start()
		for r := 0; r < 5; r++ {
			playback(t, m)
			repeat(t, m)
		}
	}
	sa, sb := a.Sequence(), b.Sequence()
	for i := range sa {
		if sa[i] != sb[i] {
			t.Fatalf("sequences differ at %d", i)
		}
	}
}
