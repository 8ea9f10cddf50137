package memory

import (
	"math/rand"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
)

// PadCount is the number of pads on the board.
const PadCount = 4

// PadColors holds the pad colors in pad order: top-left, top-right,
// bottom-left, bottom-right.
var PadColors = [PadCount]core.Color{
	core.ColorSunflower,
	core.ColorIris,
	core.ColorAqua,
	core.ColorCoral,
}

// Phase is the state of a round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePresenting
	PhaseAwaitingInput
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePresenting:
		return "presenting"
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of a submitted pad.
type Verdict int

const (
	VerdictIgnored       Verdict = iota // not accepting input
	VerdictMatch                        // correct, round continues
	VerdictRoundComplete                // correct, whole sequence repeated
	VerdictMismatch                     // wrong pad, game over
)

// Machine is the sequence memory state machine. It has no clock of its own;
// callers feed elapsed time through Advance.
type Machine struct {
	cfg      config.MemoryConfig
	rng      *rand.Rand
	sequence []int
	progress int
	phase    Phase
	score    int

	// Playback timing, in milliseconds since the presentation began
	elapsed float64
	lead    float64
	shown   int

	lit   int
	glow  *gween.Tween
	level float32

	cues []core.Cue
}

// NewMachine creates an idle machine.
func NewMachine(cfg config.MemoryConfig, rng *rand.Rand) *Machine {
	return &Machine{cfg: cfg, rng: rng, lit: -1}
}

// Start begins a new game with a one-step sequence.
func (m *Machine) Start() {
	m.sequence = append(m.sequence[:0], m.rng.Intn(PadCount))
	m.score = 0
	m.progress = 0
	m.unlight()
	m.present(0)
}

func (m *Machine) present(lead float64) {
	m.phase = PhasePresenting
	m.elapsed = 0
	m.lead = lead
	m.shown = 0
}

// Advance moves time forward by dtMillis. During playback, step i lights
// at lead + (i+1)*interval; one interval after the last step the machine
// starts accepting input.
func (m *Machine) Advance(dtMillis float64) {
	if dtMillis < 0 {
		dtMillis = 0
	}
	m.fade(dtMillis)

	if m.phase != PhasePresenting {
		return
	}
	m.elapsed += dtMillis

	interval := float64(m.cfg.StepInterval)
	for m.shown < len(m.sequence) && m.elapsed >= m.lead+float64(m.shown+1)*interval {
		pad := m.sequence[m.shown]
		m.light(pad, m.cfg.Highlight)
		m.cues = append(m.cues, core.Cue{Kind: core.CuePad, Pad: pad})
		m.shown++
	}
	if m.shown == len(m.sequence) && m.elapsed >= m.lead+float64(len(m.sequence)+1)*interval {
		m.phase = PhaseAwaitingInput
		m.progress = 0
		m.unlight()
	}
}

// Submit records a pad press. Presses outside the player's turn are
// ignored; an out-of-range pad returns core.ErrInvalidInput.
func (m *Machine) Submit(pad int) (Verdict, error) {
	if pad < 0 || pad >= PadCount {
		return VerdictIgnored, core.ErrInvalidInput
	}
	if m.phase != PhaseAwaitingInput {
		return VerdictIgnored, nil
	}

	m.light(pad, m.cfg.Flash)
	if pad != m.sequence[m.progress] {
		m.phase = PhaseGameOver
		m.cues = append(m.cues, core.Cue{Kind: core.CueFail})
		return VerdictMismatch, nil
	}

	m.cues = append(m.cues, core.Cue{Kind: core.CuePad, Pad: pad})
	m.progress++
	if m.progress < len(m.sequence) {
		return VerdictMatch, nil
	}

	m.score++
	m.sequence = append(m.sequence, m.rng.Intn(PadCount))
	m.progress = 0
	m.present(float64(m.cfg.RoundPause))
	return VerdictRoundComplete, nil
}

func (m *Machine) light(pad, millis int) {
	m.lit = pad
	m.level = 1
	m.glow = gween.New(1, 0, float32(millis), ease.InQuad)
}

func (m *Machine) unlight() {
	m.lit = -1
	m.level = 0
	m.glow = nil
}

func (m *Machine) fade(dtMillis float64) {
	if m.glow == nil {
		return
	}
	level, done := m.glow.Update(float32(dtMillis))
	if done {
		m.unlight()
		return
	}
	m.level = level
}

// TakeCues returns the cues raised since the last call and clears them.
func (m *Machine) TakeCues() []core.Cue {
	cues := m.cues
	m.cues = nil
	return cues
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Score returns the number of completed rounds.
func (m *Machine) Score() int {
	return m.score
}

// Progress returns how many steps of the current round the player has matched.
func (m *Machine) Progress() int {
	return m.progress
}

// Sequence returns a copy of the sequence.
func (m *Machine) Sequence() []int {
	out := make([]int, len(m.sequence))
	copy(out, m.sequence)
	return out
}

// Lit returns the lit pad and its intensity in (0, 1], or -1 when every pad is dark.
func (m *Machine) Lit() (pad int, intensity float64) {
	if m.lit < 0 {
		return -1, 0
	}
	return m.lit, float64(m.level)
}
