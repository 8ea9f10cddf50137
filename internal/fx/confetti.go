// Package fx holds short-lived visual effects shared by the widgets.
package fx

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/showcase/internal/core"
)

// Confetti burst parameters, in pixels and ticks.
const (
	BurstSize    = 100
	BurstSpeed   = 5.0
	BurstGravity = 0.2
	BurstLife    = 100
	minSize      = 2.0
	maxSize      = 7.0
)

// Particle is one confetti piece.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   int
	Color  core.Color
}

// Alpha returns the particle opacity in [0, 1], falling linearly with its life.
func (p Particle) Alpha() float64 {
	return core.Clamp(float64(p.Life)/BurstLife, 0, 1)
}

// Confetti simulates one-shot bursts. The zero value is ready to use once
// given a random source through NewConfetti.
type Confetti struct {
	rng       *rand.Rand
	particles []Particle
	alive     int
}

// NewConfetti creates an idle effect.
func NewConfetti(rng *rand.Rand) *Confetti {
	return &Confetti{rng: rng}
}

// Fire launches a burst from (x, y). A burst already in flight is replaced.
func (c *Confetti) Fire(x, y float64) {
	if cap(c.particles) < BurstSize {
		c.particles = make([]Particle, BurstSize)
	}
	c.particles = c.particles[:BurstSize]
	for i := range c.particles {
		c.particles[i] = Particle{
			X:     x,
			Y:     y,
			VX:    (c.rng.Float64()*2 - 1) * BurstSpeed,
			VY:    (c.rng.Float64()*2 - 1) * BurstSpeed,
			Size:  minSize + c.rng.Float64()*(maxSize-minSize),
			Life:  BurstLife,
			Color: core.Accents[c.rng.Intn(len(core.Accents))],
		}
	}
	c.alive = BurstSize
}

// Tick advances every live particle by one frame and drops the dead ones.
func (c *Confetti) Tick() {
	i := 0
	for i < c.alive {
		p := &c.particles[i]
		p.X += p.VX
		p.Y += p.VY
		p.VY += BurstGravity
		p.Life--
		if p.Life <= 0 {
			// Swap with the last live particle
			c.alive--
			c.particles[i] = c.particles[c.alive]
			continue
		}
		i++
	}
}

// Active reports whether any particle is still alive.
func (c *Confetti) Active() bool {
	return c.alive > 0
}

// Particles returns a copy of the live particles.
func (c *Confetti) Particles() []Particle {
	out := make([]Particle, c.alive)
	copy(out, c.particles[:c.alive])
	return out
}

// Stop kills every particle.
func (c *Confetti) Stop() {
	c.alive = 0
}

// Render draws the live particles onto a character screen. Pieces are
// placed by pixel position; bigger pieces get heavier glyphs.
func (c *Confetti) Render(dst *core.Screen, cellW, cellH int) {
	if dst == nil || cellW <= 0 || cellH <= 0 {
		return
	}
	for _, p := range c.particles[:c.alive] {
		x := int(math.Floor(p.X / float64(cellW)))
		y := int(math.Floor(p.Y / float64(cellH)))
		dst.SetCell(x, y, core.Cell{
			Rune:  pieceRune(p.Size),
			Color: p.Color,
			Alpha: uint8(p.Alpha() * float64(core.AlphaOpaque)),
		})
	}
}

func pieceRune(size float64) rune {
	switch {
	case size < 3.5:
		return '·'
	case size < 5.5:
		return '•'
	default:
		return '●'
	}
}
