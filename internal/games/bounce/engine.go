package bounce

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
)

// frameMillis is the frame length the fixed-step constants were tuned for.
const frameMillis = 1000.0 / 60.0

// Body is a single ball. Radius never changes after creation.
type Body struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  core.Color
}

// Engine integrates a set of bodies under gravity inside a rectangle.
type Engine struct {
	cfg    config.BounceConfig
	rng    *rand.Rand
	bodies []Body
	w, h   float64
}

// NewEngine creates an empty engine with the given parameters.
func NewEngine(cfg config.BounceConfig, rng *rand.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Init seeds n bodies inside a w×h surface, starting in the top half.
func (e *Engine) Init(n int, w, h float64) {
	e.w, e.h = w, h
	e.bodies = make([]Body, n)

	sp := e.cfg.Spawn
	for i := range e.bodies {
		r := sp.MinRadius + e.rng.Float64()*(sp.MaxRadius-sp.MinRadius)
		b := Body{
			Radius: r,
			X:      r + e.rng.Float64()*math.Max(0, w-2*r),
			Y:      r + e.rng.Float64()*math.Max(0, h/2-r),
			VX:     (e.rng.Float64()*2 - 1) * sp.MaxSpeedX,
			VY:     e.rng.Float64() * sp.MaxSpeedY,
			Color:  core.Accents[e.rng.Intn(len(core.Accents))],
		}
		e.bodies[i] = b
		e.contain(&e.bodies[i])
	}
}

// Tick advances every body by one step. dtMillis only matters when
// scale_by_dt is enabled.
func (e *Engine) Tick(dtMillis float64) {
	f := 1.0
	if e.cfg.ScaleByDt && dtMillis > 0 {
		f = dtMillis / frameMillis
	}

	g := e.cfg.Physics.Gravity
	friction := e.cfg.Physics.Friction
	for i := range e.bodies {
		b := &e.bodies[i]

		b.VY += g * f
		b.X += b.VX * f
		b.Y += b.VY * f

		switch {
		case e.h < 2*b.Radius:
			b.Y, b.VY = e.h/2, 0
		case b.Y+b.Radius > e.h:
			b.Y = e.h - b.Radius
			b.VY *= -friction
			// Kill micro-bounces so resting bodies stay put.
			if math.Abs(b.VY) < g*2 {
				b.VY = 0
			}
		case b.Y-b.Radius < 0:
			b.Y = b.Radius
			b.VY *= -friction
		}

		switch {
		case e.w < 2*b.Radius:
			b.X, b.VX = e.w/2, 0
		case b.X+b.Radius > e.w:
			b.X = e.w - b.Radius
			b.VX *= -friction
		case b.X-b.Radius < 0:
			b.X = b.Radius
			b.VX *= -friction
		}
	}
}

// Impulse kicks bodies near (px, py) up and away, stronger when closer.
func (e *Engine) Impulse(px, py float64) {
	p := e.cfg.Pointer
	for i := range e.bodies {
		b := &e.bodies[i]
		dx, dy := b.X-px, b.Y-py
		d := math.Hypot(dx, dy)
		if d == 0 || d >= p.ImpulseRadius {
			continue
		}
		force := (p.ImpulseRadius - d) / p.ImpulseRadius
		b.VX += dx / d * force * p.ImpulseForceX
		b.VY -= force * p.ImpulseKickY
	}
}

// HoverNudge pushes bodies under the pointer gently outward.
func (e *Engine) HoverNudge(px, py float64) {
	p := e.cfg.Pointer
	for i := range e.bodies {
		b := &e.bodies[i]
		dx, dy := b.X-px, b.Y-py
		d := math.Hypot(dx, dy)
		if d == 0 || d >= b.Radius+p.HoverMargin {
			continue
		}
		b.VX += dx / d * p.HoverForce
		b.VY += dy / d * p.HoverForce
	}
}

// Resize changes the bounds and pulls every body back inside. Velocities are kept.
func (e *Engine) Resize(w, h float64) {
	e.w, e.h = w, h
	for i := range e.bodies {
		e.contain(&e.bodies[i])
	}
}

func (e *Engine) contain(b *Body) {
	if e.w < 2*b.Radius {
		b.X = e.w / 2
	} else {
		b.X = core.Clamp(b.X, b.Radius, e.w-b.Radius)
	}
	if e.h < 2*b.Radius {
		b.Y = e.h / 2
	} else {
		b.Y = core.Clamp(b.Y, b.Radius, e.h-b.Radius)
	}
}

// Bounds returns the current surface size.
func (e *Engine) Bounds() (w, h float64) {
	return e.w, e.h
}

// Bodies returns a copy of the current bodies.
func (e *Engine) Bodies() []Body {
	out := make([]Body, len(e.bodies))
	copy(out, e.bodies)
	return out
}

// KineticEnergy returns Σ ½|v|² over all bodies (unit mass).
func (e *Engine) KineticEnergy() float64 {
	var k float64
	for _, b := range e.bodies {
		k += 0.5 * (b.VX*b.VX + b.VY*b.VY)
	}
	return k
}

// MechanicalEnergy returns kinetic plus potential energy, with each body's
// potential measured from its resting height on the floor.
func (e *Engine) MechanicalEnergy() float64 {
	m := e.KineticEnergy()
	for _, b := range e.bodies {
		m += e.cfg.Physics.Gravity * (e.h - b.Radius - b.Y)
	}
	return m
}

// Paint draws every body onto c.
func (e *Engine) Paint(c core.Canvas) {
	for _, b := range e.bodies {
		c.FillCircle(b.X, b.Y, b.Radius, b.Color)
	}
}
