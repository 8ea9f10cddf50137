package network

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/showcase/internal/config"
	"github.com/vovakirdan/showcase/internal/core"
)

const frameMillis = 1000.0 / 60.0

// Point is a drifting node of the network.
type Point struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  core.Color
}

// Edge joins points I and J (I < J). Alpha fades from 1 when the points
// touch to 0 at the connection distance.
type Edge struct {
	I, J  int
	Alpha float64
}

// PointerEdge joins point I to the pointer.
type PointerEdge struct {
	I     int
	Alpha float64
}

// Engine moves a fixed population of points and derives the edges between them.
type Engine struct {
	cfg    config.NetworkConfig
	rng    *rand.Rand
	points []Point
	w, h   float64

	px, py   float64
	pointing bool
}

// NewEngine creates an empty engine with the given parameters.
func NewEngine(cfg config.NetworkConfig, rng *rand.Rand) *Engine {
	return &Engine{cfg: cfg, rng: rng}
}

// Init scatters n points over a w×h surface.
func (e *Engine) Init(n int, w, h float64) {
	e.w, e.h = w, h
	e.points = make([]Point, n)
	for i := range e.points {
		e.points[i] = Point{
			X:      e.rng.Float64() * w,
			Y:      e.rng.Float64() * h,
			VX:     (e.rng.Float64()*2 - 1) * e.cfg.MaxSpeed,
			VY:     (e.rng.Float64()*2 - 1) * e.cfg.MaxSpeed,
			Radius: e.cfg.MinRadius + e.rng.Float64()*(e.cfg.MaxRadius-e.cfg.MinRadius),
			Color:  core.Accents[e.rng.Intn(len(core.Accents))],
		}
	}
}

// PointerMove stores the pointer position; it bends the network on the next tick.
func (e *Engine) PointerMove(x, y float64) {
	e.px, e.py = x, y
	e.pointing = true
}

// PointerLeave forgets the pointer.
func (e *Engine) PointerLeave() {
	e.pointing = false
}

// Pointer returns the stored pointer position and whether it is active.
func (e *Engine) Pointer() (x, y float64, ok bool) {
	return e.px, e.py, e.pointing
}

// Tick advances every point: pointer force, soft speed cap, integration,
// then reflection off the bounds.
func (e *Engine) Tick(dtMillis float64) {
	f := 1.0
	if e.cfg.ScaleByDt && dtMillis > 0 {
		f = dtMillis / frameMillis
	}

	pc := e.cfg.Pointer
	sign := 1.0
	if pc.Mode == config.PointerRepel {
		sign = -1
	}

	for i := range e.points {
		p := &e.points[i]

		if e.pointing {
			dx, dy := e.px-p.X, e.py-p.Y
			d := math.Hypot(dx, dy)
			if d > 0 && d < pc.Radius {
				force := (pc.Radius - d) / pc.Radius * pc.Force
				p.VX += sign * dx / d * force
				p.VY += sign * dy / d * force
			}
		}

		// Soft cap: damp while over the limit
		if math.Hypot(p.VX, p.VY) > e.cfg.SpeedCap {
			p.VX *= e.cfg.Damping
			p.VY *= e.cfg.Damping
		}

		p.X += p.VX * f
		p.Y += p.VY * f

		switch {
		case p.X < 0:
			p.X, p.VX = 0, math.Abs(p.VX)
		case p.X > e.w:
			p.X, p.VX = e.w, -math.Abs(p.VX)
		}
		switch {
		case p.Y < 0:
			p.Y, p.VY = 0, math.Abs(p.VY)
		case p.Y > e.h:
			p.Y, p.VY = e.h, -math.Abs(p.VY)
		}
	}
}

// Click pushes every point within the click radius straight away from (x, y).
func (e *Engine) Click(x, y float64) {
	for i := range e.points {
		p := &e.points[i]
		dx, dy := p.X-x, p.Y-y
		d := math.Hypot(dx, dy)
		if d == 0 || d >= e.cfg.ClickRadius {
			continue
		}
		p.VX += dx / d * e.cfg.ClickForce
		p.VY += dy / d * e.cfg.ClickForce
	}
}

// Resize clamps every point into the new bounds.
func (e *Engine) Resize(w, h float64) {
	e.w, e.h = w, h
	for i := range e.points {
		e.points[i].X = core.Clamp(e.points[i].X, 0, w)
		e.points[i].Y = core.Clamp(e.points[i].Y, 0, h)
	}
}

// Bounds returns the current surface size.
func (e *Engine) Bounds() (w, h float64) {
	return e.w, e.h
}

// Points returns a copy of the current points.
func (e *Engine) Points() []Point {
	out := make([]Point, len(e.points))
	copy(out, e.points)
	return out
}

// Connected reports whether points i and j are joined by an edge.
func (e *Engine) Connected(i, j int) bool {
	_, ok := e.link(i, j)
	return ok
}

func (e *Engine) link(i, j int) (float64, bool) {
	if i == j || i < 0 || j < 0 || i >= len(e.points) || j >= len(e.points) {
		return 0, false
	}
	a, b := e.points[i], e.points[j]
	d := core.Dist(a.X, a.Y, b.X, b.Y)
	if d >= e.cfg.ConnectDist {
		return 0, false
	}
	return 1 - d/e.cfg.ConnectDist, true
}

// Edges lists every connected pair once, with I < J.
func (e *Engine) Edges() []Edge {
	var edges []Edge
	for i := range e.points {
		for j := i + 1; j < len(e.points); j++ {
			if alpha, ok := e.link(i, j); ok {
				edges = append(edges, Edge{I: i, J: j, Alpha: alpha})
			}
		}
	}
	return edges
}

// PointerEdges lists every point within connection distance of the pointer.
func (e *Engine) PointerEdges() []PointerEdge {
	if !e.pointing {
		return nil
	}
	var edges []PointerEdge
	for i, p := range e.points {
		d := core.Dist(p.X, p.Y, e.px, e.py)
		if d < e.cfg.ConnectDist {
			edges = append(edges, PointerEdge{I: i, Alpha: 1 - d/e.cfg.ConnectDist})
		}
	}
	return edges
}

// EdgeColors returns the point-to-point and pointer line colors for a theme.
func EdgeColors(t core.Theme) (line, pointer core.Color) {
	if t == core.ThemeLight {
		return core.ColorSlate, core.ColorInk
	}
	return core.ColorMist, core.ColorSnow
}

// Paint draws edges first and points on top.
func (e *Engine) Paint(c core.Canvas, t core.Theme) {
	line, pointer := EdgeColors(t)
	for _, ed := range e.Edges() {
		a, b := e.points[ed.I], e.points[ed.J]
		c.Line(a.X, a.Y, b.X, b.Y, line, ed.Alpha)
	}
	for _, pe := range e.PointerEdges() {
		p := e.points[pe.I]
		c.Line(p.X, p.Y, e.px, e.py, pointer, pe.Alpha)
	}
	for _, p := range e.points {
		c.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
}
