package fx

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/showcase/internal/core"
)

func TestFireSpawnsBurst(t *testing.T) {
	c := NewConfetti(rand.New(rand.NewSource(1)))
	if c.Active() {
		t.Fatal("new effect should be idle")
	}

	c.Fire(100, 50)
	ps := c.Particles()
	if len(ps) != BurstSize {
		t.Fatalf("burst size = %d, expected %d", len(ps), BurstSize)
	}
	for i, p := range ps {
		if p.X != 100 || p.Y != 50 {
			t.Errorf("particle %d starts at (%v, %v)", i, p.X, p.Y)
		}
		if p.VX < -BurstSpeed || p.VX > BurstSpeed || p.VY < -BurstSpeed || p.VY > BurstSpeed {
			t.Errorf("particle %d velocity (%v, %v) outside ±%v", i, p.VX, p.VY, BurstSpeed)
		}
		if p.Size < minSize || p.Size >= maxSize {
			t.Errorf("particle %d size %v outside [%v, %v)", i, p.Size, minSize, maxSize)
		}
		if p.Alpha() != 1 {
			t.Errorf("particle %d alpha = %v at birth", i, p.Alpha())
		}
	}
}

func TestLifetime(t *testing.T) {
	c := NewConfetti(rand.New(rand.NewSource(2)))
	c.Fire(0, 0)

	for i := 0; i < BurstLife-1; i++ {
		c.Tick()
	}
	if !c.Active() {
		t.Fatal("burst died early")
	}
	p := c.Particles()[0]
	if p.Life != 1 || p.Alpha() != 0.01 {
		t.Errorf("after %d ticks life=%d alpha=%v", BurstLife-1, p.Life, p.Alpha())
	}

	c.Tick()
	if c.Active() || len(c.Particles()) != 0 {
		t.Error("burst should be gone after its lifetime")
	}
}

func TestGravity(t *testing.T) {
	c := NewConfetti(rand.New(rand.NewSource(3)))
	c.Fire(0, 0)
	before := c.Particles()
	c.Tick()
	after := c.Particles()
	for i := range after {
		if after[i].X != before[i].VX || after[i].Y != before[i].VY {
			t.Errorf("particle %d moved to (%v, %v)", i, after[i].X, after[i].Y)
		}
		if after[i].VY != before[i].VY+BurstGravity {
			t.Errorf("particle %d vy %v, expected %v", i, after[i].VY, before[i].VY+BurstGravity)
		}
	}
}

func TestRender(t *testing.T) {
	c := NewConfetti(rand.New(rand.NewSource(4)))
	scr := core.NewScreen(10, 4)
	c.Render(scr, 8, 16)
	if scr.String() != core.NewScreen(10, 4).String() {
		t.Error("idle effect drew something")
	}

	c.Fire(40, 32)
	c.Render(scr, 8, 16)
	cell := scr.GetCell(5, 2)
	if cell.Blank() || cell.Alpha != core.AlphaOpaque {
		t.Errorf("burst center cell = %+v", cell)
	}

	c.Stop()
	if c.Active() {
		t.Error("Stop should kill the burst")
	}
	c.Render(nil, 8, 16)
}
