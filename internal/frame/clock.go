// Package frame provides the per-widget frame clock.
//
// Hosts own the event loop (Bubble Tea, Ebitengine) and feed wall-clock
// timestamps into a Clock. The clock decides which of them become widget
// ticks, throttled to the widget's rate, and hands each tick the elapsed
// milliseconds since the previous one.
package frame

import (
	"sync/atomic"
	"time"
)

// DefaultRate is used when a widget does not ask for a specific rate.
const DefaultRate = 60

// MaxDelta caps the delta handed to a callback so a stalled or backgrounded
// host does not produce one enormous step.
const MaxDelta = 250 * time.Millisecond

// slack lets a host tick that arrives a hair early still count.
const slack = time.Millisecond

// generations hands out tokens unique across every clock in the process,
// so a host that swaps clocks never mistakes an old tick for a new one.
var generations atomic.Uint64

// Clock throttles host ticks to a fixed rate and tracks elapsed time.
// It is not safe for concurrent use; it belongs to the host's event loop.
type Clock struct {
	interval time.Duration
	last     time.Time
	running  bool
	gen      uint64
}

// NewClock creates a stopped clock at the given rate (ticks per second).
func NewClock(rate int) *Clock {
	if rate <= 0 {
		rate = DefaultRate
	}
	return &Clock{interval: time.Second / time.Duration(rate)}
}

// Interval returns the target time between ticks.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Running reports whether the clock has been started and not stopped.
func (c *Clock) Running() bool {
	return c.running
}

// Generation returns the current generation token.
func (c *Clock) Generation() uint64 {
	return c.gen
}

// Start arms the clock at now and returns a fresh generation token.
// Host ticks must carry this token; ticks from earlier generations are ignored.
func (c *Clock) Start(now time.Time) uint64 {
	c.gen = generations.Add(1)
	c.last = now
	c.running = true
	return c.gen
}

// Stop disarms the clock. Once Stop returns, Tick never invokes a callback
// for any token issued before the call. Stopping twice is harmless.
func (c *Clock) Stop() {
	if !c.running {
		return
	}
	c.running = false
	c.gen = generations.Add(1)
}

// Tick offers a host timestamp to the clock. When the clock is running,
// gen is current and a full interval has passed, fn is called with the
// elapsed milliseconds and Tick returns true.
func (c *Clock) Tick(now time.Time, gen uint64, fn func(dtMillis float64)) bool {
	dt, due := c.advance(now, gen)
	if !due {
		return false
	}
	if fn != nil {
		fn(dt)
	}
	return true
}

func (c *Clock) advance(now time.Time, gen uint64) (float64, bool) {
	if !c.running || gen != c.gen {
		return 0, false
	}

	delta := now.Sub(c.last)
	if delta < 0 {
		// Clock went backwards; re-anchor and wait for the next interval.
		c.last = now
		return 0, false
	}
	if delta+slack < c.interval {
		return 0, false
	}

	// Keep the cadence aligned to the interval grid instead of drifting
	// by however late this tick arrived.
	if delta < c.interval {
		c.last = now
	} else {
		c.last = now.Add(-(delta % c.interval))
	}

	if delta > MaxDelta {
		delta = MaxDelta
	}
	return float64(delta) / float64(time.Millisecond), true
}
