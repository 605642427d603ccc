package dialog

import "time"

// Clock is the time source for the blink timer. It is injected so hosts
// can drive it from wall time or frame counts and tests can step it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock stopped at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// TickClock advances by a fixed step each time Tick is called. Game loops
// with a fixed update rate use it to tie the blink to frames.
type TickClock struct {
	ManualClock
	Step time.Duration
}

// NewTickClock returns a clock advancing by one tick of the given rate.
func NewTickClock(ticksPerSecond int) *TickClock {
	if ticksPerSecond < 1 {
		ticksPerSecond = 60
	}
	return &TickClock{Step: time.Second / time.Duration(ticksPerSecond)}
}

// Tick advances the clock by one step.
func (c *TickClock) Tick() {
	c.Advance(c.Step)
}
