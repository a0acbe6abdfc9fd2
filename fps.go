package spritecut

import "math"

// DefaultFPSInterval is how often, in milliseconds, the FPS readout refreshes.
const DefaultFPSInterval = 100.0

// FPSCounter samples the loop rate from the tick delta. The readout is
// refreshed every Interval milliseconds rather than every tick so it stays
// legible.
type FPSCounter struct {
	Interval float64

	timer float64
	value int
}

// Sample accumulates dt milliseconds and refreshes the readout from dt once
// the interval has elapsed. It reports whether the readout changed.
func (c *FPSCounter) Sample(dt float64) bool {
	interval := c.Interval
	if interval <= 0 {
		interval = DefaultFPSInterval
	}
	c.timer += dt
	if c.timer < interval || dt <= 0 {
		return false
	}
	c.value = int(math.Trunc(1000 / dt))
	c.timer = 0
	return true
}

// Value returns the last reported frames per second.
func (c *FPSCounter) Value() int {
	return c.value
}
