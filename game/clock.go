package game

import "time"

// FrameClock turns successive frame timestamps into elapsed durations.
// The first sample yields zero so the first tick cannot jump.
type FrameClock struct {
	last    time.Time
	started bool
}

// Elapsed returns the time since the previous call. A timestamp earlier than
// the previous one yields zero.
func (c *FrameClock) Elapsed(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}

// Reset forgets the previous sample, e.g. after the loop was paused.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = time.Time{}
}
