package obj

// Clock is the monotonic simulation clock. It advances once per logical tick
// and feeds shake start times and camera smoothing.
type Clock struct {
	elapsed float64
	dt      float64
}

// NewClock creates a clock with a fixed tick length in seconds.
func NewClock(dt float64) *Clock {
	return &Clock{dt: dt}
}

// Advance moves the clock forward one tick.
func (c *Clock) Advance() {
	if c == nil {
		return
	}
	c.elapsed += c.dt
}

// Now returns elapsed simulation seconds.
func (c *Clock) Now() float64 {
	if c == nil {
		return 0
	}
	return c.elapsed
}

// Dt returns the fixed tick length in seconds.
func (c *Clock) Dt() float64 {
	if c == nil {
		return 0
	}
	return c.dt
}
