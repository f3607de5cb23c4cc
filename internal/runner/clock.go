package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Clock tracks run time and derives the world speed from it.
type Clock struct {
	elapsed float64
	cfg     config.SpeedConfig
}

// NewClock creates a clock for the given speed ramp.
func NewClock(cfg config.SpeedConfig) *Clock {
	return &Clock{cfg: cfg}
}

// Reset zeroes the elapsed time.
func (c *Clock) Reset() {
	c.elapsed = 0
}

// Advance adds dt seconds of run time.
func (c *Clock) Advance(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Elapsed returns the seconds since the run started.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Speed returns the current world speed.
func (c *Clock) Speed() float64 {
	return c.SpeedAt(c.elapsed)
}

// SpeedAt returns the world speed after elapsed seconds:
// base + accel*elapsed, capped at max.
func (c *Clock) SpeedAt(elapsed float64) float64 {
	return math.Min(c.cfg.Max, c.cfg.Base+c.cfg.Accel*elapsed)
}
