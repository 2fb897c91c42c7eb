package engine

import (
	"sync/atomic"
	"time"
)

// ManualClock is a TimeProvider that only moves when told to
// Safe for concurrent use; the scheduler and tests may share one
type ManualClock struct {
	origin time.Time
	offset atomic.Int64 // Nanoseconds past origin
}

// NewManualClock creates a clock reading start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{origin: start}
}

// Now returns the current reading
func (c *ManualClock) Now() time.Time {
	return c.origin.Add(time.Duration(c.offset.Load()))
}

// Set jumps to t, which may lie before the current reading
func (c *ManualClock) Set(t time.Time) {
	c.offset.Store(int64(t.Sub(c.origin)))
}

// Advance moves the clock forward by d and returns the new reading
func (c *ManualClock) Advance(d time.Duration) time.Time {
	return c.origin.Add(time.Duration(c.offset.Add(int64(d))))
}

// Step advances the clock by interval n times, calling fn after each step
// Used to drive a tick loop deterministically
func (c *ManualClock) Step(n int, interval time.Duration, fn func(now time.Time)) {
	for range n {
		now := c.Advance(interval)
		if fn != nil {
			fn(now)
		}
	}
}
