package service

import (
	"sync"
	"time"
)

// A Clock provides the notion of "now" shared by every sub-service within
// one evaluation pass.
type Clock interface {
	Now() time.Time
}

// WallClock reads the runtime clock.
type WallClock struct{}

// Now returns the current wall time.
func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock advanced by hand. Tests use it to replay
// temporal scenarios deterministically.
type ManualClock struct {
	lock sync.Mutex
	now  time.Time
}

// NewManualClock creates a ManualClock at t.
func NewManualClock(t time.Time) *ManualClock {
	return &ManualClock{now: t}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.lock.Lock()
	c.now = c.now.Add(d)
	c.lock.Unlock()
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.lock.Lock()
	c.now = t
	c.lock.Unlock()
}
