package service

import (
	"sync"
	"sync/atomic"
	"time"
)

// A Timer is a single-shot, cancelable wake-up source. The callback runs
// on the timer's own context, so implementations hand the real work to the
// scheduler's executor.
type Timer interface {
	// Start arms the timer for d. A previously armed expiry is replaced.
	Start(d time.Duration, f func()) bool

	// Stop disarms the timer. It returns false when the callback is
	// currently executing; the caller treats that as "a refresh is already
	// in flight" rather than an error.
	Stop() bool
}

// WallTimer is a Timer over the runtime clock.
type WallTimer struct {
	lock  sync.Mutex
	timer *time.Timer
	busy  atomic.Bool
}

// NewWallTimer creates a disarmed WallTimer.
func NewWallTimer() *WallTimer {
	return &WallTimer{}
}

// Start arms the timer for d.
func (t *WallTimer) Start(d time.Duration, f func()) bool {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}

	t.timer = time.AfterFunc(d, func() {
		t.busy.Store(true)
		f()
		t.busy.Store(false)
	})

	return true
}

// Stop disarms the timer, reporting busy while the callback runs.
func (t *WallTimer) Stop() bool {
	if t.busy.Load() {
		return false
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}

	return true
}
