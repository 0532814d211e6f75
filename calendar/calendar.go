// Package calendar implements the sub-service behind the "ongoing
// calendar event" indicator.
package calendar

import (
	"time"

	"github.com/wristlab/timeline/item"
	"github.com/wristlab/timeline/service"
)

// SubService tracks whether a non-all-day calendar pin is ongoing right
// now. It is a two-state machine; the current state is re-announced on
// every evaluation pass so that late-joining consumers converge without a
// transition.
type SubService struct {
	emitter service.Emitter
	ongoing bool
}

// New creates the calendar sub-service.
func New() *SubService {
	return &SubService{}
}

// Name identifies the sub-service.
func (s *SubService) Name() string {
	return "calendar"
}

// AttachEmitter injects the event broadcast surface.
func (s *SubService) AttachEmitter(e service.Emitter) {
	s.emitter = e
}

// Filter accepts pin-type, non-all-day items that are ongoing or start in
// the future. Past and all-day items never drive the indicator. No
// comparator is supplied, so the soonest qualifying pin wins.
func (s *SubService) Filter(h item.Header, now time.Time) bool {
	if h.Type != item.TypePin || h.AllDay {
		return false
	}

	return h.IsOngoingAt(now) || h.StartsAfter(now)
}

// Update recomputes the ongoing state and announces it. It requests no
// timeout of its own; the scheduler rearms from the winning item's
// start/end boundaries.
func (s *SubService) Update(it *item.Item, now time.Time) time.Duration {
	s.ongoing = it != nil && it.IsOngoingAt(now)

	if s.emitter != nil {
		s.emitter.Emit(service.HookPosCalendarStatus,
			service.CalendarStatusEvent{Ongoing: s.ongoing})
	}

	return 0
}

// Ongoing returns the current state.
func (s *SubService) Ongoing() bool {
	return s.ongoing
}
