// Package peek implements the sub-service behind the timeline peek HUD:
// the widget that surfaces what is happening now or very soon.
package peek

import (
	"sync/atomic"
	"time"

	"github.com/wristlab/timeline/item"
	"github.com/wristlab/timeline/service"
)

// DefaultShowBefore is how long before an event's start the peek
// surfaces it. Runtime-tunable through SetShowBefore.
const DefaultShowBefore = 15 * time.Minute

// hideAfterStart caps how long a non-persistent item keeps showing after
// its start. Persistent items show for their full duration.
const hideAfterStart = 10 * time.Minute

// passState is the per-pass working context. It is owned exclusively by
// the sub-service between WillUpdate and DidUpdate of one pass.
type passState struct {
	numPeeking            int
	todayHasAllDay        bool
	todayTimedEventPassed bool
	futureHasEvent        bool
	first                 item.Header

	// nextTimeout accumulates the smallest boundary timeout discovered
	// while comparing candidates, so the rearm computation reuses work
	// already done during the scan.
	nextTimeout time.Duration
}

// SubService computes the peek HUD state: the surfacing item, its time
// classification, concurrency count, and all-day suppression.
type SubService struct {
	emitter   service.Emitter
	refresher service.Refresher

	showBeforeNs atomic.Int64

	pass passState
}

// New creates the peek sub-service with the default show-before window.
func New() *SubService {
	s := &SubService{}
	s.showBeforeNs.Store(int64(DefaultShowBefore))

	return s
}

// Name identifies the sub-service.
func (s *SubService) Name() string {
	return "peek"
}

// AttachEmitter injects the event broadcast surface.
func (s *SubService) AttachEmitter(e service.Emitter) {
	s.emitter = e
}

// AttachRefresher injects the refresh entry point used when the
// show-before tunable changes.
func (s *SubService) AttachRefresher(r service.Refresher) {
	s.refresher = r
}

// ShowBefore returns the current show-before window.
func (s *SubService) ShowBefore() time.Duration {
	return time.Duration(s.showBeforeNs.Load())
}

// SetShowBefore changes the show-before window and triggers an immediate
// refresh. Safe to call from any goroutine.
func (s *SubService) SetShowBefore(d time.Duration) {
	s.showBeforeNs.Store(int64(d))

	if s.refresher != nil {
		s.refresher.RequestRefresh()
	}
}

// WillUpdate resets the per-pass context.
func (s *SubService) WillUpdate(now time.Time) {
	s.pass = passState{}
}

// DidUpdate ends the pass. The per-pass context is dead afterwards.
func (s *SubService) DidUpdate(now time.Time) {
}

// showDuration returns how long the item keeps showing after its start.
func showDuration(h item.Header) time.Duration {
	if h.Persistent {
		return h.Duration
	}

	if h.Duration < hideAfterStart {
		return h.Duration
	}

	return hideAfterStart
}

// isPeeking returns true if now falls in the item's show window,
// [start - showBefore, start + showDuration], both ends inclusive.
func (s *SubService) isPeeking(h item.Header, now time.Time) bool {
	windowStart := h.Start().Add(-s.ShowBefore())
	windowEnd := h.Start().Add(showDuration(h))

	return !now.Before(windowStart) && !now.After(windowEnd)
}

// Filter classifies one header and accumulates the pass statistics. It
// runs on every stored header once per pass, in timestamp order.
func (s *SubService) Filter(h item.Header, now time.Time) bool {
	if h.CoversDayOf(now) {
		// All-day events suppress the peek but never surface themselves.
		s.pass.todayHasAllDay = true
		return false
	}

	if h.AllDay {
		return false
	}

	if !h.Dismissed && !h.HasEnded(now) && s.pass.first.IsZero() {
		s.pass.first = h
	}

	if !h.Dismissed && !h.HasEnded(now) {
		s.pass.futureHasEvent = true
	}

	if now.After(h.Start()) && item.SameDay(now, h.Start()) {
		s.pass.todayTimedEventPassed = true
	}

	if h.HasEnded(now) {
		return false
	}

	if h.Dismissed {
		return false
	}

	if s.isPeeking(h, now) {
		s.pass.numPeeking++
		return true
	}

	return !h.Start().Before(now)
}

// Outranks ranks two accepted headers: showing beats not-showing,
// non-persistent beats persistent among showing items, then the later
// start wins among showing items and the earlier start wins otherwise.
// It also records the smaller boundary timeout of the two into the pass
// context.
func (s *SubService) Outranks(
	challenger, incumbent item.Header,
	now time.Time,
) bool {
	boundary := item.MinTimeout(
		item.BoundaryTimeout(challenger, now),
		item.BoundaryTimeout(incumbent, now),
	)
	s.pass.nextTimeout = item.MinTimeout(s.pass.nextTimeout, boundary)

	challengerPeeking := s.isPeeking(challenger, now)
	incumbentPeeking := s.isPeeking(incumbent, now)

	if challengerPeeking != incumbentPeeking {
		return challengerPeeking
	}

	if challengerPeeking {
		if challenger.Persistent != incumbent.Persistent {
			return !challenger.Persistent
		}

		return challenger.Timestamp.After(incumbent.Timestamp)
	}

	return challenger.Timestamp.Before(incumbent.Timestamp)
}

// Update classifies the winning item against now, announces the peek
// state, and requests the next boundary wake-up.
func (s *SubService) Update(it *item.Item, now time.Time) time.Duration {
	allDayVisible := s.pass.todayHasAllDay && !s.pass.todayTimedEventPassed

	event := service.PeekEvent{
		TimeType: service.TimeNone,
		ItemID:   item.IDNone,
	}

	own := time.Duration(0)

	if it != nil {
		h := it.Header
		windowStart := h.Start().Add(-s.ShowBefore())
		showEnd := h.Start().Add(showDuration(h))

		switch {
		case now.Before(windowStart):
			event.TimeType = service.TimeSomeTimeNext
			own = windowStart.Sub(now)
		case now.Before(h.Start()):
			event.TimeType = service.TimeShowWillStart
			own = h.Start().Sub(now)
		case !showEnd.Before(h.End()):
			event.TimeType = service.TimeWillEnd
			own = h.End().Sub(now)
		default:
			event.TimeType = service.TimeShowStarted
			own = showEnd.Sub(now)
		}

		event.ItemID = h.ID
		event.IsFirstEvent = !allDayVisible && h.ID == s.pass.first.ID
	}

	event.NumConcurrent = max(s.pass.numPeeking-1, 0)
	event.IsFutureEmpty = !allDayVisible && !s.pass.futureHasEvent

	if s.emitter != nil {
		s.emitter.Emit(service.HookPosPeekStatus, event)
	}

	return item.MinTimeout(own, s.pass.nextTimeout)
}
