package service

import "github.com/wristlab/timeline/item"

// HookPosBeforeEvaluate triggers before an evaluation pass. The hook item
// is the pass time.
var HookPosBeforeEvaluate = &HookPos{Name: "BeforeEvaluate"}

// HookPosAfterEvaluate triggers after an evaluation pass. The hook item is
// the pass time and the detail is the rearm timeout (0 when disarmed).
var HookPosAfterEvaluate = &HookPos{Name: "AfterEvaluate"}

// HookPosCalendarStatus triggers when the calendar sub-service announces
// its state. The hook item is a CalendarStatusEvent.
var HookPosCalendarStatus = &HookPos{Name: "CalendarStatus"}

// HookPosPeekStatus triggers when the peek sub-service announces its
// state. The hook item is a PeekEvent.
var HookPosPeekStatus = &HookPos{Name: "PeekStatus"}

// An Emitter broadcasts sub-service events to the registered hooks.
type Emitter interface {
	Emit(pos *HookPos, event interface{})
}

// CalendarStatusEvent reports whether a non-all-day calendar pin is
// ongoing right now. It is re-announced on every evaluation pass.
type CalendarStatusEvent struct {
	Ongoing bool
}

// TimeType classifies the relation between now and the surfacing item.
type TimeType int

// The possible time types.
const (
	// TimeNone means nothing is surfacing.
	TimeNone TimeType = iota

	// TimeSomeTimeNext means a future item exists but its show window has
	// not opened yet.
	TimeSomeTimeNext

	// TimeShowWillStart means the show window is open and the event has
	// not started.
	TimeShowWillStart

	// TimeShowStarted means the event has started and is still showing.
	TimeShowStarted

	// TimeWillEnd means the event is showing and the next boundary is the
	// event end.
	TimeWillEnd
)

func (t TimeType) String() string {
	switch t {
	case TimeNone:
		return "none"
	case TimeSomeTimeNext:
		return "some_time_next"
	case TimeShowWillStart:
		return "show_will_start"
	case TimeShowStarted:
		return "show_started"
	case TimeWillEnd:
		return "will_end"
	default:
		return "unknown"
	}
}

// PeekEvent carries the state that drives the peek HUD.
type PeekEvent struct {
	TimeType TimeType

	// ItemID is the surfacing item, or item.IDNone.
	ItemID item.ID

	// NumConcurrent counts the other items currently in their show
	// window.
	NumConcurrent int

	// IsFirstEvent reports whether the surfacing item is the first
	// upcoming event. Suppressed while an all-day event is visible.
	IsFirstEvent bool

	// IsFutureEmpty reports that no displayable event lies ahead.
	// Suppressed while an all-day event is visible.
	IsFutureEmpty bool
}
