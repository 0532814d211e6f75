package service

import (
	"log"
	"time"
)

// EventLogger is a hook that prints the events announced by the
// sub-services and the outcome of each evaluation pass.
type EventLogger struct {
	*log.Logger
}

// NewEventLogger returns a new EventLogger which will write into the logger
func NewEventLogger(logger *log.Logger) *EventLogger {
	h := new(EventLogger)
	h.Logger = logger
	return h
}

// Func writes the event information into the logger
func (h *EventLogger) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosCalendarStatus:
		evt := ctx.Item.(CalendarStatusEvent)
		h.Printf("calendar: ongoing=%t", evt.Ongoing)
	case HookPosPeekStatus:
		evt := ctx.Item.(PeekEvent)
		h.Printf("peek: %s item=%s concurrent=%d first=%t future_empty=%t",
			evt.TimeType, evt.ItemID, evt.NumConcurrent,
			evt.IsFirstEvent, evt.IsFutureEmpty)
	case HookPosAfterEvaluate:
		timeout := ctx.Detail.(time.Duration)
		if timeout > 0 {
			h.Printf("evaluated, next wake-up in %s", timeout)
		} else {
			h.Printf("evaluated, timer disarmed")
		}
	}
}
