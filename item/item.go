// Package item defines the timeline item model shared by the scheduling
// service and the item stores.
package item

import "time"

// An ID uniquely identifies a timeline item.
type ID string

// IDNone is the sentinel for "no item".
const IDNone ID = ""

// Type classifies a timeline item.
type Type int

// The possible item types.
const (
	TypePin Type = iota
	TypeNotification
	TypeReminder
)

func (t Type) String() string {
	switch t {
	case TypePin:
		return "pin"
	case TypeNotification:
		return "notification"
	case TypeReminder:
		return "reminder"
	default:
		return "unknown"
	}
}

// A Header is the read-only summary of a timeline item. Headers are
// snapshots produced by a store; the scheduling service never mutates them.
type Header struct {
	ID       ID
	ParentID ID
	Type     Type

	// Timestamp is the event start time.
	Timestamp time.Time

	// Duration is the event length. All-day items carry the full day.
	Duration time.Duration

	AllDay     bool
	Persistent bool
	Dismissed  bool
}

// Start returns the event start time.
func (h Header) Start() time.Time {
	return h.Timestamp
}

// End returns the event end time.
func (h Header) End() time.Time {
	return h.Timestamp.Add(h.Duration)
}

// IsOngoingAt returns true if now falls in [start, end).
func (h Header) IsOngoingAt(now time.Time) bool {
	return !now.Before(h.Start()) && now.Before(h.End())
}

// StartsAfter returns true if the event starts strictly after now.
func (h Header) StartsAfter(now time.Time) bool {
	return h.Start().After(now)
}

// HasEnded returns true if the event end has passed.
func (h Header) HasEnded(now time.Time) bool {
	return !now.Before(h.End())
}

// CoversDayOf returns true for an all-day item whose span contains now.
func (h Header) CoversDayOf(now time.Time) bool {
	return h.AllDay && h.IsOngoingAt(now)
}

// IsZero returns true for the "no item" sentinel header.
func (h Header) IsZero() bool {
	return h.ID == IDNone
}

// SameDay returns true if a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// An Item is a fully materialized timeline item, including the layout
// attributes that the stores keep out of the header scan path.
type Item struct {
	Header

	// Attributes holds the display payload (title, icon keys, and similar)
	// as opaque key-value pairs. The scheduling service passes them through
	// untouched.
	Attributes map[string]string
}
