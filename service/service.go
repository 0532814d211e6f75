// Package service implements the timeline event scheduling service: a
// serialized evaluation pass that decides, per registered sub-service,
// which single item is relevant right now and when the next wake-up is
// due.
package service

import (
	"time"

	"github.com/wristlab/timeline/item"
)

// A Service is a scheduling sub-service (calendar indicator, peek HUD).
// The set of services is fixed when the scheduler is built; there is no
// dynamic registration.
type Service interface {
	// Name identifies the service. Names must be unique.
	Name() string

	// Filter decides whether a header is a candidate for this service in
	// the current pass. Filter sees every stored header once per pass, in
	// timestamp order, and may accumulate per-pass statistics regardless
	// of whether the header ultimately wins.
	Filter(h item.Header, now time.Time) bool

	// Update receives the winning item of the pass, or nil when no header
	// was accepted. The returned delay requests a re-evaluation; 0
	// requests none.
	Update(it *item.Item, now time.Time) time.Duration
}

// A PassObserver is a Service that wants bracketing callbacks around each
// evaluation pass. Services that do not implement it are simply not
// called, mirroring the "empty callback slot" tolerance of the protocol.
type PassObserver interface {
	WillUpdate(now time.Time)
	DidUpdate(now time.Time)
}

// A Comparer is a Service that ranks its accepted headers itself. Without
// it, the earliest timestamp wins.
type Comparer interface {
	// Outranks returns true if challenger should replace incumbent as the
	// service's candidate.
	Outranks(challenger, incumbent item.Header, now time.Time) bool
}

// A Refresher accepts asynchronous re-evaluation requests.
type Refresher interface {
	RequestRefresh()
}

// An EmitterAttacher is a Service that broadcasts events through the
// scheduler's hook surface. The scheduler injects itself at build time.
type EmitterAttacher interface {
	AttachEmitter(e Emitter)
}

// A RefresherAttacher is a Service whose runtime configuration changes
// must trigger a refresh. The scheduler injects itself at build time.
type RefresherAttacher interface {
	AttachRefresher(r Refresher)
}
