// Package store provides the persistent timeline item stores consumed by
// the scheduling service.
package store

import "github.com/wristlab/timeline/item"

// Status is the result of a header scan.
type Status int

// The possible scan results.
const (
	// StatusSuccess means a header accepted by the filter was found.
	StatusSuccess Status = iota

	// StatusNoMoreItems means no stored header was accepted.
	StatusNoMoreItems

	// StatusError means the scan failed. The caller treats the pass as
	// empty and retries on the next trigger.
	StatusError
)

// An Observer is notified after every store mutation. The scheduling
// service registers itself here to trigger re-evaluation.
type Observer interface {
	NotifyChange()
}

// A Store holds timeline items and supports the single ordered scan that
// the scheduling service performs per evaluation pass.
type Store interface {
	// NextHeader invokes f on every stored header in timestamp order and
	// returns the earliest accepted one. Every header is visited even
	// after a match, so filters may accumulate side statistics over the
	// full scan.
	NextHeader(f item.Filter) (item.Header, Status)

	// Item materializes the full item for a header previously returned by
	// NextHeader.
	Item(id item.ID) (item.Item, error)

	// Put inserts or replaces an item and notifies the observer.
	Put(it item.Item)

	// Remove deletes an item and notifies the observer. Removing an
	// unknown ID is a no-op.
	Remove(id item.ID)

	// MarkDismissed flags an item as dismissed by the user and notifies
	// the observer. Unknown or already-dismissed IDs are a no-op.
	MarkDismissed(id item.ID)

	// SetObserver registers the single mutation observer.
	SetObserver(o Observer)
}
