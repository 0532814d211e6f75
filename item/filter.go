package item

import "time"

// A Filter decides whether a header is a candidate for the caller. Filters
// run once per header during a store scan and must be cheap.
type Filter func(h Header) bool

// Any combines filters so that the result accepts a header if at least one
// of the filters accepts it. Every filter is consulted on every header, so
// filters that accumulate side statistics still see the full scan.
func Any(filters ...Filter) Filter {
	return func(h Header) bool {
		accepted := false
		for _, f := range filters {
			if f(h) {
				accepted = true
			}
		}

		return accepted
	}
}

// BoundaryTimeout returns the delay from now until the item's next natural
// boundary: the start for a future item, the end for an ongoing one. It
// returns 0 when the item is fully in the past.
func BoundaryTimeout(h Header, now time.Time) time.Duration {
	if now.Before(h.Start()) {
		return h.Start().Sub(now)
	}

	if now.Before(h.End()) {
		return h.End().Sub(now)
	}

	return 0
}

// MinTimeout returns the smaller of two timeouts, treating 0 as "no
// timeout requested".
func MinTimeout(a, b time.Duration) time.Duration {
	if a == 0 {
		return b
	}

	if b == 0 {
		return a
	}

	if a < b {
		return a
	}

	return b
}
