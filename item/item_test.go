package item

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Header", func() {
	var (
		now time.Time
		h   Header
	)

	BeforeEach(func() {
		now = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
		h = Header{
			ID:        "item-1",
			Type:      TypePin,
			Timestamp: now.Add(-5 * time.Minute),
			Duration:  10 * time.Minute,
		}
	})

	It("should report ongoing inside the interval", func() {
		Expect(h.IsOngoingAt(now)).To(BeTrue())
	})

	It("should report ongoing at the exact start", func() {
		Expect(h.IsOngoingAt(h.Start())).To(BeTrue())
	})

	It("should not report ongoing at the exact end", func() {
		Expect(h.IsOngoingAt(h.End())).To(BeFalse())
	})

	It("should report ended once the end has passed", func() {
		Expect(h.HasEnded(h.End())).To(BeTrue())
		Expect(h.HasEnded(now)).To(BeFalse())
	})

	It("should only cover the day for all-day items", func() {
		Expect(h.CoversDayOf(now)).To(BeFalse())

		allDay := Header{
			ID:        "item-2",
			AllDay:    true,
			Timestamp: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			Duration:  24 * time.Hour,
		}
		Expect(allDay.CoversDayOf(now)).To(BeTrue())
		Expect(allDay.CoversDayOf(now.Add(24 * time.Hour))).To(BeFalse())
	})

	It("should compare calendar days", func() {
		Expect(SameDay(now, now.Add(2*time.Hour))).To(BeTrue())
		Expect(SameDay(now, now.Add(13*time.Hour))).To(BeFalse())
	})
})

var _ = Describe("BoundaryTimeout", func() {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	It("should return time to start for a future item", func() {
		h := Header{Timestamp: now.Add(10 * time.Minute), Duration: time.Hour}
		Expect(BoundaryTimeout(h, now)).To(Equal(10 * time.Minute))
	})

	It("should return time to end for an ongoing item", func() {
		h := Header{Timestamp: now.Add(-5 * time.Minute), Duration: 10 * time.Minute}
		Expect(BoundaryTimeout(h, now)).To(Equal(5 * time.Minute))
	})

	It("should return 0 for a past item", func() {
		h := Header{Timestamp: now.Add(-time.Hour), Duration: 10 * time.Minute}
		Expect(BoundaryTimeout(h, now)).To(BeZero())
	})
})

var _ = Describe("Any", func() {
	It("should consult every filter even after one accepts", func() {
		seen := 0
		f := Any(
			func(h Header) bool {
				seen++
				return true
			},
			func(h Header) bool {
				seen++
				return false
			},
		)

		Expect(f(Header{})).To(BeTrue())
		Expect(seen).To(Equal(2))
	})

	It("should reject when all filters reject", func() {
		f := Any(func(h Header) bool { return false })
		Expect(f(Header{})).To(BeFalse())
	})
})

var _ = Describe("MinTimeout", func() {
	It("should treat zero as absent", func() {
		Expect(MinTimeout(0, time.Second)).To(Equal(time.Second))
		Expect(MinTimeout(time.Second, 0)).To(Equal(time.Second))
		Expect(MinTimeout(0, 0)).To(BeZero())
	})

	It("should pick the smaller timeout", func() {
		Expect(MinTimeout(time.Second, time.Minute)).To(Equal(time.Second))
	})
})
