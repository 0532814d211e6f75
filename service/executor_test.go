package service

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BackgroundExecutor", func() {
	It("should run tasks in FIFO order", func() {
		e := NewBackgroundExecutor()

		var lock sync.Mutex
		var order []int

		for i := 0; i < 5; i++ {
			i := i
			e.Enqueue(func() {
				lock.Lock()
				order = append(order, i)
				lock.Unlock()
			})
		}

		e.Shutdown()

		Expect(order).To(Equal([]int{0, 1, 2, 3, 4}))
	})

	It("should drain queued tasks on shutdown", func() {
		e := NewBackgroundExecutor()

		ran := 0
		var lock sync.Mutex
		for i := 0; i < 3; i++ {
			e.Enqueue(func() {
				lock.Lock()
				ran++
				lock.Unlock()
			})
		}

		e.Shutdown()

		Expect(ran).To(Equal(3))
	})

	It("should drop tasks enqueued after shutdown", func() {
		e := NewBackgroundExecutor()
		e.Shutdown()

		Expect(func() {
			e.Enqueue(func() {})
		}).NotTo(Panic())
	})

	It("should tolerate repeated shutdown", func() {
		e := NewBackgroundExecutor()

		e.Shutdown()
		Expect(func() { e.Shutdown() }).NotTo(Panic())
	})
})
