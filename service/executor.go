package service

import "sync"

// An Executor runs enqueued tasks one after another on a single background
// context. Enqueue may be called from any goroutine, including timer
// callbacks; the tasks themselves never run concurrently.
type Executor interface {
	Enqueue(task func())
}

// BackgroundExecutor is an Executor backed by one worker goroutine and a
// FIFO channel.
type BackgroundExecutor struct {
	lock   sync.Mutex
	tasks  chan func()
	done   chan struct{}
	closed bool
}

// NewBackgroundExecutor creates a BackgroundExecutor and starts its
// worker.
func NewBackgroundExecutor() *BackgroundExecutor {
	e := &BackgroundExecutor{
		tasks: make(chan func(), 16),
		done:  make(chan struct{}),
	}

	go e.run()

	return e
}

func (e *BackgroundExecutor) run() {
	for task := range e.tasks {
		task()
	}

	close(e.done)
}

// Enqueue submits a task. Tasks enqueued after Shutdown are dropped.
func (e *BackgroundExecutor) Enqueue(task func()) {
	e.lock.Lock()
	defer e.lock.Unlock()

	if e.closed {
		return
	}

	e.tasks <- task
}

// Shutdown stops the worker after draining the queued tasks.
func (e *BackgroundExecutor) Shutdown() {
	e.lock.Lock()
	if e.closed {
		e.lock.Unlock()
		<-e.done
		return
	}

	e.closed = true
	close(e.tasks)
	e.lock.Unlock()

	<-e.done
}

// ImmediateExecutor runs every task synchronously on the caller's
// goroutine. It makes evaluation deterministic in tests.
type ImmediateExecutor struct{}

// Enqueue runs the task in place.
func (ImmediateExecutor) Enqueue(task func()) {
	task()
}
