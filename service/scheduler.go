package service

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wristlab/timeline/item"
	"github.com/wristlab/timeline/store"
)

// Scheduler is the timeline evaluation core. One serialized pass walks the
// item store once, resolves each sub-service's winning item, delivers
// updates, and arms the wake-up timer for the earliest boundary.
type Scheduler struct {
	HookableBase

	evalLock       sync.Mutex
	refreshPending atomic.Bool

	store    store.Store
	clock    Clock
	timer    Timer
	executor Executor
	services []Service

	// candidates holds the per-pass working state, one slot per service.
	// Only touched while evalLock is held.
	candidates []item.Header
}

// Builder builds schedulers.
type Builder struct {
	store    store.Store
	clock    Clock
	timer    Timer
	executor Executor
	services []Service
}

// MakeBuilder creates a Builder with default wall-clock primitives.
func MakeBuilder() Builder {
	return Builder{
		clock: WallClock{},
	}
}

// WithStore sets the item store to evaluate against.
func (b Builder) WithStore(s store.Store) Builder {
	b.store = s
	return b
}

// WithClock sets the clock that defines "now" for each pass.
func (b Builder) WithClock(c Clock) Builder {
	b.clock = c
	return b
}

// WithTimer sets the wake-up timer primitive.
func (b Builder) WithTimer(t Timer) Builder {
	b.timer = t
	return b
}

// WithExecutor sets the background execution context.
func (b Builder) WithExecutor(e Executor) Builder {
	b.executor = e
	return b
}

// WithServices sets the sub-services, in registration order. The set is
// closed once Build is called.
func (b Builder) WithServices(services ...Service) Builder {
	b.services = append(b.services, services...)
	return b
}

// Build creates the Scheduler. The service is essential infrastructure:
// a missing store or an unusable timer is unrecoverable and panics.
func (b Builder) Build() *Scheduler {
	if b.store == nil {
		log.Panic("scheduler requires an item store")
	}

	if b.timer == nil {
		b.timer = NewWallTimer()
	}
	if b.timer == nil || b.clock == nil {
		log.Panic("cannot create scheduler timing primitives")
	}

	if b.executor == nil {
		b.executor = NewBackgroundExecutor()
	}

	s := &Scheduler{
		store:    b.store,
		clock:    b.clock,
		timer:    b.timer,
		executor: b.executor,
	}

	names := make(map[string]bool)
	for _, svc := range b.services {
		if svc == nil {
			continue
		}

		if names[svc.Name()] {
			log.Panic("service " + svc.Name() + " already registered")
		}
		names[svc.Name()] = true

		s.services = append(s.services, svc)

		if ea, ok := svc.(EmitterAttacher); ok {
			ea.AttachEmitter(s)
		}
		if ra, ok := svc.(RefresherAttacher); ok {
			ra.AttachRefresher(s)
		}
	}

	s.candidates = make([]item.Header, len(s.services))

	b.store.SetObserver(s)

	return s
}

// NotifyChange implements store.Observer. Every store mutation funnels
// into the debounced refresh path.
func (s *Scheduler) NotifyChange() {
	s.RequestRefresh()
}

// RequestRefresh asks for a re-evaluation. It is safe to call from any
// goroutine, including timer callbacks. Rapid-fire requests collapse into
// a single pending evaluation: at most one pass is queued or running at
// any time, plus at most one follow-up for requests that arrive mid-pass.
func (s *Scheduler) RequestRefresh() {
	if !s.refreshPending.CompareAndSwap(false, true) {
		return
	}

	s.executor.Enqueue(s.evaluateTask)
}

func (s *Scheduler) evaluateTask() {
	// Clearing before the pass lets a request that arrives mid-pass queue
	// exactly one follow-up evaluation.
	s.refreshPending.Store(false)
	s.Evaluate()
}

// Evaluate runs one full evaluation pass. It normally runs on the
// background executor; tests call it directly. Passes never interleave.
func (s *Scheduler) Evaluate() {
	s.evalLock.Lock()
	defer s.evalLock.Unlock()

	s.timer.Stop()

	now := s.clock.Now()

	hookCtx := HookCtx{
		Domain: s,
		Pos:    HookPosBeforeEvaluate,
		Item:   now,
	}
	s.InvokeHook(hookCtx)

	for i, svc := range s.services {
		s.candidates[i] = item.Header{}

		if po, ok := svc.(PassObserver); ok {
			po.WillUpdate(now)
		}
	}

	_, status := s.store.NextHeader(s.passFilter(now))
	if status == store.StatusError {
		// Degraded pass: every service is told "no item" and the system
		// recovers on the next mutation-triggered refresh. Pass statistics
		// accumulated before the failure are discarded along with the
		// candidates, so the delivered state is fully empty.
		log.Printf("timeline: item store scan failed, running empty pass")
		for i, svc := range s.services {
			s.candidates[i] = item.Header{}

			if po, ok := svc.(PassObserver); ok {
				po.WillUpdate(now)
			}
		}
	}

	nextTimeout := s.deliverUpdates(now)

	for _, svc := range s.services {
		if po, ok := svc.(PassObserver); ok {
			po.DidUpdate(now)
		}
	}

	if nextTimeout > 0 {
		s.timer.Start(nextTimeout, s.RequestRefresh)
	}

	hookCtx.Pos = HookPosAfterEvaluate
	hookCtx.Detail = nextTimeout
	s.InvokeHook(hookCtx)
}

// passFilter builds the combined predicate for one store scan. Every
// service's filter sees every header in registration order; acceptance
// feeds the service's candidate slot through its comparator.
func (s *Scheduler) passFilter(now time.Time) item.Filter {
	return func(h item.Header) bool {
		accepted := false

		for i, svc := range s.services {
			if !svc.Filter(h, now) {
				continue
			}
			accepted = true

			if s.candidates[i].IsZero() ||
				s.outranks(svc, h, s.candidates[i], now) {
				s.candidates[i] = h
			}
		}

		return accepted
	}
}

func (s *Scheduler) outranks(
	svc Service,
	challenger, incumbent item.Header,
	now time.Time,
) bool {
	if c, ok := svc.(Comparer); ok {
		return c.Outranks(challenger, incumbent, now)
	}

	return challenger.Timestamp.Before(incumbent.Timestamp)
}

// deliverUpdates materializes each winner, invokes Update, and folds the
// requested delays with the winners' natural boundary timeouts.
func (s *Scheduler) deliverUpdates(now time.Time) time.Duration {
	nextTimeout := time.Duration(0)

	for i, svc := range s.services {
		var winner *item.Item

		candidate := s.candidates[i]
		if !candidate.IsZero() {
			full, err := s.store.Item(candidate.ID)
			if err != nil {
				log.Printf("timeline: cannot materialize item %s: %v",
					candidate.ID, err)
			} else {
				winner = &full
				nextTimeout = item.MinTimeout(nextTimeout,
					item.BoundaryTimeout(candidate, now))
			}
		}

		requested := svc.Update(winner, now)
		nextTimeout = item.MinTimeout(nextTimeout, requested)
	}

	return nextTimeout
}

// Emit broadcasts a sub-service event through the scheduler's hooks.
func (s *Scheduler) Emit(pos *HookPos, event interface{}) {
	s.InvokeHook(HookCtx{
		Domain: s,
		Pos:    pos,
		Item:   event,
	})
}

// Shutdown disarms the timer and stops the background executor. Taking
// the evaluation lock first guarantees no pass is mid-flight.
func (s *Scheduler) Shutdown() {
	s.evalLock.Lock()
	s.timer.Stop()
	s.evalLock.Unlock()

	if e, ok := s.executor.(*BackgroundExecutor); ok {
		e.Shutdown()
	}
}
