package semaphore

import "sync"

// Sem is a counting semaphore built from a mutex and a single condition
// variable. Wait decrements the counter and suspends the caller when the
// result is negative; Signal increments it and wakes exactly one suspended
// waiter, never broadcasting. Every delivered signal admits exactly one
// waiter: a woken goroutine consumes an admission token rather than
// re-reading the counter, so spurious wakeups from the runtime cannot admit
// more goroutines than were signaled.
type Sem struct {
	mu     sync.Mutex
	cond   *sync.Cond
	value  int64
	tokens int64
}

// New creates a semaphore with n resources available. A negative n is a
// programmer error and panics.
func New(n int64) *Sem {
	if n < 0 {
		panic("semaphore: negative initial value")
	}
	s := &Sem{value: n}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Wait reserves one resource, suspending the caller until a resource is
// available. It returns once the caller has been admitted, either because
// the counter was sufficient or because a Signal woke it.
func (s *Sem) Wait() {
	s.mu.Lock()
	s.value--
	if s.value < 0 {
		for s.tokens == 0 {
			s.cond.Wait()
		}
		s.tokens--
	}
	s.mu.Unlock()
}

// Signal releases one resource. If any waiters are suspended, exactly one of
// them is admitted.
func (s *Sem) Signal() {
	s.mu.Lock()
	s.value++
	if s.value <= 0 {
		s.tokens++
		s.cond.Signal()
	}
	s.mu.Unlock()
}

// Value returns the current counter. When no Wait or Signal is in flight,
// the magnitude of a negative value equals the number of suspended waiters.
func (s *Sem) Value() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}
