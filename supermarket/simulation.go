package supermarket

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/marketsim/supermarket-sim/semaphore"
)

// Simulation owns all shared state for one run: the packing area, the two
// counting semaphores, the running flag, and the worker groups. Create one
// with New, execute it with Run; a Simulation is single-use.
type Simulation struct {
	cfg  Config
	area *PackingArea
	log  *EventLog

	// empty counts free slots, full counts filled slots. Together they
	// block cashiers on a full area and packers on an empty one; the
	// area's own mutex only covers the mutation itself.
	empty *semaphore.Sem
	full  *semaphore.Sem

	running atomic.Bool

	timerWg   sync.WaitGroup
	cashierWg sync.WaitGroup
	packerWg  sync.WaitGroup
}

// Statistics summarizes a finished run.
type Statistics struct {
	Produced  int
	Consumed  int
	Remaining int
}

// New validates cfg and builds a simulation that reports through log.
func New(cfg Config, log *EventLog) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Simulation{
		cfg:   cfg,
		area:  NewPackingArea(cfg.Capacity),
		log:   log,
		empty: semaphore.New(int64(cfg.Capacity)),
		full:  semaphore.New(0),
	}, nil
}

// Run executes the simulation to completion: banner, spawn, join, report.
// The join order matters: the timer is awaited first so that all of its
// wakeup signals have been issued before the workers are, and cashiers are
// drained before packers.
func (s *Simulation) Run() {
	s.log.Banner(s.cfg)

	// A zero duration stops the run before any worker enters its loop.
	s.running.Store(s.cfg.Duration > 0)

	s.timerWg.Add(1)
	go s.runTimer()

	for i := 1; i <= s.cfg.NumCashiers; i++ {
		s.cashierWg.Add(1)
		go s.runCashier(i)
	}
	for i := 1; i <= s.cfg.NumPackers; i++ {
		s.packerWg.Add(1)
		go s.runPacker(i)
	}

	s.timerWg.Wait()
	s.cashierWg.Wait()
	s.packerWg.Wait()

	s.log.Report(s.Stats())
}

// runTimer ends the run: after the configured duration it flips the running
// flag and then wakes every worker that could be blocked on either
// semaphore. The signal count is deliberately generous; a worker woken
// after the stop returns its slot and exits, so oversignaling only wastes
// a wakeup while undersignaling could deadlock the join.
func (s *Simulation) runTimer() {
	defer s.timerWg.Done()
	time.Sleep(s.cfg.Duration)
	s.running.Store(false)
	for i := 0; i < s.cfg.NumCashiers+s.cfg.NumPackers; i++ {
		s.full.Signal()
		s.empty.Signal()
	}
}

// Stats returns the counters as of the last completed critical section.
func (s *Simulation) Stats() Statistics {
	produced, consumed := s.area.Totals()
	return Statistics{
		Produced:  produced,
		Consumed:  consumed,
		Remaining: produced - consumed,
	}
}
