/*
scheduler.go - Automated monthly pay run scheduler

PURPOSE:
  Periodically checks whether the current calendar month has been run
  yet and, if not, processes the whole roster for it as one batch.

DESIGN:
  - Runs a background goroutine with a configurable check interval
  - Tracks which periods this scheduler already ran, in memory; a period
    is run at most once per process lifetime
  - Off by default; cmd/server enables it behind a flag

USAGE:
  scheduler := NewPayRunScheduler(runner)
  scheduler.Enabled = true
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - handlers.go: RunPayroll endpoint (manual runs)
  - payroll/run.go: The batch runner this drives
*/
package api

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/warp/payroll-engine/metrics"
	"github.com/warp/payroll-engine/payroll"
)

// PayRunScheduler runs payroll for each calendar month automatically.
type PayRunScheduler struct {
	Runner        *payroll.Runner
	Clock         payroll.Clock
	CheckInterval time.Duration
	Enabled       bool

	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
	mu     sync.Mutex

	ranPeriods map[payroll.PayPeriod]bool
}

// NewPayRunScheduler creates a scheduler over the given runner.
// Disabled until Enabled is set.
func NewPayRunScheduler(runner *payroll.Runner) *PayRunScheduler {
	return &PayRunScheduler{
		Runner:        runner,
		Clock:         payroll.SystemClock{},
		CheckInterval: 1 * time.Hour,
		stop:          make(chan struct{}),
		ranPeriods:    make(map[payroll.PayPeriod]bool),
	}
}

// Start begins the scheduler.
func (s *PayRunScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.Enabled {
		log.Println("[Scheduler] Disabled, not starting")
		return
	}
	if s.ticker != nil {
		return
	}

	s.ticker = time.NewTicker(s.CheckInterval)
	s.wg.Add(1)

	go s.loop(s.ticker.C)

	log.Printf("[Scheduler] Started with check interval: %v", s.CheckInterval)
}

// Stop stops the scheduler and waits for any in-flight run to finish.
func (s *PayRunScheduler) Stop() {
	s.mu.Lock()
	ticker := s.ticker
	s.ticker = nil
	if ticker != nil {
		ticker.Stop()
		close(s.stop)
	}
	// The wait must happen without the lock: the run goroutine takes it
	// to mark the period done before exiting.
	s.mu.Unlock()

	if ticker == nil {
		return
	}
	s.wg.Wait()
	log.Println("[Scheduler] Stopped")
}

func (s *PayRunScheduler) loop(ticks <-chan time.Time) {
	defer s.wg.Done()

	// Run immediately on start
	s.checkAndRun()

	for {
		select {
		case <-ticks:
			s.checkAndRun()
		case <-s.stop:
			return
		}
	}
}

func (s *PayRunScheduler) checkAndRun() {
	period := payroll.CurrentMonthlyPeriod(s.Clock.Now())

	s.mu.Lock()
	done := s.ranPeriods[period]
	s.mu.Unlock()
	if done {
		return
	}

	log.Printf("[Scheduler] Running payroll for %s", period)

	run, err := s.Runner.RunAll(context.Background(), period)
	if err != nil {
		metrics.ObserveRun("error")
		log.Printf("[Scheduler] Pay run for %s failed: %v", period, err)
		return
	}
	metrics.ObserveRun("success")

	s.mu.Lock()
	s.ranPeriods[period] = true
	s.mu.Unlock()

	log.Printf("[Scheduler] Pay run %s complete: %d records, total net %s",
		run.ID, run.Summary.Count, run.Summary.TotalNet.Display())
}
