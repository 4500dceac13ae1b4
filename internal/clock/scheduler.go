// Package clock provides the fixed-interval tick source used by hosts that
// drive the simulation from their own goroutine.
package clock

import "time"

// DefaultTickRate is used when a non-positive rate is requested.
const DefaultTickRate = 60

// Scheduler emits ticks at a fixed interval while running. A halted
// scheduler exposes a nil channel, so a select on C() simply never fires.
// It is not safe for concurrent use; the owning goroutine calls every method.
type Scheduler struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewScheduler creates a halted scheduler ticking tickRate times per second.
func NewScheduler(tickRate int) *Scheduler {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Scheduler{interval: time.Second / time.Duration(tickRate)}
}

// Interval returns the time between ticks.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Resume starts ticking. Calling it while already running restarts the
// interval from now.
func (s *Scheduler) Resume() {
	if s.ticker != nil {
		s.ticker.Reset(s.interval)
		return
	}
	s.ticker = time.NewTicker(s.interval)
}

// Halt stops ticking. Ticks already buffered are dropped with the ticker.
func (s *Scheduler) Halt() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}

// Running reports whether ticks are being delivered.
func (s *Scheduler) Running() bool {
	return s.ticker != nil
}

// C returns the tick channel, or nil when halted.
func (s *Scheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}
