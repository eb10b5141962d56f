// Package playback provides the cancelable repeating timer that drives
// automated traversal of the observation timeline. The scheduler is a
// pure clock: it holds no cursor state and knows nothing about what its
// tick callback does.
package playback

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Interval bounds for playback speed. Values outside this range are
// rejected rather than clamped.
const (
	MinInterval     = 500 * time.Millisecond
	MaxInterval     = 2 * time.Second
	DefaultInterval = time.Second
)

// ErrIntervalOutOfRange indicates a requested interval outside
// [MinInterval, MaxInterval].
var ErrIntervalOutOfRange = errors.New("playback interval out of range")

// Scheduler fires a tick callback at a fixed interval while running.
//
// Start and Stop are idempotent so a play/pause toggle stays well-behaved
// under rapid input. Stop is synchronous: once it returns, no tick is
// executing and none will fire, including one already due for the current
// interval. The tick callback runs on the scheduler's own goroutine and
// must not call back into the Scheduler.
type Scheduler struct {
	tick func()

	mu       sync.Mutex
	interval time.Duration
	running  bool
	cancel   chan struct{}
	done     chan struct{}
}

// NewScheduler creates a stopped scheduler with the default interval.
// tick must be non-nil.
func NewScheduler(tick func()) *Scheduler {
	if tick == nil {
		panic("playback: nil tick callback")
	}
	return &Scheduler{tick: tick, interval: DefaultInterval}
}

// checkInterval validates an interval against the playback bounds.
func checkInterval(d time.Duration) error {
	if d < MinInterval || d > MaxInterval {
		return fmt.Errorf("playback: %w: %s", ErrIntervalOutOfRange, d)
	}
	return nil
}

// Start transitions Stopped→Running, firing a tick every interval.
// A zero interval means "use the stored interval". Starting a running
// scheduler is a no-op.
func (s *Scheduler) Start(interval time.Duration) error {
	if interval != 0 {
		if err := checkInterval(interval); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if interval != 0 {
		s.interval = interval
	}
	if s.running {
		return nil
	}
	s.startLocked()
	return nil
}

// startLocked launches the timer goroutine. Caller holds s.mu.
func (s *Scheduler) startLocked() {
	s.running = true
	s.cancel = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.interval, s.cancel, s.done)
}

// Stop transitions Running→Stopped and waits for the timer goroutine to
// exit, so no tick executes after it returns. Stopping a stopped
// scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	close(cancel)
	<-done
}

// SetInterval changes the tick interval. If running, the current timer
// is cancelled and restarted with the new interval, so no tick
// double-fires and no elapsed time carries over; if stopped, the
// interval is only stored for the next Start.
func (s *Scheduler) SetInterval(interval time.Duration) error {
	if err := checkInterval(interval); err != nil {
		return err
	}

	s.mu.Lock()
	s.interval = interval
	if !s.running {
		s.mu.Unlock()
		return nil
	}

	// Atomic restart: tear down the current run, wait for it to finish,
	// then begin a fresh one with the full new interval.
	s.running = false
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	close(cancel)
	<-done

	s.mu.Lock()
	if !s.running {
		s.startLocked()
	}
	s.mu.Unlock()
	return nil
}

// Running reports whether the scheduler is in the Running state.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Interval returns the stored tick interval.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

// run is the timer loop. It uses a single-shot timer rescheduled after
// each tick so a cancel racing the timer fire never lets a stale tick
// through.
func (s *Scheduler) run(interval time.Duration, cancel, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-cancel:
			return
		case <-timer.C:
			// A cancel may have arrived while the timer was firing;
			// it wins over the queued tick.
			select {
			case <-cancel:
				return
			default:
			}
			s.tick()
			timer.Reset(interval)
		}
	}
}
