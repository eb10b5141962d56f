package playback

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduler_StopImmediatelyAfterStart(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int64
	s := NewScheduler(func() { ticks.Add(1) })

	if err := s.Start(MinInterval); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Stop()

	// Wait beyond the minimum interval; no tick may be observed.
	time.Sleep(MinInterval + 200*time.Millisecond)
	if n := ticks.Load(); n != 0 {
		t.Errorf("observed %d ticks after Stop, want 0", n)
	}
}

func TestScheduler_TicksWhileRunning(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int64
	s := NewScheduler(func() { ticks.Add(1) })

	if err := s.Start(MinInterval); err != nil {
		t.Fatalf("Start: %v", err)
	}
	time.Sleep(MinInterval*2 + 250*time.Millisecond)
	s.Stop()

	if n := ticks.Load(); n < 1 {
		t.Errorf("observed %d ticks while running, want at least 1", n)
	}

	// No further ticks once stopped.
	before := ticks.Load()
	time.Sleep(MinInterval + 100*time.Millisecond)
	if after := ticks.Load(); after != before {
		t.Errorf("ticks advanced from %d to %d after Stop", before, after)
	}
}

func TestScheduler_IdempotentStartStop(t *testing.T) {
	t.Parallel()

	s := NewScheduler(func() {})

	// Stop when already stopped is a no-op, not an error.
	s.Stop()
	s.Stop()

	if err := s.Start(0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Start when already running is a no-op.
	if err := s.Start(0); err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if !s.Running() {
		t.Error("scheduler not running after Start")
	}

	s.Stop()
	s.Stop()
	if s.Running() {
		t.Error("scheduler still running after Stop")
	}
}

func TestScheduler_IntervalBounds(t *testing.T) {
	t.Parallel()

	s := NewScheduler(func() {})

	for _, d := range []time.Duration{100 * time.Millisecond, 3 * time.Second} {
		if err := s.Start(d); !errors.Is(err, ErrIntervalOutOfRange) {
			t.Errorf("Start(%s) error = %v, want ErrIntervalOutOfRange", d, err)
		}
		if err := s.SetInterval(d); !errors.Is(err, ErrIntervalOutOfRange) {
			t.Errorf("SetInterval(%s) error = %v, want ErrIntervalOutOfRange", d, err)
		}
	}

	if s.Running() {
		t.Error("scheduler running after rejected Start")
	}
}

func TestScheduler_SetIntervalWhileStopped(t *testing.T) {
	t.Parallel()

	s := NewScheduler(func() {})
	if err := s.SetInterval(2 * time.Second); err != nil {
		t.Fatalf("SetInterval: %v", err)
	}
	if got := s.Interval(); got != 2*time.Second {
		t.Errorf("Interval = %s, want 2s", got)
	}
	if s.Running() {
		t.Error("SetInterval while stopped must not start the scheduler")
	}
}

func TestScheduler_SetIntervalWhileRunningRestarts(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int64
	s := NewScheduler(func() { ticks.Add(1) })

	if err := s.Start(MaxInterval); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Restart with the minimum interval; the old 2s timer must not fire
	// and the new one starts from scratch.
	if err := s.SetInterval(MinInterval); err != nil {
		t.Fatalf("SetInterval: %v", err)
	}
	if !s.Running() {
		t.Fatal("scheduler stopped by SetInterval")
	}

	time.Sleep(MinInterval + 250*time.Millisecond)
	s.Stop()

	if n := ticks.Load(); n < 1 {
		t.Errorf("observed %d ticks after restart, want at least 1", n)
	}
}

func TestScheduler_DefaultInterval(t *testing.T) {
	t.Parallel()

	s := NewScheduler(func() {})
	if got := s.Interval(); got != DefaultInterval {
		t.Errorf("default interval = %s, want %s", got, DefaultInterval)
	}
}
