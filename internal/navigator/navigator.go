// Package navigator owns the mutable navigation state on behalf of the
// UI: the current cursor, the active granularity mode and the playback
// state. The timeline engine it drives is pure; the navigator is the
// single place those transitions are applied and announced.
//
// All mutations — user-initiated navigation and playback ticks alike —
// are serialized under one mutex, so no two transitions ever overlap and
// events always fire in arrival order. Play, Pause, SetIntervalMs and
// Close are expected to be called from the owning UI goroutine; ticks
// arrive on the scheduler's goroutine and take the same lock.
package navigator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fernvale/bloomwatch/internal/playback"
	"github.com/fernvale/bloomwatch/internal/timeline"
)

// ErrClosed indicates an operation on a navigator after Close.
var ErrClosed = errors.New("navigator is closed")

// Events are the update notifications emitted by the navigator. Each
// callback fires exactly once per logical transition, never batched,
// always carrying the new value; a month of 0 means "none" (Year mode
// with no month selected). Nil callbacks are skipped. Callbacks run
// outside the state lock, so a slow consumer never blocks reads, but
// each transition hands over to the emit lock before releasing the
// state lock, so events from successive transitions are delivered in
// transition order. Callbacks must not call back into the navigator;
// forwarding to a non-blocking queue (tui.Bridge) is the intended use.
type Events struct {
	OnYearChange    func(year int)
	OnMonthChange   func(month int)
	OnPlayingChange func(playing bool)
}

// Navigator scrubs, animates and aggregates an observation timeline.
type Navigator struct {
	axis   *timeline.Axis
	events Events
	sched  *playback.Scheduler

	mu      sync.Mutex
	cursor  timeline.Cursor
	mode    timeline.Mode
	playing bool
	closed  bool

	// emitMu serializes event delivery in transition order. Lock order
	// is always mu before emitMu.
	emitMu sync.Mutex
}

// New creates a navigator over the given axis with the supplied initial
// selection. It fails fast on a nil axis, an off-axis year or an
// out-of-range month; an unset month is normalized to January whenever
// the mode requires one. Playback starts stopped at the default interval.
func New(axis *timeline.Axis, initial timeline.Cursor, mode timeline.Mode, events Events) (*Navigator, error) {
	if axis == nil {
		return nil, fmt.Errorf("navigator: %w", timeline.ErrNoYears)
	}
	if err := initial.Validate(axis); err != nil {
		return nil, fmt.Errorf("navigator: %w", err)
	}
	if mode != timeline.ModeYear && initial.Month == 0 {
		initial.Month = 1
	}

	n := &Navigator{
		axis:   axis,
		events: events,
		cursor: initial,
		mode:   mode,
	}
	n.sched = playback.NewScheduler(n.onTick)
	return n, nil
}

// Axis returns the immutable axis the navigator was built over.
func (n *Navigator) Axis() *timeline.Axis { return n.axis }

// Cursor returns the current selection.
func (n *Navigator) Cursor() timeline.Cursor {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.cursor
}

// Mode returns the active granularity mode.
func (n *Navigator) Mode() timeline.Mode {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.mode
}

// Playing reports whether playback is running.
func (n *Navigator) Playing() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.playing
}

// IntervalMs returns the playback interval in milliseconds.
func (n *Navigator) IntervalMs() int {
	return int(n.sched.Interval() / time.Millisecond)
}

// Count returns the observation count for the current selection.
func (n *Navigator) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return timeline.CountFor(n.axis, n.cursor, n.mode)
}

// PeakMonth returns the peak observation month of the current year,
// false when the year has no observations.
func (n *Navigator) PeakMonth() (int, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return timeline.PeakMonth(n.axis, n.cursor.Year)
}

// Advance steps the cursor forward at the current granularity.
func (n *Navigator) Advance() error {
	return n.step(timeline.Advance)
}

// Retreat steps the cursor backward at the current granularity.
func (n *Navigator) Retreat() error {
	return n.step(timeline.Retreat)
}

func (n *Navigator) step(move func(*timeline.Axis, timeline.Cursor, timeline.Mode) (timeline.Cursor, error)) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrClosed
	}
	next, err := move(n.axis, n.cursor, n.mode)
	if err != nil {
		n.mu.Unlock()
		return err
	}
	n.emitAndUnlock(n.applyLocked(next))
	return nil
}

// onTick is the playback scheduler callback: one Advance per tick.
func (n *Navigator) onTick() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	next, err := timeline.Advance(n.axis, n.cursor, n.mode)
	if err != nil {
		// The owned cursor is always valid, so Advance cannot fail here.
		n.mu.Unlock()
		return
	}
	n.emitAndUnlock(n.applyLocked(next))
}

// applyLocked installs the next cursor and returns the notification for
// each changed dimension, exactly one per change. Caller holds n.mu and
// passes the result to emitAndUnlock.
func (n *Navigator) applyLocked(next timeline.Cursor) []func() {
	var fire []func()
	if next.Year != n.cursor.Year {
		n.cursor.Year = next.Year
		if cb := n.events.OnYearChange; cb != nil {
			y := next.Year
			fire = append(fire, func() { cb(y) })
		}
	}
	if next.Month != n.cursor.Month {
		n.cursor.Month = next.Month
		if cb := n.events.OnMonthChange; cb != nil {
			m := next.Month
			fire = append(fire, func() { cb(m) })
		}
	}
	return fire
}

// emitAndUnlock delivers the queued notifications after releasing the
// state lock. Caller holds n.mu; the emit lock is acquired first, so a
// later transition cannot deliver its events ahead of this one, and a
// callback blocked in delivery never holds the state lock.
func (n *Navigator) emitAndUnlock(fire []func()) {
	if len(fire) == 0 {
		n.mu.Unlock()
		return
	}
	n.emitMu.Lock()
	n.mu.Unlock()
	for _, f := range fire {
		f()
	}
	n.emitMu.Unlock()
}

// SetMode switches the granularity. Entering a month-bearing mode with
// no month selected normalizes the month to January (announced as a
// month change); switching modes otherwise leaves the cursor untouched.
func (n *Navigator) SetMode(mode timeline.Mode) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrClosed
	}
	n.mode = mode
	var fire []func()
	if mode != timeline.ModeYear && n.cursor.Month == 0 {
		fire = n.applyLocked(timeline.Cursor{Year: n.cursor.Year, Month: 1})
	}
	n.emitAndUnlock(fire)
	return nil
}

// SetYear jumps directly to a year on the axis.
func (n *Navigator) SetYear(year int) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrClosed
	}
	next := timeline.Cursor{Year: year, Month: n.cursor.Month}
	if err := next.Validate(n.axis); err != nil {
		n.mu.Unlock()
		return err
	}
	n.emitAndUnlock(n.applyLocked(next))
	return nil
}

// SetMonth jumps directly to a month in [1,12].
func (n *Navigator) SetMonth(month int) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrClosed
	}
	if month < 1 || month > 12 {
		n.mu.Unlock()
		return fmt.Errorf("navigator: %w: %d", timeline.ErrMonthOutOfRange, month)
	}
	n.emitAndUnlock(n.applyLocked(timeline.Cursor{Year: n.cursor.Year, Month: month}))
	return nil
}

// Play starts automated traversal at the stored interval. Playing an
// already-playing navigator is a no-op.
func (n *Navigator) Play() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return ErrClosed
	}
	if n.playing {
		n.mu.Unlock()
		return nil
	}
	n.playing = true
	cb := n.events.OnPlayingChange
	n.emitMu.Lock()
	n.mu.Unlock()
	defer n.emitMu.Unlock()

	if err := n.sched.Start(0); err != nil {
		return err
	}
	if cb != nil {
		cb(true)
	}
	return nil
}

// Pause stops automated traversal. Once Pause returns, no further tick
// fires, including one already due. Pausing a stopped navigator is a
// no-op.
func (n *Navigator) Pause() {
	// Stop first, outside the state lock: the scheduler waits for any
	// in-flight tick, and that tick needs the lock to finish.
	n.sched.Stop()

	n.mu.Lock()
	if n.closed || !n.playing {
		n.mu.Unlock()
		return
	}
	n.playing = false
	cb := n.events.OnPlayingChange
	n.emitMu.Lock()
	n.mu.Unlock()

	if cb != nil {
		cb(false)
	}
	n.emitMu.Unlock()
}

// TogglePlay flips between playing and paused.
func (n *Navigator) TogglePlay() error {
	if n.Playing() {
		n.Pause()
		return nil
	}
	return n.Play()
}

// SetIntervalMs changes the playback speed. Values outside [500,2000]
// milliseconds are rejected. A running navigator restarts its timer
// atomically with the new interval.
func (n *Navigator) SetIntervalMs(ms int) error {
	return n.sched.SetInterval(time.Duration(ms) * time.Millisecond)
}

// Close tears the navigator down, releasing the playback timer. After
// Close returns no tick executes and no event fires.
func (n *Navigator) Close() {
	n.sched.Stop()

	n.mu.Lock()
	n.closed = true
	n.playing = false
	n.mu.Unlock()
}
