package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fernvale/bloomwatch/internal/navigator"
)

// Bridge forwards navigator events as typed messages to a BubbleTea
// program. Events are queued and delivered from the bridge's own
// goroutine: navigator callbacks fire on whichever goroutine performed
// the transition — including the program's update loop when a key press
// drives the navigator — and tea.Program.Send blocks until that loop
// next reads, so sending inline from the update stack would wedge the
// program against itself. Enqueueing never blocks and the queue is
// drained in order, so delivery order matches transition order.
//
// The navigator is constructed before the program exists, so the bridge
// starts detached; events emitted before Attach are dropped.
type Bridge struct {
	mu      sync.Mutex
	program *tea.Program
	queue   []tea.Msg
	closed  bool

	wake chan struct{}
	quit chan struct{}
	done chan struct{}
}

// NewBridge creates a detached bridge and starts its delivery goroutine.
func NewBridge() *Bridge {
	b := &Bridge{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go b.forward()
	return b
}

// Attach connects the bridge to a running program.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// Close stops the delivery goroutine and waits for it to exit. Queued
// but undelivered events are discarded. Close is idempotent.
func (b *Bridge) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.quit)
	<-b.done
}

// send queues a message for delivery. It never blocks, so it is safe to
// call from the program's own update stack.
func (b *Bridge) send(msg tea.Msg) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default: // a wakeup is already pending
	}
}

// forward drains the queue in order, delivering to the attached program.
func (b *Bridge) forward() {
	defer close(b.done)
	for {
		select {
		case <-b.quit:
			return
		case <-b.wake:
		}
		for {
			b.mu.Lock()
			if len(b.queue) == 0 {
				b.mu.Unlock()
				break
			}
			msg := b.queue[0]
			b.queue = b.queue[1:]
			p := b.program
			b.mu.Unlock()
			if p != nil {
				p.Send(msg)
			}
		}
	}
}

// Events returns the navigator callbacks wired to this bridge.
func (b *Bridge) Events() navigator.Events {
	return navigator.Events{
		OnYearChange:    func(y int) { b.send(MsgYearChanged{Year: y}) },
		OnMonthChange:   func(m int) { b.send(MsgMonthChanged{Month: m}) },
		OnPlayingChange: func(p bool) { b.send(MsgPlayingChanged{Playing: p}) },
	}
}
