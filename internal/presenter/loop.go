package presenter

import (
	"context"
	"sync"
	"time"
)

// Loop runs posted events one at a time on a single goroutine. All core
// state is mutated from inside Loop events only.
type Loop struct {
	mu     sync.Mutex
	events []func()
	wake   chan struct{}
}

func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues fn. It never runs fn inline and never blocks, so events may
// post further events.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.events = append(l.events, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.events) == 0 {
		return nil, false
	}
	fn := l.events[0]
	l.events[0] = nil
	l.events = l.events[1:]
	return fn, true
}

// Run processes events until ctx is done
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}
		for {
			if ctx.Err() != nil {
				return
			}
			fn, ok := l.next()
			if !ok {
				break
			}
			fn()
		}
	}
}

// Timer is a cancellable scheduled callback
type Timer interface {
	Stop() bool
}

// Scheduler delays callbacks
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// LoopScheduler fires timers by posting onto a Loop, so timer callbacks
// obey the same one-at-a-time rule as every other event
type LoopScheduler struct {
	Loop *Loop
}

func (s LoopScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() { s.Loop.Post(fn) })
}
