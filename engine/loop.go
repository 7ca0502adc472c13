package engine

import (
	"context"
	"sync"
)

// Loop serializes all console mutation onto one goroutine
// Timer ticks, key events and focus broadcasts are posted as closures and run in FIFO order
type Loop struct {
	work     chan func()
	done     chan struct{}
	doneOnce sync.Once
}

// NewLoop creates a loop with the given work queue depth
func NewLoop(buffer int) *Loop {
	if buffer < 1 {
		buffer = 1
	}
	return &Loop{
		work: make(chan func(), buffer),
		done: make(chan struct{}),
	}
}

// Post enqueues fn, blocking while the queue is full
// Returns false if the loop has stopped
func (l *Loop) Post(fn func()) bool {
	return l.post(fn, nil)
}

// post enqueues fn unless the loop stops or cancel closes first
func (l *Loop) post(fn func(), cancel <-chan struct{}) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.work <- fn:
		return true
	case <-l.done:
		return false
	case <-cancel:
		return false
	}
}

// Run executes posted work until ctx is cancelled
// Must be called from exactly one goroutine
func (l *Loop) Run(ctx context.Context) error {
	defer l.doneOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.work:
			fn()
		}
	}
}

// Drain runs everything already queued without blocking, for hosts that pump the loop manually
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case fn := <-l.work:
			fn()
			n++
		default:
			return n
		}
	}
}

// Done is closed once Run returns
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
