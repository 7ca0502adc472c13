package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-console/core"
)

// Scheduler starts periodic tasks whose callbacks run on the owner's goroutine
type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}

// Task is a running periodic task
// Stop is synchronous with respect to the owner's goroutine: after it returns, fn never runs again
type Task interface {
	Stop()
}

// LoopScheduler delivers ticks through a Loop
type LoopScheduler struct {
	loop *Loop
}

// NewLoopScheduler creates a scheduler posting onto loop
func NewLoopScheduler(loop *Loop) *LoopScheduler {
	return &LoopScheduler{loop: loop}
}

// Every starts a ticker goroutine that posts fn to the loop on each interval
func (s *LoopScheduler) Every(interval time.Duration, fn func()) Task {
	t := &loopTask{
		stopCh: make(chan struct{}),
	}

	core.Go(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.stopCh:
				return
			case <-s.loop.Done():
				return
			case <-ticker.C:
				// A tick queued before Stop is discarded when it reaches the loop
				s.loop.post(func() {
					if !t.stopped.Load() {
						fn()
					}
				}, t.stopCh)
			}
		}
	})

	return t
}

type loopTask struct {
	stopped  atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once
}

// Stop marks the task stopped and releases its goroutine
func (t *loopTask) Stop() {
	t.stopOnce.Do(func() {
		t.stopped.Store(true)
		close(t.stopCh)
	})
}
