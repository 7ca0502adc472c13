package engine

import (
	"sync"
	"time"
)

// ManualScheduler provides controllable ticks for testing
// Callbacks run synchronously on the goroutine calling Tick or Advance
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

// NewManualScheduler creates a scheduler with no running tasks
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

type manualTask struct {
	interval time.Duration
	elapsed  time.Duration
	fn       func()
	stopped  bool
	owner    *ManualScheduler
}

func (t *manualTask) Stop() {
	t.owner.mu.Lock()
	t.stopped = true
	t.owner.mu.Unlock()
}

// Every registers a task; it fires only when the test drives the scheduler
func (m *ManualScheduler) Every(interval time.Duration, fn func()) Task {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &manualTask{interval: interval, fn: fn, owner: m}
	m.tasks = append(m.tasks, t)
	return t
}

// Active returns the number of tasks not yet stopped
func (m *ManualScheduler) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Tick fires every active task once and returns how many fired
func (m *ManualScheduler) Tick() int {
	fired := 0
	for _, t := range m.live() {
		if m.isStopped(t) {
			continue
		}
		t.fn()
		fired++
	}
	return fired
}

// TickN calls Tick n times, stopping early once nothing is running
func (m *ManualScheduler) TickN(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		fired := m.Tick()
		if fired == 0 {
			break
		}
		total += fired
	}
	return total
}

// Advance moves time forward by d, firing each task once per elapsed interval
func (m *ManualScheduler) Advance(d time.Duration) {
	for _, t := range m.live() {
		m.mu.Lock()
		t.elapsed += d
		m.mu.Unlock()

		for {
			m.mu.Lock()
			due := !t.stopped && t.interval > 0 && t.elapsed >= t.interval
			if due {
				t.elapsed -= t.interval
			}
			m.mu.Unlock()

			if !due {
				break
			}
			t.fn()
		}
	}
}

// live prunes stopped tasks and returns a copy of the rest
func (m *ManualScheduler) live() []*manualTask {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.tasks[:0]
	for _, t := range m.tasks {
		if !t.stopped {
			kept = append(kept, t)
		}
	}
	m.tasks = kept

	out := make([]*manualTask, len(kept))
	copy(out, kept)
	return out
}

func (m *ManualScheduler) isStopped(t *manualTask) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return t.stopped
}
