package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counter names written by the console
const (
	Ticks          = "console.ticks"
	Steps          = "console.steps"
	InputAccepted  = "input.accepted"
	InputDropped   = "input.dropped"
	InputResponses = "input.responses"
)

// Registry is a set of named atomic counters
// Components cache counter pointers at construction; increments are lock-free
type Registry struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		items: make(map[string]*atomic.Int64),
	}
}

// Counter returns the counter for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	r.mu.RLock()
	if c, ok := r.items[key]; ok {
		r.mu.RUnlock()
		return c
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Another caller may have created it between the locks
	if c, ok := r.items[key]; ok {
		return c
	}
	c := new(atomic.Int64)
	r.items[key] = c
	return c
}

// Value returns the current value of key, 0 if it was never created
func (r *Registry) Value(key string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.items[key]; ok {
		return c.Load()
	}
	return 0
}

// Range iterates counters in sorted key order
func (r *Registry) Range(fn func(key string, value int64)) {
	r.mu.RLock()
	keys := make([]string, 0, len(r.items))
	for k := range r.items {
		keys = append(keys, k)
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	for _, k := range keys {
		fn(k, r.Value(k))
	}
}

// Count returns the number of registered counters
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
