// Package focus arbitrates which console instance receives keyboard events
//
// Architecture:
//   - Members register and receive a Membership handle
//   - Claim broadcasts to every member; each sets focused = (claimant == self)
//   - PointerDownOutside broadcasts focused = false to every member
//   - Broadcasts are delivered in registration order, last write wins
package focus

import (
	"sync"

	"github.com/google/uuid"
)

// ID identifies a member of an arbiter
type ID = uuid.UUID

// Member receives focus broadcasts
// SetFocused must not call back into the arbiter
type Member interface {
	SetFocused(focused bool)
}

// Arbiter is a broadcast registry of focusable members
type Arbiter struct {
	mu      sync.Mutex
	members map[ID]Member
	order   []ID
	holder  ID
}

var defaultArbiter = New()

// Default returns the process-wide arbiter
func Default() *Arbiter {
	return defaultArbiter
}

// New creates an empty arbiter
func New() *Arbiter {
	return &Arbiter{
		members: make(map[ID]Member),
	}
}

// Join registers m and returns its membership
func (a *Arbiter) Join(m Member) *Membership {
	id := uuid.New()

	a.mu.Lock()
	a.members[id] = m
	a.order = append(a.order, id)
	a.mu.Unlock()

	return &Membership{id: id, arbiter: a}
}

// Claim gives focus to id and takes it from every other member
func (a *Arbiter) Claim(id ID) {
	a.mu.Lock()
	if _, ok := a.members[id]; ok {
		a.holder = id
	} else {
		a.holder = uuid.Nil
	}
	targets := a.snapshot()
	a.mu.Unlock()

	for _, t := range targets {
		t.member.SetFocused(t.id == id)
	}
}

// PointerDownOutside clears focus on every member
func (a *Arbiter) PointerDownOutside() {
	a.mu.Lock()
	a.holder = uuid.Nil
	targets := a.snapshot()
	a.mu.Unlock()

	for _, t := range targets {
		t.member.SetFocused(false)
	}
}

// Holder returns the member that last claimed focus, uuid.Nil if none
func (a *Arbiter) Holder() ID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.holder
}

// Count returns the number of registered members
func (a *Arbiter) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.members)
}

func (a *Arbiter) leave(id ID) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.members, id)
	for i, oid := range a.order {
		if oid == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	if a.holder == id {
		a.holder = uuid.Nil
	}
}

type target struct {
	id     ID
	member Member
}

// snapshot copies members in registration order, caller holds mu
func (a *Arbiter) snapshot() []target {
	out := make([]target, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, target{id: id, member: a.members[id]})
	}
	return out
}

// Membership is a scoped registration, Leave must be called when the member is destroyed
type Membership struct {
	id      ID
	arbiter *Arbiter
	once    sync.Once
}

// ID returns the member identity
func (m *Membership) ID() ID {
	return m.id
}

// Claim takes focus for this member
func (m *Membership) Claim() {
	m.arbiter.Claim(m.id)
}

// Leave unsubscribes the member, safe to call more than once
func (m *Membership) Leave() {
	m.once.Do(func() {
		m.arbiter.leave(m.id)
	})
}
