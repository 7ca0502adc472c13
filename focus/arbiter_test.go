package focus

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeMember struct {
	focused bool
	calls   int
}

func (f *fakeMember) SetFocused(focused bool) {
	f.focused = focused
	f.calls++
}

func TestClaimMovesFocus(t *testing.T) {
	a := New()
	memA, memB := &fakeMember{}, &fakeMember{}
	ma := a.Join(memA)
	mb := a.Join(memB)

	ma.Claim()
	assert.True(t, memA.focused)
	assert.False(t, memB.focused)

	mb.Claim()
	assert.False(t, memA.focused)
	assert.True(t, memB.focused)
	assert.Equal(t, mb.ID(), a.Holder())

	a.PointerDownOutside()
	assert.False(t, memA.focused)
	assert.False(t, memB.focused)
	assert.Equal(t, uuid.Nil, a.Holder())
}

func TestClaimIsIdempotent(t *testing.T) {
	a := New()
	mem := &fakeMember{}
	m := a.Join(mem)

	m.Claim()
	m.Claim()
	assert.True(t, mem.focused)
	assert.Equal(t, 2, mem.calls)
}

func TestLeaveStopsBroadcasts(t *testing.T) {
	a := New()
	memA, memB := &fakeMember{}, &fakeMember{}
	ma := a.Join(memA)
	mb := a.Join(memB)

	ma.Claim()
	ma.Leave()
	ma.Leave()
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, uuid.Nil, a.Holder())

	calls := memA.calls
	mb.Claim()
	assert.Equal(t, calls, memA.calls, "departed member must not be notified")
	assert.True(t, memB.focused)
}

func TestClaimUnknownClearsAll(t *testing.T) {
	a := New()
	mem := &fakeMember{}
	a.Join(mem).Claim()

	a.Claim(uuid.New())
	assert.False(t, mem.focused)
	assert.Equal(t, uuid.Nil, a.Holder())
}

func TestDefaultIsShared(t *testing.T) {
	assert.Same(t, Default(), Default())
}
