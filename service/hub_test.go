package service

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService records lifecycle calls into a shared journal
type fakeService struct {
	name      string
	deps      []string
	initErr   error
	startErr  error
	journal   *[]string
	stopCalls int
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init() error {
	*f.journal = append(*f.journal, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	*f.journal = append(*f.journal, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	f.stopCalls++
	*f.journal = append(*f.journal, "stop:"+f.name)
	return nil
}

func newFakes(journal *[]string) (*fakeService, *fakeService, *fakeService) {
	return &fakeService{name: "terminal", journal: journal},
		&fakeService{name: "audio", journal: journal},
		&fakeService{name: "host", deps: []string{"terminal", "audio"}, journal: journal}
}

func TestHubLifecycleOrder(t *testing.T) {
	var journal []string
	term, snd, host := newFakes(&journal)

	h := NewHub(zerolog.Nop())
	require.NoError(t, h.Register(host))
	require.NoError(t, h.Register(term))
	require.NoError(t, h.Register(snd))

	require.NoError(t, h.InitAll())
	require.NoError(t, h.StartAll())
	h.StopAll()
	h.StopAll()

	assert.Equal(t, []string{
		"init:audio", "init:terminal", "init:host",
		"start:audio", "start:terminal", "start:host",
		"stop:host", "stop:terminal", "stop:audio",
	}, journal)
	assert.Equal(t, 1, term.stopCalls, "second StopAll is a no-op")
}

func TestHubDuplicateRegistration(t *testing.T) {
	var journal []string
	h := NewHub(zerolog.Nop())
	require.NoError(t, h.Register(&fakeService{name: "audio", journal: &journal}))
	assert.Error(t, h.Register(&fakeService{name: "audio", journal: &journal}))
	assert.Equal(t, []string{"audio"}, h.Names())
}

func TestHubInitRollback(t *testing.T) {
	var journal []string
	term, snd, host := newFakes(&journal)
	host.initErr = errors.New("boom")

	h := NewHub(zerolog.Nop())
	for _, s := range []Service{term, snd, host} {
		require.NoError(t, h.Register(s))
	}

	err := h.InitAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, host.initErr)
	assert.Equal(t, []string{
		"init:audio", "init:terminal", "init:host",
		"stop:terminal", "stop:audio",
	}, journal)
}

func TestHubStartRollback(t *testing.T) {
	var journal []string
	term, snd, host := newFakes(&journal)
	host.startErr = errors.New("no tty")

	h := NewHub(zerolog.Nop())
	for _, s := range []Service{term, snd, host} {
		require.NoError(t, h.Register(s))
	}
	require.NoError(t, h.InitAll())
	journal = journal[:0]

	require.Error(t, h.StartAll())
	assert.Equal(t, []string{
		"start:audio", "start:terminal", "start:host",
		"stop:terminal", "stop:audio",
	}, journal)

	journal = journal[:0]
	h.StopAll()
	assert.Empty(t, journal, "nothing left running after rollback")
}

func TestHubDependencyErrors(t *testing.T) {
	var journal []string

	h := NewHub(zerolog.Nop())
	require.NoError(t, h.Register(&fakeService{name: "host", deps: []string{"missing"}, journal: &journal}))
	assert.Error(t, h.InitAll())

	h = NewHub(zerolog.Nop())
	require.NoError(t, h.Register(&fakeService{name: "a", deps: []string{"b"}, journal: &journal}))
	require.NoError(t, h.Register(&fakeService{name: "b", deps: []string{"a"}, journal: &journal}))
	assert.ErrorContains(t, h.InitAll(), "circular")
}

func TestHubStartBeforeInit(t *testing.T) {
	h := NewHub(zerolog.Nop())
	assert.Error(t, h.StartAll())
}

func TestMustGet(t *testing.T) {
	var journal []string
	h := NewHub(zerolog.Nop())
	require.NoError(t, h.Register(&fakeService{name: "audio", journal: &journal}))

	svc := MustGet[*fakeService](h, "audio")
	assert.Equal(t, "audio", svc.Name())

	assert.Panics(t, func() { MustGet[*fakeService](h, "missing") })
	assert.Panics(t, func() { MustGet[interface{ Sound() }](h, "audio") })
}
