package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-console/core"
)

// TerminalService manages the screen lifecycle and input polling
type TerminalService struct {
	mouse   bool
	deliver func(tcell.Event) bool

	mu      sync.Mutex
	screen  tcell.Screen
	running bool
	doneCh  chan struct{}
}

// NewService creates a terminal service
// deliver receives every polled event and returns false to stop polling
func NewService(mouse bool, deliver func(tcell.Event) bool) *TerminalService {
	return &TerminalService{
		mouse:   mouse,
		deliver: deliver,
		doneCh:  make(chan struct{}),
	}
}

// Name implements service.Service
func (s *TerminalService) Name() string {
	return "terminal"
}

// Dependencies implements service.Service
func (s *TerminalService) Dependencies() []string {
	return nil
}

// Init implements service.Service and opens the screen
func (s *TerminalService) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.screen != nil {
		return nil
	}
	screen, err := Open(s.mouse)
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen = screen
	return nil
}

// Screen returns the open screen, nil before Init
func (s *TerminalService) Screen() tcell.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Start implements service.Service and launches input polling
func (s *TerminalService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.screen == nil {
		return errors.New("terminal not initialized")
	}
	s.running = true

	screen := s.screen
	core.Go(func() { s.pollLoop(screen) })
	return nil
}

// pollLoop forwards events until the screen is finalized or delivery is refused
func (s *TerminalService) pollLoop(screen tcell.Screen) {
	defer close(s.doneCh)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if s.deliver != nil && !s.deliver(ev) {
			return
		}
	}
}

// Stop implements service.Service and restores the terminal
func (s *TerminalService) Stop() error {
	s.mu.Lock()
	screen, running := s.screen, s.running
	s.screen, s.running = nil, false
	s.mu.Unlock()

	if screen == nil {
		return nil
	}
	Close(screen)
	if running {
		<-s.doneCh
	}
	return nil
}
