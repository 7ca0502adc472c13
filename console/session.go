// Package console implements the console session state machine
//
// A Session plays a script with a typewriter animation, then captures keyboard
// input into its transcript. It is not safe for concurrent use: the host
// delivers timer ticks, key events and focus broadcasts from one goroutine,
// normally by posting them onto an engine.Loop.
package console

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-console/engine"
	"github.com/lixenwraith/vi-console/focus"
	"github.com/lixenwraith/vi-console/input"
	"github.com/lixenwraith/vi-console/script"
	"github.com/lixenwraith/vi-console/status"
	"github.com/lixenwraith/vi-console/transcript"
)

// Mode is the session's top-level state
type Mode uint8

const (
	ModePlaying Mode = iota
	ModeAwaitingInput
	ModeComplete
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeAwaitingInput:
		return "awaiting_input"
	case ModeComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Cursor tracks animator progress through the normalized script
type Cursor struct {
	Story int // active step index, 0 outside story mode
	Char  int // runes of the active step already emitted
}

// Session is the aggregate runtime state of one console
type Session struct {
	opts       Options
	log        zerolog.Logger
	sched      engine.Scheduler
	membership *focus.Membership
	machine    *input.Machine
	transcript *transcript.Transcript

	script    script.Script
	steps     script.Normalized
	stepRunes []rune
	story     bool // cleared by the first submission after the story
	cursor    Cursor
	mode      Mode
	focused   bool
	overflow  Overflow
	task      engine.Task

	statTicks     *atomic.Int64
	statSteps     *atomic.Int64
	statAccepted  *atomic.Int64
	statDropped   *atomic.Int64
	statResponses *atomic.Int64
}

// New creates a session and starts playing s
// Ticks are requested from sched; the session joins opts.Arbiter until Close
func New(s script.Script, sched engine.Scheduler, opts Options) *Session {
	opts = opts.withDefaults()

	sess := &Session{
		opts:    opts,
		sched:   sched,
		machine: input.NewMachine(),

		statTicks:     opts.Status.Counter(status.Ticks),
		statSteps:     opts.Status.Counter(status.Steps),
		statAccepted:  opts.Status.Counter(status.InputAccepted),
		statDropped:   opts.Status.Counter(status.InputDropped),
		statResponses: opts.Status.Counter(status.InputResponses),
	}
	sess.transcript = transcript.New(sess.activeTag)
	sess.membership = opts.Arbiter.Join(sess)
	sess.log = opts.Logger.With().
		Str("component", "console").
		Str("session", sess.membership.ID().String()).
		Logger()

	if opts.Focus {
		sess.membership.Claim()
	}

	sess.load(s)
	return sess
}

// ID returns the session's focus identity
func (s *Session) ID() focus.ID {
	return s.membership.ID()
}

// Close stops the typewriter and leaves the focus arbiter
func (s *Session) Close() {
	s.stopTimer()
	s.membership.Leave()
}

// SetScript replaces the script, restarting playback unless it is the same script
// Returns true if playback restarted
func (s *Session) SetScript(sc script.Script) bool {
	if script.Same(s.script, sc) {
		return false
	}
	s.load(sc)
	return true
}

// load resets the animator against sc
func (s *Session) load(sc script.Script) {
	s.stopTimer()

	s.script = sc
	s.steps = script.Normalize(sc)
	s.story = s.steps.Story
	s.cursor = Cursor{}
	s.machine.Reset()
	s.loadStep()

	// An empty tail line is reused so replacement never leaves a blank row behind
	if s.transcript.Empty() || s.transcript.CurrentLen() > 0 {
		s.transcript.OpenNewLine(s.tagText(s.opts.ConsoleTag), transcript.AuthorConsole)
	}
	s.mode = ModePlaying
	s.startTimer()
	s.recomputeScroll()

	s.log.Debug().
		Int("steps", len(s.steps.Steps)).
		Bool("story", s.steps.Story).
		Msg("script loaded")
}

// SetFocused implements focus.Member
func (s *Session) SetFocused(focused bool) {
	s.focused = focused
}

// Focus claims focus through the arbiter
func (s *Session) Focus() {
	s.membership.Claim()
}

// Focused returns true if the session receives keyboard events
func (s *Session) Focused() bool {
	return s.focused
}

// Mode returns the current state
func (s *Session) Mode() Mode {
	return s.mode
}

// Cursor returns animator progress
func (s *Session) Cursor() Cursor {
	return s.cursor
}

// StoryMode returns true while story semantics apply
func (s *Session) StoryMode() bool {
	return s.story
}

// Input returns the text typed on the current prompt, empty unless awaiting input
func (s *Session) Input() string {
	if s.mode != ModeAwaitingInput {
		return ""
	}
	return s.transcript.Current()
}

// Snapshot is a read-only view for the render collaborator
type Snapshot struct {
	Lines    []transcript.Line
	Mode     Mode
	Cursor   Cursor
	Story    bool
	Focused  bool
	CtrlHeld bool
	Overflow Overflow
	Input    string
}

// Snapshot copies the state needed to paint the console
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Lines:    s.transcript.Lines(),
		Mode:     s.mode,
		Cursor:   s.cursor,
		Story:    s.story,
		Focused:  s.focused,
		CtrlHeld: s.machine.CtrlHeld(),
		Overflow: s.overflow,
		Input:    s.Input(),
	}
}

// activeTag resolves the tag of the open line from the current mode
func (s *Session) activeTag() (string, transcript.Author) {
	if s.mode == ModeAwaitingInput {
		return s.tagText(s.opts.UserTag), transcript.AuthorUser
	}
	return s.tagText(s.opts.ConsoleTag), transcript.AuthorConsole
}

// tagText builds the full tag: name, prompt, then a non-breaking space
func (s *Session) tagText(name string) string {
	return name + s.opts.Prompt + string(input.NBSP)
}

func (s *Session) recomputeScroll() {
	if s.opts.Scroller == nil {
		return
	}
	ov := s.opts.Scroller.RecomputeScroll()
	if s.opts.Scroll {
		s.overflow = ov
	}
}
