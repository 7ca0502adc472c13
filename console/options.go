package console

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-console/focus"
	"github.com/lixenwraith/vi-console/status"
)

// Defaults for unset options
const (
	DefaultSpeed      = 50 * time.Millisecond
	DefaultConsoleTag = "console"
	DefaultPrompt     = "~$ "
)

// scrollEvery is the emitted-character interval between scroll recomputations
const scrollEvery = 100

// Response is reported for every submitted input line
type Response struct {
	Value string
	ID    string
}

// Overflow is the scroll mode the render collaborator applies to the pane
type Overflow uint8

const (
	OverflowHidden Overflow = iota
	OverflowScroll
)

// String returns the CSS-style overflow name
func (o Overflow) String() string {
	if o == OverflowScroll {
		return "scroll"
	}
	return "hidden"
}

// Scroller measures rendered content and pins the view to the bottom
type Scroller interface {
	RecomputeScroll() Overflow
}

// Sound plays feedback for console activity, calls must not block
type Sound interface {
	PlayTypewriter()
	PlayKeystroke()
	PlayReturn()
}

// Options configures a Session
type Options struct {
	Speed   time.Duration // typewriter tick interval
	Loop    bool          // restart a finished story instead of prompting
	Passive bool          // ignore all keyboard input
	Focus   bool          // claim focus on creation
	Scroll  bool          // track overflow mode reported by the Scroller

	ConsoleTag string
	UserTag    string // defaults to ConsoleTag
	Prompt     string

	OnResponse func(Response)
	OnComplete func()

	Scroller Scroller
	Sound    Sound
	Arbiter  *focus.Arbiter   // defaults to focus.Default()
	Status   *status.Registry // defaults to a private registry
	Logger   zerolog.Logger
}

// withDefaults fills zero values
func (o Options) withDefaults() Options {
	if o.Speed <= 0 {
		o.Speed = DefaultSpeed
	}
	if o.ConsoleTag == "" {
		o.ConsoleTag = DefaultConsoleTag
	}
	if o.UserTag == "" {
		o.UserTag = o.ConsoleTag
	}
	if o.Prompt == "" {
		o.Prompt = DefaultPrompt
	}
	if o.Arbiter == nil {
		o.Arbiter = focus.Default()
	}
	if o.Status == nil {
		o.Status = status.NewRegistry()
	}
	return o
}
