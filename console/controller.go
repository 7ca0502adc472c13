package console

import (
	"github.com/lixenwraith/vi-console/input"
	"github.com/lixenwraith/vi-console/script"
	"github.com/lixenwraith/vi-console/transcript"
)

// HandleKeyDown routes a key press to the animator or the input controller
// Ignored while unfocused or passive
func (s *Session) HandleKeyDown(ev input.KeyEvent) {
	if s.opts.Passive || !s.focused {
		return
	}

	switch s.mode {
	case ModePlaying:
		if s.machine.ProcessOutput(ev).Type == input.IntentSkip {
			s.skip()
		}
	case ModeAwaitingInput:
		s.apply(s.machine.ProcessInput(ev, s.activeUtterance(), s.transcript.CurrentLen()))
	case ModeComplete:
	}
}

// HandleKeyUp releases the ctrl latch
// Applies regardless of focus so a release after a focus change is not lost
func (s *Session) HandleKeyUp(ev input.KeyEvent) {
	if s.opts.Passive {
		return
	}
	s.machine.ProcessRelease(ev)
}

// activeUtterance is the step whose prompt is being answered
func (s *Session) activeUtterance() script.Utterance {
	return s.steps.At(s.cursor.Story)
}

func (s *Session) apply(intent input.Intent) {
	switch intent.Type {
	case input.IntentAppend:
		s.transcript.AppendChar(intent.Char)
		s.statAccepted.Add(1)
		if s.opts.Sound != nil {
			s.opts.Sound.PlayKeystroke()
		}

	case input.IntentBackspace:
		s.transcript.TrimLast()

	case input.IntentSubmit:
		s.submit()

	case input.IntentSpecial:
		s.special(intent.Key)

	case input.IntentDrop:
		s.statDropped.Add(1)
		s.log.Debug().Stringer("reason", intent.Reason).Msg("key dropped")

	case input.IntentNone, input.IntentCtrlDown, input.IntentCtrlUp, input.IntentSkip:
	}
}

// submit finalizes the prompt line and reports it
func (s *Session) submit() {
	value := s.transcript.Current()

	id := ""
	if s.story {
		id = s.activeUtterance().ID
		s.story = false
	} else if !s.steps.Story {
		id = s.steps.At(0).ID
	}

	s.openLine(transcript.AuthorUser)
	s.statResponses.Add(1)
	if s.opts.Sound != nil {
		s.opts.Sound.PlayReturn()
	}

	s.log.Debug().Str("id", id).Int("length", len([]rune(value))).Msg("input submitted")

	if s.opts.OnResponse != nil {
		s.opts.OnResponse(Response{Value: value, ID: id})
	}
}

// special handles ctrl-chorded keys
func (s *Session) special(key string) {
	switch key {
	case "v", "V":
		// Paste is not supported; the chord is consumed without effect
		s.log.Debug().Msg("paste ignored")
	default:
		s.statDropped.Add(1)
	}
}
