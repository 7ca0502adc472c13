package console

import (
	"github.com/lixenwraith/vi-console/transcript"
)

// Tick advances the typewriter by one character
// Scheduled by the session itself; exported so hosts and tests may drive it directly
func (s *Session) Tick() {
	if s.mode != ModePlaying {
		return
	}
	s.statTicks.Add(1)

	if s.cursor.Char < len(s.stepRunes) {
		s.transcript.AppendChar(s.stepRunes[s.cursor.Char])
		s.cursor.Char++
		if s.opts.Sound != nil {
			s.opts.Sound.PlayTypewriter()
		}
		if s.cursor.Char%scrollEvery == 0 {
			s.recomputeScroll()
		}
		return
	}

	s.completeStep()
}

// skip emits the rest of the active utterance at once, outside story mode only
func (s *Session) skip() {
	if s.mode != ModePlaying || s.story {
		return
	}
	if s.cursor.Char < len(s.stepRunes) {
		s.transcript.AppendString(string(s.stepRunes[s.cursor.Char:]))
		s.cursor.Char = len(s.stepRunes)
	}
	s.log.Debug().Int("step", s.cursor.Story).Msg("output skipped")
	s.completeStep()
}

// completeStep handles an exhausted utterance
func (s *Session) completeStep() {
	s.statSteps.Add(1)

	// Story: advance to the next step on a fresh output line, keep ticking
	if s.story && s.cursor.Story < s.steps.Last() {
		s.cursor.Story++
		s.cursor.Char = 0
		s.loadStep()
		s.openLine(transcript.AuthorConsole)
		return
	}

	switch {
	case s.opts.OnComplete != nil && !s.opts.Loop:
		s.stopTimer()
		s.mode = ModeComplete
		s.log.Debug().Int("steps", len(s.steps.Steps)).Msg("session complete")
		s.opts.OnComplete()

	case s.opts.Loop && s.story && len(s.steps.Steps) > 0:
		s.cursor.Story = 0
		s.cursor.Char = 0
		s.loadStep()
		s.openLine(transcript.AuthorConsole)
		s.log.Debug().Msg("story restarted")

	default:
		s.stopTimer()
		// Open the prompt line before switching mode so the output line freezes with the console tag
		s.openLine(transcript.AuthorUser)
		s.mode = ModeAwaitingInput
		s.log.Debug().Int("step", s.cursor.Story).Msg("awaiting input")
	}
}

// openLine closes the current line and starts an empty one
func (s *Session) openLine(author transcript.Author) {
	name := s.opts.ConsoleTag
	if author == transcript.AuthorUser {
		name = s.opts.UserTag
	}
	s.transcript.OpenNewLine(s.tagText(name), author)
	s.recomputeScroll()
}

// loadStep caches the runes of the active utterance
func (s *Session) loadStep() {
	s.stepRunes = []rune(s.steps.At(s.cursor.Story).Text)
}

func (s *Session) startTimer() {
	if s.task != nil {
		return
	}
	s.task = s.sched.Every(s.opts.Speed, s.Tick)
}

// stopTimer cancels the tick task; no tick runs after it returns
func (s *Session) stopTimer() {
	if s.task == nil {
		return
	}
	s.task.Stop()
	s.task = nil
}

// Animating returns true while the typewriter timer runs
func (s *Session) Animating() bool {
	return s.task != nil
}
