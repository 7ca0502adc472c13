package input

import (
	"strconv"
	"unicode/utf8"

	"github.com/lixenwraith/vi-console/script"
)

// Machine is the key interpretation state machine
// Parses KeyEvent into semantic Intent; owns the ctrl-held latch
type Machine struct {
	ctrlHeld bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{}
}

// CtrlHeld returns true between a control key press and its release
func (m *Machine) CtrlHeld() bool {
	return m.ctrlHeld
}

// Reset clears the ctrl latch
func (m *Machine) Reset() {
	m.ctrlHeld = false
}

// ProcessInput interprets a key press while the console awaits input
// active is the utterance whose prompt is being answered, bufLen the rune length typed so far
func (m *Machine) ProcessInput(ev KeyEvent, active script.Utterance, bufLen int) Intent {
	if m.ctrlHeld {
		return Intent{Type: IntentSpecial, Key: ev.Key}
	}

	switch ev.Code {
	case CodeBackspace:
		return Intent{Type: IntentBackspace}
	case CodeSpace:
		return Intent{Type: IntentAppend, Char: NBSP}
	case CodeEnter:
		return Intent{Type: IntentSubmit}
	case CodeControlLeft, CodeControlRight:
		m.ctrlHeld = true
		return Intent{Type: IntentCtrlDown}
	}

	return validate(ev.Key, active, bufLen)
}

// ProcessOutput interprets a key press while the console is playing output
// Only Enter is meaningful: it asks to skip to the end of the current utterance
func (m *Machine) ProcessOutput(ev KeyEvent) Intent {
	if ev.Code == CodeEnter {
		return Intent{Type: IntentSkip}
	}
	return Intent{Type: IntentNone}
}

// ProcessRelease interprets a key release
func (m *Machine) ProcessRelease(ev KeyEvent) Intent {
	if ev.Code.IsControl() {
		m.ctrlHeld = false
		return Intent{Type: IntentCtrlUp}
	}
	return Intent{Type: IntentNone}
}

// validate applies the active utterance's length cap and input kind to a key value
func validate(key string, active script.Utterance, bufLen int) Intent {
	if max, ok := active.MaxLength(); ok && bufLen >= max {
		return Intent{Type: IntentDrop, Reason: DropMaxLength}
	}

	if utf8.RuneCountInString(key) != 1 {
		return Intent{Type: IntentDrop, Reason: DropNotChar}
	}
	r, _ := utf8.DecodeRuneInString(key)

	if active.InputKind == script.InputNumeric {
		if _, err := strconv.Atoi(key); err != nil {
			return Intent{Type: IntentDrop, Reason: DropNotNumeric}
		}
	}

	return Intent{Type: IntentAppend, Char: r}
}
