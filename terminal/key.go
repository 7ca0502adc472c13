package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-console/input"
)

// Action distinguishes key presses from releases
type Action uint8

const (
	ActionDown Action = iota
	ActionUp
)

// String returns the DOM event name of the action
func (a Action) String() string {
	if a == ActionUp {
		return "keyup"
	}
	return "keydown"
}

// Keystroke is one key press or release delivered to a console
type Keystroke struct {
	Action Action
	Key    input.KeyEvent
}

// TranslateKey converts a tcell key event into keystrokes
// Control chords expand to ControlLeft down, the key, ControlLeft up
func TranslateKey(ev *tcell.EventKey) []Keystroke {
	k := ev.Key()
	if k == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return chord(string(ev.Rune()))
		}
		return press(input.Char(ev.Rune()))
	}

	// Named keys carry their code when the controller treats them specially
	if name, ok := keyNames[k]; ok {
		return press(input.KeyEvent{Code: input.ParseCode(name), Key: name})
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return chord(string(rune('a' + int(k-tcell.KeyCtrlA))))
	}
	return press(input.KeyEvent{Code: input.CodeOther, Key: KeyName(k)})
}

// IsQuit returns true for Escape and Ctrl+C
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C')
	}
	return false
}

func press(ev input.KeyEvent) []Keystroke {
	return []Keystroke{{Action: ActionDown, Key: ev}}
}

func chord(key string) []Keystroke {
	ctrl := input.Named(input.CodeControlLeft)
	return []Keystroke{
		{Action: ActionDown, Key: ctrl},
		{Action: ActionDown, Key: input.KeyEvent{Code: input.CodeOther, Key: key}},
		{Action: ActionUp, Key: ctrl},
	}
}
