package terminal

import "github.com/gdamore/tcell/v2"

// keyNames maps non-printable tcell keys to KeyboardEvent.key style names
var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyEscape:     "Escape",
	tcell.KeyTab:        "Tab",
	tcell.KeyBacktab:    "Tab",
	tcell.KeyDelete:     "Delete",
	tcell.KeyInsert:     "Insert",

	tcell.KeyUp:    "ArrowUp",
	tcell.KeyDown:  "ArrowDown",
	tcell.KeyLeft:  "ArrowLeft",
	tcell.KeyRight: "ArrowRight",
	tcell.KeyHome:  "Home",
	tcell.KeyEnd:   "End",
	tcell.KeyPgUp:  "PageUp",
	tcell.KeyPgDn:  "PageDown",

	tcell.KeyF1:  "F1",
	tcell.KeyF2:  "F2",
	tcell.KeyF3:  "F3",
	tcell.KeyF4:  "F4",
	tcell.KeyF5:  "F5",
	tcell.KeyF6:  "F6",
	tcell.KeyF7:  "F7",
	tcell.KeyF8:  "F8",
	tcell.KeyF9:  "F9",
	tcell.KeyF10: "F10",
	tcell.KeyF11: "F11",
	tcell.KeyF12: "F12",
}

// KeyName returns the name of a non-printable key, "Unidentified" if unknown
func KeyName(k tcell.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unidentified"
}
