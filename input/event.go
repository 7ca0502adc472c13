package input

// NBSP is appended for the space key so runs of spaces survive rendering
const NBSP = '\u00a0'

// Code identifies the physical keys the controller treats specially
// Everything else is CodeOther and is interpreted through KeyEvent.Key
type Code uint8

const (
	CodeOther Code = iota
	CodeBackspace
	CodeSpace
	CodeEnter
	CodeControlLeft
	CodeControlRight
)

var codeNames = [...]string{
	CodeOther:        "",
	CodeBackspace:    "Backspace",
	CodeSpace:        "Space",
	CodeEnter:        "Enter",
	CodeControlLeft:  "ControlLeft",
	CodeControlRight: "ControlRight",
}

// String returns the key code name
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return ""
}

// ParseCode maps a key code name to a Code, unknown names are CodeOther
func ParseCode(name string) Code {
	for i, n := range codeNames {
		if n != "" && n == name {
			return Code(i)
		}
	}
	return CodeOther
}

// IsControl returns true for either control key
func (c Code) IsControl() bool {
	return c == CodeControlLeft || c == CodeControlRight
}

// KeyEvent is a raw key press or release
// Key holds the key value: the character for printable keys, a name like "ArrowUp" otherwise
type KeyEvent struct {
	Code Code
	Key  string
}

// Char builds a printable key event
func Char(r rune) KeyEvent {
	if r == ' ' {
		return KeyEvent{Code: CodeSpace, Key: " "}
	}
	return KeyEvent{Code: CodeOther, Key: string(r)}
}

// Named builds a key event for a special key
func Named(c Code) KeyEvent {
	return KeyEvent{Code: c, Key: c.String()}
}
