package terminal

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionDrag
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// MouseEvent is a decoded mouse report
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
}

// MouseTracker derives press and release edges from tcell's button state reports
type MouseTracker struct {
	held tcell.ButtonMask
}

const clickButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Translate decodes ev against the previously reported button state
func (t *MouseTracker) Translate(ev *tcell.EventMouse) MouseEvent {
	x, y := ev.Position()
	out := MouseEvent{X: x, Y: y}
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		out.Button, out.Action = MouseBtnWheelUp, MouseActionPress
		return out
	case buttons&tcell.WheelDown != 0:
		out.Button, out.Action = MouseBtnWheelDown, MouseActionPress
		return out
	}

	pressed := buttons & clickButtons
	switch {
	case pressed != 0 && t.held == 0:
		out.Button, out.Action = buttonOf(pressed), MouseActionPress
	case pressed != 0:
		out.Button, out.Action = buttonOf(pressed), MouseActionDrag
	case t.held != 0:
		out.Button, out.Action = buttonOf(t.held), MouseActionRelease
	}
	t.held = pressed
	return out
}

func buttonOf(m tcell.ButtonMask) MouseButton {
	switch {
	case m&tcell.Button1 != 0:
		return MouseBtnLeft
	case m&tcell.Button3 != 0:
		return MouseBtnMiddle
	case m&tcell.Button2 != 0:
		return MouseBtnRight
	default:
		return MouseBtnNone
	}
}
