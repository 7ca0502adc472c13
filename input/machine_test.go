package input

import (
	"testing"

	"github.com/lixenwraith/vi-console/script"
)

func TestProcessInputSpecialKeys(t *testing.T) {
	m := NewMachine()
	free := script.Text("prompt")

	tests := []struct {
		name string
		ev   KeyEvent
		want Intent
	}{
		{"backspace", Named(CodeBackspace), Intent{Type: IntentBackspace}},
		{"space becomes nbsp", Char(' '), Intent{Type: IntentAppend, Char: NBSP}},
		{"enter submits", Named(CodeEnter), Intent{Type: IntentSubmit}},
		{"letter", Char('q'), Intent{Type: IntentAppend, Char: 'q'}},
		{"symbol", Char('#'), Intent{Type: IntentAppend, Char: '#'}},
		{"multibyte", Char('é'), Intent{Type: IntentAppend, Char: 'é'}},
		{"named nav key dropped", KeyEvent{Key: "ArrowUp"}, Intent{Type: IntentDrop, Reason: DropNotChar}},
		{"shift dropped", KeyEvent{Key: "Shift"}, Intent{Type: IntentDrop, Reason: DropNotChar}},
		{"empty key dropped", KeyEvent{}, Intent{Type: IntentDrop, Reason: DropNotChar}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.ProcessInput(tt.ev, free, 0)
			if got != tt.want {
				t.Errorf("ProcessInput(%+v) = %+v, want %+v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestNumericWithMaxLength(t *testing.T) {
	m := NewMachine()
	u := script.Utterance{Text: "code?", InputKind: script.InputNumeric, MaxInputLength: script.Limit(3)}

	var buf []rune
	for _, r := range "12a45" {
		intent := m.ProcessInput(Char(r), u, len(buf))
		if intent.Type == IntentAppend {
			buf = append(buf, intent.Char)
		}
	}

	if got := string(buf); got != "124" {
		t.Errorf("captured %q, want %q", got, "124")
	}
}

// Space is appended before the length and kind checks run
func TestSpaceBypassesNumericAndMaxLength(t *testing.T) {
	m := NewMachine()
	u := script.Utterance{InputKind: script.InputNumeric, MaxInputLength: script.Limit(3)}

	var buf []rune
	for _, r := range "123 4" {
		intent := m.ProcessInput(Char(r), u, len(buf))
		if intent.Type == IntentAppend {
			buf = append(buf, intent.Char)
		}
	}

	if got, want := string(buf), "123\u00a0"; got != want {
		t.Errorf("captured %q, want %q", got, want)
	}
}

func TestMaxLengthZeroBlocksInput(t *testing.T) {
	m := NewMachine()
	u := script.Utterance{MaxInputLength: script.Limit(0)}

	got := m.ProcessInput(Char('x'), u, 0)
	if got.Type != IntentDrop || got.Reason != DropMaxLength {
		t.Errorf("expected max length drop, got %+v", got)
	}

	// Editing keys are not subject to the cap
	if got := m.ProcessInput(Named(CodeBackspace), u, 0); got.Type != IntentBackspace {
		t.Errorf("expected backspace, got %+v", got)
	}
}

func TestCtrlLatch(t *testing.T) {
	m := NewMachine()
	u := script.Text("")

	if got := m.ProcessInput(Named(CodeControlLeft), u, 0); got.Type != IntentCtrlDown {
		t.Fatalf("expected ctrl down, got %+v", got)
	}
	if !m.CtrlHeld() {
		t.Fatal("expected ctrl held")
	}

	got := m.ProcessInput(Char('v'), u, 0)
	if got.Type != IntentSpecial || got.Key != "v" {
		t.Errorf("expected special v, got %+v", got)
	}

	// Enter is swallowed by the chord too
	if got := m.ProcessInput(Named(CodeEnter), u, 0); got.Type != IntentSpecial {
		t.Errorf("expected special while ctrl held, got %+v", got)
	}

	if got := m.ProcessRelease(Named(CodeControlRight)); got.Type != IntentCtrlUp {
		t.Errorf("expected ctrl up, got %+v", got)
	}
	if m.CtrlHeld() {
		t.Error("expected ctrl released")
	}

	if got := m.ProcessRelease(Char('v')); got.Type != IntentNone {
		t.Errorf("expected none for plain release, got %+v", got)
	}
}

func TestProcessOutput(t *testing.T) {
	m := NewMachine()
	if got := m.ProcessOutput(Named(CodeEnter)); got.Type != IntentSkip {
		t.Errorf("expected skip, got %+v", got)
	}
	if got := m.ProcessOutput(Char('a')); got.Type != IntentNone {
		t.Errorf("expected none, got %+v", got)
	}
}

func TestParseCode(t *testing.T) {
	for _, c := range []Code{CodeBackspace, CodeSpace, CodeEnter, CodeControlLeft, CodeControlRight} {
		if got := ParseCode(c.String()); got != c {
			t.Errorf("ParseCode(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if got := ParseCode("KeyA"); got != CodeOther {
		t.Errorf("expected CodeOther, got %v", got)
	}
	if got := ParseCode(""); got != CodeOther {
		t.Errorf("expected CodeOther for empty name, got %v", got)
	}
}
