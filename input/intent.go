package input

// IntentType is what a key event asks the console to do
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentAppend
	IntentBackspace
	IntentSubmit
	IntentSkip
	IntentCtrlDown
	IntentCtrlUp
	IntentSpecial
	IntentDrop
)

// DropReason explains why a key was discarded
type DropReason uint8

const (
	DropNone DropReason = iota
	DropNotChar
	DropNotNumeric
	DropMaxLength
	DropChorded
)

var dropReasonNames = [...]string{
	DropNone:       "none",
	DropNotChar:    "not_char",
	DropNotNumeric: "not_numeric",
	DropMaxLength:  "max_length",
	DropChorded:    "chorded",
}

// String returns the metric-friendly name of the reason
func (r DropReason) String() string {
	if int(r) < len(dropReasonNames) {
		return dropReasonNames[r]
	}
	return "unknown"
}

// Intent is the semantic result of one key event
type Intent struct {
	Type   IntentType
	Char   rune       // IntentAppend
	Key    string     // IntentSpecial, the chorded key value
	Reason DropReason // IntentDrop
}
