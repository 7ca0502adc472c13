package script

// InputKind restricts which keys the prompt following an utterance accepts
type InputKind uint8

const (
	InputFree InputKind = iota
	InputNumeric
)

// String returns the script-file spelling of the kind
func (k InputKind) String() string {
	switch k {
	case InputNumeric:
		return "numeric"
	default:
		return "free"
	}
}

// ParseInputKind maps a script-file spelling to a kind, unknown values fall back to free
func ParseInputKind(s string) InputKind {
	if s == "numeric" || s == "number" {
		return InputNumeric
	}
	return InputFree
}

// Utterance is one scripted unit of output plus validation metadata for the prompt after it
// MaxInputLength nil means unlimited
type Utterance struct {
	Text           string
	ID             string
	InputKind      InputKind
	MaxInputLength *int
}

// Text builds a metadata-free utterance
func Text(s string) Utterance {
	return Utterance{Text: s}
}

// Limit returns a pointer suitable for Utterance.MaxInputLength
func Limit(n int) *int {
	if n < 0 {
		n = 0
	}
	return &n
}

// MaxLength reports the input length cap and whether one is set
func (u Utterance) MaxLength() (int, bool) {
	if u.MaxInputLength == nil {
		return 0, false
	}
	return *u.MaxInputLength, true
}

// Equal compares utterances by value
func (u Utterance) Equal(o Utterance) bool {
	if u.Text != o.Text || u.ID != o.ID || u.InputKind != o.InputKind {
		return false
	}
	a, aok := u.MaxLength()
	b, bok := o.MaxLength()
	return aok == bok && a == b
}

func (Utterance) isScript() {}

// Story is an ordered sequence of utterances played one after another
// Stories are compared by pointer identity, so callers replace a story by passing a new *Story
type Story struct {
	Steps []Utterance
}

// NewStory wraps steps in a story
func NewStory(steps ...Utterance) *Story {
	return &Story{Steps: steps}
}

func (*Story) isScript() {}

// Script is either a single Utterance or a *Story
type Script interface {
	isScript()
}

// Normalized is the uniform step sequence the animator consumes
type Normalized struct {
	Steps []Utterance
	Story bool
}

// Normalize turns a script into its step sequence
// A nil script or nil story yields a single empty utterance in non-story mode
func Normalize(s Script) Normalized {
	switch v := s.(type) {
	case Utterance:
		return Normalized{Steps: []Utterance{v}}
	case *Story:
		if v == nil {
			return Normalized{Steps: []Utterance{{}}}
		}
		return Normalized{Steps: v.Steps, Story: true}
	default:
		return Normalized{Steps: []Utterance{{}}}
	}
}

// At returns the step at i, or an empty utterance when i is out of range
func (n Normalized) At(i int) Utterance {
	if i < 0 || i >= len(n.Steps) {
		return Utterance{}
	}
	return n.Steps[i]
}

// Last returns the index of the final step, -1 for an empty story
func (n Normalized) Last() int {
	return len(n.Steps) - 1
}

// Same reports whether b would normalize to the same run as a
// Single utterances compare by value, stories by identity
func Same(a, b Script) bool {
	switch av := a.(type) {
	case Utterance:
		bv, ok := b.(Utterance)
		return ok && av.Equal(bv)
	case *Story:
		bv, ok := b.(*Story)
		return ok && av == bv
	default:
		return a == nil && b == nil
	}
}
