// Package transcript holds the scrollback of a console session
// All mutation targets the last line; earlier lines are immutable history
package transcript

// Author records who produced a line
type Author uint8

const (
	AuthorConsole Author = iota
	AuthorUser
)

// Line is one row of the transcript
type Line struct {
	Tag     string
	Author  Author
	Content string
}

// TagFunc resolves the tag of the line currently open for input or output
type TagFunc func() (string, Author)

// Transcript is an append-only list of lines with a mutable tail
type Transcript struct {
	lines   []Line
	current []rune // content of the last line, kept as runes for cheap backspace
	resolve TagFunc
}

// New creates an empty transcript
// resolve may be nil, in which case the active line keeps its creation tag
func New(resolve TagFunc) *Transcript {
	return &Transcript{
		lines:   make([]Line, 0, 32),
		current: make([]rune, 0, 64),
		resolve: resolve,
	}
}

// Len returns the number of lines
func (t *Transcript) Len() int {
	return len(t.lines)
}

// Empty returns true if no line was ever opened
func (t *Transcript) Empty() bool {
	return len(t.lines) == 0
}

// OpenNewLine freezes the current last line and appends an empty one
func (t *Transcript) OpenNewLine(tag string, author Author) {
	t.CloseCurrentLine()
	t.lines = append(t.lines, Line{Tag: tag, Author: author})
	t.current = t.current[:0]
}

// CloseCurrentLine commits the active content and resolved tag into history
// Callers open a new line before mutating again
func (t *Transcript) CloseCurrentLine() {
	if len(t.lines) == 0 {
		return
	}
	last := &t.lines[len(t.lines)-1]
	last.Content = string(t.current)
	if t.resolve != nil {
		last.Tag, last.Author = t.resolve()
	}
}

// AppendChar appends r to the last line, opening a line first if the transcript is empty
func (t *Transcript) AppendChar(r rune) {
	t.ensureLine()
	t.current = append(t.current, r)
}

// AppendString appends s to the last line
func (t *Transcript) AppendString(s string) {
	t.ensureLine()
	t.current = append(t.current, []rune(s)...)
}

// ReplaceCurrentLine overwrites the content of the last line
func (t *Transcript) ReplaceCurrentLine(content string) {
	t.ensureLine()
	t.current = append(t.current[:0], []rune(content)...)
}

// TrimLast removes the final rune of the last line, returns false if it was empty
func (t *Transcript) TrimLast() bool {
	if len(t.current) == 0 {
		return false
	}
	t.current = t.current[:len(t.current)-1]
	return true
}

// Current returns the content of the last line
func (t *Transcript) Current() string {
	return string(t.current)
}

// CurrentLen returns the rune length of the last line
func (t *Transcript) CurrentLen() int {
	return len(t.current)
}

// Lines returns a copy of the transcript with the active tag resolved at read time
func (t *Transcript) Lines() []Line {
	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	if n := len(out); n > 0 {
		out[n-1].Content = string(t.current)
		if t.resolve != nil {
			out[n-1].Tag, out[n-1].Author = t.resolve()
		}
	}
	return out
}

func (t *Transcript) ensureLine() {
	if len(t.lines) > 0 {
		return
	}
	var (
		tag    string
		author Author
	)
	if t.resolve != nil {
		tag, author = t.resolve()
	}
	t.lines = append(t.lines, Line{Tag: tag, Author: author})
}
