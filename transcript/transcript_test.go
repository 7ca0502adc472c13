package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendOpensFirstLine(t *testing.T) {
	tr := New(nil)
	assert.True(t, tr.Empty())

	tr.AppendChar('h')
	tr.AppendString("i!")

	require.Equal(t, 1, tr.Len())
	assert.Equal(t, "hi!", tr.Current())
	assert.Equal(t, 3, tr.CurrentLen())
}

func TestOpenNewLineFreezesHistory(t *testing.T) {
	tag, author := "console~$ ", AuthorConsole
	tr := New(func() (string, Author) { return tag, author })

	tr.OpenNewLine("console~$ ", AuthorConsole)
	tr.AppendString("output")
	tag, author = "user~$ ", AuthorUser
	tr.OpenNewLine("user~$ ", AuthorUser)
	tr.AppendString("input")

	lines := tr.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, Line{Tag: "user~$ ", Author: AuthorUser, Content: "output"}, lines[0],
		"closed line keeps the tag resolved when it was closed")
	assert.Equal(t, "input", lines[1].Content)

	// History does not follow later tag changes
	tag, author = "renamed~$ ", AuthorConsole
	lines = tr.Lines()
	assert.Equal(t, "user~$ ", lines[0].Tag)
	assert.Equal(t, "renamed~$ ", lines[1].Tag)
	assert.Equal(t, AuthorConsole, lines[1].Author)
}

func TestTrimLast(t *testing.T) {
	tr := New(nil)
	tr.OpenNewLine(">", AuthorUser)
	assert.False(t, tr.TrimLast())
	assert.Equal(t, 1, tr.Len())

	tr.AppendString("añ")
	assert.True(t, tr.TrimLast())
	assert.Equal(t, "a", tr.Current())
}

func TestReplaceCurrentLine(t *testing.T) {
	tr := New(nil)
	tr.OpenNewLine(">", AuthorConsole)
	tr.AppendString("first")
	tr.OpenNewLine(">", AuthorConsole)
	tr.AppendString("draft")
	tr.ReplaceCurrentLine("final")

	lines := tr.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0].Content)
	assert.Equal(t, "final", lines[1].Content)
}

func TestLinesIsCopy(t *testing.T) {
	tr := New(nil)
	tr.OpenNewLine(">", AuthorConsole)
	tr.AppendString("keep")

	lines := tr.Lines()
	lines[0].Content = "mutated"
	assert.Equal(t, "keep", tr.Lines()[0].Content)
}
