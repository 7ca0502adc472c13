package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSingle(t *testing.T) {
	n := Normalize(Utterance{Text: "hello", ID: "greet"})
	assert.False(t, n.Story)
	require.Len(t, n.Steps, 1)
	assert.Equal(t, "hello", n.Steps[0].Text)
	assert.Equal(t, "greet", n.Steps[0].ID)
}

func TestNormalizeStory(t *testing.T) {
	story := NewStory(Text("one"), Text("two"), Text("three"))
	n := Normalize(story)
	assert.True(t, n.Story)
	assert.Equal(t, story.Steps, n.Steps)
	assert.Equal(t, 2, n.Last())
}

func TestNormalizeNil(t *testing.T) {
	n := Normalize(nil)
	assert.False(t, n.Story)
	require.Len(t, n.Steps, 1)
	assert.Equal(t, "", n.Steps[0].Text)

	var story *Story
	n = Normalize(story)
	require.Len(t, n.Steps, 1)
}

func TestNormalizedAtOutOfRange(t *testing.T) {
	n := Normalize(NewStory())
	assert.Equal(t, -1, n.Last())
	assert.Equal(t, Utterance{}, n.At(0))
	assert.Equal(t, Utterance{}, n.At(-1))
}

func TestSame(t *testing.T) {
	story := NewStory(Text("a"))
	copied := NewStory(Text("a"))

	tests := []struct {
		name string
		a, b Script
		want bool
	}{
		{"equal text", Text("x"), Text("x"), true},
		{"different text", Text("x"), Text("y"), false},
		{"same limit value", Utterance{Text: "x", MaxInputLength: Limit(3)}, Utterance{Text: "x", MaxInputLength: Limit(3)}, true},
		{"limit vs none", Utterance{Text: "x", MaxInputLength: Limit(0)}, Text("x"), false},
		{"same story pointer", story, story, true},
		{"equal story contents", story, copied, false},
		{"story vs text", story, Text("a"), false},
		{"both nil", nil, nil, true},
		{"nil vs text", nil, Text(""), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Same(tt.a, tt.b))
		})
	}
}

func TestMaxLength(t *testing.T) {
	_, ok := Text("x").MaxLength()
	assert.False(t, ok)

	n, ok := Utterance{MaxInputLength: Limit(5)}.MaxLength()
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	n, _ = Utterance{MaxInputLength: Limit(-2)}.MaxLength()
	assert.Equal(t, 0, n)
}

func TestParseInputKind(t *testing.T) {
	assert.Equal(t, InputNumeric, ParseInputKind("numeric"))
	assert.Equal(t, InputNumeric, ParseInputKind("number"))
	assert.Equal(t, InputFree, ParseInputKind("free"))
	assert.Equal(t, InputFree, ParseInputKind(""))
	assert.Equal(t, "numeric", InputNumeric.String())
}

func TestLoadScalar(t *testing.T) {
	s, err := Load(strings.NewReader(`"just text"`))
	require.NoError(t, err)
	assert.Equal(t, Text("just text"), s)
}

func TestLoadFileSingle(t *testing.T) {
	s, err := LoadFile("testdata/single.yml")
	require.NoError(t, err)

	u, ok := s.(Utterance)
	require.True(t, ok)
	assert.Equal(t, "What is your name?", u.Text)
	assert.Equal(t, "name", u.ID)
	n, ok := u.MaxLength()
	assert.True(t, ok)
	assert.Equal(t, 12, n)
}

func TestLoadFileStory(t *testing.T) {
	s, err := LoadFile("testdata/onboarding.yml")
	require.NoError(t, err)

	story, ok := s.(*Story)
	require.True(t, ok)
	require.Len(t, story.Steps, 3)
	assert.Equal(t, "boot", story.Steps[0].ID)
	assert.Equal(t, "Welcome, operator.", story.Steps[1].Text)
	assert.Equal(t, InputNumeric, story.Steps[2].InputKind)
	n, _ := story.Steps[2].MaxLength()
	assert.Equal(t, 4, n)
}

func TestLoadMissingTextIsEmpty(t *testing.T) {
	s, err := Load(strings.NewReader("- id: silent\n- text: after\n"))
	require.NoError(t, err)

	story := s.(*Story)
	require.Len(t, story.Steps, 2)
	assert.Equal(t, "", story.Steps[0].Text)
	assert.Equal(t, "silent", story.Steps[0].ID)
}

func TestLoadRejectsInvalid(t *testing.T) {
	docs := map[string]string{
		"negative max":  "text: hi\nmax_input_length: -1\n",
		"unknown kind":  "text: hi\ninput_kind: emoji\n",
		"unknown field": "text: hi\ncolor: red\n",
		"number root":   "42\n",
		"empty":         "",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := Load(strings.NewReader(doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidScript)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yml")
	require.Error(t, err)
}
