package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_DisabledByDefault(t *testing.T) {
	logger, closer, err := NewLogger(LogOptions{})
	require.NoError(t, err)
	assert.Nil(t, closer)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "console.log")

	logger, closer, err := NewLogger(LogOptions{Level: "debug", File: path})
	require.NoError(t, err)
	require.NotNil(t, closer)

	l := Component(logger, "test")
	l.Debug().Str("k", "v").Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"test"`)
	assert.Contains(t, string(data), `"message":"hello"`)
	assert.Contains(t, string(data), `"app":"vi-console"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}
