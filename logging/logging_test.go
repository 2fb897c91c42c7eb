package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/threat-shooter/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, zerolog.TraceLevel, ParseLevel("trace"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestNewWithWriters_FansOut(t *testing.T) {
	var a, b bytes.Buffer
	log := NewWithWriters(zerolog.InfoLevel, &a, &b)
	log.Debug().Msg("hidden")
	log.Info().Str("component", "game").Msg("game started")

	for _, buf := range []*bytes.Buffer{&a, &b} {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "game started", entry["message"])
		assert.Equal(t, "game", entry["component"])
		assert.Contains(t, entry, "time")
	}
}

func TestNew_WritesPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shooter.log")
	l, err := New(config.LogConfig{Level: "info", File: path})
	require.NoError(t, err)
	l.Info().Msg("hello")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.NotContains(t, string(data), "\x1b[", "no color codes in file")
}

func TestNew_NoSinks(t *testing.T) {
	l, err := New(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	l.Info().Msg("dropped")
	assert.NoError(t, l.Close())
}
