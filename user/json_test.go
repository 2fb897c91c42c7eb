package user

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBackend_MissingFileIsEmpty(t *testing.T) {
	b := NewJSONBackend(filepath.Join(t.TempDir(), "users.json"))
	doc, err := b.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
	assert.Zero(t, doc.IDCount)
}

func TestJSONBackend_RoundTripShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "users.json")
	b := NewJSONBackend(path)

	doc := &Document{
		Users: []User{
			{ID: "u0", Name: "alice", BestScore: &Score{Time: 1200, Kills: 4}},
			{ID: "u1", Name: "bob"},
		},
		IDCount:     2,
		CurrentUser: "u1",
	}
	require.NoError(t, b.Save(doc))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var shape map[string]any
	require.NoError(t, json.Unmarshal(raw, &shape))
	assert.Contains(t, shape, "users")
	assert.Equal(t, 2.0, shape["idCount"])
	assert.Equal(t, "u1", shape["currentUser"])
	first := shape["users"].([]any)[0].(map[string]any)
	assert.Equal(t, map[string]any{"time": 1200.0, "kills": 4.0}, first["bestScore"])

	loaded, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file is renamed away")
}

func TestJSONBackend_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err := NewJSONBackend(path).Load()
	assert.Error(t, err)
}
