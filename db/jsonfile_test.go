package db

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"voicecoach/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCheckinRepositoryAppendOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellness_log.json")
	repo := NewFileCheckinRepository(path)

	entries := []models.Checkin{
		{Timestamp: "2025-01-01T09:00:00Z", Mood: "calm", Objectives: "write", Summary: "a"},
		{Timestamp: "2025-01-02T09:00:00Z", Mood: "tired", Objectives: "rest", Summary: "b"},
		{Timestamp: "2025-01-03T09:00:00Z", Mood: "focused", Objectives: "ship", Summary: "c"},
	}

	for i := range entries {
		require.NoError(t, repo.Append(&entries[i]))
	}

	got, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, entries, got, "read order must equal append order")
}

func TestFileCheckinRepositoryMissingFile(t *testing.T) {
	repo := NewFileCheckinRepository(filepath.Join(t.TempDir(), "absent.json"))

	got, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileCheckinRepositoryMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellness_log.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileCheckinRepository(path)

	got, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, got, "malformed content reads as empty, never errors")
}

func TestFileCheckinRepositoryAppendRecoversMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellness_log.json")
	require.NoError(t, os.WriteFile(path, []byte("]["), 0o644))

	repo := NewFileCheckinRepository(path)
	require.NoError(t, repo.Append(&models.Checkin{Timestamp: "2025-01-01T09:00:00Z", Mood: "ok"}))

	got, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Mood)
}

func TestFileStoreWritesPrettyPrintedArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellness_log.json")
	repo := NewFileCheckinRepository(path)
	require.NoError(t, repo.Append(&models.Checkin{Timestamp: "2025-01-01T09:00:00Z", Mood: "ok"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  ", "file content should be indented")

	var asArray []map[string]any
	require.NoError(t, json.Unmarshal(raw, &asArray), "file must hold a JSON array")
}
