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

func newTask(title, priority string) *models.Task {
	return &models.Task{
		Title:     title,
		Priority:  priority,
		Status:    models.TaskStatusPending,
		CreatedAt: "2025-01-01T09:00:00Z",
	}
}

func TestFileTaskRepositoryAssignsSequentialIDs(t *testing.T) {
	repo := NewFileTaskRepository(filepath.Join(t.TempDir(), "tasks.json"))

	first := newTask("Exercise", models.TaskPriorityHigh)
	second := newTask("Read", models.TaskPriorityLow)
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestFileTaskRepositoryCompleteByTitle(t *testing.T) {
	repo := NewFileTaskRepository(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, repo.Create(newTask("Complete the project report", models.TaskPriorityHigh)))

	task, found, err := repo.CompleteByTitle("PROJECT REPORT")
	require.NoError(t, err)
	require.True(t, found, "match is case-insensitive substring containment")

	assert.Equal(t, models.TaskStatusCompleted, task.Status)
	require.NotNil(t, task.CompletedAt)

	stored, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, models.TaskStatusCompleted, stored[0].Status)
}

func TestFileTaskRepositoryCompleteFirstMatchWins(t *testing.T) {
	repo := NewFileTaskRepository(filepath.Join(t.TempDir(), "tasks.json"))
	require.NoError(t, repo.Create(newTask("go for a walk", models.TaskPriorityLow)))
	require.NoError(t, repo.Create(newTask("take a walk break", models.TaskPriorityLow)))

	task, found, err := repo.CompleteByTitle("walk")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, task.ID, "overlapping titles resolve to the first stored task")
}

func TestFileTaskRepositoryCompleteNoMatchLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewFileTaskRepository(path)
	require.NoError(t, repo.Create(newTask("Exercise", models.TaskPriorityHigh)))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, found, err := repo.CompleteByTitle("nonexistent")
	require.NoError(t, err)
	assert.False(t, found)

	after, err := os.ReadFile(path)
	require.NoError(t, err)

	var beforeTasks, afterTasks []models.Task
	require.NoError(t, json.Unmarshal(before, &beforeTasks))
	require.NoError(t, json.Unmarshal(after, &afterTasks))
	assert.Equal(t, beforeTasks, afterTasks, "a failed match must not rewrite stored content")
}

func TestFileReminderRepositoryCreate(t *testing.T) {
	repo := NewFileReminderRepository(filepath.Join(t.TempDir(), "reminders.json"))

	first := &models.Reminder{Activity: "Morning meditation", Time: "8 am", Status: models.ReminderStatusActive, CreatedAt: "2025-01-01T08:00:00Z"}
	second := &models.Reminder{Activity: "Evening walk", Time: "7 pm", Status: models.ReminderStatusActive, CreatedAt: "2025-01-01T08:00:00Z"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))

	reminders, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, "Morning meditation", reminders[0].Activity)
	assert.Equal(t, "Evening walk", reminders[1].Activity)
	assert.Equal(t, 2, reminders[1].ID)
}

func TestFileContentRepositoryRereadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.json")
	repo := NewFileContentRepository(path)

	concepts, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, concepts)

	catalog := []models.Concept{{ID: "loops", Title: "Loops", Summary: "Repetition constructs."}}
	raw, err := json.Marshal(catalog)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	concepts, err = repo.All()
	require.NoError(t, err)
	require.Len(t, concepts, 1)
	assert.Equal(t, "Loops", concepts[0].Title, "catalog edits show up without restart")
}
