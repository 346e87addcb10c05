package db

import (
	"strings"
	"time"

	"voicecoach/models"
)

// In-memory implementations of the repository ports. They back tests and
// let the services be exercised without touching the filesystem, matching
// the file adapters' semantics (count+1 IDs included).

type MemoryCheckinRepository struct {
	entries []models.Checkin
}

func NewMemoryCheckinRepository() *MemoryCheckinRepository {
	return &MemoryCheckinRepository{}
}

func (r *MemoryCheckinRepository) Append(entry *models.Checkin) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *MemoryCheckinRepository) GetAll() ([]models.Checkin, error) {
	out := make([]models.Checkin, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

type MemoryTaskRepository struct {
	tasks []models.Task
}

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{}
}

func (r *MemoryTaskRepository) Create(task *models.Task) error {
	task.ID = len(r.tasks) + 1
	r.tasks = append(r.tasks, *task)
	return nil
}

func (r *MemoryTaskRepository) GetAll() ([]models.Task, error) {
	out := make([]models.Task, len(r.tasks))
	copy(out, r.tasks)
	return out, nil
}

func (r *MemoryTaskRepository) CompleteByTitle(query string) (*models.Task, bool, error) {
	q := strings.ToLower(query)
	for i := range r.tasks {
		if !strings.Contains(strings.ToLower(r.tasks[i].Title), q) {
			continue
		}

		now := time.Now().Format(time.RFC3339)
		r.tasks[i].Status = models.TaskStatusCompleted
		r.tasks[i].CompletedAt = &now

		matched := r.tasks[i]
		return &matched, true, nil
	}
	return nil, false, nil
}

type MemoryReminderRepository struct {
	reminders []models.Reminder
}

func NewMemoryReminderRepository() *MemoryReminderRepository {
	return &MemoryReminderRepository{}
}

func (r *MemoryReminderRepository) Create(reminder *models.Reminder) error {
	reminder.ID = len(r.reminders) + 1
	r.reminders = append(r.reminders, *reminder)
	return nil
}

func (r *MemoryReminderRepository) GetAll() ([]models.Reminder, error) {
	out := make([]models.Reminder, len(r.reminders))
	copy(out, r.reminders)
	return out, nil
}

// StaticContentRepository serves a fixed concept list, for tests.
type StaticContentRepository struct {
	Concepts []models.Concept
}

func (r *StaticContentRepository) All() ([]models.Concept, error) {
	return r.Concepts, nil
}
