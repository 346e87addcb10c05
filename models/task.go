package models

import "strings"

const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"

	TaskPriorityHigh   = "high"
	TaskPriorityMedium = "medium"
	TaskPriorityLow    = "low"
)

// Task is a to-do item captured during a session. IDs are assigned as
// count+1 by the file-backed store to stay compatible with existing data
// files; see the repository documentation for the caveats.
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type CreateTaskRequest struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

// NormalizePriority maps arbitrary user phrasing onto the priority enum,
// defaulting to medium.
func NormalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case TaskPriorityHigh:
		return TaskPriorityHigh
	case TaskPriorityLow:
		return TaskPriorityLow
	default:
		return TaskPriorityMedium
	}
}
