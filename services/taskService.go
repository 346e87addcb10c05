package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"voicecoach/db"
	"voicecoach/models"

	"github.com/samber/lo"
)

type TaskService struct {
	repo db.TaskRepository
}

func NewTaskService(repo db.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) CreateTask(req *models.CreateTaskRequest) (*models.Task, error) {
	log.Printf("[INFO] Starting task creation")

	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("task title is required")
	}

	task := &models.Task{
		Title:     title,
		Priority:  models.NormalizePriority(req.Priority),
		Status:    models.TaskStatusPending,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := s.repo.Create(task); err != nil {
		log.Printf("[ERROR] Failed to create task: %v", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Printf("[INFO] Successfully created task %d: %q", task.ID, task.Title)
	return task, nil
}

// GetTasks returns tasks matching the status filter. An empty filter means
// pending; "all" returns everything.
func (s *TaskService) GetTasks(statusFilter string) ([]models.Task, error) {
	if statusFilter == "" {
		statusFilter = models.TaskStatusPending
	}

	tasks, err := s.repo.GetAll()
	if err != nil {
		log.Printf("[ERROR] Failed to get tasks: %v", err)
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}

	if statusFilter == "all" {
		return tasks, nil
	}

	filtered := lo.Filter(tasks, func(task models.Task, _ int) bool {
		return task.Status == statusFilter
	})

	log.Printf("[INFO] Found %d %s task(s)", len(filtered), statusFilter)
	return filtered, nil
}

// CompleteTask marks the first task whose title contains the query
// (case-insensitive) as completed. Overlapping titles resolve to whichever
// was stored first.
func (s *TaskService) CompleteTask(titleQuery string) (*models.Task, error) {
	log.Printf("[INFO] Starting task completion for query %q", titleQuery)

	titleQuery = strings.TrimSpace(titleQuery)
	if titleQuery == "" {
		return nil, fmt.Errorf("task title is required")
	}

	task, found, err := s.repo.CompleteByTitle(titleQuery)
	if err != nil {
		log.Printf("[ERROR] Failed to complete task %q: %v", titleQuery, err)
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("task matching %q: %w", titleQuery, models.ErrNotFound)
	}

	log.Printf("[INFO] Successfully completed task %d: %q", task.ID, task.Title)
	return task, nil
}
