package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"voicecoach/db"
	"voicecoach/models"
)

type ReminderService struct {
	repo db.ReminderRepository
}

func NewReminderService(repo db.ReminderRepository) *ReminderService {
	return &ReminderService{repo: repo}
}

func (s *ReminderService) CreateReminder(req *models.CreateReminderRequest) (*models.Reminder, error) {
	log.Printf("[INFO] Starting reminder creation")

	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	activity := strings.TrimSpace(req.Activity)
	if activity == "" {
		return nil, fmt.Errorf("reminder activity is required")
	}

	// Time stays free text; nothing schedules off it, it is read back to
	// the user verbatim.
	reminder := &models.Reminder{
		Activity:  activity,
		Time:      strings.TrimSpace(req.Time),
		Status:    models.ReminderStatusActive,
		CreatedAt: time.Now().Format(time.RFC3339),
	}

	if err := s.repo.Create(reminder); err != nil {
		log.Printf("[ERROR] Failed to create reminder: %v", err)
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	log.Printf("[INFO] Successfully created reminder %d: %q", reminder.ID, reminder.Activity)
	return reminder, nil
}

func (s *ReminderService) GetReminders() ([]models.Reminder, error) {
	reminders, err := s.repo.GetAll()
	if err != nil {
		log.Printf("[ERROR] Failed to get reminders: %v", err)
		return nil, fmt.Errorf("failed to get reminders: %w", err)
	}
	return reminders, nil
}
