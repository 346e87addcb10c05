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

type CheckinService struct {
	repo db.CheckinRepository
}

func NewCheckinService(repo db.CheckinRepository) *CheckinService {
	return &CheckinService{repo: repo}
}

func (s *CheckinService) LogCheckin(req *models.CreateCheckinRequest) (*models.Checkin, error) {
	log.Printf("[INFO] Starting check-in logging")

	if req == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	entry := &models.Checkin{
		Timestamp:  time.Now().Format(time.RFC3339),
		Mood:       strings.TrimSpace(req.Mood),
		Objectives: strings.TrimSpace(req.Objectives),
		Summary:    strings.TrimSpace(req.Summary),
	}

	if err := s.repo.Append(entry); err != nil {
		log.Printf("[ERROR] Failed to log check-in: %v", err)
		return nil, fmt.Errorf("failed to log check-in: %w", err)
	}

	log.Printf("[INFO] Successfully logged check-in with mood %q", entry.Mood)
	return entry, nil
}

func (s *CheckinService) History() ([]models.Checkin, error) {
	entries, err := s.repo.GetAll()
	if err != nil {
		log.Printf("[ERROR] Failed to load check-in history: %v", err)
		return nil, fmt.Errorf("failed to load check-in history: %w", err)
	}
	return entries, nil
}

// WeeklyReflection summarizes recent check-ins in spoken-friendly prose.
func (s *CheckinService) WeeklyReflection(days int) (string, error) {
	log.Printf("[INFO] Starting weekly reflection over %d days", days)

	history, err := s.History()
	if err != nil {
		return "", err
	}

	return Reflect(history, days, time.Now()), nil
}

// Reflect builds the reflection summary for check-ins inside
// [now - windowDays, now]. Entries whose timestamps do not parse are
// skipped silently.
func Reflect(records []models.Checkin, windowDays int, now time.Time) string {
	if windowDays <= 0 {
		windowDays = 7
	}

	if len(records) == 0 {
		return "No check-in history available yet. Complete a few daily check-ins first and I can reflect on your week."
	}

	cutoff := now.AddDate(0, 0, -windowDays)
	recent := lo.Filter(records, func(entry models.Checkin, _ int) bool {
		t, ok := entry.ParsedTime()
		return ok && !t.Before(cutoff) && !t.After(now)
	})

	if len(recent) == 0 {
		return fmt.Sprintf("No check-ins found in the last %d days, though you do have older history.", windowDays)
	}

	moods := lo.Map(recent, func(entry models.Checkin, _ int) string {
		return entry.Mood
	})
	moodList := strings.Join(moods[:min(3, len(moods))], ", ")
	if len(moods) > 3 {
		moodList += ", and more"
	}

	withObjectives := lo.CountBy(recent, func(entry models.Checkin) bool {
		return strings.TrimSpace(entry.Objectives) != ""
	})

	return fmt.Sprintf(
		"You've completed %d check-ins in the last %d days. Recent moods: %s. You set objectives in %d of %d check-ins.",
		len(recent), windowDays, moodList, withObjectives, len(recent),
	)
}
