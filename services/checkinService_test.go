package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"voicecoach/db"
	"voicecoach/models"
)

func checkinAt(ts time.Time, mood, objectives string) models.Checkin {
	return models.Checkin{
		Timestamp:  ts.Format(time.RFC3339),
		Mood:       mood,
		Objectives: objectives,
		Summary:    "summary",
	}
}

func TestReflect(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		records     []models.Checkin
		windowDays  int
		contains    []string
		notContains []string
	}{
		{
			name:       "no history at all",
			records:    nil,
			windowDays: 7,
			contains:   []string{"No check-in history available"},
		},
		{
			name: "history entirely outside window",
			records: []models.Checkin{
				checkinAt(now.AddDate(0, 0, -30), "old mood", "old objectives"),
			},
			windowDays:  7,
			contains:    []string{"No check-ins found in the last 7 days"},
			notContains: []string{"old mood"},
		},
		{
			name: "entries inside window are counted",
			records: []models.Checkin{
				checkinAt(now.AddDate(0, 0, -5), "motivated", "Start new task"),
				checkinAt(now.AddDate(0, 0, -2), "tired", "Rest, Read a book"),
				checkinAt(now, "energetic", "Complete project, Exercise"),
			},
			windowDays: 7,
			contains:   []string{"3 check-ins", "motivated", "tired", "energetic", "3 of 3"},
		},
		{
			name: "unparsable timestamps are dropped silently",
			records: []models.Checkin{
				{Timestamp: "yesterday-ish", Mood: "ghost"},
				checkinAt(now, "energetic", "Exercise"),
			},
			windowDays:  7,
			contains:    []string{"1 check-ins", "energetic"},
			notContains: []string{"ghost"},
		},
		{
			name: "moods truncate after three",
			records: []models.Checkin{
				checkinAt(now.AddDate(0, 0, -4), "calm", ""),
				checkinAt(now.AddDate(0, 0, -3), "tense", ""),
				checkinAt(now.AddDate(0, 0, -2), "curious", "read"),
				checkinAt(now.AddDate(0, 0, -1), "upbeat", "run"),
			},
			windowDays:  7,
			contains:    []string{"4 check-ins", "calm, tense, curious, and more", "2 of 4"},
			notContains: []string{"upbeat"},
		},
		{
			name: "mixed old and recent entries",
			records: []models.Checkin{
				checkinAt(now.AddDate(0, 0, -20), "ancient", "archive"),
				checkinAt(now.AddDate(0, 0, -1), "fresh", "ship"),
			},
			windowDays:  7,
			contains:    []string{"1 check-ins", "fresh"},
			notContains: []string{"ancient"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.records, tt.windowDays, now)

			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Reflect() = %q, expected it to contain %q", got, want)
				}
			}
			for _, unwanted := range tt.notContains {
				if strings.Contains(got, unwanted) {
					t.Errorf("Reflect() = %q, expected it NOT to contain %q", got, unwanted)
				}
			}
		})
	}
}

func TestLogCheckinStampsCurrentTime(t *testing.T) {
	service := NewCheckinService(db.NewMemoryCheckinRepository())

	entry, err := service.LogCheckin(&models.CreateCheckinRequest{
		Mood:       "Good",
		Objectives: "Test",
		Summary:    "s",
	})
	if err != nil {
		t.Fatalf("LogCheckin() returned error: %v", err)
	}

	if _, ok := entry.ParsedTime(); !ok {
		t.Errorf("expected parseable RFC3339 timestamp, got %q", entry.Timestamp)
	}

	history, err := service.History()
	if err != nil {
		t.Fatalf("History() returned error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(history))
	}
	if history[0].Mood != "Good" || history[0].Objectives != "Test" || history[0].Summary != "s" {
		t.Errorf("stored entry does not match input: %+v", history[0])
	}
}

func TestWeeklyReflectionCountMatchesWindow(t *testing.T) {
	repo := db.NewMemoryCheckinRepository()
	service := NewCheckinService(repo)

	for i := 0; i < 3; i++ {
		entry := checkinAt(time.Now().AddDate(0, 0, -i), fmt.Sprintf("mood-%d", i), "objective")
		if err := repo.Append(&entry); err != nil {
			t.Fatalf("Append() returned error: %v", err)
		}
	}

	got, err := service.WeeklyReflection(7)
	if err != nil {
		t.Fatalf("WeeklyReflection() returned error: %v", err)
	}
	if !strings.Contains(got, "3 check-ins") {
		t.Errorf("WeeklyReflection() = %q, expected a count of 3 check-ins", got)
	}
}
