package models

import "time"

// Checkin is one daily wellness check-in entry. Entries are append-only and
// immutable once written; file order is insertion order.
type Checkin struct {
	Timestamp  string `json:"timestamp"`
	Mood       string `json:"mood"`
	Objectives string `json:"objectives"`
	Summary    string `json:"summary"`
}

// ParsedTime parses the stored RFC3339 timestamp. ok is false for entries
// whose timestamp does not parse; callers skip those silently.
func (c Checkin) ParsedTime() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, c.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type CreateCheckinRequest struct {
	Mood       string `json:"mood"`
	Objectives string `json:"objectives"`
	Summary    string `json:"summary"`
}
