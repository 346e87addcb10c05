package models

const ReminderStatusActive = "active"

// Reminder is a gentle activity nudge. Time is kept as free text exactly as
// the user said it ("6 pm", "after lunch"); nothing downstream parses it.
type Reminder struct {
	ID        int    `json:"id"`
	Activity  string `json:"activity"`
	Time      string `json:"time"`
	CreatedAt string `json:"created_at"`
	Status    string `json:"status"`
}

type CreateReminderRequest struct {
	Activity string `json:"activity"`
	Time     string `json:"time"`
}
