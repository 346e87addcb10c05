package models

// Concept is one tutoring topic from the externally curated content file.
// Concepts are read-only input; there is no mutation path.
type Concept struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Summary        string `json:"summary"`
	SampleQuestion string `json:"sample_question"`
}
