package models

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type QuizConductRequest struct {
	ConceptID string    `json:"concept_id"`
	Messages  []Message `json:"messages"`
}

type QuizEvaluation struct {
	Correct       bool   `json:"correct"`
	Feedback      string `json:"feedback"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Encouragement string `json:"encouragement,omitempty"`
}

// QuizConductResponse is either a "continue" turn (clarification, redirect)
// or an "evaluate" turn carrying the answer verdict.
type QuizConductResponse struct {
	Type       string          `json:"type"`
	Message    string          `json:"message"`
	Evaluation *QuizEvaluation `json:"evaluation,omitempty"`
}
