package quiz

import (
	"fmt"

	"voicecoach/services"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Service conducts interactive quiz turns over catalog concepts. It backs
// quiz mode when the session wants a dedicated question/answer exchange
// with structured evaluation.
type Service struct {
	contentService *services.ContentService
	llm            llms.Model
}

type ContinueQuizParams struct {
	Message string `json:"message"`
}

type EvaluateAnswerParams struct {
	IsCorrect     bool   `json:"is_correct"`
	Feedback      string `json:"feedback"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	Encouragement string `json:"encouragement,omitempty"`
}

func NewService(contentService *services.ContentService, apiKey string) (*Service, error) {
	llm, err := openai.New(
		openai.WithModel("gpt-4o-mini"),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	return &Service{
		contentService: contentService,
		llm:            llm,
	}, nil
}
