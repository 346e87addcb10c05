package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"voicecoach/models"

	"github.com/tmc/langchaingo/llms"
)

const conductQuizSystemPrompt = `You are an interactive quiz coach. Your role is to conduct engaging quiz sessions about programming concepts.

BEHAVIOR GUIDELINES:
1. If this is the start of a conversation (no previous messages), generate ONE thoughtful, open-ended question about the provided concept. Use the sample question as inspiration, not verbatim.

2. If the user responds to your question:
   - If they give a genuine attempt to answer, use evaluate_answer to provide feedback
   - If they indicate they want to give up (e.g., "I don't know", "skip this"), immediately use evaluate_answer and mark the response as incorrect
   - If they go off-topic or seem confused, use continue_quiz to guide them back

3. When evaluating answers:
   - Be fair and encouraging; explain why the answer is correct or incorrect
   - If the user gave up, provide the correct answer with a short explanation

4. When continuing the conversation, do NOT reveal or hint at the correct answer.

5. Keep responses conversational and speakable, not robotic or formal.

IMPORTANT: Call evaluate_answer when the user makes a genuine attempt or explicitly gives up. Use continue_quiz for everything else.`

var conductQuizTools = []llms.Tool{
	{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        "continue_quiz",
			Description: "Continue the quiz conversation, provide clarifications, or steer the user back to answering the question",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"message": map[string]any{
						"type":        "string",
						"description": "The message to continue the conversation with the user",
					},
				},
				"required": []string{"message"},
			},
		},
	},
	{
		Type: "function",
		Function: &llms.FunctionDefinition{
			Name:        "evaluate_answer",
			Description: "Evaluate the user's answer and provide detailed feedback",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"is_correct": map[string]any{
						"type":        "boolean",
						"description": "Whether the user's answer is correct",
					},
					"feedback": map[string]any{
						"type":        "string",
						"description": "Detailed feedback explaining the correctness of the answer",
					},
					"correct_answer": map[string]any{
						"type":        "string",
						"description": "The correct answer if the user's answer was incorrect",
					},
					"encouragement": map[string]any{
						"type":        "string",
						"description": "Optional encouragement or additional context",
					},
				},
				"required": []string{"is_correct", "feedback"},
			},
		},
	},
}

func buildConductQuizPrompt(concept *models.Concept, messages []models.Message) string {
	var prompt strings.Builder

	if len(messages) == 0 {
		prompt.WriteString("Generate one thoughtful quiz question about the following concept.\n\n")
	} else {
		prompt.WriteString("Continue the quiz conversation about the following concept.\n\n")
	}

	prompt.WriteString(fmt.Sprintf("Concept: %s\nSummary: %s\n", concept.Title, concept.Summary))
	if concept.SampleQuestion != "" {
		prompt.WriteString(fmt.Sprintf("Sample question: %s\n", concept.SampleQuestion))
	}

	if len(messages) > 0 {
		prompt.WriteString("\nConversation History:\n")
		for _, msg := range messages {
			prompt.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
		}
	}

	return prompt.String()
}

// ConductConceptQuiz runs one quiz turn for a concept: the model must
// either continue the conversation or evaluate the latest answer.
func (qs *Service) ConductConceptQuiz(conceptID string, messages []models.Message) (*models.QuizConductResponse, error) {
	log.Printf("[INFO] Starting concept quiz conduct for %q with %d messages", conceptID, len(messages))

	if conceptID == "" {
		return nil, fmt.Errorf("concept id is required")
	}

	concept, err := qs.contentService.Lookup(conceptID)
	if err != nil {
		log.Printf("[ERROR] Failed to look up concept %q: %v", conceptID, err)
		return nil, fmt.Errorf("failed to look up concept: %w", err)
	}

	prompt := buildConductQuizPrompt(concept, messages)

	ctx := context.Background()
	messageHistory := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, conductQuizSystemPrompt),
	}

	for _, msg := range messages {
		var msgType llms.ChatMessageType
		if msg.Role == "user" {
			msgType = llms.ChatMessageTypeHuman
		} else {
			msgType = llms.ChatMessageTypeAI
		}
		messageHistory = append(messageHistory, llms.TextParts(msgType, msg.Content))
	}

	messageHistory = append(messageHistory, llms.TextParts(llms.ChatMessageTypeHuman, prompt))

	log.Printf("[INFO] Calling LLM for concept quiz conduct")
	resp, err := qs.llm.GenerateContent(ctx, messageHistory,
		llms.WithTools(conductQuizTools),
		llms.WithTemperature(0.7),
		llms.WithToolChoice("required"))
	if err != nil {
		log.Printf("[ERROR] Failed to generate quiz conduct response: %v", err)
		return nil, fmt.Errorf("failed to generate quiz conduct response: %w", err)
	}

	if len(resp.Choices) == 0 || len(resp.Choices[0].ToolCalls) == 0 {
		log.Printf("[ERROR] No tool calls in LLM quiz conduct response")
		return nil, fmt.Errorf("no tool calls in LLM quiz conduct response")
	}

	toolCall := resp.Choices[0].ToolCalls[0]
	log.Printf("[INFO] LLM called function: %s", toolCall.FunctionCall.Name)

	switch toolCall.FunctionCall.Name {
	case "continue_quiz":
		var params ContinueQuizParams
		if err := json.Unmarshal([]byte(toolCall.FunctionCall.Arguments), &params); err != nil {
			log.Printf("[ERROR] Failed to parse continue_quiz arguments: %v", err)
			return nil, fmt.Errorf("failed to parse continue_quiz arguments: %w", err)
		}

		return &models.QuizConductResponse{
			Type:    "continue",
			Message: params.Message,
		}, nil

	case "evaluate_answer":
		var params EvaluateAnswerParams
		if err := json.Unmarshal([]byte(toolCall.FunctionCall.Arguments), &params); err != nil {
			log.Printf("[ERROR] Failed to parse evaluate_answer arguments: %v", err)
			return nil, fmt.Errorf("failed to parse evaluate_answer arguments: %w", err)
		}

		return &models.QuizConductResponse{
			Type:    "evaluate",
			Message: params.Feedback,
			Evaluation: &models.QuizEvaluation{
				Correct:       params.IsCorrect,
				Feedback:      params.Feedback,
				CorrectAnswer: params.CorrectAnswer,
				Encouragement: params.Encouragement,
			},
		}, nil

	default:
		log.Printf("[ERROR] Unknown function call: %s", toolCall.FunctionCall.Name)
		return nil, fmt.Errorf("unknown function call: %s", toolCall.FunctionCall.Name)
	}
}
