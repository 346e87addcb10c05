package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"voicecoach/models"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Service is the conversational session core: it registers the callable
// tools with the language model, runs the tool-use loop, tracks usage, and
// carries the settable synthesizer-voice property the mode router drives.
// Audio transport, speech recognition, and synthesis live in the hosting
// voice platform, not here.
type Service struct {
	client       *anthropic.Client
	systemPrompt string
	tools        []AgentTool

	mu    sync.Mutex
	voice string
	usage models.UsageSummary
}

func NewService(anthropicAPIKey, systemPrompt string) (*Service, error) {
	if anthropicAPIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}

	client := anthropic.NewClient(option.WithAPIKey(anthropicAPIKey))

	return &Service{
		client:       &client,
		systemPrompt: systemPrompt,
		voice:        models.VoiceForMode(models.ModeUnset),
	}, nil
}

// RegisterTool exposes a tool's name, description, and typed argument
// schema to the language model.
func (s *Service) RegisterTool(tool AgentTool) {
	log.Printf("[INFO] Registering agent tool: %s", tool.Name())
	s.tools = append(s.tools, tool)
}

// ApplyVoice sets the active synthesizer voice. It satisfies
// services.VoiceApplier for the mode router.
func (s *Service) ApplyVoice(voiceID string) error {
	if voiceID == "" {
		return fmt.Errorf("voice id cannot be empty")
	}

	s.mu.Lock()
	s.voice = voiceID
	s.mu.Unlock()

	log.Printf("[INFO] Switched TTS voice to %s", voiceID)
	return nil
}

func (s *Service) Voice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.voice
}

func (s *Service) ProcessMessage(messages []models.AgentMessage) (*models.AgentResponse, error) {
	log.Printf("[INFO] Starting agent message processing with %d messages", len(messages))

	ctx := context.Background()

	anthropicMessages := s.convertToAnthropicMessages(messages)
	toolSpecs := s.buildAnthropicToolSpecs()

	response, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude4Sonnet20250514,
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: s.systemPrompt},
		},
		Messages: anthropicMessages,
		Tools:    toolSpecs,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to call Anthropic API: %v", err)
		return nil, fmt.Errorf("failed to call Anthropic API: %v", err)
	}

	s.collectUsage(response)

	updatedMessages := make([]models.AgentMessage, len(messages))
	copy(updatedMessages, messages)

	toolUses := []anthropic.ToolUseBlock{}
	assistantContent := ""

	for _, block := range response.Content {
		switch block := block.AsAny().(type) {
		case anthropic.TextBlock:
			assistantContent += block.Text
		case anthropic.ToolUseBlock:
			toolUses = append(toolUses, block)
		}
	}

	assistantMsg := models.AgentMessage{
		Role:    "assistant",
		Content: assistantContent,
	}

	for _, toolUse := range toolUses {
		inputJSON, _ := json.Marshal(toolUse.Input)
		var inputMap map[string]interface{}
		json.Unmarshal(inputJSON, &inputMap)

		assistantMsg.ToolCalls = append(assistantMsg.ToolCalls, models.ToolCall{
			ID:        toolUse.ID,
			Name:      toolUse.Name,
			Arguments: inputMap,
		})
	}

	updatedMessages = append(updatedMessages, assistantMsg)

	for _, toolUse := range toolUses {
		log.Printf("[INFO] Executing tool: %s with arguments: %v", toolUse.Name, toolUse.Input)

		inputJSON, _ := json.Marshal(toolUse.Input)

		result, err := s.executeTool(ctx, toolUse.Name, string(inputJSON))
		if err != nil {
			log.Printf("[ERROR] Tool execution failed: %v", err)
			result = fmt.Sprintf("Error: %v", err)
		} else {
			log.Printf("[INFO] Tool execution result: %s", result)
		}

		updatedMessages = append(updatedMessages, models.AgentMessage{
			Role: "tool",
			ToolResults: []models.ToolResult{
				{
					ToolCallID: toolUse.ID,
					Content:    result,
				},
			},
		})
	}

	log.Printf("[INFO] Agent message processing completed successfully")

	return &models.AgentResponse{
		Messages: updatedMessages,
	}, nil
}

func (s *Service) collectUsage(response *anthropic.Message) {
	s.mu.Lock()
	s.usage.Requests++
	s.usage.InputTokens += response.Usage.InputTokens
	s.usage.OutputTokens += response.Usage.OutputTokens
	s.mu.Unlock()
}

func (s *Service) Usage() models.UsageSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usage
}

// LogUsageSummary is wired as a shutdown callback by the server entrypoint.
func (s *Service) LogUsageSummary() {
	usage := s.Usage()
	log.Printf("[INFO] Usage: %d requests, %d input tokens, %d output tokens",
		usage.Requests, usage.InputTokens, usage.OutputTokens)
}

func (s *Service) convertToAnthropicMessages(messages []models.AgentMessage) []anthropic.MessageParam {
	var anthropicMessages []anthropic.MessageParam

	for _, msg := range messages {
		switch msg.Role {
		case "user":
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		case "assistant":
			contentBlocks := []anthropic.ContentBlockParamUnion{}

			if msg.Content != "" {
				contentBlocks = append(contentBlocks, anthropic.ContentBlockParamUnion{
					OfText: &anthropic.TextBlockParam{Text: msg.Content},
				})
			}

			for _, toolCall := range msg.ToolCalls {
				contentBlocks = append(contentBlocks, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    toolCall.ID,
						Name:  toolCall.Name,
						Input: toolCall.Arguments,
					},
				})
			}

			anthropicMessages = append(anthropicMessages, anthropic.NewAssistantMessage(contentBlocks...))
		case "tool":
			toolResultBlocks := []anthropic.ContentBlockParamUnion{}
			for _, result := range msg.ToolResults {
				toolResultBlocks = append(toolResultBlocks, anthropic.ContentBlockParamUnion{
					OfToolResult: &anthropic.ToolResultBlockParam{
						ToolUseID: result.ToolCallID,
						Content: []anthropic.ToolResultBlockParamContentUnion{
							{OfText: &anthropic.TextBlockParam{Text: result.Content}},
						},
					},
				})
			}
			anthropicMessages = append(anthropicMessages, anthropic.NewUserMessage(toolResultBlocks...))
		}
	}

	return anthropicMessages
}

func (s *Service) buildAnthropicToolSpecs() []anthropic.ToolUnionParam {
	var toolSpecs []anthropic.ToolUnionParam

	for _, tool := range s.tools {
		toolSpecs = append(toolSpecs, anthropic.ToolUnionParam{
			OfTool: &anthropic.ToolParam{
				Name:        tool.Name(),
				Description: anthropic.String(tool.Description()),
				InputSchema: tool.GetAnthropicToolSpec(),
			},
		})
	}

	return toolSpecs
}

func (s *Service) executeTool(ctx context.Context, toolName, arguments string) (string, error) {
	for _, tool := range s.tools {
		if tool.Name() == toolName {
			return tool.Call(ctx, arguments)
		}
	}
	return "", fmt.Errorf("tool %s not found", toolName)
}
