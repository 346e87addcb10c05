package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"voicecoach/models"
	"voicecoach/services"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/invopop/jsonschema"
)

// AgentTool is one callable tool exposed to the language model: name and
// description become remote metadata, Call receives the model's arguments
// as JSON.
//
// Tools speak their results: domain and storage failures are logged and
// returned as user-facing strings with a nil error, so a storage glitch
// degrades into "I couldn't do that" instead of breaking the voice turn.
// Only undecodable input returns a Go error.
type AgentTool interface {
	Name() string
	Description() string
	Call(ctx context.Context, input string) (string, error)
	GetAnthropicToolSpec() anthropic.ToolInputSchemaParam
}

func generateAnthropicSchema[T any]() anthropic.ToolInputSchemaParam {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	return anthropic.ToolInputSchemaParam{
		Properties: schema.Properties,
	}
}

type LogCheckinToolInput struct {
	Mood       string `json:"mood" jsonschema:"required,description=The user's self-reported mood"`
	Objectives string `json:"objectives" jsonschema:"required,description=The user's stated objectives or intentions for the day"`
	Summary    string `json:"summary" jsonschema:"required,description=A brief agent-generated summary of the conversation"`
}

type LogCheckinTool struct {
	checkinService *services.CheckinService
}

func NewLogCheckinTool(checkinService *services.CheckinService) LogCheckinTool {
	return LogCheckinTool{checkinService: checkinService}
}

func (t LogCheckinTool) Name() string {
	return "log_checkin"
}

func (t LogCheckinTool) Description() string {
	return "Logs the details of the wellness check-in at the end of the conversation"
}

func (t LogCheckinTool) Call(ctx context.Context, input string) (string, error) {
	var params LogCheckinToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse log checkin tool input: %v", err)
	}

	_, err := t.checkinService.LogCheckin(&models.CreateCheckinRequest{
		Mood:       params.Mood,
		Objectives: params.Objectives,
		Summary:    params.Summary,
	})
	if err != nil {
		log.Printf("[ERROR] log_checkin failed: %v", err)
		return "Failed to log check-in.", nil
	}

	return "Check-in logged successfully.", nil
}

func (t LogCheckinTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[LogCheckinToolInput]()
}

type GetWeeklyReflectionToolInput struct {
	Days int `json:"days,omitempty" jsonschema:"description=Number of days to look back (default: 7)"`
}

type GetWeeklyReflectionTool struct {
	checkinService *services.CheckinService
}

func NewGetWeeklyReflectionTool(checkinService *services.CheckinService) GetWeeklyReflectionTool {
	return GetWeeklyReflectionTool{checkinService: checkinService}
}

func (t GetWeeklyReflectionTool) Name() string {
	return "get_weekly_reflection"
}

func (t GetWeeklyReflectionTool) Description() string {
	return "Summarizes the user's check-ins over the past week: entry count, recent moods, and how often objectives were set"
}

func (t GetWeeklyReflectionTool) Call(ctx context.Context, input string) (string, error) {
	var params GetWeeklyReflectionToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse weekly reflection tool input: %v", err)
	}

	days := params.Days
	if days <= 0 {
		days = 7
	}

	summary, err := t.checkinService.WeeklyReflection(days)
	if err != nil {
		log.Printf("[ERROR] get_weekly_reflection failed: %v", err)
		return "Failed to build the weekly reflection.", nil
	}

	return summary, nil
}

func (t GetWeeklyReflectionTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[GetWeeklyReflectionToolInput]()
}

type CreateTaskToolInput struct {
	TaskTitle string `json:"task_title" jsonschema:"required,description=The title of the task to create"`
	Priority  string `json:"priority,omitempty" jsonschema:"description=Task priority: high, medium, or low (default: medium)"`
}

type CreateTaskTool struct {
	taskService *services.TaskService
}

func NewCreateTaskTool(taskService *services.TaskService) CreateTaskTool {
	return CreateTaskTool{taskService: taskService}
}

func (t CreateTaskTool) Name() string {
	return "create_task"
}

func (t CreateTaskTool) Description() string {
	return "Creates a new task from one of the user's objectives"
}

func (t CreateTaskTool) Call(ctx context.Context, input string) (string, error) {
	var params CreateTaskToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse create task tool input: %v", err)
	}

	task, err := t.taskService.CreateTask(&models.CreateTaskRequest{
		Title:    params.TaskTitle,
		Priority: params.Priority,
	})
	if err != nil {
		log.Printf("[ERROR] create_task failed: %v", err)
		return "Failed to create the task.", nil
	}

	return fmt.Sprintf("Task created successfully: '%s' with %s priority.", task.Title, task.Priority), nil
}

func (t CreateTaskTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[CreateTaskToolInput]()
}

type GetTasksToolInput struct {
	StatusFilter string `json:"status_filter,omitempty" jsonschema:"description=Filter tasks by status: pending, completed, or all (default: pending)"`
}

type GetTasksTool struct {
	taskService *services.TaskService
}

func NewGetTasksTool(taskService *services.TaskService) GetTasksTool {
	return GetTasksTool{taskService: taskService}
}

func (t GetTasksTool) Name() string {
	return "get_tasks"
}

func (t GetTasksTool) Description() string {
	return "Lists the user's tasks, optionally filtered by status"
}

func (t GetTasksTool) Call(ctx context.Context, input string) (string, error) {
	var params GetTasksToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse get tasks tool input: %v", err)
	}

	filter := params.StatusFilter
	if filter == "" {
		filter = models.TaskStatusPending
	}

	tasks, err := t.taskService.GetTasks(filter)
	if err != nil {
		log.Printf("[ERROR] get_tasks failed: %v", err)
		return "Failed to list tasks.", nil
	}

	if len(tasks) == 0 {
		return "No tasks found.", nil
	}

	items := make([]string, 0, len(tasks))
	for _, task := range tasks {
		item := fmt.Sprintf("'%s' (%s priority)", task.Title, task.Priority)
		if task.Status == models.TaskStatusCompleted {
			item += " [completed]"
		}
		items = append(items, item)
	}

	return fmt.Sprintf("You have %d %s task(s): %s.", len(tasks), filter, strings.Join(items, ", ")), nil
}

func (t GetTasksTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[GetTasksToolInput]()
}

type CompleteTaskToolInput struct {
	TaskTitle string `json:"task_title" jsonschema:"required,description=The title (or part of the title) of the task to mark completed"`
}

type CompleteTaskTool struct {
	taskService *services.TaskService
}

func NewCompleteTaskTool(taskService *services.TaskService) CompleteTaskTool {
	return CompleteTaskTool{taskService: taskService}
}

func (t CompleteTaskTool) Name() string {
	return "complete_task"
}

func (t CompleteTaskTool) Description() string {
	return "Marks a task as completed, matched by title"
}

func (t CompleteTaskTool) Call(ctx context.Context, input string) (string, error) {
	var params CompleteTaskToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse complete task tool input: %v", err)
	}

	task, err := t.taskService.CompleteTask(params.TaskTitle)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Sprintf("Task matching '%s' not found.", params.TaskTitle), nil
		}
		log.Printf("[ERROR] complete_task failed: %v", err)
		return "Failed to complete the task.", nil
	}

	return fmt.Sprintf("Task '%s' marked as completed.", task.Title), nil
}

func (t CompleteTaskTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[CompleteTaskToolInput]()
}

type CreateReminderToolInput struct {
	Activity string `json:"activity" jsonschema:"required,description=The activity to be reminded about"`
	Time     string `json:"time" jsonschema:"required,description=When to be reminded, as the user phrased it (e.g. '6 pm')"`
}

type CreateReminderTool struct {
	reminderService *services.ReminderService
}

func NewCreateReminderTool(reminderService *services.ReminderService) CreateReminderTool {
	return CreateReminderTool{reminderService: reminderService}
}

func (t CreateReminderTool) Name() string {
	return "create_reminder"
}

func (t CreateReminderTool) Description() string {
	return "Creates a reminder for a self-care activity"
}

func (t CreateReminderTool) Call(ctx context.Context, input string) (string, error) {
	var params CreateReminderToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse create reminder tool input: %v", err)
	}

	reminder, err := t.reminderService.CreateReminder(&models.CreateReminderRequest{
		Activity: params.Activity,
		Time:     params.Time,
	})
	if err != nil {
		log.Printf("[ERROR] create_reminder failed: %v", err)
		return "Failed to create the reminder.", nil
	}

	return fmt.Sprintf("Reminder created: '%s' at %s.", reminder.Activity, reminder.Time), nil
}

func (t CreateReminderTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[CreateReminderToolInput]()
}

type SwitchModeToolInput struct {
	Mode    string `json:"mode" jsonschema:"required,description=The mode to switch to: 'learn', 'quiz', or 'teach_back'"`
	Concept string `json:"concept,omitempty" jsonschema:"description=Optional concept to focus on"`
}

type SwitchModeTool struct {
	router *services.ModeRouter
}

func NewSwitchModeTool(router *services.ModeRouter) SwitchModeTool {
	return SwitchModeTool{router: router}
}

func (t SwitchModeTool) Name() string {
	return "switch_mode"
}

func (t SwitchModeTool) Description() string {
	return "Switches to a different learning mode. This changes the agent's voice and behavior"
}

func (t SwitchModeTool) Call(ctx context.Context, input string) (string, error) {
	var params SwitchModeToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse switch mode tool input: %v", err)
	}

	result, err := t.router.Switch(params.Mode, params.Concept)
	if err != nil {
		// State is untouched; tell the model what the valid targets are.
		return fmt.Sprintf("Invalid mode: %s. Must be 'learn', 'quiz', or 'teach_back'.", params.Mode), nil
	}

	response := fmt.Sprintf("Switched to %s.", result.Mode.DisplayName())
	if result.Concept != "" {
		response += fmt.Sprintf(" Ready to focus on %s.", result.Concept)
	}
	if !result.VoiceApplied {
		response += " Note: Voice change may take effect on next response."
	}

	return response, nil
}

func (t SwitchModeTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[SwitchModeToolInput]()
}

type GetConceptInfoToolInput struct {
	ConceptIdentifier string `json:"concept_identifier" jsonschema:"required,description=The concept ID (e.g. 'variables') or title to look up"`
}

type GetConceptInfoTool struct {
	contentService *services.ContentService
}

func NewGetConceptInfoTool(contentService *services.ContentService) GetConceptInfoTool {
	return GetConceptInfoTool{contentService: contentService}
}

func (t GetConceptInfoTool) Name() string {
	return "get_concept_info"
}

func (t GetConceptInfoTool) Description() string {
	return "Gets the summary and sample question for a concept from the content catalog"
}

func (t GetConceptInfoTool) Call(ctx context.Context, input string) (string, error) {
	var params GetConceptInfoToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse get concept info tool input: %v", err)
	}

	concept, err := t.contentService.Lookup(params.ConceptIdentifier)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Sprintf("Concept '%s' not found.", params.ConceptIdentifier), nil
		}
		log.Printf("[ERROR] get_concept_info failed: %v", err)
		return "Failed to look up the concept.", nil
	}

	sample := concept.SampleQuestion
	if sample == "" {
		sample = "N/A"
	}

	return fmt.Sprintf("Concept: %s\nSummary: %s\nSample Question: %s", concept.Title, concept.Summary, sample), nil
}

func (t GetConceptInfoTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[GetConceptInfoToolInput]()
}

type ListConceptsToolInput struct{}

type ListConceptsTool struct {
	contentService *services.ContentService
}

func NewListConceptsTool(contentService *services.ContentService) ListConceptsTool {
	return ListConceptsTool{contentService: contentService}
}

func (t ListConceptsTool) Name() string {
	return "list_concepts"
}

func (t ListConceptsTool) Description() string {
	return "Lists all concepts available in the content catalog"
}

func (t ListConceptsTool) Call(ctx context.Context, input string) (string, error) {
	var params ListConceptsToolInput
	if err := json.Unmarshal([]byte(input), &params); err != nil {
		return "", fmt.Errorf("failed to parse list concepts tool input: %v", err)
	}

	concepts, err := t.contentService.List()
	if err != nil {
		log.Printf("[ERROR] list_concepts failed: %v", err)
		return "Failed to list concepts.", nil
	}

	if len(concepts) == 0 {
		return "No concepts available.", nil
	}

	lines := make([]string, 0, len(concepts))
	for _, concept := range concepts {
		lines = append(lines, fmt.Sprintf("- %s (%s)", concept.Title, concept.ID))
	}

	return "Available concepts:\n" + strings.Join(lines, "\n"), nil
}

func (t ListConceptsTool) GetAnthropicToolSpec() anthropic.ToolInputSchemaParam {
	return generateAnthropicSchema[ListConceptsToolInput]()
}
