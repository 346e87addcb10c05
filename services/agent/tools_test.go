package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voicecoach/db"
	"voicecoach/models"
	"voicecoach/services"
)

// failingVoice simulates a speech layer that rejects voice updates.
type failingVoice struct{}

func (failingVoice) ApplyVoice(voiceID string) error {
	return errors.New("session closed")
}

type okVoice struct {
	lastVoice string
}

func (v *okVoice) ApplyVoice(voiceID string) error {
	v.lastVoice = voiceID
	return nil
}

func testContentService() *services.ContentService {
	return services.NewContentService(&db.StaticContentRepository{
		Concepts: []models.Concept{
			{ID: "variables", Title: "Variables", Summary: "Named storage for values.", SampleQuestion: "What is a variable?"},
			{ID: "loops", Title: "Loops", Summary: "Repeat work over a collection.", SampleQuestion: "When would you use a for loop?"},
			{ID: "functions", Title: "Functions", Summary: "Reusable blocks of logic."},
		},
	})
}

func TestLogCheckinToolRoundTrip(t *testing.T) {
	repo := db.NewMemoryCheckinRepository()
	tool := NewLogCheckinTool(services.NewCheckinService(repo))

	out, err := tool.Call(context.Background(), `{"mood":"calm","objectives":"finish slides","summary":"steady day"}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	if out != "Check-in logged successfully." {
		t.Errorf("unexpected tool output: %q", out)
	}

	entries, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 logged check-in, got %d", len(entries))
	}
	if entries[0].Mood != "calm" || entries[0].Objectives != "finish slides" {
		t.Errorf("unexpected stored entry: %+v", entries[0])
	}
	if _, perr := time.Parse(time.RFC3339, entries[0].Timestamp); perr != nil {
		t.Errorf("timestamp %q is not RFC 3339: %v", entries[0].Timestamp, perr)
	}
}

func TestLogCheckinToolBadInput(t *testing.T) {
	tool := NewLogCheckinTool(services.NewCheckinService(db.NewMemoryCheckinRepository()))

	if _, err := tool.Call(context.Background(), `{not json`); err == nil {
		t.Error("expected an error for undecodable input")
	}
}

func TestTaskToolsLifecycle(t *testing.T) {
	taskService := services.NewTaskService(db.NewMemoryTaskRepository())
	create := NewCreateTaskTool(taskService)
	get := NewGetTasksTool(taskService)
	complete := NewCompleteTaskTool(taskService)
	ctx := context.Background()

	out, err := create.Call(ctx, `{"task_title":"Exercise","priority":"high"}`)
	if err != nil {
		t.Fatalf("create_task returned error: %v", err)
	}
	if out != "Task created successfully: 'Exercise' with high priority." {
		t.Errorf("unexpected create_task output: %q", out)
	}

	out, err = get.Call(ctx, `{}`)
	if err != nil {
		t.Fatalf("get_tasks returned error: %v", err)
	}
	if !strings.Contains(out, "Exercise") || !strings.Contains(out, "high priority") {
		t.Errorf("pending list missing the new task: %q", out)
	}

	out, err = complete.Call(ctx, `{"task_title":"exercise"}`)
	if err != nil {
		t.Fatalf("complete_task returned error: %v", err)
	}
	if out != "Task 'Exercise' marked as completed." {
		t.Errorf("unexpected complete_task output: %q", out)
	}

	out, err = get.Call(ctx, `{"status_filter":"all"}`)
	if err != nil {
		t.Fatalf("get_tasks(all) returned error: %v", err)
	}
	if !strings.Contains(out, "[completed]") {
		t.Errorf("expected the completed marker in the all listing: %q", out)
	}

	out, err = get.Call(ctx, `{}`)
	if err != nil {
		t.Fatalf("get_tasks returned error: %v", err)
	}
	if out != "No tasks found." {
		t.Errorf("expected no pending tasks after completion, got %q", out)
	}
}

func TestCompleteTaskToolNotFound(t *testing.T) {
	taskService := services.NewTaskService(db.NewMemoryTaskRepository())
	tool := NewCompleteTaskTool(taskService)

	out, err := tool.Call(context.Background(), `{"task_title":"laundry"}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	if out != "Task matching 'laundry' not found." {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestCreateReminderTool(t *testing.T) {
	repo := db.NewMemoryReminderRepository()
	tool := NewCreateReminderTool(services.NewReminderService(repo))

	out, err := tool.Call(context.Background(), `{"activity":"evening walk","time":"6 pm"}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	if out != "Reminder created: 'evening walk' at 6 pm." {
		t.Errorf("unexpected output: %q", out)
	}

	reminders, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() returned error: %v", err)
	}
	if len(reminders) != 1 || reminders[0].Activity != "evening walk" {
		t.Errorf("unexpected stored reminders: %+v", reminders)
	}
}

func TestGetWeeklyReflectionToolDefaultsWindow(t *testing.T) {
	repo := db.NewMemoryCheckinRepository()
	service := services.NewCheckinService(repo)
	if _, err := service.LogCheckin(&models.CreateCheckinRequest{Mood: "focused", Objectives: "outline the doc", Summary: "ok"}); err != nil {
		t.Fatalf("LogCheckin() returned error: %v", err)
	}

	tool := NewGetWeeklyReflectionTool(service)

	out, err := tool.Call(context.Background(), `{}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	if !strings.Contains(out, "in the last 7 days") {
		t.Errorf("expected the default 7-day window, got %q", out)
	}
	if !strings.Contains(out, "focused") {
		t.Errorf("expected the logged mood in the summary, got %q", out)
	}
}

func TestSwitchModeTool(t *testing.T) {
	ctx := context.Background()

	t.Run("valid switch with concept", func(t *testing.T) {
		voice := &okVoice{}
		tool := NewSwitchModeTool(services.NewModeRouter(voice))

		out, err := tool.Call(ctx, `{"mode":"quiz","concept":"loops"}`)
		if err != nil {
			t.Fatalf("Call() returned error: %v", err)
		}
		if out != "Switched to Quiz mode with Alicia's voice. Ready to focus on loops." {
			t.Errorf("unexpected output: %q", out)
		}
		if voice.lastVoice != "en-US-alicia" {
			t.Errorf("voice = %q, expected en-US-alicia", voice.lastVoice)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		tool := NewSwitchModeTool(services.NewModeRouter(&okVoice{}))

		out, err := tool.Call(ctx, `{"mode":"hyperfocus"}`)
		if err != nil {
			t.Fatalf("Call() returned error: %v", err)
		}
		if out != "Invalid mode: hyperfocus. Must be 'learn', 'quiz', or 'teach_back'." {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("voice failure adds caveat", func(t *testing.T) {
		router := services.NewModeRouter(failingVoice{})
		tool := NewSwitchModeTool(router)

		out, err := tool.Call(ctx, `{"mode":"teach_back"}`)
		if err != nil {
			t.Fatalf("Call() returned error: %v", err)
		}
		if !strings.HasPrefix(out, "Switched to Teach back mode with Ken's voice.") {
			t.Errorf("unexpected output: %q", out)
		}
		if !strings.Contains(out, "Note: Voice change may take effect on next response.") {
			t.Errorf("expected the voice caveat in %q", out)
		}

		mode, _ := router.Current()
		if mode != models.ModeTeachBack {
			t.Errorf("mode = %q, expected teach_back after a voice failure", mode)
		}
	})
}

func TestGetConceptInfoTool(t *testing.T) {
	tool := NewGetConceptInfoTool(testContentService())
	ctx := context.Background()

	out, err := tool.Call(ctx, `{"concept_identifier":"loop"}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	expected := "Concept: Loops\nSummary: Repeat work over a collection.\nSample Question: When would you use a for loop?"
	if out != expected {
		t.Errorf("unexpected output: %q", out)
	}

	out, err = tool.Call(ctx, `{"concept_identifier":"functions"}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	if !strings.HasSuffix(out, "Sample Question: N/A") {
		t.Errorf("expected N/A for a missing sample question, got %q", out)
	}

	out, err = tool.Call(ctx, `{"concept_identifier":"nonexistent"}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	if out != "Concept 'nonexistent' not found." {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestListConceptsTool(t *testing.T) {
	tool := NewListConceptsTool(testContentService())

	out, err := tool.Call(context.Background(), `{}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	if !strings.HasPrefix(out, "Available concepts:\n") {
		t.Errorf("unexpected output prefix: %q", out)
	}
	for _, line := range []string{"- Variables (variables)", "- Loops (loops)", "- Functions (functions)"} {
		if !strings.Contains(out, line) {
			t.Errorf("expected %q in %q", line, out)
		}
	}

	empty := NewListConceptsTool(services.NewContentService(&db.StaticContentRepository{}))
	out, err = empty.Call(context.Background(), `{}`)
	if err != nil {
		t.Fatalf("Call() returned error: %v", err)
	}
	if out != "No concepts available." {
		t.Errorf("unexpected output for an empty catalog: %q", out)
	}
}

func TestToolSchemasExposeRequiredFields(t *testing.T) {
	spec := NewLogCheckinTool(nil).GetAnthropicToolSpec()
	if spec.Properties == nil {
		t.Fatal("expected a properties map in the schema")
	}
}
