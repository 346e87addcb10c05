package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voicecoach/config"
	"voicecoach/db"
	"voicecoach/handlers"
	"voicecoach/services"
	"voicecoach/services/agent"
	"voicecoach/services/quiz"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	if cfg.AnthropicAPIKey == "" {
		log.Fatal("ANTHROPIC_API_KEY environment variable is required")
	}

	var (
		checkinRepo  db.CheckinRepository
		taskRepo     db.TaskRepository
		reminderRepo db.ReminderRepository
	)

	if cfg.DatabaseURL != "" {
		log.Printf("[INFO] Using Postgres-backed record stores")

		pgCheckins, err := db.NewPostgresCheckinRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize check-in database: %v", err)
		}
		defer pgCheckins.Close()

		pgTasks, err := db.NewPostgresTaskRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize task database: %v", err)
		}
		defer pgTasks.Close()

		pgReminders, err := db.NewPostgresReminderRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize reminder database: %v", err)
		}
		defer pgReminders.Close()

		checkinRepo, taskRepo, reminderRepo = pgCheckins, pgTasks, pgReminders
	} else {
		log.Printf("[INFO] Using JSON-file record stores")
		checkinRepo = db.NewFileCheckinRepository(cfg.CheckinLogPath)
		taskRepo = db.NewFileTaskRepository(cfg.TasksPath)
		reminderRepo = db.NewFileReminderRepository(cfg.RemindersPath)
	}

	checkinService := services.NewCheckinService(checkinRepo)
	taskService := services.NewTaskService(taskRepo)
	reminderService := services.NewReminderService(reminderRepo)
	contentService := services.NewContentService(db.NewFileContentRepository(cfg.ContentPath))

	history, err := checkinService.History()
	if err != nil {
		log.Printf("[WARN] Could not load check-in history for the system prompt: %v", err)
	}
	systemPrompt := agent.BuildSystemPrompt(agent.WellnessSystemPrompt, history) + "\n\n" + agent.TutorSystemPrompt

	agentService, err := agent.NewService(cfg.AnthropicAPIKey, systemPrompt)
	if err != nil {
		log.Fatalf("Failed to initialize agent service: %v", err)
	}

	modeRouter := services.NewModeRouter(agentService)

	agentService.RegisterTool(agent.NewLogCheckinTool(checkinService))
	agentService.RegisterTool(agent.NewGetWeeklyReflectionTool(checkinService))
	agentService.RegisterTool(agent.NewCreateTaskTool(taskService))
	agentService.RegisterTool(agent.NewGetTasksTool(taskService))
	agentService.RegisterTool(agent.NewCompleteTaskTool(taskService))
	agentService.RegisterTool(agent.NewCreateReminderTool(reminderService))
	agentService.RegisterTool(agent.NewSwitchModeTool(modeRouter))
	agentService.RegisterTool(agent.NewGetConceptInfoTool(contentService))
	agentService.RegisterTool(agent.NewListConceptsTool(contentService))

	router := mux.NewRouter()

	router.Use(corsMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	handlers.NewAgentHandler(agentService).RegisterRoutes(router)
	handlers.NewWellnessHandler(checkinService, taskService, reminderService).RegisterRoutes(router)
	handlers.NewTutorHandler(contentService, modeRouter).RegisterRoutes(router)

	if cfg.OpenAIAPIKey != "" {
		quizService, err := quiz.NewService(contentService, cfg.OpenAIAPIKey)
		if err != nil {
			log.Fatalf("Failed to initialize quiz service: %v", err)
		}
		handlers.NewQuizHandler(quizService).RegisterRoutes(router)
	} else {
		log.Printf("[INFO] OPENAI_API_KEY not set, quiz conduct endpoint disabled")
	}

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	server := &http.Server{Addr: addr, Handler: router}

	go func() {
		fmt.Printf("Server starting on port %s\n", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Server shutdown failed: %v", err)
	}

	agentService.LogUsageSummary()
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
