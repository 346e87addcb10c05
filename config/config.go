package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	AnthropicAPIKey string
	OpenAIAPIKey    string

	// DatabaseURL switches the record stores from JSON files to Postgres
	// when set.
	DatabaseURL string

	CheckinLogPath string
	TasksPath      string
	RemindersPath  string
	ContentPath    string
}

func Load() *Config {
	if err := godotenv.Load(".env.local"); err != nil {
		log.Printf("[INFO] No .env.local file found, using environment variables")
	}

	return &Config{
		Port:            getEnv("PORT", "8080"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		DatabaseURL:     os.Getenv("DB_URL"),
		CheckinLogPath:  getEnv("CHECKIN_LOG_PATH", "wellness_log.json"),
		TasksPath:       getEnv("TASKS_PATH", "wellness_tasks.json"),
		RemindersPath:   getEnv("REMINDERS_PATH", "wellness_reminders.json"),
		ContentPath:     getEnv("CONTENT_PATH", "shared-data/tutor_content.json"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
