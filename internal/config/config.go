package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const defaultMaxUploadMB = 10

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}

	cfg := Config{
		DBName:   getEnv("DB_NAME"),
		Port:     getEnv("PORT"),
		LogLevel: os.Getenv("LOG_LEVEL"),
		Slack: SlackConfig{
			Token:         os.Getenv("SLACK_BOT_TOKEN"),
			ChannelID:     os.Getenv("SLACK_CHANNEL_ID"),
			SigningSecret: os.Getenv("SLACK_SIGNING_SECRET"),
		},
		Turso: TursoConfig{
			PrimaryURL: os.Getenv("TURSO_PRIMARY_URL"),
			AuthToken:  os.Getenv("TURSO_AUTH_TOKEN"),
		},
		ProjectID:   os.Getenv("GCP_PROJECT"),
		MaxUploadMB: parseMaxUpload(os.Getenv("MAX_UPLOAD_MB")),
	}
	return cfg
}

func parseMaxUpload(raw string) int64 {
	if raw == "" {
		return defaultMaxUploadMB
	}
	mb, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || mb <= 0 {
		log.Warn("Invalid MAX_UPLOAD_MB, using default", "value", raw, "default", defaultMaxUploadMB)
		return defaultMaxUploadMB
	}
	return mb
}
