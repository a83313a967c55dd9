package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DiscordToken string
	DiscordAppID string
	BotName      string

	LLMBackend   string // "openai", "gemini" or "mock"
	OpenAIAPIKey string
	GeminiAPIKey string
	ModelName    string

	StorageBackend string // "firestore" or "memory"
	GCPProjectID   string

	HistoryLimit      int
	CompletionTimeout time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Load reads the .env file (if present) and all env vars, and builds the
// config. Missing required credentials are a startup error: the caller is
// expected to halt.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		DiscordAppID: getEnv("DISCORD_APP_ID", ""),
		BotName:      getEnv("TUTOR_BOT_NAME", "tutor bot"),

		LLMBackend:   getEnv("TUTOR_LLM_BACKEND", "openai"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ModelName:    getEnv("TUTOR_MODEL_NAME", ""),

		StorageBackend: getEnv("TUTOR_STORAGE_BACKEND", "memory"),
		GCPProjectID:   getEnv("TUTOR_GCP_PROJECT", ""),

		HistoryLimit:      getIntEnv("TUTOR_HISTORY_LIMIT", 10),
		CompletionTimeout: getDurationEnv("TUTOR_COMPLETION_TIMEOUT", 30*time.Second),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN must be set")
	}
	if cfg.DiscordAppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID must be set")
	}

	switch cfg.LLMBackend {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY must be set for the openai backend")
		}
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY must be set for the gemini backend")
		}
	case "mock":
	default:
		return nil, fmt.Errorf("unknown TUTOR_LLM_BACKEND %q", cfg.LLMBackend)
	}

	switch cfg.StorageBackend {
	case "firestore":
		if cfg.GCPProjectID == "" {
			return nil, fmt.Errorf("TUTOR_GCP_PROJECT must be set for the firestore backend")
		}
	case "memory":
	default:
		return nil, fmt.Errorf("unknown TUTOR_STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}
