// Package config loads the process-wide configuration: once at startup,
// immutable afterwards, passed down explicitly.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Provider selection values.
const (
	ProviderMock   = "mock"
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

// AppConfig holds every recognized option.
type AppConfig struct {
	LLMProvider string

	GeminiAPIKey string
	GeminiModel  string

	OllamaBaseURL string
	OllamaAPIKey  string
	OllamaModel   string

	JusticeLookbackDays   int
	JusticeMaxItemsPerDay int

	DBPath   string
	Port     string
	LogLevel string
}

// Load reads .env when present, then the environment.
func Load() (*AppConfig, error) {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := &AppConfig{
		LLMProvider:   strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", ProviderMock))),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaAPIKey:  strings.TrimSpace(os.Getenv("OLLAMA_API_KEY")),
		OllamaModel:   getEnv("OLLAMA_MODEL", "llama3.1:8b"),
		DBPath:        strings.TrimSpace(os.Getenv("LAWMATE_DB_PATH")),
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.JusticeLookbackDays, err = getEnvInt("JUSTICE_LOOKBACK_DAYS", 14); err != nil {
		return nil, err
	}
	if cfg.JusticeMaxItemsPerDay, err = getEnvInt("JUSTICE_MAX_ITEMS_PER_DAY", 200); err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".lawmate", "lawmate.sqlite3")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
