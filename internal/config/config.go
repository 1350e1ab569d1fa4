package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	GeminiAPIKey     string
	GeminiBaseURL    string
	EmbeddingModel   string
	GenerationModels []string
	CorpusPath       string
	BoostRulesPath   string
	DBPath           string
	StaticDir        string
	APIPort          string
	LogLevel         slog.Level
	LogFormat        string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	// Check current directory first, then walk up to find project root (where go.mod is)
	_ = godotenv.Load() // Try current directory

	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ { // Limit search depth
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached filesystem root
			}
			dir = parent
		}
	}

	cfg := &Config{
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:  getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-004"),
		CorpusPath:     getEnv("CORPUS_PATH", "./data/embeddings_gemini.json"),
		BoostRulesPath: getEnv("BOOST_RULES_PATH", ""),
		DBPath:         getEnv("DB_PATH", "./data/anayasa-asistani.db"),
		StaticDir:      getEnv("STATIC_DIR", ""),
		APIPort:        getEnv("API_PORT", "8000"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}

	// The credential guards both the embedding and generation calls.
	// Running without it would silently answer every question with the
	// degraded no-results reply, so it is a startup failure instead.
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	// Ordered fallback chain: first entry is the preferred backend.
	models := getEnv("GENERATION_MODELS", "gemini-2.0-flash,gemini-2.0-flash-lite,gemini-1.5-flash")
	for _, model := range strings.Split(models, ",") {
		model = strings.TrimSpace(model)
		if model != "" {
			cfg.GenerationModels = append(cfg.GenerationModels, model)
		}
	}
	if len(cfg.GenerationModels) == 0 {
		return nil, fmt.Errorf("GENERATION_MODELS must name at least one model")
	}

	cfg.LogLevel = parseLogLevel(getEnv("LOG_LEVEL", "info"))

	// Create ./data directory if it doesn't exist (for the DB file)
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
