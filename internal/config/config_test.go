package config

import (
	"log/slog"
	"path/filepath"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("GeminiAPIKey = %v, want test-key", cfg.GeminiAPIKey)
	}
	if cfg.GeminiBaseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("GeminiBaseURL = %v", cfg.GeminiBaseURL)
	}
	if cfg.EmbeddingModel != "text-embedding-004" {
		t.Errorf("EmbeddingModel = %v", cfg.EmbeddingModel)
	}
	if len(cfg.GenerationModels) != 3 || cfg.GenerationModels[0] != "gemini-2.0-flash" {
		t.Errorf("GenerationModels = %v", cfg.GenerationModels)
	}
	if cfg.APIPort != "8000" {
		t.Errorf("APIPort = %v, want 8000", cfg.APIPort)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_MissingCredentialFails(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Error("Load() without GEMINI_API_KEY should fail")
	}
}

func TestLoad_GenerationModelList(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GENERATION_MODELS", " gemini-2.0-flash , gemini-1.5-flash ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.GenerationModels) != 2 {
		t.Fatalf("GenerationModels = %v, want 2 entries", cfg.GenerationModels)
	}
	if cfg.GenerationModels[0] != "gemini-2.0-flash" || cfg.GenerationModels[1] != "gemini-1.5-flash" {
		t.Errorf("GenerationModels = %v, entries not trimmed", cfg.GenerationModels)
	}
}

func TestLoad_LogLevels(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("LOG_LEVEL", tt.value)

			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.LogLevel != tt.want {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.want)
			}
		})
	}
}
