package main

import (
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/config"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/http"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/llm"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/rag"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/storage"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database for the query-history log
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	queryLog := storage.NewQueryRepo(db)

	// Load the article corpus with its precomputed embeddings. A missing
	// corpus file is not fatal: the API stays up and answers with the
	// canned empty-corpus message until the file is provided.
	store := vectorstore.New(cfg.CorpusPath)
	if err := store.Load(); err != nil {
		if errors.Is(err, vectorstore.ErrCorpusUnavailable) {
			slog.Warn("Corpus not available, serving degraded responses", "path", cfg.CorpusPath)
		} else {
			log.Fatalf("Failed to load corpus: %v", err)
		}
	} else {
		slog.Info("Corpus loaded", "path", cfg.CorpusPath, "articles", len(store.Articles()))
	}

	// Gemini clients for query embedding and answer generation
	embedder := llm.NewEmbeddingsClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.EmbeddingModel)
	llmClient := llm.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey)

	tuning := rag.DefaultTuning()

	rules, err := rag.LoadBoostRules(cfg.BoostRulesPath)
	if err != nil {
		log.Fatalf("Failed to load boost rules: %v", err)
	}
	slog.Info("Boost rules loaded", "count", len(rules))

	generator := rag.NewGenerator(llmClient, cfg.GenerationModels, tuning)
	engine := rag.NewEngine(embedder, store, rag.NewReranker(tuning, rules), rag.NewGate(tuning), generator, tuning)
	slog.Info("RAG engine initialized", "models", cfg.GenerationModels)

	// Create router with dependencies
	deps := &http.Deps{
		Engine:    engine,
		Articles:  store,
		QueryLog:  queryLog,
		StaticDir: cfg.StaticDir,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("Gemini configuration", "base_url", cfg.GeminiBaseURL, "embedding_model", cfg.EmbeddingModel)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
