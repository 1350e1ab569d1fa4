package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks github.com/Fatih-Yumusak/anayasa-asistani/internal/rag Engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/contextutil"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/vectorstore"
)

// Canned replies. The pipeline never surfaces a raw error to a caller;
// every degraded path maps to one of these.
const (
	greetingReply = "Merhaba! Ben T.C. Anayasası yapay zeka asistanıyım. Size Anayasa maddeleri ve mevzuat hakkında nasıl yardımcı olabilirim?"
	msgNoResults  = "Üzgünüm, aradığınız kriterlere uygun bir bilgi bulamadım."
	msgNoEvidence = "Anayasa'da bu konuya ilişkin doğrudan bilgi bulunamadı."
	msgGenFailed  = "Üzgünüm, şu anda yanıt üretilemiyor. Lütfen daha sonra tekrar deneyin. (Hata: %s)"
)

// Embedder embeds a question for retrieval. This interface is defined
// from the engine's perspective (consumer-first).
type Embedder interface {
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
}

// Searcher is the read side of the vector index.
type Searcher interface {
	Search(query []float64, n int) []vectorstore.SearchResult
}

// Engine runs the retrieval-rerank-confidence-generate pipeline.
type Engine interface {
	// Retrieve returns the admitted context docs for a question, or a
	// canned message when nothing survives. Never calls a generation
	// backend, so it completes well under the generation timeout.
	Retrieve(ctx context.Context, question string) RetrieveResult

	// Answer generates an answer grounded on a caller-supplied context
	// set, decoupling retrieval latency from generation latency.
	Answer(ctx context.Context, question string, docs []ContextDoc) AnswerResult

	// AnswerQuestion composes retrieval, gating, and generation end to
	// end.
	AnswerQuestion(ctx context.Context, question string) AnswerResult
}

// ragEngine implements the Engine interface. It is constructed once at
// process start and injected into handlers; the only shared resource is
// the read-only vector store.
type ragEngine struct {
	embedder  Embedder
	store     Searcher
	reranker  *Reranker
	gate      *Gate
	generator *Generator
	tuning    Tuning
	logger    *slog.Logger
}

// NewEngine creates a new RAG engine.
func NewEngine(embedder Embedder, store Searcher, reranker *Reranker, gate *Gate, generator *Generator, tuning Tuning) Engine {
	return &ragEngine{
		embedder:  embedder,
		store:     store,
		reranker:  reranker,
		gate:      gate,
		generator: generator,
		tuning:    tuning,
		logger:    slog.Default(),
	}
}

// Retrieve embeds the question, searches the index with over-fetch,
// reranks, and gates. Every failure degrades to an empty doc set with a
// canned message; it never returns an error to the transport layer.
func (e *ragEngine) Retrieve(ctx context.Context, question string) RetrieveResult {
	logger := contextutil.LoggerFromContext(ctx)

	vector, err := e.embedder.EmbedQuery(ctx, question)
	if err != nil {
		logger.ErrorContext(ctx, "embedding unavailable, degrading to empty result", "error", err)
		return RetrieveResult{Message: msgNoResults}
	}

	matches := e.store.Search(vector, e.tuning.OverFetch)
	if len(matches) == 0 {
		logger.InfoContext(ctx, "no search results", "question_length", len(question))
		return RetrieveResult{Message: msgNoResults}
	}

	candidates := make([]Candidate, len(matches))
	for i, m := range matches {
		candidates[i] = Candidate{
			Article:     m.Article,
			VectorScore: m.Score,
			FinalScore:  m.Score,
		}
	}

	admitted := e.reranker.Rerank(question, candidates, e.tuning.TopK)
	logger.DebugContext(ctx, "reranked candidates",
		"in", len(candidates), "admitted", len(admitted), "best_score", admitted[0].FinalScore)

	gated := e.gate.Filter(question, admitted)
	switch gated.Kind {
	case GateGreeting:
		// Callers that reach Retrieve with a greeting get no docs.
		return RetrieveResult{Message: greetingReply}
	case GateNoEvidence:
		logger.InfoContext(ctx, "all candidates below confidence cutoff")
		return RetrieveResult{Message: msgNoEvidence}
	}

	return RetrieveResult{Docs: gated.Docs}
}

// Answer builds the grounding prompt from a caller-supplied context set
// and runs the generation fallback chain.
func (e *ragEngine) Answer(ctx context.Context, question string, docs []ContextDoc) AnswerResult {
	logger := contextutil.LoggerFromContext(ctx)

	if len(docs) == 0 {
		return AnswerResult{Answer: msgNoEvidence, Prompt: "Filtered"}
	}

	prompt := BuildPrompt(question, docs)

	answer, backend, err := e.generator.Generate(ctx, prompt, docs)
	if err != nil {
		// Generator errors are already credential-sanitized.
		logger.ErrorContext(ctx, "all generation backends failed", "error", err)
		return AnswerResult{
			Answer: fmt.Sprintf(msgGenFailed, err.Error()),
			Docs:   docs,
			Prompt: prompt,
		}
	}

	logger.InfoContext(ctx, "answer generated", "backend", backend, "answer_length", len(answer))
	return AnswerResult{
		Answer:  answer,
		Docs:    docs,
		Prompt:  prompt,
		Backend: backend,
	}
}

// AnswerQuestion runs the full pipeline for a single question.
func (e *ragEngine) AnswerQuestion(ctx context.Context, question string) AnswerResult {
	logger := contextutil.LoggerFromContext(ctx)

	// Greetings bypass retrieval entirely: no embedding call, no search.
	if e.gate.IsGreeting(question) {
		logger.InfoContext(ctx, "greeting short-circuit")
		return AnswerResult{Answer: greetingReply, Prompt: "Greeting Check"}
	}

	retrieved := e.Retrieve(ctx, question)
	if len(retrieved.Docs) == 0 {
		return AnswerResult{Answer: retrieved.Message, Prompt: "No Results"}
	}

	return e.Answer(ctx, question, retrieved.Docs)
}
