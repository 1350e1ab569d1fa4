package rag

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/llm"
)

// ErrAllBackendsExhausted is returned when every backend in the fallback
// chain failed. The wrapped message is already credential-sanitized.
var ErrAllBackendsExhausted = errors.New("all generation backends exhausted")

// GenerationClient issues a single generation request against a named
// model. This interface is defined from the generator's perspective
// (consumer-first).
type GenerationClient interface {
	// Generate sends the prompt to the named model and returns the
	// answer text. A rate-limited backend returns an error wrapping
	// llm.ErrRateLimited.
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Generator drives the fallback chain: an ordered list of interchangeable
// backend variants tried in sequence until one answers. Backends are
// treated as interchangeable capacity, so a rate-limited backend is
// skipped after a short backoff, never retried within the same query.
type Generator struct {
	client GenerationClient
	models []string
	tuning Tuning
	sleep  func(time.Duration)
	logger *slog.Logger
}

// NewGenerator creates a generator over the ordered backend list.
func NewGenerator(client GenerationClient, models []string, tuning Tuning) *Generator {
	return &Generator{
		client: client,
		models: models,
		tuning: tuning,
		sleep:  time.Sleep,
		logger: slog.Default(),
	}
}

// Generate tries each backend in order with a bounded per-attempt
// timeout and returns the first successful answer with a confidence
// footer appended. When every backend fails it returns
// ErrAllBackendsExhausted wrapping the last (sanitized) error.
func (g *Generator) Generate(ctx context.Context, prompt string, docs []ContextDoc) (string, string, error) {
	if len(g.models) == 0 {
		return "", "", fmt.Errorf("%w: no backends configured", ErrAllBackendsExhausted)
	}

	var lastErr error
	for _, model := range g.models {
		attemptCtx, cancel := context.WithTimeout(ctx, g.tuning.BackendTimeout)
		answer, err := g.client.Generate(attemptCtx, model, prompt)
		cancel()

		if err == nil {
			return answer + confidenceFooter(docs, model), model, nil
		}

		lastErr = err
		if errors.Is(err, llm.ErrRateLimited) {
			g.logger.Warn("backend rate limited, advancing to next", "model", model)
			g.sleep(g.tuning.RateLimitBackoff)
			continue
		}
		g.logger.Warn("backend failed, advancing to next", "model", model, "error", err)
	}

	return "", "", fmt.Errorf("%w: %s", ErrAllBackendsExhausted, lastErr.Error())
}

// confidenceFooter summarizes the top admitted context docs and the
// backend that answered, appended to every successful answer.
func confidenceFooter(docs []ContextDoc, model string) string {
	if len(docs) == 0 {
		return ""
	}

	top := docs
	if len(top) > 3 {
		top = top[:3]
	}
	parts := make([]string, len(top))
	for i, doc := range top {
		parts[i] = fmt.Sprintf("Madde %s (%%%.0f)", maddeLabel(doc.Madde), doc.Score*100)
	}

	return fmt.Sprintf("\n\n---\nKaynak güveni: %s · Yanıtlayan model: %s",
		strings.Join(parts, ", "), model)
}
