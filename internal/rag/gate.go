package rag

import (
	"strings"
	"unicode/utf8"
)

// greetingVocabulary is the fixed set of salutations that short-circuit
// the pipeline with a scripted reply.
var greetingVocabulary = []string{
	"merhaba", "selam", "günaydın", "iyi günler", "nasılsın", "hi", "hello",
}

// Gate decides whether retrieved evidence is trustworthy enough to
// ground an answer at all.
type Gate struct {
	tuning Tuning
}

// NewGate creates a confidence gate with the given thresholds.
func NewGate(tuning Tuning) *Gate {
	return &Gate{tuning: tuning}
}

// IsGreeting reports whether the question is a short salutation.
// Checked before retrieval so greetings never hit the embedding service.
func (g *Gate) IsGreeting(question string) bool {
	if utf8.RuneCountInString(question) >= g.tuning.GreetingMaxLen {
		return false
	}
	lower := strings.ToLower(question)
	for _, greeting := range greetingVocabulary {
		if strings.Contains(lower, greeting) {
			return true
		}
	}
	return false
}

// Filter applies the gate rules in order: greeting short-circuit, then
// the absolute distance cutoff on the raw vector score. Boosted final
// scores are deliberately ignored here so a boost cannot mask a
// genuinely irrelevant match.
func (g *Gate) Filter(question string, candidates []Candidate) GateResult {
	if g.IsGreeting(question) {
		return GateResult{Kind: GateGreeting}
	}

	var docs []ContextDoc
	for _, cand := range candidates {
		distance := 1 - cand.VectorScore
		if distance > g.tuning.GateMaxDistance {
			continue
		}
		docs = append(docs, ContextDoc{
			Text:     cand.Article.Text,
			Madde:    cand.Article.Metadata.Madde,
			Metadata: cand.Article.Metadata,
			Score:    1 - distance,
		})
	}

	if len(docs) == 0 {
		return GateResult{Kind: GateNoEvidence}
	}
	return GateResult{Kind: GateGrounded, Docs: docs}
}
