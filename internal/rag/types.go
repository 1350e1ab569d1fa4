package rag

import (
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/vectorstore"
)

// Candidate is a transient per-query record pairing an article with its
// raw vector similarity and its reranked final score. FinalScore starts
// equal to VectorScore and is only ever increased by boost rules.
type Candidate struct {
	Article     vectorstore.Article
	VectorScore float64
	FinalScore  float64
}

// ContextDoc is the externally visible shape of an admitted candidate.
// Score is the confidence in [0,1], derived as 1 - distance.
type ContextDoc struct {
	Text     string               `json:"text"`
	Madde    *int                 `json:"madde"`
	Metadata vectorstore.Metadata `json:"metadata"`
	Score    float64              `json:"score"`
}

// RetrieveResult is the retrieval-only response: the admitted context
// docs plus a canned message when the set is empty.
type RetrieveResult struct {
	Docs    []ContextDoc `json:"context_docs"`
	Message string       `json:"message,omitempty"`
}

// AnswerResult is the full pipeline response.
type AnswerResult struct {
	Answer  string       `json:"answer"`
	Docs    []ContextDoc `json:"retrieved_context"`
	Prompt  string       `json:"prompt_used"`
	Backend string       `json:"-"`
}

// GateKind classifies the confidence gate's decision.
type GateKind int

const (
	// GateGrounded means enough evidence survived to ground an answer.
	GateGrounded GateKind = iota
	// GateGreeting means the question is a salutation with a scripted reply.
	GateGreeting
	// GateNoEvidence means no candidate passed the distance cutoff.
	GateNoEvidence
)

// GateResult is the confidence gate's decision plus the admitted docs
// when the kind is GateGrounded.
type GateResult struct {
	Kind GateKind
	Docs []ContextDoc
}
