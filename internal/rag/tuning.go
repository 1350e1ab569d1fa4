package rag

import "time"

// Tuning collects every hand-tuned threshold of the retrieval pipeline
// in one place so recalibration never touches algorithm code. The
// defaults are calibrated for the Gemini text-embedding-004 score
// distribution; a different embedding provider needs new values.
type Tuning struct {
	// OverFetch is how many candidates the index returns before
	// reranking. Over-fetching gives the reranker room to promote
	// keyword matches that rank low on raw similarity.
	OverFetch int

	// TopK caps the admitted candidate count after reranking.
	TopK int

	// TopicTokenWeight is the score added per question token found in
	// the candidate's topic heading. Topic hits are a strong signal, so
	// they weigh five times a body hit.
	TopicTokenWeight float64

	// TextTokenWeight is the score added per question token found in
	// the candidate's body text.
	TextTokenWeight float64

	// DefaultBoost is the bonus applied by a boost rule that does not
	// set its own. Large enough to lift a mid-similarity exact match
	// above generic neighbours.
	DefaultBoost float64

	// BoostedMargin is how far FinalScore must exceed VectorScore for a
	// candidate to count as boosted in the dominance filter.
	BoostedMargin float64

	// StrongScore is the final score above which the top candidate
	// dominates the result set.
	StrongScore float64

	// NearTieEpsilon admits a non-boosted candidate whose score is
	// within this distance of a dominant best. Compared directly
	// against float scores, so it is configuration, not an exact
	// equality test.
	NearTieEpsilon float64

	// WeakMargin is the admission window below the best score when no
	// candidate dominates.
	WeakMargin float64

	// GateMaxDistance is the absolute cutoff on raw vector distance
	// (1 - similarity). Evaluated before boosts so a lexical boost can
	// never mask a genuinely irrelevant match.
	GateMaxDistance float64

	// GreetingMaxLen is the rune-count ceiling for the greeting
	// short-circuit. Real questions about the constitution are longer.
	GreetingMaxLen int

	// BackendTimeout bounds a single generation attempt.
	BackendTimeout time.Duration

	// RateLimitBackoff is the fixed wait after a 429 before moving to
	// the next backend in the chain.
	RateLimitBackoff time.Duration
}

// DefaultTuning returns the production thresholds.
func DefaultTuning() Tuning {
	return Tuning{
		OverFetch:        20,
		TopK:             5,
		TopicTokenWeight: 0.05,
		TextTokenWeight:  0.01,
		DefaultBoost:     0.3,
		BoostedMargin:    0.1,
		StrongScore:      0.85,
		NearTieEpsilon:   0.01,
		WeakMargin:       0.15,
		GateMaxDistance:  0.6,
		GreetingMaxLen:   30,
		BackendTimeout:   30 * time.Second,
		RateLimitBackoff: 2 * time.Second,
	}
}
