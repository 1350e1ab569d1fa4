package rag

import (
	"sort"
	"strings"
)

// Reranker recomputes candidate relevance by blending raw vector
// similarity with lexical overlap and the hand-authored boost-rule
// table, then applies a strict dominance filter so a single strong,
// keyword-matched hit is not diluted by marginally-similar articles.
type Reranker struct {
	tuning Tuning
	rules  []BoostRule
}

// NewReranker creates a reranker with the given thresholds and rules.
func NewReranker(tuning Tuning, rules []BoostRule) *Reranker {
	return &Reranker{tuning: tuning, rules: rules}
}

// Rerank scores, sorts, and filters candidates, returning at most k.
// A k of zero falls back to the tuned TopK. FinalScore never drops
// below VectorScore: every signal is additive.
func (r *Reranker) Rerank(question string, candidates []Candidate, k int) []Candidate {
	if len(candidates) == 0 {
		return nil
	}
	if k <= 0 {
		k = r.tuning.TopK
	}

	questionLower := strings.ToLower(question)
	tokens := tokenizeQuestion(questionLower)

	scored := make([]Candidate, len(candidates))
	for i, cand := range candidates {
		cand.FinalScore = cand.VectorScore +
			r.topicOverlap(tokens, cand) +
			r.textOverlap(tokens, cand) +
			r.domainBoost(questionLower, cand)
		scored[i] = cand
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].FinalScore > scored[j].FinalScore
	})

	admitted := r.dominanceFilter(scored)
	if len(admitted) > k {
		admitted = admitted[:k]
	}
	return admitted
}

// tokenizeQuestion splits an already lower-cased question into a
// deduplicated set of whitespace-delimited tokens.
func tokenizeQuestion(questionLower string) []string {
	fields := strings.Fields(questionLower)
	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

func (r *Reranker) topicOverlap(tokens []string, cand Candidate) float64 {
	konu := strings.ToLower(cand.Article.Metadata.Konu)
	if konu == "" {
		return 0
	}
	var matches int
	for _, token := range tokens {
		if strings.Contains(konu, token) {
			matches++
		}
	}
	return float64(matches) * r.tuning.TopicTokenWeight
}

func (r *Reranker) textOverlap(tokens []string, cand Candidate) float64 {
	text := strings.ToLower(cand.Article.Text)
	if text == "" {
		return 0
	}
	var matches int
	for _, token := range tokens {
		if strings.Contains(text, token) {
			matches++
		}
	}
	return float64(matches) * r.tuning.TextTokenWeight
}

func (r *Reranker) domainBoost(questionLower string, cand Candidate) float64 {
	madde := cand.Article.Metadata.Madde
	if madde == nil {
		return 0
	}
	var boost float64
	for _, rule := range r.rules {
		if rule.Madde != *madde || !rule.Matches(questionLower) {
			continue
		}
		bonus := rule.Bonus
		if bonus == 0 {
			bonus = r.tuning.DefaultBoost
		}
		boost += bonus
	}
	return boost
}

// dominanceFilter decides which candidates survive alongside the best.
// Strong regime (best above StrongScore or itself boosted): only other
// boosted candidates or near-identical scores survive. Weak regime:
// everything within WeakMargin of the best survives.
func (r *Reranker) dominanceFilter(sorted []Candidate) []Candidate {
	best := sorted[0]
	strong := best.FinalScore > r.tuning.StrongScore || r.isBoosted(best)

	admitted := []Candidate{best}
	for _, cand := range sorted[1:] {
		if strong {
			if r.isBoosted(cand) || cand.FinalScore > best.FinalScore-r.tuning.NearTieEpsilon {
				admitted = append(admitted, cand)
			}
			continue
		}
		if cand.FinalScore >= best.FinalScore-r.tuning.WeakMargin {
			admitted = append(admitted, cand)
		}
	}
	return admitted
}

func (r *Reranker) isBoosted(cand Candidate) bool {
	return cand.FinalScore > cand.VectorScore+r.tuning.BoostedMargin
}
