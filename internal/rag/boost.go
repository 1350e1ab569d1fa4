package rag

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// BoostRule maps a phrase combination in the question to a target
// article number. When every phrase matches, candidates with that madde
// number receive Bonus (or the tuning default when Bonus is zero).
// Rules are configuration, not logic: they load from a JSON file so the
// table is tunable without a code change.
type BoostRule struct {
	Phrases []string `json:"phrases"`
	Madde   int      `json:"madde"`
	Bonus   float64  `json:"bonus,omitempty"`
}

// Matches reports whether every phrase of the rule occurs in the
// lower-cased question.
func (r BoostRule) Matches(questionLower string) bool {
	if len(r.Phrases) == 0 {
		return false
	}
	for _, phrase := range r.Phrases {
		if !strings.Contains(questionLower, strings.ToLower(phrase)) {
			return false
		}
	}
	return true
}

// DefaultBoostRules returns the built-in rule table for the Turkish
// constitution corpus: recurring question phrasings whose best article
// ranks below generic neighbours on raw similarity.
func DefaultBoostRules() []BoostRule {
	return []BoostRule{
		{Phrases: []string{"yönetim", "şekli"}, Madde: 1},
		{Phrases: []string{"devletin", "şekli"}, Madde: 1},
		{Phrases: []string{"cumhuriyet", "nitelik"}, Madde: 2},
		{Phrases: []string{"başkent"}, Madde: 3},
		{Phrases: []string{"resmi", "dil"}, Madde: 3},
		{Phrases: []string{"bayrak"}, Madde: 3},
		{Phrases: []string{"milli", "marş"}, Madde: 3},
		{Phrases: []string{"değiştirilemez", "madde"}, Madde: 4},
	}
}

// LoadBoostRules reads a rule table from a JSON file. An empty path
// returns the built-in defaults.
func LoadBoostRules(path string) ([]BoostRule, error) {
	if path == "" {
		return DefaultBoostRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boost rules: %w", err)
	}

	var rules []BoostRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse boost rules: %w", err)
	}
	return rules, nil
}
