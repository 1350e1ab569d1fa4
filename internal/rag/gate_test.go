package rag

import (
	"testing"
)

func TestGate_IsGreeting(t *testing.T) {
	g := NewGate(DefaultTuning())

	tests := []struct {
		name     string
		question string
		want     bool
	}{
		{"short greeting", "Merhaba", true},
		{"greeting with punctuation", "Selam!", true},
		{"english greeting", "hello there", true},
		{"multi-word salutation", "iyi günler dilerim", true},
		{"real question", "Cumhurbaşkanının görev süresi kaç yıldır?", false},
		{"long question containing greeting stays a question", "merhaba, anayasanın değiştirilemez maddeleri hangileridir?", false},
		{"empty question", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsGreeting(tt.question); got != tt.want {
				t.Errorf("IsGreeting(%q) = %v, want %v", tt.question, got, tt.want)
			}
		})
	}
}

func TestGate_FilterGreeting(t *testing.T) {
	g := NewGate(DefaultTuning())

	result := g.Filter("Merhaba", []Candidate{
		candidate("a", intPtr(1), "", "X", 0.99),
	})
	if result.Kind != GateGreeting {
		t.Errorf("Filter() kind = %v, want GateGreeting", result.Kind)
	}
	if len(result.Docs) != 0 {
		t.Errorf("Filter() returned %d docs for a greeting, want 0", len(result.Docs))
	}
}

func TestGate_FilterDistanceCutoff(t *testing.T) {
	g := NewGate(DefaultTuning())

	// The second candidate carries a large boost but its raw distance
	// (1 - 0.3 = 0.7) exceeds the cutoff; boosts must not mask it.
	boosted := candidate("boosted", intPtr(3), "", "Y", 0.3)
	boosted.FinalScore = 1.5

	result := g.Filter("anayasanın ilk maddesi nedir", []Candidate{
		candidate("good", intPtr(1), "", "X", 0.5),
		boosted,
	})

	if result.Kind != GateGrounded {
		t.Fatalf("Filter() kind = %v, want GateGrounded", result.Kind)
	}
	if len(result.Docs) != 1 {
		t.Fatalf("Filter() admitted %d docs, want 1", len(result.Docs))
	}
	if result.Docs[0].Madde == nil || *result.Docs[0].Madde != 1 {
		t.Errorf("admitted doc madde = %v, want 1", result.Docs[0].Madde)
	}
	if result.Docs[0].Score != 0.5 {
		t.Errorf("confidence score = %v, want 0.5 (1 - distance)", result.Docs[0].Score)
	}
}

func TestGate_FilterNoEvidence(t *testing.T) {
	g := NewGate(DefaultTuning())

	result := g.Filter("alakasız bir soru", []Candidate{
		candidate("far", intPtr(9), "", "X", 0.1),
	})
	if result.Kind != GateNoEvidence {
		t.Errorf("Filter() kind = %v, want GateNoEvidence", result.Kind)
	}

	result = g.Filter("hiç aday yok", nil)
	if result.Kind != GateNoEvidence {
		t.Errorf("Filter() on empty candidates kind = %v, want GateNoEvidence", result.Kind)
	}
}
