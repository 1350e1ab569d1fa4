package rag

import (
	"strings"
	"testing"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/vectorstore"
)

func TestBuildPrompt(t *testing.T) {
	docs := []ContextDoc{
		{
			Text:     "Türkiye Devleti bir Cumhuriyettir.",
			Madde:    intPtr(1),
			Metadata: vectorstore.Metadata{Konu: "Devletin şekli"},
			Score:    0.92,
		},
		{
			Text:     "Türkiye Cumhuriyeti demokratik, laik ve sosyal bir hukuk Devletidir.",
			Madde:    intPtr(2),
			Metadata: vectorstore.Metadata{Konu: "Cumhuriyetin nitelikleri"},
			Score:    0.81,
		},
	}

	prompt := BuildPrompt("Cumhuriyetin nitelikleri nelerdir?", docs)

	for _, want := range []string{
		"Madde 1 (Devletin şekli):\nTürkiye Devleti bir Cumhuriyettir.",
		"Madde 2 (Cumhuriyetin nitelikleri):",
		"Soru: Cumhuriyetin nitelikleri nelerdir?",
		"Bilgi yok",
		"madde numaralarını",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("BuildPrompt() missing %q\nprompt: %s", want, prompt)
		}
	}

	// Context blocks are joined by a blank line.
	if !strings.Contains(prompt, "Cumhuriyettir.\n\nMadde 2") {
		t.Error("BuildPrompt() context blocks not separated by blank line")
	}
}

func TestBuildPrompt_EmptyDocs(t *testing.T) {
	if got := BuildPrompt("soru", nil); got != "" {
		t.Errorf("BuildPrompt() with no docs = %q, want empty string", got)
	}
}

func TestBuildPrompt_NilMadde(t *testing.T) {
	docs := []ContextDoc{
		{Text: "Başlangıç metni.", Madde: nil, Metadata: vectorstore.Metadata{Konu: "Başlangıç"}},
	}
	prompt := BuildPrompt("soru", docs)
	if !strings.Contains(prompt, "Madde ? (Başlangıç):") {
		t.Errorf("BuildPrompt() should render ? for missing madde\nprompt: %s", prompt)
	}
}
