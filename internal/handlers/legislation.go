package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/vectorstore"
)

// ArticleLister is the corpus view needed by the reader endpoint.
type ArticleLister interface {
	Articles() []vectorstore.Article
}

// LegislationHandler serves the full legislation text for the reader
// view, from the same loaded corpus the vector index searches.
type LegislationHandler struct {
	store ArticleLister
}

// NewLegislationHandler creates a new LegislationHandler.
func NewLegislationHandler(store ArticleLister) *LegislationHandler {
	return &LegislationHandler{store: store}
}

// LegislationResponse represents the HTTP response for /api/legislation.
type LegislationResponse struct {
	Articles []vectorstore.Article `json:"articles"`
}

// ServeHTTP lists the numbered articles of one source document, sorted
// by madde. Records without an article number (preamble, headings) are
// omitted: the reader renders numbered articles only.
func (h *LegislationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")

	articles := make([]vectorstore.Article, 0)
	for _, article := range h.store.Articles() {
		if article.Metadata.Madde == nil {
			continue
		}
		docSource := article.Metadata.Source
		if docSource == "" {
			docSource = "Anayasa"
		}
		if source != "" && !strings.EqualFold(docSource, source) {
			continue
		}
		articles = append(articles, article)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return *articles[i].Metadata.Madde < *articles[j].Metadata.Madde
	})

	writeJSON(w, r.Context(), LegislationResponse{Articles: articles})
}
