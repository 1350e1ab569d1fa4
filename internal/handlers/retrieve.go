package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/contextutil"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/rag"
)

// RetrieveHandler exposes retrieval without generation, so callers can
// show sources before (or without) waiting on a generation backend.
type RetrieveHandler struct {
	engine rag.Engine
}

// NewRetrieveHandler creates a new RetrieveHandler.
func NewRetrieveHandler(engine rag.Engine) *RetrieveHandler {
	return &RetrieveHandler{engine: engine}
}

// RetrieveRequest represents the HTTP request payload for /api/retrieve.
type RetrieveRequest struct {
	Question string `json:"question"`
}

// RetrieveResponse represents the HTTP response payload for /api/retrieve.
type RetrieveResponse struct {
	ContextDocs []rag.ContextDoc `json:"context_docs"`
	Message     string           `json:"message,omitempty"`
}

func (h *RetrieveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req RetrieveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	result := h.engine.Retrieve(ctx, req.Question)

	docs := result.Docs
	if docs == nil {
		docs = []rag.ContextDoc{}
	}
	writeJSON(w, ctx, RetrieveResponse{
		ContextDocs: docs,
		Message:     result.Message,
	})
}
