package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/contextutil"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/rag"
)

// AnswerHandler generates an answer from a caller-supplied context set,
// decoupling retrieval latency from generation latency at the transport
// boundary.
type AnswerHandler struct {
	engine rag.Engine
}

// NewAnswerHandler creates a new AnswerHandler.
func NewAnswerHandler(engine rag.Engine) *AnswerHandler {
	return &AnswerHandler{engine: engine}
}

// AnswerRequest represents the HTTP request payload for /api/answer.
type AnswerRequest struct {
	Question    string           `json:"question"`
	ContextDocs []rag.ContextDoc `json:"context_docs"`
}

// AnswerResponse represents the HTTP response payload for /api/answer.
type AnswerResponse struct {
	Answer string `json:"answer"`
	Prompt string `json:"prompt"`
}

func (h *AnswerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	result := h.engine.Answer(ctx, req.Question, req.ContextDocs)

	writeJSON(w, ctx, AnswerResponse{
		Answer: result.Answer,
		Prompt: result.Prompt,
	})
}
