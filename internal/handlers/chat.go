package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/contextutil"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/rag"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/storage"
)

// ChatHandler handles the combined retrieval + generation endpoint.
type ChatHandler struct {
	engine   rag.Engine
	queryLog storage.QueryStore
}

// NewChatHandler creates a new ChatHandler. queryLog may be nil to
// disable history logging.
func NewChatHandler(engine rag.Engine, queryLog storage.QueryStore) *ChatHandler {
	return &ChatHandler{engine: engine, queryLog: queryLog}
}

// ChatRequest represents the HTTP request payload for /api/chat.
type ChatRequest struct {
	Question string `json:"question"`
	// Format selects the answer rendering: "" (markdown as produced) or
	// "html" to additionally return the answer rendered to HTML.
	Format string `json:"format,omitempty"`
}

// SourceResponse is one cited article in the chat response.
type SourceResponse struct {
	Madde    *int    `json:"madde"`
	Text     string  `json:"text"`
	Metadata any     `json:"metadata"`
	Score    float64 `json:"score"`
}

// ChatResponse represents the HTTP response payload for /api/chat.
type ChatResponse struct {
	Answer     string           `json:"answer"`
	AnswerHTML string           `json:"answer_html,omitempty"`
	Sources    []SourceResponse `json:"sources"`
	Prompt     string           `json:"prompt"`
}

// ServeHTTP answers a question end to end and logs it to the history.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		logger.WarnContext(ctx, "empty question in request")
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	result := h.engine.AnswerQuestion(ctx, req.Question)

	resp := ChatResponse{
		Answer:  result.Answer,
		Sources: toSources(result.Docs),
		Prompt:  result.Prompt,
	}

	if strings.EqualFold(req.Format, "html") {
		html, err := renderMarkdown(result.Answer)
		if err != nil {
			logger.WarnContext(ctx, "failed to render answer as html", "error", err)
		} else {
			resp.AnswerHTML = html
		}
	}

	h.logQuery(r, req.Question, result)

	writeJSON(w, ctx, resp)
}

// logQuery records the answered question best-effort; a storage failure
// never affects the response.
func (h *ChatHandler) logQuery(r *http.Request, question string, result rag.AnswerResult) {
	if h.queryLog == nil {
		return
	}
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	record := &storage.QueryRecord{
		Question: question,
		Answer:   result.Answer,
		Backend:  result.Backend,
	}
	if len(result.Docs) > 0 {
		record.Confidence = result.Docs[0].Score
	}
	if err := h.queryLog.Insert(ctx, record); err != nil {
		logger.WarnContext(ctx, "failed to log query", "error", err)
	}
}

func toSources(docs []rag.ContextDoc) []SourceResponse {
	sources := make([]SourceResponse, len(docs))
	for i, doc := range docs {
		sources[i] = SourceResponse{
			Madde:    doc.Madde,
			Text:     doc.Text,
			Metadata: doc.Metadata,
			Score:    doc.Score,
		}
	}
	return sources
}
