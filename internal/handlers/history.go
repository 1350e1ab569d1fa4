package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/contextutil"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/storage"
)

// HistoryHandler serves the recent query-history log.
type HistoryHandler struct {
	queryLog storage.QueryStore
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(queryLog storage.QueryStore) *HistoryHandler {
	return &HistoryHandler{queryLog: queryLog}
}

// HistoryEntry is one answered question in the history response.
type HistoryEntry struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Backend    string    `json:"backend,omitempty"`
	Confidence float64   `json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryResponse represents the HTTP response for /api/history.
type HistoryResponse struct {
	Queries []HistoryEntry `json:"queries"`
}

func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 100 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	records, err := h.queryLog.ListRecent(ctx, limit)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list query history", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load history")
		return
	}

	entries := make([]HistoryEntry, len(records))
	for i, rec := range records {
		entries[i] = HistoryEntry{
			ID:         rec.ID,
			Question:   rec.Question,
			Answer:     rec.Answer,
			Backend:    rec.Backend,
			Confidence: rec.Confidence,
			CreatedAt:  rec.CreatedAt,
		}
	}

	writeJSON(w, ctx, HistoryResponse{Queries: entries})
}
