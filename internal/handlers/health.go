package handlers

import (
	"net/http"
)

// HealthHandler reports service liveness.
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse represents the HTTP response for /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r.Context(), HealthResponse{Status: "ok"})
}
