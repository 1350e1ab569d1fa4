package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Fatih-Yumusak/anayasa-asistani/internal/handlers"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/rag"
	"github.com/Fatih-Yumusak/anayasa-asistani/internal/storage"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Engine    rag.Engine
	Articles  handlers.ArticleLister
	QueryLog  storage.QueryStore
	StaticDir string // Optional directory of source PDFs served at /static
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.Engine, deps.QueryLog)
	retrieveHandler := handlers.NewRetrieveHandler(deps.Engine)
	answerHandler := handlers.NewAnswerHandler(deps.Engine)
	legislationHandler := handlers.NewLegislationHandler(deps.Articles)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodPost, "/retrieve", retrieveHandler)
		r.Method(http.MethodPost, "/answer", answerHandler)
		r.Method(http.MethodGet, "/legislation", legislationHandler)
		if deps.QueryLog != nil {
			r.Method(http.MethodGet, "/history", handlers.NewHistoryHandler(deps.QueryLog))
		}
	})

	r.Method(http.MethodGet, "/health", handlers.NewHealthHandler())

	if deps.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(deps.StaticDir)))
		r.Handle("/static/*", fs)
	}

	return r
}
