package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/planfit/internal/storage"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Normalization endpoints (API key required) — accept a raw backend
	// record and return the typed entity.
	s.router.Route("/api/v1/normalize", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/movement", s.handleNormalizeMovement)
		r.Post("/session", s.handleNormalizeSession)
		r.Post("/plan", s.handleNormalizePlan)
	})

	// Read API over the synced store (no auth — tsnet handles access)
	s.router.Get("/api/v1/plans", s.handleListPlans)
	s.router.Get("/api/v1/plans/{id}", s.handleGetPlan)
	s.router.Get("/api/v1/plans/{id}/today", s.handleResolveToday)
	s.router.Get("/api/v1/plans/{id}/progress", s.handlePlanProgress)
	s.router.Get("/api/v1/sessions", s.handleListSessions)
	s.router.Get("/api/v1/sessions/{id}", s.handleGetSession)
}
