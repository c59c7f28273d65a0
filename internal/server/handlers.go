package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/claude/planfit/internal/normalize"
	"github.com/claude/planfit/internal/schedule"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeRawRecord reads one untyped backend record from the request body.
func decodeRawRecord(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return nil, false
	}
	return raw, true
}

// referenceDate reads the optional ?date=YYYY-MM-DD parameter, defaulting to
// the current day.
func referenceDate(r *http.Request) (time.Time, error) {
	if s := r.URL.Query().Get("date"); s != "" {
		return time.Parse("2006-01-02", s)
	}
	return time.Now(), nil
}

func (s *Server) handleNormalizeMovement(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeRawRecord(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, normalize.Movement(raw))
}

func (s *Server) handleNormalizeSession(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeRawRecord(w, r)
	if !ok {
		return
	}
	session := normalize.Session(raw)
	if session == nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "record has no session identifier"})
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleNormalizePlan(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeRawRecord(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, normalize.Plan(raw))
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := s.db.ListPlans(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.db.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if plan == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleResolveToday(w http.ResponseWriter, r *http.Request) {
	plan, err := s.db.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if plan == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}

	ref, err := referenceDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	lookup := s.db.SessionLookup(r.Context(), func(err error) {
		s.log.Warn("session lookup failed", "plan", plan.ID, "error", err)
	})
	item := schedule.ResolveToday(*plan, ref, lookup)

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handlePlanProgress(w http.ResponseWriter, r *http.Request) {
	plan, err := s.db.GetPlan(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if plan == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}

	ref, err := referenceDate(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	// progress is null for weekly templates — that is the API contract,
	// not an error.
	writeJSON(w, http.StatusOK, map[string]any{
		"planId":   plan.ID,
		"progress": schedule.Progress(*plan, ref),
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.db.ListSessions(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.db.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if session == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, session)
}
