package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Response helpers

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: status >= 200 && status < 300,
		Data:    data,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	resp := apiResponse{
		Success: false,
		Error: &apiError{
			Code:    code,
			Message: message,
		},
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode error response", "error", err)
	}
}

// requireContent rejects requests while the catalog has not reached the
// ready state. The error state is sticky, so a failed load answers 503
// until the process is restarted.
func (s *Server) requireContent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.catalog.Ready() {
			respondError(w, http.StatusServiceUnavailable, "content_unavailable", "content catalog is not available")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handlers

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.catalog.Ready() {
		msg := "content catalog is " + string(s.catalog.State())
		if err := s.catalog.Err(); err != nil {
			slog.Warn("readiness check failed", "state", s.catalog.State(), "error", err)
		}
		respondError(w, http.StatusServiceUnavailable, "not_ready", msg)
		return
	}

	if err := s.sessions.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "not_ready", "service not ready")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// Content handlers

func (s *Server) handleLearnContent(w http.ResponseWriter, r *http.Request) {
	items := s.catalog.LearnContent()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"content": items,
		"total":   len(items),
	})
}

func (s *Server) handleResourcesContent(w http.ResponseWriter, r *http.Request) {
	items := s.catalog.ResourcesContent()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"resources": items,
		"total":     len(items),
	})
}

func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses := s.catalog.Courses()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"courses": courses,
		"total":   len(courses),
	})
}

func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	course, ok := s.catalog.Course(id)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "course not found")
		return
	}
	respondJSON(w, http.StatusOK, course)
}

func (s *Server) handleServiceTiers(w http.ResponseWriter, r *http.Request) {
	tiers := s.catalog.ServiceTiers()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"tiers": tiers,
		"total": len(tiers),
	})
}

func (s *Server) handleLinkedInPosts(w http.ResponseWriter, r *http.Request) {
	posts := s.catalog.LinkedInPosts()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"total": len(posts),
	})
}

func (s *Server) handleHomepage(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.HomepageData())
}

func (s *Server) handleTerms(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.catalog.TermsOfService())
}
