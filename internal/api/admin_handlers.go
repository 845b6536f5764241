package api

import (
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/web3hub/hub-engine/internal/models"
	"github.com/web3hub/hub-engine/internal/storage"
)

// adminAuth verifies the static admin bearer token. An empty configured
// token disables the whole admin surface.
func (s *Server) adminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.adminToken == "" {
			respondError(w, http.StatusServiceUnavailable, "admin_disabled", "admin API is not configured")
			return
		}

		token := extractBearerToken(r)
		if token == "" {
			respondError(w, http.StatusUnauthorized, "unauthorized", "provide Authorization header with Bearer token")
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(s.adminToken)) != 1 {
			slog.Warn("invalid admin token attempt", "remote_addr", r.RemoteAddr)
			respondError(w, http.StatusUnauthorized, "unauthorized", "invalid admin token")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return auth
}

// Lead viewer

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.repo.ListLeads(r.Context())
	if err != nil {
		slog.Error("failed to list leads", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to list leads")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"leads": leads,
		"total": len(leads),
	})
}

func (s *Server) handleExportLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.repo.ListLeads(r.Context())
	if err != nil {
		slog.Error("failed to export leads", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to export leads")
		return
	}

	data, err := storage.LeadsToCSV(leads)
	if err != nil {
		slog.Error("failed to encode leads csv", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to export leads")
		return
	}

	filename := fmt.Sprintf("leads-%s.csv", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(data)); err != nil {
		slog.Error("failed to write csv response", "error", err)
	}
}

// Resource overrides

func (s *Server) handleGetResourceOverrides(w http.ResponseWriter, r *http.Request) {
	resources, err := s.repo.GetResourceOverrides(r.Context())
	if err != nil {
		slog.Error("failed to load resource overrides", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to load resource overrides")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"resources": resources,
		"total":     len(resources),
	})
}

func (s *Server) handleSaveResourceOverrides(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Resources []models.Resource `json:"resources"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.repo.SaveResourceOverrides(r.Context(), req.Resources); err != nil {
		slog.Error("failed to save resource overrides", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to save resource overrides")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"resources": req.Resources,
		"total":     len(req.Resources),
	})
}
