package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/web3hub/hub-engine/internal/demos"
	"github.com/web3hub/hub-engine/internal/models"
	"github.com/web3hub/hub-engine/internal/router"
	"github.com/web3hub/hub-engine/internal/session"
)

// respondSessionError maps session and demo errors onto envelope codes.
func respondSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound),
		errors.Is(err, session.ErrSessionExpired):
		respondError(w, http.StatusNotFound, "not_found", "session not found")
	case errors.Is(err, session.ErrCourseNotFound),
		errors.Is(err, router.ErrCourseNotFound),
		errors.Is(err, demos.ErrProposalNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, session.ErrLocked):
		respondError(w, http.StatusForbidden, "locked", "resources are locked until the gate is unlocked")
	case errors.Is(err, session.ErrChatBusy),
		errors.Is(err, demos.ErrMintInProgress),
		errors.Is(err, demos.ErrMintFinished),
		errors.Is(err, demos.ErrSwapInProgress),
		errors.Is(err, demos.ErrAlreadyVoted),
		errors.Is(err, demos.ErrCertNotClaiming),
		errors.Is(err, router.ErrNoCourseActive):
		respondError(w, http.StatusConflict, "conflict", err.Error())
	case errors.Is(err, demos.ErrMintMissingFields),
		errors.Is(err, demos.ErrInvalidChoice),
		errors.Is(err, demos.ErrUnknownToken),
		errors.Is(err, demos.ErrSameToken),
		errors.Is(err, demos.ErrInvalidAmount),
		errors.Is(err, demos.ErrCertNameMissing),
		errors.Is(err, models.ErrUnknownView):
		respondError(w, http.StatusBadRequest, "validation_error", err.Error())
	default:
		slog.Error("session operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "operation failed")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}
	return true
}

// Session lifecycle

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Create(r.Context())
	if err != nil {
		slog.Error("failed to create session", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "failed to create session")
		return
	}
	respondJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "session deleted",
	})
}

// Navigation

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req models.NavigateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := s.sessions.Navigate(r.Context(), chi.URLParam(r, "id"), req.View)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSelectCourse(w http.ResponseWriter, r *http.Request) {
	var req models.SelectCourseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.CourseID == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "course_id is required")
		return
	}

	sess, err := s.sessions.SelectCourse(r.Context(), chi.URLParam(r, "id"), req.CourseID)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

func (s *Server) handleEnroll(w http.ResponseWriter, r *http.Request) {
	sess, resp, err := s.sessions.Enroll(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"session": sess,
		"enroll":  resp,
	})
}

func (s *Server) handleExitCourse(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.ExitCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

func (s *Server) handleCompleteCourse(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.CompleteCourse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

// Unlock gate

func (s *Server) handleUnlock(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitLeadRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	sess, _, err := s.sessions.Unlock(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess)
}

func (s *Server) handleGatedResources(w http.ResponseWriter, r *http.Request) {
	resources, err := s.sessions.GatedResources(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"resources": resources,
		"total":     len(resources),
	})
}

// Chat

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Message == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "message is required")
		return
	}

	sess, reply, err := s.sessions.Chat(r.Context(), chi.URLParam(r, "id"), req.Message)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reply": reply,
		"chat":  sess.Chat,
	})
}

func (s *Server) handleChatTranscript(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"chat":  sess.Chat,
		"busy":  sess.ChatBusy,
		"total": len(sess.Chat),
	})
}

// Demo walkthroughs

func (s *Server) handleStartMint(w http.ResponseWriter, r *http.Request) {
	var req models.StartMintRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := s.sessions.StartMint(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.Mint)
}

func (s *Server) handleResetMint(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.ResetMint(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.Mint)
}

func (s *Server) handleVotes(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Votes(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.Votes)
}

func (s *Server) handleCastVote(w http.ResponseWriter, r *http.Request) {
	var req models.CastVoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := s.sessions.CastVote(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.Votes)
}

func (s *Server) handleSwapQuote(w http.ResponseWriter, r *http.Request) {
	var req models.SwapRequest
	if !decodeBody(w, r, &req) {
		return
	}

	estimate, err := demos.EstimateSwap(req.FromToken, req.ToToken, req.FromAmount)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"from_token":  req.FromToken,
		"to_token":    req.ToToken,
		"from_amount": req.FromAmount,
		"to_amount":   estimate,
		"tokens":      demos.Tokens(),
	})
}

func (s *Server) handleExecuteSwap(w http.ResponseWriter, r *http.Request) {
	var req models.SwapRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := s.sessions.ExecuteSwap(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.Swap)
}

func (s *Server) handleResetSwap(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.ResetSwap(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.Swap)
}

func (s *Server) handleClaimCertificate(w http.ResponseWriter, r *http.Request) {
	var req models.ClaimCertificateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	sess, err := s.sessions.ClaimCertificate(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sess.Certificate)
}
