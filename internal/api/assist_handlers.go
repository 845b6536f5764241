package api

import (
	"errors"
	"net/http"

	"github.com/web3hub/hub-engine/internal/chatbot"
)

// Assistant widget handlers. Apart from the strategy brief, every widget
// degrades to a fixed fallback text instead of failing, so these always
// answer 200 once the input validates.

type briefRequest struct {
	Input string `json:"input"`
}

type questionRequest struct {
	Question string `json:"question"`
}

type goalRequest struct {
	Goal string `json:"goal"`
}

type membershipRequest struct {
	Goals []string `json:"goals"`
}

func (s *Server) handleStrategyBrief(w http.ResponseWriter, r *http.Request) {
	var req briefRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Input == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "input is required")
		return
	}

	brief, err := s.bot.StrategyBrief(r.Context(), req.Input)
	if err != nil {
		if errors.Is(err, chatbot.ErrUnavailable) {
			respondError(w, http.StatusServiceUnavailable, "ai_unavailable", "AI service is not available")
			return
		}
		respondError(w, http.StatusBadGateway, "generation_failed", "Could not generate a strategic brief.")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"brief": brief})
}

func (s *Server) handleHubAnswer(w http.ResponseWriter, r *http.Request) {
	var req questionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "question is required")
		return
	}

	answer := s.bot.HubAnswer(r.Context(), req.Question, s.catalog.LearnContent())
	respondJSON(w, http.StatusOK, map[string]string{"answer": answer})
}

func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Goal == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "goal is required")
		return
	}

	path := s.bot.LearningPath(r.Context(), req.Goal, s.catalog.LearnContent())
	respondJSON(w, http.StatusOK, map[string]string{"path": path})
}

func (s *Server) handleMembership(w http.ResponseWriter, r *http.Request) {
	var req membershipRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Goals) == 0 {
		respondError(w, http.StatusBadRequest, "validation_error", "at least one goal is required")
		return
	}

	recommendation := s.bot.MembershipRecommendation(r.Context(), req.Goals)
	respondJSON(w, http.StatusOK, map[string]string{"recommendation": recommendation})
}

func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Goal == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "goal is required")
		return
	}

	step := s.bot.Roadmap(r.Context(), req.Goal)
	respondJSON(w, http.StatusOK, map[string]string{"next_step": step})
}
