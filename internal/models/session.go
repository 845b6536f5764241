package models

import (
	"time"

	"github.com/web3hub/hub-engine/internal/demos"
)

// Session is the per-visitor state record: exactly one active view,
// view-scoped course selections, the session-scoped unlock flag, the chat
// transcript and the demo walkthrough states. The whole record is
// JSON-serializable so session stores can round-trip it.
type Session struct {
	ID               string                  `json:"id"`
	View             View                    `json:"view"`
	SelectedCourseID string                  `json:"selected_course_id,omitempty"`
	ActiveCourseID   string                  `json:"active_course_id,omitempty"`
	Unlocked         bool                    `json:"unlocked"`
	Chat             []ChatMessage           `json:"chat,omitempty"`
	ChatBusy         bool                    `json:"chat_busy,omitempty"`
	Mint             *demos.MintState        `json:"mint,omitempty"`
	Votes            *demos.VoteState        `json:"votes,omitempty"`
	Swap             *demos.SwapState        `json:"swap,omitempty"`
	Certificate      *demos.CertificateState `json:"certificate,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	LastSeenAt       time.Time               `json:"last_seen_at"`
	ExpiresAt        time.Time               `json:"expires_at"`
}

// IsExpired checks whether the session TTL has elapsed.
func (s *Session) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Touch refreshes the sliding expiry window.
func (s *Session) Touch(now time.Time, ttl time.Duration) {
	s.LastSeenAt = now
	s.ExpiresAt = now.Add(ttl)
}

// NavigateRequest asks for a direct transition to a named view.
type NavigateRequest struct {
	View string `json:"view"`
}

// SelectCourseRequest selects a course and enters courseDetail.
type SelectCourseRequest struct {
	CourseID string `json:"course_id"`
}

// EnrollResponse reports the outcome of an enroll action. For free
// courses the view changes; for paid courses the view is unchanged and
// PurchaseLink carries the external checkout URL.
type EnrollResponse struct {
	View         View   `json:"view"`
	PurchaseLink string `json:"purchase_link,omitempty"`
}

// ChatRequest carries one outbound user message.
type ChatRequest struct {
	Message string `json:"message"`
}

// CastVoteRequest casts a final vote on one proposal.
type CastVoteRequest struct {
	ProposalID int    `json:"proposal_id"`
	Choice     string `json:"choice"`
}

// StartMintRequest begins the simulated mint sequence.
type StartMintRequest struct {
	ImageName   string `json:"image_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SwapRequest quotes or executes a simulated token swap.
type SwapRequest struct {
	FromToken  string  `json:"from_token"`
	ToToken    string  `json:"to_token"`
	FromAmount float64 `json:"from_amount"`
}

// ClaimCertificateRequest claims the completion certificate by name.
type ClaimCertificateRequest struct {
	Name string `json:"name"`
}
