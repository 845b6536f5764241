package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/web3hub/hub-engine/internal/chatbot"
	"github.com/web3hub/hub-engine/internal/content"
	"github.com/web3hub/hub-engine/internal/demos"
	"github.com/web3hub/hub-engine/internal/models"
	"github.com/web3hub/hub-engine/internal/router"
	"github.com/web3hub/hub-engine/internal/storage"
)

// Manager orchestrates the session lifecycle and every session-scoped
// operation: navigation, the unlock gate, chat and the demo walkthroughs.
// Read-modify-write cycles are serialized per session.
type Manager struct {
	store   Store
	repo    storage.Repository
	catalog *content.Catalog
	bot     *chatbot.Bot
	ttl     time.Duration
	now     func() time.Time

	locks sync.Map // session id -> *sync.Mutex
}

// NewManager creates a session manager.
func NewManager(store Store, repo storage.Repository, catalog *content.Catalog, bot *chatbot.Bot, ttl time.Duration) *Manager {
	return &Manager{
		store:   store,
		repo:    repo,
		catalog: catalog,
		bot:     bot,
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Manager) lockFor(id string) *sync.Mutex {
	mu, _ := m.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Create starts a new session on the home view with the fixed chatbot
// greeting already in the transcript.
func (m *Manager) Create(ctx context.Context) (*models.Session, error) {
	now := m.now()
	s := &models.Session{
		ID:   uuid.New().String(),
		View: models.ViewHome,
		Chat: []models.ChatMessage{
			{Sender: models.SenderAI, Text: chatbot.GreetingText, SentAt: now},
		},
		CreatedAt:  now,
		LastSeenAt: now,
		ExpiresAt:  now.Add(m.ttl),
	}

	if err := m.store.Put(ctx, s, m.ttl); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	slog.Info("session created", "id", s.ID, "expires_at", s.ExpiresAt)
	return s, nil
}

// load fetches the session and enforces expiry.
func (m *Manager) load(ctx context.Context, id string) (*models.Session, error) {
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.IsExpired(m.now()) {
		_ = m.store.Delete(ctx, id)
		return nil, ErrSessionExpired
	}
	return s, nil
}

// advanceDemos derives the current timed-demo steps from the clock.
func advanceDemos(s *models.Session, now time.Time) {
	if s.Mint != nil {
		s.Mint.Advance(now)
	}
	if s.Swap != nil {
		s.Swap.Advance(now)
	}
	if s.Certificate != nil {
		s.Certificate.Advance(now)
	}
}

// mutate runs one serialized read-modify-write cycle: load, advance the
// timed demos, apply fn, refresh the sliding expiry and store.
func (m *Manager) mutate(ctx context.Context, id string, fn func(s *models.Session) error) (*models.Session, error) {
	mu := m.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	s, err := m.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := m.now()
	advanceDemos(s, now)

	if err := fn(s); err != nil {
		return nil, err
	}

	s.Touch(now, m.ttl)
	if err := m.store.Put(ctx, s, m.ttl); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return s, nil
}

// Get returns the session with demo steps advanced and the expiry window
// refreshed.
func (m *Manager) Get(ctx context.Context, id string) (*models.Session, error) {
	return m.mutate(ctx, id, func(*models.Session) error { return nil })
}

// Navigate transitions the session to a named view.
func (m *Manager) Navigate(ctx context.Context, id, rawView string) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		_, err := router.Navigate(s, rawView)
		return err
	})
}

// SelectCourse selects a catalog course and enters its detail view.
func (m *Manager) SelectCourse(ctx context.Context, id, courseID string) (*models.Session, error) {
	course, ok := m.catalog.Course(courseID)
	if !ok {
		return nil, ErrCourseNotFound
	}
	return m.mutate(ctx, id, func(s *models.Session) error {
		router.SelectCourse(s, course)
		return nil
	})
}

// Enroll acts on the currently selected course.
func (m *Manager) Enroll(ctx context.Context, id string) (*models.Session, models.EnrollResponse, error) {
	var resp models.EnrollResponse
	s, err := m.mutate(ctx, id, func(s *models.Session) error {
		if s.SelectedCourseID == "" {
			return ErrCourseNotFound
		}
		course, ok := m.catalog.Course(s.SelectedCourseID)
		if !ok {
			return ErrCourseNotFound
		}
		var err error
		resp, err = router.Enroll(s, course)
		return err
	})
	if err != nil {
		return nil, models.EnrollResponse{}, err
	}
	return s, resp, nil
}

// ExitCourse leaves the learning experience.
func (m *Manager) ExitCourse(ctx context.Context, id string) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		router.ExitCourse(s)
		return nil
	})
}

// Unlock captures a lead and opens the gated resources for this session.
// The captured lead is kept even when the session was already unlocked.
func (m *Manager) Unlock(ctx context.Context, id string, req models.SubmitLeadRequest) (*models.Session, *models.Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, nil, err
	}

	lead := &models.Lead{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		CapturedAt: m.now(),
	}

	s, err := m.mutate(ctx, id, func(s *models.Session) error {
		if err := m.repo.CreateLead(ctx, lead); err != nil {
			return fmt.Errorf("failed to capture lead: %w", err)
		}
		s.Unlocked = true
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("lead captured", "session_id", id, "lead_id", lead.ID)
	return s, lead, nil
}

// Chat appends a user message and produces the AI reply. While the reply
// is in flight the transcript is marked busy; a concurrent message is
// rejected rather than interleaved.
func (m *Manager) Chat(ctx context.Context, id, message string) (*models.Session, models.ChatMessage, error) {
	s, err := m.mutate(ctx, id, func(s *models.Session) error {
		if s.ChatBusy {
			return ErrChatBusy
		}
		s.Chat = append(s.Chat, models.ChatMessage{
			Sender: models.SenderUser,
			Text:   message,
			SentAt: m.now(),
		})
		s.ChatBusy = true
		return nil
	})
	if err != nil {
		return nil, models.ChatMessage{}, err
	}

	reply := m.bot.Reply(ctx, message, m.catalog.LearnContent())
	reply.SentAt = m.now()

	// The reply write must survive the client disconnecting mid-call,
	// and a failed write must not leave the busy flag set.
	storeCtx := context.WithoutCancel(ctx)
	s, err = m.mutate(storeCtx, id, func(s *models.Session) error {
		s.Chat = append(s.Chat, reply)
		s.ChatBusy = false
		return nil
	})
	if err != nil {
		m.clearChatBusy(id)
		return nil, models.ChatMessage{}, err
	}
	return s, reply, nil
}

// clearChatBusy recovers the transcript after a failed reply write.
// Without it the session would reject every later message until expiry.
func (m *Manager) clearChatBusy(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := m.mutate(ctx, id, func(s *models.Session) error {
		s.ChatBusy = false
		return nil
	}); err != nil {
		slog.Warn("failed to clear chat busy flag", "error", err, "id", id)
	}
}

// StartMint begins the simulated NFT mint.
func (m *Manager) StartMint(ctx context.Context, id string, req models.StartMintRequest) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		if s.Mint == nil {
			s.Mint = demos.NewMintState()
		}
		return s.Mint.Start(m.now(), req.ImageName, req.Title, req.Description)
	})
}

// ResetMint returns the mint walkthrough to its initial step.
func (m *Manager) ResetMint(ctx context.Context, id string) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		if s.Mint != nil {
			s.Mint.Reset()
		}
		return nil
	})
}

// Votes returns the session's voting walkthrough, seeding it on first
// access.
func (m *Manager) Votes(ctx context.Context, id string) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		if s.Votes == nil {
			s.Votes = demos.NewVoteState()
		}
		return nil
	})
}

// CastVote records a final vote on one proposal.
func (m *Manager) CastVote(ctx context.Context, id string, req models.CastVoteRequest) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		if s.Votes == nil {
			s.Votes = demos.NewVoteState()
		}
		return s.Votes.Cast(req.ProposalID, demos.VoteChoice(req.Choice))
	})
}

// ExecuteSwap starts the timed swap sequence.
func (m *Manager) ExecuteSwap(ctx context.Context, id string, req models.SwapRequest) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		if s.Swap == nil {
			s.Swap = demos.NewSwapState()
		}
		return s.Swap.Execute(m.now(), req.FromToken, req.ToToken, req.FromAmount)
	})
}

// ResetSwap returns the swap walkthrough to its idle step.
func (m *Manager) ResetSwap(ctx context.Context, id string) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		if s.Swap != nil {
			s.Swap.Reset()
		}
		return nil
	})
}

// CompleteCourse finishes the learning step of the active free course and
// opens the certificate claim form.
func (m *Manager) CompleteCourse(ctx context.Context, id string) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		if s.ActiveCourseID == "" || s.Certificate == nil {
			return router.ErrNoCourseActive
		}
		s.Certificate.Complete()
		return nil
	})
}

// ClaimCertificate starts the timed certificate issuance for the named
// recipient.
func (m *Manager) ClaimCertificate(ctx context.Context, id string, req models.ClaimCertificateRequest) (*models.Session, error) {
	return m.mutate(ctx, id, func(s *models.Session) error {
		if s.ActiveCourseID == "" || s.Certificate == nil {
			return router.ErrNoCourseActive
		}
		return s.Certificate.Claim(m.now(), req.Name)
	})
}

// GatedResources returns the downloadable resources for an unlocked
// session. Admin overrides replace the catalog collection when present.
func (m *Manager) GatedResources(ctx context.Context, id string) ([]models.Resource, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.Unlocked {
		return nil, ErrLocked
	}

	overrides, err := m.repo.GetResourceOverrides(ctx)
	if err != nil {
		slog.Warn("failed to load resource overrides", "error", err)
	}
	if len(overrides) > 0 {
		return overrides, nil
	}
	return m.catalog.ResourcesContent(), nil
}

// Delete removes a session.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return err
	}
	m.locks.Delete(id)
	return nil
}

// DeleteExpired removes every expired session and returns how many were
// swept.
func (m *Manager) DeleteExpired(ctx context.Context) (int, error) {
	ids, err := m.store.Expired(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("failed to list expired sessions: %w", err)
	}

	var deleted int
	for _, id := range ids {
		if err := m.Delete(ctx, id); err != nil {
			slog.Warn("failed to delete expired session", "error", err, "id", id)
			continue
		}
		deleted++
	}
	return deleted, nil
}

// Ping checks session store and database connectivity.
func (m *Manager) Ping(ctx context.Context) error {
	if err := m.store.Ping(ctx); err != nil {
		return fmt.Errorf("session store ping failed: %w", err)
	}
	if err := m.repo.Ping(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the session store.
func (m *Manager) Close() error {
	return m.store.Close()
}
