package session

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/web3hub/hub-engine/internal/chatbot"
	"github.com/web3hub/hub-engine/internal/content"
	"github.com/web3hub/hub-engine/internal/demos"
	"github.com/web3hub/hub-engine/internal/models"
)

// fakeRepo is an in-memory lead repository.
type fakeRepo struct {
	leads      []*models.Lead
	overrides  []models.Resource
	failCreate bool
}

func (f *fakeRepo) CreateLead(_ context.Context, lead *models.Lead) error {
	if f.failCreate {
		return errors.New("database down")
	}
	cp := *lead
	f.leads = append(f.leads, &cp)
	return nil
}

func (f *fakeRepo) ListLeads(_ context.Context) ([]*models.Lead, error) {
	out := make([]*models.Lead, len(f.leads))
	copy(out, f.leads)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CapturedAt.After(out[j].CapturedAt)
	})
	return out, nil
}

func (f *fakeRepo) CountLeads(_ context.Context) (int, error) {
	return len(f.leads), nil
}

func (f *fakeRepo) GetResourceOverrides(_ context.Context) ([]models.Resource, error) {
	return f.overrides, nil
}

func (f *fakeRepo) SaveResourceOverrides(_ context.Context, resources []models.Resource) error {
	f.overrides = resources
	return nil
}

func (f *fakeRepo) Ping(_ context.Context) error { return nil }
func (f *fakeRepo) Close() error                 { return nil }

// echoCompleter answers every prompt with a fixed directive response.
type echoCompleter struct{}

func (echoCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return "Get the playbook. [ACTION: Download|hub]", nil
}

func newTestManager(t *testing.T, repo *fakeRepo) *Manager {
	t.Helper()
	catalog := content.NewCatalog()
	if err := catalog.Load(context.Background(), content.NewStaticProvider("")); err != nil {
		t.Fatalf("catalog load failed: %v", err)
	}
	bot := chatbot.NewBot(echoCompleter{})
	return NewManager(NewMemoryStore(), repo, catalog, bot, time.Hour)
}

func TestCreateSessionStartsAtHome(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})

	s, err := m.Create(context.Background())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.View != models.ViewHome {
		t.Errorf("view = %q", s.View)
	}
	if s.Unlocked {
		t.Error("new session must start locked")
	}
	if len(s.Chat) != 1 || s.Chat[0].Sender != models.SenderAI {
		t.Fatalf("greeting missing: %+v", s.Chat)
	}
	if s.Chat[0].Text != chatbot.GreetingText {
		t.Errorf("greeting text = %q", s.Chat[0].Text)
	}
}

func TestGetUnknownSession(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	if _, err := m.Get(context.Background(), "nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	ctx := context.Background()

	s, err := m.Create(ctx)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := m.Get(ctx, s.ID); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestDeleteExpiredSweeps(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	ctx := context.Background()

	if _, err := m.Create(ctx); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	live, err := m.Create(ctx)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Keep one session alive past the sweep moment.
	m.now = func() time.Time { return time.Now().Add(50 * time.Minute) }
	if _, err := m.Get(ctx, live.ID); err != nil {
		t.Fatalf("touch failed: %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(90 * time.Minute) }
	deleted, err := m.DeleteExpired(ctx)
	if err != nil {
		t.Fatalf("DeleteExpired failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("swept %d sessions, want 1", deleted)
	}
	if _, err := m.Get(ctx, live.ID); err != nil {
		t.Errorf("live session swept: %v", err)
	}
}

func TestUnlockCapturesLead(t *testing.T) {
	repo := &fakeRepo{}
	m := newTestManager(t, repo)
	ctx := context.Background()

	s, _ := m.Create(ctx)

	s, lead, err := m.Unlock(ctx, s.ID, models.SubmitLeadRequest{
		Name: "Ada Lovelace", Email: "ada@example.com", Phone: "+44 20 0000",
	})
	if err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if !s.Unlocked {
		t.Error("session not unlocked")
	}
	if lead.ID == "" || lead.CapturedAt.IsZero() {
		t.Errorf("lead not fully populated: %+v", lead)
	}
	if len(repo.leads) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(repo.leads))
	}

	// A second submit still captures a lead; unlock stays set.
	s, _, err = m.Unlock(ctx, s.ID, models.SubmitLeadRequest{
		Name: "Ada Again", Email: "ada@example.com", Phone: "+44 20 0000",
	})
	if err != nil {
		t.Fatalf("second Unlock failed: %v", err)
	}
	if !s.Unlocked {
		t.Error("unlock flag lost")
	}
	if len(repo.leads) != 2 {
		t.Errorf("expected 2 stored leads, got %d", len(repo.leads))
	}
}

func TestUnlockValidatesAndFailsClosed(t *testing.T) {
	repo := &fakeRepo{}
	m := newTestManager(t, repo)
	ctx := context.Background()

	s, _ := m.Create(ctx)

	if _, _, err := m.Unlock(ctx, s.ID, models.SubmitLeadRequest{Email: "a@b.c", Phone: "1"}); err == nil {
		t.Error("expected validation error for missing name")
	}

	repo.failCreate = true
	if _, _, err := m.Unlock(ctx, s.ID, models.SubmitLeadRequest{
		Name: "Ada", Email: "ada@example.com", Phone: "1",
	}); err == nil {
		t.Fatal("expected store error")
	}

	// A failed submit leaves the session locked.
	got, err := m.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Unlocked {
		t.Error("session unlocked despite failed lead capture")
	}
	if len(repo.leads) != 0 {
		t.Errorf("partial lead stored: %d", len(repo.leads))
	}
}

func TestGatedResources(t *testing.T) {
	repo := &fakeRepo{}
	m := newTestManager(t, repo)
	ctx := context.Background()

	s, _ := m.Create(ctx)

	if _, err := m.GatedResources(ctx, s.ID); !errors.Is(err, ErrLocked) {
		t.Errorf("expected ErrLocked, got %v", err)
	}

	if _, _, err := m.Unlock(ctx, s.ID, models.SubmitLeadRequest{
		Name: "Ada", Email: "ada@example.com", Phone: "1",
	}); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}

	resources, err := m.GatedResources(ctx, s.ID)
	if err != nil {
		t.Fatalf("GatedResources failed: %v", err)
	}
	if len(resources) == 0 {
		t.Fatal("no resources returned")
	}

	// Admin overrides replace the catalog collection.
	repo.overrides = []models.Resource{{ID: "ov-1", Title: "Override"}}
	resources, err = m.GatedResources(ctx, s.ID)
	if err != nil {
		t.Fatalf("GatedResources failed: %v", err)
	}
	if len(resources) != 1 || resources[0].ID != "ov-1" {
		t.Errorf("overrides not applied: %+v", resources)
	}
}

func TestEnrollPaidCourseLeavesViewUnchanged(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	ctx := context.Background()

	s, _ := m.Create(ctx)
	if _, err := m.Navigate(ctx, s.ID, "courses"); err != nil {
		t.Fatalf("Navigate failed: %v", err)
	}
	if _, err := m.SelectCourse(ctx, s.ID, "course-paid-01"); err != nil {
		t.Fatalf("SelectCourse failed: %v", err)
	}

	got, resp, err := m.Enroll(ctx, s.ID)
	if err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if got.View != models.ViewCourseDetail {
		t.Errorf("paid enroll changed view to %q", got.View)
	}
	if resp.PurchaseLink == "" {
		t.Error("purchase link missing")
	}
	if got.ActiveCourseID != "" {
		t.Error("paid enroll activated the course")
	}
}

func TestFreeCourseLifecycle(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	ctx := context.Background()

	s, _ := m.Create(ctx)
	if _, err := m.SelectCourse(ctx, s.ID, "course-free-01"); err != nil {
		t.Fatalf("SelectCourse failed: %v", err)
	}

	got, resp, err := m.Enroll(ctx, s.ID)
	if err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if resp.View != models.ViewTakingCourse || got.View != models.ViewTakingCourse {
		t.Errorf("enroll view = %q/%q", resp.View, got.View)
	}
	if got.Certificate == nil || got.Certificate.Step != demos.CertLearning {
		t.Fatalf("certificate state = %+v", got.Certificate)
	}

	if got, err = m.CompleteCourse(ctx, s.ID); err != nil {
		t.Fatalf("CompleteCourse failed: %v", err)
	}
	if got.Certificate.Step != demos.CertClaiming {
		t.Errorf("step after complete = %q", got.Certificate.Step)
	}

	if got, err = m.ClaimCertificate(ctx, s.ID, models.ClaimCertificateRequest{Name: "Ada"}); err != nil {
		t.Fatalf("ClaimCertificate failed: %v", err)
	}
	if got.Certificate.Step != demos.CertMinting {
		t.Errorf("step after claim = %q", got.Certificate.Step)
	}

	if got, err = m.ExitCourse(ctx, s.ID); err != nil {
		t.Fatalf("ExitCourse failed: %v", err)
	}
	if got.View != models.ViewCourses || got.ActiveCourseID != "" || got.Certificate != nil {
		t.Errorf("exit left state: view=%q active=%q cert=%v", got.View, got.ActiveCourseID, got.Certificate)
	}
}

func TestCompleteCourseWithoutActiveCourse(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	ctx := context.Background()

	s, _ := m.Create(ctx)
	if _, err := m.CompleteCourse(ctx, s.ID); err == nil {
		t.Error("expected error without active course")
	}
}

func TestChatAppendsBothTurns(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	ctx := context.Background()

	s, _ := m.Create(ctx)

	got, reply, err := m.Chat(ctx, s.ID, "where do I start?")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply.Sender != models.SenderAI {
		t.Errorf("reply sender = %q", reply.Sender)
	}
	if len(reply.Actions) != 1 || reply.Actions[0].View != models.ViewHub {
		t.Errorf("reply actions = %v", reply.Actions)
	}

	// greeting + user turn + reply
	if len(got.Chat) != 3 {
		t.Fatalf("transcript length = %d", len(got.Chat))
	}
	if got.Chat[1].Sender != models.SenderUser || got.Chat[1].Text != "where do I start?" {
		t.Errorf("user turn = %+v", got.Chat[1])
	}
	if got.ChatBusy {
		t.Error("busy flag not cleared")
	}
}

// flakyStore fails the nth Put and delegates everything else.
type flakyStore struct {
	Store
	puts    int
	failPut int
}

func (f *flakyStore) Put(ctx context.Context, s *models.Session, ttl time.Duration) error {
	f.puts++
	if f.puts == f.failPut {
		return errors.New("store write failed")
	}
	return f.Store.Put(ctx, s, ttl)
}

func TestChatBusyClearedWhenReplyWriteFails(t *testing.T) {
	catalog := content.NewCatalog()
	if err := catalog.Load(context.Background(), content.NewStaticProvider("")); err != nil {
		t.Fatalf("catalog load failed: %v", err)
	}
	store := &flakyStore{Store: NewMemoryStore()}
	m := NewManager(store, &fakeRepo{}, catalog, chatbot.NewBot(echoCompleter{}), time.Hour)
	ctx := context.Background()

	s, err := m.Create(ctx)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Create was Put #1; fail the reply write (Put #3, after the user
	// turn in Put #2).
	store.failPut = 3
	if _, _, err := m.Chat(ctx, s.ID, "first"); err == nil {
		t.Fatal("expected error from failed reply write")
	}

	// The busy flag must not stay stuck once the store is healthy again.
	got, err := m.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ChatBusy {
		t.Fatal("busy flag stuck after failed reply write")
	}

	if _, _, err := m.Chat(ctx, s.ID, "second"); err != nil {
		t.Fatalf("chat rejected after recovery: %v", err)
	}
}

func TestDemoOperations(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	ctx := context.Background()

	s, _ := m.Create(ctx)

	got, err := m.StartMint(ctx, s.ID, models.StartMintRequest{
		ImageName: "ape.png", Title: "Ape", Description: "rare",
	})
	if err != nil {
		t.Fatalf("StartMint failed: %v", err)
	}
	if got.Mint.Step != demos.MintUploading {
		t.Errorf("mint step = %q", got.Mint.Step)
	}

	if got, err = m.Votes(ctx, s.ID); err != nil {
		t.Fatalf("Votes failed: %v", err)
	}
	if len(got.Votes.Proposals) != 2 {
		t.Fatalf("proposals = %d", len(got.Votes.Proposals))
	}

	if got, err = m.CastVote(ctx, s.ID, models.CastVoteRequest{ProposalID: 1, Choice: "for"}); err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}
	if _, err = m.CastVote(ctx, s.ID, models.CastVoteRequest{ProposalID: 1, Choice: "against"}); !errors.Is(err, demos.ErrAlreadyVoted) {
		t.Errorf("expected ErrAlreadyVoted, got %v", err)
	}

	if got, err = m.ExecuteSwap(ctx, s.ID, models.SwapRequest{FromToken: "ETH", ToToken: "W3S", FromAmount: 1}); err != nil {
		t.Fatalf("ExecuteSwap failed: %v", err)
	}
	if got.Swap.ToAmount != 666.6667 {
		t.Errorf("swap estimate = %v", got.Swap.ToAmount)
	}

	if got, err = m.ResetSwap(ctx, s.ID); err != nil {
		t.Fatalf("ResetSwap failed: %v", err)
	}
	if got.Swap.Step != demos.SwapIdle {
		t.Errorf("swap step after reset = %q", got.Swap.Step)
	}

	if got, err = m.ResetMint(ctx, s.ID); err != nil {
		t.Fatalf("ResetMint failed: %v", err)
	}
	if got.Mint.Step != demos.MintInitial {
		t.Errorf("mint step after reset = %q", got.Mint.Step)
	}
}

func TestDemoStatesSurviveStoreRoundTrip(t *testing.T) {
	m := newTestManager(t, &fakeRepo{})
	ctx := context.Background()

	s, _ := m.Create(ctx)
	start := time.Now()
	m.now = func() time.Time { return start }

	if _, err := m.StartMint(ctx, s.ID, models.StartMintRequest{
		ImageName: "ape.png", Title: "Ape", Description: "rare",
	}); err != nil {
		t.Fatalf("StartMint failed: %v", err)
	}

	// A later read derives the advanced step from elapsed time alone.
	m.now = func() time.Time { return start.Add(10 * time.Second) }
	got, err := m.Get(ctx, s.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Mint.Step != demos.MintSuccess {
		t.Errorf("mint step after 10s = %q", got.Mint.Step)
	}
}
