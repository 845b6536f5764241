package demos

import (
	"strings"
	"testing"
	"time"
)

var t0 = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// Mint

func TestMintSequence(t *testing.T) {
	m := NewMintState()
	if m.Step != MintInitial {
		t.Fatalf("initial step = %q", m.Step)
	}

	if err := m.Start(t0, "ape.png", "Ape", "A rare ape"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if m.Step != MintUploading {
		t.Errorf("step after start = %q", m.Step)
	}
	if m.TxHash == "" {
		t.Error("tx hash not generated")
	}

	m.Advance(t0.Add(2 * time.Second))
	if m.Step != MintMinting {
		t.Errorf("step at 2s = %q", m.Step)
	}

	m.Advance(t0.Add(5 * time.Second))
	if m.Step != MintSuccess {
		t.Errorf("step at 5s = %q", m.Step)
	}

	// Terminal step is stable.
	m.Advance(t0.Add(time.Hour))
	if m.Step != MintSuccess {
		t.Errorf("terminal step moved to %q", m.Step)
	}
}

func TestMintStartValidation(t *testing.T) {
	m := NewMintState()
	if err := m.Start(t0, "", "Ape", "desc"); err != ErrMintMissingFields {
		t.Errorf("expected ErrMintMissingFields, got %v", err)
	}

	if err := m.Start(t0, "ape.png", "Ape", "desc"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := m.Start(t0, "other.png", "Other", "desc"); err != ErrMintInProgress {
		t.Errorf("expected ErrMintInProgress, got %v", err)
	}

	// Starting again from the terminal step asks for a reset instead of
	// claiming a mint is still running.
	m.Advance(t0.Add(time.Minute))
	if m.Step != MintSuccess {
		t.Fatalf("step = %q", m.Step)
	}
	if err := m.Start(t0, "other.png", "Other", "desc"); err != ErrMintFinished {
		t.Errorf("expected ErrMintFinished, got %v", err)
	}
	m.Reset()
	if err := m.Start(t0, "other.png", "Other", "desc"); err != nil {
		t.Errorf("Start after reset failed: %v", err)
	}
}

func TestMintReset(t *testing.T) {
	m := NewMintState()
	if err := m.Start(t0, "ape.png", "Ape", "desc"); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	m.Advance(t0.Add(10 * time.Second))

	m.Reset()
	if m.Step != MintInitial {
		t.Errorf("step after reset = %q", m.Step)
	}
	if m.TxHash != "" || m.Title != "" || m.ImageName != "" {
		t.Error("reset did not discard fields")
	}
}

func TestRandomTxHashFormat(t *testing.T) {
	h := RandomTxHash()
	if !strings.HasPrefix(h, "0x") {
		t.Errorf("hash %q missing 0x prefix", h)
	}
	if len(h) != 66 {
		t.Errorf("hash length = %d, want 66", len(h))
	}
	for _, c := range h[2:] {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("hash %q contains non-hex rune %q", h, c)
			break
		}
	}
}

// Voting

func TestVoteSeededProposals(t *testing.T) {
	v := NewVoteState()
	if len(v.Proposals) != 2 {
		t.Fatalf("expected 2 proposals, got %d", len(v.Proposals))
	}
	if v.Proposals[0].VotesFor != 125000 || v.Proposals[0].VotesAgainst != 15000 {
		t.Errorf("proposal 1 tallies = %d/%d", v.Proposals[0].VotesFor, v.Proposals[0].VotesAgainst)
	}
}

func TestVoteCastIsFinal(t *testing.T) {
	v := NewVoteState()

	if err := v.Cast(1, VoteFor); err != nil {
		t.Fatalf("Cast failed: %v", err)
	}
	if v.Proposals[0].VotesFor != 125000+UserVotingPower {
		t.Errorf("for tally = %d", v.Proposals[0].VotesFor)
	}

	if err := v.Cast(1, VoteAgainst); err != ErrAlreadyVoted {
		t.Errorf("expected ErrAlreadyVoted, got %v", err)
	}
	if v.Proposals[0].VotesAgainst != 15000 {
		t.Errorf("rejected cast changed the tally: %d", v.Proposals[0].VotesAgainst)
	}

	// An independent proposal is still votable.
	if err := v.Cast(2, VoteAgainst); err != nil {
		t.Fatalf("Cast on proposal 2 failed: %v", err)
	}
	if v.Proposals[1].VotesAgainst != 95000+UserVotingPower {
		t.Errorf("proposal 2 against tally = %d", v.Proposals[1].VotesAgainst)
	}
}

func TestVoteCastValidation(t *testing.T) {
	v := NewVoteState()
	if err := v.Cast(1, "abstain"); err != ErrInvalidChoice {
		t.Errorf("expected ErrInvalidChoice, got %v", err)
	}
	if err := v.Cast(99, VoteFor); err != ErrProposalNotFound {
		t.Errorf("expected ErrProposalNotFound, got %v", err)
	}
}

func TestVotePercentages(t *testing.T) {
	p := Proposal{VotesFor: 75, VotesAgainst: 25}
	if got := p.ForPercent(); got != 75 {
		t.Errorf("ForPercent = %v", got)
	}
	empty := Proposal{}
	if got := empty.ForPercent(); got != 0 {
		t.Errorf("empty ForPercent = %v", got)
	}
}

// Swap

func TestEstimateSwapRounding(t *testing.T) {
	// 1 ETH at 3500 into W3S at 5.25 is 666.666..., rounded to 4 places.
	got, err := EstimateSwap("ETH", "W3S", 1)
	if err != nil {
		t.Fatalf("EstimateSwap failed: %v", err)
	}
	if got != 666.6667 {
		t.Errorf("estimate = %v, want 666.6667", got)
	}

	got, err = EstimateSwap("USDC", "ETH", 3500)
	if err != nil {
		t.Fatalf("EstimateSwap failed: %v", err)
	}
	if got != 1 {
		t.Errorf("estimate = %v, want 1", got)
	}
}

func TestEstimateSwapValidation(t *testing.T) {
	if _, err := EstimateSwap("DOGE", "ETH", 1); err != ErrUnknownToken {
		t.Errorf("expected ErrUnknownToken, got %v", err)
	}
	if _, err := EstimateSwap("ETH", "USDC", 0); err != ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
	if _, err := EstimateSwap("ETH", "USDC", -5); err != ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestSwapExecuteSequence(t *testing.T) {
	s := NewSwapState()

	if err := s.Execute(t0, "ETH", "ETH", 1); err != ErrSameToken {
		t.Errorf("expected ErrSameToken, got %v", err)
	}

	if err := s.Execute(t0, "ETH", "USDC", 2); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if s.Step != SwapSwapping {
		t.Errorf("step = %q", s.Step)
	}
	if s.ToAmount != 7000 {
		t.Errorf("to amount = %v", s.ToAmount)
	}

	if err := s.Execute(t0, "ETH", "USDC", 1); err != ErrSwapInProgress {
		t.Errorf("expected ErrSwapInProgress, got %v", err)
	}

	s.Advance(t0.Add(time.Second))
	if s.Step != SwapSwapping {
		t.Errorf("step at 1s = %q", s.Step)
	}
	s.Advance(t0.Add(3 * time.Second))
	if s.Step != SwapSuccess {
		t.Errorf("step at 3s = %q", s.Step)
	}

	s.Reset()
	if s.Step != SwapIdle || s.FromToken != "" || s.ToAmount != 0 {
		t.Error("reset did not return to idle")
	}
}

// Certificate

func TestCertificateSequence(t *testing.T) {
	c := NewCertificateState()
	if c.Step != CertLearning {
		t.Fatalf("initial step = %q", c.Step)
	}

	// Claim before completing the course is rejected.
	if err := c.Claim(t0, "Ada"); err != ErrCertNotClaiming {
		t.Errorf("expected ErrCertNotClaiming, got %v", err)
	}

	c.Complete()
	if c.Step != CertClaiming {
		t.Errorf("step after complete = %q", c.Step)
	}

	if err := c.Claim(t0, ""); err != ErrCertNameMissing {
		t.Errorf("expected ErrCertNameMissing, got %v", err)
	}
	if err := c.Claim(t0, "Ada"); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}
	if c.Step != CertMinting || c.Phase != CertPreparing {
		t.Errorf("state after claim = %q/%q", c.Step, c.Phase)
	}
	if c.TxHash == "" {
		t.Error("tx hash not generated")
	}

	c.Advance(t0.Add(2 * time.Second))
	if c.Phase != CertDeploying {
		t.Errorf("phase at 2s = %q", c.Phase)
	}
	c.Advance(t0.Add(4 * time.Second))
	if c.Phase != CertConfirming {
		t.Errorf("phase at 4s = %q", c.Phase)
	}
	c.Advance(t0.Add(6 * time.Second))
	if c.Step != CertSuccess {
		t.Errorf("step at 6s = %q", c.Step)
	}
	if c.Phase != "" {
		t.Errorf("phase not cleared on success: %q", c.Phase)
	}
}
