package demos

import (
	"errors"
	"time"
)

// CertificateStep is the free-course completion sequence state.
type CertificateStep string

const (
	CertLearning CertificateStep = "learning"
	CertClaiming CertificateStep = "claiming"
	CertMinting  CertificateStep = "minting"
	CertSuccess  CertificateStep = "success"
)

// CertificatePhase is the timed sub-step while minting.
type CertificatePhase string

const (
	CertPreparing  CertificatePhase = "preparing"
	CertDeploying  CertificatePhase = "deploying"
	CertConfirming CertificatePhase = "confirming"
)

// Phase boundaries for the simulated certificate issuance.
const (
	certPrepareDuration = 1500 * time.Millisecond
	certDeployDuration  = 2 * time.Second
	certConfirmDuration = 2 * time.Second
)

var (
	ErrCertNotClaiming = errors.New("certificate is not being claimed")
	ErrCertNameMissing = errors.New("recipient name is required")
)

// CertificateState is the simulated certificate-issuance walkthrough at
// the end of a free course: learning → claiming → minting → success, with
// the minting step advanced through timed sub-phases.
type CertificateState struct {
	Step          CertificateStep  `json:"step"`
	Phase         CertificatePhase `json:"phase,omitempty"`
	RecipientName string           `json:"recipient_name,omitempty"`
	TxHash        string           `json:"tx_hash,omitempty"`
	StartedAt     time.Time        `json:"started_at,omitempty"`
}

// NewCertificateState returns the walkthrough at the learning step.
func NewCertificateState() *CertificateState {
	return &CertificateState{Step: CertLearning}
}

// Complete moves from learning to the claim form.
func (c *CertificateState) Complete() {
	if c.Step == CertLearning {
		c.Step = CertClaiming
	}
}

// Claim starts the timed minting sequence for the named recipient. The
// fabricated transaction hash is generated on entry.
func (c *CertificateState) Claim(now time.Time, name string) error {
	if c.Step != CertClaiming {
		return ErrCertNotClaiming
	}
	if name == "" {
		return ErrCertNameMissing
	}
	c.RecipientName = name
	c.TxHash = RandomTxHash()
	c.StartedAt = now
	c.Step = CertMinting
	c.Phase = CertPreparing
	return nil
}

// Advance derives the minting phase (or success) from elapsed time.
func (c *CertificateState) Advance(now time.Time) {
	if c.Step != CertMinting {
		return
	}
	elapsed := now.Sub(c.StartedAt)
	switch {
	case elapsed >= certPrepareDuration+certDeployDuration+certConfirmDuration:
		c.Step = CertSuccess
		c.Phase = ""
	case elapsed >= certPrepareDuration+certDeployDuration:
		c.Phase = CertConfirming
	case elapsed >= certPrepareDuration:
		c.Phase = CertDeploying
	default:
		c.Phase = CertPreparing
	}
}
