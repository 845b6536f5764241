package demos

import (
	"errors"
	"time"
)

// MintStep is the linear minting sequence state.
type MintStep string

const (
	MintInitial   MintStep = "initial"
	MintUploading MintStep = "uploading"
	MintMinting   MintStep = "minting"
	MintSuccess   MintStep = "success"
)

// Phase durations for the simulated mint sequence.
const (
	mintUploadDuration = 1500 * time.Millisecond
	mintMintDuration   = 3 * time.Second
)

var (
	ErrMintInProgress    = errors.New("mint already in progress")
	ErrMintFinished      = errors.New("mint already completed, reset to start another")
	ErrMintMissingFields = errors.New("image, title and description are required")
)

// MintState is the simulated NFT-minting walkthrough. The sequence is
// advanced purely by elapsed wall-clock time so the state survives
// serialization into a session store. Exactly one step is active at a
// time.
type MintState struct {
	Step        MintStep  `json:"step"`
	ImageName   string    `json:"image_name,omitempty"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	TxHash      string    `json:"tx_hash,omitempty"`
	StartedAt   time.Time `json:"started_at,omitempty"`
}

// NewMintState returns the demo at its initial step.
func NewMintState() *MintState {
	return &MintState{Step: MintInitial}
}

// Start begins the upload→mint→success sequence. The fabricated
// transaction hash is generated on entry into the timed phase.
func (m *MintState) Start(now time.Time, imageName, title, description string) error {
	if m.Step == MintSuccess {
		return ErrMintFinished
	}
	if m.Step != MintInitial {
		return ErrMintInProgress
	}
	if imageName == "" || title == "" || description == "" {
		return ErrMintMissingFields
	}
	m.ImageName = imageName
	m.Title = title
	m.Description = description
	m.TxHash = RandomTxHash()
	m.StartedAt = now
	m.Step = MintUploading
	return nil
}

// Advance derives the current step from elapsed time. It is safe to call
// at any step; terminal and initial steps are unaffected.
func (m *MintState) Advance(now time.Time) {
	if m.Step == MintInitial || m.Step == MintSuccess {
		return
	}
	elapsed := now.Sub(m.StartedAt)
	switch {
	case elapsed >= mintUploadDuration+mintMintDuration:
		m.Step = MintSuccess
	case elapsed >= mintUploadDuration:
		m.Step = MintMinting
	default:
		m.Step = MintUploading
	}
}

// Reset returns to the initial step and discards all fields.
func (m *MintState) Reset() {
	*m = MintState{Step: MintInitial}
}
