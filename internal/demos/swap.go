package demos

import (
	"errors"
	"math"
	"time"
)

// SwapStep is the linear swap sequence state.
type SwapStep string

const (
	SwapIdle     SwapStep = "idle"
	SwapSwapping SwapStep = "swapping"
	SwapSuccess  SwapStep = "success"
)

const swapDuration = 2 * time.Second

var (
	ErrUnknownToken   = errors.New("unknown token")
	ErrSameToken      = errors.New("from and to tokens must differ")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrSwapInProgress = errors.New("swap already in progress")
)

// mockPrices is the static USD price table used by the simulation.
var mockPrices = map[string]float64{
	"ETH":  3500,
	"W3S":  5.25,
	"USDC": 1,
}

// Tokens returns the symbols available for swapping.
func Tokens() []string {
	return []string{"ETH", "W3S", "USDC"}
}

// EstimateSwap maps (fromToken, toToken, fromAmount) to an estimated
// receive amount at the static mock rates, rounded to 4 decimal places.
func EstimateSwap(fromToken, toToken string, fromAmount float64) (float64, error) {
	fromPrice, ok := mockPrices[fromToken]
	if !ok {
		return 0, ErrUnknownToken
	}
	toPrice, ok := mockPrices[toToken]
	if !ok {
		return 0, ErrUnknownToken
	}
	if fromAmount <= 0 {
		return 0, ErrInvalidAmount
	}
	estimate := fromAmount * fromPrice / toPrice
	return math.Round(estimate*10000) / 10000, nil
}

// SwapState is the simulated token-swap walkthrough. Execution is a timed
// swapping→success sequence with no state change beyond the recorded
// amounts.
type SwapState struct {
	Step       SwapStep  `json:"step"`
	FromToken  string    `json:"from_token,omitempty"`
	ToToken    string    `json:"to_token,omitempty"`
	FromAmount float64   `json:"from_amount,omitempty"`
	ToAmount   float64   `json:"to_amount,omitempty"`
	StartedAt  time.Time `json:"started_at,omitempty"`
}

// NewSwapState returns the demo at its idle step.
func NewSwapState() *SwapState {
	return &SwapState{Step: SwapIdle}
}

// Execute starts the timed swap sequence for the given pair and amount.
func (s *SwapState) Execute(now time.Time, fromToken, toToken string, fromAmount float64) error {
	if s.Step == SwapSwapping {
		return ErrSwapInProgress
	}
	if fromToken == toToken {
		return ErrSameToken
	}
	toAmount, err := EstimateSwap(fromToken, toToken, fromAmount)
	if err != nil {
		return err
	}
	s.FromToken = fromToken
	s.ToToken = toToken
	s.FromAmount = fromAmount
	s.ToAmount = toAmount
	s.StartedAt = now
	s.Step = SwapSwapping
	return nil
}

// Advance derives the current step from elapsed time.
func (s *SwapState) Advance(now time.Time) {
	if s.Step != SwapSwapping {
		return
	}
	if now.Sub(s.StartedAt) >= swapDuration {
		s.Step = SwapSuccess
	}
}

// Reset returns to the idle step and discards the recorded amounts.
func (s *SwapState) Reset() {
	*s = SwapState{Step: SwapIdle}
}
