package demos

import "errors"

// UserVotingPower is the fixed simulated voting power added to the
// chosen tally on every cast.
const UserVotingPower = 5000

// VoteChoice is the direction of a cast vote.
type VoteChoice string

const (
	VoteFor     VoteChoice = "for"
	VoteAgainst VoteChoice = "against"
)

var (
	ErrProposalNotFound = errors.New("proposal not found")
	ErrAlreadyVoted     = errors.New("already voted on this proposal")
	ErrInvalidChoice    = errors.New("vote choice must be \"for\" or \"against\"")
)

// Proposal is one governance proposal with independent tallies.
// Percentages are derived, never stored.
type Proposal struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Proposer     string `json:"proposer"`
	VotesFor     int64  `json:"votes_for"`
	VotesAgainst int64  `json:"votes_against"`
}

// ForPercent returns the for-share of the total tally, in percent.
func (p *Proposal) ForPercent() float64 {
	total := p.VotesFor + p.VotesAgainst
	if total == 0 {
		return 0
	}
	return float64(p.VotesFor) / float64(total) * 100
}

// AgainstPercent returns the against-share of the total tally, in percent.
func (p *Proposal) AgainstPercent() float64 {
	total := p.VotesFor + p.VotesAgainst
	if total == 0 {
		return 0
	}
	return float64(p.VotesAgainst) / float64(total) * 100
}

// VoteState is the simulated DAO-voting walkthrough. A single vote per
// proposal per session is enforced; a cast vote is final.
type VoteState struct {
	Proposals []Proposal `json:"proposals"`
	VotedOn   []int      `json:"voted_on,omitempty"`
}

// NewVoteState seeds the walkthrough with the fixed proposal list.
func NewVoteState() *VoteState {
	return &VoteState{
		Proposals: []Proposal{
			{
				ID:           1,
				Title:        "Q4 Budget Allocation for Protocol Grants",
				Description:  "Allocate 50,000 protocol tokens from the treasury to fund community grants for developers building on the ecosystem.",
				Proposer:     "0x1234...abcd",
				VotesFor:     125000,
				VotesAgainst: 15000,
			},
			{
				ID:           2,
				Title:        "Integrate New Cross-Chain Bridge",
				Description:  "Integrate the \"HyperLane\" bridge to enable asset transfers between the native chain and Polygon, increasing liquidity and user access.",
				Proposer:     "0x5678...efgh",
				VotesFor:     80000,
				VotesAgainst: 95000,
			},
		},
	}
}

// HasVoted reports whether this session already voted on the proposal.
func (v *VoteState) HasVoted(proposalID int) bool {
	for _, id := range v.VotedOn {
		if id == proposalID {
			return true
		}
	}
	return false
}

// Cast records a final vote, adding the fixed voting power to the chosen
// tally. A second cast on the same proposal is rejected and leaves the
// tallies unchanged.
func (v *VoteState) Cast(proposalID int, choice VoteChoice) error {
	if choice != VoteFor && choice != VoteAgainst {
		return ErrInvalidChoice
	}
	if v.HasVoted(proposalID) {
		return ErrAlreadyVoted
	}
	for i := range v.Proposals {
		if v.Proposals[i].ID != proposalID {
			continue
		}
		if choice == VoteFor {
			v.Proposals[i].VotesFor += UserVotingPower
		} else {
			v.Proposals[i].VotesAgainst += UserVotingPower
		}
		v.VotedOn = append(v.VotedOn, proposalID)
		return nil
	}
	return ErrProposalNotFound
}
