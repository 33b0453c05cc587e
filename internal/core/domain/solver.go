package domain

import "time"

// Solver is one staked, reputation-tracked operator competing to solve
// batches. Created on registration, deleted on voluntary unregistration.
type Solver struct {
	Operator           Address   `json:"operator"`
	StakedAmount       int64     `json:"staked_amount"`
	ReputationScore    int64     `json:"reputation_score"`
	TotalBatchesSolved int64     `json:"total_batches_solved"`
	TotalUserSurplus   int64     `json:"total_user_surplus"`
	TotalSlashed       int64     `json:"total_slashed"`
	RegisteredAt       time.Time `json:"registered_at"`
	LastActiveAt       time.Time `json:"last_active_at"`
	IsActive           bool      `json:"is_active"`
	DeactivationReason string    `json:"deactivation_reason,omitempty"`
}

// EffectiveReputation projects the stored score through linear idle decay
// without mutating it. decayPerDay is points lost per full idle day.
func (s *Solver) EffectiveReputation(now time.Time, decayPerDay int64) int64 {
	if decayPerDay <= 0 {
		return s.ReputationScore
	}
	idleDays := int64(now.Sub(s.LastActiveAt).Hours() / 24)
	if idleDays <= 0 {
		return s.ReputationScore
	}
	decayed := s.ReputationScore - idleDays*decayPerDay
	if decayed < 0 {
		return 0
	}
	return decayed
}

// SlashEvent records one punitive stake reduction.
type SlashEvent struct {
	Solver      Address   `json:"solver"`
	Amount      int64     `json:"amount"`
	Reason      string    `json:"reason"`
	OccurredAt  time.Time `json:"occurred_at"`
	StakeBefore int64     `json:"stake_before"`
	StakeAfter  int64     `json:"stake_after"`
}
