package domain

import (
	"time"

	"github.com/google/uuid"
)

// BatchStatus is the auction round lifecycle state.
type BatchStatus string

const (
	BatchStatusOpen      BatchStatus = "OPEN"
	BatchStatusSolving   BatchStatus = "SOLVING"
	BatchStatusExecuting BatchStatus = "EXECUTING"
	BatchStatusSettled   BatchStatus = "SETTLED"
	BatchStatusCancelled BatchStatus = "CANCELLED"
)

// Batch is one auction round. Exactly one batch is current at any time;
// settled and cancelled batches are archived by ID.
type Batch struct {
	ID                  uint64      `json:"id"`
	OpenTime            time.Time   `json:"open_time"`
	CloseTime           time.Time   `json:"close_time"`
	SolveDeadline       time.Time   `json:"solve_deadline"`
	Status              BatchStatus `json:"status"`
	IntentIDs           []uuid.UUID `json:"intent_ids"`
	WinningSolutionHash Hash        `json:"winning_solution_hash,omitempty"`
	WinningSolver       Address     `json:"winning_solver,omitempty"`
}

// IsTerminal returns true once the batch can never change again.
func (b *Batch) IsTerminal() bool {
	return b.Status == BatchStatusSettled || b.Status == BatchStatusCancelled
}

// CanTransition reports whether the status machine permits moving from the
// batch's current status to next. The only legal paths are
// OPEN→SOLVING, SOLVING→EXECUTING, EXECUTING→SETTLED, and
// OPEN/SOLVING→CANCELLED.
func (b *Batch) CanTransition(next BatchStatus) bool {
	switch b.Status {
	case BatchStatusOpen:
		return next == BatchStatusSolving || next == BatchStatusCancelled
	case BatchStatusSolving:
		return next == BatchStatusExecuting || next == BatchStatusCancelled
	case BatchStatusExecuting:
		return next == BatchStatusSettled
	default:
		return false
	}
}

// SolverSolution is a solver's proposed execution plan for one batch.
// Immutable once submitted; the hash binds every field plus the solver
// address, so a solution cannot be tampered with or replayed across batches.
type SolverSolution struct {
	SolutionHash     Hash      `json:"solution_hash"`
	Solver           Address   `json:"solver"`
	BatchID          uint64    `json:"batch_id"`
	TotalUserSurplus int64     `json:"total_user_surplus"`
	SolverBid        int64     `json:"solver_bid"`
	ExecutionData    []byte    `json:"execution_data"`
	SubmittedAt      time.Time `json:"submitted_at"`
}
