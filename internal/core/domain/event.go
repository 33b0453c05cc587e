package domain

import "time"

// EventType names one protocol state change.
type EventType string

const (
	EventBatchOpened    EventType = "batch.opened"
	EventBatchClosed    EventType = "batch.closed"
	EventBatchSettled   EventType = "batch.settled"
	EventBatchCancelled EventType = "batch.cancelled"

	EventIntentSubmitted EventType = "intent.submitted"
	EventIntentCommitted EventType = "intent.committed"
	EventIntentRevealed  EventType = "intent.revealed"
	EventIntentCancelled EventType = "intent.cancelled"

	EventSolutionSubmitted EventType = "solution.submitted"
	EventSolutionSelected  EventType = "solution.selected"

	EventStrategyShipped        EventType = "strategy.shipped"
	EventStrategyDockRequested  EventType = "strategy.dock_requested"
	EventStrategyDocked         EventType = "strategy.docked"
	EventStrategyEmergencyDock  EventType = "strategy.emergency_docked"
	EventStrategyApprovalSet    EventType = "strategy.approval_set"

	EventBalancePulled       EventType = "balance.pulled"
	EventBalancePushed       EventType = "balance.pushed"
	EventBalancePullReverted EventType = "balance.pull_reverted"
	EventBalancePushReverted EventType = "balance.push_reverted"

	EventSolverRegistered   EventType = "solver.registered"
	EventSolverUnregistered EventType = "solver.unregistered"
	EventSolverStakeChanged EventType = "solver.stake_changed"
	EventSolverSlashed      EventType = "solver.slashed"
	EventSolverReputation   EventType = "solver.reputation_updated"
	EventSolverDeactivated  EventType = "solver.deactivated"
	EventSolverReactivated  EventType = "solver.reactivated"

	EventFeeUpdated    EventType = "config.fee_updated"
	EventConfigUpdated EventType = "config.updated"
	EventPaused        EventType = "system.paused"
	EventUnpaused      EventType = "system.unpaused"
)

// Event is the structured notification emitted on every state-changing call.
// Fields carry the identifiers and deltas off-chain observers need to
// reconstruct ledger, batch, and solver state without re-reading storage.
type Event struct {
	Type       EventType      `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Fields     map[string]any `json:"fields"`
}

// NewEvent builds an event stamped with now.
func NewEvent(t EventType, now time.Time, fields map[string]any) Event {
	if fields == nil {
		fields = map[string]any{}
	}
	return Event{Type: t, OccurredAt: now, Fields: fields}
}
