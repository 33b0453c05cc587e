package ports

import (
	"context"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
)

// TokenTransfer is the external fungible-asset layer. The core requires only
// exact-amount, atomic, all-or-nothing transfer semantics from it.
type TokenTransfer interface {
	BalanceOf(ctx context.Context, token, owner domain.Address) (int64, error)
	Allowance(ctx context.Context, token, owner, spender domain.Address) (int64, error)
	// Transfer moves amount from the owner's balance to `to`.
	Transfer(ctx context.Context, token, owner, to domain.Address, amount int64) error
	// TransferFrom moves amount from owner to `to`, drawing down the
	// allowance owner granted to spender. Fails atomically if the balance or
	// allowance is insufficient.
	TransferFrom(ctx context.Context, token, spender, owner, to domain.Address, amount int64) error
}

// StrategySwapRequest is the instruction a settlement executor hands to a
// strategy contract for one intent.
type StrategySwapRequest struct {
	StrategyHash domain.Hash
	TokenIn      domain.Address
	TokenOut     domain.Address
	AmountIn     int64
	MinAmountOut int64
	// Trader pays TokenIn and receives TokenOut.
	Trader domain.Address
}

// StrategyContract computes swap quotes from ledger balances and realizes
// trades by calling back into the ledger's Pull/Push. One interface, many
// implementations; pricing math is the contract's own business.
type StrategyContract interface {
	Address() domain.Address
	Quote(ctx context.Context, strategyHash domain.Hash, tokenIn, tokenOut domain.Address, amountIn int64) (int64, error)
	ExecuteSwap(ctx context.Context, req StrategySwapRequest) (int64, error)
	// RevertSwap undoes a completed ExecuteSwap when a later fill in the same
	// settlement chain fails. amountOut is the value ExecuteSwap returned.
	RevertSwap(ctx context.Context, req StrategySwapRequest, amountOut int64) error
}

// SolutionExecutor is the winning solver's execution entry point. The auction
// engine invokes it with the stored execution data and trusts it to drive
// strategy contracts honoring the underlying intents' constraints.
type SolutionExecutor interface {
	Execute(ctx context.Context, solver domain.Address, batch *domain.Batch, executionData []byte) error
}

// FundsProvider is the hook invoked by PushWithCallback before transfers are
// attempted, letting the payer source tokens just in time. The ledger never
// trusts it beyond "did it fail": the subsequent transfer is the check.
type FundsProvider interface {
	ProvideFunds(ctx context.Context, token domain.Address, amount int64) error
}

// EventSink receives structured protocol events. Delivery is best-effort;
// a sink error never fails the operation that emitted the event.
type EventSink interface {
	Emit(ctx context.Context, event domain.Event) error
}

// CommitGuard enforces protocol-wide single use of intent commitment hashes.
type CommitGuard interface {
	// CheckAndSet atomically records the commit hash if unseen.
	// Returns true if the hash is new, false if already used.
	CheckAndSet(ctx context.Context, commitHash domain.Hash, ttl time.Duration) (bool, error)
}

// Clock supplies the current time. Time-based transitions are evaluated
// lazily against it; tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// DigestService computes the protocol's deterministic identifiers.
type DigestService interface {
	StrategyHash(lp, strategyContract domain.Address, strategyData []byte) domain.Hash
	CommitHash(params domain.IntentParams) domain.Hash
	SolutionHash(solver domain.Address, batchID uint64, executionData []byte, totalUserSurplus, solverBid int64) domain.Hash
}
