package strategy

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Fill is one element of a solution's execution data: a single intent routed
// through a single strategy. The solver supplies the full terms so settlement
// needs no callback into the auction while the batch is executing.
type Fill struct {
	IntentID     uuid.UUID      `json:"intent_id"`
	StrategyHash domain.Hash    `json:"strategy_hash"`
	Trader       domain.Address `json:"trader"`
	TokenIn      domain.Address `json:"token_in"`
	TokenOut     domain.Address `json:"token_out"`
	AmountIn     int64          `json:"amount_in"`
	MinAmountOut int64          `json:"min_amount_out"`
}

// SettlementExecutor drives strategy contracts from a winning solution's
// execution data. Contracts register by address; fills resolve their contract
// through the ledger's strategy record.
type SettlementExecutor struct {
	mu        sync.RWMutex
	ledger    ports.LedgerService
	contracts map[domain.Address]ports.StrategyContract
	log       zerolog.Logger
}

// NewSettlementExecutor creates an executor with no registered contracts.
func NewSettlementExecutor(ledger ports.LedgerService, log zerolog.Logger) *SettlementExecutor {
	return &SettlementExecutor{
		ledger:    ledger,
		contracts: make(map[domain.Address]ports.StrategyContract),
		log:       log,
	}
}

var _ ports.SolutionExecutor = (*SettlementExecutor)(nil)

// Register makes a strategy contract addressable by fills.
func (e *SettlementExecutor) Register(contract ports.StrategyContract) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.contracts[contract.Address()] = contract
}

// Execute settles every fill in the execution data. A fill must reference an
// intent that belongs to the batch, and no intent may be filled twice; both
// are validated before anything moves. The first failing fill aborts
// execution and every fill already settled is reverted in reverse order, so
// the chain's effects are all-or-nothing and the auction engine can reopen
// the batch for another solution.
func (e *SettlementExecutor) Execute(ctx context.Context, solver domain.Address, batch *domain.Batch, executionData []byte) error {
	var fills []Fill
	if err := json.Unmarshal(executionData, &fills); err != nil {
		return apperror.Validation("execution data is not a valid fill list")
	}
	if len(fills) == 0 {
		return apperror.Validation("execution data contains no fills")
	}

	inBatch := make(map[uuid.UUID]bool, len(batch.IntentIDs))
	for _, id := range batch.IntentIDs {
		inBatch[id] = true
	}

	filled := make(map[uuid.UUID]bool, len(fills))
	contracts := make([]ports.StrategyContract, len(fills))
	for i, fill := range fills {
		if !inBatch[fill.IntentID] {
			return apperror.Validation("fill references an intent outside the batch")
		}
		if filled[fill.IntentID] {
			return apperror.Validation("intent filled more than once")
		}
		filled[fill.IntentID] = true

		contract, err := e.contractFor(ctx, fill.StrategyHash)
		if err != nil {
			return err
		}
		contracts[i] = contract
	}

	settled := make([]settledFill, 0, len(fills))
	for i, fill := range fills {
		req := ports.StrategySwapRequest{
			StrategyHash: fill.StrategyHash,
			TokenIn:      fill.TokenIn,
			TokenOut:     fill.TokenOut,
			AmountIn:     fill.AmountIn,
			MinAmountOut: fill.MinAmountOut,
			Trader:       fill.Trader,
		}
		out, err := contracts[i].ExecuteSwap(ctx, req)
		if err != nil {
			e.log.Warn().
				Err(err).
				Uint64("batch_id", batch.ID).
				Str("solver", string(solver)).
				Int("fill", i).
				Msg("fill failed, reverting settled fills")
			e.unwind(ctx, batch, settled)
			return err
		}
		settled = append(settled, settledFill{contract: contracts[i], req: req, out: out})

		e.log.Debug().
			Uint64("batch_id", batch.ID).
			Str("intent_id", fill.IntentID.String()).
			Int64("amount_in", fill.AmountIn).
			Int64("amount_out", out).
			Msg("fill settled")
	}
	return nil
}

type settledFill struct {
	contract ports.StrategyContract
	req      ports.StrategySwapRequest
	out      int64
}

// unwind reverts completed fills in reverse order. A revert failure is
// logged and the remaining fills are still attempted.
func (e *SettlementExecutor) unwind(ctx context.Context, batch *domain.Batch, settled []settledFill) {
	for i := len(settled) - 1; i >= 0; i-- {
		f := settled[i]
		if err := f.contract.RevertSwap(ctx, f.req, f.out); err != nil {
			e.log.Error().
				Err(err).
				Uint64("batch_id", batch.ID).
				Str("strategy_hash", string(f.req.StrategyHash)).
				Msg("failed to revert settled fill")
		}
	}
}

func (e *SettlementExecutor) contractFor(ctx context.Context, strategyHash domain.Hash) (ports.StrategyContract, error) {
	s, err := e.ledger.GetStrategy(ctx, strategyHash)
	if err != nil {
		return nil, err
	}
	e.mu.RLock()
	contract := e.contracts[s.StrategyContract]
	e.mu.RUnlock()
	if contract == nil {
		return nil, apperror.ErrNotFound("strategy contract")
	}
	return contract, nil
}
