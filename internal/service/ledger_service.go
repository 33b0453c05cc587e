package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"

	"github.com/rs/zerolog"
)

// MaxProtocolFeeBps caps the configurable protocol fee at 20%.
const MaxProtocolFeeBps = 2000

// LedgerConfig holds the ledger's governance addresses and tunables.
type LedgerConfig struct {
	Owner           domain.Address
	Custody         domain.Address // spender of third-party token allowances
	FeeCollector    domain.Address
	BatchProcessor  domain.Address
	ProtocolFeeBps  int64
	WithdrawalDelay time.Duration
}

// LedgerServiceImpl implements ports.LedgerService. All state lives in
// memory behind one mutex; every mutating operation either completes in full
// or leaves the ledger exactly as it found it.
type LedgerServiceImpl struct {
	mu     sync.Mutex
	cfg    LedgerConfig
	paused bool

	strategies  map[domain.Hash]*domain.Strategy
	balances    map[domain.Hash]map[domain.Address]*domain.VirtualBalance
	tokenOrder  map[domain.Hash][]domain.Address
	withdrawals map[domain.Hash]*domain.WithdrawalRequest
	approved    map[domain.Address]bool

	token  ports.TokenTransfer
	digest ports.DigestService
	clock  ports.Clock
	events ports.EventSink
	log    zerolog.Logger
}

// NewLedgerService creates a LedgerServiceImpl.
func NewLedgerService(
	cfg LedgerConfig,
	token ports.TokenTransfer,
	digest ports.DigestService,
	clock ports.Clock,
	events ports.EventSink,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		cfg:         cfg,
		strategies:  make(map[domain.Hash]*domain.Strategy),
		balances:    make(map[domain.Hash]map[domain.Address]*domain.VirtualBalance),
		tokenOrder:  make(map[domain.Hash][]domain.Address),
		withdrawals: make(map[domain.Hash]*domain.WithdrawalRequest),
		approved:    make(map[domain.Address]bool),
		token:       token,
		digest:      digest,
		clock:       clock,
		events:      events,
		log:         log,
	}
}

// enter performs the shared entry checks for mutating operations: the
// re-entrancy stamp is inspected before the lock is taken so a nested call
// fails instead of deadlocking.
func (s *LedgerServiceImpl) enter(ctx context.Context) error {
	if inCall(ctx, ledgerGuardKey) {
		return apperror.ErrReentrantCall()
	}
	s.mu.Lock()
	return nil
}

func (s *LedgerServiceImpl) emit(ctx context.Context, t domain.EventType, fields map[string]any) {
	ev := domain.NewEvent(t, s.clock.Now(), fields)
	if err := s.events.Emit(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("event", string(t)).Msg("event emission failed")
	}
}

// Ship allocates virtual capital to a strategy. No tokens move: the LP's
// wallet keeps custody, and the ledger records how much of it each strategy
// may trade with. The LP's real balance and allowance are verified to cover
// the committed amounts. Shipping to an existing active hash tops the
// balances up.
func (s *LedgerServiceImpl) Ship(ctx context.Context, lp domain.Address, req ports.ShipRequest) (*domain.Strategy, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if s.paused {
		return nil, apperror.ErrSystemPaused()
	}

	if len(req.Tokens) == 0 || len(req.Tokens) != len(req.Amounts) {
		return nil, apperror.ErrArrayLengthMismatch()
	}
	for _, amount := range req.Amounts {
		if amount <= 0 {
			return nil, apperror.ErrZeroAmount()
		}
	}
	if !s.approved[req.StrategyContract] {
		return nil, apperror.ErrNotApprovedStrategy()
	}

	now := s.clock.Now()
	hash := s.digest.StrategyHash(lp, req.StrategyContract, req.StrategyData)

	strat, exists := s.strategies[hash]
	if exists && !strat.IsActive {
		return nil, apperror.ErrStrategyRetired()
	}

	callCtx := markCall(ctx, ledgerGuardKey)

	// The LP must already hold and have authorized the committed amounts.
	// Checked only; no tokens move until Pull at settlement.
	for i, tok := range req.Tokens {
		held, err := s.token.BalanceOf(callCtx, tok, lp)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("balance query for %s: %w", tok, err))
		}
		authorized, err := s.token.Allowance(callCtx, tok, lp, s.cfg.Custody)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("allowance query for %s: %w", tok, err))
		}
		if held < req.Amounts[i] || authorized < req.Amounts[i] {
			return nil, apperror.ErrInsufficientTokenBalance()
		}
	}

	if !exists {
		strat = &domain.Strategy{
			StrategyContract: req.StrategyContract,
			StrategyHash:     hash,
			LP:               lp,
			IsActive:         true,
			CreatedAt:        now,
		}
		s.strategies[hash] = strat
		s.balances[hash] = make(map[domain.Address]*domain.VirtualBalance)
	}

	for i, tok := range req.Tokens {
		s.credit(hash, lp, tok, req.Amounts[i], now)
	}

	s.log.Info().
		Str("lp", string(lp)).
		Str("strategy_hash", string(hash)).
		Int("tokens", len(req.Tokens)).
		Msg("strategy shipped")
	s.emit(callCtx, domain.EventStrategyShipped, map[string]any{
		"lp":            string(lp),
		"strategy_hash": string(hash),
		"contract":      string(req.StrategyContract),
		"tokens":        addressStrings(req.Tokens),
		"amounts":       req.Amounts,
		"top_up":        exists,
	})
	return strat, nil
}

// RequestDock queues the withdrawal of a strategy's balances. The strategy
// keeps trading through the delay window so an in-flight batch can settle.
func (s *LedgerServiceImpl) RequestDock(ctx context.Context, lp domain.Address, strategyHash domain.Hash, tokens []domain.Address) (*domain.WithdrawalRequest, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if s.paused {
		return nil, apperror.ErrSystemPaused()
	}

	strat, err := s.ownedActiveStrategy(lp, strategyHash)
	if err != nil {
		return nil, err
	}
	if pending := s.withdrawals[strategyHash]; pending != nil && !pending.Executed {
		return nil, apperror.ErrWithdrawalPending()
	}

	// An empty token list docks everything the strategy holds.
	if len(tokens) == 0 {
		tokens = append([]domain.Address(nil), s.tokenOrder[strategyHash]...)
	}

	wr := &domain.WithdrawalRequest{
		LP:           lp,
		StrategyHash: strategyHash,
		Tokens:       tokens,
		RequestedAt:  s.clock.Now(),
	}
	s.withdrawals[strategyHash] = wr

	s.log.Info().
		Str("lp", string(lp)).
		Str("strategy_hash", string(strategyHash)).
		Msg("dock requested")
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventStrategyDockRequested, map[string]any{
		"lp":            string(lp),
		"strategy_hash": string(strat.StrategyHash),
		"tokens":        addressStrings(tokens),
	})
	return wr, nil
}

// ExecuteDock clears the requested balances once the delay has elapsed. The
// request is marked executed before anything else changes, so it can never
// fire twice.
func (s *LedgerServiceImpl) ExecuteDock(ctx context.Context, lp domain.Address, strategyHash domain.Hash) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if s.paused {
		return apperror.ErrSystemPaused()
	}

	strat := s.strategies[strategyHash]
	if strat == nil {
		return apperror.ErrNotFound("strategy")
	}
	if strat.LP != lp {
		return apperror.ErrNotStrategyOwner()
	}
	wr := s.withdrawals[strategyHash]
	if wr == nil {
		return apperror.ErrNotFound("withdrawal request")
	}
	if wr.Executed {
		return apperror.ErrWithdrawalExecuted()
	}
	now := s.clock.Now()
	if now.Before(wr.RequestedAt.Add(s.cfg.WithdrawalDelay)) {
		return apperror.ErrWithdrawalDelayActive()
	}

	wr.Executed = true
	for _, tok := range wr.Tokens {
		if vb := s.balances[strategyHash][tok]; vb != nil {
			vb.Amount = 0
			vb.LastUpdated = now
			vb.IsActive = false
		}
	}
	if s.allBalancesZero(strategyHash) {
		strat.IsActive = false
	}

	s.log.Info().
		Str("lp", string(lp)).
		Str("strategy_hash", string(strategyHash)).
		Bool("retired", !strat.IsActive).
		Msg("dock executed")
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventStrategyDocked, map[string]any{
		"lp":            string(lp),
		"strategy_hash": string(strategyHash),
		"tokens":        addressStrings(wr.Tokens),
		"retired":       !strat.IsActive,
	})
	return nil
}

// EmergencyDock is the LP's escape hatch: it bypasses the delay, zeroes every
// balance, and retires the strategy immediately. Deliberately usable while
// the system is paused.
func (s *LedgerServiceImpl) EmergencyDock(ctx context.Context, caller domain.Address, strategyHash domain.Hash) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	strat := s.strategies[strategyHash]
	if strat == nil {
		return apperror.ErrNotFound("strategy")
	}
	if caller != strat.LP && caller != s.cfg.Owner {
		return apperror.ErrNotStrategyOwner()
	}

	now := s.clock.Now()
	for _, tok := range s.tokenOrder[strategyHash] {
		if vb := s.balances[strategyHash][tok]; vb != nil {
			vb.Amount = 0
			vb.LastUpdated = now
			vb.IsActive = false
		}
	}
	strat.IsActive = false
	if wr := s.withdrawals[strategyHash]; wr != nil {
		wr.Executed = true
	}

	s.log.Warn().
		Str("caller", string(caller)).
		Str("strategy_hash", string(strategyHash)).
		Msg("emergency dock")
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventStrategyEmergencyDock, map[string]any{
		"caller":        string(caller),
		"lp":            string(strat.LP),
		"strategy_hash": string(strategyHash),
	})
	return nil
}

// Pull moves trade input out of a strategy: the virtual balance is debited
// and the backing tokens leave the LP's wallet for the recipient. Only the
// strategy's own contract may call it. The virtual debit is rolled back if
// the real transfer fails.
func (s *LedgerServiceImpl) Pull(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, recipient domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if s.paused {
		return apperror.ErrSystemPaused()
	}
	if amount <= 0 {
		return apperror.ErrZeroAmount()
	}

	strat, vb, err := s.tradableBalance(caller, lp, strategyHash, token)
	if err != nil {
		return err
	}
	if vb == nil || vb.Amount < amount {
		return apperror.ErrInsufficientVirtualBalance()
	}

	now := s.clock.Now()
	vb.Amount -= amount
	vb.LastUpdated = now

	callCtx := markCall(ctx, ledgerGuardKey)
	if err := s.token.Transfer(callCtx, token, lp, recipient, amount); err != nil {
		vb.Amount += amount
		return apperror.ErrTransferFailed(fmt.Errorf("pull %d of %s: %w", amount, token, err))
	}
	strat.TotalVolume += amount

	s.emit(callCtx, domain.EventBalancePulled, map[string]any{
		"strategy_hash": string(strategyHash),
		"lp":            string(lp),
		"token":         string(token),
		"amount":        amount,
		"recipient":     string(recipient),
	})
	return nil
}

// Push credits trade output to a strategy, net of the protocol fee, and moves
// the backing tokens from the payer to the LP's wallet and the fee collector.
// Returns the credited amount.
func (s *LedgerServiceImpl) Push(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, from domain.Address) (int64, error) {
	if err := s.enter(ctx); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()
	return s.pushLocked(ctx, caller, lp, strategyHash, token, amount, from, nil)
}

// PushWithCallback is Push with a just-in-time funding hook: the provider is
// invoked before any transfer so the payer can source tokens on demand. The
// hook receives a stamped context, so calling back into the ledger from it
// fails with a re-entrancy error.
func (s *LedgerServiceImpl) PushWithCallback(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, from domain.Address, provider ports.FundsProvider) (int64, error) {
	if err := s.enter(ctx); err != nil {
		return 0, err
	}
	defer s.mu.Unlock()
	return s.pushLocked(ctx, caller, lp, strategyHash, token, amount, from, provider)
}

func (s *LedgerServiceImpl) pushLocked(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, from domain.Address, provider ports.FundsProvider) (int64, error) {
	if s.paused {
		return 0, apperror.ErrSystemPaused()
	}
	if amount <= 0 {
		return 0, apperror.ErrZeroAmount()
	}

	strat, _, err := s.tradableBalance(caller, lp, strategyHash, token)
	if err != nil {
		return 0, err
	}

	callCtx := markCall(ctx, ledgerGuardKey)
	if provider != nil {
		if err := provider.ProvideFunds(callCtx, token, amount); err != nil {
			return 0, apperror.ErrTransferFailed(fmt.Errorf("funds provider: %w", err))
		}
	}

	fee := domain.ProtocolFee(amount, s.cfg.ProtocolFeeBps)
	credited := amount - fee

	now := s.clock.Now()
	s.credit(strategyHash, lp, token, credited, now)

	if err := s.token.TransferFrom(callCtx, token, s.cfg.Custody, from, lp, credited); err != nil {
		s.debit(strategyHash, token, credited, now)
		return 0, apperror.ErrTransferFailed(fmt.Errorf("push %d of %s: %w", credited, token, err))
	}
	if fee > 0 {
		if err := s.token.TransferFrom(callCtx, token, s.cfg.Custody, from, s.cfg.FeeCollector, fee); err != nil {
			// Undo both the credit and the principal transfer.
			s.debit(strategyHash, token, credited, now)
			if undoErr := s.token.Transfer(callCtx, token, lp, from, credited); undoErr != nil {
				s.log.Error().Err(undoErr).
					Str("strategy_hash", string(strategyHash)).
					Msg("failed to unwind principal after fee transfer failure")
			}
			return 0, apperror.ErrTransferFailed(fmt.Errorf("push fee %d of %s: %w", fee, token, err))
		}
	}
	strat.TotalVolume += amount
	strat.TotalFees += fee

	s.emit(callCtx, domain.EventBalancePushed, map[string]any{
		"strategy_hash": string(strategyHash),
		"lp":            string(lp),
		"token":         string(token),
		"amount":        amount,
		"fee":           fee,
		"credited":      credited,
		"from":          string(from),
	})
	return credited, nil
}

// RevertPull compensates a completed Pull when a later step of the same
// settlement chain fails: the tokens return from the recipient to the LP's
// wallet and the virtual balance is credited back. It works while paused so
// an in-flight chain can always unwind.
func (s *LedgerServiceImpl) RevertPull(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, from domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if amount <= 0 {
		return apperror.ErrZeroAmount()
	}

	strat, _, err := s.tradableBalance(caller, lp, strategyHash, token)
	if err != nil {
		return err
	}

	callCtx := markCall(ctx, ledgerGuardKey)
	if err := s.token.Transfer(callCtx, token, from, lp, amount); err != nil {
		return apperror.ErrTransferFailed(fmt.Errorf("revert pull %d of %s: %w", amount, token, err))
	}
	now := s.clock.Now()
	s.credit(strategyHash, lp, token, amount, now)
	strat.TotalVolume -= amount

	s.emit(callCtx, domain.EventBalancePullReverted, map[string]any{
		"strategy_hash": string(strategyHash),
		"lp":            string(lp),
		"token":         string(token),
		"amount":        amount,
		"from":          string(from),
	})
	return nil
}

// RevertPush compensates a completed Push: the credited principal leaves the
// LP's wallet and the skimmed fee leaves the collector, both back to the
// original payer, and the virtual credit is debited. amount is the gross
// amount the original Push was called with; the fee split is recomputed the
// same way. Works while paused for the same reason as RevertPull.
func (s *LedgerServiceImpl) RevertPush(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, to domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if amount <= 0 {
		return apperror.ErrZeroAmount()
	}

	strat, vb, err := s.tradableBalance(caller, lp, strategyHash, token)
	if err != nil {
		return err
	}
	fee := domain.ProtocolFee(amount, s.cfg.ProtocolFeeBps)
	credited := amount - fee
	if vb == nil || vb.Amount < credited {
		return apperror.ErrInsufficientVirtualBalance()
	}

	now := s.clock.Now()
	callCtx := markCall(ctx, ledgerGuardKey)

	s.debit(strategyHash, token, credited, now)
	if err := s.token.Transfer(callCtx, token, lp, to, credited); err != nil {
		s.credit(strategyHash, lp, token, credited, now)
		return apperror.ErrTransferFailed(fmt.Errorf("revert push %d of %s: %w", credited, token, err))
	}
	if fee > 0 {
		if err := s.token.Transfer(callCtx, token, s.cfg.FeeCollector, to, fee); err != nil {
			s.credit(strategyHash, lp, token, credited, now)
			if undoErr := s.token.Transfer(callCtx, token, to, lp, credited); undoErr != nil {
				s.log.Error().Err(undoErr).
					Str("strategy_hash", string(strategyHash)).
					Msg("failed to restore principal after fee refund failure")
			}
			return apperror.ErrTransferFailed(fmt.Errorf("revert push fee %d of %s: %w", fee, token, err))
		}
	}
	strat.TotalVolume -= amount
	strat.TotalFees -= fee

	s.emit(callCtx, domain.EventBalancePushReverted, map[string]any{
		"strategy_hash": string(strategyHash),
		"lp":            string(lp),
		"token":         string(token),
		"amount":        amount,
		"fee":           fee,
		"credited":      credited,
		"to":            string(to),
	})
	return nil
}

// BalanceOf returns the virtual balance, or zero for any unknown combination.
func (s *LedgerServiceImpl) BalanceOf(ctx context.Context, lp domain.Address, strategyHash domain.Hash, token domain.Address) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	strat := s.strategies[strategyHash]
	if strat == nil || strat.LP != lp {
		return 0
	}
	vb := s.balances[strategyHash][token]
	if vb == nil {
		return 0
	}
	return vb.Amount
}

// IsStrategyActive reports whether the strategy exists and is tradeable.
func (s *LedgerServiceImpl) IsStrategyActive(ctx context.Context, strategyHash domain.Hash) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	strat := s.strategies[strategyHash]
	return strat != nil && strat.IsActive
}

// GetStrategy returns a copy of the strategy record.
func (s *LedgerServiceImpl) GetStrategy(ctx context.Context, strategyHash domain.Hash) (*domain.Strategy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	strat := s.strategies[strategyHash]
	if strat == nil {
		return nil, apperror.ErrNotFound("strategy")
	}
	cp := *strat
	return &cp, nil
}

// GetWithdrawalRequest returns a copy of the strategy's withdrawal request.
func (s *LedgerServiceImpl) GetWithdrawalRequest(ctx context.Context, strategyHash domain.Hash) (*domain.WithdrawalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wr := s.withdrawals[strategyHash]
	if wr == nil {
		return nil, apperror.ErrNotFound("withdrawal request")
	}
	cp := *wr
	cp.Tokens = append([]domain.Address(nil), wr.Tokens...)
	return &cp, nil
}

// SetStrategyApproval allowlists or delists a strategy contract.
func (s *LedgerServiceImpl) SetStrategyApproval(ctx context.Context, caller, strategyContract domain.Address, approved bool) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	s.approved[strategyContract] = approved
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventStrategyApprovalSet, map[string]any{
		"contract": string(strategyContract),
		"approved": approved,
	})
	return nil
}

// SetProtocolFee updates the fee rate, capped at MaxProtocolFeeBps.
func (s *LedgerServiceImpl) SetProtocolFee(ctx context.Context, caller domain.Address, feeBps int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if feeBps < 0 || feeBps > MaxProtocolFeeBps {
		return apperror.Validation(fmt.Sprintf("protocol fee must be between 0 and %d bps", MaxProtocolFeeBps))
	}
	old := s.cfg.ProtocolFeeBps
	s.cfg.ProtocolFeeBps = feeBps
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventFeeUpdated, map[string]any{
		"old_fee_bps": old,
		"new_fee_bps": feeBps,
	})
	return nil
}

// SetFeeCollector updates the fee destination address.
func (s *LedgerServiceImpl) SetFeeCollector(ctx context.Context, caller, collector domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if collector == "" {
		return apperror.Validation("fee collector address must not be empty")
	}
	s.cfg.FeeCollector = collector
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "fee_collector",
		"value": string(collector),
	})
	return nil
}

// SetBatchProcessor updates the authorized batch processor address.
func (s *LedgerServiceImpl) SetBatchProcessor(ctx context.Context, caller, processor domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	s.cfg.BatchProcessor = processor
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "batch_processor",
		"value": string(processor),
	})
	return nil
}

// Pause halts every state-changing operation except EmergencyDock.
func (s *LedgerServiceImpl) Pause(ctx context.Context, caller domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	s.paused = true
	s.log.Warn().Str("caller", string(caller)).Msg("ledger paused")
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventPaused, map[string]any{"component": "ledger"})
	return nil
}

// Unpause resumes normal operation.
func (s *LedgerServiceImpl) Unpause(ctx context.Context, caller domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	s.paused = false
	s.log.Info().Str("caller", string(caller)).Msg("ledger unpaused")
	s.emit(markCall(ctx, ledgerGuardKey), domain.EventUnpaused, map[string]any{"component": "ledger"})
	return nil
}

// --- internals, caller holds s.mu ---

func (s *LedgerServiceImpl) ownedActiveStrategy(lp domain.Address, strategyHash domain.Hash) (*domain.Strategy, error) {
	strat := s.strategies[strategyHash]
	if strat == nil {
		return nil, apperror.ErrNotFound("strategy")
	}
	if strat.LP != lp {
		return nil, apperror.ErrNotStrategyOwner()
	}
	if !strat.IsActive {
		return nil, apperror.ErrStrategyInactive()
	}
	return strat, nil
}

// tradableBalance authorizes a Pull/Push caller and resolves the balance
// entry, which may be nil for a token the strategy has never held.
func (s *LedgerServiceImpl) tradableBalance(caller, lp domain.Address, strategyHash domain.Hash, token domain.Address) (*domain.Strategy, *domain.VirtualBalance, error) {
	strat := s.strategies[strategyHash]
	if strat == nil {
		return nil, nil, apperror.ErrNotFound("strategy")
	}
	if caller != strat.StrategyContract {
		return nil, nil, apperror.ErrNotStrategyContract()
	}
	if strat.LP != lp {
		return nil, nil, apperror.ErrNotStrategyOwner()
	}
	if !strat.IsActive {
		return nil, nil, apperror.ErrStrategyInactive()
	}
	return strat, s.balances[strategyHash][token], nil
}

func (s *LedgerServiceImpl) credit(strategyHash domain.Hash, lp, token domain.Address, amount int64, now time.Time) {
	vb := s.balances[strategyHash][token]
	if vb == nil {
		vb = &domain.VirtualBalance{
			LP:           lp,
			StrategyHash: strategyHash,
			Token:        token,
		}
		s.balances[strategyHash][token] = vb
		s.tokenOrder[strategyHash] = append(s.tokenOrder[strategyHash], token)
	}
	vb.Amount += amount
	vb.LastUpdated = now
	vb.IsActive = true
}

func (s *LedgerServiceImpl) debit(strategyHash domain.Hash, token domain.Address, amount int64, now time.Time) {
	if vb := s.balances[strategyHash][token]; vb != nil {
		vb.Amount -= amount
		vb.LastUpdated = now
	}
}

func (s *LedgerServiceImpl) allBalancesZero(strategyHash domain.Hash) bool {
	for _, vb := range s.balances[strategyHash] {
		if vb.Amount != 0 {
			return false
		}
	}
	return true
}

func addressStrings(addrs []domain.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = string(a)
	}
	return out
}

var _ ports.LedgerService = (*LedgerServiceImpl)(nil)
