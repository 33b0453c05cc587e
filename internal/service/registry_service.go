package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"

	"github.com/rs/zerolog"
)

// MaxSlashBps caps the configurable slash percentage at 50%.
const MaxSlashBps = 5000

const (
	reasonStakeBelowMinimum      = "stake below minimum"
	reasonReputationBelowMinimum = "reputation below minimum"
)

// RegistryConfig holds the registry's governance addresses and tunables.
type RegistryConfig struct {
	Owner                  domain.Address
	Custody                domain.Address // holds staked tokens
	Treasury               domain.Address // receives slashed stake
	BatchProcessor         domain.Address
	StakeToken             domain.Address
	MinStake               int64
	InitialReputation      int64
	MinReputation          int64
	SlashBps               int64
	SlashReputationPenalty int64
	DecayPerDay            int64
}

// RegistryServiceImpl implements ports.RegistryService. Solver records live
// in memory behind one mutex; reputation decay is evaluated lazily against
// the clock, never on a timer.
type RegistryServiceImpl struct {
	mu  sync.Mutex
	cfg RegistryConfig

	solvers      map[domain.Address]*domain.Solver
	slashHistory []domain.SlashEvent

	token  ports.TokenTransfer
	clock  ports.Clock
	events ports.EventSink
	log    zerolog.Logger
}

// NewRegistryService creates a RegistryServiceImpl.
func NewRegistryService(
	cfg RegistryConfig,
	token ports.TokenTransfer,
	clock ports.Clock,
	events ports.EventSink,
	log zerolog.Logger,
) *RegistryServiceImpl {
	return &RegistryServiceImpl{
		cfg:     cfg,
		solvers: make(map[domain.Address]*domain.Solver),
		token:   token,
		clock:   clock,
		events:  events,
		log:     log,
	}
}

func (s *RegistryServiceImpl) enter(ctx context.Context) error {
	if inCall(ctx, registryGuardKey) {
		return apperror.ErrReentrantCall()
	}
	s.mu.Lock()
	return nil
}

func (s *RegistryServiceImpl) emit(ctx context.Context, t domain.EventType, fields map[string]any) {
	ev := domain.NewEvent(t, s.clock.Now(), fields)
	if err := s.events.Emit(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("event", string(t)).Msg("event emission failed")
	}
}

// RegisterSolver stakes tokens and creates an active solver record at the
// initial reputation.
func (s *RegistryServiceImpl) RegisterSolver(ctx context.Context, operator domain.Address, stakeAmount int64) (*domain.Solver, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	if _, exists := s.solvers[operator]; exists {
		return nil, apperror.ErrSolverExists()
	}
	if stakeAmount < s.cfg.MinStake {
		return nil, apperror.ErrStakeBelowMinimum()
	}

	callCtx := markCall(ctx, registryGuardKey)
	if err := s.token.TransferFrom(callCtx, s.cfg.StakeToken, s.cfg.Custody, operator, s.cfg.Custody, stakeAmount); err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("stake deposit: %w", err))
	}

	now := s.clock.Now()
	solver := &domain.Solver{
		Operator:        operator,
		StakedAmount:    stakeAmount,
		ReputationScore: s.cfg.InitialReputation,
		RegisteredAt:    now,
		LastActiveAt:    now,
		IsActive:        true,
	}
	s.solvers[operator] = solver

	s.log.Info().
		Str("operator", string(operator)).
		Int64("stake", stakeAmount).
		Msg("solver registered")
	s.emit(callCtx, domain.EventSolverRegistered, map[string]any{
		"operator":   string(operator),
		"stake":      stakeAmount,
		"reputation": solver.ReputationScore,
	})
	cp := *solver
	return &cp, nil
}

// UnregisterSolver returns the full stake and deletes the record. The slash
// history is protocol-wide and survives the solver.
func (s *RegistryServiceImpl) UnregisterSolver(ctx context.Context, operator domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	solver := s.solvers[operator]
	if solver == nil {
		return apperror.ErrNotFound("solver")
	}

	callCtx := markCall(ctx, registryGuardKey)
	if solver.StakedAmount > 0 {
		if err := s.token.Transfer(callCtx, s.cfg.StakeToken, s.cfg.Custody, operator, solver.StakedAmount); err != nil {
			return apperror.ErrTransferFailed(fmt.Errorf("stake refund: %w", err))
		}
	}
	delete(s.solvers, operator)

	s.log.Info().Str("operator", string(operator)).Msg("solver unregistered")
	s.emit(callCtx, domain.EventSolverUnregistered, map[string]any{
		"operator": string(operator),
		"refunded": solver.StakedAmount,
	})
	return nil
}

// IncreaseStake deposits additional stake.
func (s *RegistryServiceImpl) IncreaseStake(ctx context.Context, operator domain.Address, amount int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if amount <= 0 {
		return apperror.ErrZeroAmount()
	}
	solver := s.solvers[operator]
	if solver == nil {
		return apperror.ErrNotFound("solver")
	}

	callCtx := markCall(ctx, registryGuardKey)
	if err := s.token.TransferFrom(callCtx, s.cfg.StakeToken, s.cfg.Custody, operator, s.cfg.Custody, amount); err != nil {
		return apperror.ErrTransferFailed(fmt.Errorf("stake deposit: %w", err))
	}
	solver.StakedAmount += amount

	s.emit(callCtx, domain.EventSolverStakeChanged, map[string]any{
		"operator": string(operator),
		"delta":    amount,
		"stake":    solver.StakedAmount,
	})
	return nil
}

// DecreaseStake withdraws stake down to, but never below, the minimum.
func (s *RegistryServiceImpl) DecreaseStake(ctx context.Context, operator domain.Address, amount int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if amount <= 0 {
		return apperror.ErrZeroAmount()
	}
	solver := s.solvers[operator]
	if solver == nil {
		return apperror.ErrNotFound("solver")
	}
	if solver.StakedAmount-amount < s.cfg.MinStake {
		return apperror.ErrStakeBelowMinimum()
	}

	callCtx := markCall(ctx, registryGuardKey)
	if err := s.token.Transfer(callCtx, s.cfg.StakeToken, s.cfg.Custody, operator, amount); err != nil {
		return apperror.ErrTransferFailed(fmt.Errorf("stake withdrawal: %w", err))
	}
	solver.StakedAmount -= amount

	s.emit(callCtx, domain.EventSolverStakeChanged, map[string]any{
		"operator": string(operator),
		"delta":    -amount,
		"stake":    solver.StakedAmount,
	})
	return nil
}

// UpdateReputation applies pending decay, then the delta. Only the batch
// processor may call it. A positive delta counts as a solved batch.
func (s *RegistryServiceImpl) UpdateReputation(ctx context.Context, caller, solver domain.Address, delta int64, userSurplus int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if caller != s.cfg.BatchProcessor {
		return apperror.ErrNotBatchProcessor()
	}
	rec := s.solvers[solver]
	if rec == nil {
		return apperror.ErrNotFound("solver")
	}

	now := s.clock.Now()
	score := rec.EffectiveReputation(now, s.cfg.DecayPerDay) + delta
	if score < 0 {
		score = 0
	}
	rec.ReputationScore = score
	rec.LastActiveAt = now
	if delta > 0 {
		rec.TotalBatchesSolved++
		rec.TotalUserSurplus += userSurplus
	}

	callCtx := markCall(ctx, registryGuardKey)
	s.emit(callCtx, domain.EventSolverReputation, map[string]any{
		"operator":   string(solver),
		"delta":      delta,
		"reputation": score,
		"surplus":    userSurplus,
	})
	if score < s.cfg.MinReputation && rec.IsActive {
		s.deactivate(callCtx, rec, reasonReputationBelowMinimum)
	}
	return nil
}

// Slash burns the configured percentage of the solver's stake to the
// treasury and applies the reputation penalty. Only the batch processor may
// call it.
func (s *RegistryServiceImpl) Slash(ctx context.Context, caller, solver domain.Address, reason string) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()

	if caller != s.cfg.BatchProcessor {
		return apperror.ErrNotBatchProcessor()
	}
	rec := s.solvers[solver]
	if rec == nil {
		return apperror.ErrNotFound("solver")
	}

	now := s.clock.Now()
	amount := rec.StakedAmount * s.cfg.SlashBps / domain.FeeDenominator
	stakeBefore := rec.StakedAmount

	rec.StakedAmount -= amount
	rec.TotalSlashed += amount

	callCtx := markCall(ctx, registryGuardKey)
	if amount > 0 {
		if err := s.token.Transfer(callCtx, s.cfg.StakeToken, s.cfg.Custody, s.cfg.Treasury, amount); err != nil {
			rec.StakedAmount = stakeBefore
			rec.TotalSlashed -= amount
			return apperror.ErrTransferFailed(fmt.Errorf("slash transfer: %w", err))
		}
	}

	score := rec.EffectiveReputation(now, s.cfg.DecayPerDay) - s.cfg.SlashReputationPenalty
	if score < 0 {
		score = 0
	}
	rec.ReputationScore = score
	rec.LastActiveAt = now

	s.slashHistory = append(s.slashHistory, domain.SlashEvent{
		Solver:      solver,
		Amount:      amount,
		Reason:      reason,
		OccurredAt:  now,
		StakeBefore: stakeBefore,
		StakeAfter:  rec.StakedAmount,
	})

	s.log.Warn().
		Str("operator", string(solver)).
		Int64("amount", amount).
		Str("reason", reason).
		Msg("solver slashed")
	s.emit(callCtx, domain.EventSolverSlashed, map[string]any{
		"operator":     string(solver),
		"amount":       amount,
		"reason":       reason,
		"stake_before": stakeBefore,
		"stake_after":  rec.StakedAmount,
		"reputation":   score,
	})

	if rec.IsActive && rec.StakedAmount < s.cfg.MinStake {
		s.deactivate(callCtx, rec, reasonStakeBelowMinimum)
	} else if rec.IsActive && score < s.cfg.MinReputation {
		s.deactivate(callCtx, rec, reasonReputationBelowMinimum)
	}
	return nil
}

// IsSolverActive answers the auction engine's eligibility question: the
// record exists, is active, meets the stake floor, and its decayed
// reputation meets the reputation floor.
func (s *RegistryServiceImpl) IsSolverActive(ctx context.Context, solver domain.Address) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.solvers[solver]
	if rec == nil || !rec.IsActive {
		return false
	}
	if rec.StakedAmount < s.cfg.MinStake {
		return false
	}
	return rec.EffectiveReputation(s.clock.Now(), s.cfg.DecayPerDay) >= s.cfg.MinReputation
}

// GetSolver returns a copy of the solver record.
func (s *RegistryServiceImpl) GetSolver(ctx context.Context, solver domain.Address) (*domain.Solver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.solvers[solver]
	if rec == nil {
		return nil, apperror.ErrNotFound("solver")
	}
	cp := *rec
	return &cp, nil
}

// GetEffectiveReputation returns the decayed reputation as of now.
func (s *RegistryServiceImpl) GetEffectiveReputation(ctx context.Context, solver domain.Address) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.solvers[solver]
	if rec == nil {
		return 0, apperror.ErrNotFound("solver")
	}
	return rec.EffectiveReputation(s.clock.Now(), s.cfg.DecayPerDay), nil
}

// GetSlashHistoryLength returns the protocol-wide slash event count.
func (s *RegistryServiceImpl) GetSlashHistoryLength(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slashHistory)
}

// SetBatchProcessor updates the authorized batch processor address.
func (s *RegistryServiceImpl) SetBatchProcessor(ctx context.Context, caller, processor domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	s.cfg.BatchProcessor = processor
	s.emit(markCall(ctx, registryGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "registry_batch_processor",
		"value": string(processor),
	})
	return nil
}

// SetMinStake updates the stake floor. Existing solvers below the new floor
// lose eligibility lazily, at the next IsSolverActive evaluation.
func (s *RegistryServiceImpl) SetMinStake(ctx context.Context, caller domain.Address, minStake int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if minStake <= 0 {
		return apperror.Validation("minimum stake must be positive")
	}
	s.cfg.MinStake = minStake
	s.emit(markCall(ctx, registryGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "min_stake",
		"value": minStake,
	})
	return nil
}

// SetSlashPercentage updates the slash rate, capped at MaxSlashBps.
func (s *RegistryServiceImpl) SetSlashPercentage(ctx context.Context, caller domain.Address, slashBps int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if slashBps < 0 || slashBps > MaxSlashBps {
		return apperror.Validation(fmt.Sprintf("slash percentage must be between 0 and %d bps", MaxSlashBps))
	}
	s.cfg.SlashBps = slashBps
	s.emit(markCall(ctx, registryGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "slash_bps",
		"value": slashBps,
	})
	return nil
}

// SetMinReputation updates the reputation floor.
func (s *RegistryServiceImpl) SetMinReputation(ctx context.Context, caller domain.Address, minReputation int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if minReputation < 0 {
		return apperror.Validation("minimum reputation must not be negative")
	}
	s.cfg.MinReputation = minReputation
	s.emit(markCall(ctx, registryGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "min_reputation",
		"value": minReputation,
	})
	return nil
}

// SetReputationDecay updates the idle decay rate in points per day.
func (s *RegistryServiceImpl) SetReputationDecay(ctx context.Context, caller domain.Address, decayPerDay int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if decayPerDay < 0 {
		return apperror.Validation("reputation decay must not be negative")
	}
	s.cfg.DecayPerDay = decayPerDay
	s.emit(markCall(ctx, registryGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "reputation_decay_per_day",
		"value": decayPerDay,
	})
	return nil
}

// ReactivateSolver restores a deactivated solver once its stake is back at
// the floor, resetting its reputation to the registration baseline. A solver
// deactivated for low reputation could never climb back otherwise. Owner
// only; deactivation is automatic, reactivation is deliberate.
func (s *RegistryServiceImpl) ReactivateSolver(ctx context.Context, caller, solver domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	rec := s.solvers[solver]
	if rec == nil {
		return apperror.ErrNotFound("solver")
	}
	if rec.StakedAmount < s.cfg.MinStake {
		return apperror.ErrStakeBelowMinimum()
	}

	rec.IsActive = true
	rec.DeactivationReason = ""
	rec.ReputationScore = s.cfg.InitialReputation
	rec.LastActiveAt = s.clock.Now()

	s.log.Info().Str("operator", string(solver)).Msg("solver reactivated")
	s.emit(markCall(ctx, registryGuardKey), domain.EventSolverReactivated, map[string]any{
		"operator": string(solver),
	})
	return nil
}

// deactivate flips the solver inactive. Caller holds s.mu.
func (s *RegistryServiceImpl) deactivate(ctx context.Context, rec *domain.Solver, reason string) {
	rec.IsActive = false
	rec.DeactivationReason = reason
	s.log.Warn().
		Str("operator", string(rec.Operator)).
		Str("reason", reason).
		Msg("solver deactivated")
	s.emit(ctx, domain.EventSolverDeactivated, map[string]any{
		"operator": string(rec.Operator),
		"reason":   reason,
	})
}

var _ ports.RegistryService = (*RegistryServiceImpl)(nil)
