package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Batch timing bounds.
const (
	MaxBatchDurationSeconds = 180
	MinSolverWindowSeconds  = 5
	MaxSolverWindowSeconds  = 30
)

// AuctionConfig holds the engine's governance addresses and tunables.
type AuctionConfig struct {
	Owner                  domain.Address
	BatchProcessor         domain.Address
	BatchDuration          time.Duration
	SolverWindow           time.Duration
	MinVolumeForEarlyClose int64
	CancelCooldown         time.Duration
	CommitTTL              time.Duration
	ReputationReward       int64
}

// AuctionServiceImpl implements ports.AuctionService. Exactly one batch is
// OPEN at any time and at most one earlier batch is in flight beyond it.
// Time never acts on its own: every transition happens inside a call, judged
// against the clock.
type AuctionServiceImpl struct {
	mu     sync.Mutex
	cfg    AuctionConfig
	paused bool

	current *domain.Batch
	pending *domain.Batch // last closed batch, nil once terminal
	batches map[uint64]*domain.Batch

	intents        map[uuid.UUID]*domain.SwapIntent
	solutions      map[domain.Hash]*domain.SolverSolution
	batchSolutions map[uint64][]domain.Hash
	batchVolume    map[uint64]int64 // revealed intent volume

	eligibility ports.SolverEligibility
	registry    ports.RegistryService
	executor    ports.SolutionExecutor
	commits     ports.CommitGuard
	digest      ports.DigestService
	clock       ports.Clock
	events      ports.EventSink
	log         zerolog.Logger
}

// NewAuctionService creates an AuctionServiceImpl with batch 1 already open.
func NewAuctionService(
	cfg AuctionConfig,
	eligibility ports.SolverEligibility,
	registry ports.RegistryService,
	executor ports.SolutionExecutor,
	commits ports.CommitGuard,
	digest ports.DigestService,
	clock ports.Clock,
	events ports.EventSink,
	log zerolog.Logger,
) *AuctionServiceImpl {
	s := &AuctionServiceImpl{
		cfg:            cfg,
		batches:        make(map[uint64]*domain.Batch),
		intents:        make(map[uuid.UUID]*domain.SwapIntent),
		solutions:      make(map[domain.Hash]*domain.SolverSolution),
		batchSolutions: make(map[uint64][]domain.Hash),
		batchVolume:    make(map[uint64]int64),
		eligibility:    eligibility,
		registry:       registry,
		executor:       executor,
		commits:        commits,
		digest:         digest,
		clock:          clock,
		events:         events,
		log:            log,
	}
	s.openBatch(context.Background(), 1, clock.Now())
	return s
}

func (s *AuctionServiceImpl) enter(ctx context.Context) error {
	if inCall(ctx, auctionGuardKey) {
		return apperror.ErrReentrantCall()
	}
	s.mu.Lock()
	return nil
}

func (s *AuctionServiceImpl) emit(ctx context.Context, t domain.EventType, fields map[string]any) {
	ev := domain.NewEvent(t, s.clock.Now(), fields)
	if err := s.events.Emit(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("event", string(t)).Msg("event emission failed")
	}
}

// SubmitIntent adds a revealed intent to the current open batch.
func (s *AuctionServiceImpl) SubmitIntent(ctx context.Context, user domain.Address, req ports.IntentRequest) (*domain.SwapIntent, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if s.paused {
		return nil, apperror.ErrSystemPaused()
	}

	now := s.clock.Now()
	if err := validateIntentTerms(req.TokenIn, req.TokenOut, req.AmountIn, req.MinAmountOut, req.MaxFee, req.Deadline, now); err != nil {
		return nil, err
	}
	pref := req.MEVPref
	if pref == "" {
		pref = domain.MEVPrefNone
	}

	intent := &domain.SwapIntent{
		IntentID:         uuid.New(),
		BatchID:          s.current.ID,
		User:             user,
		TokenIn:          req.TokenIn,
		TokenOut:         req.TokenOut,
		AmountIn:         req.AmountIn,
		MinAmountOut:     req.MinAmountOut,
		MaxFee:           req.MaxFee,
		MEVPref:          pref,
		AllowPartialFill: req.AllowPartialFill,
		Deadline:         req.Deadline,
		Revealed:         true,
		SubmittedAt:      now,
	}
	s.intents[intent.IntentID] = intent
	s.current.IntentIDs = append(s.current.IntentIDs, intent.IntentID)
	s.batchVolume[s.current.ID] += req.AmountIn

	s.emit(markCall(ctx, auctionGuardKey), domain.EventIntentSubmitted, map[string]any{
		"intent_id": intent.IntentID.String(),
		"batch_id":  intent.BatchID,
		"user":      string(user),
		"token_in":  string(req.TokenIn),
		"token_out": string(req.TokenOut),
		"amount_in": req.AmountIn,
	})
	cp := *intent
	return &cp, nil
}

// SubmitCommittedIntent adds a blind intent carrying only its commitment
// hash. The hash is burned protocol-wide on submission, so it can never be
// replayed, even across batches.
func (s *AuctionServiceImpl) SubmitCommittedIntent(ctx context.Context, user domain.Address, commitHash domain.Hash) (*domain.SwapIntent, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if s.paused {
		return nil, apperror.ErrSystemPaused()
	}
	if commitHash == "" {
		return nil, apperror.Validation("commit hash must not be empty")
	}

	callCtx := markCall(ctx, auctionGuardKey)
	fresh, err := s.commits.CheckAndSet(callCtx, commitHash, s.cfg.CommitTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit guard: %w", err))
	}
	if !fresh {
		return nil, apperror.ErrCommitUsed()
	}

	now := s.clock.Now()
	intent := &domain.SwapIntent{
		IntentID:    uuid.New(),
		BatchID:     s.current.ID,
		User:        user,
		MEVPref:     domain.MEVPrefPrivate,
		CommitHash:  commitHash,
		SubmittedAt: now,
	}
	s.intents[intent.IntentID] = intent
	s.current.IntentIDs = append(s.current.IntentIDs, intent.IntentID)

	s.emit(callCtx, domain.EventIntentCommitted, map[string]any{
		"intent_id":   intent.IntentID.String(),
		"batch_id":    intent.BatchID,
		"user":        string(user),
		"commit_hash": string(commitHash),
	})
	cp := *intent
	return &cp, nil
}

// RevealIntent opens a committed intent by supplying the preimage of its
// commitment hash.
func (s *AuctionServiceImpl) RevealIntent(ctx context.Context, user domain.Address, intentID uuid.UUID, params domain.IntentParams) (*domain.SwapIntent, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if s.paused {
		return nil, apperror.ErrSystemPaused()
	}

	intent := s.intents[intentID]
	if intent == nil {
		return nil, apperror.ErrNotFound("intent")
	}
	if intent.User != user {
		return nil, apperror.ErrNotIntentOwner()
	}
	if intent.Cancelled {
		return nil, apperror.Validation("intent is cancelled")
	}
	if intent.Revealed {
		return nil, apperror.ErrAlreadyRevealed()
	}
	batch := s.batches[intent.BatchID]
	if batch.Status != domain.BatchStatusOpen && batch.Status != domain.BatchStatusSolving {
		return nil, apperror.ErrBatchNotOpen()
	}

	if s.digest.CommitHash(params) != intent.CommitHash {
		return nil, apperror.ErrCommitMismatch()
	}
	now := s.clock.Now()
	if err := validateIntentTerms(params.TokenIn, params.TokenOut, params.AmountIn, params.MinAmountOut, params.MaxFee, params.Deadline, now); err != nil {
		return nil, err
	}

	intent.TokenIn = params.TokenIn
	intent.TokenOut = params.TokenOut
	intent.AmountIn = params.AmountIn
	intent.MinAmountOut = params.MinAmountOut
	intent.MaxFee = params.MaxFee
	intent.AllowPartialFill = params.AllowPartialFill
	intent.Deadline = params.Deadline
	intent.Revealed = true
	s.batchVolume[intent.BatchID] += params.AmountIn

	s.emit(markCall(ctx, auctionGuardKey), domain.EventIntentRevealed, map[string]any{
		"intent_id": intentID.String(),
		"batch_id":  intent.BatchID,
		"user":      string(user),
		"token_in":  string(params.TokenIn),
		"token_out": string(params.TokenOut),
		"amount_in": params.AmountIn,
	})
	cp := *intent
	return &cp, nil
}

// CancelIntent withdraws an intent. Only the intent's owner may cancel, and
// only while its batch is still open; once solvers are working on the batch
// its contents are frozen.
func (s *AuctionServiceImpl) CancelIntent(ctx context.Context, user domain.Address, intentID uuid.UUID) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if s.paused {
		return apperror.ErrSystemPaused()
	}

	intent := s.intents[intentID]
	if intent == nil {
		return apperror.ErrNotFound("intent")
	}
	if intent.User != user {
		return apperror.ErrNotIntentOwner()
	}
	if intent.Cancelled {
		return apperror.Validation("intent is already cancelled")
	}

	batch := s.batches[intent.BatchID]
	if batch.Status != domain.BatchStatusOpen {
		return apperror.ErrBatchNotOpen()
	}

	intent.Cancelled = true
	if intent.Revealed {
		s.batchVolume[intent.BatchID] -= intent.AmountIn
	}

	s.emit(markCall(ctx, auctionGuardKey), domain.EventIntentCancelled, map[string]any{
		"intent_id": intentID.String(),
		"batch_id":  intent.BatchID,
		"user":      string(user),
	})
	return nil
}

// CloseBatch moves the current batch to SOLVING and opens its successor.
// Anyone may call it once the batch duration has elapsed, or earlier when
// the revealed volume reaches the early-close threshold. The owner may
// force a close at any time. A batch with no live intents is cancelled
// instead of sent to solvers.
func (s *AuctionServiceImpl) CloseBatch(ctx context.Context, caller domain.Address) (*domain.Batch, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if s.paused {
		return nil, apperror.ErrSystemPaused()
	}
	if s.pending != nil && !s.pending.IsTerminal() {
		return nil, apperror.Validation(fmt.Sprintf("batch %d has not settled", s.pending.ID))
	}

	now := s.clock.Now()
	earlyClose := s.cfg.MinVolumeForEarlyClose > 0 && s.batchVolume[s.current.ID] >= s.cfg.MinVolumeForEarlyClose
	forced := caller == s.cfg.Owner
	if now.Before(s.current.CloseTime) && !earlyClose && !forced {
		return nil, apperror.ErrCloseTimeNotReached()
	}

	closed := s.current
	callCtx := markCall(ctx, auctionGuardKey)

	if s.liveIntentCount(closed) == 0 {
		closed.Status = domain.BatchStatusCancelled
		s.openBatch(callCtx, closed.ID+1, now)
		s.log.Info().Uint64("batch_id", closed.ID).Msg("empty batch cancelled")
		s.emit(callCtx, domain.EventBatchCancelled, map[string]any{
			"batch_id": closed.ID,
			"reason":   "no live intents",
		})
		cp := *closed
		return &cp, nil
	}

	closed.Status = domain.BatchStatusSolving
	closed.SolveDeadline = now.Add(s.cfg.SolverWindow)
	s.pending = closed
	s.openBatch(callCtx, closed.ID+1, now)

	s.log.Info().
		Uint64("batch_id", closed.ID).
		Int("intents", s.liveIntentCount(closed)).
		Time("solve_deadline", closed.SolveDeadline).
		Msg("batch closed")
	s.emit(callCtx, domain.EventBatchClosed, map[string]any{
		"batch_id":       closed.ID,
		"caller":         string(caller),
		"intents":        len(closed.IntentIDs),
		"solve_deadline": closed.SolveDeadline,
		"early":          earlyClose,
		"forced":         forced,
	})
	cp := *closed
	return &cp, nil
}

// SubmitSolution records an eligible solver's candidate for a solving batch.
// Solutions are immutable once stored.
func (s *AuctionServiceImpl) SubmitSolution(ctx context.Context, solver domain.Address, req ports.SolutionRequest) (*domain.SolverSolution, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if s.paused {
		return nil, apperror.ErrSystemPaused()
	}

	batch := s.batches[req.BatchID]
	if batch == nil {
		return nil, apperror.ErrNotFound("batch")
	}
	if batch.Status != domain.BatchStatusSolving {
		return nil, apperror.ErrBatchNotSolving()
	}
	now := s.clock.Now()
	if now.After(batch.SolveDeadline) {
		return nil, apperror.ErrDeadlinePassed()
	}

	callCtx := markCall(ctx, auctionGuardKey)
	if !s.eligibility.IsSolverActive(callCtx, solver) {
		return nil, apperror.ErrSolverNotEligible()
	}
	if req.TotalUserSurplus < 0 || req.SolverBid < 0 {
		return nil, apperror.Validation("surplus and bid must not be negative")
	}
	if len(req.ExecutionData) == 0 {
		return nil, apperror.Validation("execution data must not be empty")
	}

	hash := s.digest.SolutionHash(solver, req.BatchID, req.ExecutionData, req.TotalUserSurplus, req.SolverBid)
	if _, exists := s.solutions[hash]; exists {
		return nil, apperror.Validation("solution already submitted")
	}

	sol := &domain.SolverSolution{
		SolutionHash:     hash,
		Solver:           solver,
		BatchID:          req.BatchID,
		TotalUserSurplus: req.TotalUserSurplus,
		SolverBid:        req.SolverBid,
		ExecutionData:    append([]byte(nil), req.ExecutionData...),
		SubmittedAt:      now,
	}
	s.solutions[hash] = sol
	s.batchSolutions[req.BatchID] = append(s.batchSolutions[req.BatchID], hash)

	s.emit(callCtx, domain.EventSolutionSubmitted, map[string]any{
		"solution_hash": string(hash),
		"batch_id":      req.BatchID,
		"solver":        string(solver),
		"surplus":       req.TotalUserSurplus,
		"bid":           req.SolverBid,
	})
	cp := *sol
	return &cp, nil
}

// ExecuteBatch settles a solving batch with the chosen solution once the
// solver window has elapsed. Anyone may call it; the first caller naming a
// still-eligible solver wins. The named solver's eligibility is re-checked
// here because stake and reputation may have changed since submission. A
// failed execution puts the batch back to SOLVING so another solution can be
// tried; a settled batch is final.
func (s *AuctionServiceImpl) ExecuteBatch(ctx context.Context, caller domain.Address, solutionHash domain.Hash) (*domain.Batch, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if s.paused {
		return nil, apperror.ErrSystemPaused()
	}

	sol := s.solutions[solutionHash]
	if sol == nil {
		return nil, apperror.ErrNotFound("solution")
	}
	batch := s.batches[sol.BatchID]
	if batch.Status != domain.BatchStatusSolving {
		return nil, apperror.ErrBatchNotSolving()
	}
	now := s.clock.Now()
	if now.Before(batch.SolveDeadline) {
		return nil, apperror.ErrSolveWindowOpen()
	}

	callCtx := markCall(ctx, auctionGuardKey)
	if !s.eligibility.IsSolverActive(callCtx, sol.Solver) {
		return nil, apperror.ErrSolverNotEligible()
	}

	batch.Status = domain.BatchStatusExecuting
	batch.WinningSolutionHash = solutionHash
	batch.WinningSolver = sol.Solver

	s.emit(callCtx, domain.EventSolutionSelected, map[string]any{
		"batch_id":      batch.ID,
		"solution_hash": string(solutionHash),
		"solver":        string(sol.Solver),
		"caller":        string(caller),
	})

	if err := s.executor.Execute(callCtx, sol.Solver, batch, sol.ExecutionData); err != nil {
		batch.Status = domain.BatchStatusSolving
		batch.WinningSolutionHash = ""
		batch.WinningSolver = ""
		s.log.Error().Err(err).
			Uint64("batch_id", batch.ID).
			Str("solution_hash", string(solutionHash)).
			Msg("solution execution failed")
		return nil, apperror.ErrTransferFailed(fmt.Errorf("solution execution: %w", err))
	}

	batch.Status = domain.BatchStatusSettled
	s.pending = nil

	if err := s.registry.UpdateReputation(callCtx, s.cfg.BatchProcessor, sol.Solver, s.cfg.ReputationReward, sol.TotalUserSurplus); err != nil {
		s.log.Warn().Err(err).
			Str("solver", string(sol.Solver)).
			Msg("reputation reward failed")
	}

	s.log.Info().
		Uint64("batch_id", batch.ID).
		Str("solver", string(sol.Solver)).
		Int64("surplus", sol.TotalUserSurplus).
		Msg("batch settled")
	s.emit(callCtx, domain.EventBatchSettled, map[string]any{
		"batch_id":      batch.ID,
		"solution_hash": string(solutionHash),
		"solver":        string(sol.Solver),
		"surplus":       sol.TotalUserSurplus,
		"bid":           sol.SolverBid,
	})
	cp := *batch
	return &cp, nil
}

// CancelBatch abandons the in-flight solving batch once its solve deadline
// plus the cancel cooldown have elapsed with no acceptable execution, or
// rolls the current open batch when nothing is in flight. Owner and batch
// processor only.
func (s *AuctionServiceImpl) CancelBatch(ctx context.Context, caller domain.Address) (*domain.Batch, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner && caller != s.cfg.BatchProcessor {
		return nil, apperror.ErrNotBatchProcessor()
	}

	now := s.clock.Now()
	callCtx := markCall(ctx, auctionGuardKey)

	if s.pending != nil && s.pending.Status == domain.BatchStatusSolving {
		if now.Before(s.pending.SolveDeadline.Add(s.cfg.CancelCooldown)) {
			return nil, apperror.ErrCooldownActive()
		}
		cancelled := s.pending
		cancelled.Status = domain.BatchStatusCancelled
		s.pending = nil
		s.log.Warn().Uint64("batch_id", cancelled.ID).Msg("solving batch cancelled")
		s.emit(callCtx, domain.EventBatchCancelled, map[string]any{
			"batch_id": cancelled.ID,
			"caller":   string(caller),
		})
		cp := *cancelled
		return &cp, nil
	}

	cancelled := s.current
	cancelled.Status = domain.BatchStatusCancelled
	s.openBatch(callCtx, cancelled.ID+1, now)
	s.log.Warn().Uint64("batch_id", cancelled.ID).Msg("open batch cancelled")
	s.emit(callCtx, domain.EventBatchCancelled, map[string]any{
		"batch_id": cancelled.ID,
		"caller":   string(caller),
	})
	cp := *cancelled
	return &cp, nil
}

// GetCurrentBatch returns a copy of the open batch.
func (s *AuctionServiceImpl) GetCurrentBatch(ctx context.Context) *domain.Batch {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *s.current
	cp.IntentIDs = append([]uuid.UUID(nil), s.current.IntentIDs...)
	return &cp
}

// GetBatch returns a copy of the batch with the given ID.
func (s *AuctionServiceImpl) GetBatch(ctx context.Context, id uint64) (*domain.Batch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.batches[id]
	if batch == nil {
		return nil, apperror.ErrNotFound("batch")
	}
	cp := *batch
	cp.IntentIDs = append([]uuid.UUID(nil), batch.IntentIDs...)
	return &cp, nil
}

// GetBatchIntents returns copies of every intent in the batch, cancelled
// ones included.
func (s *AuctionServiceImpl) GetBatchIntents(ctx context.Context, id uint64) ([]*domain.SwapIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.batches[id]
	if batch == nil {
		return nil, apperror.ErrNotFound("batch")
	}
	out := make([]*domain.SwapIntent, 0, len(batch.IntentIDs))
	for _, intentID := range batch.IntentIDs {
		cp := *s.intents[intentID]
		out = append(out, &cp)
	}
	return out, nil
}

// GetIntent returns a copy of the intent.
func (s *AuctionServiceImpl) GetIntent(ctx context.Context, intentID uuid.UUID) (*domain.SwapIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	intent := s.intents[intentID]
	if intent == nil {
		return nil, apperror.ErrNotFound("intent")
	}
	cp := *intent
	return &cp, nil
}

// GetSolution returns a copy of the solution.
func (s *AuctionServiceImpl) GetSolution(ctx context.Context, solutionHash domain.Hash) (*domain.SolverSolution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sol := s.solutions[solutionHash]
	if sol == nil {
		return nil, apperror.ErrNotFound("solution")
	}
	cp := *sol
	cp.ExecutionData = append([]byte(nil), sol.ExecutionData...)
	return &cp, nil
}

// SetBatchDuration updates how long a batch collects intents. Applies from
// the next batch; the current close time is already published.
func (s *AuctionServiceImpl) SetBatchDuration(ctx context.Context, caller domain.Address, seconds int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if seconds <= 0 || seconds > MaxBatchDurationSeconds {
		return apperror.Validation(fmt.Sprintf("batch duration must be between 1 and %d seconds", MaxBatchDurationSeconds))
	}
	s.cfg.BatchDuration = time.Duration(seconds) * time.Second
	s.emit(markCall(ctx, auctionGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "batch_duration_seconds",
		"value": seconds,
	})
	return nil
}

// SetSolverWindow updates the solving window length.
func (s *AuctionServiceImpl) SetSolverWindow(ctx context.Context, caller domain.Address, seconds int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if seconds < MinSolverWindowSeconds || seconds > MaxSolverWindowSeconds {
		return apperror.Validation(fmt.Sprintf("solver window must be between %d and %d seconds", MinSolverWindowSeconds, MaxSolverWindowSeconds))
	}
	s.cfg.SolverWindow = time.Duration(seconds) * time.Second
	s.emit(markCall(ctx, auctionGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "solver_window_seconds",
		"value": seconds,
	})
	return nil
}

// SetMinVolumeForEarlyClose updates the early-close volume threshold.
// Zero disables early closing.
func (s *AuctionServiceImpl) SetMinVolumeForEarlyClose(ctx context.Context, caller domain.Address, volume int64) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	if volume < 0 {
		return apperror.Validation("early-close volume must not be negative")
	}
	s.cfg.MinVolumeForEarlyClose = volume
	s.emit(markCall(ctx, auctionGuardKey), domain.EventConfigUpdated, map[string]any{
		"field": "min_volume_for_early_close",
		"value": volume,
	})
	return nil
}

// Pause halts every state-changing operation on the engine.
func (s *AuctionServiceImpl) Pause(ctx context.Context, caller domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	s.paused = true
	s.log.Warn().Str("caller", string(caller)).Msg("auction engine paused")
	s.emit(markCall(ctx, auctionGuardKey), domain.EventPaused, map[string]any{"component": "auction"})
	return nil
}

// Unpause resumes normal operation.
func (s *AuctionServiceImpl) Unpause(ctx context.Context, caller domain.Address) error {
	if err := s.enter(ctx); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if caller != s.cfg.Owner {
		return apperror.ErrNotOwner()
	}
	s.paused = false
	s.log.Info().Str("caller", string(caller)).Msg("auction engine unpaused")
	s.emit(markCall(ctx, auctionGuardKey), domain.EventUnpaused, map[string]any{"component": "auction"})
	return nil
}

// --- internals, caller holds s.mu ---

func (s *AuctionServiceImpl) openBatch(ctx context.Context, id uint64, now time.Time) {
	b := &domain.Batch{
		ID:        id,
		OpenTime:  now,
		CloseTime: now.Add(s.cfg.BatchDuration),
		Status:    domain.BatchStatusOpen,
	}
	s.batches[id] = b
	s.current = b
	s.emit(ctx, domain.EventBatchOpened, map[string]any{
		"batch_id":   id,
		"open_time":  b.OpenTime,
		"close_time": b.CloseTime,
	})
}

func (s *AuctionServiceImpl) liveIntentCount(b *domain.Batch) int {
	live := 0
	for _, intentID := range b.IntentIDs {
		if intent := s.intents[intentID]; intent != nil && !intent.Cancelled {
			live++
		}
	}
	return live
}

func validateIntentTerms(tokenIn, tokenOut domain.Address, amountIn, minAmountOut, maxFee, deadline int64, now time.Time) error {
	if tokenIn == "" || tokenOut == "" {
		return apperror.Validation("token addresses must not be empty")
	}
	if tokenIn == tokenOut {
		return apperror.ErrSameToken()
	}
	if amountIn <= 0 {
		return apperror.ErrZeroAmount()
	}
	if minAmountOut < 0 || maxFee < 0 {
		return apperror.Validation("min amount out and max fee must not be negative")
	}
	if deadline <= now.Unix() {
		return apperror.ErrDeadlinePassed()
	}
	return nil
}

var _ ports.AuctionService = (*AuctionServiceImpl)(nil)
