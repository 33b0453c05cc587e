package ports

import (
	"context"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"

	"github.com/google/uuid"
)

// --- Ledger ---

// ShipRequest holds validated input for allocating capital to a strategy.
type ShipRequest struct {
	StrategyContract domain.Address
	StrategyData     []byte // Opaque pool configuration, salt included
	Tokens           []domain.Address
	Amounts          []int64
}

// LedgerService owns virtual balances. It is the single point where the
// decision to move real tokens is made.
type LedgerService interface {
	Ship(ctx context.Context, lp domain.Address, req ShipRequest) (*domain.Strategy, error)
	RequestDock(ctx context.Context, lp domain.Address, strategyHash domain.Hash, tokens []domain.Address) (*domain.WithdrawalRequest, error)
	ExecuteDock(ctx context.Context, lp domain.Address, strategyHash domain.Hash) error
	EmergencyDock(ctx context.Context, caller domain.Address, strategyHash domain.Hash) error

	// Pull and Push are callable only by the strategy contract registered for
	// strategyHash. Pull moves trade output from the LP's wallet to recipient;
	// Push credits amount minus protocol fee and moves real tokens from the
	// payer to the LP and fee collector.
	Pull(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, recipient domain.Address) error
	Push(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, from domain.Address) (int64, error)
	PushWithCallback(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, from domain.Address, provider FundsProvider) (int64, error)

	// RevertPull and RevertPush compensate a completed Pull/Push when a later
	// step of the same settlement chain fails, restoring both the virtual
	// balance and the real token positions. RevertPush takes the gross amount
	// the original Push was called with and returns the fee leg as well.
	RevertPull(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, from domain.Address) error
	RevertPush(ctx context.Context, caller, lp domain.Address, strategyHash domain.Hash, token domain.Address, amount int64, to domain.Address) error

	BalanceOf(ctx context.Context, lp domain.Address, strategyHash domain.Hash, token domain.Address) int64
	IsStrategyActive(ctx context.Context, strategyHash domain.Hash) bool
	GetStrategy(ctx context.Context, strategyHash domain.Hash) (*domain.Strategy, error)
	GetWithdrawalRequest(ctx context.Context, strategyHash domain.Hash) (*domain.WithdrawalRequest, error)

	// Admin operations, owner-gated.
	SetStrategyApproval(ctx context.Context, caller, strategyContract domain.Address, approved bool) error
	SetProtocolFee(ctx context.Context, caller domain.Address, feeBps int64) error
	SetFeeCollector(ctx context.Context, caller, collector domain.Address) error
	SetBatchProcessor(ctx context.Context, caller, processor domain.Address) error
	Pause(ctx context.Context, caller domain.Address) error
	Unpause(ctx context.Context, caller domain.Address) error
}

// --- Auction ---

// IntentRequest holds validated input for a plain (pre-revealed) intent.
type IntentRequest struct {
	TokenIn          domain.Address
	TokenOut         domain.Address
	AmountIn         int64
	MinAmountOut     int64
	MaxFee           int64
	MEVPref          domain.MEVPreference
	AllowPartialFill bool
	Deadline         int64 // Unix seconds
}

// SolutionRequest holds a solver's candidate solution for a batch.
type SolutionRequest struct {
	BatchID          uint64
	TotalUserSurplus int64
	SolverBid        int64
	ExecutionData    []byte
}

// AuctionService owns the current batch and its intents and solutions.
type AuctionService interface {
	SubmitIntent(ctx context.Context, user domain.Address, req IntentRequest) (*domain.SwapIntent, error)
	SubmitCommittedIntent(ctx context.Context, user domain.Address, commitHash domain.Hash) (*domain.SwapIntent, error)
	RevealIntent(ctx context.Context, user domain.Address, intentID uuid.UUID, params domain.IntentParams) (*domain.SwapIntent, error)
	CancelIntent(ctx context.Context, user domain.Address, intentID uuid.UUID) error

	CloseBatch(ctx context.Context, caller domain.Address) (*domain.Batch, error)
	SubmitSolution(ctx context.Context, solver domain.Address, req SolutionRequest) (*domain.SolverSolution, error)
	ExecuteBatch(ctx context.Context, caller domain.Address, solutionHash domain.Hash) (*domain.Batch, error)
	CancelBatch(ctx context.Context, caller domain.Address) (*domain.Batch, error)

	GetCurrentBatch(ctx context.Context) *domain.Batch
	GetBatch(ctx context.Context, id uint64) (*domain.Batch, error)
	GetBatchIntents(ctx context.Context, id uint64) ([]*domain.SwapIntent, error)
	GetIntent(ctx context.Context, intentID uuid.UUID) (*domain.SwapIntent, error)
	GetSolution(ctx context.Context, solutionHash domain.Hash) (*domain.SolverSolution, error)

	// Admin operations, owner-gated.
	SetBatchDuration(ctx context.Context, caller domain.Address, seconds int64) error
	SetSolverWindow(ctx context.Context, caller domain.Address, seconds int64) error
	SetMinVolumeForEarlyClose(ctx context.Context, caller domain.Address, volume int64) error
	Pause(ctx context.Context, caller domain.Address) error
	Unpause(ctx context.Context, caller domain.Address) error
}

// --- Registry ---

// RegistryService owns solver stake and reputation and answers the single
// eligibility question the auction engine asks.
type RegistryService interface {
	RegisterSolver(ctx context.Context, operator domain.Address, stakeAmount int64) (*domain.Solver, error)
	UnregisterSolver(ctx context.Context, operator domain.Address) error
	IncreaseStake(ctx context.Context, operator domain.Address, amount int64) error
	DecreaseStake(ctx context.Context, operator domain.Address, amount int64) error

	// UpdateReputation and Slash are callable only by the batch processor.
	UpdateReputation(ctx context.Context, caller, solver domain.Address, delta int64, userSurplus int64) error
	Slash(ctx context.Context, caller, solver domain.Address, reason string) error

	IsSolverActive(ctx context.Context, solver domain.Address) bool
	GetSolver(ctx context.Context, solver domain.Address) (*domain.Solver, error)
	GetEffectiveReputation(ctx context.Context, solver domain.Address) (int64, error)
	GetSlashHistoryLength(ctx context.Context) int

	// Admin operations, owner-gated.
	SetBatchProcessor(ctx context.Context, caller, processor domain.Address) error
	SetMinStake(ctx context.Context, caller domain.Address, minStake int64) error
	SetSlashPercentage(ctx context.Context, caller domain.Address, slashBps int64) error
	SetMinReputation(ctx context.Context, caller domain.Address, minReputation int64) error
	SetReputationDecay(ctx context.Context, caller domain.Address, decayPerDay int64) error
	ReactivateSolver(ctx context.Context, caller, solver domain.Address) error
}

// SolverEligibility is the narrow registry view the auction engine consumes.
type SolverEligibility interface {
	IsSolverActive(ctx context.Context, solver domain.Address) bool
}

// --- Operator console ---

// AuthService authenticates the protocol operator for admin endpoints.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, int64, error) // token, expiry unix, error
}

// HashService hashes and verifies operator passwords.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// TokenService issues and validates operator JWTs.
type TokenService interface {
	Generate(subject string) (string, int64, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed operator JWT claims.
type TokenClaims struct {
	Subject string
}
