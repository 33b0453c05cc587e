package integration

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	redisStore "github.com/Player1Taco/Liquid-Flow/internal/adapter/storage/redis"
	"github.com/Player1Taco/Liquid-Flow/internal/adapter/strategy"
	"github.com/Player1Taco/Liquid-Flow/internal/adapter/token"
	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/internal/service"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner        = domain.Address("0xOwner")
	custody      = domain.Address("0xCustody")
	feeCollector = domain.Address("0xFeeCollector")
	treasury     = domain.Address("0xTreasury")
	processor    = domain.Address("0xBatchProcessor")
	lp1          = domain.Address("0xLiquidityProvider1")
	trader1      = domain.Address("0xTrader1")
	solver1      = domain.Address("0xSolver1")
	ammAddr      = domain.Address("0xConstantProductAMM")
	usdc         = domain.Address("0xUSDC")
	dai          = domain.Address("0xDAI")
	stakeToken   = domain.Address("0xLQF")

	minStake = int64(1_000_000000)
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// protocol wires the three components against the in-memory token bank, the
// reference constant-product strategy, and a redis-backed commit guard.
type protocol struct {
	bank     *token.MemoryBank
	clock    *fakeClock
	digest   ports.DigestService
	ledger   *service.LedgerServiceImpl
	registry *service.RegistryServiceImpl
	auction  *service.AuctionServiceImpl
	amm      *strategy.ConstantProductAMM
}

func newProtocol(t *testing.T) *protocol {
	t.Helper()
	log := zerolog.Nop()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	sink := service.NewZerologSink(log)
	digest := service.NewDigestService()

	bank := token.NewMemoryBank()
	bank.Mint(usdc, trader1, 10_000_000000)
	bank.Approve(usdc, trader1, custody, 10_000_000000)
	bank.Mint(dai, lp1, 10_000_000000)
	bank.Mint(usdc, lp1, 10_000_000000)
	bank.Approve(dai, lp1, custody, 10_000_000000)
	bank.Approve(usdc, lp1, custody, 10_000_000000)
	bank.Mint(stakeToken, solver1, 10_000_000000)
	bank.Approve(stakeToken, solver1, custody, 10_000_000000)

	ledger := service.NewLedgerService(service.LedgerConfig{
		Owner:           owner,
		Custody:         custody,
		FeeCollector:    feeCollector,
		BatchProcessor:  processor,
		ProtocolFeeBps:  30,
		WithdrawalDelay: 24 * time.Hour,
	}, bank, digest, clock, sink, log)
	require.NoError(t, ledger.SetStrategyApproval(context.Background(), owner, ammAddr, true))

	registry := service.NewRegistryService(service.RegistryConfig{
		Owner:                  owner,
		Custody:                custody,
		Treasury:               treasury,
		BatchProcessor:         processor,
		StakeToken:             stakeToken,
		MinStake:               minStake,
		InitialReputation:      100,
		MinReputation:          50,
		SlashBps:               1000,
		SlashReputationPenalty: 20,
		DecayPerDay:            1,
	}, bank, clock, sink, log)

	executor := strategy.NewSettlementExecutor(ledger, log)
	amm := strategy.NewConstantProductAMM(ammAddr, ledger)
	executor.Register(amm)

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	auction := service.NewAuctionService(service.AuctionConfig{
		Owner:                  owner,
		BatchProcessor:         processor,
		BatchDuration:          60 * time.Second,
		SolverWindow:           10 * time.Second,
		MinVolumeForEarlyClose: 10_000_000000,
		CancelCooldown:         5 * time.Second,
		CommitTTL:              time.Hour,
		ReputationReward:       10,
	}, registry, registry, executor, redisStore.NewCommitStore(client), digest, clock, sink, log)

	return &protocol{
		bank:     bank,
		clock:    clock,
		digest:   digest,
		ledger:   ledger,
		registry: registry,
		auction:  auction,
		amm:      amm,
	}
}

func (p *protocol) ship(t *testing.T, amountUSDC, amountDAI int64) domain.Hash {
	t.Helper()
	s, err := p.ledger.Ship(context.Background(), lp1, ports.ShipRequest{
		StrategyContract: ammAddr,
		StrategyData:     []byte(`{"curve":"xy=k","salt":"s1"}`),
		Tokens:           []domain.Address{usdc, dai},
		Amounts:          []int64{amountUSDC, amountDAI},
	})
	require.NoError(t, err)
	return s.StrategyHash
}

func (p *protocol) fills(t *testing.T, hash domain.Hash, intent *domain.SwapIntent) []byte {
	t.Helper()
	data, err := json.Marshal([]strategy.Fill{{
		IntentID:     intent.IntentID,
		StrategyHash: hash,
		Trader:       intent.User,
		TokenIn:      intent.TokenIn,
		TokenOut:     intent.TokenOut,
		AmountIn:     intent.AmountIn,
		MinAmountOut: intent.MinAmountOut,
	}})
	require.NoError(t, err)
	return data
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

// The reference end-to-end flow: capital ships in, an intent collects into
// the batch, a solver wins it, settlement routes through the AMM, and the
// pipeline is ready for the next round.
func TestFullAuctionLifecycle(t *testing.T) {
	p := newProtocol(t)
	ctx := context.Background()

	hash := p.ship(t, 1_000_000000, 1_000_000000)

	_, err := p.registry.RegisterSolver(ctx, solver1, minStake)
	require.NoError(t, err)

	intent, err := p.auction.SubmitIntent(ctx, trader1, ports.IntentRequest{
		TokenIn:      usdc,
		TokenOut:     dai,
		AmountIn:     100_000000,
		MinAmountOut: 90_000000,
		MaxFee:       50,
		Deadline:     p.clock.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	p.clock.Advance(60 * time.Second)
	closed, err := p.auction.CloseBatch(ctx, processor)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchStatusSolving, closed.Status)

	// A fresh batch opened behind the closed one.
	assert.Equal(t, uint64(2), p.auction.GetCurrentBatch(ctx).ID)

	solution, err := p.auction.SubmitSolution(ctx, solver1, ports.SolutionRequest{
		BatchID:          closed.ID,
		TotalUserSurplus: 909090,
		SolverBid:        100000,
		ExecutionData:    p.fills(t, hash, intent),
	})
	require.NoError(t, err)

	p.clock.Advance(10 * time.Second)
	settled, err := p.auction.ExecuteBatch(ctx, processor, solution.SolutionHash)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchStatusSettled, settled.Status)
	assert.Equal(t, solver1, settled.WinningSolver)

	// Trader paid 100 USDC and received the invariant output.
	got, _ := p.bank.BalanceOf(ctx, dai, trader1)
	assert.Equal(t, int64(90_909090), got)

	// Virtual reserves reflect the swap net of the 30 bps protocol fee.
	assert.Equal(t, int64(1_099_700000), p.ledger.BalanceOf(ctx, lp1, hash, usdc))
	assert.Equal(t, int64(909_090910), p.ledger.BalanceOf(ctx, lp1, hash, dai))

	// The winner was credited in the registry.
	solver, err := p.registry.GetSolver(ctx, solver1)
	require.NoError(t, err)
	assert.Equal(t, int64(110), solver.ReputationScore)
	assert.Equal(t, int64(1), solver.TotalBatchesSolved)
	assert.Equal(t, int64(909090), solver.TotalUserSurplus)

	// The settled batch is final.
	_, err = p.auction.ExecuteBatch(ctx, processor, solution.SolutionHash)
	assertCode(t, err, "STATE_002")
}

func TestCommitRevealThroughRedisGuard(t *testing.T) {
	p := newProtocol(t)
	ctx := context.Background()

	params := domain.IntentParams{
		TokenIn:      usdc,
		TokenOut:     dai,
		AmountIn:     50_000000,
		MinAmountOut: 45_000000,
		MaxFee:       50,
		Deadline:     p.clock.Now().Add(time.Hour).Unix(),
		Salt:         "bafflingly-random",
	}
	commitHash := p.digest.CommitHash(params)

	committed, err := p.auction.SubmitCommittedIntent(ctx, trader1, commitHash)
	require.NoError(t, err)
	assert.False(t, committed.Revealed)

	t.Run("tampered reveal is rejected", func(t *testing.T) {
		tampered := params
		tampered.MinAmountOut++
		_, err := p.auction.RevealIntent(ctx, trader1, committed.IntentID, tampered)
		assertCode(t, err, "VAL_004")
	})

	t.Run("exact preimage reveals", func(t *testing.T) {
		revealed, err := p.auction.RevealIntent(ctx, trader1, committed.IntentID, params)
		require.NoError(t, err)
		assert.True(t, revealed.Revealed)
		assert.Equal(t, int64(50_000000), revealed.AmountIn)
	})

	t.Run("commit hash is single use protocol wide", func(t *testing.T) {
		_, err := p.auction.SubmitCommittedIntent(ctx, trader1, commitHash)
		assertCode(t, err, "VAL_005")
	})
}

func TestSlashAtMinimumStakeDeactivates(t *testing.T) {
	p := newProtocol(t)
	ctx := context.Background()

	_, err := p.registry.RegisterSolver(ctx, solver1, minStake)
	require.NoError(t, err)
	require.True(t, p.registry.IsSolverActive(ctx, solver1))

	require.NoError(t, p.registry.Slash(ctx, processor, solver1, "invalid settlement"))

	solver, err := p.registry.GetSolver(ctx, solver1)
	require.NoError(t, err)
	assert.Equal(t, minStake-minStake/10, solver.StakedAmount)
	assert.Equal(t, int64(80), solver.ReputationScore)
	assert.False(t, solver.IsActive)
	assert.False(t, p.registry.IsSolverActive(ctx, solver1))

	// Slashed stake landed with the treasury.
	got, _ := p.bank.BalanceOf(ctx, stakeToken, treasury)
	assert.Equal(t, minStake/10, got)

	// A deactivated solver cannot compete.
	p.ship(t, 1_000_000000, 1_000_000000)
	_, err = p.auction.SubmitIntent(ctx, trader1, ports.IntentRequest{
		TokenIn:      usdc,
		TokenOut:     dai,
		AmountIn:     10_000000,
		MinAmountOut: 9_000000,
		Deadline:     p.clock.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)
	p.clock.Advance(60 * time.Second)
	closed, err := p.auction.CloseBatch(ctx, processor)
	require.NoError(t, err)

	_, err = p.auction.SubmitSolution(ctx, solver1, ports.SolutionRequest{
		BatchID:       closed.ID,
		ExecutionData: []byte(`[]`),
	})
	assertCode(t, err, "AUTHZ_006")

	// Until stake is restored and the owner reactivates.
	require.NoError(t, p.registry.IncreaseStake(ctx, solver1, minStake/10))
	require.NoError(t, p.registry.ReactivateSolver(ctx, owner, solver1))
	assert.True(t, p.registry.IsSolverActive(ctx, solver1))

	// Reactivation starts the solver over at the registration baseline.
	solver, err = p.registry.GetSolver(ctx, solver1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), solver.ReputationScore)
}

func TestVirtualBalancesNeverGoNegative(t *testing.T) {
	p := newProtocol(t)
	ctx := context.Background()

	hash := p.ship(t, 100_000000, 100_000000)

	// A pull beyond the virtual balance fails and moves nothing.
	err := p.ledger.Pull(ctx, ammAddr, lp1, hash, dai, 100_000001, trader1)
	assertCode(t, err, "RES_001")
	assert.Equal(t, int64(100_000000), p.ledger.BalanceOf(ctx, lp1, hash, dai))
	got, _ := p.bank.BalanceOf(ctx, dai, trader1)
	assert.Zero(t, got)

	// A swap whose output exceeds the reserve is impossible by construction:
	// the invariant quote asymptotically approaches the reserve.
	out, err := p.amm.Quote(ctx, hash, usdc, dai, 1_000_000_000000)
	require.NoError(t, err)
	assert.Less(t, out, int64(100_000000))
}

func TestWithdrawalDelayProtectsInFlightBatches(t *testing.T) {
	p := newProtocol(t)
	ctx := context.Background()

	hash := p.ship(t, 1_000_000000, 1_000_000000)

	_, err := p.ledger.RequestDock(ctx, lp1, hash, nil)
	require.NoError(t, err)

	// Too early.
	err = p.ledger.ExecuteDock(ctx, lp1, hash)
	assertCode(t, err, "TIME_003")

	// Capital keeps trading while the request matures.
	require.NoError(t, p.ledger.Pull(ctx, ammAddr, lp1, hash, dai, 10_000000, trader1))

	p.clock.Advance(24 * time.Hour)
	require.NoError(t, p.ledger.ExecuteDock(ctx, lp1, hash))

	assert.Zero(t, p.ledger.BalanceOf(ctx, lp1, hash, usdc))
	assert.Zero(t, p.ledger.BalanceOf(ctx, lp1, hash, dai))
	assert.False(t, p.ledger.IsStrategyActive(ctx, hash))

	// One-shot: the request cannot fire twice.
	err = p.ledger.ExecuteDock(ctx, lp1, hash)
	assertCode(t, err, "STATE_004")
}

func TestCloseIsDrivenByTimeNotTimers(t *testing.T) {
	p := newProtocol(t)
	ctx := context.Background()

	p.ship(t, 1_000_000000, 1_000_000000)
	_, err := p.auction.SubmitIntent(ctx, trader1, ports.IntentRequest{
		TokenIn:      usdc,
		TokenOut:     dai,
		AmountIn:     10_000000,
		MinAmountOut: 9_000000,
		Deadline:     p.clock.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	// One second short of the boundary.
	p.clock.Advance(59 * time.Second)
	_, err = p.auction.CloseBatch(ctx, processor)
	assertCode(t, err, "TIME_004")

	// At the boundary the same call succeeds; nothing ran in between.
	p.clock.Advance(time.Second)
	closed, err := p.auction.CloseBatch(ctx, processor)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchStatusSolving, closed.Status)
}
