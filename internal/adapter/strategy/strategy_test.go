package strategy

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/adapter/token"
	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/internal/service"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	owner        = domain.Address("0xOwner")
	custody      = domain.Address("0xCustody")
	feeCollector = domain.Address("0xFeeCollector")
	processor    = domain.Address("0xProcessor")
	lp1          = domain.Address("0xLiquidityProvider1")
	trader1      = domain.Address("0xTrader1")
	solver1      = domain.Address("0xSolver1")
	ammAddr      = domain.Address("0xConstantProductAMM")
	usdc         = domain.Address("0xUSDC")
	dai          = domain.Address("0xDAI")
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

type swapEnv struct {
	bank   *token.MemoryBank
	ledger *service.LedgerServiceImpl
	amm    *ConstantProductAMM
	hash   domain.Hash
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
}

// newSwapEnv ships a 1000/1000 USDC-DAI strategy and funds the real wallets
// settlement draws on: the trader's USDC (with a custody allowance) and the
// LP's inventory, held and authorized so the commitment check passes.
func newSwapEnv(t *testing.T) *swapEnv {
	t.Helper()
	ctx := context.Background()

	bank := token.NewMemoryBank()
	bank.Mint(usdc, trader1, 1_000_000000)
	bank.Approve(usdc, trader1, custody, 1_000_000000)
	bank.Mint(usdc, lp1, 1_000_000000)
	bank.Mint(dai, lp1, 1_000_000000)
	bank.Approve(usdc, lp1, custody, 1_000_000000)
	bank.Approve(dai, lp1, custody, 1_000_000000)

	ledger := service.NewLedgerService(service.LedgerConfig{
		Owner:           owner,
		Custody:         custody,
		FeeCollector:    feeCollector,
		BatchProcessor:  processor,
		ProtocolFeeBps:  30,
		WithdrawalDelay: 24 * time.Hour,
	}, bank, service.NewDigestService(), &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		service.NewZerologSink(zerolog.Nop()), zerolog.Nop())

	require.NoError(t, ledger.SetStrategyApproval(ctx, owner, ammAddr, true))

	s, err := ledger.Ship(ctx, lp1, ports.ShipRequest{
		StrategyContract: ammAddr,
		StrategyData:     []byte(`{"curve":"xy=k","salt":"s1"}`),
		Tokens:           []domain.Address{usdc, dai},
		Amounts:          []int64{1_000_000000, 1_000_000000},
	})
	require.NoError(t, err)

	amm := NewConstantProductAMM(ammAddr, ledger)
	return &swapEnv{bank: bank, ledger: ledger, amm: amm, hash: s.StrategyHash}
}

func TestConstantProductAMM_Quote(t *testing.T) {
	env := newSwapEnv(t)
	ctx := context.Background()

	t.Run("prices against the invariant", func(t *testing.T) {
		out, err := env.amm.Quote(ctx, env.hash, usdc, dai, 100_000000)
		require.NoError(t, err)
		// 1000 * 100 / 1100, floored
		assert.Equal(t, int64(90_909090), out)
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		_, err := env.amm.Quote(ctx, env.hash, usdc, dai, 0)
		assertCode(t, err, "VAL_001")
	})

	t.Run("rejects identical tokens", func(t *testing.T) {
		_, err := env.amm.Quote(ctx, env.hash, usdc, usdc, 100)
		assertCode(t, err, "VAL_006")
	})

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := env.amm.Quote(ctx, domain.Hash("0xdeadbeef"), usdc, dai, 100)
		assertCode(t, err, "RES_003")
	})
}

func TestConstantProductAMM_ExecuteSwap(t *testing.T) {
	ctx := context.Background()

	t.Run("settles payment and delivery", func(t *testing.T) {
		env := newSwapEnv(t)

		out, err := env.amm.ExecuteSwap(ctx, ports.StrategySwapRequest{
			StrategyHash: env.hash,
			TokenIn:      usdc,
			TokenOut:     dai,
			AmountIn:     100_000000,
			MinAmountOut: 90_000000,
			Trader:       trader1,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(90_909090), out)

		// Trader paid USDC and received DAI.
		got, _ := env.bank.BalanceOf(ctx, usdc, trader1)
		assert.Equal(t, int64(900_000000), got)
		got, _ = env.bank.BalanceOf(ctx, dai, trader1)
		assert.Equal(t, int64(90_909090), got)

		// Virtual reserves moved: USDC in (net of the 30 bps fee), DAI out.
		assert.Equal(t, int64(1_099_700000), env.ledger.BalanceOf(ctx, lp1, env.hash, usdc))
		assert.Equal(t, int64(909_090910), env.ledger.BalanceOf(ctx, lp1, env.hash, dai))

		// The protocol fee landed with the collector.
		got, _ = env.bank.BalanceOf(ctx, usdc, feeCollector)
		assert.Equal(t, int64(300000), got)
	})

	t.Run("failed delivery refunds the payment in full", func(t *testing.T) {
		env := newSwapEnv(t)

		// Drain the LP's DAI wallet so the delivery leg cannot settle.
		require.NoError(t, env.bank.Transfer(ctx, dai, lp1, domain.Address("0xElsewhere"), 1_000_000000))

		_, err := env.amm.ExecuteSwap(ctx, ports.StrategySwapRequest{
			StrategyHash: env.hash,
			TokenIn:      usdc,
			TokenOut:     dai,
			AmountIn:     100_000000,
			MinAmountOut: 90_000000,
			Trader:       trader1,
		})
		assertCode(t, err, "RES_004")

		// The trader got every cent back, fee included.
		got, _ := env.bank.BalanceOf(ctx, usdc, trader1)
		assert.Equal(t, int64(1_000_000000), got)
		got, _ = env.bank.BalanceOf(ctx, usdc, feeCollector)
		assert.Zero(t, got)

		// Virtual reserves are untouched.
		assert.Equal(t, int64(1_000_000000), env.ledger.BalanceOf(ctx, lp1, env.hash, usdc))
		assert.Equal(t, int64(1_000_000000), env.ledger.BalanceOf(ctx, lp1, env.hash, dai))
	})

	t.Run("slippage bound aborts before any movement", func(t *testing.T) {
		env := newSwapEnv(t)

		_, err := env.amm.ExecuteSwap(ctx, ports.StrategySwapRequest{
			StrategyHash: env.hash,
			TokenIn:      usdc,
			TokenOut:     dai,
			AmountIn:     100_000000,
			MinAmountOut: 95_000000,
			Trader:       trader1,
		})
		assertCode(t, err, "VAL_000")

		got, _ := env.bank.BalanceOf(ctx, usdc, trader1)
		assert.Equal(t, int64(1_000_000000), got)
		assert.Equal(t, int64(1_000_000000), env.ledger.BalanceOf(ctx, lp1, env.hash, usdc))
	})
}

func TestSettlementExecutor_Execute(t *testing.T) {
	ctx := context.Background()

	newExecutor := func(env *swapEnv) *SettlementExecutor {
		ex := NewSettlementExecutor(env.ledger, zerolog.Nop())
		ex.Register(env.amm)
		return ex
	}

	fillsJSON := func(t *testing.T, fills []Fill) []byte {
		t.Helper()
		data, err := json.Marshal(fills)
		require.NoError(t, err)
		return data
	}

	intentID := uuid.New()
	batch := func() *domain.Batch {
		return &domain.Batch{ID: 1, Status: domain.BatchStatusExecuting, IntentIDs: []uuid.UUID{intentID}}
	}

	t.Run("settles every fill", func(t *testing.T) {
		env := newSwapEnv(t)
		ex := newExecutor(env)

		data := fillsJSON(t, []Fill{{
			IntentID:     intentID,
			StrategyHash: env.hash,
			Trader:       trader1,
			TokenIn:      usdc,
			TokenOut:     dai,
			AmountIn:     100_000000,
			MinAmountOut: 90_000000,
		}})

		require.NoError(t, ex.Execute(ctx, solver1, batch(), data))

		got, _ := env.bank.BalanceOf(ctx, dai, trader1)
		assert.Equal(t, int64(90_909090), got)
	})

	t.Run("rejects malformed execution data", func(t *testing.T) {
		env := newSwapEnv(t)
		ex := newExecutor(env)
		assertCode(t, ex.Execute(ctx, solver1, batch(), []byte("not json")), "VAL_000")
	})

	t.Run("rejects fills outside the batch", func(t *testing.T) {
		env := newSwapEnv(t)
		ex := newExecutor(env)
		data := fillsJSON(t, []Fill{{IntentID: uuid.New(), StrategyHash: env.hash, Trader: trader1,
			TokenIn: usdc, TokenOut: dai, AmountIn: 1_000000, MinAmountOut: 0}})
		assertCode(t, ex.Execute(ctx, solver1, batch(), data), "VAL_000")
	})

	t.Run("rejects double fills", func(t *testing.T) {
		env := newSwapEnv(t)
		ex := newExecutor(env)
		fill := Fill{IntentID: intentID, StrategyHash: env.hash, Trader: trader1,
			TokenIn: usdc, TokenOut: dai, AmountIn: 1_000000, MinAmountOut: 0}
		data := fillsJSON(t, []Fill{fill, fill})
		assertCode(t, ex.Execute(ctx, solver1, batch(), data), "VAL_000")
	})

	t.Run("failing fill aborts settlement", func(t *testing.T) {
		env := newSwapEnv(t)
		ex := newExecutor(env)
		data := fillsJSON(t, []Fill{{
			IntentID:     intentID,
			StrategyHash: env.hash,
			Trader:       trader1,
			TokenIn:      usdc,
			TokenOut:     dai,
			AmountIn:     100_000000,
			MinAmountOut: 99_000000, // cannot be met at current reserves
		}})
		assertCode(t, ex.Execute(ctx, solver1, batch(), data), "VAL_000")
	})

	t.Run("a late failing fill unwinds the earlier ones", func(t *testing.T) {
		env := newSwapEnv(t)
		ex := newExecutor(env)
		secondID := uuid.New()
		b := &domain.Batch{ID: 1, Status: domain.BatchStatusExecuting, IntentIDs: []uuid.UUID{intentID, secondID}}

		data := fillsJSON(t, []Fill{
			{
				IntentID:     intentID,
				StrategyHash: env.hash,
				Trader:       trader1,
				TokenIn:      usdc,
				TokenOut:     dai,
				AmountIn:     100_000000,
				MinAmountOut: 90_000000,
			},
			{
				IntentID:     secondID,
				StrategyHash: env.hash,
				Trader:       trader1,
				TokenIn:      usdc,
				TokenOut:     dai,
				AmountIn:     100_000000,
				MinAmountOut: 99_000000, // unmeetable once the first fill moves the price
			},
		})
		assertCode(t, ex.Execute(ctx, solver1, b, data), "VAL_000")

		// The first fill was rolled back. The trader is whole and the
		// reserves sit at their shipped levels.
		got, _ := env.bank.BalanceOf(ctx, usdc, trader1)
		assert.Equal(t, int64(1_000_000000), got)
		got, _ = env.bank.BalanceOf(ctx, dai, trader1)
		assert.Zero(t, got)
		got, _ = env.bank.BalanceOf(ctx, usdc, feeCollector)
		assert.Zero(t, got)
		assert.Equal(t, int64(1_000_000000), env.ledger.BalanceOf(ctx, lp1, env.hash, usdc))
		assert.Equal(t, int64(1_000_000000), env.ledger.BalanceOf(ctx, lp1, env.hash, dai))
	})
}
