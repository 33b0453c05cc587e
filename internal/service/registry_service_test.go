package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	stakeToken = domain.Address("0xLQF")
	treasury   = domain.Address("0xTreasury")

	minStake = int64(1000_000000)
)

type registryDeps struct {
	token  *mocks.MockTokenTransfer
	events *mocks.MockEventSink
	clock  *fakeClock
	svc    *RegistryServiceImpl
}

func setupRegistry(t *testing.T) *registryDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := &registryDeps{
		token:  mocks.NewMockTokenTransfer(ctrl),
		events: mocks.NewMockEventSink(ctrl),
		clock:  newFakeClock(),
	}
	d.events.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	d.svc = NewRegistryService(
		RegistryConfig{
			Owner:                  owner,
			Custody:                custody,
			Treasury:               treasury,
			BatchProcessor:         processor,
			StakeToken:             stakeToken,
			MinStake:               minStake,
			InitialReputation:      100,
			MinReputation:          50,
			SlashBps:               1000, // 10%
			SlashReputationPenalty: 20,
			DecayPerDay:            1,
		},
		d.token,
		d.clock,
		d.events,
		zerolog.Nop(),
	)
	return d
}

func registerFixture(t *testing.T, d *registryDeps, operator domain.Address, stake int64) {
	t.Helper()
	d.token.EXPECT().
		TransferFrom(gomock.Any(), stakeToken, custody, operator, custody, stake).
		Return(nil)
	_, err := d.svc.RegisterSolver(context.Background(), operator, stake)
	require.NoError(t, err)
}

func TestRegistryRegisterSolver(t *testing.T) {
	ctx := context.Background()

	t.Run("stakes and activates at initial reputation", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		rec, err := d.svc.GetSolver(ctx, solver1)
		require.NoError(t, err)
		assert.Equal(t, minStake, rec.StakedAmount)
		assert.Equal(t, int64(100), rec.ReputationScore)
		assert.True(t, rec.IsActive)
		assert.True(t, d.svc.IsSolverActive(ctx, solver1))
	})

	t.Run("duplicate registration", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)
		_, err := d.svc.RegisterSolver(ctx, solver1, minStake)
		assertAppError(t, err, "STATE_006")
	})

	t.Run("stake below minimum", func(t *testing.T) {
		d := setupRegistry(t)
		_, err := d.svc.RegisterSolver(ctx, solver1, minStake-1)
		assertAppError(t, err, "VAL_003")
	})

	t.Run("failed deposit leaves no record", func(t *testing.T) {
		d := setupRegistry(t)
		d.token.EXPECT().
			TransferFrom(gomock.Any(), stakeToken, custody, solver1, custody, minStake).
			Return(errors.New("insufficient allowance"))
		_, err := d.svc.RegisterSolver(ctx, solver1, minStake)
		assertAppError(t, err, "RES_004")
		_, err = d.svc.GetSolver(ctx, solver1)
		assertAppError(t, err, "RES_003")
	})
}

func TestRegistryUnregisterSolver(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds the full stake and deletes the record", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		d.token.EXPECT().
			Transfer(gomock.Any(), stakeToken, custody, solver1, minStake).
			Return(nil)
		require.NoError(t, d.svc.UnregisterSolver(ctx, solver1))

		assert.False(t, d.svc.IsSolverActive(ctx, solver1))
		_, err := d.svc.GetSolver(ctx, solver1)
		assertAppError(t, err, "RES_003")
	})

	t.Run("unknown solver", func(t *testing.T) {
		d := setupRegistry(t)
		assertAppError(t, d.svc.UnregisterSolver(ctx, solver1), "RES_003")
	})
}

func TestRegistryStakeChanges(t *testing.T) {
	ctx := context.Background()

	t.Run("increase deposits", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		d.token.EXPECT().
			TransferFrom(gomock.Any(), stakeToken, custody, solver1, custody, int64(500)).
			Return(nil)
		require.NoError(t, d.svc.IncreaseStake(ctx, solver1, 500))

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.Equal(t, minStake+500, rec.StakedAmount)
	})

	t.Run("decrease withdraws down to the minimum", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake+500)

		d.token.EXPECT().
			Transfer(gomock.Any(), stakeToken, custody, solver1, int64(500)).
			Return(nil)
		require.NoError(t, d.svc.DecreaseStake(ctx, solver1, 500))

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.Equal(t, minStake, rec.StakedAmount)
	})

	t.Run("decrease below the minimum is rejected", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)
		assertAppError(t, d.svc.DecreaseStake(ctx, solver1, 1), "VAL_003")
	})

	t.Run("zero amounts are rejected", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)
		assertAppError(t, d.svc.IncreaseStake(ctx, solver1, 0), "VAL_001")
		assertAppError(t, d.svc.DecreaseStake(ctx, solver1, 0), "VAL_001")
	})
}

func TestRegistryUpdateReputation(t *testing.T) {
	ctx := context.Background()

	t.Run("only the batch processor may update", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)
		assertAppError(t, d.svc.UpdateReputation(ctx, trader1, solver1, 10, 0), "AUTHZ_003")
	})

	t.Run("positive delta counts a solved batch and its surplus", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		require.NoError(t, d.svc.UpdateReputation(ctx, processor, solver1, 10, 420))

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.Equal(t, int64(110), rec.ReputationScore)
		assert.Equal(t, int64(1), rec.TotalBatchesSolved)
		assert.Equal(t, int64(420), rec.TotalUserSurplus)
	})

	t.Run("negative delta does not count a batch and floors at zero", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		require.NoError(t, d.svc.UpdateReputation(ctx, processor, solver1, -500, 0))

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.Zero(t, rec.ReputationScore)
		assert.Zero(t, rec.TotalBatchesSolved)
		assert.False(t, rec.IsActive, "below the reputation floor")
		assert.Equal(t, reasonReputationBelowMinimum, rec.DeactivationReason)
	})

	t.Run("pending decay is applied before the delta", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		d.clock.Advance(10 * 24 * time.Hour) // 10 idle days at 1 point/day
		require.NoError(t, d.svc.UpdateReputation(ctx, processor, solver1, 5, 0))

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.Equal(t, int64(95), rec.ReputationScore) // 100 - 10 + 5
	})
}

func TestRegistryReputationDecay(t *testing.T) {
	ctx := context.Background()

	t.Run("effective reputation decays while stored score is untouched", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		d.clock.Advance(30 * 24 * time.Hour)
		eff, err := d.svc.GetEffectiveReputation(ctx, solver1)
		require.NoError(t, err)
		assert.Equal(t, int64(70), eff)

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.Equal(t, int64(100), rec.ReputationScore)
	})

	t.Run("eligibility uses the decayed score", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		d.clock.Advance(50 * 24 * time.Hour)
		assert.True(t, d.svc.IsSolverActive(ctx, solver1), "exactly at the floor")

		d.clock.Advance(24 * time.Hour)
		assert.False(t, d.svc.IsSolverActive(ctx, solver1), "one day past the floor")
	})
}

func TestRegistrySlash(t *testing.T) {
	ctx := context.Background()

	t.Run("at minimum stake a slash deactivates", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		slashAmount := minStake / 10
		d.token.EXPECT().
			Transfer(gomock.Any(), stakeToken, custody, treasury, slashAmount).
			Return(nil)

		require.NoError(t, d.svc.Slash(ctx, processor, solver1, "invalid solution"))

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.Equal(t, minStake-slashAmount, rec.StakedAmount)
		assert.Equal(t, slashAmount, rec.TotalSlashed)
		assert.Equal(t, int64(80), rec.ReputationScore)
		assert.False(t, rec.IsActive)
		assert.Equal(t, reasonStakeBelowMinimum, rec.DeactivationReason)
		assert.False(t, d.svc.IsSolverActive(ctx, solver1))
		assert.Equal(t, 1, d.svc.GetSlashHistoryLength(ctx))
	})

	t.Run("well-capitalized solver survives a slash", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake*2)

		d.token.EXPECT().
			Transfer(gomock.Any(), stakeToken, custody, treasury, minStake/5).
			Return(nil)
		require.NoError(t, d.svc.Slash(ctx, processor, solver1, "missed deadline"))

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.True(t, rec.IsActive)
		assert.True(t, d.svc.IsSolverActive(ctx, solver1))
	})

	t.Run("failed treasury transfer rolls the slash back", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		d.token.EXPECT().
			Transfer(gomock.Any(), stakeToken, custody, treasury, gomock.Any()).
			Return(errors.New("treasury frozen"))

		assertAppError(t, d.svc.Slash(ctx, processor, solver1, "x"), "RES_004")

		rec, _ := d.svc.GetSolver(ctx, solver1)
		assert.Equal(t, minStake, rec.StakedAmount)
		assert.Zero(t, rec.TotalSlashed)
		assert.Zero(t, d.svc.GetSlashHistoryLength(ctx))
	})

	t.Run("only the batch processor may slash", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)
		assertAppError(t, d.svc.Slash(ctx, trader1, solver1, "x"), "AUTHZ_003")
	})

	t.Run("slash history survives unregistration", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake*2)

		d.token.EXPECT().
			Transfer(gomock.Any(), stakeToken, custody, treasury, minStake/5).
			Return(nil)
		require.NoError(t, d.svc.Slash(ctx, processor, solver1, "x"))

		d.token.EXPECT().
			Transfer(gomock.Any(), stakeToken, custody, solver1, gomock.Any()).
			Return(nil)
		require.NoError(t, d.svc.UnregisterSolver(ctx, solver1))

		assert.Equal(t, 1, d.svc.GetSlashHistoryLength(ctx))
	})
}

func TestRegistryReactivateSolver(t *testing.T) {
	ctx := context.Background()

	t.Run("requires owner and the stake floor", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake)

		d.token.EXPECT().
			Transfer(gomock.Any(), stakeToken, custody, treasury, minStake/10).
			Return(nil)
		require.NoError(t, d.svc.Slash(ctx, processor, solver1, "x"))

		assertAppError(t, d.svc.ReactivateSolver(ctx, trader1, solver1), "AUTHZ_004")
		assertAppError(t, d.svc.ReactivateSolver(ctx, owner, solver1), "VAL_003")

		d.token.EXPECT().
			TransferFrom(gomock.Any(), stakeToken, custody, solver1, custody, minStake).
			Return(nil)
		require.NoError(t, d.svc.IncreaseStake(ctx, solver1, minStake))

		require.NoError(t, d.svc.ReactivateSolver(ctx, owner, solver1))
		assert.True(t, d.svc.IsSolverActive(ctx, solver1))
	})

	t.Run("resets reputation so a zeroed solver can return", func(t *testing.T) {
		d := setupRegistry(t)
		registerFixture(t, d, solver1, minStake*2)

		// Five slashes grind the score to zero while the stake stays
		// above the floor.
		for i := 0; i < 5; i++ {
			d.token.EXPECT().
				Transfer(gomock.Any(), stakeToken, custody, treasury, gomock.Any()).
				Return(nil)
			require.NoError(t, d.svc.Slash(ctx, processor, solver1, "x"))
		}
		require.False(t, d.svc.IsSolverActive(ctx, solver1))

		require.NoError(t, d.svc.ReactivateSolver(ctx, owner, solver1))
		assert.True(t, d.svc.IsSolverActive(ctx, solver1))
		rec, err := d.svc.GetSolver(ctx, solver1)
		require.NoError(t, err)
		assert.Equal(t, int64(100), rec.ReputationScore)
	})
}
