package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"

	"github.com/stretchr/testify/require"
)

// Actors shared across the service tests.
const (
	owner        = domain.Address("0xOwner")
	custody      = domain.Address("0xCustody")
	feeCollector = domain.Address("0xFeeCollector")
	processor    = domain.Address("0xBatchProcessor")
	lp1          = domain.Address("0xLP1")
	ammContract  = domain.Address("0xConstantProductAMM")
	trader1      = domain.Address("0xTrader1")
	solver1      = domain.Address("0xSolver1")
	solver2      = domain.Address("0xSolver2")
	usdc         = domain.Address("0xUSDC")
	dai          = domain.Address("0xDAI")
)

// fakeClock is a manually advanced ports.Clock. Nothing in the services runs
// on timers, so tests drive every time-based transition through it.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr), "expected *apperror.AppError, got %T: %v", err, err)
	require.Equal(t, code, appErr.Code)
}
