package strategy

import (
	"context"
	"fmt"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"

	"github.com/holiman/uint256"
)

// ConstantProductAMM prices swaps with the x*y=k invariant over a strategy's
// virtual balances. It never holds tokens itself; settlement happens through
// the ledger's Pull and Push.
type ConstantProductAMM struct {
	addr   domain.Address
	ledger ports.LedgerService
}

// NewConstantProductAMM creates the AMM contract at the given address.
func NewConstantProductAMM(addr domain.Address, ledger ports.LedgerService) *ConstantProductAMM {
	return &ConstantProductAMM{addr: addr, ledger: ledger}
}

var _ ports.StrategyContract = (*ConstantProductAMM)(nil)

// Address returns the contract address the ledger authorizes.
func (a *ConstantProductAMM) Address() domain.Address {
	return a.addr
}

// Quote returns the output amount for swapping amountIn against the strategy's
// current reserves. Reserves are read from the ledger, not held locally.
func (a *ConstantProductAMM) Quote(ctx context.Context, strategyHash domain.Hash, tokenIn, tokenOut domain.Address, amountIn int64) (int64, error) {
	if amountIn <= 0 {
		return 0, apperror.ErrZeroAmount()
	}
	if tokenIn == tokenOut {
		return 0, apperror.ErrSameToken()
	}

	s, err := a.ledger.GetStrategy(ctx, strategyHash)
	if err != nil {
		return 0, err
	}
	if !s.IsActive {
		return 0, apperror.ErrStrategyRetired()
	}

	reserveIn := a.ledger.BalanceOf(ctx, s.LP, strategyHash, tokenIn)
	reserveOut := a.ledger.BalanceOf(ctx, s.LP, strategyHash, tokenOut)
	if reserveIn <= 0 || reserveOut <= 0 {
		return 0, apperror.ErrInsufficientVirtualBalance()
	}

	// out = reserveOut * amountIn / (reserveIn + amountIn), computed in
	// 256-bit space so the product cannot overflow.
	num := new(uint256.Int).Mul(
		uint256.NewInt(uint64(reserveOut)),
		uint256.NewInt(uint64(amountIn)),
	)
	den := new(uint256.Int).Add(
		uint256.NewInt(uint64(reserveIn)),
		uint256.NewInt(uint64(amountIn)),
	)
	out := new(uint256.Int).Div(num, den)

	return int64(out.Uint64()), nil
}

// ExecuteSwap realizes one fill: the trader pays TokenIn through Push and
// receives TokenOut through Pull. The quote is taken against pre-swap
// reserves so the fill cannot price itself.
func (a *ConstantProductAMM) ExecuteSwap(ctx context.Context, req ports.StrategySwapRequest) (int64, error) {
	s, err := a.ledger.GetStrategy(ctx, req.StrategyHash)
	if err != nil {
		return 0, err
	}

	out, err := a.Quote(ctx, req.StrategyHash, req.TokenIn, req.TokenOut, req.AmountIn)
	if err != nil {
		return 0, err
	}
	if out < req.MinAmountOut {
		return 0, apperror.Validation("swap output below the trader's minimum")
	}

	// Collect payment first. A fee on the incoming side is the ledger's
	// business, not the pool's.
	if _, err := a.ledger.Push(ctx, a.addr, s.LP, req.StrategyHash, req.TokenIn, req.AmountIn, req.Trader); err != nil {
		return 0, err
	}
	if err := a.ledger.Pull(ctx, a.addr, s.LP, req.StrategyHash, req.TokenOut, out, req.Trader); err != nil {
		// The trader paid but cannot be delivered to; give the payment back.
		if revErr := a.ledger.RevertPush(ctx, a.addr, s.LP, req.StrategyHash, req.TokenIn, req.AmountIn, req.Trader); revErr != nil {
			return 0, fmt.Errorf("refund payment after failed delivery: %w (delivery: %w)", revErr, err)
		}
		return 0, err
	}
	return out, nil
}

// RevertSwap undoes a completed swap: the delivered TokenOut returns from the
// trader to the pool and the TokenIn payment, fee included, goes back to the
// trader.
func (a *ConstantProductAMM) RevertSwap(ctx context.Context, req ports.StrategySwapRequest, amountOut int64) error {
	s, err := a.ledger.GetStrategy(ctx, req.StrategyHash)
	if err != nil {
		return err
	}
	if err := a.ledger.RevertPull(ctx, a.addr, s.LP, req.StrategyHash, req.TokenOut, amountOut, req.Trader); err != nil {
		return err
	}
	return a.ledger.RevertPush(ctx, a.addr, s.LP, req.StrategyHash, req.TokenIn, req.AmountIn, req.Trader)
}
