package token

import (
	"context"
	"fmt"
	"sync"

	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
)

type balanceKey struct {
	token domain.Address
	owner domain.Address
}

type allowanceKey struct {
	token   domain.Address
	owner   domain.Address
	spender domain.Address
}

// MemoryBank is an in-process token layer with ERC-20 transfer semantics.
// It backs local deployments and integration tests; production deployments
// swap in an adapter over the real asset layer.
type MemoryBank struct {
	mu         sync.Mutex
	balances   map[balanceKey]int64
	allowances map[allowanceKey]int64
}

// NewMemoryBank creates an empty in-memory token bank.
func NewMemoryBank() *MemoryBank {
	return &MemoryBank{
		balances:   make(map[balanceKey]int64),
		allowances: make(map[allowanceKey]int64),
	}
}

var _ ports.TokenTransfer = (*MemoryBank)(nil)

// Mint credits amount to owner out of thin air. Setup helper, not part of
// the TokenTransfer contract.
func (b *MemoryBank) Mint(token, owner domain.Address, amount int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.balances[balanceKey{token, owner}] += amount
}

// Approve grants spender an allowance over owner's balance. Setup helper.
func (b *MemoryBank) Approve(token, owner, spender domain.Address, amount int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allowances[allowanceKey{token, owner, spender}] = amount
}

func (b *MemoryBank) BalanceOf(_ context.Context, token, owner domain.Address) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.balances[balanceKey{token, owner}], nil
}

func (b *MemoryBank) Allowance(_ context.Context, token, owner, spender domain.Address) (int64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.allowances[allowanceKey{token, owner, spender}], nil
}

func (b *MemoryBank) Transfer(_ context.Context, token, owner, to domain.Address, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("negative transfer amount %d", amount)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.move(token, owner, to, amount)
}

func (b *MemoryBank) TransferFrom(_ context.Context, token, spender, owner, to domain.Address, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("negative transfer amount %d", amount)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	akey := allowanceKey{token, owner, spender}
	if b.allowances[akey] < amount {
		return fmt.Errorf("allowance of %s for %s on %s is below %d",
			owner, spender, token, amount)
	}
	if err := b.move(token, owner, to, amount); err != nil {
		return err
	}
	b.allowances[akey] -= amount
	return nil
}

// move assumes the lock is held.
func (b *MemoryBank) move(token, from, to domain.Address, amount int64) error {
	fkey := balanceKey{token, from}
	if b.balances[fkey] < amount {
		return fmt.Errorf("balance of %s on %s is below %d", from, token, amount)
	}
	b.balances[fkey] -= amount
	b.balances[balanceKey{token, to}] += amount
	return nil
}
