package domain

import "time"

// Address identifies a protocol actor: an LP, a solver operator, a strategy
// contract, or the protocol owner. Hex-encoded by convention.
type Address string

// Hash is a 32-byte Keccak-256 digest, hex-encoded with 0x prefix.
type Hash string

// VirtualBalance is notional capital an LP has committed to one strategy
// instance. No tokens move when it is created; real movement happens only
// through Pull/Push at settlement.
type VirtualBalance struct {
	LP           Address   `json:"lp"`
	StrategyHash Hash      `json:"strategy_hash"`
	Token        Address   `json:"token"`
	Amount       int64     `json:"amount"` // In the token's smallest unit
	LastUpdated  time.Time `json:"last_updated"`
	IsActive     bool      `json:"is_active"`
}

// Strategy is one shipped pool configuration, keyed by its strategy hash.
// The hash binds (lp, strategyContract, strategyData); a salt inside
// strategyData lets identical configurations coexist.
type Strategy struct {
	StrategyContract Address   `json:"strategy_contract"`
	StrategyHash     Hash      `json:"strategy_hash"`
	LP               Address   `json:"lp"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	TotalVolume      int64     `json:"total_volume"`
	TotalFees        int64     `json:"total_fees"`
}

// WithdrawalRequest queues the removal of a strategy's virtual balances.
// The mandatory delay lets an in-flight batch settle before capital leaves.
// One-shot: once Executed flips true it can never fire again.
type WithdrawalRequest struct {
	LP           Address   `json:"lp"`
	StrategyHash Hash      `json:"strategy_hash"`
	Tokens       []Address `json:"tokens"`
	RequestedAt  time.Time `json:"requested_at"`
	Executed     bool      `json:"executed"`
}

// FeeDenominator is the basis-point denominator for all fee and percentage
// fields in the protocol.
const FeeDenominator = 10_000

// ProtocolFee computes the fee taken from amount at feeBps basis points.
// Amounts below the basis-point resolution floor to zero fee. The quotient
// and remainder are scaled separately so the multiply cannot overflow int64
// regardless of amount.
func ProtocolFee(amount int64, feeBps int64) int64 {
	q, r := amount/FeeDenominator, amount%FeeDenominator
	return q*feeBps + r*feeBps/FeeDenominator
}
