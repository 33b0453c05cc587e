package domain

import (
	"time"

	"github.com/google/uuid"
)

// MEVPreference expresses a user's front-running tolerance, recorded on the
// intent for solvers to honor.
type MEVPreference string

const (
	MEVPrefNone    MEVPreference = "NONE"
	MEVPrefPrivate MEVPreference = "PRIVATE"
	MEVPrefStrict  MEVPreference = "STRICT"
)

// SwapIntent is a user's declared desire to swap, collected into a batch.
// A plain intent is revealed on submission; a committed intent stores only
// CommitHash until RevealIntent supplies the preimage.
type SwapIntent struct {
	IntentID         uuid.UUID     `json:"intent_id"`
	BatchID          uint64        `json:"batch_id"`
	User             Address       `json:"user"`
	TokenIn          Address       `json:"token_in"`
	TokenOut         Address       `json:"token_out"`
	AmountIn         int64         `json:"amount_in"`
	MinAmountOut     int64         `json:"min_amount_out"`
	MaxFee           int64         `json:"max_fee"` // Basis points
	MEVPref          MEVPreference `json:"mev_pref"`
	AllowPartialFill bool          `json:"allow_partial_fill"`
	Deadline         int64         `json:"deadline"` // Unix seconds
	CommitHash       Hash          `json:"commit_hash,omitempty"`
	Revealed         bool          `json:"revealed"`
	Cancelled        bool          `json:"cancelled"`
	SubmittedAt      time.Time     `json:"submitted_at"`
}

// IntentParams is the preimage of a commitment: the exact fields a committed
// user must reveal, plus the salt that blinds the commitment.
type IntentParams struct {
	TokenIn          Address `json:"token_in"`
	TokenOut         Address `json:"token_out"`
	AmountIn         int64   `json:"amount_in"`
	MinAmountOut     int64   `json:"min_amount_out"`
	MaxFee           int64   `json:"max_fee"`
	AllowPartialFill bool    `json:"allow_partial_fill"`
	Deadline         int64   `json:"deadline"`
	Salt             string  `json:"salt"`
}
