package dto

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// --- Ledger ---

// ShipRequest is the request body for allocating capital to a strategy.
// StrategyData is base64 in transit.
type ShipRequest struct {
	LP               string   `json:"lp" binding:"required,addr"`
	StrategyContract string   `json:"strategy_contract" binding:"required,addr"`
	StrategyData     []byte   `json:"strategy_data" binding:"required"`
	Tokens           []string `json:"tokens" binding:"required,dive,addr"`
	Amounts          []int64  `json:"amounts" binding:"required"`
}

// DockRequest is the request body for requesting a withdrawal. Tokens may be
// empty to dock every token of the strategy.
type DockRequest struct {
	LP     string   `json:"lp" binding:"required,addr"`
	Tokens []string `json:"tokens" binding:"omitempty,dive,addr"`
}

// ExecuteDockRequest is the request body for executing a matured withdrawal.
type ExecuteDockRequest struct {
	LP string `json:"lp" binding:"required,addr"`
}

// EmergencyDockRequest is the request body for the immediate exit path.
type EmergencyDockRequest struct {
	Caller string `json:"caller" binding:"required,addr"`
}

// --- Auction ---

// SubmitIntentRequest is the request body for a plain swap intent.
type SubmitIntentRequest struct {
	User             string `json:"user" binding:"required,addr"`
	TokenIn          string `json:"token_in" binding:"required,addr"`
	TokenOut         string `json:"token_out" binding:"required,addr"`
	AmountIn         int64  `json:"amount_in" binding:"required,gt=0"`
	MinAmountOut     int64  `json:"min_amount_out" binding:"gte=0"`
	MaxFee           int64  `json:"max_fee" binding:"gte=0"` // Basis points
	MEVPref          string `json:"mev_pref" binding:"omitempty,oneof=NONE PRIVATE STRICT"`
	AllowPartialFill bool   `json:"allow_partial_fill"`
	Deadline         int64  `json:"deadline" binding:"required,gt=0"` // Unix seconds
}

// CommitIntentRequest is the request body for the commit half of a committed
// intent.
type CommitIntentRequest struct {
	User       string `json:"user" binding:"required,addr"`
	CommitHash string `json:"commit_hash" binding:"required,digest"`
}

// RevealIntentRequest is the request body for revealing a committed intent.
type RevealIntentRequest struct {
	User             string `json:"user" binding:"required,addr"`
	TokenIn          string `json:"token_in" binding:"required,addr"`
	TokenOut         string `json:"token_out" binding:"required,addr"`
	AmountIn         int64  `json:"amount_in" binding:"required,gt=0"`
	MinAmountOut     int64  `json:"min_amount_out" binding:"gte=0"`
	MaxFee           int64  `json:"max_fee" binding:"gte=0"`
	AllowPartialFill bool   `json:"allow_partial_fill"`
	Deadline         int64  `json:"deadline" binding:"required,gt=0"`
	Salt             string `json:"salt" binding:"required"`
}

// CancelIntentRequest is the request body for cancelling an intent.
type CancelIntentRequest struct {
	User string `json:"user" binding:"required,addr"`
}

// CallerRequest is the request body for operations that need only the
// caller's address (close batch, cancel batch).
type CallerRequest struct {
	Caller string `json:"caller" binding:"required,addr"`
}

// SubmitSolutionRequest is the request body for a solver's solution.
// ExecutionData is base64 in transit.
type SubmitSolutionRequest struct {
	Solver           string `json:"solver" binding:"required,addr"`
	BatchID          uint64 `json:"batch_id" binding:"required"`
	TotalUserSurplus int64  `json:"total_user_surplus" binding:"gte=0"`
	SolverBid        int64  `json:"solver_bid" binding:"gte=0"`
	ExecutionData    []byte `json:"execution_data" binding:"required"`
}

// ExecuteBatchRequest is the request body for settling a batch.
type ExecuteBatchRequest struct {
	Caller       string `json:"caller" binding:"required,addr"`
	SolutionHash string `json:"solution_hash" binding:"required,digest"`
}

// --- Registry ---

// RegisterSolverRequest is the request body for solver registration.
type RegisterSolverRequest struct {
	Operator    string `json:"operator" binding:"required,addr"`
	StakeAmount int64  `json:"stake_amount" binding:"required,gt=0"`
}

// OperatorRequest is the request body for operations keyed only by the
// solver operator's address.
type OperatorRequest struct {
	Operator string `json:"operator" binding:"required,addr"`
}

// StakeChangeRequest is the request body for increasing or decreasing stake.
type StakeChangeRequest struct {
	Operator string `json:"operator" binding:"required,addr"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

// UpdateReputationRequest is the request body for the batch processor's
// reputation adjustment.
type UpdateReputationRequest struct {
	Caller      string `json:"caller" binding:"required,addr"`
	Solver      string `json:"solver" binding:"required,addr"`
	Delta       int64  `json:"delta"`
	UserSurplus int64  `json:"user_surplus" binding:"gte=0"`
}

// SlashRequest is the request body for slashing a solver.
type SlashRequest struct {
	Caller string `json:"caller" binding:"required,addr"`
	Solver string `json:"solver" binding:"required,addr"`
	Reason string `json:"reason" binding:"required,max=200"`
}

// --- Admin ---

// SetFeeRequest adjusts the protocol fee.
type SetFeeRequest struct {
	FeeBps int64 `json:"fee_bps" binding:"gte=0"`
}

// SetAddressRequest carries a single address-valued admin setting.
type SetAddressRequest struct {
	Address string `json:"address" binding:"required,addr"`
}

// SetApprovalRequest approves or revokes a strategy contract.
type SetApprovalRequest struct {
	StrategyContract string `json:"strategy_contract" binding:"required,addr"`
	Approved         bool   `json:"approved"`
}

// SetInt64Request carries a single integer-valued admin setting.
type SetInt64Request struct {
	Value int64 `json:"value" binding:"gte=0"`
}
