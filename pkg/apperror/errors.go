package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) — caller error, fix the input ----

func ErrZeroAmount() *AppError {
	return New("VAL_001", "Amount must be greater than zero", http.StatusBadRequest)
}

func ErrArrayLengthMismatch() *AppError {
	return New("VAL_002", "Token and amount arrays differ in length", http.StatusBadRequest)
}

func ErrStakeBelowMinimum() *AppError {
	return New("VAL_003", "Stake below configured minimum", http.StatusBadRequest)
}

func ErrCommitMismatch() *AppError {
	return New("VAL_004", "Revealed parameters do not match commitment", http.StatusBadRequest)
}

func ErrCommitUsed() *AppError {
	return New("VAL_005", "Commitment hash has already been used", http.StatusConflict)
}

func ErrSameToken() *AppError {
	return New("VAL_006", "Input and output token must differ", http.StatusBadRequest)
}

// Validation returns a generic VAL_000 validation error with a custom message.
func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Authorization (AUTHZ) ----

func ErrNotApprovedStrategy() *AppError {
	return New("AUTHZ_001", "Strategy contract is not approved", http.StatusForbidden)
}

func ErrNotStrategyContract() *AppError {
	return New("AUTHZ_002", "Caller is not the strategy contract for this allocation", http.StatusForbidden)
}

func ErrNotBatchProcessor() *AppError {
	return New("AUTHZ_003", "Caller is not the batch processor", http.StatusForbidden)
}

func ErrNotOwner() *AppError {
	return New("AUTHZ_004", "Caller is not the protocol owner", http.StatusForbidden)
}

func ErrNotIntentOwner() *AppError {
	return New("AUTHZ_005", "Caller does not own this intent", http.StatusForbidden)
}

func ErrSolverNotEligible() *AppError {
	return New("AUTHZ_006", "Solver is not active or fails stake/reputation thresholds", http.StatusForbidden)
}

func ErrNotStrategyOwner() *AppError {
	return New("AUTHZ_007", "Caller is not the liquidity provider for this strategy", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTHZ_008", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("AUTHZ_009", "Invalid credentials", http.StatusUnauthorized)
}

// ---- State machine (STATE) ----

func ErrBatchNotOpen() *AppError {
	return New("STATE_001", "Batch is not accepting intents", http.StatusConflict)
}

func ErrBatchNotSolving() *AppError {
	return New("STATE_002", "Batch is not in the solving phase", http.StatusConflict)
}

func ErrStrategyInactive() *AppError {
	return New("STATE_003", "Strategy is not active", http.StatusConflict)
}

func ErrWithdrawalExecuted() *AppError {
	return New("STATE_004", "Withdrawal request already executed", http.StatusConflict)
}

func ErrAlreadyRevealed() *AppError {
	return New("STATE_005", "Intent already revealed", http.StatusConflict)
}

func ErrSolverExists() *AppError {
	return New("STATE_006", "Solver already registered", http.StatusConflict)
}

func ErrStrategyRetired() *AppError {
	return New("STATE_007", "Strategy hash already used and retired", http.StatusConflict)
}

func ErrReentrantCall() *AppError {
	return New("STATE_008", "Reentrant call rejected", http.StatusConflict)
}

func ErrSystemPaused() *AppError {
	return New("STATE_009", "System is paused", http.StatusServiceUnavailable)
}

func ErrWithdrawalPending() *AppError {
	return New("STATE_010", "Withdrawal request already pending", http.StatusConflict)
}

// ---- Timing (TIME) ----

func ErrDeadlinePassed() *AppError {
	return New("TIME_001", "Intent deadline has passed", http.StatusBadRequest)
}

func ErrSolveWindowOpen() *AppError {
	return New("TIME_002", "Solving window has not yet closed", http.StatusConflict)
}

func ErrWithdrawalDelayActive() *AppError {
	return New("TIME_003", "Withdrawal delay has not elapsed", http.StatusConflict)
}

func ErrCloseTimeNotReached() *AppError {
	return New("TIME_004", "Batch close time has not been reached", http.StatusConflict)
}

func ErrCooldownActive() *AppError {
	return New("TIME_005", "Cancellation cooldown has not elapsed", http.StatusConflict)
}

// ---- Resources (RES) ----

func ErrInsufficientVirtualBalance() *AppError {
	return New("RES_001", "Insufficient virtual balance", http.StatusUnprocessableEntity)
}

func ErrInsufficientTokenBalance() *AppError {
	return New("RES_002", "Insufficient token balance or allowance", http.StatusUnprocessableEntity)
}

func ErrNotFound(entity string) *AppError {
	return New("RES_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrTransferFailed(err error) *AppError {
	return Wrap("RES_004", "Token transfer failed", http.StatusUnprocessableEntity, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
