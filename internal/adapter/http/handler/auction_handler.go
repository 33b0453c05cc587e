package handler

import (
	"strconv"

	"github.com/Player1Taco/Liquid-Flow/internal/adapter/http/dto"
	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"
	"github.com/Player1Taco/Liquid-Flow/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuctionHandler handles batch auction endpoints.
type AuctionHandler struct {
	auctionSvc ports.AuctionService
}

// NewAuctionHandler creates a new AuctionHandler.
func NewAuctionHandler(auctionSvc ports.AuctionService) *AuctionHandler {
	return &AuctionHandler{auctionSvc: auctionSvc}
}

// SubmitIntent handles POST /api/v1/intents.
func (h *AuctionHandler) SubmitIntent(c *gin.Context) {
	var req dto.SubmitIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	mevPref := domain.MEVPreference(req.MEVPref)
	if req.MEVPref == "" {
		mevPref = domain.MEVPrefNone
	}

	intent, err := h.auctionSvc.SubmitIntent(c.Request.Context(), domain.Address(req.User), ports.IntentRequest{
		TokenIn:          domain.Address(req.TokenIn),
		TokenOut:         domain.Address(req.TokenOut),
		AmountIn:         req.AmountIn,
		MinAmountOut:     req.MinAmountOut,
		MaxFee:           req.MaxFee,
		MEVPref:          mevPref,
		AllowPartialFill: req.AllowPartialFill,
		Deadline:         req.Deadline,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, intent)
}

// CommitIntent handles POST /api/v1/intents/commit.
func (h *AuctionHandler) CommitIntent(c *gin.Context) {
	var req dto.CommitIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	intent, err := h.auctionSvc.SubmitCommittedIntent(c.Request.Context(),
		domain.Address(req.User), domain.Hash(req.CommitHash))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, intent)
}

// RevealIntent handles POST /api/v1/intents/:id/reveal.
func (h *AuctionHandler) RevealIntent(c *gin.Context) {
	intentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid intent id"))
		return
	}

	var req dto.RevealIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	intent, err := h.auctionSvc.RevealIntent(c.Request.Context(), domain.Address(req.User), intentID, domain.IntentParams{
		TokenIn:          domain.Address(req.TokenIn),
		TokenOut:         domain.Address(req.TokenOut),
		AmountIn:         req.AmountIn,
		MinAmountOut:     req.MinAmountOut,
		MaxFee:           req.MaxFee,
		AllowPartialFill: req.AllowPartialFill,
		Deadline:         req.Deadline,
		Salt:             req.Salt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// CancelIntent handles POST /api/v1/intents/:id/cancel.
func (h *AuctionHandler) CancelIntent(c *gin.Context) {
	intentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid intent id"))
		return
	}

	var req dto.CancelIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.auctionSvc.CancelIntent(c.Request.Context(), domain.Address(req.User), intentID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"cancelled": true})
}

// GetIntent handles GET /api/v1/intents/:id.
func (h *AuctionHandler) GetIntent(c *gin.Context) {
	intentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid intent id"))
		return
	}

	intent, err := h.auctionSvc.GetIntent(c.Request.Context(), intentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intent)
}

// GetCurrentBatch handles GET /api/v1/batches/current.
func (h *AuctionHandler) GetCurrentBatch(c *gin.Context) {
	response.OK(c, h.auctionSvc.GetCurrentBatch(c.Request.Context()))
}

// GetBatch handles GET /api/v1/batches/:id.
func (h *AuctionHandler) GetBatch(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	batch, err := h.auctionSvc.GetBatch(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, batch)
}

// GetBatchIntents handles GET /api/v1/batches/:id/intents.
func (h *AuctionHandler) GetBatchIntents(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	intents, err := h.auctionSvc.GetBatchIntents(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, intents)
}

// CloseBatch handles POST /api/v1/batches/close.
func (h *AuctionHandler) CloseBatch(c *gin.Context) {
	var req dto.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	batch, err := h.auctionSvc.CloseBatch(c.Request.Context(), domain.Address(req.Caller))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, batch)
}

// SubmitSolution handles POST /api/v1/solutions.
func (h *AuctionHandler) SubmitSolution(c *gin.Context) {
	var req dto.SubmitSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	solution, err := h.auctionSvc.SubmitSolution(c.Request.Context(), domain.Address(req.Solver), ports.SolutionRequest{
		BatchID:          req.BatchID,
		TotalUserSurplus: req.TotalUserSurplus,
		SolverBid:        req.SolverBid,
		ExecutionData:    req.ExecutionData,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, solution)
}

// GetSolution handles GET /api/v1/solutions/:hash.
func (h *AuctionHandler) GetSolution(c *gin.Context) {
	solution, err := h.auctionSvc.GetSolution(c.Request.Context(), domain.Hash(c.Param("hash")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, solution)
}

// ExecuteBatch handles POST /api/v1/batches/execute.
func (h *AuctionHandler) ExecuteBatch(c *gin.Context) {
	var req dto.ExecuteBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	batch, err := h.auctionSvc.ExecuteBatch(c.Request.Context(),
		domain.Address(req.Caller), domain.Hash(req.SolutionHash))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, batch)
}

// CancelBatch handles POST /api/v1/batches/cancel.
func (h *AuctionHandler) CancelBatch(c *gin.Context) {
	var req dto.CallerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	batch, err := h.auctionSvc.CancelBatch(c.Request.Context(), domain.Address(req.Caller))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, batch)
}
