package handler

import (
	"github.com/Player1Taco/Liquid-Flow/internal/adapter/http/dto"
	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"
	"github.com/Player1Taco/Liquid-Flow/pkg/response"

	"github.com/gin-gonic/gin"
)

// LedgerHandler handles strategy capital endpoints.
type LedgerHandler struct {
	ledgerSvc ports.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

func toAddresses(in []string) []domain.Address {
	out := make([]domain.Address, len(in))
	for i, s := range in {
		out[i] = domain.Address(s)
	}
	return out
}

// Ship handles POST /api/v1/strategies.
func (h *LedgerHandler) Ship(c *gin.Context) {
	var req dto.ShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	strategy, err := h.ledgerSvc.Ship(c.Request.Context(), domain.Address(req.LP), ports.ShipRequest{
		StrategyContract: domain.Address(req.StrategyContract),
		StrategyData:     req.StrategyData,
		Tokens:           toAddresses(req.Tokens),
		Amounts:          req.Amounts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, strategy)
}

// GetStrategy handles GET /api/v1/strategies/:hash.
func (h *LedgerHandler) GetStrategy(c *gin.Context) {
	strategy, err := h.ledgerSvc.GetStrategy(c.Request.Context(), domain.Hash(c.Param("hash")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, strategy)
}

// GetBalance handles GET /api/v1/strategies/:hash/balances/:token?lp=.
func (h *LedgerHandler) GetBalance(c *gin.Context) {
	lp := c.Query("lp")
	if lp == "" {
		response.Error(c, apperror.Validation("lp query parameter is required"))
		return
	}

	balance := h.ledgerSvc.BalanceOf(c.Request.Context(),
		domain.Address(lp), domain.Hash(c.Param("hash")), domain.Address(c.Param("token")))

	response.OK(c, gin.H{
		"strategy_hash": c.Param("hash"),
		"token":         c.Param("token"),
		"balance":       balance,
	})
}

// RequestDock handles POST /api/v1/strategies/:hash/dock-request.
func (h *LedgerHandler) RequestDock(c *gin.Context) {
	var req dto.DockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wr, err := h.ledgerSvc.RequestDock(c.Request.Context(),
		domain.Address(req.LP), domain.Hash(c.Param("hash")), toAddresses(req.Tokens))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, wr)
}

// ExecuteDock handles POST /api/v1/strategies/:hash/dock.
func (h *LedgerHandler) ExecuteDock(c *gin.Context) {
	var req dto.ExecuteDockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.ledgerSvc.ExecuteDock(c.Request.Context(),
		domain.Address(req.LP), domain.Hash(c.Param("hash"))); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"docked": true})
}

// EmergencyDock handles POST /api/v1/strategies/:hash/emergency-dock.
func (h *LedgerHandler) EmergencyDock(c *gin.Context) {
	var req dto.EmergencyDockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.ledgerSvc.EmergencyDock(c.Request.Context(),
		domain.Address(req.Caller), domain.Hash(c.Param("hash"))); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"docked": true})
}

// GetWithdrawalRequest handles GET /api/v1/strategies/:hash/withdrawal.
func (h *LedgerHandler) GetWithdrawalRequest(c *gin.Context) {
	wr, err := h.ledgerSvc.GetWithdrawalRequest(c.Request.Context(), domain.Hash(c.Param("hash")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wr)
}
