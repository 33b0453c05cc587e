package handler

import (
	"context"

	"github.com/Player1Taco/Liquid-Flow/internal/adapter/http/dto"
	"github.com/Player1Taco/Liquid-Flow/internal/core/domain"
	"github.com/Player1Taco/Liquid-Flow/internal/core/ports"
	"github.com/Player1Taco/Liquid-Flow/pkg/apperror"
	"github.com/Player1Taco/Liquid-Flow/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegistryHandler handles solver registry endpoints.
type RegistryHandler struct {
	registrySvc ports.RegistryService
}

// NewRegistryHandler creates a new RegistryHandler.
func NewRegistryHandler(registrySvc ports.RegistryService) *RegistryHandler {
	return &RegistryHandler{registrySvc: registrySvc}
}

// Register handles POST /api/v1/solvers.
func (h *RegistryHandler) Register(c *gin.Context) {
	var req dto.RegisterSolverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	solver, err := h.registrySvc.RegisterSolver(c.Request.Context(), domain.Address(req.Operator), req.StakeAmount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, solver)
}

// Unregister handles POST /api/v1/solvers/unregister.
func (h *RegistryHandler) Unregister(c *gin.Context) {
	var req dto.OperatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.registrySvc.UnregisterSolver(c.Request.Context(), domain.Address(req.Operator)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"unregistered": true})
}

// IncreaseStake handles POST /api/v1/solvers/stake/increase.
func (h *RegistryHandler) IncreaseStake(c *gin.Context) {
	h.changeStake(c, h.registrySvc.IncreaseStake)
}

// DecreaseStake handles POST /api/v1/solvers/stake/decrease.
func (h *RegistryHandler) DecreaseStake(c *gin.Context) {
	h.changeStake(c, h.registrySvc.DecreaseStake)
}

func (h *RegistryHandler) changeStake(c *gin.Context, op func(context.Context, domain.Address, int64) error) {
	var req dto.StakeChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := op(c.Request.Context(), domain.Address(req.Operator), req.Amount); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// UpdateReputation handles POST /api/v1/solvers/reputation.
func (h *RegistryHandler) UpdateReputation(c *gin.Context) {
	var req dto.UpdateReputationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.registrySvc.UpdateReputation(c.Request.Context(),
		domain.Address(req.Caller), domain.Address(req.Solver), req.Delta, req.UserSurplus); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// Slash handles POST /api/v1/solvers/slash.
func (h *RegistryHandler) Slash(c *gin.Context) {
	var req dto.SlashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.registrySvc.Slash(c.Request.Context(),
		domain.Address(req.Caller), domain.Address(req.Solver), req.Reason); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"slashed": true})
}

// GetSolver handles GET /api/v1/solvers/:address.
func (h *RegistryHandler) GetSolver(c *gin.Context) {
	solver, err := h.registrySvc.GetSolver(c.Request.Context(), domain.Address(c.Param("address")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, solver)
}

// GetReputation handles GET /api/v1/solvers/:address/reputation.
func (h *RegistryHandler) GetReputation(c *gin.Context) {
	score, err := h.registrySvc.GetEffectiveReputation(c.Request.Context(), domain.Address(c.Param("address")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"solver":     c.Param("address"),
		"reputation": score,
	})
}

// GetSlashCount handles GET /api/v1/solvers/slashes/count.
func (h *RegistryHandler) GetSlashCount(c *gin.Context) {
	response.OK(c, gin.H{"count": h.registrySvc.GetSlashHistoryLength(c.Request.Context())})
}
