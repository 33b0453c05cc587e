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

// AdminHandler exposes owner-gated protocol configuration over the operator
// console. The authenticated operator acts as the protocol owner address.
type AdminHandler struct {
	ledgerSvc   ports.LedgerService
	auctionSvc  ports.AuctionService
	registrySvc ports.RegistryService
	owner       domain.Address
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(ledgerSvc ports.LedgerService, auctionSvc ports.AuctionService, registrySvc ports.RegistryService, owner domain.Address) *AdminHandler {
	return &AdminHandler{
		ledgerSvc:   ledgerSvc,
		auctionSvc:  auctionSvc,
		registrySvc: registrySvc,
		owner:       owner,
	}
}

func (h *AdminHandler) run(c *gin.Context, op func(ctx context.Context) error) {
	if err := op(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"updated": true})
}

func bindInt64(c *gin.Context) (int64, bool) {
	var req dto.SetInt64Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return 0, false
	}
	return req.Value, true
}

func bindAddress(c *gin.Context) (domain.Address, bool) {
	var req dto.SetAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return "", false
	}
	dto.SanitizeStruct(&req)
	return domain.Address(req.Address), true
}

// --- Ledger ---

// SetProtocolFee handles POST /api/v1/admin/ledger/fee.
func (h *AdminHandler) SetProtocolFee(c *gin.Context) {
	var req dto.SetFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.ledgerSvc.SetProtocolFee(ctx, h.owner, req.FeeBps)
	})
}

// SetFeeCollector handles POST /api/v1/admin/ledger/fee-collector.
func (h *AdminHandler) SetFeeCollector(c *gin.Context) {
	addr, ok := bindAddress(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.ledgerSvc.SetFeeCollector(ctx, h.owner, addr)
	})
}

// SetLedgerBatchProcessor handles POST /api/v1/admin/ledger/batch-processor.
func (h *AdminHandler) SetLedgerBatchProcessor(c *gin.Context) {
	addr, ok := bindAddress(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.ledgerSvc.SetBatchProcessor(ctx, h.owner, addr)
	})
}

// SetStrategyApproval handles POST /api/v1/admin/ledger/strategy-approval.
func (h *AdminHandler) SetStrategyApproval(c *gin.Context) {
	var req dto.SetApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)
	h.run(c, func(ctx context.Context) error {
		return h.ledgerSvc.SetStrategyApproval(ctx, h.owner, domain.Address(req.StrategyContract), req.Approved)
	})
}

// PauseLedger handles POST /api/v1/admin/ledger/pause.
func (h *AdminHandler) PauseLedger(c *gin.Context) {
	h.run(c, func(ctx context.Context) error { return h.ledgerSvc.Pause(ctx, h.owner) })
}

// UnpauseLedger handles POST /api/v1/admin/ledger/unpause.
func (h *AdminHandler) UnpauseLedger(c *gin.Context) {
	h.run(c, func(ctx context.Context) error { return h.ledgerSvc.Unpause(ctx, h.owner) })
}

// --- Auction ---

// SetBatchDuration handles POST /api/v1/admin/auction/batch-duration.
func (h *AdminHandler) SetBatchDuration(c *gin.Context) {
	v, ok := bindInt64(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.auctionSvc.SetBatchDuration(ctx, h.owner, v)
	})
}

// SetSolverWindow handles POST /api/v1/admin/auction/solver-window.
func (h *AdminHandler) SetSolverWindow(c *gin.Context) {
	v, ok := bindInt64(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.auctionSvc.SetSolverWindow(ctx, h.owner, v)
	})
}

// SetEarlyCloseVolume handles POST /api/v1/admin/auction/early-close-volume.
func (h *AdminHandler) SetEarlyCloseVolume(c *gin.Context) {
	v, ok := bindInt64(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.auctionSvc.SetMinVolumeForEarlyClose(ctx, h.owner, v)
	})
}

// PauseAuction handles POST /api/v1/admin/auction/pause.
func (h *AdminHandler) PauseAuction(c *gin.Context) {
	h.run(c, func(ctx context.Context) error { return h.auctionSvc.Pause(ctx, h.owner) })
}

// UnpauseAuction handles POST /api/v1/admin/auction/unpause.
func (h *AdminHandler) UnpauseAuction(c *gin.Context) {
	h.run(c, func(ctx context.Context) error { return h.auctionSvc.Unpause(ctx, h.owner) })
}

// --- Registry ---

// SetMinStake handles POST /api/v1/admin/registry/min-stake.
func (h *AdminHandler) SetMinStake(c *gin.Context) {
	v, ok := bindInt64(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.registrySvc.SetMinStake(ctx, h.owner, v)
	})
}

// SetSlashBps handles POST /api/v1/admin/registry/slash-bps.
func (h *AdminHandler) SetSlashBps(c *gin.Context) {
	v, ok := bindInt64(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.registrySvc.SetSlashPercentage(ctx, h.owner, v)
	})
}

// SetMinReputation handles POST /api/v1/admin/registry/min-reputation.
func (h *AdminHandler) SetMinReputation(c *gin.Context) {
	v, ok := bindInt64(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.registrySvc.SetMinReputation(ctx, h.owner, v)
	})
}

// SetReputationDecay handles POST /api/v1/admin/registry/reputation-decay.
func (h *AdminHandler) SetReputationDecay(c *gin.Context) {
	v, ok := bindInt64(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.registrySvc.SetReputationDecay(ctx, h.owner, v)
	})
}

// SetRegistryBatchProcessor handles POST /api/v1/admin/registry/batch-processor.
func (h *AdminHandler) SetRegistryBatchProcessor(c *gin.Context) {
	addr, ok := bindAddress(c)
	if !ok {
		return
	}
	h.run(c, func(ctx context.Context) error {
		return h.registrySvc.SetBatchProcessor(ctx, h.owner, addr)
	})
}

// ReactivateSolver handles POST /api/v1/admin/registry/solvers/:address/reactivate.
func (h *AdminHandler) ReactivateSolver(c *gin.Context) {
	solver := domain.Address(c.Param("address"))
	h.run(c, func(ctx context.Context) error {
		return h.registrySvc.ReactivateSolver(ctx, h.owner, solver)
	})
}
