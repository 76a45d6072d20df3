package handler

import (
	"strconv"

	"deposit-gateway/internal/adapter/http/dto"
	"deposit-gateway/internal/adapter/http/middleware"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"
	"deposit-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the review queue and admin operations.
type AdminHandler struct {
	recon     ports.ReconciliationService
	reporting ports.ReportingService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(recon ports.ReconciliationService, reporting ports.ReportingService) *AdminHandler {
	return &AdminHandler{recon: recon, reporting: reporting}
}

// ListPending handles GET /api/v1/admin/deposits/pending?cursor=&limit=.
func (h *AdminHandler) ListPending(c *gin.Context) {
	after, err := dto.DecodeReviewCursor(c.Query("cursor"))
	if err != nil {
		response.Error(c, err)
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			response.Error(c, apperror.Validation("limit must be an integer"))
			return
		}
	}

	page, err := h.recon.ListPendingReview(c.Request.Context(), ports.PendingReviewQuery{
		After: after,
		Limit: limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, page.Deposits, dto.EncodeReviewCursor(page.Next))
}

// Decide handles POST /api/v1/admin/deposits/:id/decision.
func (h *AdminHandler) Decide(c *gin.Context) {
	id, ok := depositIDParam(c)
	if !ok {
		return
	}
	requester, ok := middleware.GetRequester(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.recon.Decide(c.Request.Context(), ports.DecisionRequest{
		DepositID: id,
		AdminID:   requester.AccountID,
		Outcome:   ports.DecisionOutcome(req.Outcome),
		Amount:    req.Amount,
		Reason:    req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// RetryCredit handles POST /api/v1/admin/deposits/:id/retry-credit.
func (h *AdminHandler) RetryCredit(c *gin.Context) {
	id, ok := depositIDParam(c)
	if !ok {
		return
	}

	entry, err := h.recon.RetryCredit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entry)
}

// Stats handles GET /api/v1/admin/deposits/stats?period=day|week|month|all.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.reporting.GetDepositStats(c.Request.Context(), c.DefaultQuery("period", "all"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}
