package handler

import (
	"deposit-gateway/internal/adapter/http/dto"
	"deposit-gateway/internal/adapter/http/middleware"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"
	"deposit-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DepositHandler handles customer-facing deposit endpoints.
type DepositHandler struct {
	recon ports.ReconciliationService
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(recon ports.ReconciliationService) *DepositHandler {
	return &DepositHandler{recon: recon}
}

// Initiate handles POST /api/v1/deposits.
func (h *DepositHandler) Initiate(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.InitiateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	method, ok := domain.ParsePaymentMethod(req.Method)
	if !ok {
		response.Error(c, apperror.Validation("unknown payment method"))
		return
	}

	out, err := h.recon.InitiateDeposit(c.Request.Context(), ports.InitiateDepositRequest{
		AccountID:    requester.AccountID,
		Amount:       req.Amount,
		Method:       method,
		ReturnTarget: req.ReturnURL,
		ClientIP:     c.ClientIP(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Set(middleware.CtxResourceID, out.Deposit.ID.String())
	response.Created(c, out)
}

// Get handles GET /api/v1/deposits/:id.
func (h *DepositHandler) Get(c *gin.Context) {
	id, ok := depositIDParam(c)
	if !ok {
		return
	}
	requester, ok := middleware.GetRequester(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	details, err := h.recon.GetDeposit(c.Request.Context(), id, requester)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, details)
}

// SubmitProof handles POST /api/v1/deposits/:id/proof and its internal
// counterpart used by the upload service.
func (h *DepositHandler) SubmitProof(c *gin.Context) {
	id, ok := depositIDParam(c)
	if !ok {
		return
	}
	requester, ok := middleware.GetRequester(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	deposit, err := h.recon.SubmitProof(c.Request.Context(), id, requester, req.ProofReference)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, deposit)
}

// depositIDParam parses the :id path parameter, writing a PAY_002 on failure.
func depositIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid deposit id"))
		return uuid.Nil, false
	}
	return id, true
}
