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

const (
	defaultLedgerPageSize = 20
	maxLedgerPageSize     = 100
)

// WalletHandler handles wallet-related endpoints.
type WalletHandler struct {
	reportingSvc ports.ReportingService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(reportingSvc ports.ReportingService) *WalletHandler {
	return &WalletHandler{reportingSvc: reportingSvc}
}

// GetBalance handles GET /api/v1/wallets/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	balance, err := h.reportingSvc.GetWalletBalance(c.Request.Context(), requester.AccountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WalletBalanceResponse{
		Balance:  balance.Balance,
		Currency: balance.Currency,
	})
}

// ListLedger handles GET /api/v1/wallets/ledger?page=&page_size=&currency=.
func (h *WalletHandler) ListLedger(c *gin.Context) {
	requester, ok := middleware.GetRequester(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultLedgerPageSize)))
	if pageSize < 1 {
		pageSize = defaultLedgerPageSize
	}
	if pageSize > maxLedgerPageSize {
		pageSize = maxLedgerPageSize
	}

	entries, total, err := h.reportingSvc.ListLedger(c.Request.Context(), ports.LedgerListParams{
		AccountID: requester.AccountID,
		Currency:  c.Query("currency"),
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}

	response.OK(c, dto.LedgerListResponse{
		Items:      entries,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	})
}
