package handler

import (
	"net/http"

	"deposit-gateway/internal/adapter/http/middleware"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CallbackHandler receives provider notifications. Every path replies in the
// provider's own acknowledgement format, including failures.
type CallbackHandler struct {
	recon ports.ReconciliationService
	log   zerolog.Logger
}

// NewCallbackHandler creates a new CallbackHandler.
func NewCallbackHandler(recon ports.ReconciliationService, log zerolog.Logger) *CallbackHandler {
	return &CallbackHandler{recon: recon, log: log}
}

// VNPay handles GET /api/v1/callbacks/vnpay/ipn. The signed payload is the
// raw query string.
func (h *CallbackHandler) VNPay(c *gin.Context) {
	h.handle(c, domain.MethodVNPay, []byte(c.Request.URL.RawQuery))
}

// MoMo handles POST /api/v1/callbacks/momo/ipn.
func (h *CallbackHandler) MoMo(c *gin.Context) {
	h.handleBody(c, domain.MethodMoMo)
}

// ZaloPay handles POST /api/v1/callbacks/zalopay.
func (h *CallbackHandler) ZaloPay(c *gin.Context) {
	h.handleBody(c, domain.MethodZaloPay)
}

func (h *CallbackHandler) handleBody(c *gin.Context, method domain.PaymentMethod) {
	body, err := middleware.ReadBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.handle(c, method, body)
}

func (h *CallbackHandler) handle(c *gin.Context, method domain.PaymentMethod, payload []byte) {
	res, err := h.recon.HandleCallback(c.Request.Context(), ports.CallbackRequest{
		Method:   method,
		Payload:  payload,
		RemoteIP: c.ClientIP(),
	})
	if res == nil {
		response.Error(c, err)
		return
	}
	if err != nil {
		h.log.Warn().Err(err).
			Str("method", string(method)).
			Str("outcome", string(res.Outcome)).
			Msg("callback not applied")
	}
	if res.DepositID != nil {
		c.Set(middleware.CtxResourceID, res.DepositID.String())
	}
	writeAck(c, res.AckStatus, res.AckBody)
}

// writeAck renders an adapter acknowledgement. Providers that only read the
// status code get an empty body.
func writeAck(c *gin.Context, status int, body any) {
	if status == 0 {
		status = http.StatusOK
	}
	switch b := body.(type) {
	case nil:
		c.Status(status)
	case string:
		c.String(status, b)
	default:
		c.JSON(status, b)
	}
}
