package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"deposit-gateway/config"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"
	"deposit-gateway/pkg/hmacsig"
)

const zaloTransDateLayout = "060102"

// ZaloPay implements the ZaloPay v2 order protocol. key1 signs orders and
// key2 verifies callbacks; the two are never interchangeable.
type ZaloPay struct {
	cfg config.ZaloPayConfig
}

// NewZaloPay validates both keys and builds the adapter.
func NewZaloPay(cfg config.ZaloPayConfig) (*ZaloPay, error) {
	if err := requireSecrets("zalopay", map[string]string{
		"app_id":       cfg.AppID,
		"key1":         cfg.Key1,
		"key2":         cfg.Key2,
		"endpoint":     cfg.Endpoint,
		"callback_url": cfg.CallbackURL,
	}); err != nil {
		return nil, err
	}
	return &ZaloPay{cfg: cfg}, nil
}

func (z *ZaloPay) Method() domain.PaymentMethod { return domain.MethodZaloPay }

// AppTransID prefixes the provider reference with the GMT+7 order date.
func (z *ZaloPay) AppTransID(req ports.InitiateRequest) string {
	return req.CreatedAt.In(vietnamTime).Format(zaloTransDateLayout) + "_" + req.ProviderReference
}

// Initiate signs the order fields locally. The client submits them to
// the ZaloPay order endpoint.
func (z *ZaloPay) Initiate(_ context.Context, req ports.InitiateRequest) (*domain.PaymentDescriptor, error) {
	redirect := req.ReturnTarget
	if redirect == "" {
		redirect = z.cfg.RedirectURL
	}
	embed, err := json.Marshal(map[string]string{
		"redirecturl": redirect,
		"deposit_id":  req.DepositID.String(),
	})
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	description := req.Description
	if description == "" {
		description = "Nap tien vi #" + req.DepositID.String()
	}

	fields := map[string]string{
		"app_id":       z.cfg.AppID,
		"app_trans_id": z.AppTransID(req),
		"app_user":     req.AccountID.String(),
		"amount":       strconv.FormatInt(req.Amount, 10),
		"app_time":     strconv.FormatInt(req.CreatedAt.UnixMilli(), 10),
		"embed_data":   string(embed),
		"item":         "[]",
		"description":  description,
		"callback_url": z.cfg.CallbackURL,
		"bank_code":    "",
	}
	fields["mac"] = hmacsig.Sign(hmacsig.HMACSHA256, z.cfg.Key1, z.orderMACInput(fields))

	d := &domain.PaymentDescriptor{
		Kind:        domain.DescriptorRedirect,
		Method:      domain.MethodZaloPay,
		RedirectURL: z.cfg.Endpoint,
		Fields:      fields,
	}
	if !req.ExpiresAt.IsZero() {
		exp := req.ExpiresAt.UTC()
		d.ExpiresAt = &exp
	}
	return d, nil
}

func (z *ZaloPay) orderMACInput(f map[string]string) string {
	return hmacsig.JoinFields("|", f["app_id"], f["app_trans_id"], f["app_user"], f["amount"], f["app_time"], f["embed_data"], f["item"])
}

type zaloCallback struct {
	Data *string `json:"data"`
	MAC  *string `json:"mac"`
	Type int     `json:"type"`
}

type zaloCallbackData struct {
	AppID      json.Number `json:"app_id"`
	AppTransID string      `json:"app_trans_id"`
	AppTime    json.Number `json:"app_time"`
	AppUser    string      `json:"app_user"`
	Amount     json.Number `json:"amount"`
	ZPTransID  json.Number `json:"zp_trans_id"`
	ServerTime json.Number `json:"server_time"`
	Channel    json.Number `json:"channel"`
}

// VerifyCallback checks the key2 MAC over the raw data string before
// reading anything inside it. A verified callback reports a paid order.
func (z *ZaloPay) VerifyCallback(_ context.Context, raw []byte) (*domain.VerifiedPayment, error) {
	var cb zaloCallback
	if err := json.Unmarshal(raw, &cb); err != nil {
		return nil, apperror.SignatureFailure("zalopay: malformed body")
	}
	if cb.Data == nil || cb.MAC == nil || *cb.Data == "" {
		return nil, apperror.SignatureFailure("zalopay: missing data or mac")
	}
	if !hmacsig.Verify(hmacsig.HMACSHA256, z.cfg.Key2, *cb.Data, *cb.MAC) {
		return nil, apperror.SignatureFailure("zalopay: mac mismatch")
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(*cb.Data)))
	dec.UseNumber()
	var data zaloCallbackData
	if err := dec.Decode(&data); err != nil {
		return nil, apperror.SignatureFailure("zalopay: malformed data")
	}
	if data.AppID.String() != z.cfg.AppID {
		return nil, apperror.SignatureFailure("zalopay: unexpected app_id")
	}
	_, ref, ok := strings.Cut(data.AppTransID, "_")
	if !ok || ref == "" {
		return nil, apperror.SignatureFailure("zalopay: malformed app_trans_id")
	}
	amount, ok := parseAmount(data.Amount.String())
	if !ok {
		return nil, apperror.SignatureFailure("zalopay: malformed amount")
	}

	return &domain.VerifiedPayment{
		Method:               domain.MethodZaloPay,
		ProviderReference:    ref,
		Amount:               amount,
		Success:              true,
		ResultCode:           "1",
		GatewayTransactionID: data.ZPTransID.String(),
	}, nil
}

// ZaloPayAck is the callback reply ZaloPay expects.
type ZaloPayAck struct {
	ReturnCode    int    `json:"return_code"`
	ReturnMessage string `json:"return_message"`
}

// Acknowledge maps the outcome to ZaloPay return codes: 1 success, 2
// already processed, 0 asks ZaloPay to call back again, negative is final.
func (z *ZaloPay) Acknowledge(ack domain.CallbackAck) (int, any) {
	switch ack {
	case domain.AckOK:
		return http.StatusOK, ZaloPayAck{ReturnCode: 1, ReturnMessage: "success"}
	case domain.AckAlreadyConfirmed:
		return http.StatusOK, ZaloPayAck{ReturnCode: 2, ReturnMessage: "already processed"}
	case domain.AckInvalidSignature:
		return http.StatusOK, ZaloPayAck{ReturnCode: -1, ReturnMessage: "mac not equal"}
	case domain.AckNotFound:
		return http.StatusOK, ZaloPayAck{ReturnCode: -1, ReturnMessage: "order not found"}
	case domain.AckInvalidAmount:
		return http.StatusOK, ZaloPayAck{ReturnCode: -1, ReturnMessage: "invalid amount"}
	default:
		return http.StatusOK, ZaloPayAck{ReturnCode: 0, ReturnMessage: "retry"}
	}
}
