package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"deposit-gateway/config"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"
	"deposit-gateway/pkg/hmacsig"
)

const (
	vnpSecureHash     = "vnp_SecureHash"
	vnpSecureHashType = "vnp_SecureHashType"
	vnpDateLayout     = "20060102150405"
	vnpSuccess        = "00"
)

// vnpRequired are the callback fields a settlement cannot be derived without.
var vnpRequired = []string{"vnp_TmnCode", "vnp_TxnRef", "vnp_Amount", "vnp_ResponseCode", "vnp_TransactionStatus"}

// VNPay implements the VNPay v2.1.0 redirect protocol.
type VNPay struct {
	cfg config.VNPayConfig
}

// NewVNPay validates the merchant credentials and builds the adapter.
func NewVNPay(cfg config.VNPayConfig) (*VNPay, error) {
	if err := requireSecrets("vnpay", map[string]string{
		"tmn_code":    cfg.TmnCode,
		"hash_secret": cfg.HashSecret,
		"pay_url":     cfg.PayURL,
	}); err != nil {
		return nil, err
	}
	if cfg.Version == "" {
		cfg.Version = "2.1.0"
	}
	if cfg.Locale == "" {
		cfg.Locale = "vn"
	}
	if cfg.OrderType == "" {
		cfg.OrderType = "other"
	}
	if cfg.ExpireAfter <= 0 {
		cfg.ExpireAfter = 15 * time.Minute
	}
	return &VNPay{cfg: cfg}, nil
}

func (v *VNPay) Method() domain.PaymentMethod { return domain.MethodVNPay }

// Initiate builds the signed redirect URL. It is purely local.
func (v *VNPay) Initiate(_ context.Context, req ports.InitiateRequest) (*domain.PaymentDescriptor, error) {
	if !domain.ValidAmount(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	returnURL := req.ReturnTarget
	if returnURL == "" {
		returnURL = v.cfg.ReturnURL
	}
	ip := req.ClientIP
	if ip == "" {
		ip = "127.0.0.1"
	}
	info := req.Description
	if info == "" {
		info = "Nap tien vi " + req.DepositID.String()
	}

	created := req.CreatedAt.In(vietnamTime)
	expires := created.Add(v.cfg.ExpireAfter)
	if !req.ExpiresAt.IsZero() && req.ExpiresAt.Before(expires) {
		expires = req.ExpiresAt.In(vietnamTime)
	}

	params := map[string]string{
		"vnp_Version":    v.cfg.Version,
		"vnp_Command":    "pay",
		"vnp_TmnCode":    v.cfg.TmnCode,
		"vnp_Amount":     strconv.FormatInt(req.Amount*100, 10),
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     req.ProviderReference,
		"vnp_OrderInfo":  info,
		"vnp_OrderType":  v.cfg.OrderType,
		"vnp_Locale":     v.cfg.Locale,
		"vnp_ReturnUrl":  returnURL,
		"vnp_IpAddr":     ip,
		"vnp_CreateDate": created.Format(vnpDateLayout),
		"vnp_ExpireDate": expires.Format(vnpDateLayout),
	}

	signature := v.sign(params)

	query := url.Values{}
	for k, val := range params {
		query.Set(k, val)
	}
	query.Set(vnpSecureHash, signature)

	exp := expires.UTC()
	return &domain.PaymentDescriptor{
		Kind:        domain.DescriptorRedirect,
		Method:      domain.MethodVNPay,
		RedirectURL: v.cfg.PayURL + "?" + query.Encode(),
		ExpiresAt:   &exp,
	}, nil
}

// sign is HMAC-SHA512 over the sorted, unescaped k=v string of every
// parameter except the signature fields.
func (v *VNPay) sign(params map[string]string) string {
	return hmacsig.Sign(hmacsig.HMACSHA512, v.cfg.HashSecret, v.signingString(params))
}

func (v *VNPay) signingString(params map[string]string) string {
	fields := make(map[string]string, len(params))
	for k, val := range params {
		if k == vnpSecureHash || k == vnpSecureHashType {
			continue
		}
		fields[k] = val
	}
	return hmacsig.JoinPairs(hmacsig.Canonicalize(fields))
}

// VerifyCallback checks an IPN query string (raw, as received).
func (v *VNPay) VerifyCallback(_ context.Context, raw []byte) (*domain.VerifiedPayment, error) {
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, apperror.SignatureFailure("vnpay: malformed query")
	}

	params := make(map[string]string, len(values))
	for k, vals := range values {
		if len(vals) != 1 {
			return nil, apperror.SignatureFailure("vnpay: repeated field " + k)
		}
		if len(k) > 4 && k[:4] == "vnp_" {
			params[k] = vals[0]
		}
	}

	digest := params[vnpSecureHash]
	if digest == "" {
		return nil, apperror.SignatureFailure("vnpay: missing vnp_SecureHash")
	}
	if !hmacsig.Verify(hmacsig.HMACSHA512, v.cfg.HashSecret, v.signingString(params), digest) {
		return nil, apperror.SignatureFailure("vnpay: checksum mismatch")
	}

	for _, k := range vnpRequired {
		if params[k] == "" {
			return nil, apperror.SignatureFailure("vnpay: missing " + k)
		}
	}
	if params["vnp_TmnCode"] != v.cfg.TmnCode {
		return nil, apperror.SignatureFailure("vnpay: unexpected terminal code")
	}
	scaled, ok := parseAmount(params["vnp_Amount"])
	if !ok || scaled%100 != 0 {
		return nil, apperror.SignatureFailure("vnpay: malformed amount")
	}

	responseCode := params["vnp_ResponseCode"]
	status := params["vnp_TransactionStatus"]
	result := responseCode
	if responseCode == vnpSuccess && status != vnpSuccess {
		result = status
	}

	return &domain.VerifiedPayment{
		Method:               domain.MethodVNPay,
		ProviderReference:    params["vnp_TxnRef"],
		Amount:               scaled / 100,
		Success:              responseCode == vnpSuccess && status == vnpSuccess,
		ResultCode:           result,
		Message:              params["vnp_OrderInfo"],
		GatewayTransactionID: params["vnp_TransactionNo"],
	}, nil
}

// VNPayAck is the IPN reply VNPay expects.
type VNPayAck struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

// Acknowledge maps the outcome to VNPay's RspCode table.
func (v *VNPay) Acknowledge(ack domain.CallbackAck) (int, any) {
	switch ack {
	case domain.AckOK:
		return http.StatusOK, VNPayAck{RspCode: "00", Message: "Confirm Success"}
	case domain.AckInvalidSignature:
		return http.StatusOK, VNPayAck{RspCode: "97", Message: "Invalid Checksum"}
	case domain.AckNotFound:
		return http.StatusOK, VNPayAck{RspCode: "01", Message: "Order not found"}
	case domain.AckAlreadyConfirmed:
		return http.StatusOK, VNPayAck{RspCode: "02", Message: "Order already confirmed"}
	case domain.AckInvalidAmount:
		return http.StatusOK, VNPayAck{RspCode: "04", Message: "Invalid amount"}
	default:
		return http.StatusOK, VNPayAck{RspCode: "99", Message: "Unknown error"}
	}
}
