package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"deposit-gateway/config"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/internal/metrics"
	"deposit-gateway/pkg/apperror"
	"deposit-gateway/pkg/hmacsig"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

const momoCreatePath = "/v2/gateway/api/create"

// MoMo signs outbound orders and inbound IPNs over different field sets.
// The two orders must never be swapped.
var (
	momoOutboundFields = []string{
		"accessKey", "amount", "extraData", "ipnUrl", "orderId",
		"orderInfo", "partnerCode", "redirectUrl", "requestId", "requestType",
	}
	momoInboundFields = []string{
		"accessKey", "amount", "extraData", "message", "orderId", "orderInfo",
		"orderType", "partnerCode", "payType", "requestId", "responseTime",
		"resultCode", "transId",
	}
)

// MoMo implements the MoMo v2 all-in-one gateway.
type MoMo struct {
	cfg    config.MoMoConfig
	client *http.Client
	log    zerolog.Logger
}

// NewMoMo validates the partner credentials and builds the adapter. A nil
// client gets one with the configured timeout.
func NewMoMo(cfg config.MoMoConfig, client *http.Client, log zerolog.Logger) (*MoMo, error) {
	if err := requireSecrets("momo", map[string]string{
		"partner_code": cfg.PartnerCode,
		"access_key":   cfg.AccessKey,
		"secret_key":   cfg.SecretKey,
		"endpoint":     cfg.Endpoint,
		"ipn_url":      cfg.IPNURL,
	}); err != nil {
		return nil, err
	}
	if cfg.RequestType == "" {
		cfg.RequestType = "captureWallet"
	}
	if cfg.Lang == "" {
		cfg.Lang = "vi"
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &MoMo{cfg: cfg, client: client, log: log}, nil
}

func (m *MoMo) Method() domain.PaymentMethod { return domain.MethodMoMo }

type momoCreateRequest struct {
	PartnerCode string `json:"partnerCode"`
	RequestID   string `json:"requestId"`
	Amount      int64  `json:"amount"`
	OrderID     string `json:"orderId"`
	OrderInfo   string `json:"orderInfo"`
	RedirectURL string `json:"redirectUrl"`
	IpnURL      string `json:"ipnUrl"`
	RequestType string `json:"requestType"`
	ExtraData   string `json:"extraData"`
	Lang        string `json:"lang"`
	Signature   string `json:"signature"`
}

type momoCreateResponse struct {
	PartnerCode  string `json:"partnerCode"`
	OrderID      string `json:"orderId"`
	RequestID    string `json:"requestId"`
	Amount       int64  `json:"amount"`
	ResponseTime int64  `json:"responseTime"`
	Message      string `json:"message"`
	ResultCode   int    `json:"resultCode"`
	PayURL       string `json:"payUrl"`
	Deeplink     string `json:"deeplink"`
	QRCodeURL    string `json:"qrCodeUrl"`
}

// Initiate creates the order with MoMo. Transport failures are GW_001 and
// safe to retry; a non-zero resultCode is GW_002.
func (m *MoMo) Initiate(ctx context.Context, req ports.InitiateRequest) (*domain.PaymentDescriptor, error) {
	redirect := req.ReturnTarget
	if redirect == "" {
		redirect = m.cfg.RedirectURL
	}
	info := req.Description
	if info == "" {
		info = "Nap tien vi " + req.DepositID.String()
	}
	extra, err := json.Marshal(map[string]string{"depositId": req.DepositID.String()})
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	body := momoCreateRequest{
		PartnerCode: m.cfg.PartnerCode,
		RequestID:   ulid.Make().String(),
		Amount:      req.Amount,
		OrderID:     req.ProviderReference,
		OrderInfo:   info,
		RedirectURL: redirect,
		IpnURL:      m.cfg.IPNURL,
		RequestType: m.cfg.RequestType,
		ExtraData:   base64.StdEncoding.EncodeToString(extra),
		Lang:        m.cfg.Lang,
	}
	body.Signature = hmacsig.Sign(hmacsig.HMACSHA256, m.cfg.SecretKey, m.outboundString(body))

	resp, err := m.post(ctx, body)
	if err != nil {
		return nil, err
	}
	if resp.ResultCode != 0 {
		m.log.Warn().
			Str("order_id", body.OrderID).
			Int("result_code", resp.ResultCode).
			Str("message", resp.Message).
			Msg("momo rejected order")
		return nil, apperror.ErrUpstreamRejected("MOMO", fmt.Sprintf("resultCode=%d: %s", resp.ResultCode, resp.Message))
	}
	if resp.PayURL == "" {
		return nil, apperror.ErrUpstreamRejected("MOMO", "missing payUrl")
	}

	d := &domain.PaymentDescriptor{
		Kind:        domain.DescriptorRedirect,
		Method:      domain.MethodMoMo,
		RedirectURL: resp.PayURL,
		Deeplink:    resp.Deeplink,
		QRCodeURL:   resp.QRCodeURL,
	}
	if !req.ExpiresAt.IsZero() {
		exp := req.ExpiresAt.UTC()
		d.ExpiresAt = &exp
	}
	return d, nil
}

func (m *MoMo) outboundString(b momoCreateRequest) string {
	return hmacsig.JoinPairs(hmacsig.OrderedPairs(map[string]string{
		"accessKey":   m.cfg.AccessKey,
		"amount":      strconv.FormatInt(b.Amount, 10),
		"extraData":   b.ExtraData,
		"ipnUrl":      b.IpnURL,
		"orderId":     b.OrderID,
		"orderInfo":   b.OrderInfo,
		"partnerCode": b.PartnerCode,
		"redirectUrl": b.RedirectURL,
		"requestId":   b.RequestID,
		"requestType": b.RequestType,
	}, momoOutboundFields))
}

func (m *MoMo) post(ctx context.Context, body momoCreateRequest) (*momoCreateResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	endpoint := strings.TrimRight(m.cfg.Endpoint, "/") + momoCreatePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	httpReq.Header.Set("Content-Type", "application/json; charset=UTF-8")

	start := time.Now()
	httpResp, err := m.client.Do(httpReq)
	if err != nil {
		metrics.GatewayRequestDuration.WithLabelValues(string(domain.MethodMoMo), "error").Observe(time.Since(start).Seconds())
		return nil, apperror.ErrUpstreamUnavailable("MOMO", err)
	}
	defer httpResp.Body.Close()
	metrics.GatewayRequestDuration.WithLabelValues(string(domain.MethodMoMo), strconv.Itoa(httpResp.StatusCode)).Observe(time.Since(start).Seconds())

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable("MOMO", err)
	}
	if httpResp.StatusCode >= http.StatusInternalServerError {
		return nil, apperror.ErrUpstreamUnavailable("MOMO", fmt.Errorf("status %d", httpResp.StatusCode))
	}

	var out momoCreateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, apperror.ErrUpstreamRejected("MOMO", fmt.Sprintf("unreadable response (status %d)", httpResp.StatusCode))
	}
	return &out, nil
}

// VerifyCallback checks an IPN JSON body.
func (m *MoMo) VerifyCallback(_ context.Context, raw []byte) (*domain.VerifiedPayment, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, apperror.SignatureFailure("momo: malformed body")
	}

	fields := make(map[string]string, len(momoInboundFields))
	for _, k := range momoInboundFields {
		if k == "accessKey" {
			continue
		}
		s, ok := scalar(body[k])
		if !ok {
			return nil, apperror.SignatureFailure("momo: malformed field " + k)
		}
		fields[k] = s
	}
	fields["accessKey"] = m.cfg.AccessKey

	digest, _ := body["signature"].(string)
	if digest == "" {
		return nil, apperror.SignatureFailure("momo: missing signature")
	}
	if !hmacsig.Verify(hmacsig.HMACSHA256, m.cfg.SecretKey, m.inboundString(fields), digest) {
		return nil, apperror.SignatureFailure("momo: signature mismatch")
	}

	if fields["partnerCode"] != m.cfg.PartnerCode {
		return nil, apperror.SignatureFailure("momo: unexpected partner code")
	}
	if fields["orderId"] == "" || fields["resultCode"] == "" {
		return nil, apperror.SignatureFailure("momo: missing orderId or resultCode")
	}
	amount, ok := parseAmount(fields["amount"])
	if !ok {
		return nil, apperror.SignatureFailure("momo: malformed amount")
	}

	return &domain.VerifiedPayment{
		Method:               domain.MethodMoMo,
		ProviderReference:    fields["orderId"],
		Amount:               amount,
		Success:              fields["resultCode"] == "0",
		ResultCode:           fields["resultCode"],
		Message:              fields["message"],
		GatewayTransactionID: fields["transId"],
	}, nil
}

func (m *MoMo) inboundString(fields map[string]string) string {
	return hmacsig.JoinPairs(hmacsig.OrderedPairs(fields, momoInboundFields))
}

// scalar renders a decoded JSON value the way it appeared on the wire.
// Absent fields are empty; objects and arrays are malformed.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

// Acknowledge answers an IPN. MoMo treats 204 as delivered and retries
// anything else, so only transient failures ask for redelivery.
func (m *MoMo) Acknowledge(ack domain.CallbackAck) (int, any) {
	switch ack {
	case domain.AckInvalidSignature:
		return http.StatusBadRequest, map[string]string{"message": "invalid signature"}
	case domain.AckRetry:
		return http.StatusServiceUnavailable, map[string]string{"message": "retry later"}
	default:
		return http.StatusNoContent, nil
	}
}
