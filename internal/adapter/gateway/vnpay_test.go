package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"deposit-gateway/config"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"
	"deposit-gateway/pkg/hmacsig"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const vnpSecret = "VNPAYTESTSECRET0123456789ABCDEF"

func newTestVNPay(t *testing.T) *VNPay {
	t.Helper()
	v, err := NewVNPay(config.VNPayConfig{
		TmnCode:     "DEPO0001",
		HashSecret:  vnpSecret,
		PayURL:      "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:   "https://app.example.vn/deposits/return",
		ExpireAfter: 15 * time.Minute,
	})
	require.NoError(t, err)
	return v
}

// signedIPN builds a callback query the way VNPay would send it.
func signedIPN(params map[string]string, secret string) string {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set(vnpSecureHashType, "HmacSHA512")
	q.Set(vnpSecureHash, hmacsig.Sign(hmacsig.HMACSHA512, secret, hmacsig.JoinPairs(hmacsig.Canonicalize(params))))
	return q.Encode()
}

func ipnParams() map[string]string {
	return map[string]string{
		"vnp_TmnCode":           "DEPO0001",
		"vnp_Amount":            "10000000",
		"vnp_BankCode":          "NCB",
		"vnp_BankTranNo":        "VNP14422574",
		"vnp_CardType":          "ATM",
		"vnp_OrderInfo":         "Nap tien vi",
		"vnp_PayDate":           "20260301093000",
		"vnp_ResponseCode":      "00",
		"vnp_TransactionNo":     "14422574",
		"vnp_TransactionStatus": "00",
		"vnp_TxnRef":            "01HQ3Z7Y8K4N2M6P0R5S9T1V3W",
	}
}

func TestNewVNPay_MissingSecret(t *testing.T) {
	_, err := NewVNPay(config.VNPayConfig{TmnCode: "T", PayURL: "u"})
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeConfiguration))
	assert.Contains(t, err.Error(), "hash_secret")
}

func TestVNPay_Initiate(t *testing.T) {
	v := newTestVNPay(t)
	created := time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC)

	d, err := v.Initiate(context.Background(), ports.InitiateRequest{
		DepositID:         uuid.New(),
		Amount:            100000,
		ProviderReference: "01HQ3Z7Y8K4N2M6P0R5S9T1V3W",
		ClientIP:          "203.0.113.7",
		CreatedAt:         created,
		ExpiresAt:         created.Add(30 * time.Minute),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DescriptorRedirect, d.Kind)
	require.True(t, strings.HasPrefix(d.RedirectURL, "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html?"))

	u, err := url.Parse(d.RedirectURL)
	require.NoError(t, err)
	q := u.Query()

	assert.Equal(t, "2.1.0", q.Get("vnp_Version"))
	assert.Equal(t, "pay", q.Get("vnp_Command"))
	assert.Equal(t, "10000000", q.Get("vnp_Amount"), "amount is scaled by 100")
	assert.Equal(t, "VND", q.Get("vnp_CurrCode"))
	assert.Equal(t, "01HQ3Z7Y8K4N2M6P0R5S9T1V3W", q.Get("vnp_TxnRef"))
	assert.Equal(t, "20260301090000", q.Get("vnp_CreateDate"), "dates are GMT+7")
	assert.Equal(t, "20260301091500", q.Get("vnp_ExpireDate"))
	assert.Equal(t, "https://app.example.vn/deposits/return", q.Get("vnp_ReturnUrl"))
	assert.Equal(t, "203.0.113.7", q.Get("vnp_IpAddr"))

	fields := map[string]string{}
	for k := range q {
		if k != vnpSecureHash {
			fields[k] = q.Get(k)
		}
	}
	expected := hmacsig.Sign(hmacsig.HMACSHA512, vnpSecret, hmacsig.JoinPairs(hmacsig.Canonicalize(fields)))
	assert.Equal(t, expected, q.Get(vnpSecureHash))
	assert.Len(t, q.Get(vnpSecureHash), 128)
}

func TestVNPay_Initiate_ExpiryCappedByDeposit(t *testing.T) {
	v := newTestVNPay(t)
	created := time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC)

	d, err := v.Initiate(context.Background(), ports.InitiateRequest{
		Amount:            50000,
		ProviderReference: "REF",
		ReturnTarget:      "https://custom.example.vn/back",
		CreatedAt:         created,
		ExpiresAt:         created.Add(5 * time.Minute),
	})
	require.NoError(t, err)

	u, _ := url.Parse(d.RedirectURL)
	assert.Equal(t, "20260301090500", u.Query().Get("vnp_ExpireDate"))
	assert.Equal(t, "https://custom.example.vn/back", u.Query().Get("vnp_ReturnUrl"))
}

func TestVNPay_Initiate_AmountCeiling(t *testing.T) {
	v := newTestVNPay(t)
	req := ports.InitiateRequest{ProviderReference: "REF", CreatedAt: time.Now()}

	req.Amount = domain.MaxAmount
	d, err := v.Initiate(context.Background(), req)
	require.NoError(t, err)
	u, _ := url.Parse(d.RedirectURL)
	assert.Equal(t, "9223372036854775800", u.Query().Get("vnp_Amount"))

	for _, amount := range []int64{domain.MaxAmount + 1, 100_000_000_000_000_000, 0} {
		req.Amount = amount
		_, err := v.Initiate(context.Background(), req)
		assert.True(t, apperror.IsCode(err, apperror.CodeInvalidAmount), "amount %d: %v", amount, err)
	}
}

func TestVNPay_VerifyCallback_Success(t *testing.T) {
	v := newTestVNPay(t)

	p, err := v.VerifyCallback(context.Background(), []byte(signedIPN(ipnParams(), vnpSecret)))
	require.NoError(t, err)
	assert.Equal(t, domain.MethodVNPay, p.Method)
	assert.Equal(t, "01HQ3Z7Y8K4N2M6P0R5S9T1V3W", p.ProviderReference)
	assert.Equal(t, int64(100000), p.Amount)
	assert.True(t, p.Success)
	assert.Equal(t, "00", p.ResultCode)
	assert.Equal(t, "14422574", p.GatewayTransactionID)
}

func TestVNPay_VerifyCallback_FailedPayment(t *testing.T) {
	v := newTestVNPay(t)
	params := ipnParams()
	params["vnp_ResponseCode"] = "24"
	params["vnp_TransactionStatus"] = "02"

	p, err := v.VerifyCallback(context.Background(), []byte(signedIPN(params, vnpSecret)))
	require.NoError(t, err)
	assert.False(t, p.Success)
	assert.Equal(t, "24", p.ResultCode)
}

func TestVNPay_VerifyCallback_TamperedAmount(t *testing.T) {
	v := newTestVNPay(t)
	raw := signedIPN(ipnParams(), vnpSecret)

	q, err := url.ParseQuery(raw)
	require.NoError(t, err)
	q.Set("vnp_Amount", "1000000000")

	_, err = v.VerifyCallback(context.Background(), []byte(q.Encode()))
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, apperror.CodeInvalidSignature))
}

func TestVNPay_VerifyCallback_Rejections(t *testing.T) {
	v := newTestVNPay(t)

	wrongTerminal := ipnParams()
	wrongTerminal["vnp_TmnCode"] = "OTHER001"

	missingRef := ipnParams()
	delete(missingRef, "vnp_TxnRef")

	oddAmount := ipnParams()
	oddAmount["vnp_Amount"] = "10000050"

	noHash := url.Values{}
	for k, val := range ipnParams() {
		noHash.Set(k, val)
	}

	tests := map[string]string{
		"wrong secret":      signedIPN(ipnParams(), "not-the-secret"),
		"wrong terminal":    signedIPN(wrongTerminal, vnpSecret),
		"missing reference": signedIPN(missingRef, vnpSecret),
		"fractional amount": signedIPN(oddAmount, vnpSecret),
		"missing hash":      noHash.Encode(),
		"malformed query":   "vnp_Amount=%zz",
		"repeated field":    signedIPN(ipnParams(), vnpSecret) + "&vnp_Amount=1",
		"empty":             "",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := v.VerifyCallback(context.Background(), []byte(raw))
			assert.Nil(t, p)
			assert.True(t, apperror.IsCode(err, apperror.CodeInvalidSignature))
		})
	}
}

func TestVNPay_Acknowledge(t *testing.T) {
	v := newTestVNPay(t)
	tests := []struct {
		ack  domain.CallbackAck
		code string
	}{
		{domain.AckOK, "00"},
		{domain.AckInvalidSignature, "97"},
		{domain.AckNotFound, "01"},
		{domain.AckAlreadyConfirmed, "02"},
		{domain.AckInvalidAmount, "04"},
		{domain.AckRetry, "99"},
	}
	for _, tt := range tests {
		t.Run(string(tt.ack), func(t *testing.T) {
			status, body := v.Acknowledge(tt.ack)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.code, body.(VNPayAck).RspCode)
		})
	}
}
