package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"deposit-gateway/config"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"
)

// BankTransfer renders manual transfer instructions from the platform bank
// account. It has no callback path; an admin reconciles every deposit.
type BankTransfer struct {
	cfg     config.BankTransferConfig
	feeRepo ports.FeeConfigRepository
}

func NewBankTransfer(cfg config.BankTransferConfig, feeRepo ports.FeeConfigRepository) *BankTransfer {
	if cfg.QRImageBase == "" {
		cfg.QRImageBase = "https://img.vietqr.io/image"
	}
	if cfg.QRTemplate == "" {
		cfg.QRTemplate = "compact2"
	}
	return &BankTransfer{cfg: cfg, feeRepo: feeRepo}
}

func (b *BankTransfer) Method() domain.PaymentMethod { return domain.MethodBankTransfer }

func (b *BankTransfer) Initiate(ctx context.Context, req ports.InitiateRequest) (*domain.PaymentDescriptor, error) {
	fc, err := b.feeRepo.Get(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load platform bank account: %w", err))
	}
	if fc == nil || fc.BankCode == "" || fc.AccountNumber == "" {
		return nil, apperror.ErrConfiguration("platform bank account is not configured")
	}

	memo := domain.BankTransferMemo(req.DepositID)
	return &domain.PaymentDescriptor{
		Kind:   domain.DescriptorBankTransfer,
		Method: domain.MethodBankTransfer,
		BankTransfer: &domain.BankTransferInstruction{
			BankCode:      fc.BankCode,
			BankName:      fc.BankName,
			AccountNumber: fc.AccountNumber,
			AccountName:   fc.AccountName,
			Amount:        req.Amount,
			Currency:      "VND",
			Memo:          memo,
			QRImageURL:    b.qrURL(fc, req.Amount, memo),
		},
	}, nil
}

// qrURL builds a VietQR quick-link image for the transfer.
func (b *BankTransfer) qrURL(fc *domain.PlatformFeeConfig, amount int64, memo string) string {
	q := url.Values{}
	q.Set("amount", strconv.FormatInt(amount, 10))
	q.Set("addInfo", memo)
	q.Set("accountName", fc.AccountName)
	return fmt.Sprintf("%s/%s-%s-%s.png?%s",
		strings.TrimRight(b.cfg.QRImageBase, "/"), fc.BankCode, fc.AccountNumber, b.cfg.QRTemplate, q.Encode())
}

func (b *BankTransfer) VerifyCallback(context.Context, []byte) (*domain.VerifiedPayment, error) {
	return nil, apperror.ErrMethodUnavailable(string(domain.MethodBankTransfer))
}

func (b *BankTransfer) Acknowledge(domain.CallbackAck) (int, any) {
	return http.StatusNotFound, map[string]string{"message": "bank transfers have no callback"}
}
