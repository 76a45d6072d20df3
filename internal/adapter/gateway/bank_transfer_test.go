package gateway

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"deposit-gateway/config"
	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/internal/core/ports/mocks"
	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func platformAccount() *domain.PlatformFeeConfig {
	return &domain.PlatformFeeConfig{
		BankCode:      "VCB",
		BankName:      "Vietcombank",
		AccountNumber: "0071001234567",
		AccountName:   "CONG TY DEPOSIT",
	}
}

func TestBankTransfer_Initiate(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeRepo := mocks.NewMockFeeConfigRepository(ctrl)
	feeRepo.EXPECT().Get(gomock.Any()).Return(platformAccount(), nil)

	b := NewBankTransfer(config.BankTransferConfig{}, feeRepo)
	id := uuid.MustParse("6f1c2f43-7a4e-4b8e-9a52-2f0d8c1e3b77")

	d, err := b.Initiate(context.Background(), ports.InitiateRequest{DepositID: id, Amount: 500000})
	require.NoError(t, err)
	assert.Equal(t, domain.DescriptorBankTransfer, d.Kind)
	require.NotNil(t, d.BankTransfer)

	bt := d.BankTransfer
	assert.Equal(t, "VCB", bt.BankCode)
	assert.Equal(t, "0071001234567", bt.AccountNumber)
	assert.Equal(t, int64(500000), bt.Amount)
	assert.Equal(t, "VND", bt.Currency)
	assert.Equal(t, "DEPOSIT 6f1c2f43-7a4e-4b8e-9a52-2f0d8c1e3b77", bt.Memo)
	assert.Equal(t,
		"https://img.vietqr.io/image/VCB-0071001234567-compact2.png?accountName=CONG+TY+DEPOSIT&addInfo=DEPOSIT+6f1c2f43-7a4e-4b8e-9a52-2f0d8c1e3b77&amount=500000",
		bt.QRImageURL)
}

func TestBankTransfer_Initiate_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeRepo := mocks.NewMockFeeConfigRepository(ctrl)
	feeRepo.EXPECT().Get(gomock.Any()).Return(&domain.PlatformFeeConfig{BankCode: "VCB"}, nil)

	_, err := NewBankTransfer(config.BankTransferConfig{}, feeRepo).
		Initiate(context.Background(), ports.InitiateRequest{Amount: 1})
	assert.True(t, apperror.IsCode(err, apperror.CodeConfiguration))
}

func TestBankTransfer_Initiate_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	feeRepo := mocks.NewMockFeeConfigRepository(ctrl)
	feeRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("connection refused"))

	_, err := NewBankTransfer(config.BankTransferConfig{}, feeRepo).
		Initiate(context.Background(), ports.InitiateRequest{Amount: 1})
	require.Error(t, err)
	assert.True(t, apperror.IsCode(err, "SYS_001"))
}

func TestBankTransfer_NoCallbacks(t *testing.T) {
	b := NewBankTransfer(config.BankTransferConfig{}, nil)

	_, err := b.VerifyCallback(context.Background(), []byte("{}"))
	assert.True(t, apperror.IsCode(err, apperror.CodeMethodUnavailable))

	status, _ := b.Acknowledge(domain.AckOK)
	assert.Equal(t, http.StatusNotFound, status)
}
