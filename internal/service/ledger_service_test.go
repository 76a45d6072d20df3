package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"testing"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports/mocks"
	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ledgerTestDeps struct {
	svc        *LedgerServiceImpl
	ledgerRepo *mocks.MockLedgerRepository
	walletRepo *mocks.MockWalletRepository
	feeRepo    *mocks.MockFeeConfigRepository
	idempCache *mocks.MockIdempotencyCache
	encSvc     *mocks.MockEncryptionService
	transactor *mocks.MockDBTransactor
	ctrl       *gomock.Controller
}

func setupLedgerService(t *testing.T) *ledgerTestDeps {
	ctrl := gomock.NewController(t)
	d := &ledgerTestDeps{
		ledgerRepo: mocks.NewMockLedgerRepository(ctrl),
		walletRepo: mocks.NewMockWalletRepository(ctrl),
		feeRepo:    mocks.NewMockFeeConfigRepository(ctrl),
		idempCache: mocks.NewMockIdempotencyCache(ctrl),
		encSvc:     mocks.NewMockEncryptionService(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		ctrl:       ctrl,
	}
	d.svc = NewLedgerService(
		d.ledgerRepo, d.walletRepo, d.feeRepo, d.idempCache,
		d.encSvc, d.transactor, zerolog.Nop(),
	)
	return d
}

// mockTx implements pgx.Tx for testing
type mockTx struct{ pgx.Tx }

func (m *mockTx) Rollback(_ context.Context) error { return nil }
func (m *mockTx) Commit(_ context.Context) error   { return nil }

func feeConfig(percent string) *domain.PlatformFeeConfig {
	return &domain.PlatformFeeConfig{
		BankCode:      "VCB",
		AccountNumber: "0071001234567",
		AccountName:   "CONG TY DEPOSIT",
		FeePercent:    decimal.RequireFromString(percent),
		MinDeposit:    10000,
		MaxDeposit:    50000000,
	}
}

func creditRequest(accountID, depositID uuid.UUID, amount int64) domain.CreditRequest {
	return domain.CreditRequest{
		AccountID:      accountID,
		Amount:         amount,
		Currency:       "VND",
		IdempotencyKey: domain.CreditKey(depositID),
		DepositID:      depositID,
	}
}

// ==================== Credit Tests ====================

func TestLedgerService_Credit_Success(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	depositID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}
	req := creditRequest(accountID, depositID, 500000)

	d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").Return(&domain.Wallet{
		ID:               walletID,
		AccountID:        accountID,
		Currency:         "VND",
		EncryptedBalance: "enc_100000",
	}, nil)
	d.ledgerRepo.EXPECT().GetByIdempotencyKey(ctx, tx, req.IdempotencyKey).Return(nil, nil)
	d.feeRepo.EXPECT().Get(ctx).Return(feeConfig("1.5"), nil)
	d.encSvc.EXPECT().Decrypt("enc_100000").Return("100000", nil)
	// 500000 - floor(500000 * 1.5 / 100) = 492500; 100000 + 492500
	d.encSvc.EXPECT().Encrypt("592500").Return("enc_592500", nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ pgx.Tx, e *domain.LedgerEntry) error {
			assert.Equal(t, depositID, e.DepositID)
			assert.Equal(t, walletID, e.WalletID)
			return nil
		})
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, "enc_592500").Return(nil)

	entry, err := d.svc.Credit(ctx, tx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(500000), entry.GrossAmount)
	assert.Equal(t, int64(7500), entry.FeeAmount)
	assert.Equal(t, int64(492500), entry.NetAmount)
	assert.Equal(t, int64(592500), entry.BalanceAfter)
	assert.Equal(t, domain.LedgerEntryDepositCredit, entry.EntryType)
	assert.Equal(t, depositID.String(), entry.IdempotencyKey)
}

func TestLedgerService_Credit_FeeIsFloored(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}
	req := creditRequest(accountID, uuid.New(), 10001)

	d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").
		Return(&domain.Wallet{ID: walletID, Currency: "VND", EncryptedBalance: "enc_0"}, nil)
	d.ledgerRepo.EXPECT().GetByIdempotencyKey(ctx, tx, req.IdempotencyKey).Return(nil, nil)
	d.feeRepo.EXPECT().Get(ctx).Return(feeConfig("2.5"), nil)
	d.encSvc.EXPECT().Decrypt("enc_0").Return("0", nil)
	// floor(10001 * 2.5 / 100) = floor(250.025) = 250
	d.encSvc.EXPECT().Encrypt("9751").Return("enc_9751", nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, "enc_9751").Return(nil)

	entry, err := d.svc.Credit(ctx, tx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(250), entry.FeeAmount)
	assert.Equal(t, int64(9751), entry.NetAmount)
}

func TestLedgerService_Credit_NoFeeConfigCreditsGross(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}
	req := creditRequest(accountID, uuid.New(), 20000)

	d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").
		Return(&domain.Wallet{ID: walletID, Currency: "VND", EncryptedBalance: "enc_5"}, nil)
	d.ledgerRepo.EXPECT().GetByIdempotencyKey(ctx, tx, req.IdempotencyKey).Return(nil, nil)
	d.feeRepo.EXPECT().Get(ctx).Return(nil, nil)
	d.encSvc.EXPECT().Decrypt("enc_5").Return("5", nil)
	d.encSvc.EXPECT().Encrypt("20005").Return("enc_20005", nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, "enc_20005").Return(nil)

	entry, err := d.svc.Credit(ctx, tx, req)
	require.NoError(t, err)
	assert.Zero(t, entry.FeeAmount)
	assert.Equal(t, int64(20000), entry.NetAmount)
}

func TestLedgerService_Credit_OpensWalletOnFirstCredit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}
	req := creditRequest(accountID, uuid.New(), 30000)

	gomock.InOrder(
		d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").Return(nil, nil),
		d.encSvc.EXPECT().Encrypt("0").Return("enc_0", nil),
		d.walletRepo.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgx.Tx, w *domain.Wallet) error {
				assert.Equal(t, accountID, w.AccountID)
				assert.Equal(t, "VND", w.Currency)
				assert.Equal(t, "enc_0", w.EncryptedBalance)
				return nil
			}),
		d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").
			Return(&domain.Wallet{ID: walletID, AccountID: accountID, Currency: "VND", EncryptedBalance: "enc_0"}, nil),
	)
	d.ledgerRepo.EXPECT().GetByIdempotencyKey(ctx, tx, req.IdempotencyKey).Return(nil, nil)
	d.feeRepo.EXPECT().Get(ctx).Return(feeConfig("0"), nil)
	d.encSvc.EXPECT().Decrypt("enc_0").Return("0", nil)
	d.encSvc.EXPECT().Encrypt("30000").Return("enc_30000", nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, "enc_30000").Return(nil)

	entry, err := d.svc.Credit(ctx, tx, req)
	require.NoError(t, err)
	assert.Equal(t, walletID, entry.WalletID)
	assert.Equal(t, int64(30000), entry.BalanceAfter)
}

func TestLedgerService_Credit_DuplicateKeyReturnsExistingEntry(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	depositID := uuid.New()
	tx := &mockTx{}
	req := creditRequest(accountID, depositID, 500000)
	existing := &domain.LedgerEntry{
		ID:             uuid.New(),
		AccountID:      accountID,
		DepositID:      depositID,
		IdempotencyKey: req.IdempotencyKey,
		NetAmount:      492500,
	}

	d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").
		Return(&domain.Wallet{ID: uuid.New(), Currency: "VND", EncryptedBalance: "enc"}, nil)
	d.ledgerRepo.EXPECT().GetByIdempotencyKey(ctx, tx, req.IdempotencyKey).Return(existing, nil)
	// No fee lookup, no balance write, no new entry.

	entry, err := d.svc.Credit(ctx, tx, req)
	require.NoError(t, err)
	assert.Same(t, existing, entry)
}

func TestLedgerService_Credit_InvalidRequests(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Credit(context.Background(), &mockTx{}, creditRequest(uuid.New(), uuid.New(), 0))
	assertAppError(t, err, "PAY_002")

	req := creditRequest(uuid.New(), uuid.New(), 1000)
	req.IdempotencyKey = ""
	_, err = d.svc.Credit(context.Background(), &mockTx{}, req)
	assertAppError(t, err, "PAY_002")

	_, err = d.svc.Credit(context.Background(), &mockTx{}, creditRequest(uuid.New(), uuid.New(), domain.MaxAmount+1))
	assertAppError(t, err, "PAY_002")
}

func TestLedgerService_Credit_BalanceOverflow(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}
	req := creditRequest(accountID, uuid.New(), 1000)

	d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").
		Return(&domain.Wallet{ID: uuid.New(), Currency: "VND", EncryptedBalance: "enc_full"}, nil)
	d.ledgerRepo.EXPECT().GetByIdempotencyKey(ctx, tx, req.IdempotencyKey).Return(nil, nil)
	d.feeRepo.EXPECT().Get(ctx).Return(nil, nil)
	d.encSvc.EXPECT().Decrypt("enc_full").Return(strconv.FormatInt(math.MaxInt64-500, 10), nil)

	_, err := d.svc.Credit(ctx, tx, req)
	assertAppError(t, err, "PAY_002")
}

func TestLedgerService_Credit_DecryptFailure(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}
	req := creditRequest(accountID, uuid.New(), 1000)

	d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").
		Return(&domain.Wallet{ID: uuid.New(), Currency: "VND", EncryptedBalance: "corrupt"}, nil)
	d.ledgerRepo.EXPECT().GetByIdempotencyKey(ctx, tx, req.IdempotencyKey).Return(nil, nil)
	d.feeRepo.EXPECT().Get(ctx).Return(nil, nil)
	d.encSvc.EXPECT().Decrypt("corrupt").Return("", errors.New("cipher: message authentication failed"))

	_, err := d.svc.Credit(ctx, tx, req)
	assertAppError(t, err, "SYS_003")
}

func TestLedgerService_Credit_LockError(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	tx := &mockTx{}

	d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").Return(nil, errors.New("deadlock detected"))

	_, err := d.svc.Credit(ctx, tx, creditRequest(accountID, uuid.New(), 1000))
	assertAppError(t, err, "SYS_001")
}

// ==================== CreditStandalone Tests ====================

func TestLedgerService_CreditStandalone_CacheHit(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := creditRequest(uuid.New(), uuid.New(), 1000)
	cachedEntry := domain.LedgerEntry{ID: uuid.New(), IdempotencyKey: req.IdempotencyKey, NetAmount: 1000}
	raw, _ := json.Marshal(cachedEntry)

	d.idempCache.EXPECT().Get(ctx, req.IdempotencyKey).Return(raw, nil)

	entry, err := d.svc.CreditStandalone(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, cachedEntry.ID, entry.ID)
}

func TestLedgerService_CreditStandalone_CommitsAndCaches(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	accountID := uuid.New()
	walletID := uuid.New()
	tx := &mockTx{}
	req := creditRequest(accountID, uuid.New(), 1000)

	d.idempCache.EXPECT().Get(ctx, req.IdempotencyKey).Return(nil, errors.New("redis down"))
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.walletRepo.EXPECT().GetByAccountForUpdate(ctx, tx, accountID, "VND").
		Return(&domain.Wallet{ID: walletID, Currency: "VND", EncryptedBalance: "enc_0"}, nil)
	d.ledgerRepo.EXPECT().GetByIdempotencyKey(ctx, tx, req.IdempotencyKey).Return(nil, nil)
	d.feeRepo.EXPECT().Get(ctx).Return(nil, nil)
	d.encSvc.EXPECT().Decrypt("enc_0").Return("0", nil)
	d.encSvc.EXPECT().Encrypt("1000").Return("enc_1000", nil)
	d.ledgerRepo.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.walletRepo.EXPECT().UpdateBalance(ctx, tx, walletID, "enc_1000").Return(nil)
	d.idempCache.EXPECT().Set(ctx, req.IdempotencyKey, gomock.Any(), idempotencyTTL).Return(errors.New("redis down"))

	entry, err := d.svc.CreditStandalone(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), entry.BalanceAfter)
}

func TestLedgerService_CreditStandalone_BeginFails(t *testing.T) {
	d := setupLedgerService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	req := creditRequest(uuid.New(), uuid.New(), 1000)

	d.idempCache.EXPECT().Get(ctx, req.IdempotencyKey).Return(nil, nil)
	d.transactor.EXPECT().Begin(ctx).Return(nil, errors.New("pool closed"))

	_, err := d.svc.CreditStandalone(ctx, req)
	assertAppError(t, err, "SYS_001")
}

// ==================== Helper ====================

func assertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, expectedCode, appErr.Code)
}
