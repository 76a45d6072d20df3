package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// reportingService implements ports.ReportingService.
type reportingService struct {
	depositRepo ports.DepositRepository
	ledgerRepo  ports.LedgerRepository
	walletRepo  ports.WalletRepository
	encSvc      ports.EncryptionService
	currency    string
	now         func() time.Time
}

// NewReportingService creates a new reporting service. currency is the
// wallet currency deposits are credited in.
func NewReportingService(
	depositRepo ports.DepositRepository,
	ledgerRepo ports.LedgerRepository,
	walletRepo ports.WalletRepository,
	encSvc ports.EncryptionService,
	currency string,
) ports.ReportingService {
	return &reportingService{
		depositRepo: depositRepo,
		ledgerRepo:  ledgerRepo,
		walletRepo:  walletRepo,
		encSvc:      encSvc,
		currency:    currency,
		now:         time.Now,
	}
}

// GetDepositStats returns aggregated deposit counts for admins.
func (s *reportingService) GetDepositStats(ctx context.Context, period string) (*ports.DepositStats, error) {
	var since *time.Time
	now := s.now().UTC()

	switch period {
	case "day":
		t := now.AddDate(0, 0, -1)
		since = &t
	case "week":
		t := now.AddDate(0, 0, -7)
		since = &t
	case "month":
		t := now.AddDate(0, -1, 0)
		since = &t
	case "all", "":
		// No time filter
	default:
		return nil, apperror.Validation("invalid period: must be day, week, month, or all")
	}

	stats, err := s.depositRepo.GetStats(ctx, since)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return stats, nil
}

// ListLedger returns one page of the account's ledger, newest first.
func (s *reportingService) ListLedger(ctx context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = defaultPageSize
	}
	if params.PageSize > maxPageSize {
		params.PageSize = maxPageSize
	}

	entries, total, err := s.ledgerRepo.ListByAccount(ctx, params)
	if err != nil {
		return nil, 0, apperror.InternalError(err)
	}
	return entries, total, nil
}

// GetWalletBalance decrypts the account's wallet balance. Wallets open on
// the first credit, so an account without one has a zero balance.
func (s *reportingService) GetWalletBalance(ctx context.Context, accountID uuid.UUID) (*ports.WalletBalance, error) {
	wallet, err := s.walletRepo.GetByAccount(ctx, accountID, s.currency)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	if wallet == nil {
		return &ports.WalletBalance{AccountID: accountID, Currency: s.currency}, nil
	}

	balanceStr, err := s.encSvc.Decrypt(wallet.EncryptedBalance)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("decrypt balance: %w", err))
	}
	balance, err := strconv.ParseInt(balanceStr, 10, 64)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("parse balance: %w", err))
	}

	return &ports.WalletBalance{
		AccountID: accountID,
		Balance:   balance,
		Currency:  wallet.Currency,
	}, nil
}
