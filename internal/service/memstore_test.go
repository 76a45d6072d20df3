package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"deposit-gateway/internal/core/domain"
	"deposit-gateway/internal/core/ports"
	"deposit-gateway/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// memStore is an in-memory database with one writer transaction at a time.
// A transaction works on a copy and publishes it on commit, so a rollback
// discards every write, as Postgres would.
type memStore struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	data *memData
}

type memData struct {
	deposits    map[uuid.UUID]*domain.Deposit
	transitions []domain.DepositTransition
	entries     map[string]*domain.LedgerEntry
	wallets     map[string]*domain.Wallet
}

func newMemStore() *memStore {
	return &memStore{data: &memData{
		deposits: make(map[uuid.UUID]*domain.Deposit),
		entries:  make(map[string]*domain.LedgerEntry),
		wallets:  make(map[string]*domain.Wallet),
	}}
}

func (d *memData) clone() *memData {
	c := &memData{
		deposits:    make(map[uuid.UUID]*domain.Deposit, len(d.deposits)),
		transitions: append([]domain.DepositTransition(nil), d.transitions...),
		entries:     make(map[string]*domain.LedgerEntry, len(d.entries)),
		wallets:     make(map[string]*domain.Wallet, len(d.wallets)),
	}
	for k, v := range d.deposits {
		c.deposits[k] = v.Clone()
	}
	for k, v := range d.entries {
		e := *v
		c.entries[k] = &e
	}
	for k, v := range d.wallets {
		w := *v
		c.wallets[k] = &w
	}
	return c
}

func (s *memStore) snapshot() *memData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Begin implements ports.DBTransactor.
func (s *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	s.txMu.Lock()
	return &memTx{store: s, work: s.snapshot().clone()}, nil
}

type memTx struct {
	pgx.Tx
	store *memStore
	work  *memData
	done  bool
}

func (t *memTx) Commit(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.store.mu.Lock()
	t.store.data = t.work
	t.store.mu.Unlock()
	t.finish()
	return nil
}

func (t *memTx) Rollback(_ context.Context) error {
	if t.done {
		return pgx.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *memTx) finish() {
	t.done = true
	t.store.txMu.Unlock()
}

func txData(tx pgx.Tx) *memData {
	return tx.(*memTx).work
}

func walletKey(accountID uuid.UUID, currency string) string {
	return accountID.String() + "/" + currency
}

// --- deposits ---

type memDepositRepo struct{ s *memStore }

func (r memDepositRepo) Create(_ context.Context, tx pgx.Tx, d *domain.Deposit) error {
	data := txData(tx)
	if _, ok := data.deposits[d.ID]; ok {
		return errors.New("duplicate deposit id")
	}
	for _, existing := range data.deposits {
		if existing.Method == d.Method && existing.ProviderReference == d.ProviderReference {
			return errors.New("duplicate provider reference")
		}
	}
	data.deposits[d.ID] = d.Clone()
	return nil
}

func (r memDepositRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Deposit, error) {
	d, ok := r.s.snapshot().deposits[id]
	if !ok {
		return nil, nil
	}
	return d.Clone(), nil
}

func (r memDepositRepo) GetByIDForUpdate(_ context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Deposit, error) {
	d, ok := txData(tx).deposits[id]
	if !ok {
		return nil, nil
	}
	return d.Clone(), nil
}

func (r memDepositRepo) GetByProviderReference(_ context.Context, method domain.PaymentMethod, ref string) (*domain.Deposit, error) {
	for _, d := range r.s.snapshot().deposits {
		if d.Method == method && d.ProviderReference == ref {
			return d.Clone(), nil
		}
	}
	return nil, nil
}

func (r memDepositRepo) Update(_ context.Context, tx pgx.Tx, d *domain.Deposit) error {
	data := txData(tx)
	stored, ok := data.deposits[d.ID]
	if !ok || stored.Version != d.Version {
		return apperror.ErrConcurrentUpdate()
	}
	d.Version++
	data.deposits[d.ID] = d.Clone()
	return nil
}

func (r memDepositRepo) sorted(keep func(*domain.Deposit) bool) []*domain.Deposit {
	var out []*domain.Deposit
	for _, d := range r.s.snapshot().deposits {
		if keep(d) {
			out = append(out, d.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].UpdatedAt.Before(out[j].UpdatedAt)
	})
	return out
}

func (r memDepositRepo) ListPendingReview(_ context.Context, after *ports.ReviewCursor, limit int) ([]domain.Deposit, error) {
	rows := r.sorted(func(d *domain.Deposit) bool {
		if d.State != domain.StateUnderReview {
			return false
		}
		if after == nil {
			return true
		}
		return d.UpdatedAt.After(after.UpdatedAt) ||
			(d.UpdatedAt.Equal(after.UpdatedAt) && d.ID.String() > after.ID.String())
	})
	var out []domain.Deposit
	for _, d := range rows {
		if len(out) == limit {
			break
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r memDepositRepo) ListExpirable(_ context.Context, now time.Time, limit int) ([]uuid.UUID, error) {
	rows := r.sorted(func(d *domain.Deposit) bool {
		return d.State == domain.StateCreated && d.Method.IsAutomated() && !d.ExpiresAt.After(now)
	})
	return firstIDs(rows, limit), nil
}

func (r memDepositRepo) ListApprovedUncredited(_ context.Context, limit int) ([]uuid.UUID, error) {
	entries := r.s.snapshot().entries
	rows := r.sorted(func(d *domain.Deposit) bool {
		_, credited := entries[domain.CreditKey(d.ID)]
		return d.State == domain.StateApproved && !credited
	})
	return firstIDs(rows, limit), nil
}

func (r memDepositRepo) GetStats(_ context.Context, since *time.Time) (*ports.DepositStats, error) {
	stats := &ports.DepositStats{
		ByState:  make(map[domain.DepositState]int64),
		ByMethod: make(map[domain.PaymentMethod]int64),
	}
	for _, d := range r.s.snapshot().deposits {
		if since != nil && d.CreatedAt.Before(*since) {
			continue
		}
		stats.Total++
		stats.ByState[d.State]++
		stats.ByMethod[d.Method]++
		if d.State == domain.StateApproved && d.ApprovedAmount != nil {
			stats.ApprovedVolume += *d.ApprovedAmount
		}
	}
	stats.PendingReview = stats.ByState[domain.StateUnderReview]
	return stats, nil
}

func firstIDs(rows []*domain.Deposit, limit int) []uuid.UUID {
	var ids []uuid.UUID
	for _, d := range rows {
		if len(ids) == limit {
			break
		}
		ids = append(ids, d.ID)
	}
	return ids
}

// --- transitions ---

type memTransitionRepo struct{ s *memStore }

func (r memTransitionRepo) Create(_ context.Context, tx pgx.Tx, t *domain.DepositTransition) error {
	data := txData(tx)
	data.transitions = append(data.transitions, *t)
	return nil
}

func (r memTransitionRepo) ListByDeposit(_ context.Context, depositID uuid.UUID) ([]domain.DepositTransition, error) {
	var out []domain.DepositTransition
	for _, t := range r.s.snapshot().transitions {
		if t.DepositID == depositID {
			out = append(out, t)
		}
	}
	return out, nil
}

// --- ledger ---

type memLedgerRepo struct{ s *memStore }

func (r memLedgerRepo) Create(_ context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	data := txData(tx)
	if _, ok := data.entries[e.IdempotencyKey]; ok {
		return errors.New("duplicate key value violates unique constraint")
	}
	entry := *e
	data.entries[e.IdempotencyKey] = &entry
	return nil
}

func (r memLedgerRepo) GetByIdempotencyKey(_ context.Context, tx pgx.Tx, key string) (*domain.LedgerEntry, error) {
	e, ok := txData(tx).entries[key]
	if !ok {
		return nil, nil
	}
	entry := *e
	return &entry, nil
}

func (r memLedgerRepo) ListByAccount(_ context.Context, params ports.LedgerListParams) ([]domain.LedgerEntry, int64, error) {
	var out []domain.LedgerEntry
	for _, e := range r.s.snapshot().entries {
		if e.AccountID == params.AccountID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

// --- wallets ---

type memWalletRepo struct{ s *memStore }

func (r memWalletRepo) Create(_ context.Context, tx pgx.Tx, w *domain.Wallet) error {
	data := txData(tx)
	key := walletKey(w.AccountID, w.Currency)
	if _, ok := data.wallets[key]; !ok {
		wallet := *w
		data.wallets[key] = &wallet
	}
	return nil
}

func (r memWalletRepo) GetByAccount(_ context.Context, accountID uuid.UUID, currency string) (*domain.Wallet, error) {
	w, ok := r.s.snapshot().wallets[walletKey(accountID, currency)]
	if !ok {
		return nil, nil
	}
	wallet := *w
	return &wallet, nil
}

func (r memWalletRepo) GetByAccountForUpdate(_ context.Context, tx pgx.Tx, accountID uuid.UUID, currency string) (*domain.Wallet, error) {
	w, ok := txData(tx).wallets[walletKey(accountID, currency)]
	if !ok {
		return nil, nil
	}
	wallet := *w
	return &wallet, nil
}

func (r memWalletRepo) UpdateBalance(_ context.Context, tx pgx.Tx, walletID uuid.UUID, encryptedBalance string) error {
	for _, w := range txData(tx).wallets {
		if w.ID == walletID {
			w.EncryptedBalance = encryptedBalance
			return nil
		}
	}
	return errors.New("wallet not found")
}

// --- fee config ---

type fixedFeeRepo struct{ cfg *domain.PlatformFeeConfig }

func (r fixedFeeRepo) Get(context.Context) (*domain.PlatformFeeConfig, error) {
	return r.cfg, nil
}
