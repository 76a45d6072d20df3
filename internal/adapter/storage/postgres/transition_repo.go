package postgres

import (
	"context"
	"fmt"

	"deposit-gateway/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TransitionRepo implements ports.TransitionRepository. Rows are append-only.
type TransitionRepo struct {
	pool Pool
}

func NewTransitionRepo(pool Pool) *TransitionRepo {
	return &TransitionRepo{pool: pool}
}

// Create appends a history row in the same transaction as the state change.
func (r *TransitionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.DepositTransition) error {
	query := `INSERT INTO deposit_transitions (id, deposit_id, from_state, to_state, actor, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query, t.ID, t.DepositID, t.FromState, t.ToState, t.Actor, t.Reason, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert deposit transition: %w", err)
	}
	return nil
}

// ListByDeposit returns the history of one deposit, oldest first.
func (r *TransitionRepo) ListByDeposit(ctx context.Context, depositID uuid.UUID) ([]domain.DepositTransition, error) {
	query := `SELECT id, deposit_id, from_state, to_state, actor, reason, created_at
		FROM deposit_transitions WHERE deposit_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, depositID)
	if err != nil {
		return nil, fmt.Errorf("list deposit transitions: %w", err)
	}
	defer rows.Close()

	var out []domain.DepositTransition
	for rows.Next() {
		var t domain.DepositTransition
		if err := rows.Scan(&t.ID, &t.DepositID, &t.FromState, &t.ToState, &t.Actor, &t.Reason, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan deposit transition: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deposit transitions: %w", err)
	}
	return out, nil
}
