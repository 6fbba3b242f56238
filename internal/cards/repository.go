package cards

import (
	"context"
	"errors"
	"time"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository blocks cards in Postgres. A nil pool reports the store as
// unavailable so the service falls through to the generated dataset.
type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, cfg config.DatabaseConfig) *Repository {
	return &Repository{pool: pool, timeout: cfg.GetQueryTimeout()}
}

// BlockByLast4 marks every card ending in last4 as BLOCKED. Reports not
// found when no card matches.
func (r *Repository) BlockByLast4(ctx context.Context, last4 string) error {
	if r.pool == nil {
		return apperr.Unavailable("card store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var cardNumber string
	err := r.pool.QueryRow(ctx,
		`SELECT card_number FROM cards WHERE card_number LIKE '%' || $1 LIMIT 1`,
		last4,
	).Scan(&cardNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("card not found")
		}
		return apperr.Wrap(apperr.KindUnavailable, "card store unreachable", err).WithOp("cards.BlockByLast4")
	}

	_, err = r.pool.Exec(ctx,
		`UPDATE cards SET card_status = 'BLOCKED' WHERE card_number LIKE '%' || $1`,
		last4,
	)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "card store unreachable", err).WithOp("cards.BlockByLast4")
	}
	return nil
}
