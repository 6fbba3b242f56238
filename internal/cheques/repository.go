package cheques

import (
	"context"
	"errors"
	"time"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads cheques from Postgres.
type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, cfg config.DatabaseConfig) *Repository {
	return &Repository{pool: pool, timeout: cfg.GetQueryTimeout()}
}

func (r *Repository) scanCheque(row pgx.Row) (Cheque, error) {
	var c Cheque
	var issueDate time.Time
	var clearingDate *time.Time
	err := row.Scan(&c.ChequeNumber, &c.AccountNumber, &c.Amount, &c.Content,
		&issueDate, &clearingDate, &c.PayeeName)
	if err != nil {
		return Cheque{}, err
	}
	c.IssueDate = issueDate.Format(time.RFC3339)
	if clearingDate != nil {
		s := clearingDate.Format(time.RFC3339)
		c.ClearingDate = &s
	}
	return c, nil
}

// ByNumber returns the cheque with the given number.
func (r *Repository) ByNumber(ctx context.Context, chequeNumber string) (Cheque, error) {
	if r.pool == nil {
		return Cheque{}, apperr.Unavailable("cheque store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c, err := r.scanCheque(r.pool.QueryRow(ctx,
		`SELECT cheque_number, account_number, amount, status, issue_date, clearing_date, payee_name
		 FROM cheques WHERE cheque_number = $1`,
		chequeNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Cheque{}, apperr.NotFound("cheque not found")
		}
		return Cheque{}, apperr.Wrap(apperr.KindUnavailable, "cheque store unreachable", err).WithOp("cheques.ByNumber")
	}
	return c, nil
}

// ByNumberAndAccount returns the cheque matching both keys.
func (r *Repository) ByNumberAndAccount(ctx context.Context, chequeNumber, accountNumber string) (Cheque, error) {
	if r.pool == nil {
		return Cheque{}, apperr.Unavailable("cheque store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c, err := r.scanCheque(r.pool.QueryRow(ctx,
		`SELECT cheque_number, account_number, amount, status, issue_date, clearing_date, payee_name
		 FROM cheques WHERE cheque_number = $1 AND account_number = $2`,
		chequeNumber, accountNumber,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Cheque{}, apperr.NotFound("cheque not found")
		}
		return Cheque{}, apperr.Wrap(apperr.KindUnavailable, "cheque store unreachable", err).WithOp("cheques.ByNumberAndAccount")
	}
	return c, nil
}
