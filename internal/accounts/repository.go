package accounts

import (
	"context"
	"errors"
	"time"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads accounts and transactions from Postgres. The pool may be
// nil when the service runs without a database; every read then reports the
// store as unavailable so callers fall through to the generated dataset.
type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, cfg config.DatabaseConfig) *Repository {
	return &Repository{pool: pool, timeout: cfg.GetQueryTimeout()}
}

// AccountByNumber returns the stored account row.
func (r *Repository) AccountByNumber(ctx context.Context, accountNumber string) (Account, error) {
	if r.pool == nil {
		return Account{}, apperr.Unavailable("account store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var a Account
	var lastUpdated time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT account_number, balance, currency, kyc_status, kyc_level, last_updated
		 FROM accounts WHERE account_number = $1`,
		accountNumber,
	).Scan(&a.AccountNumber, &a.Balance, &a.Currency, &a.KYCStatus, &a.KYCLevel, &lastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, apperr.NotFound("account not found")
		}
		return Account{}, apperr.Wrap(apperr.KindUnavailable, "account store unreachable", err).WithOp("accounts.AccountByNumber")
	}
	a.LastUpdated = lastUpdated.Format(time.RFC3339)
	return a, nil
}

// TransactionsByAccount returns the newest transactions first. An account
// with no rows reports not found so the next tier can answer.
func (r *Repository) TransactionsByAccount(ctx context.Context, accountNumber string, limit int) ([]Transaction, error) {
	if r.pool == nil {
		return nil, apperr.Unavailable("transaction store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT transaction_id, transaction_date, description, amount, type, balance_after
		 FROM transactions WHERE account_number = $1
		 ORDER BY transaction_date DESC LIMIT $2`,
		accountNumber, limit,
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "transaction store unreachable", err).WithOp("accounts.TransactionsByAccount")
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		var t Transaction
		var date time.Time
		if err := rows.Scan(&t.ID, &date, &t.Description, &t.Amount, &t.Type, &t.BalanceAfter); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan transaction row", err)
		}
		t.Date = date.Format(time.RFC3339)
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "transaction store unreachable", err)
	}
	if len(transactions) == 0 {
		return nil, apperr.NotFound("no transactions found")
	}
	return transactions, nil
}
