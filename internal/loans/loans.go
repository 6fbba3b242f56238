// Package loans serves loan status reads over the two-tier source chain.
package loans

import (
	"context"
	"errors"
	"time"

	"bankwise_support_backend/internal/lookup"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Loan is the status read model.
type Loan struct {
	LoanID          string  `json:"loan_id"`
	LoanType        string  `json:"loan_type"`
	Principal       float64 `json:"principal"`
	EMIAmount       float64 `json:"emi_amount"`
	DueDate         string  `json:"due_date"`
	RemainingTenure int     `json:"remaining_tenure"`
	InterestRate    float64 `json:"interest_rate"`
	Status          string  `json:"status"`
}

// Repository reads loans from Postgres.
type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, cfg config.DatabaseConfig) *Repository {
	return &Repository{pool: pool, timeout: cfg.GetQueryTimeout()}
}

// ByID returns the loan with the given id.
func (r *Repository) ByID(ctx context.Context, loanID string) (Loan, error) {
	if r.pool == nil {
		return Loan{}, apperr.Unavailable("loan store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var l Loan
	var nextEMI time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT loan_id, loan_type, principal, emi_amount, next_emi_date,
		        remaining_tenure, interest_rate, status
		 FROM loans WHERE loan_id = $1`,
		loanID,
	).Scan(&l.LoanID, &l.LoanType, &l.Principal, &l.EMIAmount, &nextEMI,
		&l.RemainingTenure, &l.InterestRate, &l.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Loan{}, apperr.NotFound("loan not found")
		}
		return Loan{}, apperr.Wrap(apperr.KindUnavailable, "loan store unreachable", err).WithOp("loans.ByID")
	}
	l.DueDate = nextEMI.Format(time.RFC3339)
	return l, nil
}

// Service resolves loan reads through the source chain.
type Service struct {
	chain *lookup.Chain[Loan]
}

func NewService(repo *Repository, store *mockdata.Store, log *logger.Logger) *Service {
	chain := lookup.NewChain[Loan](log, "Loan not found",
		lookup.SourceFunc[Loan]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) (Loan, error) {
				return repo.ByID(ctx, key)
			},
		},
		lookup.SourceFunc[Loan]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) (Loan, error) {
				record, ok := store.LoanByID(key)
				if !ok {
					return Loan{}, apperr.NotFound("loan not found")
				}
				return Loan{
					LoanID:          record.LoanID,
					LoanType:        record.LoanType,
					Principal:       record.Principal,
					EMIAmount:       record.EMIAmount,
					DueDate:         record.NextEMIDate,
					RemainingTenure: record.RemainingTenure,
					InterestRate:    record.InterestRate,
					Status:          record.Status,
				}, nil
			},
		},
	)
	return &Service{chain: chain}
}

// ByID returns the loan from the first tier that has it.
func (s *Service) ByID(ctx context.Context, loanID string) (Loan, error) {
	return s.chain.Find(ctx, loanID)
}
