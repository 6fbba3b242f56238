// Package deposits serves fixed deposit rate slabs, optionally filtered by
// tenure, over the two-tier source chain.
package deposits

import (
	"context"
	"fmt"
	"time"

	"bankwise_support_backend/internal/lookup"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Rate is one fixed deposit slab.
type Rate struct {
	Tenure    int     `json:"tenure"`
	Rate      float64 `json:"rate"`
	MinAmount float64 `json:"min_amount"`
	MaxAmount float64 `json:"max_amount"`
	Currency  string  `json:"currency"`
}

// Repository reads rate slabs from Postgres.
type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, cfg config.DatabaseConfig) *Repository {
	return &Repository{pool: pool, timeout: cfg.GetQueryTimeout()}
}

// RatesByTenure returns slabs for the tenure, or every slab when tenure is
// zero. Empty results report not found so the fallback tier can answer.
func (r *Repository) RatesByTenure(ctx context.Context, tenure int) ([]Rate, error) {
	if r.pool == nil {
		return nil, apperr.Unavailable("rate store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT tenure, rate, min_amount, max_amount, currency
	          FROM fd_rates ORDER BY tenure, customer_type`
	args := []interface{}{}
	if tenure > 0 {
		query = `SELECT tenure, rate, min_amount, max_amount, currency
		         FROM fd_rates WHERE tenure = $1 ORDER BY customer_type`
		args = append(args, tenure)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "rate store unreachable", err).WithOp("deposits.RatesByTenure")
	}
	defer rows.Close()

	var rates []Rate
	for rows.Next() {
		var rate Rate
		if err := rows.Scan(&rate.Tenure, &rate.Rate, &rate.MinAmount, &rate.MaxAmount, &rate.Currency); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan rate row", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "rate store unreachable", err)
	}
	if len(rates) == 0 {
		return nil, apperr.NotFound("no rates found")
	}
	return rates, nil
}

// Service resolves rate reads through the source chain.
type Service struct {
	repo  *Repository
	store *mockdata.Store
	log   *logger.Logger
}

func NewService(repo *Repository, store *mockdata.Store, log *logger.Logger) *Service {
	return &Service{repo: repo, store: store, log: log}
}

// Rates returns the slabs for the tenure (all slabs when tenure is zero).
func (s *Service) Rates(ctx context.Context, tenure int) ([]Rate, error) {
	chain := lookup.NewChain[[]Rate](s.log, "No rates found",
		lookup.SourceFunc[[]Rate]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) ([]Rate, error) {
				return s.repo.RatesByTenure(ctx, tenure)
			},
		},
		lookup.SourceFunc[[]Rate]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) ([]Rate, error) {
				records := s.store.FDRatesByTenure(tenure)
				if len(records) == 0 {
					return nil, apperr.NotFound("no rates found")
				}
				rates := make([]Rate, 0, len(records))
				for _, r := range records {
					rates = append(rates, Rate{
						Tenure:    r.Tenure,
						Rate:      r.Rate,
						MinAmount: r.MinAmount,
						MaxAmount: r.MaxAmount,
						Currency:  r.Currency,
					})
				}
				return rates, nil
			},
		},
	)
	return chain.Find(ctx, fmt.Sprintf("tenure:%d", tenure))
}
