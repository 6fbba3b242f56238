// Package accounts serves balance, transaction history and KYC status reads
// over the two-tier source chain: the database answers first, the generated
// dataset backs it up.
package accounts

import (
	"context"

	"bankwise_support_backend/internal/lookup"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/logger"
)

// Account is the read model shared by the balance and KYC endpoints.
type Account struct {
	AccountNumber string
	Balance       float64
	Currency      string
	KYCStatus     string
	KYCLevel      string
	LastUpdated   string
}

// Transaction is a single history entry.
type Transaction struct {
	ID           string  `json:"id"`
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount"`
	Type         string  `json:"type"`
	BalanceAfter float64 `json:"balance_after"`
}

// Service resolves account reads through the source chain.
type Service struct {
	repo  *Repository
	store *mockdata.Store
	log   *logger.Logger

	accountChain *lookup.Chain[Account]
}

func NewService(repo *Repository, store *mockdata.Store, log *logger.Logger) *Service {
	s := &Service{repo: repo, store: store, log: log}
	s.accountChain = lookup.NewChain[Account](log, "Account not found",
		lookup.SourceFunc[Account]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) (Account, error) {
				return repo.AccountByNumber(ctx, key)
			},
		},
		lookup.SourceFunc[Account]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) (Account, error) {
				record, ok := store.AccountByNumber(key)
				if !ok {
					return Account{}, apperr.NotFound("account not found")
				}
				return Account{
					AccountNumber: record.AccountNumber,
					Balance:       record.Balance,
					Currency:      record.Currency,
					KYCStatus:     record.KYCStatus,
					KYCLevel:      record.KYCLevel,
					LastUpdated:   record.LastUpdated,
				}, nil
			},
		},
	)
	return s
}

// AccountByNumber returns the account from the first tier that has it.
func (s *Service) AccountByNumber(ctx context.Context, accountNumber string) (Account, error) {
	return s.accountChain.Find(ctx, accountNumber)
}

// TransactionHistory returns up to limit transactions, newest first. The
// chain key encodes the limit so each tier sees the same bound.
func (s *Service) TransactionHistory(ctx context.Context, accountNumber string, limit int) ([]Transaction, error) {
	chain := lookup.NewChain[[]Transaction](s.log, "Account not found",
		lookup.SourceFunc[[]Transaction]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) ([]Transaction, error) {
				return s.repo.TransactionsByAccount(ctx, key, limit)
			},
		},
		lookup.SourceFunc[[]Transaction]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) ([]Transaction, error) {
				if _, ok := s.store.AccountByNumber(key); !ok {
					return nil, apperr.NotFound("account not found")
				}
				records := s.store.TransactionsByAccount(key, limit)
				transactions := make([]Transaction, 0, len(records))
				for _, t := range records {
					transactions = append(transactions, Transaction{
						ID:           t.ID,
						Date:         t.TransactionDate,
						Description:  t.Description,
						Amount:       t.Amount,
						Type:         t.Type,
						BalanceAfter: t.BalanceAfter,
					})
				}
				return transactions, nil
			},
		},
	)
	return chain.Find(ctx, accountNumber)
}
