// Command seed loads the generated dataset into Postgres so the database
// tier can answer lookups. Existing rows are replaced.
package main

import (
	"context"
	"os"
	"time"

	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/migrations"
	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/db"
	"bankwise_support_backend/platform/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}
	if cfg.DatabaseURL == "" {
		panic("DATABASE_URL is required for seeding")
	}

	log := logger.New(cfg.Env)
	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, cfg, migrations.FS); err != nil {
		log.Error("failed to run database migrations", "error", err)
		os.Exit(1)
	}

	store, err := mockdata.Open(cfg.MockDataDir, mockdata.NewGenerator(), log)
	if err != nil {
		log.Error("failed to open mock data store", "error", err)
		os.Exit(1)
	}

	if err := seed(ctx, pool, store); err != nil {
		log.Error("seeding failed", "error", err)
		os.Exit(1)
	}
	log.Info("seeding complete",
		"accounts", len(store.Accounts()),
		"cards", len(store.Cards()),
		"transactions", len(store.Transactions()),
	)
}

func seed(ctx context.Context, pool *pgxpool.Pool, store *mockdata.Store) error {
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `TRUNCATE accounts, cards, transactions, branches, atms,
			complaints, disputes, loans, fd_rates, cheques CASCADE`)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		for _, a := range store.Accounts() {
			batch.Queue(`INSERT INTO accounts (account_number, account_type, balance, currency,
				customer_name, customer_id, branch_code, ifsc_code, kyc_status, kyc_level,
				last_updated, account_status, linked_cards, mobile_numbers, email)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
				a.AccountNumber, a.AccountType, a.Balance, a.Currency,
				a.CustomerName, a.CustomerID, a.BranchCode, a.IFSCCode, a.KYCStatus, a.KYCLevel,
				asTime(a.LastUpdated), a.AccountStatus, a.LinkedCards, a.MobileNumbers, a.Email)
		}
		for _, c := range store.Cards() {
			batch.Queue(`INSERT INTO cards (card_number, account_number, card_type, card_network,
				expiry_date, card_status, daily_limit, monthly_limit, international_usage,
				contactless, issue_date, customer_name)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
				c.CardNumber, c.AccountNumber, c.CardType, c.CardNetwork,
				c.ExpiryDate, c.CardStatus, c.DailyLimit, c.MonthlyLimit, c.InternationalUsage,
				c.Contactless, asTime(c.IssueDate), c.CustomerName)
		}
		for _, t := range store.Transactions() {
			batch.Queue(`INSERT INTO transactions (transaction_id, account_number, transaction_date,
				description, amount, type, balance_after, status, reference_id, merchant_id, location)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
				t.ID, t.AccountNumber, asTime(t.TransactionDate),
				t.Description, t.Amount, t.Type, t.BalanceAfter, t.Status, t.ReferenceID,
				nullable(t.MerchantID), nullable(t.Location))
		}
		for _, b := range store.Branches() {
			batch.Queue(`INSERT INTO branches (name, address, city, pincode, ifsc, latitude,
				longitude, phone, working_hours, branch_type, manager_name)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
				b.Name, b.Address, b.City, b.Pincode, b.IFSC, b.Latitude,
				b.Longitude, b.Phone, b.WorkingHours, b.BranchType, b.ManagerName)
		}
		for _, a := range store.ATMs() {
			batch.Queue(`INSERT INTO atms (atm_id, address, city, pincode, bank_name, latitude,
				longitude, type, "24x7", facilities, last_maintenance, status)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
				a.ID, a.Address, a.City, a.Pincode, a.BankName, a.Latitude,
				a.Longitude, a.Type, a.AlwaysOpen, nullable(a.Facilities), asTime(a.LastMaintenance), a.Status)
		}
		for _, c := range store.Complaints() {
			batch.Queue(`INSERT INTO complaints (ticket_id, account_number, subject, description,
				category, status, priority, created_at, resolved_at, estimated_resolution_days,
				assigned_agent, resolution_notes)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
				c.TicketID, c.AccountNumber, c.Subject, c.Description,
				c.Category, c.Status, c.Priority, asTime(c.CreatedAt), asTimePtr(c.ResolvedAt),
				c.EstimatedResolutionDays, c.AssignedAgent, c.ResolutionNotes)
		}
		for _, d := range store.Disputes() {
			batch.Queue(`INSERT INTO disputes (ticket_id, account_number, transaction_id, amount,
				transaction_date, dispute_type, reason, description, status, created_at,
				resolved_at, estimated_resolution_days, assigned_officer, resolution_notes,
				evidence_submitted, customer_contacted)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
				d.TicketID, d.AccountNumber, d.TransactionID, d.Amount,
				asTime(d.TransactionDate), d.DisputeType, d.Reason, d.Description, d.Status,
				asTime(d.CreatedAt), asTimePtr(d.ResolvedAt), d.EstimatedResolutionDays,
				d.AssignedOfficer, d.ResolutionNotes, d.EvidenceSubmitted, d.CustomerContacted)
		}
		for _, l := range store.Loans() {
			batch.Queue(`INSERT INTO loans (loan_id, account_number, loan_type, principal,
				interest_rate, tenure_months, emi_amount, disbursement_date, next_emi_date,
				total_emis, paid_emis, remaining_tenure, status)
				VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
				l.LoanID, l.AccountNumber, l.LoanType, l.Principal,
				l.InterestRate, l.TenureMonths, l.EMIAmount, asTime(l.DisbursementDate),
				asTime(l.NextEMIDate), l.TotalEMIs, l.PaidEMIs, l.RemainingTenure, l.Status)
		}
		for _, r := range store.FDRates() {
			batch.Queue(`INSERT INTO fd_rates (tenure, rate, customer_type, min_amount,
				max_amount, currency, last_updated)
				VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				r.Tenure, r.Rate, r.CustomerType, r.MinAmount,
				r.MaxAmount, r.Currency, asTime(r.LastUpdated))
		}
		for _, c := range store.Cheques() {
			batch.Queue(`INSERT INTO cheques (cheque_number, account_number, amount, status,
				issue_date, clearing_date, payee_name)
				VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				c.ChequeNumber, c.AccountNumber, c.Amount, c.Status,
				asTime(c.IssueDate), asTimePtr(c.ClearingDate), c.PayeeName)
		}

		return tx.SendBatch(ctx, batch).Close()
	})
}

// asTime parses a generated RFC3339 timestamp, falling back to now on a
// malformed value so a hand-edited dataset cannot abort the seed.
func asTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Now()
	}
	return t
}

func asTimePtr(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t := asTime(*value)
	return &t
}

func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
