package mockdata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"bankwise_support_backend/platform/logger"
)

// Store holds the fallback dataset in memory and mirrors it to JSON files.
// Mutations are serialized by a mutex; every mutation rewrites the affected
// file as a whole (temp file + rename).
type Store struct {
	mu  sync.RWMutex
	dir string
	log *logger.Logger

	accounts     []Account
	cards        []Card
	transactions []Transaction
	branches     []Branch
	atms         []ATM
	complaints   []Complaint
	disputes     []Dispute
	loans        []Loan
	fdRates      []FDRate
	cheques      []Cheque
}

var dataFiles = map[string]string{
	"accounts":     "accounts.json",
	"cards":        "cards.json",
	"transactions": "transactions.json",
	"branches":     "branches.json",
	"atms":         "atms.json",
	"complaints":   "complaints.json",
	"disputes":     "disputes.json",
	"loans":        "loans.json",
	"fd_rates":     "fd_rates.json",
	"cheques":      "cheques.json",
}

// Open loads the dataset from dir, generating any entity whose file is
// missing or unreadable, and writes everything back so the files exist for
// the next start.
func Open(dir string, gen *Generator, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create mock data dir: %w", err)
	}

	s := &Store{dir: dir, log: log}

	if !loadJSONFile(s.path("accounts"), &s.accounts, log) || len(s.accounts) == 0 {
		s.accounts = gen.Accounts()
	}
	if !loadJSONFile(s.path("cards"), &s.cards, log) || len(s.cards) == 0 {
		s.cards = gen.Cards(s.accounts)
	}
	if !loadJSONFile(s.path("transactions"), &s.transactions, log) || len(s.transactions) == 0 {
		s.transactions = gen.Transactions(s.accounts)
	}
	if !loadJSONFile(s.path("branches"), &s.branches, log) || len(s.branches) == 0 {
		s.branches = gen.Branches()
	}
	if !loadJSONFile(s.path("atms"), &s.atms, log) || len(s.atms) == 0 {
		s.atms = gen.ATMs()
	}
	if !loadJSONFile(s.path("complaints"), &s.complaints, log) || len(s.complaints) == 0 {
		s.complaints = gen.Complaints(s.accounts)
	}
	if !loadJSONFile(s.path("disputes"), &s.disputes, log) || len(s.disputes) == 0 {
		s.disputes = gen.Disputes(s.accounts)
	}
	if !loadJSONFile(s.path("loans"), &s.loans, log) || len(s.loans) == 0 {
		s.loans = gen.Loans(s.accounts)
	}
	if !loadJSONFile(s.path("fd_rates"), &s.fdRates, log) || len(s.fdRates) == 0 {
		s.fdRates = gen.FDRates()
	}
	if !loadJSONFile(s.path("cheques"), &s.cheques, log) || len(s.cheques) == 0 {
		s.cheques = gen.Cheques(s.accounts)
	}

	s.saveAll()
	log.Info("mock dataset ready",
		"accounts", len(s.accounts),
		"cards", len(s.cards),
		"transactions", len(s.transactions),
	)
	return s, nil
}

func (s *Store) path(entity string) string {
	return filepath.Join(s.dir, dataFiles[entity])
}

func loadJSONFile[T any](path string, out *[]T, log *logger.Logger) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn("corrupt mock data file, regenerating", "file", path, "error", err.Error())
		return false
	}
	return true
}

// writeJSONFile writes the full record set atomically (temp file + rename).
func writeJSONFile[T any](path string, records []T, log *logger.Logger) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		log.Error("marshal mock data", "file", path, "error", err.Error())
		return
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Error("write mock data", "file", path, "error", err.Error())
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		log.Error("replace mock data", "file", path, "error", err.Error())
	}
}

func (s *Store) saveAll() {
	writeJSONFile(s.path("accounts"), s.accounts, s.log)
	writeJSONFile(s.path("cards"), s.cards, s.log)
	writeJSONFile(s.path("transactions"), s.transactions, s.log)
	writeJSONFile(s.path("branches"), s.branches, s.log)
	writeJSONFile(s.path("atms"), s.atms, s.log)
	writeJSONFile(s.path("complaints"), s.complaints, s.log)
	writeJSONFile(s.path("disputes"), s.disputes, s.log)
	writeJSONFile(s.path("loans"), s.loans, s.log)
	writeJSONFile(s.path("fd_rates"), s.fdRates, s.log)
	writeJSONFile(s.path("cheques"), s.cheques, s.log)
}

// AccountByNumber returns the account with the exact account number.
func (s *Store) AccountByNumber(accountNumber string) (Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.accounts {
		if a.AccountNumber == accountNumber {
			return a, true
		}
	}
	return Account{}, false
}

// CardByLast4 returns the first card whose number ends with the given digits.
func (s *Store) CardByLast4(last4 string) (Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cards {
		if strings.HasSuffix(c.CardNumber, last4) {
			return c, true
		}
	}
	return Card{}, false
}

// BlockCardByLast4 marks all matching cards BLOCKED and persists the set.
// Returns false when no card matches.
func (s *Store) BlockCardByLast4(last4 string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	blocked := false
	for i := range s.cards {
		if strings.HasSuffix(s.cards[i].CardNumber, last4) {
			s.cards[i].CardStatus = "BLOCKED"
			blocked = true
		}
	}
	if blocked {
		writeJSONFile(s.path("cards"), s.cards, s.log)
	}
	return blocked
}

// TransactionsByAccount returns up to limit transactions for the account,
// newest first.
func (s *Store) TransactionsByAccount(accountNumber string, limit int) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []Transaction
	for _, t := range s.transactions {
		if t.AccountNumber == accountNumber {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TransactionDate > result[j].TransactionDate
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// BranchesByCity returns up to limit branches whose city matches
// case-insensitively, ordered by name.
func (s *Store) BranchesByCity(city string, limit int) []Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []Branch
	for _, b := range s.branches {
		if strings.EqualFold(b.City, city) {
			result = append(result, b)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ATMsByPincode returns up to limit ATMs with the exact pincode, ordered by
// bank name.
func (s *Store) ATMsByPincode(pincode string, limit int) []ATM {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []ATM
	for _, a := range s.atms {
		if a.Pincode == pincode {
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].BankName < result[j].BankName })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ComplaintByTicket returns the complaint with the given ticket id.
func (s *Store) ComplaintByTicket(ticketID string) (Complaint, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.complaints {
		if c.TicketID == ticketID {
			return c, true
		}
	}
	return Complaint{}, false
}

// AppendComplaint stores a new complaint and persists the set.
func (s *Store) AppendComplaint(c Complaint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.complaints = append(s.complaints, c)
	writeJSONFile(s.path("complaints"), s.complaints, s.log)
}

// DisputeByTicket returns the dispute with the given ticket id.
func (s *Store) DisputeByTicket(ticketID string) (Dispute, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.disputes {
		if d.TicketID == ticketID {
			return d, true
		}
	}
	return Dispute{}, false
}

// AppendDispute stores a new dispute and persists the set.
func (s *Store) AppendDispute(d Dispute) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disputes = append(s.disputes, d)
	writeJSONFile(s.path("disputes"), s.disputes, s.log)
}

// UpdateDispute replaces the dispute with the same ticket id and persists
// the set. Returns false when the ticket is unknown.
func (s *Store) UpdateDispute(d Dispute) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.disputes {
		if s.disputes[i].TicketID == d.TicketID {
			s.disputes[i] = d
			writeJSONFile(s.path("disputes"), s.disputes, s.log)
			return true
		}
	}
	return false
}

// LoanByID returns the loan with the given id.
func (s *Store) LoanByID(loanID string) (Loan, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.loans {
		if l.LoanID == loanID {
			return l, true
		}
	}
	return Loan{}, false
}

// FDRatesByTenure returns rate slabs, filtered by tenure when tenure > 0,
// ordered tenure ascending.
func (s *Store) FDRatesByTenure(tenure int) []FDRate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []FDRate
	for _, r := range s.fdRates {
		if tenure <= 0 || r.Tenure == tenure {
			result = append(result, r)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Tenure < result[j].Tenure })
	return result
}

// ChequeByNumber returns the cheque with the given number.
func (s *Store) ChequeByNumber(chequeNumber string) (Cheque, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cheques {
		if c.ChequeNumber == chequeNumber {
			return c, true
		}
	}
	return Cheque{}, false
}

// Records returns a bounded snapshot of one entity set by name, for the
// dashboard views. Unknown names return nil.
func (s *Store) Records(entity string, limit int) interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch entity {
	case "accounts":
		return boundedCopy(s.accounts, limit)
	case "cards":
		return boundedCopy(s.cards, limit)
	case "transactions":
		return boundedCopy(s.transactions, limit)
	case "branches":
		return boundedCopy(s.branches, limit)
	case "atms":
		return boundedCopy(s.atms, limit)
	case "complaints":
		return boundedCopy(s.complaints, limit)
	case "disputes":
		return boundedCopy(s.disputes, limit)
	case "loans":
		return boundedCopy(s.loans, limit)
	case "fd_rates":
		return boundedCopy(s.fdRates, limit)
	case "cheques":
		return boundedCopy(s.cheques, limit)
	default:
		return nil
	}
}

func boundedCopy[T any](records []T, limit int) []T {
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}
	out := make([]T, limit)
	copy(out, records[:limit])
	return out
}

// Accounts returns a copy of all accounts (used by the database seeder).
func (s *Store) Accounts() []Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.accounts, 0)
}

// Cards returns a copy of all cards.
func (s *Store) Cards() []Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.cards, 0)
}

// Transactions returns a copy of all transactions.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.transactions, 0)
}

// Branches returns a copy of all branches.
func (s *Store) Branches() []Branch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.branches, 0)
}

// ATMs returns a copy of all ATMs.
func (s *Store) ATMs() []ATM {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.atms, 0)
}

// Complaints returns a copy of all complaints.
func (s *Store) Complaints() []Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.complaints, 0)
}

// Disputes returns a copy of all disputes.
func (s *Store) Disputes() []Dispute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.disputes, 0)
}

// Loans returns a copy of all loans.
func (s *Store) Loans() []Loan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.loans, 0)
}

// FDRates returns a copy of all FD rate slabs.
func (s *Store) FDRates() []FDRate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.fdRates, 0)
}

// Cheques returns a copy of all cheques.
func (s *Store) Cheques() []Cheque {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return boundedCopy(s.cheques, 0)
}
