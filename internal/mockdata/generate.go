package mockdata

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Generator builds the fallback dataset. The random source is injectable so
// tests can seed it for stable output.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator returns a generator seeded from the clock.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator returns a deterministic generator.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

var (
	firstNames = []string{
		"Aarav", "Vivaan", "Aditya", "Ananya", "Diya", "Ishaan", "Kavya",
		"Rohan", "Priya", "Arjun", "Sneha", "Rahul", "Meera", "Karan",
		"Pooja", "Nikhil", "Riya", "Sanjay", "Neha", "Vikram",
	}
	lastNames = []string{
		"Sharma", "Verma", "Patel", "Reddy", "Iyer", "Gupta", "Nair",
		"Singh", "Mehta", "Joshi", "Kulkarni", "Chopra", "Das", "Banerjee",
	}
	cities = []string{
		"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai",
		"Kolkata", "Pune", "Ahmedabad", "Jaipur", "Lucknow",
	}
	streets = []string{
		"MG Road", "Station Road", "Nehru Street", "Gandhi Marg",
		"Park Avenue", "Link Road", "Ring Road", "Market Street",
	}
	merchants = []string{
		"Amazon", "Flipkart", "Walmart", "Target", "Starbucks",
		"McDonalds", "Uber", "Swiggy",
	}
)

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) floatBetween(lo, hi float64) float64 {
	v := lo + g.rng.Float64()*(hi-lo)
	return float64(int(v*100)) / 100
}

func (g *Generator) name() string {
	return g.pick(firstNames) + " " + g.pick(lastNames)
}

func (g *Generator) address() string {
	return fmt.Sprintf("%d %s", g.intBetween(1, 450), g.pick(streets))
}

func (g *Generator) daysAgo(lo, hi int) string {
	return g.now.AddDate(0, 0, -g.intBetween(lo, hi)).Format(time.RFC3339)
}

// Accounts builds 20 demo accounts.
func (g *Generator) Accounts() []Account {
	accountTypes := []string{"Savings", "Current", "Salary"}
	accounts := make([]Account, 0, 20)
	for i := 0; i < 20; i++ {
		name := g.name()
		mobiles := make([]string, g.intBetween(1, 3))
		for j := range mobiles {
			mobiles[j] = fmt.Sprintf("+91%d", 7000000000+g.rng.Int63n(3000000000))
		}
		linked := make([]string, g.intBetween(1, 3))
		for j := range linked {
			linked[j] = fmt.Sprintf("****%d", g.intBetween(1000, 9999))
		}
		accounts = append(accounts, Account{
			AccountNumber: fmt.Sprintf("%d%d", g.intBetween(1000, 9999), g.intBetween(10000000, 99999999)),
			AccountType:   g.pick(accountTypes),
			Balance:       g.floatBetween(1000, 1000000),
			Currency:      "INR",
			CustomerName:  name,
			CustomerID:    fmt.Sprintf("CUST%d", g.intBetween(10000, 99999)),
			BranchCode:    fmt.Sprintf("BRANCH%d", g.intBetween(100, 999)),
			IFSCCode:      fmt.Sprintf("BARB%d", g.intBetween(1000, 9999)),
			KYCStatus:     g.pick([]string{"VERIFIED", "PENDING", "UNDER_REVIEW"}),
			KYCLevel:      g.pick([]string{"LEVEL_1", "LEVEL_2", "LEVEL_3"}),
			LastUpdated:   g.daysAgo(1, 365),
			AccountStatus: g.pick([]string{"ACTIVE", "INACTIVE", "FROZEN"}),
			LinkedCards:   linked,
			MobileNumbers: mobiles,
			Email:         strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		})
	}
	return accounts
}

// Cards builds 1 to 3 cards per account.
func (g *Generator) Cards(accounts []Account) []Card {
	var cards []Card
	for _, account := range accounts {
		for i := 0; i < g.intBetween(1, 3); i++ {
			cards = append(cards, Card{
				CardNumber:         fmt.Sprintf("****%d", g.intBetween(1000, 9999)),
				AccountNumber:      account.AccountNumber,
				CardType:           g.pick([]string{"VISA", "MASTERCARD", "RUPAY"}),
				CardNetwork:        g.pick([]string{"CREDIT", "DEBIT"}),
				ExpiryDate:         fmt.Sprintf("%d/%d", g.intBetween(1, 12), g.intBetween(25, 30)),
				CardStatus:         g.pick([]string{"ACTIVE", "BLOCKED", "EXPIRED", "LOST"}),
				DailyLimit:         g.floatBetween(50000, 500000),
				MonthlyLimit:       g.floatBetween(200000, 2000000),
				InternationalUsage: g.pick([]string{"ALLOWED", "BLOCKED"}),
				Contactless:        g.pick([]string{"YES", "NO"}),
				IssueDate:          g.daysAgo(30, 1095),
				CustomerName:       account.CustomerName,
			})
		}
	}
	return cards
}

// Transactions builds a small ledger per account.
func (g *Generator) Transactions(accounts []Account) []Transaction {
	types := []string{"DEPOSIT", "WITHDRAWAL", "TRANSFER", "PURCHASE", "CASHBACK", "INTEREST"}
	var transactions []Transaction
	for _, account := range accounts {
		for i := 0; i < g.intBetween(1, 3); i++ {
			txType := g.pick(types)
			var description string
			var amount float64
			var merchant, location string
			switch txType {
			case "TRANSFER":
				description = "Transfer to " + g.name()
				amount = g.floatBetween(100, 50000)
			case "PURCHASE":
				merchant = g.pick(merchants)
				description = "Purchase at " + merchant
				amount = g.floatBetween(50, 10000)
				location = g.pick(cities)
			case "DEPOSIT":
				description = "Salary Credit"
				amount = g.floatBetween(10000, 100000)
			case "WITHDRAWAL":
				description = "ATM Withdrawal"
				amount = g.floatBetween(100, 20000)
			default:
				description = txType + " Credit"
				amount = g.floatBetween(10, 1000)
			}
			balanceAfter := account.Balance + amount
			switch txType {
			case "WITHDRAWAL", "TRANSFER", "PURCHASE":
				balanceAfter = account.Balance - amount
			}
			transactions = append(transactions, Transaction{
				ID:              fmt.Sprintf("TXN%d", g.intBetween(1000000, 9999999)),
				AccountNumber:   account.AccountNumber,
				TransactionDate: g.daysAgo(1, 730),
				Description:     description,
				Amount:          amount,
				Type:            txType,
				BalanceAfter:    balanceAfter,
				Status:          g.pick([]string{"COMPLETED", "PENDING", "FAILED"}),
				ReferenceID:     fmt.Sprintf("REF%d", g.intBetween(10000, 99999)),
				MerchantID:      merchant,
				Location:        location,
			})
		}
	}
	return transactions
}

// Branches builds 2 to 5 branches in each of the ten covered cities.
func (g *Generator) Branches() []Branch {
	var branches []Branch
	for _, city := range cities {
		for i := 0; i < g.intBetween(2, 5); i++ {
			branches = append(branches, Branch{
				Name:         fmt.Sprintf("BOB %s %s", city, g.pick([]string{"Main", "Branch", "Road", "Center"})),
				Address:      g.address(),
				City:         city,
				Pincode:      fmt.Sprintf("%d", g.intBetween(110000, 500000)),
				IFSC:         fmt.Sprintf("BARB%d", g.intBetween(1000, 9999)),
				Latitude:     18 + g.rng.Float64()*10,
				Longitude:    72 + g.rng.Float64()*16,
				Phone:        fmt.Sprintf("%d%d", g.intBetween(2000, 9999), g.intBetween(100000, 999999)),
				WorkingHours: "9:30 AM - 4:30 PM",
				BranchType:   g.pick([]string{"FULL_SERVICE", "ATM_ONLY", "BUSINESS_CENTER"}),
				ManagerName:  g.name(),
			})
		}
	}
	return branches
}

// ATMs builds 5 to 15 machines per city.
func (g *Generator) ATMs() []ATM {
	banks := []string{
		"Bank of Baroda", "State Bank of India", "HDFC Bank",
		"ICICI Bank", "Punjab National Bank",
	}
	var atms []ATM
	for _, city := range cities {
		for i := 0; i < g.intBetween(5, 15); i++ {
			atms = append(atms, ATM{
				ID:              fmt.Sprintf("ATM%d", g.intBetween(10000, 99999)),
				Address:         g.address(),
				City:            city,
				Pincode:         fmt.Sprintf("%d", g.intBetween(110000, 500000)),
				BankName:        g.pick(banks),
				Latitude:        18 + g.rng.Float64()*10,
				Longitude:       72 + g.rng.Float64()*16,
				Type:            g.pick([]string{"ON_SITE", "OFF_SITE"}),
				AlwaysOpen:      g.pick([]string{"YES", "NO"}),
				Facilities:      g.pick([]string{"CASH_DEPOSIT", "CASH_WITHDRAWAL", "BALANCE_ENQUIRY", "MINI_STATEMENT", "CARD_RENEWAL"}),
				LastMaintenance: g.daysAgo(1, 90),
				Status:          g.pick([]string{"ACTIVE", "OUT_OF_SERVICE", "MAINTENANCE"}),
			})
		}
	}
	return atms
}

// Complaints builds 50 historical tickets, roughly 70% resolved.
func (g *Generator) Complaints(accounts []Account) []Complaint {
	categories := []string{
		"ACCOUNT", "CARD", "TRANSACTION", "ATM", "BRANCH",
		"LOAN", "FD", "NET_BANKING", "MOBILE_BANKING", "OTHER",
	}
	complaints := make([]Complaint, 0, 50)
	for i := 0; i < 50; i++ {
		created := g.now.AddDate(0, 0, -g.intBetween(1, 365))
		var resolvedAt, notes, agent *string
		if g.rng.Float64() < 0.7 {
			r := created.AddDate(0, 0, g.intBetween(1, 30)).Format(time.RFC3339)
			resolvedAt = &r
			n := "Issue resolved after investigation."
			notes = &n
		}
		if g.rng.Float64() < 0.8 {
			a := fmt.Sprintf("AGENT%d", g.intBetween(100, 999))
			agent = &a
		}
		category := g.pick(categories)
		complaints = append(complaints, Complaint{
			TicketID:                fmt.Sprintf("COMPLAINT%d", g.intBetween(10000, 99999)),
			AccountNumber:           accounts[g.rng.Intn(len(accounts))].AccountNumber,
			Subject:                 "Complaint regarding " + category,
			Description:             "Customer reported an issue with " + strings.ToLower(category) + " services.",
			Category:                category,
			Status:                  g.pick([]string{"OPEN", "IN_PROGRESS", "RESOLVED", "CLOSED", "ESCALATED"}),
			Priority:                g.pick([]string{"LOW", "MEDIUM", "HIGH", "URGENT"}),
			CreatedAt:               created.Format(time.RFC3339),
			ResolvedAt:              resolvedAt,
			EstimatedResolutionDays: g.intBetween(1, 15),
			AssignedAgent:           agent,
			ResolutionNotes:         notes,
		})
	}
	return complaints
}

// Disputes builds 30 historical tickets, roughly 60% resolved.
func (g *Generator) Disputes(accounts []Account) []Dispute {
	disputes := make([]Dispute, 0, 30)
	for i := 0; i < 30; i++ {
		created := g.now.AddDate(0, 0, -g.intBetween(1, 90))
		var resolvedAt, notes, officer *string
		if g.rng.Float64() < 0.6 {
			r := created.AddDate(0, 0, g.intBetween(3, 45)).Format(time.RFC3339)
			resolvedAt = &r
			n := "Dispute settled after merchant review."
			notes = &n
		}
		if g.rng.Float64() < 0.7 {
			o := fmt.Sprintf("OFFICER%d", g.intBetween(100, 999))
			officer = &o
		}
		disputes = append(disputes, Dispute{
			TicketID:                fmt.Sprintf("DISPUTE%d", g.intBetween(10000, 99999)),
			AccountNumber:           accounts[g.rng.Intn(len(accounts))].AccountNumber,
			TransactionID:           fmt.Sprintf("TXN%d", g.intBetween(1000000, 9999999)),
			Amount:                  g.floatBetween(100, 50000),
			TransactionDate:         g.daysAgo(1, 30),
			DisputeType:             g.pick([]string{"FRAUD", "UNAUTHORIZED", "BILLING_ERROR", "SERVICE_CHARGE", "OTHER"}),
			Reason:                  "Transaction not recognized by the customer.",
			Description:             "Customer flagged a charge they did not authorize.",
			Status:                  g.pick([]string{"OPEN", "UNDER_REVIEW", "APPROVED", "REJECTED", "RESOLVED"}),
			CreatedAt:               created.Format(time.RFC3339),
			ResolvedAt:              resolvedAt,
			EstimatedResolutionDays: g.intBetween(5, 30),
			AssignedOfficer:         officer,
			ResolutionNotes:         notes,
			EvidenceSubmitted:       g.pick([]string{"YES", "NO"}),
			CustomerContacted:       g.pick([]string{"YES", "NO"}),
		})
	}
	return disputes
}

// Loans builds 40 disbursed loans.
func (g *Generator) Loans(accounts []Account) []Loan {
	loanTypes := []string{
		"HOME_LOAN", "PERSONAL_LOAN", "CAR_LOAN",
		"EDUCATION_LOAN", "GOLD_LOAN", "BUSINESS_LOAN",
	}
	loans := make([]Loan, 0, 40)
	for i := 0; i < 40; i++ {
		disbursed := g.now.AddDate(0, 0, -g.intBetween(30, 3650))
		tenure := g.intBetween(12, 360)
		paid := g.rng.Intn(tenure)
		emiStart := disbursed.AddDate(0, 0, 30)
		loans = append(loans, Loan{
			LoanID:           fmt.Sprintf("LN%d", g.intBetween(10000, 99999)),
			AccountNumber:    accounts[g.rng.Intn(len(accounts))].AccountNumber,
			LoanType:         g.pick(loanTypes),
			Principal:        g.floatBetween(50000, 10000000),
			InterestRate:     g.floatBetween(7.5, 15.5),
			TenureMonths:     tenure,
			EMIAmount:        g.floatBetween(1000, 100000),
			DisbursementDate: disbursed.Format(time.RFC3339),
			NextEMIDate:      emiStart.AddDate(0, 0, 30).Format(time.RFC3339),
			TotalEMIs:        tenure,
			PaidEMIs:         paid,
			RemainingTenure:  tenure - paid,
			Status:           g.pick([]string{"DISBURSED", "ACTIVE", "COMPLETED", "DEFAULT", "CLOSED"}),
		})
	}
	return loans
}

// FDRates builds a rate slab per tenure and customer type. Senior citizens
// earn 0.5% over the base rate.
func (g *Generator) FDRates() []FDRate {
	tenures := []int{7, 14, 30, 45, 60, 90, 120, 180, 365, 730, 1095, 1825, 3650}
	var rates []FDRate
	for _, tenure := range tenures {
		base := g.floatBetween(3.5, 8.5)
		for _, customerType := range []string{"NORMAL", "SENIOR_CITIZEN"} {
			rate := base
			if customerType == "SENIOR_CITIZEN" {
				rate += 0.5
			}
			rates = append(rates, FDRate{
				Tenure:       tenure,
				Rate:         rate,
				CustomerType: customerType,
				MinAmount:    10000,
				MaxAmount:    10000000,
				Currency:     "INR",
				LastUpdated:  g.now.Format(time.RFC3339),
			})
		}
	}
	return rates
}

// Cheques builds 1 to 3 cheques per account; cleared cheques carry a
// clearing date 1 to 5 days after issue.
func (g *Generator) Cheques(accounts []Account) []Cheque {
	var cheques []Cheque
	for _, account := range accounts {
		for i := 0; i < g.intBetween(1, 3); i++ {
			status := g.pick([]string{"Cleared", "Pending", "Bounced", "Under Process"})
			issued := g.now.AddDate(0, 0, -g.intBetween(1, 365))
			var clearing *string
			if status == "Cleared" {
				c := issued.AddDate(0, 0, g.intBetween(1, 5)).Format(time.RFC3339)
				clearing = &c
			}
			cheques = append(cheques, Cheque{
				ChequeNumber:  fmt.Sprintf("%d", g.intBetween(100000, 999999)),
				AccountNumber: account.AccountNumber,
				Amount:        g.floatBetween(1000, 50000),
				Status:        status,
				IssueDate:     issued.Format(time.RFC3339),
				ClearingDate:  clearing,
				PayeeName:     g.name(),
			})
		}
	}
	return cheques
}
