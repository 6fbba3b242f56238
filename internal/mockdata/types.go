// Package mockdata owns the generated fallback dataset: the secondary tier
// behind every banking lookup. Records are loaded from JSON flat files on
// start (or generated when a file is missing or unreadable) and written back
// as whole-file snapshots after every mutation.
package mockdata

// Account is a demo bank account with its KYC state.
type Account struct {
	AccountNumber string   `json:"account_number"`
	AccountType   string   `json:"account_type"`
	Balance       float64  `json:"balance"`
	Currency      string   `json:"currency"`
	CustomerName  string   `json:"customer_name"`
	CustomerID    string   `json:"customer_id"`
	BranchCode    string   `json:"branch_code"`
	IFSCCode      string   `json:"ifsc_code"`
	KYCStatus     string   `json:"kyc_status"`
	KYCLevel      string   `json:"kyc_level"`
	LastUpdated   string   `json:"last_updated"`
	AccountStatus string   `json:"account_status"`
	LinkedCards   []string `json:"linked_cards"`
	MobileNumbers []string `json:"mobile_numbers"`
	Email         string   `json:"email,omitempty"`
}

// Card is a debit or credit card linked to an account.
type Card struct {
	CardNumber         string  `json:"card_number"`
	AccountNumber      string  `json:"account_number"`
	CardType           string  `json:"card_type"`
	CardNetwork        string  `json:"card_network"`
	ExpiryDate         string  `json:"expiry_date"`
	CardStatus         string  `json:"card_status"`
	DailyLimit         float64 `json:"daily_limit"`
	MonthlyLimit       float64 `json:"monthly_limit"`
	InternationalUsage string  `json:"international_usage"`
	Contactless        string  `json:"contactless"`
	IssueDate          string  `json:"issue_date"`
	CustomerName       string  `json:"customer_name"`
}

// Transaction is a single ledger entry on an account.
type Transaction struct {
	ID              string  `json:"id"`
	AccountNumber   string  `json:"account_number"`
	TransactionDate string  `json:"transaction_date"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	Type            string  `json:"type"`
	BalanceAfter    float64 `json:"balance_after"`
	Status          string  `json:"status"`
	ReferenceID     string  `json:"reference_id"`
	MerchantID      string  `json:"merchant_id,omitempty"`
	Location        string  `json:"location,omitempty"`
}

// Branch is a bank branch location.
type Branch struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Pincode      string  `json:"pincode"`
	IFSC         string  `json:"ifsc"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Phone        string  `json:"phone"`
	WorkingHours string  `json:"working_hours"`
	BranchType   string  `json:"branch_type"`
	ManagerName  string  `json:"manager_name"`
}

// ATM is a cash machine location.
type ATM struct {
	ID              string  `json:"id"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	Pincode         string  `json:"pincode"`
	BankName        string  `json:"bank_name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Type            string  `json:"type"`
	AlwaysOpen      string  `json:"24x7"`
	Facilities      string  `json:"facilities"`
	LastMaintenance string  `json:"last_maintenance"`
	Status          string  `json:"status"`
}

// Complaint is a customer-service ticket.
type Complaint struct {
	TicketID                 string  `json:"ticket_id"`
	AccountNumber            string  `json:"account_number"`
	Subject                  string  `json:"subject"`
	Description              string  `json:"description"`
	Category                 string  `json:"category"`
	Status                   string  `json:"status"`
	Priority                 string  `json:"priority"`
	CreatedAt                string  `json:"created_at"`
	ResolvedAt               *string `json:"resolved_at"`
	EstimatedResolutionDays  int     `json:"estimated_resolution_days"`
	AssignedAgent            *string `json:"assigned_agent"`
	ResolutionNotes          *string `json:"resolution_notes"`
}

// Dispute is a contested transaction ticket.
type Dispute struct {
	TicketID                string  `json:"ticket_id"`
	AccountNumber           string  `json:"account_number"`
	TransactionID           string  `json:"transaction_id"`
	Amount                  float64 `json:"amount"`
	TransactionDate         string  `json:"transaction_date"`
	DisputeType             string  `json:"dispute_type"`
	Reason                  string  `json:"reason"`
	Description             string  `json:"description"`
	Status                  string  `json:"status"`
	CreatedAt               string  `json:"created_at"`
	ResolvedAt              *string `json:"resolved_at"`
	EstimatedResolutionDays int     `json:"estimated_resolution_days"`
	AssignedOfficer         *string `json:"assigned_officer"`
	ResolutionNotes         *string `json:"resolution_notes"`
	EvidenceSubmitted       string  `json:"evidence_submitted"`
	CustomerContacted       string  `json:"customer_contacted"`
}

// Loan is a disbursed loan with its repayment state.
type Loan struct {
	LoanID           string  `json:"loan_id"`
	AccountNumber    string  `json:"account_number"`
	LoanType         string  `json:"loan_type"`
	Principal        float64 `json:"principal"`
	InterestRate     float64 `json:"interest_rate"`
	TenureMonths     int     `json:"tenure_months"`
	EMIAmount        float64 `json:"emi_amount"`
	DisbursementDate string  `json:"disbursement_date"`
	NextEMIDate      string  `json:"next_emi_date"`
	TotalEMIs        int     `json:"total_emis"`
	PaidEMIs         int     `json:"paid_emis"`
	RemainingTenure  int     `json:"remaining_tenure"`
	Status           string  `json:"status"`
}

// FDRate is a fixed-deposit interest rate slab.
type FDRate struct {
	Tenure       int     `json:"tenure"`
	Rate         float64 `json:"rate"`
	CustomerType string  `json:"customer_type"`
	MinAmount    float64 `json:"min_amount"`
	MaxAmount    float64 `json:"max_amount"`
	Currency     string  `json:"currency"`
	LastUpdated  string  `json:"last_updated"`
}

// Cheque is an issued cheque and its clearing state.
type Cheque struct {
	ChequeNumber  string  `json:"cheque_number"`
	AccountNumber string  `json:"account_number"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	IssueDate     string  `json:"issue_date"`
	ClearingDate  *string `json:"clearing_date"`
	PayeeName     string  `json:"payee_name"`
}
