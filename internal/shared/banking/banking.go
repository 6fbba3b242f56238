// Package banking holds small shared types used across the banking modules.
package banking

// Status is the outcome field carried by every banking response.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusPending  Status = "pending"
	StatusFailed   Status = "failed"
	StatusNotFound Status = "not_found"
)

// MaskAccountNumber hides all but the last four digits of an account number.
func MaskAccountNumber(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return accountNumber
	}
	return "******" + accountNumber[len(accountNumber)-4:]
}

// MaskCard renders a card reference from its last four digits.
func MaskCard(last4 string) string {
	return "****" + last4
}
