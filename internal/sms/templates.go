package sms

import (
	"fmt"
	"strconv"
	"strings"
)

// Message templates for the banking notification scenarios.

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func ComplaintConfirmation(ticketID, customerName string) string {
	return fmt.Sprintf(
		"Dear %s, your complaint has been registered with ticket ID: %s. We will resolve it within 7-10 business days. Thank you for banking with us.",
		customerName, ticketID)
}

func ComplaintResolution(ticketID, customerName string) string {
	return fmt.Sprintf(
		"Dear %s, your complaint %s has been resolved. Please check your account or contact us if you need further assistance. Thank you for your patience.",
		customerName, ticketID)
}

func DisputeConfirmation(ticketID, customerName string, amount float64) string {
	return fmt.Sprintf(
		"Dear %s, your dispute for ₹%s has been registered with ticket ID: %s. We will investigate and respond within 15-30 business days.",
		customerName, formatAmount(amount), ticketID)
}

func DisputeResolution(ticketID, customerName, status string) string {
	return fmt.Sprintf(
		"Dear %s, your dispute %s has been %s. Please check your account for updates or contact us for more details.",
		customerName, ticketID, strings.ToLower(status))
}

func AccountAlert(customerName, alertType, details string) string {
	return fmt.Sprintf(
		"Dear %s, %s: %s. If this wasn't you, please contact us immediately.",
		customerName, alertType, details)
}

func TransactionAlert(customerName string, amount float64, transactionType string) string {
	return fmt.Sprintf(
		"Dear %s, your account has been %s with ₹%s. If this wasn't authorized by you, please contact us immediately.",
		customerName, transactionType, formatAmount(amount))
}
