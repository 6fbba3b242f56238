// Package disputes raises and tracks transaction dispute tickets. Raising
// and resolving a dispute publishes events that drive the customer SMS
// notifications.
package disputes

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/sanitize"
)

// Event names published by this module.
const (
	EventDisputeRaised   = "disputes.raised"
	EventDisputeResolved = "disputes.resolved"
)

// DisputeRaisedEvent carries a new ticket and the customer contact details.
type DisputeRaisedEvent struct {
	events.BaseEvent
	TicketID      string
	AccountNumber string
	CustomerName  string
	MobileNumbers []string
	Amount        float64
}

func (e DisputeRaisedEvent) EventName() string { return EventDisputeRaised }

// DisputeResolvedEvent carries a terminal status change.
type DisputeResolvedEvent struct {
	events.BaseEvent
	TicketID      string
	AccountNumber string
	CustomerName  string
	MobileNumbers []string
	NewStatus     string
}

func (e DisputeResolvedEvent) EventName() string { return EventDisputeResolved }

// RaiseResult is the outcome of raising a dispute.
type RaiseResult struct {
	TicketID                string
	Amount                  float64
	EstimatedResolutionDays int
}

// UpdateResult is the outcome of a status update.
type UpdateResult struct {
	TicketID string
	Status   string
}

// terminalStatuses close a dispute and stamp its resolution fields.
var terminalStatuses = map[string]bool{
	"APPROVED": true,
	"REJECTED": true,
	"RESOLVED": true,
}

// Service owns the dispute lifecycle over the generated dataset.
type Service struct {
	store *mockdata.Store
	bus   events.Bus
	log   *logger.Logger
	rng   *rand.Rand
}

func NewService(store *mockdata.Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		store: store,
		bus:   bus,
		log:   log,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Raise opens an UNDER_REVIEW ticket for the account and publishes the
// raised event with the customer's mobile numbers.
func (s *Service) Raise(ctx context.Context, accountNumber string, amount float64, transactionDate, reason, description string) (RaiseResult, error) {
	account, ok := s.store.AccountByNumber(accountNumber)
	if !ok {
		return RaiseResult{}, apperr.NotFound("Account not found")
	}

	ticketID := fmt.Sprintf("DISPUTE%d", 10000+s.rng.Intn(90000))
	estimatedDays := 5 + s.rng.Intn(26)

	s.store.AppendDispute(mockdata.Dispute{
		TicketID:                ticketID,
		AccountNumber:           accountNumber,
		TransactionID:           fmt.Sprintf("TXN%d", 1000000+s.rng.Intn(9000000)),
		Amount:                  amount,
		TransactionDate:         transactionDate,
		DisputeType:             "UNAUTHORIZED",
		Reason:                  sanitize.Text(reason),
		Description:             sanitize.Text(description),
		Status:                  "UNDER_REVIEW",
		CreatedAt:               time.Now().Format(time.RFC3339),
		EstimatedResolutionDays: estimatedDays,
		EvidenceSubmitted:       "NO",
		CustomerContacted:       "YES",
	})

	s.bus.Publish(ctx, DisputeRaisedEvent{
		BaseEvent:     events.NewBaseEvent(),
		TicketID:      ticketID,
		AccountNumber: accountNumber,
		CustomerName:  account.CustomerName,
		MobileNumbers: account.MobileNumbers,
		Amount:        amount,
	})

	return RaiseResult{
		TicketID:                ticketID,
		Amount:                  amount,
		EstimatedResolutionDays: estimatedDays,
	}, nil
}

// UpdateStatus moves the ticket to newStatus. Terminal statuses stamp the
// resolution fields and publish the resolved event exactly once per
// transition.
func (s *Service) UpdateStatus(ctx context.Context, ticketID, newStatus string) (UpdateResult, error) {
	dispute, ok := s.store.DisputeByTicket(ticketID)
	if !ok {
		return UpdateResult{}, apperr.NotFound("Dispute not found")
	}
	account, ok := s.store.AccountByNumber(dispute.AccountNumber)
	if !ok {
		return UpdateResult{}, apperr.NotFound("Account not found")
	}

	originalStatus := dispute.Status
	status := strings.ToUpper(newStatus)
	dispute.Status = status

	if terminalStatuses[status] {
		now := time.Now().Format(time.RFC3339)
		dispute.ResolvedAt = &now
		notes := fmt.Sprintf("Dispute has been %s", strings.ToLower(status))
		dispute.ResolutionNotes = &notes
	}

	if !s.store.UpdateDispute(dispute) {
		return UpdateResult{}, apperr.NotFound("Dispute not found")
	}

	if terminalStatuses[status] && originalStatus != status {
		s.bus.Publish(ctx, DisputeResolvedEvent{
			BaseEvent:     events.NewBaseEvent(),
			TicketID:      ticketID,
			AccountNumber: dispute.AccountNumber,
			CustomerName:  account.CustomerName,
			MobileNumbers: account.MobileNumbers,
			NewStatus:     status,
		})
	}

	return UpdateResult{TicketID: ticketID, Status: status}, nil
}
