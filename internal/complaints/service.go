// Package complaints files and tracks customer complaint tickets. Priority
// and the resolution estimate are derived from the complaint category.
package complaints

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"bankwise_support_backend/internal/lookup"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/sanitize"
)

// EventComplaintFiled is raised after a new ticket has been stored.
const EventComplaintFiled = "complaints.filed"

// ComplaintFiledEvent carries the new ticket to subscribers.
type ComplaintFiledEvent struct {
	events.BaseEvent
	TicketID      string
	AccountNumber string
	Category      string
	Priority      string
}

func (e ComplaintFiledEvent) EventName() string { return EventComplaintFiled }

// Complaint is the ticket read model.
type Complaint struct {
	TicketID                string  `json:"ticket_id"`
	AccountNumber           string  `json:"account_number"`
	Subject                 string  `json:"subject"`
	Description             string  `json:"description"`
	Category                string  `json:"category"`
	Status                  string  `json:"status"`
	Priority                string  `json:"priority"`
	CreatedAt               string  `json:"created_at"`
	ResolvedAt              *string `json:"resolved_at"`
	EstimatedResolutionDays int     `json:"estimated_resolution_days"`
	AssignedAgent           *string `json:"assigned_agent"`
	ResolutionNotes         *string `json:"resolution_notes"`
}

// categoryRule sets priority and the resolution estimate per category.
type categoryRule struct {
	Priority string
	Days     int
}

var categoryRules = map[string]categoryRule{
	"ACCOUNT":        {Priority: "MEDIUM", Days: 5},
	"CARD":           {Priority: "HIGH", Days: 3},
	"TRANSACTION":    {Priority: "HIGH", Days: 2},
	"ATM":            {Priority: "MEDIUM", Days: 7},
	"BRANCH":         {Priority: "LOW", Days: 10},
	"LOAN":           {Priority: "HIGH", Days: 7},
	"FD":             {Priority: "LOW", Days: 10},
	"NET_BANKING":    {Priority: "MEDIUM", Days: 3},
	"MOBILE_BANKING": {Priority: "MEDIUM", Days: 3},
	"OTHER":          {Priority: "LOW", Days: 15},
}

var defaultRule = categoryRule{Priority: "LOW", Days: 15}

// RuleForCategory returns the priority rule for a category, falling back to
// the default for unknown categories. Matching is case-insensitive.
func RuleForCategory(category string) categoryRule {
	if rule, ok := categoryRules[strings.ToUpper(category)]; ok {
		return rule
	}
	return defaultRule
}

// Service files new tickets and resolves status reads over the source chain.
type Service struct {
	repo  *Repository
	store *mockdata.Store
	bus   events.Bus
	log   *logger.Logger
	rng   *rand.Rand

	statusChain *lookup.Chain[Complaint]
}

func NewService(repo *Repository, store *mockdata.Store, bus events.Bus, log *logger.Logger) *Service {
	s := &Service{
		repo:  repo,
		store: store,
		bus:   bus,
		log:   log,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.statusChain = lookup.NewChain[Complaint](log, "Complaint not found",
		lookup.SourceFunc[Complaint]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) (Complaint, error) {
				return repo.ByTicket(ctx, key)
			},
		},
		lookup.SourceFunc[Complaint]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) (Complaint, error) {
				record, ok := store.ComplaintByTicket(key)
				if !ok {
					return Complaint{}, apperr.NotFound("complaint not found")
				}
				return fromMock(record), nil
			},
		},
	)
	return s
}

func fromMock(record mockdata.Complaint) Complaint {
	return Complaint{
		TicketID:                record.TicketID,
		AccountNumber:           record.AccountNumber,
		Subject:                 record.Subject,
		Description:             record.Description,
		Category:                record.Category,
		Status:                  record.Status,
		Priority:                record.Priority,
		CreatedAt:               record.CreatedAt,
		ResolvedAt:              record.ResolvedAt,
		EstimatedResolutionDays: record.EstimatedResolutionDays,
		AssignedAgent:           record.AssignedAgent,
		ResolutionNotes:         record.ResolutionNotes,
	}
}

// File opens a new OPEN ticket. Free text is sanitized before storage; the
// ticket is written to the database when connected, otherwise to the
// generated dataset.
func (s *Service) File(ctx context.Context, accountNumber, subject, description, category string) (Complaint, error) {
	rule := RuleForCategory(category)
	complaint := Complaint{
		TicketID:                fmt.Sprintf("COMPLAINT%d", 10000+s.rng.Intn(90000)),
		AccountNumber:           accountNumber,
		Subject:                 sanitize.Text(subject),
		Description:             sanitize.Text(description),
		Category:                category,
		Status:                  "OPEN",
		Priority:                rule.Priority,
		CreatedAt:               time.Now().Format(time.RFC3339),
		EstimatedResolutionDays: rule.Days,
	}

	if err := s.repo.Insert(ctx, complaint); err != nil {
		if apperr.GetKind(err) != apperr.KindUnavailable {
			return Complaint{}, err
		}
		s.log.Warn("complaint store unreachable, filing in fallback dataset", "error", err.Error())
		s.store.AppendComplaint(mockdata.Complaint{
			TicketID:                complaint.TicketID,
			AccountNumber:           complaint.AccountNumber,
			Subject:                 complaint.Subject,
			Description:             complaint.Description,
			Category:                complaint.Category,
			Status:                  complaint.Status,
			Priority:                complaint.Priority,
			CreatedAt:               complaint.CreatedAt,
			EstimatedResolutionDays: complaint.EstimatedResolutionDays,
		})
	}

	s.bus.Publish(ctx, ComplaintFiledEvent{
		BaseEvent:     events.NewBaseEvent(),
		TicketID:      complaint.TicketID,
		AccountNumber: complaint.AccountNumber,
		Category:      complaint.Category,
		Priority:      complaint.Priority,
	})
	return complaint, nil
}

// StatusByTicket returns the ticket from the first tier that has it.
func (s *Service) StatusByTicket(ctx context.Context, ticketID string) (Complaint, error) {
	return s.statusChain.Find(ctx, ticketID)
}
