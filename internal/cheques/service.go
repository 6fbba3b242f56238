// Package cheques answers cheque status and tracking queries. Tracking
// events are synthesized from the cheque's current state because the demo
// stores carry no event history.
package cheques

import (
	"context"
	"time"

	"bankwise_support_backend/internal/lookup"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/logger"
)

// Cheque is the read model. Content carries the clearing state so the
// response status field stays free for the request outcome.
type Cheque struct {
	ChequeNumber  string
	AccountNumber string
	Amount        float64
	Content       string
	IssueDate     string
	ClearingDate  *string
	PayeeName     string
}

// TrackingEvent is one step of a cheque's journey.
type TrackingEvent struct {
	EventType   string `json:"event_type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Location    string `json:"location"`
}

// Service resolves cheque reads over the source chain.
type Service struct {
	repo  *Repository
	store *mockdata.Store
	log   *logger.Logger

	chain *lookup.Chain[Cheque]
}

func NewService(repo *Repository, store *mockdata.Store, log *logger.Logger) *Service {
	s := &Service{repo: repo, store: store, log: log}
	s.chain = lookup.NewChain[Cheque](log, "Cheque not found",
		lookup.SourceFunc[Cheque]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) (Cheque, error) {
				return repo.ByNumber(ctx, key)
			},
		},
		lookup.SourceFunc[Cheque]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) (Cheque, error) {
				record, ok := store.ChequeByNumber(key)
				if !ok {
					return Cheque{}, apperr.NotFound("cheque not found")
				}
				return fromMock(record), nil
			},
		},
	)
	return s
}

func fromMock(record mockdata.Cheque) Cheque {
	return Cheque{
		ChequeNumber:  record.ChequeNumber,
		AccountNumber: record.AccountNumber,
		Amount:        record.Amount,
		Content:       record.Status,
		IssueDate:     record.IssueDate,
		ClearingDate:  record.ClearingDate,
		PayeeName:     record.PayeeName,
	}
}

// ByNumber returns the cheque from the first tier that has it.
func (s *Service) ByNumber(ctx context.Context, chequeNumber string) (Cheque, error) {
	return s.chain.Find(ctx, chequeNumber)
}

// Track returns the cheque along with its synthesized journey. The database
// tier also checks the account number; the fallback matches on the cheque
// number alone.
func (s *Service) Track(ctx context.Context, chequeNumber, accountNumber string) (Cheque, []TrackingEvent, error) {
	chain := lookup.NewChain[Cheque](s.log, "Cheque not found",
		lookup.SourceFunc[Cheque]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) (Cheque, error) {
				return s.repo.ByNumberAndAccount(ctx, key, accountNumber)
			},
		},
		lookup.SourceFunc[Cheque]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) (Cheque, error) {
				record, ok := s.store.ChequeByNumber(key)
				if !ok {
					return Cheque{}, apperr.NotFound("cheque not found")
				}
				return fromMock(record), nil
			},
		},
	)
	cheque, err := chain.Find(ctx, chequeNumber)
	if err != nil {
		return Cheque{}, nil, err
	}
	return cheque, trackingEvents(cheque), nil
}

// trackingEvents derives the journey from the cheque state: deposit, then
// clearing, then the terminal event matching the current status. Events are
// ordered newest first.
func trackingEvents(c Cheque) []TrackingEvent {
	issued, err := time.Parse(time.RFC3339, c.IssueDate)
	if err != nil {
		issued = time.Now()
	}

	events := []TrackingEvent{
		{
			EventType:   "DEPOSITED",
			Description: "Cheque deposited and received for processing",
			Timestamp:   issued.Format(time.RFC3339),
			Location:    "Collection Branch",
		},
		{
			EventType:   "SENT_FOR_CLEARING",
			Description: "Cheque forwarded to the clearing house",
			Timestamp:   issued.Add(24 * time.Hour).Format(time.RFC3339),
			Location:    "Regional Clearing House",
		},
	}

	terminalAt := issued.Add(48 * time.Hour)
	if c.ClearingDate != nil {
		if t, err := time.Parse(time.RFC3339, *c.ClearingDate); err == nil {
			terminalAt = t
		}
	}

	switch c.Content {
	case "Cleared":
		events = append(events, TrackingEvent{
			EventType:   "CLEARED",
			Description: "Cheque cleared and amount credited",
			Timestamp:   terminalAt.Format(time.RFC3339),
			Location:    "Home Branch",
		})
	case "Bounced":
		events = append(events, TrackingEvent{
			EventType:   "BOUNCED",
			Description: "Cheque returned unpaid",
			Timestamp:   terminalAt.Format(time.RFC3339),
			Location:    "Regional Clearing House",
		})
	case "Under Process":
		events = append(events, TrackingEvent{
			EventType:   "PROCESSING",
			Description: "Cheque under verification at the clearing house",
			Timestamp:   terminalAt.Format(time.RFC3339),
			Location:    "Regional Clearing House",
		})
	}

	// newest first
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events
}
