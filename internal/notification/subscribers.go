// Package notification bridges domain events to the outbound channels.
// Delivery goes through the task queue when Redis is configured and falls
// back to a direct send otherwise.
package notification

import (
	"context"

	agentsvc "bankwise_support_backend/internal/agents/service"
	"bankwise_support_backend/internal/cards"
	"bankwise_support_backend/internal/complaints"
	"bankwise_support_backend/internal/disputes"
	"bankwise_support_backend/internal/email"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/internal/scheduler"
	"bankwise_support_backend/internal/sms"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
)

// Subscribers owns the event handlers for customer notifications.
type Subscribers struct {
	store    *mockdata.Store
	sms      *sms.Service
	email    email.Sender
	enqueuer scheduler.Enqueuer
	log      *logger.Logger
}

// New builds the subscriber set. The enqueuer may be nil, in which case
// every delivery happens inline.
func New(store *mockdata.Store, smsService *sms.Service, emailSender email.Sender, enqueuer scheduler.Enqueuer, log *logger.Logger) *Subscribers {
	return &Subscribers{
		store:    store,
		sms:      smsService,
		email:    emailSender,
		enqueuer: enqueuer,
		log:      log,
	}
}

// Register attaches every handler to the bus.
func (s *Subscribers) Register(bus events.Bus) {
	bus.Subscribe(complaints.EventComplaintFiled, events.HandlerFunc(s.onComplaintFiled))
	bus.Subscribe(disputes.EventDisputeRaised, events.HandlerFunc(s.onDisputeRaised))
	bus.Subscribe(disputes.EventDisputeResolved, events.HandlerFunc(s.onDisputeResolved))
	bus.Subscribe(cards.EventCardBlocked, events.HandlerFunc(s.onCardBlocked))
	bus.Subscribe(agentsvc.EventEscalationAssigned, events.HandlerFunc(s.onEscalationAssigned))
}

// deliverSMS queues one message per number, sending inline when the queue
// is absent or rejects the task.
func (s *Subscribers) deliverSMS(ctx context.Context, numbers []string, message string) {
	for _, number := range numbers {
		if s.enqueuer != nil {
			err := s.enqueuer.EnqueueSMS(ctx, scheduler.SMSDeliverPayload{To: number, Message: message})
			if err == nil {
				continue
			}
			s.log.Warn("sms enqueue failed, sending inline", "error", err)
		}
		if _, err := s.sms.Send(ctx, number, message); err != nil {
			s.log.Warn("sms delivery failed", "to", number, "error", err)
		}
	}
}

func (s *Subscribers) deliverEmail(ctx context.Context, to, subject, body string) {
	if to == "" {
		return
	}
	if s.enqueuer != nil {
		err := s.enqueuer.EnqueueEmail(ctx, scheduler.EmailDeliverPayload{To: to, Subject: subject, Body: body})
		if err == nil {
			return
		}
		s.log.Warn("email enqueue failed, sending inline", "error", err)
	}
	if err := s.email.Send(ctx, to, subject, body); err != nil {
		s.log.Warn("email delivery failed", "to", to, "error", err)
	}
}

func (s *Subscribers) onComplaintFiled(ctx context.Context, event events.Event) error {
	filed, ok := event.(complaints.ComplaintFiledEvent)
	if !ok {
		return nil
	}

	account, found := s.store.AccountByNumber(filed.AccountNumber)
	if !found {
		s.log.Warn("complaint notification skipped, unknown account", "ticket_id", filed.TicketID)
		return nil
	}

	message := sms.ComplaintConfirmation(filed.TicketID, account.CustomerName)
	s.deliverSMS(ctx, account.MobileNumbers, message)
	s.deliverEmail(ctx, account.Email, email.SubjectComplaintRegistered, message)
	return nil
}

func (s *Subscribers) onDisputeRaised(ctx context.Context, event events.Event) error {
	raised, ok := event.(disputes.DisputeRaisedEvent)
	if !ok {
		return nil
	}

	message := sms.DisputeConfirmation(raised.TicketID, raised.CustomerName, raised.Amount)
	s.deliverSMS(ctx, raised.MobileNumbers, message)

	if account, found := s.store.AccountByNumber(raised.AccountNumber); found {
		s.deliverEmail(ctx, account.Email, email.SubjectDisputeRegistered, message)
	}
	return nil
}

func (s *Subscribers) onDisputeResolved(ctx context.Context, event events.Event) error {
	resolved, ok := event.(disputes.DisputeResolvedEvent)
	if !ok {
		return nil
	}

	message := sms.DisputeResolution(resolved.TicketID, resolved.CustomerName, resolved.NewStatus)
	s.deliverSMS(ctx, resolved.MobileNumbers, message)

	if account, found := s.store.AccountByNumber(resolved.AccountNumber); found {
		s.deliverEmail(ctx, account.Email, email.SubjectDisputeResolved, message)
	}
	return nil
}

// onCardBlocked records the block for the audit trail. A block by last four
// digits can span multiple customers, so no per-customer message goes out.
func (s *Subscribers) onCardBlocked(_ context.Context, event events.Event) error {
	blocked, ok := event.(cards.CardBlockedEvent)
	if !ok {
		return nil
	}
	s.log.Info("card blocked",
		"ticket_id", blocked.TicketID,
		"last4", blocked.Last4,
	)
	return nil
}

func (s *Subscribers) onEscalationAssigned(_ context.Context, event events.Event) error {
	assigned, ok := event.(agentsvc.EscalationAssignedEvent)
	if !ok {
		return nil
	}
	s.log.Info("escalation routed",
		"escalation_id", assigned.EscalationID,
		"agent_id", assigned.AgentID,
		"queued", assigned.Queued,
	)
	return nil
}
