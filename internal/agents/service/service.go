// Package service implements the escalation selector: it turns an inbound
// escalation request into an agent assignment, a queued decision, or an
// unavailable outcome.
package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"bankwise_support_backend/internal/agents/directory"
	"bankwise_support_backend/internal/agents/policy"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
	"bankwise_support_backend/platform/sanitize"
)

// EventEscalationAssigned is raised when an escalation gets a primary agent.
const EventEscalationAssigned = "agents.escalation_assigned"

// EscalationAssignedEvent carries the assignment to subscribers.
type EscalationAssignedEvent struct {
	events.BaseEvent
	EscalationID string
	AgentID      string
	AgentName    string
	Queued       bool
}

func (e EscalationAssignedEvent) EventName() string { return EventEscalationAssigned }

// DecisionStatus is the outcome class of an escalation decision.
type DecisionStatus string

const (
	DecisionAssigned DecisionStatus = "assigned"
	DecisionQueued   DecisionStatus = "queued"
)

// Decision is the ephemeral outcome of one escalation request.
type Decision struct {
	EscalationID      string
	Agent             *directory.Agent
	EstimatedWaitMins int
	QueuePosition     int
	Alternatives      []directory.Agent
	Status            DecisionStatus
}

const maxAlternatives = 3

// Service is the escalation selector over the agent directory.
type Service struct {
	dir   *directory.Directory
	table routingTable
	bus   events.Bus
	log   *logger.Logger
	rng   *rand.Rand
	now   func() time.Time
}

func New(dir *directory.Directory, bus events.Bus, log *logger.Logger) (*Service, error) {
	table, err := loadRoutingTable()
	if err != nil {
		return nil, err
	}
	return &Service{
		dir:   dir,
		table: table,
		bus:   bus,
		log:   log,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:   time.Now,
	}, nil
}

// DeriveSpecialization exposes the routing table for reuse and tests.
func (s *Service) DeriveSpecialization(reason string) string {
	return s.table.DeriveSpecialization(reason)
}

// Escalate resolves an escalation request. Urgency is recorded only; it
// never changes routing. The selected agent is marked Busy inside the same
// critical section that chose it.
func (s *Service) Escalate(ctx context.Context, reason, urgency string) (Decision, error) {
	reason = sanitize.Text(reason)
	specialization := s.table.DeriveSpecialization(reason)
	escalationID := fmt.Sprintf("ESCALATION%d", 10000+s.rng.Intn(90000))

	s.log.Info("escalation request",
		"escalation_id", escalationID,
		"specialization", specialization,
		"urgency", urgency,
	)

	if selection, ok := s.dir.SelectAndMarkBusy(specialization, maxAlternatives); ok {
		decision := Decision{
			EscalationID:      escalationID,
			Agent:             &selection.Best,
			EstimatedWaitMins: 1 + s.rng.Intn(5),
			QueuePosition:     1,
			Alternatives:      selection.Alternatives,
			Status:            DecisionAssigned,
		}
		s.publishAssigned(ctx, decision, false)
		return decision, nil
	}

	// nobody is free right now; queue on the agent that frees up first
	soonest, ok := s.dir.SoonestAvailable()
	if !ok {
		return Decision{}, apperr.Unavailable("no agents available")
	}

	wait := int(soonest.NextAvailableTime.Sub(s.now()).Minutes())
	if wait < 1 {
		wait = 1
	}
	decision := Decision{
		EscalationID:      escalationID,
		Agent:             &soonest,
		EstimatedWaitMins: wait,
		QueuePosition:     2 + s.rng.Intn(4),
		Alternatives:      s.dir.RankedAll(soonest.AgentID, maxAlternatives),
		Status:            DecisionQueued,
	}
	s.publishAssigned(ctx, decision, true)
	return decision, nil
}

func (s *Service) publishAssigned(ctx context.Context, d Decision, queued bool) {
	s.bus.Publish(ctx, EscalationAssignedEvent{
		BaseEvent:    events.NewBaseEvent(),
		EscalationID: d.EscalationID,
		AgentID:      d.Agent.AgentID,
		AgentName:    d.Agent.FullName,
		Queued:       queued,
	})
}

// AvailableAgents lists ranked available agents, optionally filtered.
func (s *Service) AvailableAgents(specialization string, limit int) []directory.Agent {
	if limit <= 0 {
		limit = 5
	}
	return s.dir.Available(specialization, limit)
}

// AgentByID returns the agent or a not-found error.
func (s *Service) AgentByID(agentID string) (directory.Agent, error) {
	agent, ok := s.dir.ByID(agentID)
	if !ok {
		return directory.Agent{}, apperr.NotFound("Agent not found")
	}
	return agent, nil
}

// UpdateStatus validates the raw status and applies it. Invalid values are
// rejected before the directory is touched.
func (s *Service) UpdateStatus(agentID, rawStatus string) error {
	status, ok := policy.ParseStatus(rawStatus)
	if !ok {
		return apperr.BadRequest(fmt.Sprintf("invalid status %q, must be one of: Available, Busy, On Break, In Training, Off Duty", rawStatus))
	}
	if !s.dir.UpdateStatus(agentID, status) {
		return apperr.NotFound("Agent not found")
	}
	return nil
}

// Statistics returns the aggregate directory view.
func (s *Service) Statistics() directory.Statistics {
	return s.dir.Statistics()
}
