package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"bankwise_support_backend/internal/agents/directory"
	"bankwise_support_backend/internal/agents/policy"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
)

// recordingBus captures published events synchronously.
type recordingBus struct {
	mu     sync.Mutex
	events []events.Event
}

func (b *recordingBus) Publish(_ context.Context, event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.Publish(ctx, event)
	return nil
}

func (b *recordingBus) Subscribe(string, events.Handler) {}

func (b *recordingBus) published() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]events.Event, len(b.events))
	copy(out, b.events)
	return out
}

func snapshotAgent(id, specialization string, status policy.Status, rating float64) directory.Agent {
	return directory.Agent{
		AgentID:                  id,
		FullName:                 "Agent " + id,
		Department:               "Customer Service",
		Specialization:           specialization,
		PerformanceRating:        rating,
		CustomerSatisfactionRate: 90,
		CurrentStatus:            status,
		IsAvailable:              policy.IsAvailable(status),
	}
}

func newTestService(t *testing.T, agents []directory.Agent) (*Service, *directory.Directory, *recordingBus) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "agents.json")
	data, err := json.Marshal(agents)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, data, 0o644); err != nil {
		t.Fatal(err)
	}

	dir := directory.Load(file, len(agents), logger.New("development"),
		directory.WithSampler(policy.MidpointSampler{}))

	bus := &recordingBus{}
	svc, err := New(dir, bus, logger.New("development"))
	if err != nil {
		t.Fatalf("service construction failed: %v", err)
	}
	return svc, dir, bus
}

func TestDeriveSpecializationMapsReasonKeywords(t *testing.T) {
	svc, _, _ := newTestService(t, []directory.Agent{
		snapshotAgent("AGENT1000", "General Banking", policy.StatusAvailable, 4.0),
	})

	cases := map[string]string{
		"my debit card was swallowed": "Card Issues",
		"home loan emi query":         "Loan Processing",
		"wrong balance on statement":  "Account Queries",
		"fraud transaction":           "Transaction Disputes",
		"mobile app keeps crashing":   "Technical Support",
		"general unhappiness":         "",
		"":                            "",
	}
	for reason, want := range cases {
		if got := svc.DeriveSpecialization(reason); got != want {
			t.Fatalf("DeriveSpecialization(%q): got %q, want %q", reason, got, want)
		}
	}
}

func TestDeriveSpecializationFirstRuleWins(t *testing.T) {
	svc, _, _ := newTestService(t, []directory.Agent{
		snapshotAgent("AGENT1000", "General Banking", policy.StatusAvailable, 4.0),
	})

	// "credit card dispute" matches both the card and the dispute rules;
	// the card rule is evaluated first.
	if got := svc.DeriveSpecialization("credit card dispute"); got != "Card Issues" {
		t.Fatalf("got %q, want Card Issues", got)
	}
}

func TestDeriveSpecializationMatchesWholeWordsOnly(t *testing.T) {
	svc, _, _ := newTestService(t, []directory.Agent{
		snapshotAgent("AGENT1000", "General Banking", policy.StatusAvailable, 4.0),
	})

	// "unhappiness" contains "app" and "cardboard" contains "card"; neither
	// is a routing keyword on its own.
	cases := map[string]string{
		"general unhappiness":        "",
		"the cardboard box was torn": "",
		"my card. it is lost":        "Card Issues",
		"LOAN overdue!":              "Loan Processing",
	}
	for reason, want := range cases {
		if got := svc.DeriveSpecialization(reason); got != want {
			t.Fatalf("DeriveSpecialization(%q): got %q, want %q", reason, got, want)
		}
	}
}

func TestEscalateAssignsBestSpecialistAndMarksBusy(t *testing.T) {
	svc, dir, bus := newTestService(t, []directory.Agent{
		snapshotAgent("AGENT1000", "Card Issues", policy.StatusAvailable, 4.2),
		snapshotAgent("AGENT1001", "Card Issues", policy.StatusAvailable, 4.9),
		snapshotAgent("AGENT1002", "Loan Processing", policy.StatusAvailable, 5.0),
	})

	decision, err := svc.Escalate(context.Background(), "lost card", "high")
	if err != nil {
		t.Fatalf("escalate failed: %v", err)
	}
	if decision.Status != DecisionAssigned {
		t.Fatalf("status: got %q, want %q", decision.Status, DecisionAssigned)
	}
	if decision.Agent.AgentID != "AGENT1001" {
		t.Fatalf("assigned %s, want the higher-rated card specialist AGENT1001", decision.Agent.AgentID)
	}
	if decision.EscalationID == "" {
		t.Fatal("escalation id missing")
	}
	if decision.EstimatedWaitMins < 1 || decision.EstimatedWaitMins > 5 {
		t.Fatalf("assigned wait out of range: %d", decision.EstimatedWaitMins)
	}
	if len(decision.Alternatives) != 1 || decision.Alternatives[0].AgentID != "AGENT1000" {
		t.Fatalf("alternatives: got %+v, want the remaining card specialist", decision.Alternatives)
	}

	assigned, _ := dir.ByID("AGENT1001")
	if assigned.CurrentStatus != policy.StatusBusy {
		t.Fatalf("assigned agent status: got %q, want Busy", assigned.CurrentStatus)
	}

	published := bus.published()
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	evt, ok := published[0].(EscalationAssignedEvent)
	if !ok {
		t.Fatalf("unexpected event type %T", published[0])
	}
	if evt.Queued || evt.AgentID != "AGENT1001" {
		t.Fatalf("unexpected event payload: %+v", evt)
	}
}

func TestEscalateQueuesOnSoonestReturningAgent(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	later := base.Add(45 * time.Minute)
	sooner := base.Add(12 * time.Minute)

	busyLater := snapshotAgent("AGENT1000", "Card Issues", policy.StatusBusy, 4.0)
	busyLater.NextAvailableTime = &later
	busySooner := snapshotAgent("AGENT1001", "Card Issues", policy.StatusBusy, 3.8)
	busySooner.NextAvailableTime = &sooner

	svc, _, bus := newTestService(t, []directory.Agent{busyLater, busySooner})
	svc.now = func() time.Time { return base }

	decision, err := svc.Escalate(context.Background(), "blocked card", "medium")
	if err != nil {
		t.Fatalf("escalate failed: %v", err)
	}
	if decision.Status != DecisionQueued {
		t.Fatalf("status: got %q, want %q", decision.Status, DecisionQueued)
	}
	if decision.Agent.AgentID != "AGENT1001" {
		t.Fatalf("queued on %s, want the agent returning first", decision.Agent.AgentID)
	}
	if decision.EstimatedWaitMins != 12 {
		t.Fatalf("queued wait: got %d, want 12 minutes until the agent returns", decision.EstimatedWaitMins)
	}
	if decision.QueuePosition < 2 {
		t.Fatalf("queued position starts behind the active case, got %d", decision.QueuePosition)
	}

	published := bus.published()
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	if evt := published[0].(EscalationAssignedEvent); !evt.Queued {
		t.Fatal("queued decision must publish a queued event")
	}
}

func TestEscalateFailsWhenNoReturnIsProjected(t *testing.T) {
	svc, _, _ := newTestService(t, []directory.Agent{
		snapshotAgent("AGENT1000", "Card Issues", policy.StatusBusy, 4.0),
	})

	_, err := svc.Escalate(context.Background(), "card stuck in atm", "high")
	if err == nil {
		t.Fatal("expected an error with nobody projected to return")
	}
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("error kind: got %v, want unavailable", apperr.GetKind(err))
	}
}

func TestUpdateStatusRejectsUnknownValues(t *testing.T) {
	svc, _, _ := newTestService(t, []directory.Agent{
		snapshotAgent("AGENT1000", "Card Issues", policy.StatusAvailable, 4.0),
	})

	err := svc.UpdateStatus("AGENT1000", "Sleeping")
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("invalid status: got %v, want bad request", err)
	}

	err = svc.UpdateStatus("AGENT9999", "On Break")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("unknown agent: got %v, want not found", err)
	}

	if err := svc.UpdateStatus("AGENT1000", "On Break"); err != nil {
		t.Fatalf("valid update failed: %v", err)
	}
	agent, err := svc.AgentByID("AGENT1000")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if agent.CurrentStatus != policy.StatusOnBreak {
		t.Fatalf("status not applied: %q", agent.CurrentStatus)
	}
}
