package disputes

import (
	"context"
	"strings"
	"sync"
	"testing"

	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
)

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

func newTestService(t *testing.T) (*Service, *mockdata.Store, *recordingBus) {
	t.Helper()
	log := logger.New("development")
	store, err := mockdata.Open(t.TempDir(), mockdata.NewSeededGenerator(1), log)
	if err != nil {
		t.Fatalf("open dataset: %v", err)
	}
	bus := &recordingBus{}
	return NewService(store, bus, log), store, bus
}

func TestRaiseRejectsUnknownAccounts(t *testing.T) {
	svc, _, bus := newTestService(t)

	_, err := svc.Raise(context.Background(), "000000000000", 1500, "2025-05-01", "unknown charge", "")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
	if len(bus.published()) != 0 {
		t.Fatal("no event must be published for a rejected dispute")
	}
}

func TestRaiseStoresTicketAndPublishesContactDetails(t *testing.T) {
	svc, store, bus := newTestService(t)
	account := store.Accounts()[0]

	result, err := svc.Raise(context.Background(), account.AccountNumber, 2499.50,
		"2025-05-01", "Charge <b>not</b> recognized", "I never shopped there.")
	if err != nil {
		t.Fatalf("raise failed: %v", err)
	}
	if !strings.HasPrefix(result.TicketID, "DISPUTE") {
		t.Fatalf("unexpected ticket id %q", result.TicketID)
	}
	if result.EstimatedResolutionDays < 5 || result.EstimatedResolutionDays > 30 {
		t.Fatalf("resolution estimate out of range: %d", result.EstimatedResolutionDays)
	}

	stored, ok := store.DisputeByTicket(result.TicketID)
	if !ok {
		t.Fatal("ticket not stored")
	}
	if stored.Status != "UNDER_REVIEW" {
		t.Fatalf("new ticket status: got %q, want UNDER_REVIEW", stored.Status)
	}
	if stored.Reason != "Charge not recognized" {
		t.Fatalf("reason not sanitized: %q", stored.Reason)
	}

	published := bus.published()
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	evt, ok := published[0].(DisputeRaisedEvent)
	if !ok {
		t.Fatalf("unexpected event type %T", published[0])
	}
	if evt.CustomerName != account.CustomerName {
		t.Fatalf("event customer: got %q, want %q", evt.CustomerName, account.CustomerName)
	}
	if len(evt.MobileNumbers) != len(account.MobileNumbers) {
		t.Fatal("event must carry the account's mobile numbers")
	}
	if evt.Amount != 2499.50 {
		t.Fatalf("event amount: got %v", evt.Amount)
	}
}

func TestUpdateStatusStampsTerminalResolutions(t *testing.T) {
	svc, store, bus := newTestService(t)
	account := store.Accounts()[0]
	store.AppendDispute(mockdata.Dispute{
		TicketID:      "DISPUTE777770",
		AccountNumber: account.AccountNumber,
		Status:        "UNDER_REVIEW",
	})

	result, err := svc.UpdateStatus(context.Background(), "DISPUTE777770", "approved")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.Status != "APPROVED" {
		t.Fatalf("status not uppercased: %q", result.Status)
	}

	stored, _ := store.DisputeByTicket("DISPUTE777770")
	if stored.ResolvedAt == nil {
		t.Fatal("terminal status must stamp resolved_at")
	}
	if stored.ResolutionNotes == nil || *stored.ResolutionNotes != "Dispute has been approved" {
		t.Fatalf("resolution notes: got %v", stored.ResolutionNotes)
	}

	published := bus.published()
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	evt := published[0].(DisputeResolvedEvent)
	if evt.NewStatus != "APPROVED" || evt.TicketID != "DISPUTE777770" {
		t.Fatalf("unexpected event payload: %+v", evt)
	}
}

func TestUpdateStatusToNonTerminalPublishesNothing(t *testing.T) {
	svc, store, bus := newTestService(t)
	account := store.Accounts()[0]
	store.AppendDispute(mockdata.Dispute{
		TicketID:      "DISPUTE777771",
		AccountNumber: account.AccountNumber,
		Status:        "OPEN",
	})

	result, err := svc.UpdateStatus(context.Background(), "DISPUTE777771", "UNDER_REVIEW")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.Status != "UNDER_REVIEW" {
		t.Fatalf("got status %q", result.Status)
	}

	stored, _ := store.DisputeByTicket("DISPUTE777771")
	if stored.ResolvedAt != nil {
		t.Fatal("non-terminal status must not stamp resolved_at")
	}
	if len(bus.published()) != 0 {
		t.Fatal("non-terminal transitions must not publish")
	}
}

func TestUpdateStatusRepeatedTerminalDoesNotRepublish(t *testing.T) {
	svc, store, bus := newTestService(t)
	account := store.Accounts()[0]
	store.AppendDispute(mockdata.Dispute{
		TicketID:      "DISPUTE777772",
		AccountNumber: account.AccountNumber,
		Status:        "UNDER_REVIEW",
	})

	if _, err := svc.UpdateStatus(context.Background(), "DISPUTE777772", "REJECTED"); err != nil {
		t.Fatalf("first update failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "DISPUTE777772", "REJECTED"); err != nil {
		t.Fatalf("second update failed: %v", err)
	}

	if got := len(bus.published()); got != 1 {
		t.Fatalf("published %d events, want exactly 1", got)
	}
}
