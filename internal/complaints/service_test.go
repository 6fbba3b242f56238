package complaints

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

func newTestService(t *testing.T) (*Service, *mockdata.Store, *recordingBus) {
	t.Helper()
	log := logger.New("development")
	store, err := mockdata.Open(t.TempDir(), mockdata.NewSeededGenerator(1), log)
	if err != nil {
		t.Fatalf("open dataset: %v", err)
	}
	bus := &recordingBus{}
	svc := NewService(&Repository{}, store, bus, log)
	return svc, store, bus
}

func TestRuleForCategoryIsCaseInsensitiveWithDefault(t *testing.T) {
	cases := []struct {
		category string
		priority string
		days     int
	}{
		{"CARD", "HIGH", 3},
		{"card", "HIGH", 3},
		{"Transaction", "HIGH", 2},
		{"branch", "LOW", 10},
		{"net_banking", "MEDIUM", 3},
		{"SOMETHING_ELSE", "LOW", 15},
		{"", "LOW", 15},
	}
	for _, tc := range cases {
		rule := RuleForCategory(tc.category)
		if rule.Priority != tc.priority || rule.Days != tc.days {
			t.Fatalf("category %q: got %s/%d, want %s/%d",
				tc.category, rule.Priority, rule.Days, tc.priority, tc.days)
		}
	}
}

func TestFileFallsBackToDatasetWhenStoreDisconnected(t *testing.T) {
	svc, store, bus := newTestService(t)

	complaint, err := svc.File(context.Background(), "123412345678",
		"Card swallowed by ATM", "The machine kept my debit card.", "CARD")
	if err != nil {
		t.Fatalf("file failed: %v", err)
	}
	if complaint.Status != "OPEN" {
		t.Fatalf("new ticket status: got %q, want OPEN", complaint.Status)
	}
	if complaint.Priority != "HIGH" || complaint.EstimatedResolutionDays != 3 {
		t.Fatalf("card rule not applied: %s/%d", complaint.Priority, complaint.EstimatedResolutionDays)
	}
	if !strings.HasPrefix(complaint.TicketID, "COMPLAINT") {
		t.Fatalf("unexpected ticket id %q", complaint.TicketID)
	}

	stored, ok := store.ComplaintByTicket(complaint.TicketID)
	if !ok {
		t.Fatal("ticket not written to the fallback dataset")
	}
	if stored.AccountNumber != "123412345678" {
		t.Fatalf("stored wrong account: %q", stored.AccountNumber)
	}

	bus.mu.Lock()
	defer bus.mu.Unlock()
	if len(bus.events) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.events))
	}
	evt, ok := bus.events[0].(ComplaintFiledEvent)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.events[0])
	}
	if evt.TicketID != complaint.TicketID || evt.Priority != "HIGH" {
		t.Fatalf("unexpected event payload: %+v", evt)
	}
}

func TestFileStripsMarkupFromFreeText(t *testing.T) {
	svc, _, _ := newTestService(t)

	complaint, err := svc.File(context.Background(), "123412345678",
		"  <b>Broken</b> net banking  ", "Cannot log in <script>alert(1)</script>", "NET_BANKING")
	if err != nil {
		t.Fatalf("file failed: %v", err)
	}
	if complaint.Subject != "Broken net banking" {
		t.Fatalf("subject not sanitized: %q", complaint.Subject)
	}
	if strings.Contains(complaint.Description, "<script>") {
		t.Fatalf("description kept markup: %q", complaint.Description)
	}
}

func TestStatusByTicketFallsThroughToDataset(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.AppendComplaint(mockdata.Complaint{
		TicketID:      "COMPLAINT777770",
		AccountNumber: "123412345678",
		Status:        "IN_PROGRESS",
	})

	complaint, err := svc.StatusByTicket(context.Background(), "COMPLAINT777770")
	if err != nil {
		t.Fatalf("status lookup failed: %v", err)
	}
	if complaint.Status != "IN_PROGRESS" {
		t.Fatalf("got status %q, want IN_PROGRESS", complaint.Status)
	}

	_, err = svc.StatusByTicket(context.Background(), "COMPLAINT00000")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("unknown ticket: got %v, want not found", err)
	}
	if err.Error() != "Complaint not found" {
		t.Fatalf("message: got %q", err.Error())
	}
}
