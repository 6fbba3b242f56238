package sessions

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStoreReturnsFreshSessionForUnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	session, err := store.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if session.ID != "sess-1" {
		t.Fatalf("session id: got %q", session.ID)
	}
	if len(session.IntentHistory) != 0 || session.EscalationRequested {
		t.Fatalf("fresh session carries state: %+v", session)
	}
}

func TestMemoryStoreRoundTripsSavedSessions(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	session := NewSession("sess-1", time.Now())
	session.IntentHistory = []string{"account_info"}
	session.EscalationRequested = true

	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(loaded.IntentHistory) != 1 || !loaded.EscalationRequested {
		t.Fatalf("saved state lost: %+v", loaded)
	}
}

func TestMemoryStoreEvictsExpiredSessions(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	store := NewMemoryStore(10 * time.Minute)
	store.now = func() time.Time { return now }

	session := NewSession("sess-1", now)
	session.IntentHistory = []string{"loan_status"}
	if err := store.Save(context.Background(), session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	count, err := store.Count(context.Background())
	if err != nil || count != 1 {
		t.Fatalf("count before expiry: got %d, %v", count, err)
	}

	now = now.Add(11 * time.Minute)

	loaded, err := store.Get(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(loaded.IntentHistory) != 0 {
		t.Fatal("expired session must be replaced with a fresh one")
	}

	count, err = store.Count(context.Background())
	if err != nil || count != 0 {
		t.Fatalf("count after expiry: got %d, %v", count, err)
	}
}

func TestMemoryStoreDefaultsNonPositiveTTL(t *testing.T) {
	store := NewMemoryStore(0)
	if store.ttl != 24*time.Hour {
		t.Fatalf("default ttl: got %v", store.ttl)
	}
}
