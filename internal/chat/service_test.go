package chat

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"bankwise_support_backend/internal/sessions"
	"bankwise_support_backend/platform/logger"
)

func midpoint(lo, hi float64) float64 { return (lo + hi) / 2 }

func newTestService(t *testing.T) (*Service, sessions.Store) {
	t.Helper()
	store := sessions.NewMemoryStore(30 * time.Minute)
	svc, err := NewService(store, midpoint, logger.New("development"))
	if err != nil {
		t.Fatalf("service construction failed: %v", err)
	}
	return svc, store
}

func TestDetectMatchesKeywordLadderTopDown(t *testing.T) {
	table, err := loadIntentTable()
	if err != nil {
		t.Fatalf("load intent table: %v", err)
	}

	cases := map[string]Intent{
		"What is my account balance?":     IntentAccountInfo,
		"show my last 5 transactions":     IntentTxHistory,
		"please BLOCK my card":            IntentCardBlock,
		"raise a chargeback":              IntentRaiseDispute,
		"I want to file a complaint":      IntentComplaintNew,
		"nearest branch please":           IntentLocateBranch,
		"atm near me":                     IntentLocateATM,
		"is my kyc done":                  IntentKYCStatus,
		"cheque 123456 status":            IntentChequeStatus,
		"current fixed deposit rates":     IntentFDRateInfo,
		"when is my emi due":              IntentLoanStatus,
		"let me speak to a human":         IntentSpeakToAgent,
		"completely unrelated utterance":  IntentSpeakToAgent,
		"":                                IntentSpeakToAgent,
		"dispute this transaction please": IntentTxHistory,
	}
	for text, want := range cases {
		if got := table.detect(text); got != want {
			t.Fatalf("detect(%q): got %q, want %q", text, got, want)
		}
	}
}

func TestProcessStartsSessionAndRecordsExchange(t *testing.T) {
	svc, store := newTestService(t)

	resp, err := svc.Process(context.Background(), "check my balance", "")
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if resp.SessionID == "" {
		t.Fatal("a missing session id must start a new session")
	}
	if resp.Intent != IntentAccountInfo {
		t.Fatalf("intent: got %q", resp.Intent)
	}
	if resp.Confidence < 0.7 || resp.Confidence > 0.95 {
		t.Fatalf("confidence out of range: %v", resp.Confidence)
	}
	if resp.Entities == nil || len(resp.Entities) != 0 {
		t.Fatalf("entities must be present and empty, got %v", resp.Entities)
	}

	session, err := store.Get(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("session load failed: %v", err)
	}
	if len(session.IntentHistory) != 1 || session.IntentHistory[0] != string(IntentAccountInfo) {
		t.Fatalf("intent history: got %v", session.IntentHistory)
	}
	if session.EscalationRequested {
		t.Fatal("a balance query must not request escalation")
	}

	var last Response
	if err := json.Unmarshal(session.LastResponse, &last); err != nil {
		t.Fatalf("last response not recorded as JSON: %v", err)
	}
	if last.Intent != IntentAccountInfo {
		t.Fatalf("last response intent: got %q", last.Intent)
	}
}

func TestProcessAccumulatesHistoryAndFlagsEscalation(t *testing.T) {
	svc, store := newTestService(t)

	resp, err := svc.Process(context.Background(), "show my transaction history", "")
	if err != nil {
		t.Fatalf("first turn failed: %v", err)
	}
	if _, err := svc.Process(context.Background(), "I need a human agent now", resp.SessionID); err != nil {
		t.Fatalf("second turn failed: %v", err)
	}

	session, err := store.Get(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("session load failed: %v", err)
	}
	if len(session.IntentHistory) != 2 {
		t.Fatalf("intent history length: got %d, want 2", len(session.IntentHistory))
	}
	if session.IntentHistory[1] != string(IntentSpeakToAgent) {
		t.Fatalf("second intent: got %q", session.IntentHistory[1])
	}
	if !session.EscalationRequested {
		t.Fatal("speak_to_agent must flag the session for escalation")
	}
}
