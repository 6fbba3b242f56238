// Package sessions holds conversational state keyed by session ID. The
// Redis store is used when Redis is configured, with an in-memory store as
// the fallback so single-instance deployments need no extra infrastructure.
package sessions

import (
	"context"
	"encoding/json"
	"time"
)

// Session is the conversational state for one caller.
type Session struct {
	ID                  string          `json:"id"`
	CreatedAt           time.Time       `json:"created_at"`
	IntentHistory       []string        `json:"intent_history"`
	Entities            map[string]any  `json:"entities"`
	EscalationRequested bool            `json:"escalation_requested"`
	LastResponse        json.RawMessage `json:"last_response,omitempty"`
}

// NewSession returns an empty session with the given ID.
func NewSession(id string, now time.Time) Session {
	return Session{
		ID:            id,
		CreatedAt:     now,
		IntentHistory: []string{},
		Entities:      map[string]any{},
	}
}

// Store persists sessions. Get creates a fresh session when the ID is
// unknown or expired.
type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, session Session) error
	Count(ctx context.Context) (int, error)
}
