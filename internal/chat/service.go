package chat

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"bankwise_support_backend/internal/sessions"
	"bankwise_support_backend/platform/logger"

	"github.com/google/uuid"
)

// Response is the intent detection result returned to the channel.
type Response struct {
	Intent     Intent         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Entities   map[string]any `json:"entities"`
	SessionID  string         `json:"session_id"`
}

// ConfidenceSampler draws a confidence value from the given range. A nil
// sampler uses a seeded uniform draw.
type ConfidenceSampler func(lo, hi float64) float64

// Service detects intents and records the exchange on the session.
type Service struct {
	table  intentTable
	store  sessions.Store
	sample ConfidenceSampler
	log    *logger.Logger
}

func NewService(store sessions.Store, sample ConfidenceSampler, log *logger.Logger) (*Service, error) {
	table, err := loadIntentTable()
	if err != nil {
		return nil, err
	}

	if sample == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		sample = func(lo, hi float64) float64 {
			return lo + rng.Float64()*(hi-lo)
		}
	}

	return &Service{
		table:  table,
		store:  store,
		sample: sample,
		log:    log,
	}, nil
}

// Process classifies the text and saves the response as the session's last
// answer. A missing session ID starts a new session.
func (s *Service) Process(ctx context.Context, text, sessionID string) (Response, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	intent := s.table.detect(text)
	resp := Response{
		Intent:     intent,
		Confidence: s.sample(0.7, 0.95),
		Entities:   map[string]any{},
		SessionID:  sessionID,
	}

	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		s.log.Warn("session load failed", "session_id", sessionID, "error", err)
		return resp, nil
	}

	session.IntentHistory = append(session.IntentHistory, string(intent))
	if intent == IntentSpeakToAgent {
		session.EscalationRequested = true
	}
	if raw, err := json.Marshal(resp); err == nil {
		session.LastResponse = raw
	}
	if err := s.store.Save(ctx, session); err != nil {
		s.log.Warn("session save failed", "session_id", sessionID, "error", err)
	}

	return resp, nil
}
