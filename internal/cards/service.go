// Package cards handles card blocking: the database tier is tried first,
// then the generated dataset, and a successful block raises a CardBlocked
// event for the notification side effects.
package cards

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
)

// EventCardBlocked is raised after a card has been blocked in any tier.
const EventCardBlocked = "cards.blocked"

// CardBlockedEvent carries the block outcome to subscribers.
type CardBlockedEvent struct {
	events.BaseEvent
	Last4     string
	TicketID  string
	BlockedAt time.Time
}

func (e CardBlockedEvent) EventName() string { return EventCardBlocked }

// BlockResult is the outcome of a block request.
type BlockResult struct {
	Last4     string
	TicketID  string
	BlockedAt time.Time
}

// Blocker is the fallback tier over the generated dataset.
type Blocker interface {
	BlockCardByLast4(last4 string) bool
}

// Service executes card blocks through the tiered stores.
type Service struct {
	repo *Repository
	mock Blocker
	bus  events.Bus
	log  *logger.Logger
	rng  *rand.Rand
}

func NewService(repo *Repository, mock Blocker, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo: repo,
		mock: mock,
		bus:  bus,
		log:  log,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Block marks all cards ending in last4 as blocked. The database answers
// first; when unreachable the generated dataset takes the write.
func (s *Service) Block(ctx context.Context, last4 string) (BlockResult, error) {
	err := s.repo.BlockByLast4(ctx, last4)
	switch apperr.GetKind(err) {
	case apperr.KindUnavailable:
		s.log.Warn("card store unreachable, blocking in fallback dataset", "error", err.Error())
		if !s.mock.BlockCardByLast4(last4) {
			return BlockResult{}, apperr.NotFound("Card not found")
		}
	case apperr.KindNotFound:
		// a database miss falls through to the generated dataset
		if !s.mock.BlockCardByLast4(last4) {
			return BlockResult{}, apperr.NotFound("Card not found")
		}
	default:
		if err != nil {
			return BlockResult{}, err
		}
	}

	result := BlockResult{
		Last4:     last4,
		TicketID:  fmt.Sprintf("BLOCK%d", 10000+s.rng.Intn(90000)),
		BlockedAt: time.Now(),
	}
	s.bus.Publish(ctx, CardBlockedEvent{
		BaseEvent: events.NewBaseEvent(),
		Last4:     result.Last4,
		TicketID:  result.TicketID,
		BlockedAt: result.BlockedAt,
	})
	return result, nil
}
