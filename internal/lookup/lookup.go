// Package lookup implements the ranked source chain behind every banking
// read: the first source that answers wins, a miss or an unreachable source
// falls through to the next tier.
package lookup

import (
	"context"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/logger"
)

// Source resolves a key to a record. A miss is apperr.KindNotFound; an
// unreachable backend is apperr.KindUnavailable. Any other error aborts the
// chain.
type Source[T any] interface {
	Name() string
	Find(ctx context.Context, key string) (T, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc[T any] struct {
	SourceName string
	Fn         func(ctx context.Context, key string) (T, error)
}

func (s SourceFunc[T]) Name() string { return s.SourceName }

func (s SourceFunc[T]) Find(ctx context.Context, key string) (T, error) {
	return s.Fn(ctx, key)
}

// Chain tries each source in order.
type Chain[T any] struct {
	sources  []Source[T]
	notFound string
	log      *logger.Logger
}

// NewChain builds a chain over the given sources. notFound is the message
// returned when every tier misses.
func NewChain[T any](log *logger.Logger, notFound string, sources ...Source[T]) *Chain[T] {
	return &Chain[T]{sources: sources, notFound: notFound, log: log}
}

// Find returns the first hit. Misses and unavailable sources fall through;
// when all tiers are exhausted the result is a not-found error with the
// chain's message.
func (c *Chain[T]) Find(ctx context.Context, key string) (T, error) {
	var zero T
	for _, source := range c.sources {
		record, err := source.Find(ctx, key)
		if err == nil {
			return record, nil
		}
		switch apperr.GetKind(err) {
		case apperr.KindNotFound:
			continue
		case apperr.KindUnavailable:
			c.log.Warn("lookup source unreachable, trying next tier",
				"source", source.Name(), "error", err.Error())
			continue
		default:
			return zero, err
		}
	}
	return zero, apperr.NotFound(c.notFound)
}
