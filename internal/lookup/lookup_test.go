package lookup

import (
	"context"
	"errors"
	"testing"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/logger"
)

func source(name string, fn func(ctx context.Context, key string) (string, error)) Source[string] {
	return SourceFunc[string]{SourceName: name, Fn: fn}
}

func hit(name, value string) Source[string] {
	return source(name, func(context.Context, string) (string, error) { return value, nil })
}

func miss(name string) Source[string] {
	return source(name, func(context.Context, string) (string, error) {
		return "", apperr.NotFound("no record")
	})
}

func down(name string) Source[string] {
	return source(name, func(context.Context, string) (string, error) {
		return "", apperr.Unavailable("store unreachable")
	})
}

func TestChainReturnsFirstHit(t *testing.T) {
	chain := NewChain(logger.New("development"), "Record not found",
		hit("primary", "from-primary"), hit("fallback", "from-fallback"))

	got, err := chain.Find(context.Background(), "key")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got != "from-primary" {
		t.Fatalf("got %q, want the first tier's answer", got)
	}
}

func TestChainFallsThroughMissesAndOutages(t *testing.T) {
	chain := NewChain(logger.New("development"), "Record not found",
		down("database"), miss("cache"), hit("mock", "from-mock"))

	got, err := chain.Find(context.Background(), "key")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got != "from-mock" {
		t.Fatalf("got %q, want the last tier's answer", got)
	}
}

func TestChainReportsNotFoundAfterExhaustion(t *testing.T) {
	chain := NewChain(logger.New("development"), "Account not found",
		down("database"), miss("mock"))

	_, err := chain.Find(context.Background(), "key")
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("got %v, want not found", err)
	}
	if err.Error() != "Account not found" {
		t.Fatalf("message: got %q, want the chain's message", err.Error())
	}
}

func TestChainAbortsOnUnexpectedErrors(t *testing.T) {
	boom := errors.New("parse failure")
	chain := NewChain(logger.New("development"), "Record not found",
		source("database", func(context.Context, string) (string, error) { return "", boom }),
		hit("mock", "never reached"))

	_, err := chain.Find(context.Background(), "key")
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want the aborting error", err)
	}
}
