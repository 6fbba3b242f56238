package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

type sessionConfig struct {
	url string
	ttl time.Duration
}

func (c sessionConfig) GetRedisURL() string { return c.url }

func (c sessionConfig) GetSessionTTL() time.Duration { return c.ttl }

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(sessionConfig{url: "redis://" + mr.Addr(), ttl: time.Hour})
	if err != nil {
		t.Fatalf("redis store construction failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStoreRequiresURL(t *testing.T) {
	if _, err := NewRedisStore(sessionConfig{}); err == nil {
		t.Fatal("expected an error without a redis url")
	}
}

func TestRedisStoreRoundTripsSessionsWithTTL(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	session := NewSession("sess-1", time.Now())
	session.IntentHistory = []string{"card_block"}
	session.EscalationRequested = true
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if ttl := mr.TTL("session:sess-1"); ttl != time.Hour {
		t.Fatalf("key ttl: got %v, want 1h", ttl)
	}

	loaded, err := store.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(loaded.IntentHistory) != 1 || loaded.IntentHistory[0] != "card_block" {
		t.Fatalf("intent history lost: %v", loaded.IntentHistory)
	}
	if !loaded.EscalationRequested {
		t.Fatal("escalation flag lost")
	}
}

func TestRedisStoreReturnsFreshSessionOnMissAndCorruption(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	missed, err := store.Get(ctx, "never-saved")
	if err != nil {
		t.Fatalf("get on miss failed: %v", err)
	}
	if missed.ID != "never-saved" || len(missed.IntentHistory) != 0 {
		t.Fatalf("miss must yield a fresh session: %+v", missed)
	}

	mr.Set("session:corrupt", "{definitely not json")
	recovered, err := store.Get(ctx, "corrupt")
	if err != nil {
		t.Fatalf("get on corrupt record failed: %v", err)
	}
	if recovered.ID != "corrupt" {
		t.Fatalf("corrupt record must be replaced: %+v", recovered)
	}
}

func TestRedisStoreCountsOnlySessionKeys(t *testing.T) {
	store, mr := newRedisStore(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := store.Save(ctx, NewSession(id, time.Now())); err != nil {
			t.Fatalf("save %s failed: %v", id, err)
		}
	}
	mr.Set("unrelated:key", "x")

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("count: got %d, want 3", count)
	}
}
