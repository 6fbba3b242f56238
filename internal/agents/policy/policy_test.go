package policy

import (
	"testing"
	"time"
)

type scoredAgent struct {
	name         string
	performance  float64
	satisfaction float64
}

func (a scoredAgent) PerformanceScore() float64  { return a.performance }
func (a scoredAgent) SatisfactionScore() float64 { return a.satisfaction }

func TestRankOrdersByPerformanceThenSatisfaction(t *testing.T) {
	agents := []scoredAgent{
		{name: "A", performance: 4.9, satisfaction: 90},
		{name: "B", performance: 4.9, satisfaction: 95},
		{name: "C", performance: 4.5, satisfaction: 99},
	}

	ranked := Rank(agents)

	got := []string{ranked[0].name, ranked[1].name, ranked[2].name}
	want := []string{"B", "A", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank position %d: got %s, want %s (full order %v)", i, got[i], want[i], got)
		}
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	agents := []scoredAgent{
		{name: "low", performance: 1},
		{name: "high", performance: 5},
	}

	Rank(agents)

	if agents[0].name != "low" {
		t.Fatalf("input slice reordered: %v", agents)
	}
}

func TestNextAvailableTimeUsesStatusRange(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	next, ok := NextAvailableTime(StatusBusy, now, MidpointSampler{})
	if !ok {
		t.Fatal("expected a projection for a busy agent")
	}
	// Busy spans 15 to 60 minutes; the midpoint is 37m30s.
	want := now.Add(37*time.Minute + 30*time.Second)
	if !next.Equal(want) {
		t.Fatalf("next available: got %v, want %v", next, want)
	}
}

func TestNextAvailableTimeForAvailableAgentHasNoProjection(t *testing.T) {
	if _, ok := NextAvailableTime(StatusAvailable, time.Now(), MidpointSampler{}); ok {
		t.Fatal("available agent should have no downtime projection")
	}
}

func TestParseStatusAcceptsCanonicalValuesOnly(t *testing.T) {
	for _, s := range AllStatuses {
		parsed, ok := ParseStatus(string(s))
		if !ok || parsed != s {
			t.Fatalf("canonical status %q not accepted", s)
		}
	}

	if _, ok := ParseStatus("available"); ok {
		t.Fatal("status parsing should be case sensitive")
	}
	if _, ok := ParseStatus("Vacation"); ok {
		t.Fatal("unknown status accepted")
	}
}

func TestRandomSamplerStaysWithinBounds(t *testing.T) {
	sampler := NewRandomSampler(1)
	lo, hi := 10*time.Minute, 30*time.Minute
	for i := 0; i < 100; i++ {
		d := sampler.Sample(lo, hi)
		if d < lo || d > hi {
			t.Fatalf("sample %v outside [%v, %v]", d, lo, hi)
		}
	}
}
