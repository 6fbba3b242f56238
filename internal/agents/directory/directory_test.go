package directory

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bankwise_support_backend/internal/agents/policy"
	"bankwise_support_backend/platform/logger"
)

func testLogger() *logger.Logger {
	return logger.New("development")
}

func fixedClock() func() time.Time {
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func minimalDirectory(t *testing.T) *Directory {
	t.Helper()
	d := &Directory{
		log:     testLogger(),
		sampler: policy.MidpointSampler{},
		now:     fixedClock(),
	}
	d.agents = GenerateMinimal(rand.New(rand.NewSource(7)), d.now())
	return d
}

func TestLoadRegeneratesWhenSnapshotMissing(t *testing.T) {
	file := filepath.Join(t.TempDir(), "agents.json")

	d := Load(file, 25, testLogger())

	if len(d.All()) != 25 {
		t.Fatalf("expected 25 generated agents, got %d", len(d.All()))
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("snapshot not persisted: %v", err)
	}
}

func TestLoadRegeneratesWhenSnapshotCorrupt(t *testing.T) {
	file := filepath.Join(t.TempDir(), "agents.json")
	if err := os.WriteFile(file, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	d := Load(file, 10, testLogger())

	if len(d.All()) == 0 {
		t.Fatal("directory must never start empty")
	}
}

func TestLoadRoundTripsSnapshot(t *testing.T) {
	file := filepath.Join(t.TempDir(), "agents.json")

	first := Load(file, 12, testLogger())
	firstIDs := make(map[string]bool)
	for _, a := range first.All() {
		firstIDs[a.AgentID] = true
	}

	second := Load(file, 12, testLogger())
	for _, a := range second.All() {
		if !firstIDs[a.AgentID] {
			t.Fatalf("agent %s not present in first load, snapshot not reused", a.AgentID)
		}
	}
}

func TestStatisticsComputesAvailabilityRate(t *testing.T) {
	d := minimalDirectory(t)

	// The minimal set has 10 agents with the first 5 available. Move one
	// more to Busy to get an uneven rate.
	agents := d.All()
	if !d.UpdateStatus(agents[0].AgentID, policy.StatusBusy) {
		t.Fatal("update failed for a known agent")
	}

	stats := d.Statistics()
	if stats.TotalAgents != 10 {
		t.Fatalf("total agents: got %d, want 10", stats.TotalAgents)
	}
	if stats.AvailableAgents != 4 {
		t.Fatalf("available agents: got %d, want 4", stats.AvailableAgents)
	}
	if stats.AvailabilityRate != 40.0 {
		t.Fatalf("availability rate: got %v, want 40.0", stats.AvailabilityRate)
	}
}

func TestUpdateStatusUnknownAgentLeavesSetUnchanged(t *testing.T) {
	d := minimalDirectory(t)
	before := d.Statistics()

	if d.UpdateStatus("AGENT9999", policy.StatusOffDuty) {
		t.Fatal("unknown agent id accepted")
	}

	after := d.Statistics()
	if after.AvailableAgents != before.AvailableAgents {
		t.Fatalf("available count changed: %d -> %d", before.AvailableAgents, after.AvailableAgents)
	}
}

func TestUpdateStatusProjectsNextAvailableTime(t *testing.T) {
	d := minimalDirectory(t)
	id := d.All()[0].AgentID

	d.UpdateStatus(id, policy.StatusOnBreak)

	agent, ok := d.ByID(id)
	if !ok {
		t.Fatal("agent disappeared")
	}
	if agent.IsAvailable {
		t.Fatal("agent on break still marked available")
	}
	if agent.NextAvailableTime == nil {
		t.Fatal("no availability projection after status change")
	}
	// On Break spans 10 to 30 minutes; the midpoint sampler lands on 20.
	want := d.now().Add(20 * time.Minute)
	if !agent.NextAvailableTime.Equal(want) {
		t.Fatalf("projection: got %v, want %v", agent.NextAvailableTime, want)
	}

	d.UpdateStatus(id, policy.StatusAvailable)
	agent, _ = d.ByID(id)
	if agent.NextAvailableTime != nil {
		t.Fatal("projection should clear when the agent returns")
	}
}

func TestSelectAndMarkBusyNeverRepeatsPrimary(t *testing.T) {
	d := minimalDirectory(t)

	seen := make(map[string]bool)
	for {
		sel, ok := d.SelectAndMarkBusy("", 3)
		if !ok {
			break
		}
		if seen[sel.Best.AgentID] {
			t.Fatalf("agent %s selected twice", sel.Best.AgentID)
		}
		seen[sel.Best.AgentID] = true

		agent, _ := d.ByID(sel.Best.AgentID)
		if agent.CurrentStatus != policy.StatusBusy {
			t.Fatalf("selected agent not marked busy, status %q", agent.CurrentStatus)
		}
	}

	if len(seen) != 5 {
		t.Fatalf("expected the 5 available agents to be drained, drained %d", len(seen))
	}
}

func TestSelectAndMarkBusyReturnsRankedAlternatives(t *testing.T) {
	d := minimalDirectory(t)

	sel, ok := d.SelectAndMarkBusy("", 2)
	if !ok {
		t.Fatal("expected a selection from a fresh directory")
	}
	if len(sel.Alternatives) != 2 {
		t.Fatalf("alternatives: got %d, want 2", len(sel.Alternatives))
	}
	for _, alt := range sel.Alternatives {
		if alt.AgentID == sel.Best.AgentID {
			t.Fatal("primary agent listed among alternatives")
		}
	}
}

func TestSoonestAvailablePicksEarliestProjection(t *testing.T) {
	d := minimalDirectory(t)
	agents := d.All()

	// Off Duty projects hours out; On Break only minutes. The generated
	// busy agents carry random projections, so pin every one of them.
	for _, a := range agents[5:] {
		d.UpdateStatus(a.AgentID, policy.StatusOffDuty)
	}
	d.UpdateStatus(agents[6].AgentID, policy.StatusOnBreak)

	soonest, ok := d.SoonestAvailable()
	if !ok {
		t.Fatal("expected a projection")
	}
	if soonest.AgentID != agents[6].AgentID {
		t.Fatalf("soonest: got %s, want %s", soonest.AgentID, agents[6].AgentID)
	}
}
