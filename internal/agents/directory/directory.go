package directory

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"bankwise_support_backend/internal/agents/policy"
	"bankwise_support_backend/platform/logger"
)

// Statistics is the aggregate view over the whole directory.
type Statistics struct {
	TotalAgents                int            `json:"total_agents"`
	AvailableAgents            int            `json:"available_agents"`
	AvailabilityRate           float64        `json:"availability_rate"`
	DepartmentDistribution     map[string]int `json:"department_distribution"`
	SpecializationDistribution map[string]int `json:"specialization_distribution"`
}

// Directory is the single writer over the agent set. All reads return
// copies; the mutex makes select-and-mark sequences atomic for callers
// that use Mutate.
type Directory struct {
	mu      sync.Mutex
	agents  []Agent
	file    string
	log     *logger.Logger
	sampler policy.DurationSampler
	now     func() time.Time
}

// Option adjusts directory construction, used by tests to pin time and
// duration draws.
type Option func(*Directory)

// WithSampler replaces the downtime sampler.
func WithSampler(s policy.DurationSampler) Option {
	return func(d *Directory) { d.sampler = s }
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// Load builds the directory from the snapshot file. A missing or unreadable
// snapshot regenerates the full set; a failed generation still leaves a
// minimal deterministic set, so the directory never starts empty. Whatever
// was loaded or generated is written back for the next start.
func Load(file string, count int, log *logger.Logger, opts ...Option) *Directory {
	d := &Directory{
		file:    file,
		log:     log,
		sampler: policy.NewRandomSampler(time.Now().UnixNano()),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	data, err := os.ReadFile(file)
	if err == nil {
		if jsonErr := json.Unmarshal(data, &d.agents); jsonErr == nil && len(d.agents) > 0 {
			log.Info("agent snapshot loaded", "file", file, "agents", len(d.agents))
			return d
		}
		log.Warn("agent snapshot unreadable, regenerating", "file", file)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if count <= 0 {
		count = 25
	}
	d.agents = Generate(count, rng, d.now())
	if len(d.agents) == 0 {
		d.agents = GenerateMinimal(rng, d.now())
	}
	d.persistLocked()
	log.Info("agent set generated", "agents", len(d.agents))
	return d
}

// persistLocked writes the full set atomically. Callers hold the mutex (or
// run before the directory is shared). Failures are logged, not retried.
func (d *Directory) persistLocked() {
	if d.file == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(d.file), 0o755); err != nil {
		d.log.Error("create agent snapshot dir", "error", err.Error())
		return
	}
	data, err := json.MarshalIndent(d.agents, "", "  ")
	if err != nil {
		d.log.Error("marshal agent snapshot", "error", err.Error())
		return
	}
	tmp := d.file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		d.log.Error("write agent snapshot", "error", err.Error())
		return
	}
	if err := os.Rename(tmp, d.file); err != nil {
		d.log.Error("replace agent snapshot", "error", err.Error())
	}
}

// ByID returns a copy of the agent with the given id.
func (d *Directory) ByID(agentID string) (Agent, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range d.agents {
		if a.AgentID == agentID {
			return a, true
		}
	}
	return Agent{}, false
}

// All returns a copy of the whole set in insertion order.
func (d *Directory) All() []Agent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Agent, len(d.agents))
	copy(out, d.agents)
	return out
}

// Available returns up to limit available agents, optionally constrained to
// a specialization, ranked best first.
func (d *Directory) Available(specialization string, limit int) []Agent {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.availableLocked(specialization, limit)
}

func (d *Directory) availableLocked(specialization string, limit int) []Agent {
	var matched []Agent
	for _, a := range d.agents {
		if !a.IsAvailable {
			continue
		}
		if specialization != "" && a.Specialization != specialization {
			continue
		}
		matched = append(matched, a)
	}
	ranked := policy.Rank(matched)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// UpdateStatus moves the agent to newStatus, recomputes its availability
// projection and persists the set. Returns false for an unknown id.
func (d *Directory) UpdateStatus(agentID string, newStatus policy.Status) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateStatusLocked(agentID, newStatus)
}

func (d *Directory) updateStatusLocked(agentID string, newStatus policy.Status) bool {
	for i := range d.agents {
		if d.agents[i].AgentID != agentID {
			continue
		}
		d.agents[i].CurrentStatus = newStatus
		d.agents[i].IsAvailable = policy.IsAvailable(newStatus)
		if t, ok := policy.NextAvailableTime(newStatus, d.now(), d.sampler); ok {
			d.agents[i].NextAvailableTime = &t
		} else {
			d.agents[i].NextAvailableTime = nil
		}
		d.persistLocked()
		return true
	}
	return false
}

// Selection is the outcome of an atomic select-and-mark.
type Selection struct {
	Best         Agent
	Alternatives []Agent
}

// SelectAndMarkBusy picks the best available agent for the specialization,
// marks it Busy and collects up to altLimit ranked alternatives, all under
// one critical section so two sequential callers never get the same
// primary agent.
func (d *Directory) SelectAndMarkBusy(specialization string, altLimit int) (Selection, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	candidates := d.availableLocked(specialization, 0)
	if len(candidates) == 0 {
		return Selection{}, false
	}
	best := candidates[0]
	d.updateStatusLocked(best.AgentID, policy.StatusBusy)

	var alternatives []Agent
	for _, a := range candidates[1:] {
		if len(alternatives) == altLimit {
			break
		}
		alternatives = append(alternatives, a)
	}
	return Selection{Best: best, Alternatives: alternatives}, true
}

// SoonestAvailable returns the agent with the earliest non-nil
// next-available projection across the whole directory.
func (d *Directory) SoonestAvailable() (Agent, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var best Agent
	found := false
	for _, a := range d.agents {
		if a.NextAvailableTime == nil {
			continue
		}
		if !found || a.NextAvailableTime.Before(*best.NextAvailableTime) {
			best = a
			found = true
		}
	}
	return best, found
}

// RankedAll returns up to limit agents ranked without the availability
// filter, excluding the given agent id.
func (d *Directory) RankedAll(excludeID string, limit int) []Agent {
	d.mu.Lock()
	defer d.mu.Unlock()

	var pool []Agent
	for _, a := range d.agents {
		if a.AgentID == excludeID {
			continue
		}
		pool = append(pool, a)
	}
	ranked := policy.Rank(pool)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Statistics aggregates counts over the whole set; the availability rate is
// a percentage rounded to one decimal.
func (d *Directory) Statistics() Statistics {
	d.mu.Lock()
	defer d.mu.Unlock()

	stats := Statistics{
		TotalAgents:                len(d.agents),
		DepartmentDistribution:     make(map[string]int),
		SpecializationDistribution: make(map[string]int),
	}
	for _, a := range d.agents {
		if a.IsAvailable {
			stats.AvailableAgents++
		}
		stats.DepartmentDistribution[a.Department]++
		stats.SpecializationDistribution[a.Specialization]++
	}
	if stats.TotalAgents > 0 {
		rate := float64(stats.AvailableAgents) / float64(stats.TotalAgents) * 100
		stats.AvailabilityRate = float64(int(rate*10+0.5)) / 10
	}
	return stats
}
