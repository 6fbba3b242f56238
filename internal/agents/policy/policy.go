// Package policy holds the pure availability and ranking rules for support
// agents. Nothing here touches storage or the clock beyond the instants it
// is handed.
package policy

import (
	"math/rand"
	"sort"
	"time"
)

// Status is an agent's operational state.
type Status string

const (
	StatusAvailable  Status = "Available"
	StatusBusy       Status = "Busy"
	StatusOnBreak    Status = "On Break"
	StatusInTraining Status = "In Training"
	StatusOffDuty    Status = "Off Duty"
)

// AllStatuses lists the recognized states in their canonical order.
var AllStatuses = []Status{
	StatusAvailable,
	StatusBusy,
	StatusOnBreak,
	StatusInTraining,
	StatusOffDuty,
}

// ParseStatus validates a raw status string.
func ParseStatus(raw string) (Status, bool) {
	for _, s := range AllStatuses {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// IsAvailable reports whether an agent in this status can take work now.
func IsAvailable(status Status) bool {
	return status == StatusAvailable
}

// unavailableRanges bounds the projected downtime per status, in minutes.
var unavailableRanges = map[Status][2]int{
	StatusBusy:       {15, 60},
	StatusOnBreak:    {10, 30},
	StatusInTraining: {60, 240},
	StatusOffDuty:    {480, 1440},
}

// DurationSampler draws a downtime duration from [lo, hi]. Injectable so
// tests can pin the draw.
type DurationSampler interface {
	Sample(lo, hi time.Duration) time.Duration
}

// RandomSampler draws uniformly from the range.
type RandomSampler struct {
	rng *rand.Rand
}

func NewRandomSampler(seed int64) *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *RandomSampler) Sample(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(s.rng.Int63n(int64(hi-lo+1)))
}

// MidpointSampler always returns the middle of the range. Deterministic,
// used by tests.
type MidpointSampler struct{}

func (MidpointSampler) Sample(lo, hi time.Duration) time.Duration {
	return lo + (hi-lo)/2
}

// NextAvailableTime projects when an agent leaving for status becomes free.
// Available agents have no projection; the second return is false.
func NextAvailableTime(status Status, now time.Time, sampler DurationSampler) (time.Time, bool) {
	if IsAvailable(status) {
		return time.Time{}, false
	}
	bounds, ok := unavailableRanges[status]
	if !ok {
		return time.Time{}, false
	}
	lo := time.Duration(bounds[0]) * time.Minute
	hi := time.Duration(bounds[1]) * time.Minute
	return now.Add(sampler.Sample(lo, hi)), true
}

// Scored exposes the two metrics the ranking order uses.
type Scored interface {
	PerformanceScore() float64
	SatisfactionScore() float64
}

// Rank orders agents by performance rating descending, then customer
// satisfaction descending. The sort is stable, so ties keep input order.
func Rank[T Scored](agents []T) []T {
	ranked := make([]T, len(agents))
	copy(ranked, agents)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PerformanceScore() != ranked[j].PerformanceScore() {
			return ranked[i].PerformanceScore() > ranked[j].PerformanceScore()
		}
		return ranked[i].SatisfactionScore() > ranked[j].SatisfactionScore()
	})
	return ranked
}
