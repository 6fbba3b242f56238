// Package locator resolves branch and ATM searches. Distances are simulated
// around the search center because the dataset carries no caller location.
package locator

import (
	"context"
	"math/rand"
	"time"

	"bankwise_support_backend/internal/lookup"
	"bankwise_support_backend/internal/mockdata"
	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/logger"
)

// Branch is the locator read model, distance in kilometers.
type Branch struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Pincode   string  `json:"pincode"`
	IFSC      string  `json:"ifsc"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance"`
}

// ATM is the locator read model, distance in kilometers.
type ATM struct {
	ID        string  `json:"id"`
	Address   string  `json:"address"`
	City      string  `json:"city"`
	Pincode   string  `json:"pincode"`
	BankName  string  `json:"bank_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Distance  float64 `json:"distance"`
}

// DistanceSampler draws a simulated distance within [lo, hi] kilometers.
// Injectable so tests get stable values.
type DistanceSampler func(lo, hi float64) float64

// Service answers locator queries through the source chain.
type Service struct {
	repo   *Repository
	store  *mockdata.Store
	log    *logger.Logger
	sample DistanceSampler
}

func NewService(repo *Repository, store *mockdata.Store, log *logger.Logger, sample DistanceSampler) *Service {
	if sample == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		sample = func(lo, hi float64) float64 {
			v := lo + rng.Float64()*(hi-lo)
			return float64(int(v*10)) / 10
		}
	}
	return &Service{repo: repo, store: store, log: log, sample: sample}
}

// Branches returns up to limit branches in the city, nearest-center
// distances simulated between 0.5 and 15 km.
func (s *Service) Branches(ctx context.Context, city string, limit int) ([]Branch, error) {
	chain := lookup.NewChain[[]Branch](s.log, "No branches found in the specified city",
		lookup.SourceFunc[[]Branch]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) ([]Branch, error) {
				return s.repo.BranchesByCity(ctx, key, limit)
			},
		},
		lookup.SourceFunc[[]Branch]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) ([]Branch, error) {
				records := s.store.BranchesByCity(key, limit)
				if len(records) == 0 {
					return nil, apperr.NotFound("no branches found")
				}
				branches := make([]Branch, 0, len(records))
				for _, b := range records {
					branches = append(branches, Branch{
						Name:      b.Name,
						Address:   b.Address,
						City:      b.City,
						Pincode:   b.Pincode,
						IFSC:      b.IFSC,
						Latitude:  b.Latitude,
						Longitude: b.Longitude,
					})
				}
				return branches, nil
			},
		},
	)
	branches, err := chain.Find(ctx, city)
	if err != nil {
		return nil, err
	}
	for i := range branches {
		branches[i].Distance = s.sample(0.5, 15.0)
	}
	return branches, nil
}

// ATMs returns up to limit machines in the pincode, distances simulated
// between 0.2 and 8 km.
func (s *Service) ATMs(ctx context.Context, pincode string, limit int) ([]ATM, error) {
	chain := lookup.NewChain[[]ATM](s.log, "No ATMs found for the specified pincode",
		lookup.SourceFunc[[]ATM]{
			SourceName: "database",
			Fn: func(ctx context.Context, key string) ([]ATM, error) {
				return s.repo.ATMsByPincode(ctx, key, limit)
			},
		},
		lookup.SourceFunc[[]ATM]{
			SourceName: "mock",
			Fn: func(ctx context.Context, key string) ([]ATM, error) {
				records := s.store.ATMsByPincode(key, limit)
				if len(records) == 0 {
					return nil, apperr.NotFound("no atms found")
				}
				atms := make([]ATM, 0, len(records))
				for _, a := range records {
					atms = append(atms, ATM{
						ID:        a.ID,
						Address:   a.Address,
						City:      a.City,
						Pincode:   a.Pincode,
						BankName:  a.BankName,
						Latitude:  a.Latitude,
						Longitude: a.Longitude,
					})
				}
				return atms, nil
			},
		},
	)
	atms, err := chain.Find(ctx, pincode)
	if err != nil {
		return nil, err
	}
	for i := range atms {
		atms[i].Distance = s.sample(0.2, 8.0)
	}
	return atms, nil
}
