package locator

import (
	"context"
	"time"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads branch and ATM locations from Postgres.
type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, cfg config.DatabaseConfig) *Repository {
	return &Repository{pool: pool, timeout: cfg.GetQueryTimeout()}
}

// BranchesByCity returns branches whose city contains the search term,
// ordered by name. An empty result reports not found so the fallback tier
// can answer.
func (r *Repository) BranchesByCity(ctx context.Context, city string, limit int) ([]Branch, error) {
	if r.pool == nil {
		return nil, apperr.Unavailable("branch store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT name, address, city, pincode, ifsc, latitude, longitude
		 FROM branches WHERE city ILIKE '%' || $1 || '%'
		 ORDER BY name LIMIT $2`,
		city, limit,
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "branch store unreachable", err).WithOp("locator.BranchesByCity")
	}
	defer rows.Close()

	var branches []Branch
	for rows.Next() {
		var b Branch
		if err := rows.Scan(&b.Name, &b.Address, &b.City, &b.Pincode, &b.IFSC, &b.Latitude, &b.Longitude); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan branch row", err)
		}
		branches = append(branches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "branch store unreachable", err)
	}
	if len(branches) == 0 {
		return nil, apperr.NotFound("no branches found")
	}
	return branches, nil
}

// ATMsByPincode returns ATMs with the exact pincode, ordered by bank name.
func (r *Repository) ATMsByPincode(ctx context.Context, pincode string, limit int) ([]ATM, error) {
	if r.pool == nil {
		return nil, apperr.Unavailable("atm store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx,
		`SELECT atm_id, address, city, pincode, bank_name, latitude, longitude
		 FROM atms WHERE pincode = $1
		 ORDER BY bank_name LIMIT $2`,
		pincode, limit,
	)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "atm store unreachable", err).WithOp("locator.ATMsByPincode")
	}
	defer rows.Close()

	var atms []ATM
	for rows.Next() {
		var a ATM
		if err := rows.Scan(&a.ID, &a.Address, &a.City, &a.Pincode, &a.BankName, &a.Latitude, &a.Longitude); err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan atm row", err)
		}
		atms = append(atms, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "atm store unreachable", err)
	}
	if len(atms) == 0 {
		return nil, apperr.NotFound("no atms found")
	}
	return atms, nil
}
