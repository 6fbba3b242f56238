package dashboard

import (
	"context"
	"fmt"
	"time"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// allowedTables is the closed set of tables the dashboard may read. The
// table name is interpolated into the query, so it must come from this set.
var allowedTables = map[string]bool{
	"accounts":     true,
	"cards":        true,
	"transactions": true,
	"branches":     true,
	"atms":         true,
	"complaints":   true,
	"disputes":     true,
	"loans":        true,
	"fd_rates":     true,
	"cheques":      true,
}

// Repository reads raw rows for the operations dashboard.
type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, cfg config.DatabaseConfig) *Repository {
	return &Repository{pool: pool, timeout: cfg.GetQueryTimeout()}
}

// Rows returns up to limit rows of the named table as column maps.
func (r *Repository) Rows(ctx context.Context, table string, limit int) ([]map[string]any, error) {
	if !allowedTables[table] {
		return nil, apperr.BadRequest("unknown data type")
	}
	if r.pool == nil {
		return nil, apperr.Unavailable("dashboard store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT $1", table), limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "dashboard store unreachable", err).WithOp("dashboard.Rows")
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	records := []map[string]any{}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "scan dashboard row", err)
		}
		record := make(map[string]any, len(fields))
		for i, field := range fields {
			record[field.Name] = values[i]
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "dashboard store unreachable", err)
	}
	return records, nil
}
