package complaints

import (
	"context"
	"errors"
	"time"

	"bankwise_support_backend/platform/apperr"
	"bankwise_support_backend/platform/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads and writes complaint tickets in Postgres.
type Repository struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

func NewRepository(pool *pgxpool.Pool, cfg config.DatabaseConfig) *Repository {
	return &Repository{pool: pool, timeout: cfg.GetQueryTimeout()}
}

// ByTicket returns the complaint with the given ticket id.
func (r *Repository) ByTicket(ctx context.Context, ticketID string) (Complaint, error) {
	if r.pool == nil {
		return Complaint{}, apperr.Unavailable("complaint store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var c Complaint
	var createdAt time.Time
	var resolvedAt *time.Time
	err := r.pool.QueryRow(ctx,
		`SELECT ticket_id, account_number, subject, description, category, status,
		        priority, created_at, resolved_at, estimated_resolution_days,
		        assigned_agent, resolution_notes
		 FROM complaints WHERE ticket_id = $1`,
		ticketID,
	).Scan(&c.TicketID, &c.AccountNumber, &c.Subject, &c.Description, &c.Category,
		&c.Status, &c.Priority, &createdAt, &resolvedAt, &c.EstimatedResolutionDays,
		&c.AssignedAgent, &c.ResolutionNotes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Complaint{}, apperr.NotFound("complaint not found")
		}
		return Complaint{}, apperr.Wrap(apperr.KindUnavailable, "complaint store unreachable", err).WithOp("complaints.ByTicket")
	}
	c.CreatedAt = createdAt.Format(time.RFC3339)
	if resolvedAt != nil {
		s := resolvedAt.Format(time.RFC3339)
		c.ResolvedAt = &s
	}
	return c, nil
}

// Insert stores a new complaint. Failures are reported as unavailable so
// the caller can fall back to the generated dataset.
func (r *Repository) Insert(ctx context.Context, c Complaint) error {
	if r.pool == nil {
		return apperr.Unavailable("complaint store not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO complaints
		   (ticket_id, account_number, subject, description, category, status,
		    priority, created_at, estimated_resolution_days)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8)`,
		c.TicketID, c.AccountNumber, c.Subject, c.Description, c.Category,
		c.Status, c.Priority, c.EstimatedResolutionDays,
	)
	if err != nil {
		return apperr.Wrap(apperr.KindUnavailable, "complaint store unreachable", err).WithOp("complaints.Insert")
	}
	return nil
}
