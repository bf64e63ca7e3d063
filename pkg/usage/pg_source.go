package usage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// countsQuery aggregates every tracked resource in one round trip.
// firm_users counts memberships rather than profiles so invited-but-
// pending users still consume a seat.
const countsQuery = `
SELECT
	(SELECT count(*) FROM cases WHERE tenant_id = $1),
	(SELECT count(*) FROM clients WHERE tenant_id = $1),
	(SELECT count(*) FROM documents WHERE tenant_id = $1),
	(SELECT count(*) FROM firm_users WHERE tenant_id = $1)
`

type pgSource struct {
	pool *pgxpool.Pool
}

// NewPGSource returns a Source that counts the tenant's owned records
// in PostgreSQL. This is the production replacement for the static
// demo dataset.
func NewPGSource(pool *pgxpool.Pool) Source {
	if pool == nil {
		panic("usage: pgxpool is required")
	}
	return &pgSource{pool: pool}
}

func (s *pgSource) Counters(ctx context.Context, tenantID uuid.UUID) (Counters, error) {
	var c Counters
	err := s.pool.QueryRow(ctx, countsQuery, tenantID).
		Scan(&c.Cases, &c.Clients, &c.Documents, &c.Users)
	if err != nil {
		return Counters{}, errors.Join(ErrFailedToCountUsage, err)
	}
	return c, nil
}
