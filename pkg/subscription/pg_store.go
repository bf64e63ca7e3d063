package subscription

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juristech/lexkit/pkg/plan"
)

type pgStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a Store persisting subscriptions in PostgreSQL.
// The upsert keeps Save atomic at the row level, which is what the
// manager's no-partial-state guarantee rests on.
func NewPGStore(pool *pgxpool.Pool) Store {
	if pool == nil {
		panic("subscription: pgxpool is required")
	}
	return &pgStore{pool: pool}
}

func (s *pgStore) Get(ctx context.Context, tenantID uuid.UUID) (*Subscription, error) {
	const q = `
		SELECT tenant_id, tier, status, started_at, expires_at, updated_at
		FROM subscriptions WHERE tenant_id = $1`

	var sub Subscription
	var tier, status string
	err := s.pool.QueryRow(ctx, q, tenantID).
		Scan(&sub.TenantID, &tier, &status, &sub.StartedAt, &sub.ExpiresAt, &sub.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	sub.Tier = plan.Tier(tier)
	sub.Status = Status(status)
	return &sub, nil
}

func (s *pgStore) Save(ctx context.Context, sub *Subscription) error {
	const q = `
		INSERT INTO subscriptions (tenant_id, tier, status, started_at, expires_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id) DO UPDATE SET
			tier = EXCLUDED.tier,
			status = EXCLUDED.status,
			started_at = EXCLUDED.started_at,
			expires_at = EXCLUDED.expires_at,
			updated_at = EXCLUDED.updated_at`

	_, err := s.pool.Exec(ctx, q,
		sub.TenantID, string(sub.Tier), string(sub.Status),
		sub.StartedAt, sub.ExpiresAt, sub.UpdatedAt)
	if err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
