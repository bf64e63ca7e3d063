package subscription

import (
	"context"

	"github.com/google/uuid"
)

// Store defines subscription persistence. Each tenant has exactly one
// subscription, so TenantID serves as the primary key.
//
// Save must be atomic: either the record is fully written or the stored
// state is unchanged. The manager relies on this to guarantee that a
// failed transition leaves nothing half-updated.
type Store interface {
	// Get retrieves a subscription by tenant ID.
	// Returns ErrNotFound if the tenant never subscribed.
	Get(ctx context.Context, tenantID uuid.UUID) (*Subscription, error)

	// Save creates or updates a subscription, keyed by TenantID.
	Save(ctx context.Context, sub *Subscription) error
}
