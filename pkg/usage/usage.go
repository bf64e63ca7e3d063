package usage

import (
	"context"

	"github.com/google/uuid"

	"github.com/juristech/lexkit/pkg/plan"
)

// Counters holds the current consumption of every tracked resource for
// one tenant. Values are never negative and reflect the count of
// resources the tenant actually owns.
type Counters struct {
	Cases     int64 `json:"cases"`
	Clients   int64 `json:"clients"`
	Documents int64 `json:"documents"`
	Users     int64 `json:"users"`
}

// For returns the counter matching a plan resource.
func (c Counters) For(res plan.Resource) int64 {
	switch res {
	case plan.ResourceCases:
		return c.Cases
	case plan.ResourceClients:
		return c.Clients
	case plan.ResourceDocuments:
		return c.Documents
	case plan.ResourceUsers:
		return c.Users
	default:
		return 0
	}
}

// Source supplies current usage counters for a tenant.
// Implementations must be fast: the entitlement engine consults them on
// every gated action.
type Source interface {
	Counters(ctx context.Context, tenantID uuid.UUID) (Counters, error)
}

// TierResolver resolves the active plan tier for a tenant. Used by the
// static source, which derives counters from the tier alone.
type TierResolver func(ctx context.Context, tenantID uuid.UUID) (plan.Tier, error)
