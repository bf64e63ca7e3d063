package usage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/juristech/lexkit/pkg/plan"
)

// staticCounters is the demo dataset, keyed by tier. A production
// deployment swaps the static source for PGSource, which aggregates
// over the tenant's actual records.
var staticCounters = map[plan.Tier]Counters{
	plan.TierBasic:      {Cases: 8, Clients: 15, Documents: 32, Users: 1},
	plan.TierPremium:    {Cases: 127, Clients: 89, Documents: 1243, Users: 3},
	plan.TierEnterprise: {Cases: 2847, Clients: 1456, Documents: 8932, Users: 12},
}

type staticSource struct {
	resolve TierResolver
}

// NewStaticSource returns a Source with fixed per-tier counters.
// Tenants without a resolvable tier fall back to the basic dataset.
func NewStaticSource(resolve TierResolver) Source {
	if resolve == nil {
		panic("usage: TierResolver is required")
	}
	return &staticSource{resolve: resolve}
}

func (s *staticSource) Counters(ctx context.Context, tenantID uuid.UUID) (Counters, error) {
	tier, err := s.resolve(ctx, tenantID)
	if err != nil {
		return Counters{}, errors.Join(ErrFailedToCountUsage, err)
	}

	counters, ok := staticCounters[tier]
	if !ok {
		counters = staticCounters[plan.TierBasic]
	}
	return counters, nil
}
