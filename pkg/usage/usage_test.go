package usage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juristech/lexkit/pkg/plan"
	"github.com/juristech/lexkit/pkg/usage"
)

func TestCounters_For(t *testing.T) {
	t.Parallel()

	c := usage.Counters{Cases: 1, Clients: 2, Documents: 3, Users: 4}

	assert.Equal(t, int64(1), c.For(plan.ResourceCases))
	assert.Equal(t, int64(2), c.For(plan.ResourceClients))
	assert.Equal(t, int64(3), c.For(plan.ResourceDocuments))
	assert.Equal(t, int64(4), c.For(plan.ResourceUsers))
	assert.Equal(t, int64(0), c.For(plan.Resource("storage")))
}

func TestStaticSource(t *testing.T) {
	t.Parallel()

	fixedTier := func(tier plan.Tier) usage.TierResolver {
		return func(ctx context.Context, tenantID uuid.UUID) (plan.Tier, error) {
			return tier, nil
		}
	}

	t.Run("returns the per-tier dataset", func(t *testing.T) {
		t.Parallel()
		src := usage.NewStaticSource(fixedTier(plan.TierPremium))

		c, err := src.Counters(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, usage.Counters{Cases: 127, Clients: 89, Documents: 1243, Users: 3}, c)
	})

	t.Run("basic tier dataset stays under its limits", func(t *testing.T) {
		t.Parallel()
		src := usage.NewStaticSource(fixedTier(plan.TierBasic))

		c, err := src.Counters(context.Background(), uuid.New())
		require.NoError(t, err)

		limits := plan.Default().LimitsFor(plan.TierBasic)
		assert.Less(t, c.Cases, limits.LimitFor(plan.ResourceCases))
		assert.Less(t, c.Clients, limits.LimitFor(plan.ResourceClients))
	})

	t.Run("propagates resolver failures", func(t *testing.T) {
		t.Parallel()
		resolverErr := errors.New("tenant not found")
		src := usage.NewStaticSource(func(ctx context.Context, tenantID uuid.UUID) (plan.Tier, error) {
			return "", resolverErr
		})

		_, err := src.Counters(context.Background(), uuid.New())
		assert.ErrorIs(t, err, usage.ErrFailedToCountUsage)
		assert.ErrorIs(t, err, resolverErr)
	})

	t.Run("panics without a resolver", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { usage.NewStaticSource(nil) })
	})
}
