package plan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juristech/lexkit/pkg/plan"
)

const catalogYAML = `
- tier: basic
  name: Basic
  price: {amount: 2900, currency: EUR}
  limits: {cases: 10, clients: 25, documents: 50, users: 1}
  features: [email_support]
- tier: premium
  name: Premium
  price: {amount: 7900, currency: EUR}
  limits: {cases: 500, clients: 1000, documents: 5000, users: 5}
  features: [email_support, client_portal]
- tier: enterprise
  name: Enterprise
  price: {amount: 14900, currency: EUR}
  limits: {cases: -1, clients: -1, documents: -1, users: -1}
  features: [email_support, client_portal, audit_logs]
`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestYAMLSource(t *testing.T) {
	t.Parallel()

	t.Run("loads and validates a catalog file", func(t *testing.T) {
		t.Parallel()
		src := plan.NewYAMLSource(writeCatalogFile(t, catalogYAML))

		catalog, err := src.Load(context.Background())
		require.NoError(t, err)

		premium := catalog.LimitsFor(plan.TierPremium)
		assert.Equal(t, int64(500), premium.LimitFor(plan.ResourceCases))
		assert.True(t, premium.HasFeature(plan.FeatureClientPortal))
		assert.True(t, catalog.LimitsFor(plan.TierEnterprise).IsUnlimited(plan.ResourceUsers))
	})

	t.Run("fails on an unknown tier", func(t *testing.T) {
		t.Parallel()
		src := plan.NewYAMLSource(writeCatalogFile(t, `
- tier: platinum
  limits: {cases: 1, clients: 1, documents: 1, users: 1}
`))
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrFailedToLoadCatalog)
		assert.ErrorIs(t, err, plan.ErrUnknownTier)
	})

	t.Run("fails on a broken feature chain", func(t *testing.T) {
		t.Parallel()
		src := plan.NewYAMLSource(writeCatalogFile(t, `
- tier: basic
  limits: {cases: 1, clients: 1, documents: 1, users: 1}
  features: [email_support]
- tier: premium
  limits: {cases: 2, clients: 2, documents: 2, users: 2}
  features: []
- tier: enterprise
  limits: {cases: 3, clients: 3, documents: 3, users: 3}
  features: [email_support]
`))
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrFeatureChainBroken)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		t.Parallel()
		_, err := plan.NewYAMLSource("/nonexistent/plans.yaml").Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrFailedToLoadCatalog)
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		t.Parallel()
		src := plan.NewYAMLSource(writeCatalogFile(t, "{{nope"))
		_, err := src.Load(context.Background())
		assert.ErrorIs(t, err, plan.ErrFailedToParseCatalogDoc)
	})
}

func TestInMemSource(t *testing.T) {
	t.Parallel()

	src := plan.NewInMemSource(plan.Default())
	catalog, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog.Plans(), 3)
}
