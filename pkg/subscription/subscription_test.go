package subscription_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/juristech/lexkit/pkg/plan"
	"github.com/juristech/lexkit/pkg/subscription"
)

func TestSubscription_IsActiveAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("active before expiry", func(t *testing.T) {
		t.Parallel()
		sub := &subscription.Subscription{
			TenantID:  uuid.New(),
			Tier:      plan.TierBasic,
			Status:    subscription.StatusActive,
			StartedAt: now.AddDate(0, 0, -10),
			ExpiresAt: now.AddDate(0, 0, 20),
		}
		assert.True(t, sub.IsActiveAt(now))
	})

	t.Run("not active once expiresAt has passed", func(t *testing.T) {
		t.Parallel()
		sub := &subscription.Subscription{
			Status:    subscription.StatusActive,
			StartedAt: now.AddDate(0, 0, -40),
			ExpiresAt: now.AddDate(0, 0, -10),
		}
		assert.False(t, sub.IsActiveAt(now))
	})

	t.Run("not active exactly at expiry", func(t *testing.T) {
		t.Parallel()
		sub := &subscription.Subscription{
			Status:    subscription.StatusActive,
			ExpiresAt: now,
		}
		assert.False(t, sub.IsActiveAt(now))
	})

	t.Run("inactive status never grants access", func(t *testing.T) {
		t.Parallel()
		sub := &subscription.Subscription{
			Status:    subscription.StatusInactive,
			ExpiresAt: now.AddDate(0, 0, 20),
		}
		assert.False(t, sub.IsActiveAt(now))
	})

	t.Run("nil record is never active", func(t *testing.T) {
		t.Parallel()
		var sub *subscription.Subscription
		assert.False(t, sub.IsActiveAt(now))
	})
}

func TestSubscription_DaysRemainingAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("counts full days", func(t *testing.T) {
		t.Parallel()
		sub := &subscription.Subscription{
			Status:    subscription.StatusActive,
			ExpiresAt: now.AddDate(0, 0, 12),
		}
		assert.Equal(t, 12, sub.DaysRemainingAt(now))
	})

	t.Run("rounds partial days up", func(t *testing.T) {
		t.Parallel()
		sub := &subscription.Subscription{
			Status:    subscription.StatusActive,
			ExpiresAt: now.Add(29 * time.Hour),
		}
		assert.Equal(t, 2, sub.DaysRemainingAt(now))
	})

	t.Run("a few hours left still counts as one day", func(t *testing.T) {
		t.Parallel()
		sub := &subscription.Subscription{
			Status:    subscription.StatusActive,
			ExpiresAt: now.Add(11 * time.Hour),
		}
		assert.Equal(t, 1, sub.DaysRemainingAt(now))
	})

	t.Run("zero for expired records", func(t *testing.T) {
		t.Parallel()
		sub := &subscription.Subscription{
			Status:    subscription.StatusActive,
			ExpiresAt: now.AddDate(0, 0, -1),
		}
		assert.Equal(t, 0, sub.DaysRemainingAt(now))
	})
}

func TestTransitions(t *testing.T) {
	t.Parallel()

	t.Run("allowed transitions", func(t *testing.T) {
		t.Parallel()
		assert.True(t, subscription.CanTransition(subscription.StateNone, subscription.StateActive))
		assert.True(t, subscription.CanTransition(subscription.StateActive, subscription.StateActive))
		assert.True(t, subscription.CanTransition(subscription.StateInactive, subscription.StateActive))
		assert.True(t, subscription.CanTransition(subscription.StateActive, subscription.StateInactive))
	})

	t.Run("forbidden transitions", func(t *testing.T) {
		t.Parallel()
		assert.False(t, subscription.CanTransition(subscription.StateNone, subscription.StateInactive))
		assert.False(t, subscription.CanTransition(subscription.StateInactive, subscription.StateInactive))
	})

	t.Run("state derivation", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, subscription.StateNone, subscription.StateOf(nil))
		assert.Equal(t, subscription.StateActive,
			subscription.StateOf(&subscription.Subscription{Status: subscription.StatusActive}))
		assert.Equal(t, subscription.StateInactive,
			subscription.StateOf(&subscription.Subscription{Status: subscription.StatusInactive}))
	})
}
