package notification_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juristech/lexkit/pkg/notification"
	"github.com/juristech/lexkit/pkg/plan"
)

func TestNewPostmarkNotifier(t *testing.T) {
	t.Parallel()

	valid := notification.Config{
		PostmarkServerToken:  "server-token",
		PostmarkAccountToken: "account-token",
		SenderEmail:          "noreply@lexkit.example",
	}

	t.Run("accepts complete configuration", func(t *testing.T) {
		t.Parallel()

		n, err := notification.NewPostmarkNotifier(valid)
		require.NoError(t, err)
		assert.NotNil(t, n)
	})

	t.Run("rejects missing tokens and sender", func(t *testing.T) {
		t.Parallel()

		for name, mutate := range map[string]func(*notification.Config){
			"server token":  func(c *notification.Config) { c.PostmarkServerToken = "" },
			"account token": func(c *notification.Config) { c.PostmarkAccountToken = "" },
			"sender email":  func(c *notification.Config) { c.SenderEmail = "" },
		} {
			cfg := valid
			mutate(&cfg)
			_, err := notification.NewPostmarkNotifier(cfg)
			assert.ErrorIs(t, err, notification.ErrInvalidConfig, name)
		}
	})
}

func TestNoopNotifier(t *testing.T) {
	t.Parallel()

	n := notification.NewNoopNotifier()
	err := n.PlanChanged(context.Background(), notification.PlanChange{
		Recipient: "avocat@cabinet-durand.fr",
		FirmName:  "Cabinet Durand",
		Tier:      string(plan.TierPremium),
		ExpiresAt: time.Now().AddDate(0, 0, 30),
	})
	assert.NoError(t, err)
}
