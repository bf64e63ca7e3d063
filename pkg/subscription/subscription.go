package subscription

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/juristech/lexkit/pkg/plan"
)

// Status represents the current state of a subscription record.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ValidityDays is the length of the paid window granted by every
// subscribe or plan change.
const ValidityDays = 30

// Subscription represents a tenant's subscription to a plan tier.
// Each tenant has exactly one subscription record at a time; tenants
// that never subscribed have none at all.
type Subscription struct {
	TenantID  uuid.UUID `json:"tenant_id"` // primary key - one subscription per tenant
	Tier      plan.Tier `json:"tier"`
	Status    Status    `json:"status"`
	StartedAt time.Time `json:"started_at"`
	ExpiresAt time.Time `json:"expires_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsActiveAt reports whether the subscription grants access at the
// given instant. Expiry is evaluated lazily here on every read; no
// background job flips records to inactive.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	if s == nil || s.Status != StatusActive {
		return false
	}
	return now.Before(s.ExpiresAt)
}

// IsActive reports whether the subscription grants access right now.
func (s *Subscription) IsActive() bool {
	return s.IsActiveAt(time.Now().UTC())
}

// DaysRemainingAt returns whole days left in the paid window at a given
// time, rounding partial days up. Zero for inactive or expired records.
func (s *Subscription) DaysRemainingAt(now time.Time) int {
	if !s.IsActiveAt(now) {
		return 0
	}
	remaining := s.ExpiresAt.Sub(now)
	return int(math.Ceil(remaining.Hours() / 24))
}

// DaysRemaining returns whole days left in the paid window.
func (s *Subscription) DaysRemaining() int {
	return s.DaysRemainingAt(time.Now().UTC())
}
