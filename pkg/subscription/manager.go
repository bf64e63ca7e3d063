package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/juristech/lexkit/pkg/plan"
)

// Manager drives the subscription lifecycle for tenants: it is the only
// component that writes subscription state. All other components read.
type Manager struct {
	store Store
	now   func() time.Time
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithClock overrides the time source, for tests with fixed time values.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a Manager backed by the given store.
// Panics on a nil store to fail fast during initialization.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	if store == nil {
		panic("subscription: Store is required")
	}
	m := &Manager{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Get retrieves a tenant's subscription record.
// Returns ErrNotFound for tenants that never subscribed.
func (m *Manager) Get(ctx context.Context, tenantID uuid.UUID) (*Subscription, error) {
	return m.store.Get(ctx, tenantID)
}

// ChangePlan activates the given tier for a tenant with a fresh 30-day
// validity window. Subscribe, upgrade, and downgrade are all the same
// operation: no proration, no refund, no restriction on direction.
//
// The transition is atomic from the caller's perspective: the new
// record is written before anything in-memory changes, and on a store
// failure the previous record stays exactly as it was.
func (m *Manager) ChangePlan(ctx context.Context, tenantID uuid.UUID, tier plan.Tier) (*Subscription, error) {
	if !tier.Valid() {
		return nil, errors.Join(ErrUnknownTier, fmt.Errorf("tier %q", tier))
	}

	current, err := m.store.Get(ctx, tenantID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	from := StateOf(current)
	if !CanTransition(from, StateActive) {
		return nil, errors.Join(ErrInvalidTransition,
			fmt.Errorf("cannot activate from state %q", from))
	}

	now := m.now()
	next := &Subscription{
		TenantID:  tenantID,
		Tier:      tier,
		Status:    StatusActive,
		StartedAt: now,
		ExpiresAt: now.AddDate(0, 0, ValidityDays),
		UpdatedAt: now,
	}

	if err := m.store.Save(ctx, next); err != nil {
		return nil, errors.Join(ErrWriteFailed, err)
	}
	return next, nil
}

// Deactivate marks a tenant's subscription inactive. Driven by external
// events only (provider cancellation webhooks); nothing in this service
// schedules it.
func (m *Manager) Deactivate(ctx context.Context, tenantID uuid.UUID) (*Subscription, error) {
	current, err := m.store.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if !CanTransition(StateOf(current), StateInactive) {
		return nil, errors.Join(ErrInvalidTransition,
			fmt.Errorf("cannot deactivate from state %q", StateOf(current)))
	}

	next := *current
	next.Status = StatusInactive
	next.UpdatedAt = m.now()

	if err := m.store.Save(ctx, &next); err != nil {
		return nil, errors.Join(ErrWriteFailed, err)
	}
	return &next, nil
}

// HandleWebhook applies a normalized billing-provider event to the
// tenant's subscription. The customer ID is only parsed for event types
// the manager acts on; most provider events carry no custom data and
// must still be acknowledged.
func (m *Manager) HandleWebhook(ctx context.Context, event *WebhookEvent) error {
	switch event.Type {
	case EventPaymentSucceeded, EventSubscriptionCreated, EventSubscriptionUpdated:
		tenantID, err := uuid.Parse(event.CustomerID)
		if err != nil {
			return fmt.Errorf("invalid tenant ID in webhook: %w", err)
		}
		tier, err := plan.ParseTier(event.Tier)
		if err != nil {
			return errors.Join(ErrUnknownTier, fmt.Errorf("webhook tier %q", event.Tier))
		}
		_, err = m.ChangePlan(ctx, tenantID, tier)
		return err

	case EventSubscriptionCancelled, EventPaymentFailed:
		tenantID, err := uuid.Parse(event.CustomerID)
		if err != nil {
			return fmt.Errorf("invalid tenant ID in webhook: %w", err)
		}
		_, err = m.Deactivate(ctx, tenantID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	// Unknown event types are ignored rather than failed so the provider
	// does not retry them forever.
	return nil
}
