package entitlement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/juristech/lexkit/pkg/plan"
	"github.com/juristech/lexkit/pkg/subscription"
	"github.com/juristech/lexkit/pkg/usage"
)

// Decision is the outcome of a single entitlement check. It is a plain
// value, never persisted: a denied decision is a valid result, not a
// failure.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// SubscriptionResolver resolves the subscription record for a tenant.
// An ErrNotFound result means the tenant never subscribed.
type SubscriptionResolver func(ctx context.Context, tenantID uuid.UUID) (*subscription.Subscription, error)

// UsageInfo pairs the current usage with the plan limit for a resource.
type UsageInfo struct {
	Current int64 `json:"current"`
	Limit   int64 `json:"limit"`
}

// Engine answers the two entitlement questions for a tenant: does it
// have feature F, and may it perform action A right now. All checks are
// pure reads; the engine mutates nothing and never returns an error to
// its callers on the check paths.
type Engine struct {
	catalog plan.Catalog
	usage   usage.Source
	resolve SubscriptionResolver
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the time source, for tests with fixed time values.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an Engine. All three dependencies are required;
// passing nil panics to fail fast during wiring.
func NewEngine(catalog plan.Catalog, src usage.Source, resolve SubscriptionResolver, opts ...Option) *Engine {
	if src == nil {
		panic("entitlement: usage.Source is required")
	}
	if resolve == nil {
		panic("entitlement: SubscriptionResolver is required")
	}
	e := &Engine{
		catalog: catalog,
		usage:   src,
		resolve: resolve,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// activeSubscription returns the tenant's subscription only while it
// grants access. Expiry is checked here on every read; there is no
// background process flipping lapsed records.
func (e *Engine) activeSubscription(ctx context.Context, tenantID uuid.UUID) (*subscription.Subscription, bool) {
	sub, err := e.resolve(ctx, tenantID)
	if err != nil || !sub.IsActiveAt(e.now()) {
		return nil, false
	}
	return sub, true
}

// IsSubscribed reports whether the tenant holds an unexpired active
// subscription.
func (e *Engine) IsSubscribed(ctx context.Context, tenantID uuid.UUID) bool {
	_, ok := e.activeSubscription(ctx, tenantID)
	return ok
}

// HasFeature reports whether the tenant's plan includes the feature.
// No active subscription means false for every feature id; unknown ids
// never match and resolve to false rather than an error.
func (e *Engine) HasFeature(ctx context.Context, tenantID uuid.UUID, feature plan.Feature) bool {
	sub, ok := e.activeSubscription(ctx, tenantID)
	if !ok {
		return false
	}
	return e.catalog.LimitsFor(sub.Tier).HasFeature(feature)
}

// PlanLimits returns the tenant's current plan. The second return is
// false when no active subscription exists.
func (e *Engine) PlanLimits(ctx context.Context, tenantID uuid.UUID) (plan.Plan, bool) {
	sub, ok := e.activeSubscription(ctx, tenantID)
	if !ok {
		return plan.Plan{}, false
	}
	return e.catalog.LimitsFor(sub.Tier), true
}

// CanPerformAction decides whether the tenant may perform the action
// right now, comparing current usage against the plan limit for the
// resource the action consumes.
//
// The comparison is usage >= limit: being exactly at the limit already
// blocks the next creation. Action ids outside the closed set are
// allowed for any tenant; only listed actions consume quota.
func (e *Engine) CanPerformAction(ctx context.Context, tenantID uuid.UUID, action ActionID) Decision {
	res, known := action.resource()
	if !known {
		return Decision{Allowed: true}
	}

	sub, ok := e.activeSubscription(ctx, tenantID)
	if !ok {
		return Decision{Allowed: false, Reason: "No active subscription"}
	}

	p := e.catalog.LimitsFor(sub.Tier)
	if p.IsUnlimited(res) {
		return Decision{Allowed: true}
	}

	counters, err := e.usage.Counters(ctx, tenantID)
	if err != nil {
		// A counter outage must not grant unverifiable quota.
		return Decision{Allowed: false, Reason: "Unable to verify current usage"}
	}

	limit := p.LimitFor(res)
	if counters.For(res) >= limit {
		return Decision{
			Allowed: false,
			Reason:  fmt.Sprintf("Limit of %d %s reached", limit, res),
		}
	}
	return Decision{Allowed: true}
}

// AllUsage returns the usage/limit pair for every resource of the
// tenant's plan, for the plan limits dashboard. Counter failures leave
// usage at zero rather than failing the whole view.
func (e *Engine) AllUsage(ctx context.Context, tenantID uuid.UUID) (map[plan.Resource]UsageInfo, bool) {
	p, ok := e.PlanLimits(ctx, tenantID)
	if !ok {
		return nil, false
	}

	counters, err := e.usage.Counters(ctx, tenantID)
	if err != nil {
		counters = usage.Counters{}
	}

	result := make(map[plan.Resource]UsageInfo, len(p.Limits))
	for res, limit := range p.Limits {
		result[res] = UsageInfo{Current: counters.For(res), Limit: limit}
	}
	return result, true
}

// UsagePercentage returns usage as a percentage (0-100, or -1 for
// unlimited), capped at 100 for display.
func (e *Engine) UsagePercentage(ctx context.Context, tenantID uuid.UUID, res plan.Resource) int {
	p, ok := e.PlanLimits(ctx, tenantID)
	if !ok {
		return 0
	}
	if p.IsUnlimited(res) {
		return -1
	}

	limit := p.LimitFor(res)
	if limit == 0 {
		return 100
	}

	counters, err := e.usage.Counters(ctx, tenantID)
	if err != nil {
		return 0
	}
	return min(int((counters.For(res)*100)/limit), 100)
}
