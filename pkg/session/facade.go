package session

import (
	"context"
	"log/slog"

	"github.com/juristech/lexkit/pkg/entitlement"
	"github.com/juristech/lexkit/pkg/notification"
	"github.com/juristech/lexkit/pkg/plan"
	"github.com/juristech/lexkit/pkg/subscription"
)

// Facade is the surface the presentation layer talks to. Every method
// reads the session from the context and degrades to safe denials when
// no session is present; none of them panic or surface internal errors
// for expected failure paths.
type Facade struct {
	engine   *entitlement.Engine
	manager  *subscription.Manager
	notifier notification.Notifier
	log      *slog.Logger
}

// NewFacade wires the presentation surface. Engine and manager are
// required; the notifier may be nil to disable plan-change notices.
func NewFacade(engine *entitlement.Engine, manager *subscription.Manager, notifier notification.Notifier, log *slog.Logger) *Facade {
	if engine == nil {
		panic("session: entitlement.Engine is required")
	}
	if manager == nil {
		panic("session: subscription.Manager is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Facade{engine: engine, manager: manager, notifier: notifier, log: log}
}

// IsSubscribed reports whether the session's tenant holds an active,
// unexpired subscription.
func (f *Facade) IsSubscribed(ctx context.Context) bool {
	sess, ok := FromContext(ctx)
	if !ok {
		return false
	}
	return f.engine.IsSubscribed(ctx, sess.TenantID)
}

// HasFeature reports whether the tenant's plan includes the feature id.
func (f *Facade) HasFeature(ctx context.Context, featureID string) bool {
	sess, ok := FromContext(ctx)
	if !ok {
		return false
	}
	return f.engine.HasFeature(ctx, sess.TenantID, plan.Feature(featureID))
}

// CanPerformAction checks the action against the tenant's quota.
func (f *Facade) CanPerformAction(ctx context.Context, actionID string) entitlement.Decision {
	sess, ok := FromContext(ctx)
	if !ok {
		return entitlement.Decision{Allowed: false, Reason: "No active subscription"}
	}
	return f.engine.CanPerformAction(ctx, sess.TenantID, entitlement.ActionID(actionID))
}

// GetPlanLimits returns the tenant's plan, or false without an active
// subscription.
func (f *Facade) GetPlanLimits(ctx context.Context) (plan.Plan, bool) {
	sess, ok := FromContext(ctx)
	if !ok {
		return plan.Plan{}, false
	}
	return f.engine.PlanLimits(ctx, sess.TenantID)
}

// UpgradePlan commits a plan change after the payment flow reported
// success. Returns true when the transition committed and false on any
// expected failure; it never panics or leaks internal errors to the
// caller.
func (f *Facade) UpgradePlan(ctx context.Context, tier plan.Tier) bool {
	_, err := f.ChangePlan(ctx, tier)
	return err == nil
}

// ChangePlan is UpgradePlan with the failure cause preserved, for
// callers that map causes to different responses. The plan-change
// notice is best effort: a failed send does not undo a committed
// transition.
func (f *Facade) ChangePlan(ctx context.Context, tier plan.Tier) (*subscription.Subscription, error) {
	sess, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}

	sub, err := f.manager.ChangePlan(ctx, sess.TenantID, tier)
	if err != nil {
		f.log.ErrorContext(ctx, "plan change failed",
			slog.String("tenant_id", sess.TenantID.String()),
			slog.String("tier", string(tier)),
			slog.Any("error", err))
		return nil, err
	}

	if f.notifier != nil && sess.Email != "" {
		if err := f.notifier.PlanChanged(ctx, notification.PlanChange{
			Recipient: sess.Email,
			FirmName:  sess.FirmName,
			Tier:      string(sub.Tier),
			ExpiresAt: sub.ExpiresAt,
		}); err != nil {
			f.log.WarnContext(ctx, "plan change notice not sent",
				slog.String("tenant_id", sess.TenantID.String()),
				slog.Any("error", err))
		}
	}
	return sub, nil
}
