package gate

import (
	"context"

	"github.com/google/uuid"

	"github.com/juristech/lexkit/pkg/entitlement"
	"github.com/juristech/lexkit/pkg/plan"
)

// Mode is the render decision for a gated piece of UI.
type Mode string

const (
	// ModeAllowed renders the protected content unmodified.
	ModeAllowed Mode = "allowed"
	// ModeBlockedHard renders only the upgrade call-to-action; the
	// protected content is omitted entirely.
	ModeBlockedHard Mode = "blocked"
	// ModeBlockedPreview renders the protected content de-emphasized
	// and non-interactive beneath the upgrade call-to-action.
	ModeBlockedPreview Mode = "blocked_preview"
)

// Spec describes what a gate protects. Action, when set, is checked
// first and its denial always wins; Feature gates the content itself;
// RequiredTier is display-only wording for the upgrade prompt.
type Spec struct {
	Feature      plan.Feature
	Action       entitlement.ActionID
	RequiredTier plan.Tier
	ShowPreview  bool
}

// Result is the gate's render decision. It is a pure value: the gate
// mutates nothing and the same entitlement state always yields the
// same result.
type Result struct {
	Mode           Mode      `json:"mode"`
	Reason         string    `json:"reason,omitempty"`
	RequiredTier   plan.Tier `json:"required_tier,omitempty"`
	RenderChildren bool      `json:"render_children"`
	UpgradeCTA     bool      `json:"upgrade_cta"`
}

// Gate consults the entitlement engine and maps its decisions to one
// of the three render modes.
type Gate struct {
	engine *entitlement.Engine
}

// New creates a Gate. Panics on a nil engine.
func New(engine *entitlement.Engine) *Gate {
	if engine == nil {
		panic("gate: entitlement.Engine is required")
	}
	return &Gate{engine: engine}
}

// Evaluate resolves the render mode for a tenant against a gate spec.
//
// When spec.Action is set and denied, the result is a hard block
// carrying the decision's reason: children are never rendered behind a
// reached limit, preview or not. Otherwise the feature check decides:
// denied with ShowPreview renders de-emphasized children under the
// upgrade prompt, denied without it renders the prompt alone.
func (g *Gate) Evaluate(ctx context.Context, tenantID uuid.UUID, spec Spec) Result {
	tier := spec.RequiredTier
	if tier == "" {
		tier = plan.TierPremium
	}

	if spec.Action != "" {
		if d := g.engine.CanPerformAction(ctx, tenantID, spec.Action); !d.Allowed {
			return Result{
				Mode:           ModeBlockedHard,
				Reason:         d.Reason,
				RequiredTier:   tier,
				RenderChildren: false,
				UpgradeCTA:     true,
			}
		}
	}

	allowed := g.engine.IsSubscribed(ctx, tenantID)
	if allowed && spec.Feature != "" {
		allowed = g.engine.HasFeature(ctx, tenantID, spec.Feature)
	}
	if allowed {
		return Result{Mode: ModeAllowed, RenderChildren: true}
	}

	if spec.ShowPreview {
		return Result{
			Mode:           ModeBlockedPreview,
			RequiredTier:   tier,
			RenderChildren: true,
			UpgradeCTA:     true,
		}
	}
	return Result{
		Mode:           ModeBlockedHard,
		RequiredTier:   tier,
		RenderChildren: false,
		UpgradeCTA:     true,
	}
}
