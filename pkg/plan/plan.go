package plan

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Plan describes a subscription tier and its resource/feature constraints.
type Plan struct {
	Tier        Tier               `json:"tier" yaml:"tier"`
	Name        string             `json:"name" yaml:"name"`
	Description string             `json:"description" yaml:"description"`
	Limits      map[Resource]int64 `json:"limits" yaml:"limits"` // -1 represents unlimited
	Features    []Feature          `json:"features" yaml:"features"`
	Price       Money              `json:"price" yaml:"price"`
}

// HasFeature reports whether the plan includes the given feature.
// Unknown or misspelled ids simply never match.
func (p Plan) HasFeature(f Feature) bool {
	return slices.Contains(p.Features, f)
}

// LimitFor returns the limit for a resource. Resources absent from the
// plan are treated as zero (nothing may be created).
func (p Plan) LimitFor(res Resource) int64 {
	return p.Limits[res]
}

// IsUnlimited reports whether the plan places no cap on the resource.
func (p Plan) IsUnlimited(res Resource) bool {
	return p.Limits[res] == Unlimited
}

// clone returns a deep copy so catalog state cannot be mutated through
// a returned plan.
func (p Plan) clone() Plan {
	p.Limits = maps.Clone(p.Limits)
	p.Features = slices.Clone(p.Features)
	return p
}

// Catalog is the process-wide registry mapping each tier to its plan.
// It is defined once at startup and never mutated afterwards; changing
// limits or features means redeploying a new catalog definition.
type Catalog struct {
	plans map[Tier]Plan
}

// NewCatalog builds a Catalog from the given plans and validates it.
// The catalog must cover every defined tier, every plan must carry a
// limit for every resource, and feature sets must form a monotonic
// superset chain (basic ⊆ premium ⊆ enterprise).
func NewCatalog(plans ...Plan) (Catalog, error) {
	byTier := make(map[Tier]Plan, len(plans))
	for _, p := range plans {
		byTier[p.Tier] = p.clone()
	}

	if err := validate(byTier); err != nil {
		return Catalog{}, err
	}
	return Catalog{plans: byTier}, nil
}

// MustCatalog is NewCatalog that panics on invalid configuration.
// Catalog definitions are static, so a bad one should prevent startup.
func MustCatalog(plans ...Plan) Catalog {
	c, err := NewCatalog(plans...)
	if err != nil {
		panic(err)
	}
	return c
}

// LimitsFor returns the plan for the given tier. The lookup is total
// over the closed Tier set, so there is no error path; callers holding
// a validated Tier always get a plan back.
func (c Catalog) LimitsFor(t Tier) Plan {
	return c.plans[t].clone()
}

// Plans returns all plans in ascending tier order.
func (c Catalog) Plans() []Plan {
	out := make([]Plan, 0, len(tierOrder))
	for _, t := range tierOrder {
		out = append(out, c.plans[t].clone())
	}
	return out
}

func validate(plans map[Tier]Plan) error {
	resources := []Resource{ResourceCases, ResourceClients, ResourceDocuments, ResourceUsers}

	for _, t := range tierOrder {
		p, ok := plans[t]
		if !ok {
			return errors.Join(ErrInvalidCatalog, ErrMissingTier,
				fmt.Errorf("tier %q is not defined", t))
		}
		for _, res := range resources {
			limit, ok := p.Limits[res]
			if !ok {
				return errors.Join(ErrInvalidCatalog, ErrMissingResource,
					fmt.Errorf("tier %q has no limit for %q", t, res))
			}
			if limit < 0 && limit != Unlimited {
				return errors.Join(ErrInvalidCatalog, ErrNegativeLimit,
					fmt.Errorf("tier %q limit for %q is %d", t, res, limit))
			}
		}
	}

	// Cumulative feature chain: every feature of a lower tier must be
	// present in all higher tiers.
	for i := 0; i < len(tierOrder)-1; i++ {
		lower, higher := plans[tierOrder[i]], plans[tierOrder[i+1]]
		for _, f := range lower.Features {
			if !higher.HasFeature(f) {
				return errors.Join(ErrInvalidCatalog, ErrFeatureChainBroken,
					fmt.Errorf("feature %q of tier %q is missing from tier %q", f, lower.Tier, higher.Tier))
			}
		}
	}

	return nil
}

// Comparison contains the differences between two plans.
// Used to communicate upgrade/downgrade consequences to users.
type Comparison struct {
	Direction       ChangeDirection
	NewFeatures     []Feature
	LostFeatures    []Feature
	IncreasedLimits map[Resource]LimitChange
	DecreasedLimits map[Resource]LimitChange
}

// LimitChange represents a change in a resource limit.
type LimitChange struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}

// Compare returns the differences between the current and target plans.
func (c Catalog) Compare(current, target Tier) Comparison {
	cur, tgt := c.plans[current], c.plans[target]

	cmp := Comparison{
		Direction:       Direction(current, target),
		NewFeatures:     make([]Feature, 0),
		LostFeatures:    make([]Feature, 0),
		IncreasedLimits: make(map[Resource]LimitChange),
		DecreasedLimits: make(map[Resource]LimitChange),
	}

	for _, f := range tgt.Features {
		if !cur.HasFeature(f) {
			cmp.NewFeatures = append(cmp.NewFeatures, f)
		}
	}
	for _, f := range cur.Features {
		if !tgt.HasFeature(f) {
			cmp.LostFeatures = append(cmp.LostFeatures, f)
		}
	}

	for res, tgtLimit := range tgt.Limits {
		curLimit, ok := cur.Limits[res]
		if !ok || tgtLimit == curLimit {
			continue
		}
		change := LimitChange{From: curLimit, To: tgtLimit}

		// Leaving unlimited is always a decrease, entering it an increase.
		switch {
		case curLimit == Unlimited:
			cmp.DecreasedLimits[res] = change
		case tgtLimit == Unlimited, tgtLimit > curLimit:
			cmp.IncreasedLimits[res] = change
		default:
			cmp.DecreasedLimits[res] = change
		}
	}

	return cmp
}
