// Package plan defines the subscription plan catalog for the practice
// management service: the three ordered tiers, their resource limits,
// and the feature sets they entitle.
//
// The catalog is process-wide shared immutable state. It is built once
// at startup (from the built-in Default definition or a YAML file) and
// validated: every tier must be present, every resource must carry a
// limit, and feature sets must be cumulative across tiers so that a
// higher tier never loses a capability of a lower one.
//
// Basic usage:
//
//	catalog := plan.Default()
//	p := catalog.LimitsFor(plan.TierPremium)
//	if p.HasFeature(plan.FeatureClientPortal) {
//		// enable portal
//	}
package plan
