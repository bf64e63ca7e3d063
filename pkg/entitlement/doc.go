// Package entitlement decides what a tenant may see and do given its
// subscription plan and current resource usage.
//
// Two questions are answered: HasFeature (is a capability included in
// the plan) and CanPerformAction (may a quota-limited operation run
// right now). Both are pure reads returning decision values; neither
// ever raises for a denied outcome. A tenant without an active,
// unexpired subscription has no features and may perform no gated
// action, while action ids outside the known set pass through ungated.
package entitlement
