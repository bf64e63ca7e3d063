// Package gate is the presentation adapter over the entitlement
// engine. It maps a tenant's entitlement state and a gate spec to one
// of three render modes: allowed, blocked with only an upgrade prompt,
// or blocked with a de-emphasized preview of the protected content.
//
// Evaluate performs no state mutation; the HTTP middleware variant
// applies the same decision to API routes, answering 402 with the
// denial reason and an upgrade path.
package gate
