// Package session carries the signed-in tenant through request
// contexts and exposes the Facade the presentation layer consumes:
// feature checks, action checks, plan limits, and the plan-change
// operation with its boolean committed/failed contract.
package session
