// Package subscription manages the per-tenant subscription lifecycle:
// none → active on subscribe, active → active on any plan change, and
// active → inactive on external cancellation or expiry.
//
// Every successful subscribe or plan change grants a fresh 30-day
// validity window; upgrades and downgrades are processed identically
// with no proration. Expiry is never enforced by a background job;
// readers call IsActive, which checks ExpiresAt lazily.
//
// The Manager is the single writer of subscription state. Persistence
// goes through the Store interface (in-memory and PostgreSQL
// implementations ship), and payment collection is delegated to a
// BillingProvider, of which only the completion signal is consumed.
package subscription
