// Package usage tracks per-tenant consumption of the resources the
// subscription plans cap: cases, clients, documents, and users.
//
// The entitlement engine only consumes the Source interface (four
// non-negative counters per tenant). Three implementations ship:
//
//   - NewStaticSource: fixed per-tier demo dataset
//   - NewPGSource: real aggregation over the tenant's records
//   - NewCachedSource: Redis read-through decorator for hot paths
package usage
