// Package api exposes the entitlement core over HTTP as a JSON API.
//
// Identity is a black box: the auth gateway terminates authentication
// and forwards tenant identity headers, which sessionMiddleware turns
// into a request-scoped session. Billing webhooks bypass the session
// and authenticate through the provider's signature instead.
package api
