// Package redis establishes go-redis client connections with retry and
// readiness verification, configured from environment variables.
package redis
