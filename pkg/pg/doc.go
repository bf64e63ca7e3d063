// Package pg provides PostgreSQL connectivity: a pgx pool with retrying
// startup, goose migration running, and common error predicates.
package pg
