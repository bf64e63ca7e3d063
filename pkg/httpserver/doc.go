// Package httpserver runs an http.Server with environment-driven
// timeouts, OS signal handling, and graceful shutdown.
package httpserver
