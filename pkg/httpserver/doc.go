// Package httpserver wraps net/http with graceful shutdown, functional
// options, environment-driven configuration, and a probe handler for
// liveness/readiness endpoints.
package httpserver
