// Package httpserver wraps the standard HTTP server with environment-driven
// configuration, graceful shutdown on context cancellation or OS signals,
// and a probe handler for liveness/readiness checks.
package httpserver
