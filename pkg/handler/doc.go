// Package handler provides type-safe HTTP request handling on top of
// net/http.
//
// A HandlerFunc receives a typed request value populated by one or more
// binders and returns a Response that knows how to render itself. Wrap
// converts a HandlerFunc into an http.HandlerFunc, routing binding and
// rendering errors to a configurable error handler.
package handler
