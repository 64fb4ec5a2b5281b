// Package binder parses HTTP requests into typed values for use with the
// handler package. Each binder processes a single source: JSON bodies or
// router path parameters.
package binder
