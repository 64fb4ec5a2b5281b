// Package mongo provides MongoDB connection management for the contact
// form backend.
//
// Configuration is environment-driven (see Config). Two connection styles
// are supported: New dials eagerly with retry, for deployments that want
// to fail fast at startup; LazyConn defers dialing until the first store
// operation, sharing a single cached handle across all request-handling
// goroutines with a single in-flight connection attempt.
//
// Connection failures are wrapped in package sentinel errors compatible
// with errors.Is().
package mongo
